package blend

// separableBlend applies a per-channel blend function using the standard
// formula: Result = (1 - Sa) * D + (1 - Da) * S + Sa * Da * B(Sc, Dc)
// where B(Sc, Dc) is the blend function for unmultiplied source and
// destination channels.
//
// Parameters:
//   - sr, sg, sb, sa: source color (premultiplied alpha)
//   - dr, dg, db, da: destination color (premultiplied alpha)
//   - blendChan: per-channel blend function B(s, d) operating on unmultiplied values
func separableBlend(sr, sg, sb, sa, dr, dg, db, da byte, blendChan func(s, d byte) byte) (byte, byte, byte, byte) {
	if sa == 0 {
		return dr, dg, db, da
	}
	if da == 0 {
		return sr, sg, sb, sa
	}

	blendR := blendChan(unpremultiply(sr, sa), unpremultiply(dr, da))
	blendG := blendChan(unpremultiply(sg, sa), unpremultiply(dg, da))
	blendB := blendChan(unpremultiply(sb, sa), unpremultiply(db, da))

	invSa := 255 - sa
	invDa := 255 - da

	finalA := addDiv255(sa, mulDiv255(da, invSa))

	// (1 - Sa) * D + (1 - Da) * S
	finalR := addDiv255(mulDiv255(dr, invSa), mulDiv255(sr, invDa))
	finalG := addDiv255(mulDiv255(dg, invSa), mulDiv255(sg, invDa))
	finalB := addDiv255(mulDiv255(db, invSa), mulDiv255(sb, invDa))

	// + Sa * Da * B
	saDa := mulDiv255(sa, da)
	finalR = addDiv255(finalR, mulDiv255(saDa, blendR))
	finalG = addDiv255(finalG, mulDiv255(saDa, blendG))
	finalB = addDiv255(finalB, mulDiv255(saDa, blendB))

	return finalR, finalG, finalB, finalA
}

// blendMultiply multiplies source and destination colors.
// Formula: B(Cb, Cs) = Cb * Cs
func blendMultiply(sr, sg, sb, sa, dr, dg, db, da byte) (byte, byte, byte, byte) {
	return separableBlend(sr, sg, sb, sa, dr, dg, db, da, mulDiv255)
}
