package blend

// mulDiv255 multiplies two byte values and divides by 255 with proper rounding.
// Formula: (a * b + 127) / 255
func mulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// addDiv255 adds two byte values with clamping to 255.
func addDiv255(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}

// unpremultiply recovers the straight channel value from a premultiplied one.
// Rounding in earlier blends can leave c one step above a, so the result is
// clamped.
func unpremultiply(c, a byte) byte {
	if a == 0 {
		return 0
	}
	v := (uint16(c)*255 + uint16(a)/2) / uint16(a)
	if v > 255 {
		return 255
	}
	return byte(v)
}

// Premultiply converts a straight-alpha color to premultiplied form.
func Premultiply(r, g, b, a byte) (byte, byte, byte, byte) {
	return mulDiv255(r, a), mulDiv255(g, a), mulDiv255(b, a), a
}

// Unpremultiply converts a premultiplied color back to straight alpha.
// A fully transparent color becomes transparent black.
func Unpremultiply(r, g, b, a byte) (byte, byte, byte, byte) {
	return unpremultiply(r, a), unpremultiply(g, a), unpremultiply(b, a), a
}
