package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/halftone"
)

func newSeparateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "separate",
		Short: "Write the color-corrected image and its four ink plates",
		Args:  cobra.NoArgs,
		RunE:  runSeparate,
	}
	def := halftone.DefaultOptions()
	cmd.Flags().StringP("input", "i", "", "Input image")
	cmd.Flags().StringP("output", "o", "", "Output directory")
	cmd.Flags().Float64("saturation", def.Saturation, "Saturation factor (0.5-3)")
	cmd.Flags().Float64("contrast", def.Contrast, "Contrast factor (0.5-2)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")
	return cmd
}

func runSeparate(cmd *cobra.Command, args []string) error {
	inputPath, _ := cmd.Flags().GetString("input")
	outDir, _ := cmd.Flags().GetString("output")
	saturation, _ := cmd.Flags().GetFloat64("saturation")
	contrast, _ := cmd.Flags().GetFloat64("contrast")

	opts := halftone.Options{Size: halftone.MinSize, Saturation: saturation, Contrast: contrast}.Clamp()

	img, _, err := readImage(inputPath)
	if err != nil {
		return err
	}
	corrected := halftone.Separate(halftone.FromImage(img), opts.Saturation, opts.Contrast)

	if err := writePNG(filepath.Join(outDir, "corrected.png"), corrected.ToImage()); err != nil {
		return err
	}
	for _, ch := range halftone.Channels {
		if err := writePNG(filepath.Join(outDir, ch.String()+".png"), halftone.ChannelMap(corrected, ch)); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote corrected.png and %d plates to %s\n", len(halftone.Channels), outDir)
	return nil
}
