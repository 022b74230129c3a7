package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/halftone"
	intimage "github.com/gogpu/halftone/internal/image"
)

func newIdentifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identify [file]",
		Short: "Show image format, size and ink coverage",
		Args:  cobra.ExactArgs(1),
		RunE:  runIdentify,
	}
}

func runIdentify(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	info, err := intimage.Probe(data)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	img, _, err := intimage.Decode(data)
	if err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	cov := halftone.Coverage(halftone.FromImage(img))

	out := cmd.OutOrStdout()
	printer.Fprintf(out, "File:       %s\n", path)
	printer.Fprintf(out, "Format:     %s\n", info.Format)
	printer.Fprintf(out, "Dimensions: %d x %d\n", info.Width, info.Height)
	printer.Fprintf(out, "File size:  %d bytes\n", len(data))
	fmt.Fprintln(out, "Ink coverage:")
	for _, ch := range halftone.Channels {
		printer.Fprintf(out, "  %s: %.1f%%\n", ch, cov[ch]*100)
	}
	return nil
}
