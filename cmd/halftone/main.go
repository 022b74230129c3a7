// Command halftone renders CMYK dot-screen versions of images.
//
// Usage:
//
//	halftone render -i photo.jpg -o photo-halftone.png --size 8 --angle 34
//	halftone separate -i photo.jpg -o plates/
//	halftone identify photo.jpg
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/halftone"
)

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "halftone",
		Short:         "Render CMYK halftone dot screens from images",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				halftone.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log render details to stderr")

	root.AddCommand(newRenderCmd(), newSeparateCmd(), newIdentifyCmd())
	return root
}

// printer formats counts with digit grouping.
var printer = message.NewPrinter(language.English)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
