package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/contrast"
	"github.com/yacobolo/contrast/internal/palette"
)

var parseCmd = &cobra.Command{
	Use:   "parse COLOR",
	Short: "Parse a color and print its channels and luminance",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := contrast.ParseColor(args[0])
		if err != nil {
			return fmt.Errorf("parse %q: %w", args[0], err)
		}

		useColors, _ := cmd.Flags().GetBool("color")
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s %s\n", palette.RenderSwatch(c, useColors), c)
		fmt.Fprintf(out, "  Hex:         %s\n", c.Hex())
		fmt.Fprintf(out, "  Luminance:   %.4f\n", c.Luminance())
		fmt.Fprintf(out, "  Foreground:  %s\n", contrast.ForegroundForRGB(c))
		if !c.InGamut() {
			fmt.Fprintln(out, "  Out of gamut: channels outside 0-255 are used as given")
		}
		return nil
	},
}
