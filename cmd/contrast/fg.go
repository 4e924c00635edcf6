package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/contrast"
)

var fgCmd = &cobra.Command{
	Use:   "fg BACKGROUND",
	Short: "Print black or white, whichever reads better on a background",
	Long: `Print #000000 or #ffffff for text on the given background. Backgrounds
with relative luminance above 0.179 get black text. Unparseable
backgrounds get black.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := contrast.ParseColor(args[0]); err != nil {
			newLogger(cmd).Warn("unparseable background, using black", "background", args[0])
		}

		fmt.Fprintln(cmd.OutOrStdout(), contrast.ForegroundFor(args[0]))
		return nil
	},
}
