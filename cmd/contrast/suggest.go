package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yacobolo/contrast"
	"github.com/yacobolo/contrast/internal/palette"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest FOREGROUND BACKGROUND",
	Short: "Suggest a foreground that reaches a contrast ratio",
	Long: `Adjust the lightness of the foreground, keeping its hue, until the pair
reaches --min-ratio (default 4.5, AA for normal text). Exits 1 when no
lightness reaches the target.`,
	Example: `  contrast suggest "#777777" "#ffffff"
  contrast suggest "#1976d2" "#ffffff" --min-ratio 7`,
	Args: cobra.ExactArgs(2),
	RunE: runSuggest,
}

// suggestOptions holds the validated suggest flags
type suggestOptions struct {
	MinRatio float64 `validate:"gte=1,lte=21"`
}

func init() {
	suggestCmd.Flags().Float64("min-ratio", contrast.RatioAA, "Target contrast ratio (1-21)")
}

func runSuggest(cmd *cobra.Command, args []string) error {
	minRatio, _ := cmd.Flags().GetFloat64("min-ratio")
	opts := suggestOptions{MinRatio: minRatio}
	if err := palette.ValidateStruct(opts); err != nil {
		return err
	}

	s, err := contrast.Suggest(args[0], args[1], opts.MinRatio)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s %.2f:1\n", s.Color, s.Ratio)
	if !s.Met {
		fmt.Fprintf(cmd.ErrOrStderr(), "target %.2f:1 is not reachable on %s\n", opts.MinRatio, args[1])
		return errGateFailed
	}
	return nil
}
