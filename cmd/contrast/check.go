package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yacobolo/contrast"
	"github.com/yacobolo/contrast/internal/palette"
)

var checkCmd = &cobra.Command{
	Use:   "check FOREGROUND BACKGROUND",
	Short: "Compute the contrast ratio and WCAG level of a color pair",
	Long: `Compute the WCAG contrast ratio of two colors and classify it for
normal and large text. Colors are #rgb, #rrggbb or rgb()/rgba().

Exits 1 when a color cannot be parsed, or when --min-level is set and the
pair does not meet it.`,
	Example: `  contrast check "#767676" "#ffffff"
  contrast check "rgb(255, 255, 255)" "#1976d2" --large --min-level AA`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func init() {
	f := checkCmd.Flags()
	f.Bool("large", false, "Judge the pair as large text (18pt, or 14pt bold)")
	f.String("min-level", "", "Fail unless the pair meets this level: AA|AAA")
}

func runCheck(cmd *cobra.Command, args []string) error {
	large, _ := cmd.Flags().GetBool("large")
	minLevel, _ := cmd.Flags().GetString("min-level")
	quiet, _ := cmd.Flags().GetBool("quiet")

	eval, err := contrast.Evaluate(args[0], args[1])
	if err != nil {
		return fmt.Errorf("%s on %s: %w", args[0], args[1], err)
	}

	level := eval.Level
	if large {
		level = eval.LargeLevel
	}

	if !quiet {
		useColors, _ := cmd.Flags().GetBool("color")
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s on %s\n",
			palette.RenderSwatch(eval.Foreground, useColors),
			palette.RenderSwatch(eval.Background, useColors))
		fmt.Fprintf(out, "  Ratio:        %.2f:1\n", eval.Ratio)
		fmt.Fprintf(out, "  Normal text:  %s\n", palette.RenderStyle(palette.LevelStyle(eval.Level), string(eval.Level), useColors))
		fmt.Fprintf(out, "  Large text:   %s\n", palette.RenderStyle(palette.LevelStyle(eval.LargeLevel), string(eval.LargeLevel), useColors))
	}

	if minLevel == "" {
		return nil
	}
	target := contrast.Level(strings.ToUpper(minLevel))
	if target != contrast.LevelAA && target != contrast.LevelAAA {
		return fmt.Errorf("invalid --min-level %q (want AA or AAA)", minLevel)
	}
	if !level.Meets(target) {
		if !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "\n%.2f:1 is %s, below %s\n", eval.Ratio, level, target)
		}
		return errGateFailed
	}
	return nil
}
