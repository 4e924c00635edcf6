package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yacobolo/contrast/internal/palette"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit CSS design tokens for contrast failures",
	Long: `Scan CSS custom properties, resolve var() aliases and check every
foreground/background pair against WCAG AA or AAA. Pairs come from
@contrast-on annotations, the pairs list in config, and optionally from
pairing every text token with every background token.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAudit(cmd)
	},
}

// auditOptions are the audit settings that shape output and the exit code
// rather than the audit itself
type auditOptions struct {
	OutputFormat string  `validate:"omitempty,oneof=issues summary full json markdown md"`
	Strict       bool
	Threshold    float64 `validate:"gte=0,lte=100"`
	Quiet        bool
}

func init() {
	addAuditFlags(auditCmd)
}

// addAuditFlags registers the audit flags on cmd. The root command shares them
// because it runs audit by default.
func addAuditFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("source", defaultSource, "Source CSS directory")
	f.StringSlice("include", nil, "Glob patterns for CSS files to include (default **/*.css)")
	f.String("min-level", "AA", "Minimum compliance level: AA|AAA")
	f.Bool("implicit-pairs", false, "Pair every text token with every background token")
	f.Bool("extract-annotations", true, "Parse @contrast-on comments from CSS")
	f.Bool("infer-layer", true, "Infer layer from file path")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Float64("threshold", 0.0, "Minimum pass percentage for strict mode")
	f.String("output-format", "", "Output format: issues|summary|full|json|markdown")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (contrast) suffix on issues")
	f.Bool("swatches", true, "Show palette swatches in summary and full output")
}

// buildAuditOptions reads output and gate settings from koanf state
func buildAuditOptions() (auditOptions, error) {
	opts := auditOptions{
		OutputFormat: getStringWithFallback("output-format", "audit.output-format", ""),
		Strict:       getBoolWithFallback("strict", "audit.strict", false),
		Threshold:    getFloat64WithFallback("threshold", "audit.threshold", 0.0),
		Quiet:        getBoolWithFallback("quiet", "quiet", false),
	}
	return opts, palette.ValidateStruct(opts)
}

func runAudit(cmd *cobra.Command) error {
	config, err := buildAuditConfig()
	if err != nil {
		return err
	}
	opts, err := buildAuditOptions()
	if err != nil {
		return err
	}

	config.Logger = newLogger(cmd)

	result, err := palette.Audit(config)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	format := palette.DetermineOutputFormat(opts.OutputFormat, opts.Quiet)
	if !opts.Quiet {
		if err := palette.WriteOutput(cmd.OutOrStdout(), result, format, config); err != nil {
			return err
		}
	}

	return auditGate(cmd.ErrOrStderr(), result, opts)
}

// auditGate decides the exit status.
// Default "soft gate": only errors fail. Strict: any issue fails, and so does
// a pass percentage below the threshold.
func auditGate(errOut io.Writer, result *palette.Result, opts auditOptions) error {
	if !opts.Strict {
		if result.ErrorCount > 0 {
			return errGateFailed
		}
		return nil
	}

	if result.ErrorCount+result.WarningCount > 0 {
		return errGateFailed
	}

	if opts.Threshold > 0 && result.PassPercentage < opts.Threshold {
		if !opts.Quiet {
			fmt.Fprintf(errOut, "\nStrict mode: pass percentage %.1f%% is below threshold %.1f%%\n",
				result.PassPercentage, opts.Threshold)
		}
		return errGateFailed
	}

	return nil
}
