package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "contrast",
	Short: "WCAG contrast checker and design-token palette auditor",
	Long: `Compute WCAG 2.x contrast ratios and compliance levels for color pairs.
Audit CSS custom properties for foreground/background pairs that fall
below AA or AAA.`,
	// Default behavior: run audit when no subcommand is given.
	// We must call loadConfig here because PreRunE of auditCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runAudit(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", defaultConfigFile, "Config file path")

	// The root command runs audit, so it accepts the audit flags too
	addAuditFlags(rootCmd)

	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(fgCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
