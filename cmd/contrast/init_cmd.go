package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .contrast.yaml config file",
	Long:  `Create a .contrast.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(defaultConfigFile); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", defaultConfigFile)
		}

		if err := os.WriteFile(defaultConfigFile, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", defaultConfigFile)
		return nil
	},
}

const defaultConfig = `# contrast configuration
# Docs: https://github.com/yacobolo/contrast

verbose: false
color: false

# Audit settings
audit:
  source: .
  include:
    - "**/*.css"
  min-level: AA              # AA | AAA
  implicit-pairs: false      # pair every text token with every background token
  extract-annotations: true  # read /* @contrast-on --ui-surface */ comments
  infer-layer: true
  # Extra pairs to check. Each side is a token name or a color.
  # pairs:
  #   - foreground: "--ui-text"
  #     background: "--ui-surface"
  #   - foreground: "--ui-text-on-primary"
  #     background: "--ui-primary"
  #     large-text: true
  strict: false
  threshold: 0.0             # minimum pass percentage in strict mode
  output-format: issues      # issues | summary | full | json | markdown
  max-issues: 0              # 0 = unlimited
  max-same-issues: 0         # 0 = unlimited
  print-lines: true
  print-linter-name: true
  swatches: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
