package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/contrast"
	"github.com/yacobolo/contrast/internal/logger"
	"github.com/yacobolo/contrast/internal/palette"
)

const (
	defaultConfigFile = ".contrast.yaml"
	envPrefix         = "CONTRAST_"
)

var k = koanf.New(".")

// Defaults shared by flags, config building and the init template
var (
	defaultSource   = "."
	defaultIncludes = []string{"**/*.css"}
)

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	// Resolve config file path from flag
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigFile
	}

	// Load config file and env vars
	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (highest precedence, only flags that were explicitly set
	// so that file and env values are not shadowed by flag defaults)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", nil), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CONTRAST_* prefix)
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKey maps an environment variable to a config key. The first underscore
// separates the section, the rest become dashes:
//
//	CONTRAST_AUDIT_MIN_LEVEL -> audit.min-level
//	CONTRAST_VERBOSE         -> verbose
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	section, name, found := strings.Cut(key, "_")
	if !found {
		return key
	}
	return section + "." + strings.ReplaceAll(name, "_", "-")
}

// buildAuditConfig constructs the palette Config from koanf state.
func buildAuditConfig() (palette.Config, error) {
	config := palette.Config{
		SourceDir:          getStringWithFallback("source", "audit.source", defaultSource),
		MinLevel:           contrast.Level(strings.ToUpper(getStringWithFallback("min-level", "audit.min-level", string(contrast.LevelAA)))),
		ImplicitPairs:      getBoolWithFallback("implicit-pairs", "audit.implicit-pairs", false),
		ExtractPairs:       getBoolWithFallback("extract-annotations", "audit.extract-annotations", true),
		LayerInferFromPath: getBoolWithFallback("infer-layer", "audit.infer-layer", true),
		Verbose:            getBoolWithFallback("verbose", "verbose", false),
		MaxIssues:          getIntWithFallback("max-issues", "audit.max-issues", 0),
		MaxSameIssues:      getIntWithFallback("max-same-issues", "audit.max-same-issues", 0),
		PrintIssuedLines:   getBoolWithFallback("print-lines", "audit.print-lines", true),
		PrintLinterName:    getBoolWithFallback("print-linter-name", "audit.print-linter-name", true),
		UseColors:          getBoolWithFallback("color", "color", false),
		ShowSwatches:       getBoolWithFallback("swatches", "audit.swatches", true),
	}

	// Handle includes: check flag key first, then config key
	if includes := k.Strings("include"); len(includes) > 0 {
		config.Includes = includes
	} else if includes := k.Strings("audit.include"); len(includes) > 0 {
		config.Includes = includes
	} else {
		config.Includes = append([]string(nil), defaultIncludes...)
	}

	if k.Exists("audit.pairs") {
		if err := k.Unmarshal("audit.pairs", &config.Pairs); err != nil {
			return config, fmt.Errorf("reading audit.pairs: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// newLogger builds the stderr logger; --verbose enables debug output
func newLogger(cmd *cobra.Command) *logger.Logger {
	return logger.New(logger.Options{
		Verbose: getBoolWithFallback("verbose", "verbose", false),
		Writer:  cmd.ErrOrStderr(),
	})
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getIntWithFallback checks the flag key first, then the config file key, then returns the default.
func getIntWithFallback(flagKey, configKey string, defaultVal int) int {
	if k.Exists(flagKey) {
		return k.Int(flagKey)
	}
	if k.Exists(configKey) {
		return k.Int(configKey)
	}
	return defaultVal
}

// getFloat64WithFallback checks the flag key first, then the config file key, then returns the default.
func getFloat64WithFallback(flagKey, configKey string, defaultVal float64) float64 {
	if k.Exists(flagKey) {
		return k.Float64(flagKey)
	}
	if k.Exists(configKey) {
		return k.Float64(configKey)
	}
	return defaultVal
}
