package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yacobolo/contrast"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{
		SourceDir: "web/styles",
		Includes:  []string{"**/*.css"},
		MinLevel:  contrast.LevelAA,
		Pairs: []PairSpec{
			{Foreground: "--ui-text", Background: "#fff"},
			{Foreground: "rgb(0, 0, 0)", Background: "--ui-surface", LargeText: true},
		},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "missing source",
			mutate: func(c *Config) { c.SourceDir = "" },
			field:  "sourcedir failed validation for tag 'required'",
		},
		{
			name:   "no includes",
			mutate: func(c *Config) { c.Includes = nil },
			field:  "includes failed validation for tag 'min'",
		},
		{
			name:   "fail is not a target level",
			mutate: func(c *Config) { c.MinLevel = contrast.LevelFail },
			field:  "minlevel failed validation for tag 'oneof'",
		},
		{
			name:   "negative max issues",
			mutate: func(c *Config) { c.MaxIssues = -1 },
			field:  "maxissues failed validation for tag 'gte'",
		},
		{
			name:   "pair side is neither token nor color",
			mutate: func(c *Config) { c.Pairs = []PairSpec{{Foreground: "ui-text", Background: "#fff"}} },
			field:  "pairs[0].foreground failed validation for tag 'color_ref'",
		},
		{
			name:   "pair side missing",
			mutate: func(c *Config) { c.Pairs = []PairSpec{{Foreground: "#000"}} },
			field:  "pairs[0].background failed validation for tag 'required'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := valid
			config.Pairs = append([]PairSpec(nil), valid.Pairs...)
			tt.mutate(&config)

			err := config.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}
