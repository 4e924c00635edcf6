package contrast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestForegroundFor(t *testing.T) {
	tests := []struct {
		name       string
		background string
		want       string
	}{
		{name: "white background", background: "#ffffff", want: Black},
		{name: "black background", background: "#000000", want: White},
		{name: "primary blue sits just under the threshold", background: "#1976d2", want: White},
		{name: "mid gray sits just over the threshold", background: "#777777", want: Black},
		{name: "yellow", background: "#ff0", want: Black},
		{name: "navy rgb", background: "rgb(0, 0, 128)", want: White},
		{name: "unparseable falls back to black", background: "not-a-color", want: Black},
		{name: "empty falls back to black", background: "", want: Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ForegroundFor(tt.background))
		})
	}
}

func TestProperty_ForegroundMatchesThreshold(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := drawRGB(rt)
		got := ForegroundFor(c.Hex())
		if c.Luminance() > ForegroundThreshold {
			assert.Equal(rt, Black, got)
		} else {
			assert.Equal(rt, White, got)
		}
	})
}
