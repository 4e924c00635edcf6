package contrast

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{name: "6-digit hex", input: "#ff0000", want: RGB{255, 0, 0}},
		{name: "3-digit hex", input: "#f00", want: RGB{255, 0, 0}},
		{name: "uppercase hex", input: "#1976D2", want: RGB{25, 118, 210}},
		{name: "hex without hash", input: "1976d2", want: RGB{25, 118, 210}},
		{name: "shorthand without hash", input: "abc", want: RGB{0xaa, 0xbb, 0xcc}},
		{name: "surrounding whitespace", input: "  #fff  ", want: RGB{255, 255, 255}},
		{name: "rgb", input: "rgb(25, 118, 210)", want: RGB{25, 118, 210}},
		{name: "rgb without spaces", input: "rgb(1,2,3)", want: RGB{1, 2, 3}},
		{name: "rgba ignores alpha", input: "rgba(255, 0, 0, 0.5)", want: RGB{255, 0, 0}},
		{name: "uppercase rgb", input: "RGB(10, 20, 30)", want: RGB{10, 20, 30}},
		{name: "fractional channel truncates", input: "rgb(12.7, 0, 0)", want: RGB{12, 0, 0}},
		{name: "out of range is not clamped", input: "rgb(300, 0, 0)", want: RGB{300, 0, 0}},
		{name: "negative channel", input: "rgb(-5, 0, 0)", want: RGB{-5, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseColor(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestParseColor_Unparseable(t *testing.T) {
	inputs := []string{
		"",
		"not-a-color",
		"#ff00",
		"#ff0000ff",
		"#gggggg",
		"#12",
		"rgb(1, 2)",
		"rgb(a, b, c)",
		"rgb(1, 2, 3",
		"hsl(0, 100%, 50%)",
		"red",
	}

	for _, input := range inputs {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			got, err := ParseColor(input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnparseable))
			assert.Equal(t, RGB{}, got)
		})
	}
}

func TestRGBHex(t *testing.T) {
	assert.Equal(t, "#1976d2", RGB{25, 118, 210}.Hex())
	assert.Equal(t, "#000000", RGB{}.Hex())
	// Clamped for display only
	assert.Equal(t, "#ff0010", RGB{300, -5, 16}.Hex())
	assert.Equal(t, "rgb(300, -5, 16)", RGB{300, -5, 16}.String())
}

func TestRGBInGamut(t *testing.T) {
	assert.True(t, RGB{0, 128, 255}.InGamut())
	assert.False(t, RGB{256, 0, 0}.InGamut())
	assert.False(t, RGB{0, -1, 0}.InGamut())
}

func TestProperty_HexRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := drawRGB(rt)

		got, err := ParseColor(c.Hex())
		require.NoError(rt, err)
		require.Equal(rt, c, got)
	})
}

func TestProperty_ShortHexDoublesDigits(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := rapid.IntRange(0, 15).Draw(rt, "r")
		g := rapid.IntRange(0, 15).Draw(rt, "g")
		b := rapid.IntRange(0, 15).Draw(rt, "b")

		short, err := ParseColor(fmt.Sprintf("#%x%x%x", r, g, b))
		require.NoError(rt, err)
		long, err := ParseColor(fmt.Sprintf("#%x%x%x%x%x%x", r, r, g, g, b, b))
		require.NoError(rt, err)

		require.Equal(rt, long, short)
		require.Equal(rt, RGB{r * 17, g * 17, b * 17}, short)
	})
}

func drawRGB(rt *rapid.T) RGB {
	return RGB{
		R: rapid.IntRange(0, 255).Draw(rt, "r"),
		G: rapid.IntRange(0, 255).Draw(rt, "g"),
		B: rapid.IntRange(0, 255).Draw(rt, "b"),
	}
}
