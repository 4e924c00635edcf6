package contrast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestContrastRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "black on white", a: "#000000", b: "#ffffff", want: 21},
		{name: "white on white", a: "#ffffff", b: "#ffffff", want: 1},
		{name: "shorthand", a: "#000", b: "#fff", want: 21},
		{name: "mixed encodings", a: "rgb(0, 0, 0)", b: "#fff", want: 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ContrastRatio(tt.a, tt.b)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestContrastRatio_KnownPairs(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		want  float64
		level Level
	}{
		{name: "primary blue with white text", a: "#ffffff", b: "#1976d2", want: 4.60, level: LevelAA},
		{name: "gray 76 just passes AA", a: "#767676", b: "#ffffff", want: 4.54, level: LevelAA},
		{name: "gray 77 just fails AA", a: "#777777", b: "#ffffff", want: 4.48, level: LevelFail},
		{name: "gray 59 reaches AAA", a: "#595959", b: "#ffffff", want: 7.00, level: LevelAAA},
		{name: "red on white", a: "#ff0000", b: "#ffffff", want: 4.00, level: LevelFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContrastRatio(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.01)
			assert.Equal(t, tt.level, ComplianceLevel(got))
		})
	}
}

func TestContrastRatio_Unavailable(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{name: "first unparseable", a: "not-a-color", b: "#ffffff"},
		{name: "second unparseable", a: "#ffffff", b: "not-a-color"},
		{name: "both unparseable", a: "", b: "#12"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContrastRatio(tt.a, tt.b)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnavailable))
			assert.True(t, errors.Is(err, ErrUnparseable))
			assert.Zero(t, got)
		})
	}
}

func TestProperty_RatioSymmetric(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		a := drawRGB(rt).Hex()
		b := drawRGB(rt).Hex()

		ab, err := ContrastRatio(a, b)
		require.NoError(rt, err)
		ba, err := ContrastRatio(b, a)
		require.NoError(rt, err)

		require.Equal(rt, ab, ba)
	})
}

func TestProperty_RatioWithinBounds(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := Ratio(drawRGB(rt), drawRGB(rt))
		require.GreaterOrEqual(rt, r, 1.0)
		require.LessOrEqual(rt, r, 21.0)
	})
}

func TestProperty_RatioIdentity(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		c := drawRGB(rt)
		require.Equal(rt, 1.0, Ratio(c, c))
	})
}
