package contrast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest_AlreadyCompliant(t *testing.T) {
	s, err := Suggest("#000000", "#ffffff", 7)
	require.NoError(t, err)
	assert.Equal(t, "#000000", s.Color)
	assert.True(t, s.Met)
	assert.Equal(t, 21.0, s.Ratio)
}

func TestSuggest_DarkensOnLightBackground(t *testing.T) {
	s, err := Suggest("#777777", "#ffffff", RatioAA)
	require.NoError(t, err)
	require.True(t, s.Met)
	assert.GreaterOrEqual(t, s.Ratio, RatioAA)

	got, err := ParseColor(s.Color)
	require.NoError(t, err)
	assert.Less(t, got.Luminance(), RGB{0x77, 0x77, 0x77}.Luminance())

	ratio, err := ContrastRatio(s.Color, "#ffffff")
	require.NoError(t, err)
	assert.InDelta(t, s.Ratio, ratio, 1e-9)
}

func TestSuggest_LightensOnDarkBackground(t *testing.T) {
	s, err := Suggest("#1976d2", "#000000", RatioAAA)
	require.NoError(t, err)
	require.True(t, s.Met)
	assert.GreaterOrEqual(t, s.Ratio, RatioAAA)

	got, err := ParseColor(s.Color)
	require.NoError(t, err)
	assert.Greater(t, got.Luminance(), RGB{25, 118, 210}.Luminance())
}

func TestSuggest_DefaultsToAA(t *testing.T) {
	s, err := Suggest("#999999", "#ffffff", 0)
	require.NoError(t, err)
	assert.True(t, s.Met)
	assert.GreaterOrEqual(t, s.Ratio, RatioAA)
}

func TestSuggest_Unreachable(t *testing.T) {
	// Black on mid gray is the best possible and stays under 21
	s, err := Suggest("#777777", "#777777", 21)
	require.NoError(t, err)
	assert.False(t, s.Met)
	assert.Equal(t, Black, s.Color)
	assert.InDelta(t, 4.69, s.Ratio, 0.01)
}

func TestSuggest_Unparseable(t *testing.T) {
	_, err := Suggest("nope", "#ffffff", 4.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnparseable))

	_, err = Suggest("#000", "nope", 4.5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnparseable))
}
