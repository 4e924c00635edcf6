package contrast

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// lightnessStep is the HCL lightness increment per search step.
const lightnessStep = 0.01

// Suggestion is a foreground color adjusted to reach a target ratio.
type Suggestion struct {
	Color string  // #rrggbb
	Ratio float64 // ratio of Color against the background
	Met   bool    // false when no lightness reaches the target
}

// Suggest moves the lightness of fg away from bg in CIE LCh space until the
// contrast ratio reaches minRatio. Hue and chroma are kept where the gamut allows.
// A minRatio <= 0 means RatioAA. When the target is out of reach, the candidate
// with the best ratio is returned with Met set to false.
func Suggest(fg, bg string, minRatio float64) (Suggestion, error) {
	fgRGB, err := ParseColor(fg)
	if err != nil {
		return Suggestion{}, fmt.Errorf("foreground: %w", err)
	}
	bgRGB, err := ParseColor(bg)
	if err != nil {
		return Suggestion{}, fmt.Errorf("background: %w", err)
	}
	return SuggestRGB(fgRGB, bgRGB, minRatio), nil
}

// SuggestRGB is Suggest for already parsed colors.
func SuggestRGB(fg, bg RGB, minRatio float64) Suggestion {
	if minRatio <= 0 {
		minRatio = RatioAA
	}

	best := Suggestion{Color: fg.Hex(), Ratio: Ratio(fg, bg)}
	if best.Ratio >= minRatio {
		best.Met = true
		return best
	}

	h, c, l := toColorful(fg).Hcl()

	// Dark text on light backgrounds, light text on dark ones
	step := lightnessStep
	if ForegroundForRGB(bg) == Black {
		step = -lightnessStep
	}

	for l = l + step; l >= 0 && l <= 1; l += step {
		candidate := fromColorful(colorful.Hcl(h, c, l).Clamped())
		ratio := Ratio(candidate, bg)
		if ratio > best.Ratio {
			best = Suggestion{Color: candidate.Hex(), Ratio: ratio}
		}
		if ratio >= minRatio {
			best.Met = true
			return best
		}
	}

	// Lightness exhausted with chroma kept; fall back to the pure extreme
	extreme, _ := ParseColor(ForegroundForRGB(bg))
	if ratio := Ratio(extreme, bg); ratio > best.Ratio {
		best = Suggestion{Color: extreme.Hex(), Ratio: ratio}
	}
	best.Met = best.Ratio >= minRatio
	return best
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(clampChannel(c.R)) / 255,
		G: float64(clampChannel(c.G)) / 255,
		B: float64(clampChannel(c.B)) / 255,
	}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.RGB255()
	return RGB{R: int(r), G: int(g), B: int(b)}
}
