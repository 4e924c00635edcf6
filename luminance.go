package contrast

import "math"

// linearThreshold is the sRGB cutoff used by WCAG 2.1.
const linearThreshold = 0.03928

// RelativeLuminance implements the WCAG 2.1 relative luminance formula.
// For channels in 0-255 the result lies in [0, 1].
func RelativeLuminance(r, g, b int) float64 {
	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// Luminance returns the relative luminance of the triple.
func (c RGB) Luminance() float64 {
	return RelativeLuminance(c.R, c.G, c.B)
}

// linearize maps an 8-bit sRGB channel to linear light.
func linearize(channel int) float64 {
	c := float64(channel) / 255
	if c <= linearThreshold {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
