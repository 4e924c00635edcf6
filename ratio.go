package contrast

import "fmt"

// ContrastRatio computes the WCAG contrast ratio between two color strings.
// If either color cannot be parsed, the ratio is unavailable: the returned
// error wraps both ErrUnavailable and ErrUnparseable, and the ratio is 0.
func ContrastRatio(a, b string) (float64, error) {
	ca, err := ParseColor(a)
	if err != nil {
		return 0, fmtUnavailable(err)
	}
	cb, err := ParseColor(b)
	if err != nil {
		return 0, fmtUnavailable(err)
	}
	return Ratio(ca, cb), nil
}

// Ratio computes the contrast ratio between two parsed colors.
// The result is symmetric and lies in [1, 21] for in-gamut colors.
func Ratio(a, b RGB) float64 {
	return ratioFromLuminance(a.Luminance(), b.Luminance())
}

func ratioFromLuminance(l1, l2 float64) float64 {
	lighter, darker := l1, l2
	if darker > lighter {
		lighter, darker = darker, lighter
	}
	return (lighter + 0.05) / (darker + 0.05)
}

func fmtUnavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, err)
}
