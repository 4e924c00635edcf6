// Package contrast computes WCAG 2.1 contrast ratios between colors.
//
// The engine is a set of pure functions. Nothing is cached and nothing is
// shared, so every function is safe to call from any number of goroutines.
//
// # Parsing
//
// Colors are accepted as 3-digit hex, 6-digit hex, rgb() or rgba():
//
//	rgb, err := contrast.ParseColor("#1976d2")
//	if errors.Is(err, contrast.ErrUnparseable) {
//		// handle bad input at the call site
//	}
//
// # Ratios and levels
//
//	ratio, err := contrast.ContrastRatio("#ffffff", "#1976d2")
//	level := contrast.ComplianceLevel(ratio) // "AA"
//
// A ratio that depends on an unparseable color is never guessed: ContrastRatio
// returns an error wrapping ErrUnavailable instead.
//
// # Foreground selection
//
//	fg := contrast.ForegroundFor("#1976d2") // "#ffffff"
//
// ForegroundFor is the only function with a fallback: it returns Black for
// input it cannot parse.
//
// # CLI Tool
//
// The contrast CLI audits design tokens declared as CSS custom properties.
// Install with:
//
//	go install github.com/yacobolo/contrast/cmd/contrast@latest
package contrast

import "errors"

var (
	// ErrUnparseable is returned when a string matches none of the recognized color forms.
	ErrUnparseable = errors.New("unparseable color")
	// ErrUnavailable is returned when a value depends on a color that could not be parsed.
	ErrUnavailable = errors.New("contrast unavailable")
)
