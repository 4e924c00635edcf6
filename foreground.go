package contrast

// Foreground colors returned by ForegroundFor.
const (
	Black = "#000000"
	White = "#ffffff"
)

// ForegroundThreshold is the background luminance above which black text is
// chosen. It sits near the point where black and white give equal contrast.
const ForegroundThreshold = 0.179

// ForegroundFor picks black or white text for the given background.
// Backgrounds that cannot be parsed get Black.
func ForegroundFor(background string) string {
	c, err := ParseColor(background)
	if err != nil {
		return Black
	}
	return ForegroundForRGB(c)
}

// ForegroundForRGB is ForegroundFor for an already parsed background.
func ForegroundForRGB(background RGB) string {
	if background.Luminance() > ForegroundThreshold {
		return Black
	}
	return White
}
