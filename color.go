package contrast

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RGB is a channel triple. Channels are normally 0-255, but rgb() input is not
// clamped, so a channel may hold whatever integer the source encoded.
type RGB struct {
	R int
	G int
	B int
}

var (
	// Forms are tried in this order
	shortHexPattern = regexp.MustCompile(`^#?([0-9a-fA-F])([0-9a-fA-F])([0-9a-fA-F])$`)
	longHexPattern  = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

	// rgb(r, g, b) and rgba(r, g, b, a). Each channel token contributes its
	// leading integer ("12.7" reads as 12); a fourth token is ignored.
	rgbPattern = regexp.MustCompile(`(?i)^rgba?\(\s*([+-]?\d+)[^,)]*,\s*([+-]?\d+)[^,)]*,\s*([+-]?\d+)[^,)]*(?:,[^)]*)?\)$`)
)

// ParseColor converts a color string into a channel triple.
// Input that matches no recognized form returns an error wrapping ErrUnparseable.
func ParseColor(input string) (RGB, error) {
	s := strings.TrimSpace(input)

	if m := shortHexPattern.FindStringSubmatch(s); m != nil {
		return RGB{
			R: hexChannel(m[1] + m[1]),
			G: hexChannel(m[2] + m[2]),
			B: hexChannel(m[3] + m[3]),
		}, nil
	}

	if m := longHexPattern.FindStringSubmatch(s); m != nil {
		return RGB{
			R: hexChannel(m[1]),
			G: hexChannel(m[2]),
			B: hexChannel(m[3]),
		}, nil
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		var channels [3]int
		for i := range channels {
			v, err := strconv.Atoi(m[i+1])
			if err != nil {
				// Digit run too long for int
				return RGB{}, fmt.Errorf("%w: %q", ErrUnparseable, input)
			}
			channels[i] = v
		}
		return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
	}

	return RGB{}, fmt.Errorf("%w: %q", ErrUnparseable, input)
}

// hexChannel decodes a two-digit hex string already validated by the patterns.
func hexChannel(s string) int {
	v, _ := strconv.ParseUint(s, 16, 8)
	return int(v)
}

// Hex formats the triple as #rrggbb. Out-of-range channels are clamped for display only.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", clampChannel(c.R), clampChannel(c.G), clampChannel(c.B))
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// InGamut reports whether every channel lies within 0-255.
func (c RGB) InGamut() bool {
	return c.R >= 0 && c.R <= 255 &&
		c.G >= 0 && c.G <= 255 &&
		c.B >= 0 && c.B <= 255
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
