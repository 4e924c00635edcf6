package contrast

// Level is a WCAG compliance classification.
type Level string

// Compliance levels, highest first.
const (
	LevelAAA  Level = "AAA"
	LevelAA   Level = "AA"
	LevelFail Level = "Fail"
)

// Minimum ratios for normal-size text.
const (
	RatioAAA = 7.0
	RatioAA  = 4.5
)

// Minimum ratios for large text (18pt, or 14pt bold).
const (
	LargeRatioAAA = 4.5
	LargeRatioAA  = 3.0
)

// ComplianceLevel classifies a contrast ratio for normal text.
// Boundary values belong to the higher tier. Any float64 is accepted.
func ComplianceLevel(ratio float64) Level {
	return classify(ratio, RatioAAA, RatioAA)
}

// LargeTextLevel classifies a contrast ratio for large text.
func LargeTextLevel(ratio float64) Level {
	return classify(ratio, LargeRatioAAA, LargeRatioAA)
}

func classify(ratio, aaa, aa float64) Level {
	switch {
	case ratio >= aaa:
		return LevelAAA
	case ratio >= aa:
		return LevelAA
	default:
		return LevelFail
	}
}

// rank orders levels so that higher is stricter. Unknown levels rank as Fail.
func (l Level) rank() int {
	switch l {
	case LevelAAA:
		return 2
	case LevelAA:
		return 1
	default:
		return 0
	}
}

// Meets reports whether l is at least as strict as minimum.
func (l Level) Meets(minimum Level) bool {
	return l.rank() >= minimum.rank()
}

// Valid reports whether l is one of the defined levels.
func (l Level) Valid() bool {
	return l == LevelAAA || l == LevelAA || l == LevelFail
}

// Evaluation is the result of the parse, luminance, ratio, classify chain.
type Evaluation struct {
	Foreground RGB
	Background RGB
	Ratio      float64
	Level      Level // normal text
	LargeLevel Level // large text
}

// Evaluate runs the full chain for a foreground/background pair.
// Unparseable input propagates as an error wrapping ErrUnavailable; no level is guessed.
func Evaluate(fg, bg string) (Evaluation, error) {
	fgRGB, err := ParseColor(fg)
	if err != nil {
		return Evaluation{}, fmtUnavailable(err)
	}
	bgRGB, err := ParseColor(bg)
	if err != nil {
		return Evaluation{}, fmtUnavailable(err)
	}
	return EvaluateRGB(fgRGB, bgRGB), nil
}

// EvaluateRGB is Evaluate for already parsed colors.
func EvaluateRGB(fg, bg RGB) Evaluation {
	ratio := Ratio(fg, bg)
	return Evaluation{
		Foreground: fg,
		Background: bg,
		Ratio:      ratio,
		Level:      ComplianceLevel(ratio),
		LargeLevel: LargeTextLevel(ratio),
	}
}
