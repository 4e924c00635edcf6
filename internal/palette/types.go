package palette

import (
	"github.com/yacobolo/contrast"
	"github.com/yacobolo/contrast/internal/logger"
)

// TokenCategory groups design tokens by the role their name suggests
type TokenCategory string

// Token categories used for implicit pairing and report grouping
const (
	CategoryText       TokenCategory = "Text"
	CategoryBackground TokenCategory = "Background"
	CategoryBorder     TokenCategory = "Border"
	CategoryAccent     TokenCategory = "Accent"
	CategoryPalette    TokenCategory = "Palette"
)

// BaseScope is the selector whose tokens every other scope inherits
const BaseScope = ":root"

// Token is a CSS custom property declaration
type Token struct {
	Name       string        // "--ui-text-primary"
	Value      string        // "var(--ui-gray-900)" (raw, !important stripped)
	Scope      string        // ":root", ".dark", "@media (prefers-color-scheme: dark) :root"
	Layer      string        // "tokens"
	Category   TokenCategory // From the name
	SourceFile string        // "web/styles/tokens.css"
	Line       int           // 1-based
	Column     int           // 1-based start of the property name
	SourceLine string        // Full line for issue output
	OnPairs    []PairSpec    // From @contrast-on annotations

	// Set by ResolveTokens
	RGB      contrast.RGB
	Resolved bool   // Value (after following aliases) is a color
	AliasOf  string // Final token name when Value is a var() chain
	reason   string // Why the token did not resolve
}

// Hex returns the resolved color or "" when unresolved
func (t *Token) Hex() string {
	if !t.Resolved {
		return ""
	}
	return t.RGB.Hex()
}

// PairSource records where a pair came from
type PairSource string

// Pair sources
const (
	SourceAnnotation PairSource = "annotation"
	SourceConfig     PairSource = "config"
	SourceImplicit   PairSource = "implicit"
)

// PairSpec names a foreground/background combination to check.
// Each side is a token name ("--ui-text") or a literal color ("#fff").
type PairSpec struct {
	Foreground string     `koanf:"foreground" json:"foreground" validate:"required,color_ref"`
	Background string     `koanf:"background" json:"background" validate:"required,color_ref"`
	LargeText  bool       `koanf:"large-text" json:"large_text"`
	Source     PairSource `koanf:"-" json:"source"`
}

// PairResult is an evaluated pair in one scope
type PairResult struct {
	Spec       PairSpec
	Scope      string
	Foreground string // Resolved #rrggbb, "" when unavailable
	Background string
	Evaluation contrast.Evaluation
	Available  bool   // False when either side did not resolve to a color
	Reason     string // Why the pair is unavailable
	Passed     bool   // Meets Config.MinLevel
	Pos        IssuePos
	SourceLine string
}

// Level returns the level that applies to the pair's text size
func (p PairResult) Level() contrast.Level {
	if p.Spec.LargeText {
		return p.Evaluation.LargeLevel
	}
	return p.Evaluation.Level
}

// Fix suggests a foreground for a pair that misses the target level
type Fix struct {
	Pair           PairResult
	Target         float64 // Ratio required by the target level and text size
	Suggested      string  // #rrggbb
	SuggestedRatio float64
	Met            bool // False when no lightness of the hue reaches Target
}

// Config holds audit configuration. It is passed by value and never mutated
// by the audit.
type Config struct {
	SourceDir          string         `validate:"required"`
	Includes           []string       `validate:"min=1,dive,required"`
	Pairs              []PairSpec     `validate:"dive"`
	MinLevel           contrast.Level `validate:"oneof=AA AAA"`
	ImplicitPairs      bool           // Pair every Text token with every Background token
	ExtractPairs       bool           // Parse @contrast-on annotations (default: true)
	LayerInferFromPath bool           // Infer layer from file path (default: true)
	Verbose            bool

	// Output configuration
	MaxIssues        int  `validate:"gte=0"` // 0 = unlimited
	MaxSameIssues    int  `validate:"gte=0"` // 0 = unlimited
	PrintIssuedLines bool // Show source lines with issues (default: true)
	PrintLinterName  bool // Show (contrast) suffix (default: true)
	UseColors        bool // Force color output
	ShowSwatches     bool // Print palette swatches in summary/full output

	Logger *logger.Logger `validate:"-"`
}

// Result contains audit results
type Result struct {
	// Statistics
	FilesScanned   int
	FilesSkipped   int
	TokensFound    int
	ColorsResolved int
	PairsChecked   int
	Unavailable    int
	LevelCounts    map[contrast.Level]int
	PassPercentage float64 // Passing pairs among available pairs

	Tokens []*Token
	Pairs  []PairResult

	// Issues in golangci-lint format
	Issues         []Issue
	ErrorCount     int
	WarningCount   int
	TruncatedCount int

	Fixes []Fix // Worst failing pairs first

	Warnings []string // Files that failed to parse
}

// OutputFormat represents the report output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics and swatches only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics + swatches
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format
	OutputJSON OutputFormat = "json"
	// OutputMarkdown generates a Markdown report
	OutputMarkdown OutputFormat = "markdown"
)
