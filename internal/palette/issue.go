package palette

// Issue represents a single audit finding in golangci-lint format
type Issue struct {
	FromLinter  string   `json:"FromLinter"`  // "contrast"
	Text        string   `json:"Text"`        // "--ui-text-muted on --ui-surface has contrast 3.20:1 (Fail), below AA"
	Severity    string   `json:"Severity"`    // "", "warning", "error"
	SourceLines []string `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos `json:"Pos"`         // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "web/styles/tokens.css"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 3 (1-based start of the token name)
}

// LinterName is reported as the FromLinter of every issue
const LinterName = "contrast"

// configFilename stands in for pairs that have no token declaration to point at
const configFilename = "<config>"

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Issue message formats
const (
	IssueLowContrast   = "%s on %s has contrast %.2f:1 (%s), below %s"
	IssueLargeTextOnly = "%s on %s has contrast %.2f:1, meets %s for large text only"
	IssueUnavailable   = "contrast of %s on %s unavailable: %s"
)
