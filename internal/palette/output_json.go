package palette

import (
	"encoding/json"
	"io"
	"time"

	"github.com/yacobolo/contrast"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
	Tokens    []JSONToken `json:"tokens"`
	Pairs     []JSONPair  `json:"pairs"`
	Fixes     []JSONFix   `json:"fixes"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains token and pair statistics
type JSONStats struct {
	TokensFound    int            `json:"tokens_found"`
	ColorsResolved int            `json:"colors_resolved"`
	PairsChecked   int            `json:"pairs_checked"`
	Unavailable    int            `json:"unavailable"`
	Levels         map[string]int `json:"levels"`
	PassPercentage float64        `json:"pass_percentage"`
}

// JSONIssue represents a single audit issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// JSONToken represents a resolved color token
type JSONToken struct {
	Name       string  `json:"name"`
	Value      string  `json:"value"`
	Hex        string  `json:"hex"`
	Scope      string  `json:"scope"`
	Category   string  `json:"category"`
	Luminance  float64 `json:"luminance"`
	Foreground string  `json:"foreground"` // Black or white text for this color
	File       string  `json:"file"`
	Line       int     `json:"line"`
}

// JSONPair represents an evaluated pair. Ratio and level are omitted when
// the pair is unavailable.
type JSONPair struct {
	Foreground string   `json:"foreground"`
	Background string   `json:"background"`
	Scope      string   `json:"scope"`
	Source     string   `json:"source"`
	LargeText  bool     `json:"large_text"`
	Ratio      *float64 `json:"ratio,omitempty"`
	Level      string   `json:"level,omitempty"`
	Passed     bool     `json:"passed"`
	Reason     string   `json:"reason,omitempty"`
}

// JSONFix represents a suggested foreground for a failing pair
type JSONFix struct {
	Foreground     string  `json:"foreground"`
	Background     string  `json:"background"`
	Scope          string  `json:"scope"`
	Ratio          float64 `json:"ratio"`
	Target         float64 `json:"target"`
	Suggested      string  `json:"suggested"`
	SuggestedRatio float64 `json:"suggested_ratio"`
	Met            bool    `json:"met"`
}

// WriteJSON writes the audit result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result)
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result) JSONOutput {
	var errors, warnings int
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	jsonTokens := make([]JSONToken, 0, result.ColorsResolved)
	for _, t := range result.Tokens {
		if !t.Resolved {
			continue
		}
		jsonTokens = append(jsonTokens, JSONToken{
			Name:       t.Name,
			Value:      t.Value,
			Hex:        t.Hex(),
			Scope:      t.Scope,
			Category:   string(t.Category),
			Luminance:  t.RGB.Luminance(),
			Foreground: contrast.ForegroundForRGB(t.RGB),
			File:       t.SourceFile,
			Line:       t.Line,
		})
	}

	jsonPairs := make([]JSONPair, len(result.Pairs))
	for i, p := range result.Pairs {
		jp := JSONPair{
			Foreground: p.Spec.Foreground,
			Background: p.Spec.Background,
			Scope:      p.Scope,
			Source:     string(p.Spec.Source),
			LargeText:  p.Spec.LargeText,
			Passed:     p.Passed,
			Reason:     p.Reason,
		}
		if p.Available {
			ratio := p.Evaluation.Ratio
			jp.Ratio = &ratio
			jp.Level = string(p.Level())
		}
		jsonPairs[i] = jp
	}

	jsonFixes := make([]JSONFix, len(result.Fixes))
	for i, fix := range result.Fixes {
		jsonFixes[i] = JSONFix{
			Foreground:     fix.Pair.Spec.Foreground,
			Background:     fix.Pair.Spec.Background,
			Scope:          fix.Pair.Scope,
			Ratio:          fix.Pair.Evaluation.Ratio,
			Target:         fix.Target,
			Suggested:      fix.Suggested,
			SuggestedRatio: fix.SuggestedRatio,
			Met:            fix.Met,
		}
	}

	levels := make(map[string]int, len(result.LevelCounts))
	for level, count := range result.LevelCounts {
		levels[string(level)] = count
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       errors,
			Warnings:     warnings,
			FilesScanned: result.FilesScanned,
		},
		Stats: JSONStats{
			TokensFound:    result.TokensFound,
			ColorsResolved: result.ColorsResolved,
			PairsChecked:   result.PairsChecked,
			Unavailable:    result.Unavailable,
			Levels:         levels,
			PassPercentage: result.PassPercentage,
		},
		Issues: jsonIssues,
		Tokens: jsonTokens,
		Pairs:  jsonPairs,
		Fixes:  jsonFixes,
	}
}
