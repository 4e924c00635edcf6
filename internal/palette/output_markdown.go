package palette

import (
	"fmt"
	"io"
	"strings"
)

// WriteMarkdown writes a shareable Markdown report
func WriteMarkdown(w io.Writer, result *Result) error {
	var b strings.Builder

	b.WriteString("# Contrast Report\n\n")

	b.WriteString("## Summary\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Files scanned | %d |\n", result.FilesScanned)
	fmt.Fprintf(&b, "| Tokens found | %d |\n", result.TokensFound)
	fmt.Fprintf(&b, "| Colors resolved | %d |\n", result.ColorsResolved)
	fmt.Fprintf(&b, "| Pairs checked | %d |\n", result.PairsChecked)
	fmt.Fprintf(&b, "| Unavailable | %d |\n", result.Unavailable)
	fmt.Fprintf(&b, "| Pass rate | %.1f%% |\n", result.PassPercentage)
	fmt.Fprintf(&b, "| Errors | %d |\n", result.ErrorCount)
	fmt.Fprintf(&b, "| Warnings | %d |\n", result.WarningCount)

	if len(result.Pairs) > 0 {
		b.WriteString("\n## Pairs\n\n")
		b.WriteString("| Foreground | Background | Scope | Ratio | Level |\n")
		b.WriteString("|------------|------------|-------|-------|-------|\n")
		for _, p := range result.Pairs {
			ratio, level := "n/a", "n/a"
			if p.Available {
				ratio = fmt.Sprintf("%.2f:1", p.Evaluation.Ratio)
				level = string(p.Level())
				if p.Spec.LargeText {
					level += " (large)"
				}
			}
			fmt.Fprintf(&b, "| `%s` | `%s` | `%s` | %s | %s |\n",
				p.Spec.Foreground, p.Spec.Background, p.Scope, ratio, level)
		}
	}

	if len(result.Fixes) > 0 {
		b.WriteString("\n## Quick Fixes\n\n")
		b.WriteString("| Foreground | Background | Scope | Ratio | Suggested |\n")
		b.WriteString("|------------|------------|-------|-------|-----------|\n")
		for _, fix := range result.Fixes {
			suggested := fmt.Sprintf("`%s` (%.2f:1)", fix.Suggested, fix.SuggestedRatio)
			if !fix.Met {
				suggested += " target not reachable"
			}
			fmt.Fprintf(&b, "| `%s` | `%s` | `%s` | %.2f:1 | %s |\n",
				fix.Pair.Spec.Foreground, fix.Pair.Spec.Background, fix.Pair.Scope, fix.Pair.Evaluation.Ratio, suggested)
		}
	}

	if len(result.Issues) > 0 {
		b.WriteString("\n## Issues\n\n")
		for _, issue := range result.Issues {
			fmt.Fprintf(&b, "- **%s** `%s:%d:%d` %s\n",
				severityLabel(issue.Severity), issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column, issue.Text)
		}
		if result.TruncatedCount > 0 {
			fmt.Fprintf(&b, "\n_%s truncated._\n", pluralizeCount(result.TruncatedCount, "issue", "issues"))
		}
	}

	if len(result.Warnings) > 0 {
		b.WriteString("\n## Warnings\n\n")
		for _, warning := range result.Warnings {
			fmt.Fprintf(&b, "- %s\n", warning)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func severityLabel(severity string) string {
	switch severity {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "info"
	}
}
