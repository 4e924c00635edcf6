package palette

import (
	"fmt"
	"io"

	"github.com/yacobolo/contrast"
)

// VerboseReporter handles statistics, swatches and pair tables
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs audit statistics
func (r *VerboseReporter) PrintStatistics(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Contrast Statistics", r.useColors))
	fmt.Fprintln(r.w, "-------------------")

	fmt.Fprintf(r.w, "Files Scanned:     %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Tokens Found:      %d\n", result.TokensFound)
	fmt.Fprintf(r.w, "Colors Resolved:   %d\n", result.ColorsResolved)
	fmt.Fprintf(r.w, "Pairs Checked:     %d\n", result.PairsChecked)
	for _, level := range []contrast.Level{contrast.LevelAAA, contrast.LevelAA, contrast.LevelFail} {
		label := fmt.Sprintf("  %-4s", level)
		fmt.Fprintf(r.w, "%s             %d\n", RenderStyle(LevelStyle(level), label, r.useColors), result.LevelCounts[level])
	}
	fmt.Fprintf(r.w, "  Unavailable:     %d\n", result.Unavailable)
}

// PrintPassRate shows a progress bar of passing pairs
func (r *VerboseReporter) PrintPassRate(result Result) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Pass Rate", r.useColors))
	fmt.Fprintln(r.w, "---------")
	printProgressBar(r.w, result.PassPercentage)
}

// PrintSwatches shows every resolved color token grouped by category, with
// its ratio against black and white text
func (r *VerboseReporter) PrintSwatches(result Result) {
	groups := groupByCategory(result.Tokens)
	if len(groups) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Palette", r.useColors))
	fmt.Fprintln(r.w, "-------")

	black, _ := contrast.ParseColor(contrast.Black)
	white, _ := contrast.ParseColor(contrast.White)

	for _, category := range categoryOrder {
		tokens := groups[category]
		if len(tokens) == 0 {
			continue
		}

		fmt.Fprintf(r.w, "\n%s:\n", category)
		for _, t := range tokens {
			scope := ""
			if t.Scope != BaseScope {
				scope = " [" + t.Scope + "]"
			}
			fmt.Fprintf(r.w, "  %s %s%s  L=%.3f  black %.2f:1  white %.2f:1\n",
				RenderSwatch(t.RGB, r.useColors),
				t.Name,
				scope,
				t.RGB.Luminance(),
				contrast.Ratio(t.RGB, black),
				contrast.Ratio(t.RGB, white))
		}
	}
}

// PrintPairs lists every available pair with its ratio and level
func (r *VerboseReporter) PrintPairs(result Result) {
	if len(result.Pairs) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Pairs", r.useColors))
	fmt.Fprintln(r.w, "-----")

	for _, p := range result.Pairs {
		fg, bg := pairLabels(p)
		if !p.Available {
			fmt.Fprintf(r.w, "  %-6s %s on %s\n", "n/a", fg, bg)
			continue
		}
		level := p.Level()
		fmt.Fprintf(r.w, "  %s %5.2f:1  %s on %s\n",
			RenderStyle(LevelStyle(level), fmt.Sprintf("%-6s", level), r.useColors),
			p.Evaluation.Ratio, fg, bg)
	}
}

// PrintFixes lists suggested foregrounds for the worst failing pairs
func (r *VerboseReporter) PrintFixes(result Result) {
	if len(result.Fixes) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleGreen, "Quick Fixes", r.useColors))
	fmt.Fprintln(r.w, "-----------")

	for i, fix := range result.Fixes {
		fg, bg := pairLabels(fix.Pair)
		if fix.Met {
			fmt.Fprintf(r.w, "%d. %s on %s (%.2f:1) → use %s (%.2f:1)\n",
				i+1, fg, bg, fix.Pair.Evaluation.Ratio, fix.Suggested, fix.SuggestedRatio)
		} else {
			fmt.Fprintf(r.w, "%d. %s on %s (%.2f:1) → best %s (%.2f:1), %.1f:1 not reachable\n",
				i+1, fg, bg, fix.Pair.Evaluation.Ratio, fix.Suggested, fix.SuggestedRatio, fix.Target)
		}
	}
}

// PrintWarnings shows files that failed to parse
func (r *VerboseReporter) PrintWarnings(result Result) {
	if len(result.Warnings) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Warnings", r.useColors))
	fmt.Fprintln(r.w, "--------")

	for _, warning := range result.Warnings {
		fmt.Fprintf(r.w, "• %s\n", warning)
	}
}

// printProgressBar draws a 20-cell bar for a percentage
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
