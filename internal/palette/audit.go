// Package palette audits the contrast of design tokens declared as CSS custom
// properties.
//
// # Pairs
//
// A pair is a foreground drawn on a background. Pairs come from three places:
//
//  1. Annotations above a declaration:
//
//     /* @contrast-on --ui-surface */
//     --ui-text-muted: #6b6b6b;
//
//  2. The pairs list in configuration
//  3. Implicit pairing of every Text token with every Background token
//
// # Scopes
//
// Tokens redeclared under another selector (".dark", a media query) form a
// scope. Each pair is checked in every scope that declares one of its sides;
// names missing from a scope fall back to :root.
package palette

import (
	"fmt"
	"sort"
	"strings"

	"github.com/yacobolo/contrast"
)

// maxFixes caps the suggested fixes in a report
const maxFixes = 10

// Audit scans the configured CSS files and checks every pair
func Audit(config Config) (*Result, error) {
	log := config.Logger

	// 1. Discover CSS files
	files, stats, err := discoverFiles(config.SourceDir, config.Includes)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	log.Debug("discovered CSS files", "discovered", stats.FilesDiscovered, "skipped", stats.FilesSkipped)

	// 2. Parse all files
	var tokens []*Token
	var warnings []string
	for _, file := range files {
		fileTokens, err := parseFile(file, config)
		if err != nil {
			log.File(file).Error(err, "parse failed")
			warnings = append(warnings, fmt.Sprintf("Failed to parse %s: %v", file, err))
			continue
		}
		log.File(file).Debug("parsed tokens", "tokens", len(fileTokens))
		tokens = append(tokens, fileTokens...)
	}

	// 3-6. Resolve, pair, evaluate, report
	result := AuditTokens(tokens, config)
	result.FilesScanned = stats.FilesScanned
	result.FilesSkipped = stats.FilesSkipped
	result.Warnings = append(warnings, result.Warnings...)

	return result, nil
}

// AuditTokens checks already parsed tokens. Audit calls it after parsing.
func AuditTokens(tokens []*Token, config Config) *Result {
	log := config.Logger
	minLevel := config.MinLevel
	if !minLevel.Valid() || minLevel == contrast.LevelFail {
		minLevel = contrast.LevelAA
	}

	result := &Result{
		Tokens:      tokens,
		TokensFound: len(tokens),
		LevelCounts: make(map[contrast.Level]int),
	}

	// 3. Resolve aliases and parse colors
	ix := buildIndex(tokens)
	for _, t := range tokens {
		ix.resolve(t)
		if t.Resolved {
			result.ColorsResolved++
		}
	}
	log.Debug("resolved tokens", "tokens", result.TokensFound, "colors", result.ColorsResolved)

	// 4. Collect pairs
	specs := collectPairs(tokens, ix, config)

	// 5. Evaluate each pair in each scope it applies to
	passed := 0
	for _, spec := range specs {
		for _, scope := range pairScopes(spec, ix) {
			pr := evaluatePair(spec, scope, ix, minLevel)
			result.Pairs = append(result.Pairs, pr)
			result.PairsChecked++

			if !pr.Available {
				result.Unavailable++
				continue
			}
			result.LevelCounts[pr.Level()]++
			if pr.Passed {
				passed++
			}
		}
	}

	available := result.PairsChecked - result.Unavailable
	if available > 0 {
		result.PassPercentage = float64(passed) / float64(available) * 100
	} else {
		// Nothing to fail
		result.PassPercentage = 100
	}

	// 6. Convert failures into issues
	result.Issues = buildIssues(result.Pairs, minLevel)
	for _, issue := range result.Issues {
		switch issue.Severity {
		case SeverityError:
			result.ErrorCount++
		case SeverityWarning:
			result.WarningCount++
		}
	}

	result.Fixes = buildFixes(result.Pairs, minLevel)

	// 7. Apply issue limiting if configured
	if config.MaxIssues > 0 || config.MaxSameIssues > 0 {
		result.Issues, result.TruncatedCount = limitIssues(result.Issues, config)
	}

	log.Debug("audit complete", "pairs", result.PairsChecked, "errors", result.ErrorCount)

	return result
}

// collectPairs gathers annotation, config and implicit pairs, dropping
// duplicates. Earlier sources win.
func collectPairs(tokens []*Token, ix *tokenIndex, config Config) []PairSpec {
	var specs []PairSpec
	seen := make(map[string]bool)

	add := func(spec PairSpec) {
		key := fmt.Sprintf("%s|%s|%t", spec.Foreground, spec.Background, spec.LargeText)
		if seen[key] {
			return
		}
		seen[key] = true
		specs = append(specs, spec)
	}

	for _, t := range tokens {
		for _, spec := range t.OnPairs {
			add(spec)
		}
	}

	for _, spec := range config.Pairs {
		spec.Source = SourceConfig
		add(spec)
	}

	if config.ImplicitPairs {
		texts := colorNames(tokens, ix, CategoryText)
		backgrounds := colorNames(tokens, ix, CategoryBackground)
		for _, fg := range texts {
			for _, bg := range backgrounds {
				add(PairSpec{Foreground: fg, Background: bg, Source: SourceImplicit})
			}
		}
	}

	return specs
}

// colorNames lists the names in a category that resolve to a color in at
// least one scope, in source order
func colorNames(tokens []*Token, ix *tokenIndex, category TokenCategory) []string {
	var names []string
	seen := make(map[string]bool)
	for _, t := range tokens {
		if t.Category != category || seen[t.Name] {
			continue
		}
		seen[t.Name] = true
		for _, decl := range ix.byName[t.Name] {
			if decl.Resolved {
				names = append(names, t.Name)
				break
			}
		}
	}
	return names
}

// pairScopes returns the scopes that declare either side of the pair or any
// token those sides alias, so a scope that only overrides a palette color is
// still checked. Pairs of literals, or of unknown names, are checked in the
// base scope only.
func pairScopes(spec PairSpec, ix *tokenIndex) []string {
	names := make(map[string]bool)
	for _, operand := range []string{spec.Foreground, spec.Background} {
		if !strings.HasPrefix(operand, "--") {
			continue
		}
		for name := range ix.aliasNames(operand) {
			names[name] = true
		}
	}

	var scopes []string
	for _, scope := range ix.scopes {
		for name := range ix.byScope[scope] {
			if names[name] {
				scopes = append(scopes, scope)
				break
			}
		}
	}
	if len(scopes) == 0 {
		return []string{BaseScope}
	}
	return scopes
}

// evaluatePair resolves both sides in scope and classifies the result
func evaluatePair(spec PairSpec, scope string, ix *tokenIndex, minLevel contrast.Level) PairResult {
	pr := PairResult{
		Spec:  spec,
		Scope: scope,
		Pos:   IssuePos{Filename: configFilename},
	}

	fgRGB, fgTok, fgErr := resolveOperand(spec.Foreground, scope, ix)
	bgRGB, bgTok, bgErr := resolveOperand(spec.Background, scope, ix)

	// Point at the foreground declaration, else the background one
	for _, t := range []*Token{fgTok, bgTok} {
		if t != nil {
			pr.Pos = IssuePos{Filename: t.SourceFile, Line: t.Line, Column: t.Column}
			pr.SourceLine = t.SourceLine
			break
		}
	}

	switch {
	case fgErr != nil:
		pr.Reason = fgErr.Error()
		return pr
	case bgErr != nil:
		pr.Reason = bgErr.Error()
		return pr
	}

	pr.Available = true
	pr.Foreground = fgRGB.Hex()
	pr.Background = bgRGB.Hex()
	pr.Evaluation = contrast.EvaluateRGB(fgRGB, bgRGB)
	pr.Passed = pr.Level().Meets(minLevel)
	return pr
}

// resolveOperand turns a pair side into a color. Names starting with "--" are
// token references; anything else is parsed as a literal color.
func resolveOperand(operand, scope string, ix *tokenIndex) (contrast.RGB, *Token, error) {
	if !strings.HasPrefix(operand, "--") {
		rgb, err := contrast.ParseColor(operand)
		if err != nil {
			return contrast.RGB{}, nil, err
		}
		return rgb, nil, nil
	}

	t := ix.lookup(operand, scope)
	if t == nil {
		return contrast.RGB{}, nil, fmt.Errorf("unknown token %s", operand)
	}
	if t.Scope != scope {
		// Inherited declaration: its aliases resolve against the asking scope
		rgb, _, err := ix.resolveValue(t.Value, scope, map[*Token]bool{t: true})
		if err != nil {
			return contrast.RGB{}, t, fmt.Errorf("%s: %w", operand, err)
		}
		return rgb, t, nil
	}
	if !t.Resolved {
		return contrast.RGB{}, t, fmt.Errorf("%s: %s", operand, t.reason)
	}
	return t.RGB, t, nil
}

// buildIssues converts failing and unavailable pairs into issues
func buildIssues(pairs []PairResult, minLevel contrast.Level) []Issue {
	var issues []Issue

	for _, p := range pairs {
		fg, bg := pairLabels(p)

		issue := Issue{
			FromLinter: LinterName,
			Pos:        p.Pos,
		}
		if p.SourceLine != "" {
			issue.SourceLines = []string{p.SourceLine}
		}

		switch {
		case !p.Available:
			issue.Severity = SeverityWarning
			issue.Text = fmt.Sprintf(IssueUnavailable, fg, bg, p.Reason)
		case p.Passed:
			continue
		case !p.Spec.LargeText && p.Evaluation.LargeLevel.Meets(minLevel):
			issue.Severity = SeverityWarning
			issue.Text = fmt.Sprintf(IssueLargeTextOnly, fg, bg, p.Evaluation.Ratio, minLevel)
		default:
			issue.Severity = SeverityError
			issue.Text = fmt.Sprintf(IssueLowContrast, fg, bg, p.Evaluation.Ratio, p.Level(), minLevel)
		}

		issues = append(issues, issue)
	}

	return issues
}

// pairLabels names both sides, marking the scope when it is not the base
func pairLabels(p PairResult) (string, string) {
	fg, bg := p.Spec.Foreground, p.Spec.Background
	if p.Scope != BaseScope {
		bg = fmt.Sprintf("%s [%s]", bg, p.Scope)
	}
	return fg, bg
}

// buildFixes suggests foregrounds for failing pairs, worst ratio first
func buildFixes(pairs []PairResult, minLevel contrast.Level) []Fix {
	var fixes []Fix
	for _, p := range pairs {
		if !p.Available || p.Passed {
			continue
		}
		target := targetRatio(minLevel, p.Spec.LargeText)
		s := contrast.SuggestRGB(p.Evaluation.Foreground, p.Evaluation.Background, target)
		fixes = append(fixes, Fix{
			Pair:           p,
			Target:         target,
			Suggested:      s.Color,
			SuggestedRatio: s.Ratio,
			Met:            s.Met,
		})
	}

	sort.SliceStable(fixes, func(i, j int) bool {
		return fixes[i].Pair.Evaluation.Ratio < fixes[j].Pair.Evaluation.Ratio
	})

	if len(fixes) > maxFixes {
		fixes = fixes[:maxFixes]
	}
	return fixes
}

// targetRatio is the minimum ratio for a level and text size
func targetRatio(level contrast.Level, large bool) float64 {
	switch {
	case level == contrast.LevelAAA && large:
		return contrast.LargeRatioAAA
	case level == contrast.LevelAAA:
		return contrast.RatioAAA
	case large:
		return contrast.LargeRatioAA
	default:
		return contrast.RatioAA
	}
}

// limitIssues applies max-issues and max-same-issues constraints
func limitIssues(issues []Issue, config Config) ([]Issue, int) {
	originalCount := len(issues)

	// Keep errors ahead of warnings before truncating
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity == SeverityError && issues[j].Severity != SeverityError
	})

	if config.MaxIssues > 0 && len(issues) > config.MaxIssues {
		issues = issues[:config.MaxIssues]
	}

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []Issue, maxSame int) []Issue {
	messageCounts := make(map[string]int)
	var filtered []Issue

	for _, issue := range issues {
		count := messageCounts[issue.Text]
		if count < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
