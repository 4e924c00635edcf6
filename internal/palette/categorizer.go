package palette

import "strings"

// categoryKeywords maps name segments to categories, checked in this order.
// "--ui-text-on-primary" is Text even though "primary" is an Accent keyword.
var categoryKeywords = []struct {
	category TokenCategory
	keywords []string
}{
	{CategoryText, []string{"text", "fg", "foreground", "on", "ink", "label", "heading", "link", "placeholder"}},
	{CategoryBorder, []string{"border", "outline", "divider", "ring", "stroke"}},
	{CategoryBackground, []string{"bg", "background", "surface", "canvas", "paper", "backdrop", "fill"}},
	{CategoryAccent, []string{"primary", "secondary", "accent", "brand", "success", "warning", "error", "danger", "info"}},
}

// categorizeToken determines the category of a custom property from its name
func categorizeToken(name string) TokenCategory {
	segments := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return r == '-' || r == '_'
	})

	for _, group := range categoryKeywords {
		for _, seg := range segments {
			for _, kw := range group.keywords {
				if seg == kw {
					return group.category
				}
			}
		}
	}

	// Scales like --ui-gray-500 and anything unrecognized
	return CategoryPalette
}

// groupByCategory groups resolved color tokens by category, keeping source order
func groupByCategory(tokens []*Token) map[TokenCategory][]*Token {
	result := make(map[TokenCategory][]*Token)
	for _, t := range tokens {
		if !t.Resolved {
			continue
		}
		result[t.Category] = append(result[t.Category], t)
	}
	return result
}

// categoryOrder is the display order for report sections
var categoryOrder = []TokenCategory{
	CategoryText,
	CategoryBackground,
	CategoryBorder,
	CategoryAccent,
	CategoryPalette,
}
