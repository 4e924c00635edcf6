package palette

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorizeToken(t *testing.T) {
	tests := []struct {
		name string
		want TokenCategory
	}{
		{"--ui-text", CategoryText},
		{"--ui-text-muted", CategoryText},
		{"--ui-on-primary", CategoryText},
		{"--color_fg_default", CategoryText},
		{"--ui-link-hover", CategoryText},
		{"--ui-surface", CategoryBackground},
		{"--ui-bg-subtle", CategoryBackground},
		{"--Canvas-Default", CategoryBackground},
		{"--ui-border", CategoryBorder},
		{"--ui-focus-ring", CategoryBorder},
		{"--ui-primary", CategoryAccent},
		{"--ui-danger-strong", CategoryAccent},
		{"--ui-gray-500", CategoryPalette},
		{"--ui-space-2", CategoryPalette},
		// Segment match, not substring
		{"--ui-context", CategoryPalette},
		{"--ui-bgcolor", CategoryPalette},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, categorizeToken(tt.name))
		})
	}
}

func TestGroupByCategory(t *testing.T) {
	tokens := []*Token{
		{Name: "--ui-text", Category: CategoryText, Resolved: true},
		{Name: "--ui-surface", Category: CategoryBackground, Resolved: true},
		{Name: "--ui-text-muted", Category: CategoryText, Resolved: true},
		{Name: "--ui-space", Category: CategoryPalette},
	}

	groups := groupByCategory(tokens)

	assert.Len(t, groups[CategoryText], 2)
	assert.Equal(t, "--ui-text", groups[CategoryText][0].Name)
	assert.Equal(t, "--ui-text-muted", groups[CategoryText][1].Name)
	assert.Len(t, groups[CategoryBackground], 1)
	assert.Empty(t, groups[CategoryPalette])
	assert.Len(t, categoryOrder, 5)
}
