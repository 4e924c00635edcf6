package palette

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/yacobolo/contrast"
)

// Terminal styles for consistent output formatting across reporters.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	// StyleCyan is used for file locations, section headers, and statistics headers.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed is used for failing levels and build failure messages.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow is used for warning sections and caret indicators.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen is used for passing levels and success messages.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleGray is used for linter names and hints.
	StyleGray = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// LevelStyle picks the style for a compliance level
func LevelStyle(level contrast.Level) lipgloss.Style {
	switch level {
	case contrast.LevelAAA:
		return StyleGreen
	case contrast.LevelAA:
		return StyleYellow
	default:
		return StyleRed
	}
}

// RenderSwatch draws the color as a block labelled with its hex value in
// whichever of black or white reads best on it.
func RenderSwatch(c contrast.RGB, useColors bool) string {
	label := fmt.Sprintf(" %s ", c.Hex())
	if !useColors {
		return "[" + label + "]"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(contrast.ForegroundForRGB(c))).
		Render(label)
}
