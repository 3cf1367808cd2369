package tui

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Toast    lipgloss.Style
	Answer   lipgloss.Style
	Focused  lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Toast:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Answer:  lipgloss.NewStyle().Bold(true),
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	}
}

// swatchColors maps palette names to terminal colors.
var swatchColors = map[string]lipgloss.Color{
	"red":     lipgloss.Color("#e41a1c"),
	"green":   lipgloss.Color("#4daf4a"),
	"blue":    lipgloss.Color("#377eb8"),
	"orange":  lipgloss.Color("#ff7f00"),
	"purple":  lipgloss.Color("#984ea3"),
	"brown":   lipgloss.Color("#a65628"),
	"magenta": lipgloss.Color("#ff00ff"),
	"teal":    lipgloss.Color("#008080"),
	"black":   lipgloss.Color("#777777"),
}

func swatch(color string) string {
	c, ok := swatchColors[color]
	if !ok {
		return "■"
	}
	return lipgloss.NewStyle().Foreground(c).Render("■")
}
