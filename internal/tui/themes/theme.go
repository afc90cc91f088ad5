// Package themes holds the color palettes of the terminal UI.
package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the TUI.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Muted       lipgloss.Style
	RoundedBox  lipgloss.Style
	Button      lipgloss.Style
	DotActive   lipgloss.Style
	DotInactive lipgloss.Style
	StatusError lipgloss.Style
	Primary     lipgloss.Color
	Border      lipgloss.Color
	Foreground  lipgloss.Color
	MutedColor  lipgloss.Color
	Error       lipgloss.Color
}

type palette struct {
	primary, onPrimary, foreground, subtle, muted, border, errColor string
}

func newTheme(p palette) Theme {
	return Theme{
		Primary:    lipgloss.Color(p.primary),
		Border:     lipgloss.Color(p.border),
		Foreground: lipgloss.Color(p.foreground),
		MutedColor: lipgloss.Color(p.muted),
		Error:      lipgloss.Color(p.errColor),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.primary)).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.subtle)).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.foreground)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(1, 4),
		Button: lipgloss.NewStyle().
			Background(lipgloss.Color(p.primary)).
			Foreground(lipgloss.Color(p.onPrimary)).
			Bold(true).
			Padding(0, 3),
		DotActive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.primary)),
		DotInactive: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.border)),
		StatusError: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.errColor)).
			Bold(true),
	}
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    "#F4A261",
	onPrimary:  "#1a1a1a",
	foreground: "#fafafa",
	subtle:     "#a3a3a3",
	muted:      "#737373",
	border:     "#404040",
	errColor:   "#ef4444",
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    "#cba6f7",
	onPrimary:  "#1e1e2e",
	foreground: "#cdd6f4",
	subtle:     "#a6adc8",
	muted:      "#6c7086",
	border:     "#45475a",
	errColor:   "#f38ba8",
})

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
