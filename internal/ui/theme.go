package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string // Outermost background
	Surface    string // Header and footer bars
	SurfaceAlt string // Unfocused input panels
	FocusBg    string // Focused input panel

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		Field: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Background(lipgloss.Color(t.SurfaceAlt)).
			Padding(0, 1),

		FocusedField: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Background(lipgloss.Color(t.FocusBg)).
			Padding(0, 1),

		Result: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(t.Accent)).
			Padding(1, 3),

		ResultFailed: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(t.Danger)).
			Padding(1, 3),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	DangerText  lipgloss.Style

	Header lipgloss.Style
	Footer lipgloss.Style
	Logo   lipgloss.Style

	Field        lipgloss.Style
	FocusedField lipgloss.Style
	Result       lipgloss.Style
	ResultFailed lipgloss.Style
}

var themes = map[string]Theme{
	"Nightfox": nightfoxTheme(),
	"Kanagawa": kanagawaTheme(),
	"Slate":    slateTheme(),
}

var themeOrder = []string{"Nightfox", "Kanagawa", "Slate"}

// GetTheme returns a theme by name, falling back to Nightfox.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return nightfoxTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func nightfoxTheme() Theme {
	// https://github.com/EdenEast/nightfox.nvim
	return Theme{
		Name:        "Nightfox",
		Background:  "#131a24",
		Surface:     "#192330",
		SurfaceAlt:  "#212e3f",
		FocusBg:     "#29394f",
		Border:      "#39506d",
		BorderFocus: "#719cd6",
		Text:        "#cdcecf",
		Muted:       "#738091",
		Faint:       "#71839b",
		Accent:      "#719cd6",
		Success:     "#81b29a",
		Warning:     "#dbc074",
		Danger:      "#c94f6d",
	}
}

func kanagawaTheme() Theme {
	// https://github.com/rebelot/kanagawa.nvim
	return Theme{
		Name:        "Kanagawa",
		Background:  "#16161D",
		Surface:     "#1F1F28",
		SurfaceAlt:  "#2A2A37",
		FocusBg:     "#363646",
		Border:      "#54546D",
		BorderFocus: "#7E9CD8",
		Text:        "#DCD7BA",
		Muted:       "#C8C093",
		Faint:       "#727169",
		Accent:      "#7E9CD8",
		Success:     "#98BB6C",
		Warning:     "#E6C384",
		Danger:      "#E46876",
	}
}

func slateTheme() Theme {
	// Tailwind slate/sky
	return Theme{
		Name:        "Slate",
		Background:  "#020617",
		Surface:     "#0f172a",
		SurfaceAlt:  "#1e293b",
		FocusBg:     "#283548",
		Border:      "#334155",
		BorderFocus: "#38bdf8",
		Text:        "#f1f5f9",
		Muted:       "#94a3b8",
		Faint:       "#64748b",
		Accent:      "#38bdf8",
		Success:     "#22c55e",
		Warning:     "#f59e0b",
		Danger:      "#ef4444",
	}
}
