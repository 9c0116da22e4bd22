package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the inspector.
type Theme struct {
	Name string

	Background string
	Surface    string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text   string
	Muted  string
	Accent string
	Value  string
	Kind   string
	Danger string
}

// Styles returns pre-built lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		PaneFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		ValueText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Value)),

		KindText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Kind)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),
	}
}

// Styles contains pre-built lipgloss styles for the theme.
type Styles struct {
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Pane      lipgloss.Style
	PaneFocus lipgloss.Style

	Text       lipgloss.Style
	MutedText  lipgloss.Style
	AccentText lipgloss.Style
	ValueText  lipgloss.Style
	KindText   lipgloss.Style
	DangerText lipgloss.Style
	Selected   lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Dracula":  draculaTheme(),
	"Nord":     nordTheme(),
	"Daylight": daylightTheme(),
}

var themeOrder = []string{"Dracula", "Nord", "Daylight"}

// GetTheme returns a theme by name, defaulting to Dracula.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return draculaTheme()
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

func draculaTheme() Theme {
	// Dracula palette: https://draculatheme.com
	return Theme{
		Name: "Dracula",

		Background: "#282a36",
		Surface:    "#343746",

		SelectionBg:   "#44475a",
		SelectionText: "#f8f8f2",

		Border:      "#44475a",
		BorderFocus: "#bd93f9",

		Text:   "#f8f8f2",
		Muted:  "#6272a4",
		Accent: "#bd93f9",
		Value:  "#50fa7b",
		Kind:   "#8be9fd",
		Danger: "#ff5555",
	}
}

func nordTheme() Theme {
	// Nord palette: https://nordtheme.com
	return Theme{
		Name: "Nord",

		Background: "#2e3440",
		Surface:    "#3b4252",

		SelectionBg:   "#434c5e",
		SelectionText: "#eceff4",

		Border:      "#4c566a",
		BorderFocus: "#88c0d0",

		Text:   "#d8dee9",
		Muted:  "#616e88",
		Accent: "#88c0d0",
		Value:  "#a3be8c",
		Kind:   "#81a1c1",
		Danger: "#bf616a",
	}
}

func daylightTheme() Theme {
	return Theme{
		Name: "Daylight",

		Background: "#fafafa",
		Surface:    "#eeeeee",

		SelectionBg:   "#d7d7ff",
		SelectionText: "#1a1a1a",

		Border:      "#cccccc",
		BorderFocus: "#6c5ce7",

		Text:   "#2d2d2d",
		Muted:  "#888888",
		Accent: "#6c5ce7",
		Value:  "#008744",
		Kind:   "#0057b8",
		Danger: "#d63031",
	}
}
