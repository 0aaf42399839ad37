package tui

import "github.com/charmbracelet/lipgloss"

// palette carries the accent colors for one theme. The catalog mirrors the
// selectable theme preference values; accents come from the classic
// material shades.
type palette struct {
	accent lipgloss.Color
	subtle lipgloss.Color
}

var palettes = map[string]palette{
	"Blue":   {accent: lipgloss.Color("#29B6F6"), subtle: lipgloss.Color("#81D4FA")},
	"Green":  {accent: lipgloss.Color("#66BB6A"), subtle: lipgloss.Color("#A5D6A7")},
	"Yellow": {accent: lipgloss.Color("#FFEE58"), subtle: lipgloss.Color("#FFF59D")},
	"Red":    {accent: lipgloss.Color("#EF5350"), subtle: lipgloss.Color("#EF9A9A")},
	"Purple": {accent: lipgloss.Color("#AB47BC"), subtle: lipgloss.Color("#CE93D8")},
	"Orange": {accent: lipgloss.Color("#FFA726"), subtle: lipgloss.Color("#FFCC80")},
	"Slate":  {accent: lipgloss.Color("#78909C"), subtle: lipgloss.Color("#B0BEC5")},
	"Pink":   {accent: lipgloss.Color("#F06292"), subtle: lipgloss.Color("#F48FB1")},
	"Forest": {accent: lipgloss.Color("#5EAE5E"), subtle: lipgloss.Color("#7CC07C")},
	"Sky":    {accent: lipgloss.Color("#6AB7E2"), subtle: lipgloss.Color("#8AC9E9")},
}

type styles struct {
	title       lipgloss.Style
	activeTab   lipgloss.Style
	inactiveTab lipgloss.Style
	label       lipgloss.Style
	value       lipgloss.Style
	errText     lipgloss.Style
	faint       lipgloss.Style
	star        lipgloss.Style
	doc         lipgloss.Style
}

func newStyles(theme string) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes["Blue"]
	}

	return styles{
		title: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),
		activeTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(p.accent).
			Padding(0, 1).
			Bold(true),
		inactiveTab: lipgloss.NewStyle().
			Foreground(p.subtle).
			Padding(0, 1),
		label: lipgloss.NewStyle().
			Foreground(p.subtle),
		value:   lipgloss.NewStyle(),
		errText: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		faint:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		star:    lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		doc:     lipgloss.NewStyle().Padding(1, 2),
	}
}
