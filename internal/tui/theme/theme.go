// Package theme defines color themes for the minhafinanca TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines the color roles used throughout the TUI.
type Theme struct {
	Name          string
	Background    lipgloss.Color // Main app background
	Surface       lipgloss.Color // Card/panel backgrounds
	SurfaceHover  lipgloss.Color // Highlighted surface (active tab, selected row)
	SurfaceBright lipgloss.Color // Extra bright surface for emphasis
	Border        lipgloss.Color // Subtle borders
	BorderBright  lipgloss.Color // Prominent borders (cards, focus)
	BorderAccent  lipgloss.Color // Accent-colored borders for focus states
	TextDim       lipgloss.Color // Lowest contrast text (hints, disabled)
	TextMuted     lipgloss.Color // Secondary text (labels, metadata)
	TextPrimary   lipgloss.Color // Primary content text
	Accent        lipgloss.Color // Primary accent (links, active states)
	AccentBright  lipgloss.Color // Brighter accent for emphasis
	AccentDim     lipgloss.Color // Dimmed accent for backgrounds
	Green         lipgloss.Color
	GreenBright   lipgloss.Color
	Amber         lipgloss.Color
	Red           lipgloss.Color
	Blue          lipgloss.Color
	BlueBright    lipgloss.Color
	Yellow        lipgloss.Color
	Magenta       lipgloss.Color
	Cyan          lipgloss.Color
}

// Active is the currently selected theme.
var Active = EsmeraldaDark

// EsmeraldaDark is the default theme: slate surfaces with an emerald accent.
var EsmeraldaDark = Theme{
	Name:          "esmeralda-dark",
	Background:    lipgloss.Color("#0f172a"),
	Surface:       lipgloss.Color("#1e293b"),
	SurfaceHover:  lipgloss.Color("#334155"),
	SurfaceBright: lipgloss.Color("#475569"),
	Border:        lipgloss.Color("#334155"),
	BorderBright:  lipgloss.Color("#475569"),
	BorderAccent:  lipgloss.Color("#10b981"),
	TextDim:       lipgloss.Color("#475569"),
	TextMuted:     lipgloss.Color("#94a3b8"),
	TextPrimary:   lipgloss.Color("#f8fafc"),
	Accent:        lipgloss.Color("#10b981"),
	AccentBright:  lipgloss.Color("#34d399"),
	AccentDim:     lipgloss.Color("#064e3b"),
	Green:         lipgloss.Color("#22c55e"),
	GreenBright:   lipgloss.Color("#4ade80"),
	Amber:         lipgloss.Color("#f59e0b"),
	Red:           lipgloss.Color("#ef4444"),
	Blue:          lipgloss.Color("#3b82f6"),
	BlueBright:    lipgloss.Color("#60a5fa"),
	Yellow:        lipgloss.Color("#eab308"),
	Magenta:       lipgloss.Color("#ec4899"),
	Cyan:          lipgloss.Color("#06b6d4"),
}

// EsmeraldaLight mirrors the default theme on light surfaces.
var EsmeraldaLight = Theme{
	Name:          "esmeralda-light",
	Background:    lipgloss.Color("#f8fafc"),
	Surface:       lipgloss.Color("#f1f5f9"),
	SurfaceHover:  lipgloss.Color("#e2e8f0"),
	SurfaceBright: lipgloss.Color("#cbd5e1"),
	Border:        lipgloss.Color("#cbd5e1"),
	BorderBright:  lipgloss.Color("#94a3b8"),
	BorderAccent:  lipgloss.Color("#059669"),
	TextDim:       lipgloss.Color("#94a3b8"),
	TextMuted:     lipgloss.Color("#64748b"),
	TextPrimary:   lipgloss.Color("#0f172a"),
	Accent:        lipgloss.Color("#059669"),
	AccentBright:  lipgloss.Color("#10b981"),
	AccentDim:     lipgloss.Color("#d1fae5"),
	Green:         lipgloss.Color("#16a34a"),
	GreenBright:   lipgloss.Color("#22c55e"),
	Amber:         lipgloss.Color("#d97706"),
	Red:           lipgloss.Color("#dc2626"),
	Blue:          lipgloss.Color("#2563eb"),
	BlueBright:    lipgloss.Color("#3b82f6"),
	Yellow:        lipgloss.Color("#ca8a04"),
	Magenta:       lipgloss.Color("#db2777"),
	Cyan:          lipgloss.Color("#0891b2"),
}

// Terminal uses ANSI 16 colors only, for maximum compatibility.
var Terminal = Theme{
	Name:          "terminal",
	Background:    lipgloss.Color("0"),
	Surface:       lipgloss.Color("0"),
	SurfaceHover:  lipgloss.Color("8"),
	SurfaceBright: lipgloss.Color("8"),
	Border:        lipgloss.Color("8"),
	BorderBright:  lipgloss.Color("7"),
	BorderAccent:  lipgloss.Color("2"),
	TextDim:       lipgloss.Color("8"),
	TextMuted:     lipgloss.Color("7"),
	TextPrimary:   lipgloss.Color("15"),
	Accent:        lipgloss.Color("2"),
	AccentBright:  lipgloss.Color("10"),
	AccentDim:     lipgloss.Color("0"),
	Green:         lipgloss.Color("2"),
	GreenBright:   lipgloss.Color("10"),
	Amber:         lipgloss.Color("3"),
	Red:           lipgloss.Color("1"),
	Blue:          lipgloss.Color("4"),
	BlueBright:    lipgloss.Color("12"),
	Yellow:        lipgloss.Color("3"),
	Magenta:       lipgloss.Color("5"),
	Cyan:          lipgloss.Color("6"),
}

// All available themes.
var All = []Theme{EsmeraldaDark, EsmeraldaLight, Terminal}

// ByName returns a theme by its name, defaulting to EsmeraldaDark.
func ByName(name string) Theme {
	for _, t := range All {
		if t.Name == name {
			return t
		}
	}
	return EsmeraldaDark
}

// SetActive sets the active theme by name.
func SetActive(name string) {
	Active = ByName(name)
}
