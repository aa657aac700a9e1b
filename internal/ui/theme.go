package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds all colours for the application.
// The dark palette follows Catppuccin Mocha, the light one Catppuccin Latte.
type Theme struct {
	Bg            lipgloss.Color
	Surface       lipgloss.Color
	SurfaceHover  lipgloss.Color
	Border        lipgloss.Color
	BorderFocused lipgloss.Color

	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	TextSubtle  lipgloss.Color
	TextInverse lipgloss.Color

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Scrollbar colours. Fades blend these toward Bg.
	ScrollbarTrack        lipgloss.Color
	ScrollbarSlider       lipgloss.Color
	ScrollbarSliderActive lipgloss.Color
	ScrollbarArrow        lipgloss.Color
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#1e1e2e"),
		Surface:       lipgloss.Color("#282840"),
		SurfaceHover:  lipgloss.Color("#313152"),
		Border:        lipgloss.Color("#3b3b5c"),
		BorderFocused: lipgloss.Color("#7c7cf0"),

		Text:        lipgloss.Color("#cdd6f4"),
		TextMuted:   lipgloss.Color("#9399b2"),
		TextSubtle:  lipgloss.Color("#6c7086"),
		TextInverse: lipgloss.Color("#1e1e2e"),

		Primary:   lipgloss.Color("#89b4fa"),
		Secondary: lipgloss.Color("#b4befe"),
		Accent:    lipgloss.Color("#f5c2e7"),

		Success: lipgloss.Color("#a6e3a1"),
		Warning: lipgloss.Color("#f9e2af"),
		Error:   lipgloss.Color("#f38ba8"),
		Info:    lipgloss.Color("#89b4fa"),

		ScrollbarTrack:        lipgloss.Color("#3b3b5c"),
		ScrollbarSlider:       lipgloss.Color("#7f849c"),
		ScrollbarSliderActive: lipgloss.Color("#89b4fa"),
		ScrollbarArrow:        lipgloss.Color("#9399b2"),
	}
}

// LightTheme returns a light theme for bright terminals.
func LightTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#eff1f5"),
		Surface:       lipgloss.Color("#e6e9ef"),
		SurfaceHover:  lipgloss.Color("#dce0e8"),
		Border:        lipgloss.Color("#bcc0cc"),
		BorderFocused: lipgloss.Color("#7287fd"),

		Text:        lipgloss.Color("#4c4f69"),
		TextMuted:   lipgloss.Color("#6c6f85"),
		TextSubtle:  lipgloss.Color("#8c8fa1"),
		TextInverse: lipgloss.Color("#eff1f5"),

		Primary:   lipgloss.Color("#1e66f5"),
		Secondary: lipgloss.Color("#7287fd"),
		Accent:    lipgloss.Color("#ea76cb"),

		Success: lipgloss.Color("#40a02b"),
		Warning: lipgloss.Color("#df8e1d"),
		Error:   lipgloss.Color("#d20f39"),
		Info:    lipgloss.Color("#1e66f5"),

		ScrollbarTrack:        lipgloss.Color("#ccd0da"),
		ScrollbarSlider:       lipgloss.Color("#9ca0b0"),
		ScrollbarSliderActive: lipgloss.Color("#1e66f5"),
		ScrollbarArrow:        lipgloss.Color("#6c6f85"),
	}
}

// ThemeByName resolves a configured theme name. Unknown names fall back to dark.
func ThemeByName(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return LightTheme()
	default:
		return DarkTheme()
	}
}

// Styles holds pre-computed lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	// Layout
	StatusBar lipgloss.Style

	// Text
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	KeyBind lipgloss.Style
	KeyDesc lipgloss.Style

	// Scrollbar
	ScrollbarTrack        lipgloss.Style
	ScrollbarSlider       lipgloss.Style
	ScrollbarSliderActive lipgloss.Style
	ScrollbarArrow        lipgloss.Style
	ScrollbarCorner       lipgloss.Style
}

// NewStyles builds all styles from the given theme.
func NewStyles(t Theme) Styles {
	s := Styles{Theme: t}

	s.StatusBar = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)

	s.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.Bold = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.KeyBind = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.KeyDesc = lipgloss.NewStyle().Foreground(t.TextMuted)

	s.ScrollbarTrack = lipgloss.NewStyle().Foreground(t.ScrollbarTrack)
	s.ScrollbarSlider = lipgloss.NewStyle().Foreground(t.ScrollbarSlider)
	s.ScrollbarSliderActive = lipgloss.NewStyle().Foreground(t.ScrollbarSliderActive)
	s.ScrollbarArrow = lipgloss.NewStyle().Foreground(t.ScrollbarArrow)
	s.ScrollbarCorner = lipgloss.NewStyle().Foreground(t.Border)

	return s
}

// DefaultStyles returns styles using the dark theme.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
