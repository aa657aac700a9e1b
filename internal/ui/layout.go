// Package ui provides shared TUI styling, layout helpers, and theme definitions.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// PlaceCentre centres content both horizontally and vertically within the given dimensions.
func PlaceCentre(width, height int, content string) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Truncate truncates s to maxLen runes, appending "…" if truncated.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return string(runes[:maxLen-1]) + "…"
}

// Blank returns a width×height block of spaces.
func Blank(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

// Fade blends fg toward bg. Opacity 1 returns fg unchanged, 0 returns bg.
// Colours that are not hex strings (ANSI indices) are returned as-is above
// half opacity and replaced by bg below it.
func Fade(fg, bg lipgloss.Color, opacity float64) lipgloss.Color {
	switch {
	case opacity >= 1:
		return fg
	case opacity <= 0:
		return bg
	}
	from, err1 := colorful.Hex(string(fg))
	to, err2 := colorful.Hex(string(bg))
	if err1 != nil || err2 != nil {
		if opacity >= 0.5 {
			return fg
		}
		return bg
	}
	return lipgloss.Color(to.BlendRgb(from, opacity).Clamped().Hex())
}
