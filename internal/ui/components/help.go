package components

import (
	"strings"

	"github.com/Akashdeep-Patra/zed-scroll-view/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// HelpEntry is a single key-description pair for the help overlay.
type HelpEntry struct {
	Key  string
	Desc string
}

// helpOrder is the display order of help sections.
var helpOrder = []string{"Scrolling", "Mouse", "General"}

// RenderHelp renders a full-screen help overlay.
func RenderHelp(styles ui.Styles, title string, sections map[string][]HelpEntry, width, height int) string {
	t := styles.Theme

	titleStr := styles.Title.
		Foreground(t.Primary).
		Align(lipgloss.Center).
		Width(width - 4).
		Render(title)

	var body strings.Builder
	body.WriteString(titleStr + "\n\n")

	sectionStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Underline(true)
	keyStyle := styles.KeyBind.Width(18).Align(lipgloss.Right)
	descStyle := styles.KeyDesc

	for _, section := range helpOrder {
		entries, ok := sections[section]
		if !ok || len(entries) == 0 {
			continue
		}
		body.WriteString(sectionStyle.Render(section) + "\n")
		for _, e := range entries {
			body.WriteString("  " + keyStyle.Render(e.Key) + "  " + descStyle.Render(e.Desc) + "\n")
		}
		body.WriteString("\n")
	}

	content := body.String()

	overlay := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(t.Primary).
		Padding(1, 3).
		Width(min(70, width-4)).
		MaxHeight(height - 2).
		Render(content)

	return ui.PlaceCentre(width, height, overlay)
}

// GlobalHelpEntries returns the help entries for the pager.
func GlobalHelpEntries() map[string][]HelpEntry {
	return map[string][]HelpEntry{
		"Scrolling": {
			{Key: "j / ↓", Desc: "Down one line"},
			{Key: "k / ↑", Desc: "Up one line"},
			{Key: "h / ←", Desc: "Left one column"},
			{Key: "l / →", Desc: "Right one column"},
			{Key: "space / pgdn", Desc: "Page down"},
			{Key: "b / pgup", Desc: "Page up"},
			{Key: "d / ctrl+d", Desc: "Half page down"},
			{Key: "u / ctrl+u", Desc: "Half page up"},
			{Key: "g / Home", Desc: "Go to top"},
			{Key: "G / End", Desc: "Go to bottom"},
			{Key: "0", Desc: "First column"},
		},
		"Mouse": {
			{Key: "wheel", Desc: "Scroll lines"},
			{Key: "shift+wheel", Desc: "Scroll columns"},
			{Key: "drag slider", Desc: "Scroll with the bar"},
			{Key: "click track", Desc: "Jump there and keep dragging"},
			{Key: "right-click track", Desc: "Jump without dragging"},
			{Key: "alt+click text", Desc: "Grab the bar at that row"},
		},
		"General": {
			{Key: "a", Desc: "Toggle ASCII scrollbars"},
			{Key: "r", Desc: "Reload file"},
			{Key: "?", Desc: "Toggle this help"},
			{Key: "q / ctrl+c", Desc: "Quit"},
		},
	}
}
