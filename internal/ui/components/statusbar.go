package components

import (
	"fmt"
	"strings"

	"github.com/Akashdeep-Patra/zed-scroll-view/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// StatusBarData carries the info displayed in the bottom status bar.
type StatusBarData struct {
	Name      string
	FirstLine int // 1-based, 0 when the document is empty
	LastLine  int
	Lines     int
	Column    int // 1-based left-most visible column
	Dragging  bool
	Message   string // transient info/error message
	IsError   bool
}

// Percent is how far through the document the last visible line is.
func (d StatusBarData) Percent() int {
	if d.Lines == 0 {
		return 100
	}
	return d.LastLine * 100 / d.Lines
}

// RenderStatusBar renders the bottom status bar with sections separated by
// dim vertical bars.
//
// Wide (>= 60):    notes.md  │  12-40/300  │  col 1          DRAG   13%
// Narrow (< 60):   notes.md  │  12-40/300                             13%
func RenderStatusBar(styles ui.Styles, data StatusBarData, width int) string {
	t := styles.Theme

	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Faint(true)
	sep := sepStyle.Render(" │ ")

	// ── Left sections ────────────────────────────────────────────

	nameStyle := styles.Bold.Foreground(t.Primary)
	left := " " + nameStyle.Render(ui.Truncate(data.Name, max(8, width/3)))

	rangeStyle := lipgloss.NewStyle().Foreground(t.Text)
	left += sep + rangeStyle.Render(fmt.Sprintf("%d-%d/%d", data.FirstLine, data.LastLine, data.Lines))

	if width >= 60 {
		left += sep + lipgloss.NewStyle().Foreground(t.TextMuted).Render(fmt.Sprintf("col %d", data.Column))
	}

	// ── Right section ────────────────────────────────────────────

	var right string
	switch {
	case data.Message != "":
		fg := t.Info
		if data.IsError {
			fg = t.Error
		}
		right = lipgloss.NewStyle().Foreground(fg).Render(data.Message) + " "
	default:
		if data.Dragging && width >= 60 {
			badge := lipgloss.NewStyle().
				Foreground(t.TextInverse).
				Background(t.Accent).
				Bold(true).
				Padding(0, 1).
				Render("DRAG")
			right = badge + " "
		}
		right += lipgloss.NewStyle().Foreground(t.TextSubtle).Render(fmt.Sprintf("%3d%%", data.Percent())) + " "
	}

	// ── Assemble ─────────────────────────────────────────────────

	leftW := lipgloss.Width(left)
	rightW := lipgloss.Width(right)
	gap := width - leftW - rightW
	if gap < 0 {
		gap = 1
		right = "" // drop right side if no room
	}

	content := left + strings.Repeat(" ", gap) + right

	return styles.StatusBar.Width(width).Render(content)
}
