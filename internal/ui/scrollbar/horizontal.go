package scrollbar

import (
	"strings"

	"github.com/Akashdeep-Patra/zed-scroll-view/internal/mouse"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/scrollable"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// NewHorizontal creates a scrollbar that drives sc's ScrollLeft.
func NewHorizontal(sc *scrollable.Scrollable, host Host, monitor *mouse.Monitor, styles ui.Styles, opts Options) *Scrollbar {
	return newScrollbar(horizontal{sc: sc}, sc, host, monitor, styles, opts)
}

type horizontal struct {
	sc *scrollable.Scrollable
}

func (horizontal) name() string { return "horizontal" }

func (horizontal) pointerPosition(msg tea.MouseMsg) int    { return msg.X }
func (horizontal) orthogonalPosition(msg tea.MouseMsg) int { return msg.Y }
func (horizontal) origin(b mouse.Rect) int                 { return b.X }

func (h horizontal) scrollPosition() int {
	return h.sc.CurrentPosition().ScrollLeft
}

func (h horizontal) writeScrollPosition(pos int) {
	p := h.sc.CurrentPosition()
	p.ScrollLeft = pos
	h.sc.SetScrollPositionNow(p)
}

func (h horizontal) validateScrollPosition(pos int) int {
	p := h.sc.CurrentPosition()
	p.ScrollLeft = pos
	return h.sc.ValidateScrollPosition(p).ScrollLeft
}

func (horizontal) dimensions(st scrollable.State) (int, int, int) {
	return st.Width, st.ScrollWidth, st.ScrollLeft
}

func (horizontal) renderTrack(b mouse.Rect, largeSize, smallSize int) mouse.Rect {
	return mouse.Rect{X: b.X, Y: b.Y, W: largeSize, H: smallSize}
}

func (horizontal) updateSlider(b mouse.Rect, size, position, smallSize int) mouse.Rect {
	return mouse.Rect{X: b.X + position, Y: b.Y, W: size, H: smallSize}
}

func (horizontal) join(cells []string, smallSize int) string {
	row := strings.Join(cells, "")
	rows := make([]string, smallSize)
	for i := range rows {
		rows[i] = row
	}
	return strings.Join(rows, "\n")
}

func (horizontal) glyphs(unicode bool) glyphSet {
	if unicode {
		return glyphSet{track: "░", slider: "█", prev: "◀", next: "▶"}
	}
	return glyphSet{track: "-", slider: "#", prev: "<", next: ">"}
}
