package scrollbar

import (
	"strings"

	"github.com/Akashdeep-Patra/zed-scroll-view/internal/mouse"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/scrollable"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// NewVertical creates a scrollbar that drives sc's ScrollTop.
func NewVertical(sc *scrollable.Scrollable, host Host, monitor *mouse.Monitor, styles ui.Styles, opts Options) *Scrollbar {
	return newScrollbar(vertical{sc: sc}, sc, host, monitor, styles, opts)
}

type vertical struct {
	sc *scrollable.Scrollable
}

func (vertical) name() string { return "vertical" }

func (vertical) pointerPosition(msg tea.MouseMsg) int    { return msg.Y }
func (vertical) orthogonalPosition(msg tea.MouseMsg) int { return msg.X }
func (vertical) origin(b mouse.Rect) int                 { return b.Y }

func (v vertical) scrollPosition() int {
	return v.sc.CurrentPosition().ScrollTop
}

func (v vertical) writeScrollPosition(pos int) {
	p := v.sc.CurrentPosition()
	p.ScrollTop = pos
	v.sc.SetScrollPositionNow(p)
}

func (v vertical) validateScrollPosition(pos int) int {
	p := v.sc.CurrentPosition()
	p.ScrollTop = pos
	return v.sc.ValidateScrollPosition(p).ScrollTop
}

func (vertical) dimensions(st scrollable.State) (int, int, int) {
	return st.Height, st.ScrollHeight, st.ScrollTop
}

func (vertical) renderTrack(b mouse.Rect, largeSize, smallSize int) mouse.Rect {
	return mouse.Rect{X: b.X, Y: b.Y, W: smallSize, H: largeSize}
}

func (vertical) updateSlider(b mouse.Rect, size, position, smallSize int) mouse.Rect {
	return mouse.Rect{X: b.X, Y: b.Y + position, W: smallSize, H: size}
}

func (vertical) join(cells []string, smallSize int) string {
	rows := make([]string, len(cells))
	for i, c := range cells {
		rows[i] = strings.Repeat(c, smallSize)
	}
	return strings.Join(rows, "\n")
}

func (vertical) glyphs(unicode bool) glyphSet {
	if unicode {
		return glyphSet{track: "░", slider: "█", prev: "▲", next: "▼"}
	}
	return glyphSet{track: "|", slider: "#", prev: "^", next: "v"}
}
