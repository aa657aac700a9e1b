package app

import (
	"log/slog"
	"time"

	"github.com/Akashdeep-Patra/zed-scroll-view/internal/mouse"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/scrollable"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/ui"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/ui/scrollbar"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ElementOptions configures how an Element turns input into scrolling.
type ElementOptions struct {
	WheelLines   int
	WheelColumns int
	// HideDelay is how long the bars stay up after the last scroll.
	HideDelay time.Duration

	Vertical   scrollbar.Options
	Horizontal scrollbar.Options
}

// hideMsg fires HideDelay after a reveal. Only the newest one counts.
type hideMsg struct {
	owner *Element
	seq   int
}

// Element is a scrollable region with a vertical and a horizontal
// scrollbar. It is the scrollbars' Host: it owns the Scrollable, routes
// pointer input, and decides when the bars reveal and hide.
type Element struct {
	sc      *scrollable.Scrollable
	vbar    *scrollbar.Scrollbar
	hbar    *scrollbar.Scrollbar
	monitor *mouse.Monitor
	styles  ui.Styles
	opts    ElementOptions
	logger  *slog.Logger

	outer   mouse.Rect
	content mouse.Rect

	contentWidth  int
	contentHeight int

	mouseOver bool
	dragging  bool
	hideSeq   int

	// Commands produced inside callbacks, drained by Update.
	pending []tea.Cmd
}

// NewElement creates an Element with empty content and zero bounds.
func NewElement(styles ui.Styles, opts ElementOptions, logger *slog.Logger) *Element {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if opts.WheelLines < 1 {
		opts.WheelLines = 1
	}
	if opts.WheelColumns < 1 {
		opts.WheelColumns = 1
	}
	opts.Vertical.Logger = logger
	opts.Horizontal.Logger = logger

	e := &Element{
		sc:      scrollable.New(),
		monitor: mouse.NewMonitor(logger),
		styles:  styles,
		opts:    opts,
		logger:  logger,
	}
	e.vbar = scrollbar.NewVertical(e.sc, e, e.monitor, styles, opts.Vertical)
	e.hbar = scrollbar.NewHorizontal(e.sc, e, e.monitor, styles, opts.Horizontal)
	e.sc.OnScroll(e.onDidScroll)
	return e
}

// ── Host ────────────────────────────────────────────────────────────────────

// OnMouseWheel scrolls by WheelLines rows or WheelColumns columns per notch.
func (e *Element) OnMouseWheel(ev scrollbar.WheelEvent) {
	cur := e.sc.CurrentPosition()
	desired := e.sc.ValidateScrollPosition(scrollable.Position{
		ScrollLeft: cur.ScrollLeft + ev.DeltaX*e.opts.WheelColumns,
		ScrollTop:  cur.ScrollTop + ev.DeltaY*e.opts.WheelLines,
	})
	if desired == cur {
		return
	}
	e.sc.SetScrollPositionNow(desired)
}

// OnDragStart keeps the bars up for the length of the drag.
func (e *Element) OnDragStart() {
	e.dragging = true
	e.reveal()
}

// OnDragEnd lets the bars fade unless the pointer is still over a bar.
func (e *Element) OnDragEnd() {
	e.dragging = false
	e.hide()
}

// ── Reveal / hide ───────────────────────────────────────────────────────────

func (e *Element) onDidScroll(ev scrollable.ScrollEvent) {
	if ev.ScrollTopChanged || ev.ScrollLeftChanged {
		e.reveal()
	}
}

func (e *Element) reveal() {
	e.vbar.BeginReveal()
	e.hbar.BeginReveal()
	e.scheduleHide()
}

func (e *Element) hide() {
	if e.mouseOver || e.dragging {
		return
	}
	e.vbar.BeginHide()
	e.hbar.BeginHide()
}

func (e *Element) scheduleHide() {
	if e.mouseOver || e.dragging {
		return
	}
	e.hideSeq++
	msg := hideMsg{owner: e, seq: e.hideSeq}
	e.queue(tea.Tick(e.opts.HideDelay, func(time.Time) tea.Msg { return msg }))
}

// overGutter reports whether (x, y) is over the strip reserved for either
// bar.
func (e *Element) overGutter(x, y int) bool {
	return e.vbar.Bounds().Contains(x, y) || e.hbar.Bounds().Contains(x, y)
}

func (e *Element) setMouseOver(over bool) {
	if e.mouseOver == over {
		return
	}
	e.mouseOver = over
	if over {
		e.reveal()
	} else {
		e.hide()
	}
}

// ── Bubbletea integration ───────────────────────────────────────────────────

// Update feeds a message to the element and its bars. Mouse messages go
// through the drag monitor first.
func (e *Element) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		e.setMouseOver(e.overGutter(msg.X, msg.Y))
		if !e.monitor.Handle(msg) {
			e.handleMouse(msg)
		}
	case tea.BlurMsg:
		e.monitor.Handle(msg)
		e.setMouseOver(false)
	case hideMsg:
		if msg.owner == e && msg.seq == e.hideSeq {
			e.hide()
		}
	default:
		e.queue(e.vbar.Update(msg))
		e.queue(e.hbar.Update(msg))
	}
	e.queue(e.vbar.Animate())
	e.queue(e.hbar.Animate())
	return e.drain()
}

func (e *Element) handleMouse(msg tea.MouseMsg) {
	if !e.outer.Contains(msg.X, msg.Y) {
		return
	}
	for _, bar := range []*scrollbar.Scrollbar{e.vbar, e.hbar} {
		if consumed, cmd := bar.HandleMouse(msg); consumed {
			e.queue(cmd)
			return
		}
	}

	switch {
	case mouse.IsWheel(msg):
		if ev, ok := scrollbar.WheelEventFromMouse(msg); ok {
			e.OnMouseWheel(ev)
		}
	case msg.Alt && mouse.IsLeftPress(msg) && e.content.Contains(msg.X, msg.Y):
		// Alt+click in the text grabs the vertical bar at that row.
		e.vbar.DelegateMouseDown(msg)
	}
}

func (e *Element) queue(cmd tea.Cmd) {
	if cmd != nil {
		e.pending = append(e.pending, cmd)
	}
}

func (e *Element) drain() tea.Cmd {
	if len(e.pending) == 0 {
		return nil
	}
	cmds := e.pending
	e.pending = nil
	return tea.Batch(cmds...)
}

// ── Layout ──────────────────────────────────────────────────────────────────

// SetBounds places the element on screen. Bars whose visibility is not
// Hidden reserve their thickness along the right and bottom edges.
func (e *Element) SetBounds(r mouse.Rect) {
	e.outer = r

	vw, hh := 0, 0
	if e.opts.Vertical.Visibility != scrollbar.Hidden {
		vw = min(e.vbar.Thickness(), r.W)
	}
	if e.opts.Horizontal.Visibility != scrollbar.Hidden {
		hh = min(e.hbar.Thickness(), r.H)
	}

	e.content = mouse.Rect{X: r.X, Y: r.Y, W: r.W - vw, H: r.H - hh}
	e.vbar.SetBounds(mouse.Rect{X: r.X + e.content.W, Y: r.Y, W: vw, H: e.content.H})
	e.hbar.SetBounds(mouse.Rect{X: r.X, Y: r.Y + e.content.H, W: e.content.W, H: hh})
	e.updateDimensions()
}

// SetContentSize sets the size of what is being scrolled.
func (e *Element) SetContentSize(width, height int) {
	e.contentWidth = width
	e.contentHeight = height
	e.updateDimensions()
}

func (e *Element) updateDimensions() {
	e.sc.SetScrollDimensions(scrollable.Dimensions{
		Width:        e.content.W,
		ScrollWidth:  e.contentWidth,
		Height:       e.content.H,
		ScrollHeight: e.contentHeight,
	})
}

// ── Scrolling ───────────────────────────────────────────────────────────────

// ScrollBy moves the viewport by dx columns and dy rows.
func (e *Element) ScrollBy(dx, dy int) { e.sc.ScrollBy(dx, dy) }

// ScrollToTop moves to the first row, keeping the column.
func (e *Element) ScrollToTop() {
	p := e.sc.CurrentPosition()
	p.ScrollTop = 0
	e.sc.SetScrollPositionNow(p)
}

// ScrollToBottom moves to the last page, keeping the column.
func (e *Element) ScrollToBottom() {
	p := e.sc.CurrentPosition()
	p.ScrollTop = e.contentHeight
	e.sc.SetScrollPositionNow(p)
}

// SetCanUseUnicode switches both bars between block and ASCII glyphs.
func (e *Element) SetCanUseUnicode(v bool) {
	e.vbar.SetCanUseUnicode(v)
	e.hbar.SetCanUseUnicode(v)
}

// ── Accessors ───────────────────────────────────────────────────────────────

// Position returns the current scroll offsets.
func (e *Element) Position() scrollable.Position { return e.sc.CurrentPosition() }

// State returns the scrollable snapshot.
func (e *Element) State() scrollable.State { return e.sc.State() }

// ContentRect is the area left for content once the bars are placed.
func (e *Element) ContentRect() mouse.Rect { return e.content }

// Dragging reports whether a slider drag is in progress.
func (e *Element) Dragging() bool { return e.dragging }

// Vertical returns the vertical scrollbar.
func (e *Element) Vertical() *scrollbar.Scrollbar { return e.vbar }

// Horizontal returns the horizontal scrollbar.
func (e *Element) Horizontal() *scrollbar.Scrollbar { return e.hbar }

// ── Rendering ───────────────────────────────────────────────────────────────

// View lays body (content.W × content.H) out with the bars.
func (e *Element) View(body string) string {
	e.vbar.Render()
	e.hbar.Render()

	vb, hb := e.vbar.Bounds(), e.hbar.Bounds()
	view := body
	if !vb.Empty() {
		view = lipgloss.JoinHorizontal(lipgloss.Top, body, e.vbar.View())
	}
	if !hb.Empty() {
		bottom := e.hbar.View()
		if vb.W > 0 {
			corner := e.styles.ScrollbarCorner.Render(ui.Blank(vb.W, hb.H))
			bottom = lipgloss.JoinHorizontal(lipgloss.Top, bottom, corner)
		}
		view = lipgloss.JoinVertical(lipgloss.Left, view, bottom)
	}
	return view
}

