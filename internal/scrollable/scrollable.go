// Package scrollable models a scrollable region: viewport dimensions, content
// dimensions and the scroll offset. Positions are clamped so the viewport
// never runs past the content, and every change is broadcast to listeners as
// a ScrollEvent.
package scrollable

// State is an immutable snapshot of a scrollable region. Construct it with
// NewState so the invariants hold.
type State struct {
	Width       int
	ScrollWidth int
	ScrollLeft  int

	Height       int
	ScrollHeight int
	ScrollTop    int
}

// NewState returns a normalised state: sizes are non-negative and offsets
// lie within [0, content-viewport].
func NewState(width, scrollWidth, scrollLeft, height, scrollHeight, scrollTop int) State {
	width = max(0, width)
	scrollWidth = max(0, scrollWidth)
	height = max(0, height)
	scrollHeight = max(0, scrollHeight)

	return State{
		Width:        width,
		ScrollWidth:  scrollWidth,
		ScrollLeft:   clampOffset(scrollLeft, width, scrollWidth),
		Height:       height,
		ScrollHeight: scrollHeight,
		ScrollTop:    clampOffset(scrollTop, height, scrollHeight),
	}
}

func clampOffset(pos, viewport, content int) int {
	if pos+viewport > content {
		pos = content - viewport
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}

// WithDimensions returns a copy with new sizes, keeping the offsets (clamped).
func (s State) WithDimensions(d Dimensions) State {
	return NewState(d.Width, d.ScrollWidth, s.ScrollLeft, d.Height, d.ScrollHeight, s.ScrollTop)
}

// WithPosition returns a copy scrolled to p, clamped.
func (s State) WithPosition(p Position) State {
	return NewState(s.Width, s.ScrollWidth, p.ScrollLeft, s.Height, s.ScrollHeight, p.ScrollTop)
}

// Position returns the current offsets.
func (s State) Position() Position {
	return Position{ScrollLeft: s.ScrollLeft, ScrollTop: s.ScrollTop}
}

// Dimensions holds viewport and content sizes.
type Dimensions struct {
	Width        int
	ScrollWidth  int
	Height       int
	ScrollHeight int
}

// Position is a pair of scroll offsets.
type Position struct {
	ScrollLeft int
	ScrollTop  int
}

// ScrollEvent describes a transition between two states.
type ScrollEvent struct {
	Old State
	State

	WidthChanged        bool
	ScrollWidthChanged  bool
	ScrollLeftChanged   bool
	HeightChanged       bool
	ScrollHeightChanged bool
	ScrollTopChanged    bool
}

func newScrollEvent(prev, next State) ScrollEvent {
	return ScrollEvent{
		Old:                 prev,
		State:               next,
		WidthChanged:        prev.Width != next.Width,
		ScrollWidthChanged:  prev.ScrollWidth != next.ScrollWidth,
		ScrollLeftChanged:   prev.ScrollLeft != next.ScrollLeft,
		HeightChanged:       prev.Height != next.Height,
		ScrollHeightChanged: prev.ScrollHeight != next.ScrollHeight,
		ScrollTopChanged:    prev.ScrollTop != next.ScrollTop,
	}
}

// Scrollable owns the authoritative State. It is used from the UI loop only
// and is not safe for concurrent use.
type Scrollable struct {
	state     State
	listeners []func(ScrollEvent)
}

// New creates a Scrollable with zero dimensions.
func New() *Scrollable {
	return &Scrollable{}
}

// OnScroll registers a listener invoked synchronously after every change.
func (s *Scrollable) OnScroll(fn func(ScrollEvent)) {
	s.listeners = append(s.listeners, fn)
}

// State returns the current snapshot.
func (s *Scrollable) State() State {
	return s.state
}

// CurrentPosition returns the current offsets.
func (s *Scrollable) CurrentPosition() Position {
	return s.state.Position()
}

// ValidateScrollPosition clamps p against the current dimensions without
// applying it.
func (s *Scrollable) ValidateScrollPosition(p Position) Position {
	return s.state.WithPosition(p).Position()
}

// SetScrollDimensions applies new sizes and re-clamps the offsets.
func (s *Scrollable) SetScrollDimensions(d Dimensions) {
	s.setState(s.state.WithDimensions(d))
}

// SetScrollPositionNow scrolls immediately to p (clamped).
func (s *Scrollable) SetScrollPositionNow(p Position) {
	s.setState(s.state.WithPosition(p))
}

// ScrollBy moves the offsets by the given deltas (clamped).
func (s *Scrollable) ScrollBy(dx, dy int) {
	p := s.state.Position()
	p.ScrollLeft += dx
	p.ScrollTop += dy
	s.SetScrollPositionNow(p)
}

func (s *Scrollable) setState(next State) {
	prev := s.state
	if prev == next {
		return
	}
	s.state = next
	ev := newScrollEvent(prev, next)
	for _, fn := range s.listeners {
		fn(ev)
	}
}
