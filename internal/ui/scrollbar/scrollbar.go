package scrollbar

import (
	"log/slog"
	"time"

	"github.com/Akashdeep-Patra/zed-scroll-view/internal/mouse"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/scrollable"
	"github.com/Akashdeep-Patra/zed-scroll-view/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PointerDragResetDistance is the orthogonal distance, in cells, past which
// a slider drag snaps back to where it started.
const PointerDragResetDistance = 140

const fadeFrameInterval = time.Second / 30

// Hit region IDs.
const (
	regionTrack     = "track"
	regionSlider    = "slider"
	regionArrowPrev = "arrow-prev"
	regionArrowNext = "arrow-next"
)

// Options configures a Scrollbar.
type Options struct {
	Visibility Visibility

	// Thickness is the bar's size across its axis, in cells.
	Thickness int
	// Arrows adds one-cell arrow buttons at both ends of the track.
	Arrows        bool
	MinSliderSize int

	// ScrollByPage makes track clicks move one page toward the pointer
	// instead of centring the slider on it.
	ScrollByPage bool

	// SnapBack resets a drag once the pointer wanders SnapBackDistance
	// cells away from the bar on the orthogonal axis.
	SnapBack         bool
	SnapBackDistance int

	RevealDuration time.Duration
	FadeDuration   time.Duration

	// Unicode selects block glyphs over ASCII.
	Unicode bool

	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Thickness < 1 {
		o.Thickness = 1
	}
	if o.MinSliderSize < MinimumSliderSize {
		o.MinSliderSize = MinimumSliderSize
	}
	if o.SnapBackDistance <= 0 {
		o.SnapBackDistance = PointerDragResetDistance
	}
	// Zero selects the default timing; a negative value makes the
	// transition instant.
	switch {
	case o.RevealDuration == 0:
		o.RevealDuration = DefaultRevealDuration
	case o.RevealDuration < 0:
		o.RevealDuration = 0
	}
	switch {
	case o.FadeDuration == 0:
		o.FadeDuration = DefaultFadeDuration
	case o.FadeDuration < 0:
		o.FadeDuration = 0
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

// element is a positioned rectangle on the display surface.
type element struct {
	rect   mouse.Rect
	active bool
}

// drag holds what a slider drag needs from the moment the pointer went down.
type drag struct {
	initialPointer    int
	initialOrthogonal int
	initialState      *State
}

// axis supplies everything that differs between vertical and horizontal bars.
type axis interface {
	name() string
	// pointerPosition is the page-relative coordinate along the scroll axis.
	pointerPosition(msg tea.MouseMsg) int
	// orthogonalPosition is the page-relative coordinate across it.
	orthogonalPosition(msg tea.MouseMsg) int
	// origin is where the track starts along the scroll axis.
	origin(bounds mouse.Rect) int

	scrollPosition() int
	writeScrollPosition(pos int)
	validateScrollPosition(pos int) int
	// dimensions extracts (visible, scroll, position) for this axis.
	dimensions(st scrollable.State) (visible, scroll, position int)

	renderTrack(bounds mouse.Rect, largeSize, smallSize int) mouse.Rect
	updateSlider(bounds mouse.Rect, size, position, smallSize int) mouse.Rect

	// join lays out one glyph per cell along the axis, smallSize cells thick.
	join(cells []string, smallSize int) string
	glyphs(unicode bool) glyphSet
}

type glyphSet struct {
	track, slider, prev, next string
}

// Scrollbar is an interactive scrollbar. The orientation-specific parts are
// supplied by an axis; everything else lives here.
type Scrollbar struct {
	axis    axis
	host    Host
	monitor *mouse.Monitor
	styles  ui.Styles
	opts    Options
	logger  *slog.Logger

	state      *State
	visibility *VisibilityController

	bounds       mouse.Rect
	track        element
	slider       element
	arrowPrev    element
	arrowNext    element
	hits         *mouse.HitMap
	canUseUni    bool
	shouldRender bool
	view         string

	drag    *drag
	session *mouse.Session

	repeatSeq   int
	fadePending bool
	lastFrame   time.Time
}

func newScrollbar(a axis, sc *scrollable.Scrollable, host Host, monitor *mouse.Monitor, styles ui.Styles, opts Options) *Scrollbar {
	opts = opts.withDefaults()
	arrowSize := 0
	if opts.Arrows {
		arrowSize = 1
	}
	s := &Scrollbar{
		axis:         a,
		host:         host,
		monitor:      monitor,
		styles:       styles,
		opts:         opts,
		logger:       opts.Logger.With("scrollbar", a.name()),
		hits:         mouse.NewHitMap(),
		canUseUni:    opts.Unicode,
		shouldRender: true,
	}
	visible, scroll, pos := a.dimensions(sc.State())
	s.state = NewState(arrowSize, opts.MinSliderSize, visible, scroll, pos)
	s.visibility = NewVisibilityController(opts.Visibility, opts.RevealDuration, opts.FadeDuration, func() {
		s.shouldRender = true
	})
	s.visibility.SetIsNeeded(s.state.IsNeeded())
	sc.OnScroll(func(ev scrollable.ScrollEvent) { s.OnDidScroll(ev) })
	return s
}

// ── Host-facing updates ─────────────────────────────────────────────────────

// OnDidScroll pulls this axis's dimensions from a scroll event into the
// state. It reports whether a render is pending.
func (s *Scrollbar) OnDidScroll(ev scrollable.ScrollEvent) bool {
	visible, scroll, pos := s.axis.dimensions(ev.State)
	changed := s.state.SetVisibleSize(visible)
	changed = s.state.SetScrollSize(scroll) || changed
	changed = s.state.SetScrollPosition(pos) || changed
	if changed {
		s.visibility.SetIsNeeded(s.state.IsNeeded())
		s.shouldRender = true
	}
	return s.shouldRender
}

// SetBounds positions the bar on screen. The rectangle's length along the
// axis should match the viewport.
func (s *Scrollbar) SetBounds(r mouse.Rect) {
	if s.bounds == r {
		return
	}
	s.bounds = r
	s.shouldRender = true
}

// Bounds returns the bar's screen rectangle.
func (s *Scrollbar) Bounds() mouse.Rect { return s.bounds }

// SetCanUseUnicode switches between block glyphs and ASCII.
func (s *Scrollbar) SetCanUseUnicode(v bool) {
	if s.canUseUni == v {
		return
	}
	s.canUseUni = v
	s.shouldRender = true
}

// SetVisibility changes the visibility setting.
func (s *Scrollbar) SetVisibility(v Visibility) {
	s.visibility.SetVisibility(v)
}

// BeginReveal asks for the bar to be shown (if it is needed).
func (s *Scrollbar) BeginReveal() {
	s.visibility.SetShouldBeVisible(true)
}

// BeginHide asks for the bar to fade out.
func (s *Scrollbar) BeginHide() {
	s.visibility.SetShouldBeVisible(false)
}

// ── Scroll position ─────────────────────────────────────────────────────────

// ValidateScrollPosition clamps pos against the current dimensions.
func (s *Scrollbar) ValidateScrollPosition(pos int) int {
	return s.axis.validateScrollPosition(pos)
}

// SetDesiredScrollPosition clamps pos and applies it if it differs from the
// current position. It reports whether the position changed.
func (s *Scrollbar) SetDesiredScrollPosition(pos int) bool {
	pos = s.axis.validateScrollPosition(pos)
	if pos == s.axis.scrollPosition() {
		return false
	}
	s.axis.writeScrollPosition(pos)
	return true
}

// ── Pointer handling ────────────────────────────────────────────────────────

// HandleMouse processes a press or wheel notch that may hit the bar. It
// reports whether the message was consumed. Motion and release during a
// drag are delivered through the Monitor instead.
func (s *Scrollbar) HandleMouse(msg tea.MouseMsg) (bool, tea.Cmd) {
	s.Render()

	region := s.hits.Test(msg.X, msg.Y)
	if region == nil {
		return false, nil
	}

	if mouse.IsWheel(msg) {
		if ev, ok := WheelEventFromMouse(msg); ok {
			s.host.OnMouseWheel(ev)
		}
		return true, nil
	}
	if msg.Action != tea.MouseActionPress {
		return false, nil
	}

	switch region.ID {
	case regionSlider:
		if msg.Button == tea.MouseButtonLeft {
			s.sliderPointerDown(msg)
		}
	case regionTrack:
		s.onPointerDown(msg)
	case regionArrowPrev:
		return true, s.arrowPointerDown(-1)
	case regionArrowNext:
		return true, s.arrowPointerDown(1)
	}
	return true, nil
}

// DelegateMouseDown handles a press that happened outside the bar, using
// only its along-axis coordinate. A press level with the slider grabs it;
// anything else behaves like a track click.
func (s *Scrollbar) DelegateMouseDown(msg tea.MouseMsg) {
	start := s.axis.origin(s.bounds) + s.state.ArrowSize() + s.state.SliderPosition()
	stop := start + s.state.SliderSize()
	pos := s.axis.pointerPosition(msg)
	if pos >= start && pos < stop {
		if msg.Button == tea.MouseButtonLeft {
			s.sliderPointerDown(msg)
		}
		return
	}
	s.onPointerDown(msg)
}

// onPointerDown jumps to the clicked offset and then continues as a slider
// drag from there.
func (s *Scrollbar) onPointerDown(msg tea.MouseMsg) {
	offset := s.axis.pointerPosition(msg) - s.axis.origin(s.bounds)
	var desired int
	if s.opts.ScrollByPage {
		desired = s.state.DesiredScrollPositionFromOffsetPaged(offset)
	} else {
		desired = s.state.DesiredScrollPositionFromOffset(offset)
	}
	s.SetDesiredScrollPosition(desired)

	if msg.Button == tea.MouseButtonLeft {
		s.sliderPointerDown(msg)
	}
}

func (s *Scrollbar) sliderPointerDown(msg tea.MouseMsg) {
	d := &drag{
		initialPointer:    s.axis.pointerPosition(msg),
		initialOrthogonal: s.axis.orthogonalPosition(msg),
		initialState:      s.state.Clone(),
	}
	s.drag = d
	s.setSliderActive(true)

	s.session = s.monitor.Start(
		func(m tea.MouseMsg) { s.onDragMove(d, m) },
		func() {
			s.drag = nil
			s.session = nil
			s.setSliderActive(false)
			s.logger.Debug("drag end", "position", s.axis.scrollPosition())
			s.host.OnDragEnd()
		},
	)
	s.logger.Debug("drag start", "pointer", d.initialPointer, "position", d.initialState.ScrollPosition())
	s.host.OnDragStart()
}

func (s *Scrollbar) onDragMove(d *drag, msg tea.MouseMsg) {
	orthogonalDelta := s.axis.orthogonalPosition(msg) - d.initialOrthogonal
	if orthogonalDelta < 0 {
		orthogonalDelta = -orthogonalDelta
	}
	if s.opts.SnapBack && orthogonalDelta > s.opts.SnapBackDistance {
		// The pointer wandered away from the bar.
		s.SetDesiredScrollPosition(d.initialState.ScrollPosition())
		return
	}
	delta := s.axis.pointerPosition(msg) - d.initialPointer
	s.SetDesiredScrollPosition(d.initialState.DesiredScrollPositionFromDelta(delta))
}

func (s *Scrollbar) setSliderActive(v bool) {
	if s.slider.active == v {
		return
	}
	s.slider.active = v
	s.shouldRender = true
}

// IsDragging reports whether a slider drag is in progress.
func (s *Scrollbar) IsDragging() bool { return s.drag != nil }

// ── Bubbletea integration ───────────────────────────────────────────────────

type fadeFrameMsg struct {
	owner *Scrollbar
	at    time.Time
}

// Update handles the bar's own timer messages (fade frames and arrow
// auto-repeat). Messages addressed to other bars are ignored.
func (s *Scrollbar) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case fadeFrameMsg:
		if msg.owner != s {
			return nil
		}
		s.fadePending = false
		dt := msg.at.Sub(s.lastFrame)
		s.lastFrame = msg.at
		if s.visibility.Advance(dt) {
			return s.scheduleFrame()
		}
	case arrowRepeatMsg:
		if msg.owner != s {
			return nil
		}
		return s.onArrowRepeat(msg)
	}
	return nil
}

// Animate returns a frame tick if a fade is in progress and none is
// scheduled yet.
func (s *Scrollbar) Animate() tea.Cmd {
	if s.fadePending || !s.visibility.Animating() {
		return nil
	}
	s.lastFrame = time.Now()
	return s.scheduleFrame()
}

func (s *Scrollbar) scheduleFrame() tea.Cmd {
	s.fadePending = true
	return tea.Tick(fadeFrameInterval, func(t time.Time) tea.Msg {
		return fadeFrameMsg{owner: s, at: t}
	})
}

// ── Rendering ───────────────────────────────────────────────────────────────

// NeedsRender reports whether the next Render will do any work.
func (s *Scrollbar) NeedsRender() bool { return s.shouldRender }

// Render recomputes element geometry, hit regions and the cached view. It
// is a no-op unless something changed since the last pass.
func (s *Scrollbar) Render() {
	if !s.shouldRender {
		return
	}
	s.shouldRender = false

	large := s.state.RectangleLargeSize()
	small := s.opts.Thickness
	arrow := s.state.ArrowSize()

	s.track.rect = s.axis.renderTrack(s.bounds, large, small)
	s.slider.rect = s.axis.updateSlider(s.bounds, s.state.SliderSize(), arrow+s.state.SliderPosition(), small)
	if arrow > 0 {
		s.arrowPrev.rect = s.axis.updateSlider(s.bounds, arrow, 0, small)
		s.arrowNext.rect = s.axis.updateSlider(s.bounds, arrow, large-arrow, small)
	}

	s.hits.Clear()
	if s.visibility.IsVisible() {
		s.hits.Add(regionTrack, s.track.rect)
		s.hits.Add(regionSlider, s.slider.rect)
		if arrow > 0 {
			s.hits.Add(regionArrowPrev, s.arrowPrev.rect)
			s.hits.Add(regionArrowNext, s.arrowNext.rect)
		}
	}

	s.view = s.draw(large, small, arrow)
}

// View returns the output of the last Render.
func (s *Scrollbar) View() string { return s.view }

func (s *Scrollbar) draw(large, small, arrow int) string {
	if large <= 0 {
		return ""
	}
	opacity := s.visibility.Opacity()
	if opacity <= 0 || !s.state.IsNeeded() {
		blank := make([]string, large)
		for i := range blank {
			blank[i] = " "
		}
		return s.axis.join(blank, small)
	}

	t := s.styles.Theme
	g := s.axis.glyphs(s.canUseUni)

	trackStyle := s.styles.ScrollbarTrack.Foreground(ui.Fade(t.ScrollbarTrack, t.Bg, opacity))
	arrowStyle := s.styles.ScrollbarArrow.Foreground(ui.Fade(t.ScrollbarArrow, t.Bg, opacity))
	var sliderStyle lipgloss.Style
	if s.slider.active {
		sliderStyle = s.styles.ScrollbarSliderActive.Foreground(ui.Fade(t.ScrollbarSliderActive, t.Bg, opacity))
	} else {
		sliderStyle = s.styles.ScrollbarSlider.Foreground(ui.Fade(t.ScrollbarSlider, t.Bg, opacity))
	}

	track := trackStyle.Render(g.track)
	slider := sliderStyle.Render(g.slider)
	sliderStart := arrow + s.state.SliderPosition()
	sliderEnd := sliderStart + s.state.SliderSize()

	cells := make([]string, large)
	for i := range cells {
		switch {
		case i < arrow:
			cells[i] = arrowStyle.Render(g.prev)
		case i >= large-arrow:
			cells[i] = arrowStyle.Render(g.next)
		case i >= sliderStart && i < sliderEnd:
			cells[i] = slider
		default:
			cells[i] = track
		}
	}
	return s.axis.join(cells, small)
}

// ── Accessors ───────────────────────────────────────────────────────────────

// State returns a copy of the current geometry.
func (s *Scrollbar) State() *State { return s.state.Clone() }

// SliderRect returns the slider rectangle from the last Render.
func (s *Scrollbar) SliderRect() mouse.Rect { return s.slider.rect }

// TrackRect returns the track rectangle from the last Render.
func (s *Scrollbar) TrackRect() mouse.Rect { return s.track.rect }

// SliderActive reports whether the slider is drawn in its active style.
func (s *Scrollbar) SliderActive() bool { return s.slider.active }

// IsVisible reports whether the bar is (or is fading toward) shown.
func (s *Scrollbar) IsVisible() bool { return s.visibility.IsVisible() }

// Opacity returns the current fade level.
func (s *Scrollbar) Opacity() float64 { return s.visibility.Opacity() }

// Thickness returns the bar's cross-axis size.
func (s *Scrollbar) Thickness() int { return s.opts.Thickness }
