package mouse

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

// Monitor routes pointer motion to at most one active Session. The owning
// model feeds every message through Handle before its own dispatch so that a
// drag keeps receiving motion after the pointer leaves the widget that
// started it.
type Monitor struct {
	session *Session
	logger  *slog.Logger
}

// Session is a scoped pointer-move monitoring acquisition. It ends on button
// release, on focus loss, when replaced by a newer session, or on Close. The
// stop callback runs exactly once.
type Session struct {
	monitor *Monitor
	onMove  func(tea.MouseMsg)
	onStop  func()
	closed  bool
}

// NewMonitor creates a Monitor. A nil logger discards output.
func NewMonitor(logger *slog.Logger) *Monitor {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Monitor{logger: logger}
}

// Start begins a new session, closing any session still active.
func (m *Monitor) Start(onMove func(tea.MouseMsg), onStop func()) *Session {
	if m.session != nil {
		m.logger.Debug("mouse: replacing active session")
		m.session.Close()
	}
	s := &Session{monitor: m, onMove: onMove, onStop: onStop}
	m.session = s
	return s
}

// Active reports whether a session is in progress.
func (m *Monitor) Active() bool {
	return m.session != nil
}

// Handle consumes msg when a session is active. Motion is forwarded to the
// session; release and blur end it. Presses and wheel notches during a
// session are swallowed.
func (m *Monitor) Handle(msg tea.Msg) bool {
	s := m.session
	if s == nil {
		return false
	}
	switch msg := msg.(type) {
	case tea.MouseMsg:
		switch msg.Action {
		case tea.MouseActionMotion:
			if s.onMove != nil {
				s.onMove(msg)
			}
		case tea.MouseActionRelease:
			s.Close()
		}
		return true
	case tea.BlurMsg:
		m.logger.Debug("mouse: focus lost, ending session")
		s.Close()
		return true
	}
	return false
}

// Close ends the session. Calling Close more than once is a no-op.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.monitor.session == s {
		s.monitor.session = nil
	}
	if s.onStop != nil {
		s.onStop()
	}
}

// Closed reports whether the session has ended.
func (s *Session) Closed() bool {
	return s.closed
}
