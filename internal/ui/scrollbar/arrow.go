package scrollbar

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Arrow auto-repeat timing while the button is held.
const (
	arrowInitialDelay   = 200 * time.Millisecond
	arrowRepeatInterval = time.Second / 24
)

type arrowRepeatMsg struct {
	owner *Scrollbar
	seq   int
	delta int
}

// arrowPointerDown scrolls one cell in direction delta and holds a monitor
// session so release stops the auto-repeat.
func (s *Scrollbar) arrowPointerDown(delta int) tea.Cmd {
	s.SetDesiredScrollPosition(s.axis.scrollPosition() + delta)

	s.repeatSeq++
	seq := s.repeatSeq
	s.session = s.monitor.Start(nil, func() {
		s.repeatSeq++
		s.session = nil
	})
	return s.arrowTick(arrowInitialDelay, seq, delta)
}

func (s *Scrollbar) arrowTick(d time.Duration, seq, delta int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return arrowRepeatMsg{owner: s, seq: seq, delta: delta}
	})
}

func (s *Scrollbar) onArrowRepeat(msg arrowRepeatMsg) tea.Cmd {
	if msg.seq != s.repeatSeq || s.session == nil {
		return nil
	}
	if !s.SetDesiredScrollPosition(s.axis.scrollPosition() + msg.delta) {
		// Hit the end; nothing left to repeat.
		return nil
	}
	return s.arrowTick(arrowRepeatInterval, msg.seq, msg.delta)
}
