// Package scrollbar implements interactive scrollbars bound to a
// scrollable.Scrollable: slider drag with snap-back, track clicks, arrow
// buttons, lazy rendering and fade-in/fade-out visibility.
package scrollbar

import tea "github.com/charmbracelet/bubbletea"

// Host owns the scrollable content and receives the scrollbar's
// notifications. It decides how wheel input translates to scrolling and how
// drags affect reveal/hide of the other scrollbars it manages.
type Host interface {
	OnMouseWheel(ev WheelEvent)
	OnDragStart()
	OnDragEnd()
}

// WheelEvent is a single wheel notch. Positive deltas scroll down/right.
type WheelEvent struct {
	X, Y   int
	DeltaX int
	DeltaY int
}

// WheelEventFromMouse converts a wheel MouseMsg. Shift turns vertical
// notches into horizontal ones.
func WheelEventFromMouse(msg tea.MouseMsg) (WheelEvent, bool) {
	ev := WheelEvent{X: msg.X, Y: msg.Y}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		ev.DeltaY = -1
	case tea.MouseButtonWheelDown:
		ev.DeltaY = 1
	case tea.MouseButtonWheelLeft:
		ev.DeltaX = -1
	case tea.MouseButtonWheelRight:
		ev.DeltaX = 1
	default:
		return WheelEvent{}, false
	}
	if msg.Shift && ev.DeltaY != 0 {
		ev.DeltaX, ev.DeltaY = ev.DeltaY, 0
	}
	return ev, true
}
