package scrollable

import "testing"

func TestNewState_Clamps(t *testing.T) {
	s := NewState(-5, 10, 99, 20, 100, -3)
	if s.Width != 0 {
		t.Errorf("negative width should clamp to 0, got %d", s.Width)
	}
	if s.ScrollLeft != 10 {
		t.Errorf("ScrollLeft = %d, want 10", s.ScrollLeft)
	}
	if s.ScrollTop != 0 {
		t.Errorf("ScrollTop = %d, want 0", s.ScrollTop)
	}

	s = NewState(10, 5, 3, 0, 0, 0)
	if s.ScrollLeft != 0 {
		t.Errorf("content smaller than viewport should pin offset to 0, got %d", s.ScrollLeft)
	}
}

func TestValidateScrollPosition(t *testing.T) {
	s := New()
	s.SetScrollDimensions(Dimensions{Width: 10, ScrollWidth: 30, Height: 100, ScrollHeight: 500})

	got := s.ValidateScrollPosition(Position{ScrollLeft: -4, ScrollTop: 1000})
	want := Position{ScrollLeft: 0, ScrollTop: 400}
	if got != want {
		t.Errorf("ValidateScrollPosition = %+v, want %+v", got, want)
	}
	if s.CurrentPosition() != (Position{}) {
		t.Error("ValidateScrollPosition must not apply the position")
	}
}

func TestSetScrollPositionNow_FiresEvent(t *testing.T) {
	s := New()
	s.SetScrollDimensions(Dimensions{Width: 10, ScrollWidth: 10, Height: 100, ScrollHeight: 500})

	var events []ScrollEvent
	s.OnScroll(func(ev ScrollEvent) { events = append(events, ev) })

	s.SetScrollPositionNow(Position{ScrollTop: 50})
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	ev := events[0]
	if !ev.ScrollTopChanged || ev.ScrollLeftChanged || ev.HeightChanged {
		t.Errorf("unexpected change flags: %+v", ev)
	}
	if ev.Old.ScrollTop != 0 || ev.ScrollTop != 50 {
		t.Errorf("old/new = %d/%d, want 0/50", ev.Old.ScrollTop, ev.ScrollTop)
	}

	s.SetScrollPositionNow(Position{ScrollTop: 50})
	if len(events) != 1 {
		t.Error("unchanged position must not fire an event")
	}
}

func TestSetScrollDimensions_ReclampsOffset(t *testing.T) {
	s := New()
	s.SetScrollDimensions(Dimensions{Height: 10, ScrollHeight: 100})
	s.SetScrollPositionNow(Position{ScrollTop: 90})

	var last ScrollEvent
	s.OnScroll(func(ev ScrollEvent) { last = ev })
	s.SetScrollDimensions(Dimensions{Height: 10, ScrollHeight: 40})

	if s.CurrentPosition().ScrollTop != 30 {
		t.Errorf("ScrollTop = %d, want 30", s.CurrentPosition().ScrollTop)
	}
	if !last.ScrollHeightChanged || !last.ScrollTopChanged {
		t.Errorf("expected height and top change flags, got %+v", last)
	}
}

func TestScrollBy(t *testing.T) {
	s := New()
	s.SetScrollDimensions(Dimensions{Width: 5, ScrollWidth: 20, Height: 5, ScrollHeight: 20})
	s.ScrollBy(3, 4)
	s.ScrollBy(100, -1)
	got := s.CurrentPosition()
	if got != (Position{ScrollLeft: 15, ScrollTop: 3}) {
		t.Errorf("position = %+v, want {15 3}", got)
	}
}
