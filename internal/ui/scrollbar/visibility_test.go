package scrollbar

import (
	"testing"
	"time"
)

func TestVisibilityController_NeededAndShouldBeVisible(t *testing.T) {
	cases := []struct {
		needed, should bool
		want           bool
	}{
		{false, false, false},
		{false, true, false},
		{true, false, false},
		{true, true, true},
	}
	for _, c := range cases {
		vc := NewVisibilityController(Auto, 0, 0, nil)
		vc.SetIsNeeded(c.needed)
		vc.SetShouldBeVisible(c.should)
		if vc.IsVisible() != c.want {
			t.Errorf("needed=%v should=%v: visible=%v, want %v", c.needed, c.should, vc.IsVisible(), c.want)
		}
	}
}

func TestVisibilityController_SettingOverrides(t *testing.T) {
	vc := NewVisibilityController(Visible, 0, 0, nil)
	vc.SetIsNeeded(true)
	vc.SetShouldBeVisible(false)
	if !vc.IsVisible() {
		t.Error("Visible setting should ignore the hide signal")
	}

	vc.SetVisibility(Hidden)
	vc.SetShouldBeVisible(true)
	if vc.IsVisible() {
		t.Error("Hidden setting should ignore the reveal signal")
	}

	vc.SetVisibility(Auto)
	if !vc.IsVisible() {
		t.Error("switching back to Auto should honour the last raw signal")
	}
}

func TestVisibilityController_FadeOut(t *testing.T) {
	changes := 0
	vc := NewVisibilityController(Auto, 0, 800*time.Millisecond, func() { changes++ })
	vc.SetIsNeeded(true)
	vc.SetShouldBeVisible(true)
	if vc.Opacity() != 1 {
		t.Fatalf("instant reveal should reach full opacity, got %v", vc.Opacity())
	}

	vc.SetShouldBeVisible(false)
	if vc.IsVisible() || !vc.Animating() {
		t.Fatal("hide while needed should start a fade")
	}
	vc.Advance(400 * time.Millisecond)
	if op := vc.Opacity(); op <= 0 || op >= 1 {
		t.Errorf("mid-fade opacity = %v", op)
	}
	if vc.Advance(time.Second) {
		t.Error("fade should be complete")
	}
	if vc.Opacity() != 0 {
		t.Errorf("opacity = %v, want 0", vc.Opacity())
	}
	if changes == 0 {
		t.Error("onChange should fire during the fade")
	}
}

func TestVisibilityController_NotNeededHidesInstantly(t *testing.T) {
	vc := NewVisibilityController(Auto, 0, time.Second, nil)
	vc.SetIsNeeded(true)
	vc.SetShouldBeVisible(true)

	vc.SetIsNeeded(false)
	if vc.IsVisible() || vc.Animating() || vc.Opacity() != 0 {
		t.Errorf("losing overflow should hide without fading: visible=%v animating=%v opacity=%v",
			vc.IsVisible(), vc.Animating(), vc.Opacity())
	}
}

func TestParseVisibility(t *testing.T) {
	for in, want := range map[string]Visibility{"": Auto, "auto": Auto, "Visible": Visible, " hidden ": Hidden} {
		got, err := ParseVisibility(in)
		if err != nil || got != want {
			t.Errorf("ParseVisibility(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseVisibility("sometimes"); err == nil {
		t.Error("expected an error for an unknown value")
	}
}
