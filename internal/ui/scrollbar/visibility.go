package scrollbar

import (
	"fmt"
	"strings"
	"time"
)

// Visibility is the user-facing scrollbar visibility setting.
type Visibility int

const (
	// Auto shows the scrollbar while the user interacts with the region.
	Auto Visibility = iota
	// Visible keeps the scrollbar shown whenever content overflows.
	Visible
	// Hidden never shows the scrollbar.
	Hidden
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	default:
		return "auto"
	}
}

// ParseVisibility parses "auto", "visible" or "hidden".
func ParseVisibility(s string) (Visibility, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return Auto, nil
	case "visible":
		return Visible, nil
	case "hidden":
		return Hidden, nil
	}
	return Auto, fmt.Errorf("unknown scrollbar visibility %q", s)
}

// Default fade timings.
const (
	DefaultRevealDuration = 100 * time.Millisecond
	DefaultFadeDuration   = 800 * time.Millisecond
)

// VisibilityController combines "is needed" and "should be visible" into the
// actual visibility and ramps an opacity value toward it.
type VisibilityController struct {
	visibility Visibility

	rawShouldBeVisible bool
	shouldBeVisible    bool
	isNeeded           bool
	isVisible          bool

	revealDuration time.Duration
	fadeDuration   time.Duration

	opacity float64
	target  float64
	rate    float64 // opacity units per second; 0 when idle

	onChange func()
}

// NewVisibilityController creates a controller. onChange is called whenever
// the visibility or the rendered opacity changes.
func NewVisibilityController(v Visibility, reveal, fade time.Duration, onChange func()) *VisibilityController {
	c := &VisibilityController{
		visibility:     v,
		revealDuration: reveal,
		fadeDuration:   fade,
		onChange:       onChange,
	}
	c.shouldBeVisible = c.applyVisibilitySetting()
	return c
}

func (c *VisibilityController) applyVisibilitySetting() bool {
	switch c.visibility {
	case Hidden:
		return false
	case Visible:
		return true
	}
	return c.rawShouldBeVisible
}

// SetVisibility changes the setting.
func (c *VisibilityController) SetVisibility(v Visibility) {
	if c.visibility == v {
		return
	}
	c.visibility = v
	c.SetShouldBeVisible(c.rawShouldBeVisible)
}

// SetShouldBeVisible records the interaction signal.
func (c *VisibilityController) SetShouldBeVisible(raw bool) {
	c.rawShouldBeVisible = raw
	v := c.applyVisibilitySetting()
	if c.shouldBeVisible != v {
		c.shouldBeVisible = v
		c.ensureVisibility()
	}
}

// SetIsNeeded records whether the content overflows.
func (c *VisibilityController) SetIsNeeded(needed bool) {
	if c.isNeeded != needed {
		c.isNeeded = needed
		c.ensureVisibility()
	}
}

func (c *VisibilityController) ensureVisibility() {
	switch {
	case !c.isNeeded:
		c.hide(false)
	case c.shouldBeVisible:
		c.reveal()
	default:
		c.hide(true)
	}
}

func (c *VisibilityController) reveal() {
	if c.isVisible {
		return
	}
	c.isVisible = true
	c.notify()
	c.rampTo(1, c.revealDuration)
}

func (c *VisibilityController) hide(withFade bool) {
	if !c.isVisible {
		return
	}
	c.isVisible = false
	c.notify()
	if withFade {
		c.rampTo(0, c.fadeDuration)
		return
	}
	c.rampTo(0, 0)
}

func (c *VisibilityController) rampTo(target float64, d time.Duration) {
	c.target = target
	if d <= 0 || c.opacity == target {
		c.rate = 0
		c.setOpacity(target)
		return
	}
	c.rate = 1 / d.Seconds()
}

// Advance steps the fade by dt and reports whether it is still in progress.
func (c *VisibilityController) Advance(dt time.Duration) bool {
	if c.rate == 0 {
		return false
	}
	step := c.rate * dt.Seconds()
	next := c.opacity
	if c.target > next {
		next = min(c.target, next+step)
	} else {
		next = max(c.target, next-step)
	}
	c.setOpacity(next)
	if next == c.target {
		c.rate = 0
	}
	return c.rate != 0
}

func (c *VisibilityController) setOpacity(v float64) {
	if c.opacity == v {
		return
	}
	c.opacity = v
	c.notify()
}

func (c *VisibilityController) notify() {
	if c.onChange != nil {
		c.onChange()
	}
}

// Animating reports whether a fade is in progress.
func (c *VisibilityController) Animating() bool { return c.rate != 0 }

// IsVisible reports the combined visibility (needed AND should be visible).
func (c *VisibilityController) IsVisible() bool { return c.isVisible }

// IsNeeded reports the last "is needed" signal.
func (c *VisibilityController) IsNeeded() bool { return c.isNeeded }

// Opacity returns the current rendered opacity in [0, 1].
func (c *VisibilityController) Opacity() float64 { return c.opacity }
