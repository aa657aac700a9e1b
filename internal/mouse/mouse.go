// Package mouse provides hit-testing rectangles and scoped pointer-move
// monitoring for mouse-driven widgets.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a rectangular screen region in cells.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point (x, y) is within the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Region is a named hit region.
type Region struct {
	ID   string
	Rect Rect
}

// HitMap tracks hit regions for click detection. Later regions sit on top.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty HitMap.
func NewHitMap() *HitMap {
	return &HitMap{regions: make([]Region, 0, 8)}
}

// Clear removes all regions.
func (h *HitMap) Clear() {
	h.regions = h.regions[:0]
}

// Add registers a region. Empty rectangles are skipped.
func (h *HitMap) Add(id string, r Rect) {
	if r.Empty() {
		return
	}
	h.regions = append(h.regions, Region{ID: id, Rect: r})
}

// Test returns the topmost region containing the point, or nil.
func (h *HitMap) Test(x, y int) *Region {
	for i := len(h.regions) - 1; i >= 0; i-- {
		if h.regions[i].Rect.Contains(x, y) {
			return &h.regions[i]
		}
	}
	return nil
}

// Regions returns a copy of all registered regions.
func (h *HitMap) Regions() []Region {
	return append([]Region(nil), h.regions...)
}

// IsWheel reports whether the message is a wheel notch in any direction.
func IsWheel(msg tea.MouseMsg) bool {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft, tea.MouseButtonWheelRight:
		return true
	}
	return false
}

// IsLeftPress reports whether the message is a primary-button press.
func IsLeftPress(msg tea.MouseMsg) bool {
	return msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft
}
