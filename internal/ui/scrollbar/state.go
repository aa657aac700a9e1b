package scrollbar

import "math"

// MinimumSliderSize keeps the slider grabbable when content dwarfs the viewport.
const MinimumSliderSize = 1

// State is the geometry calculator behind a scrollbar. Given the visible
// size, the content size and the scroll position it derives the slider
// length and offset along the track. All inputs are non-negative; negative
// values are stored as zero.
type State struct {
	arrowSize     int
	minSliderSize int

	visibleSize    int
	scrollSize     int
	scrollPosition int

	// Derived by computeValues.
	availableSize  int
	isNeeded       bool
	sliderSize     int
	sliderRatio    float64
	sliderPosition int
}

// NewState creates a State. minSliderSize values below MinimumSliderSize are raised.
func NewState(arrowSize, minSliderSize, visibleSize, scrollSize, scrollPosition int) *State {
	s := &State{
		arrowSize:      max(0, arrowSize),
		minSliderSize:  max(MinimumSliderSize, minSliderSize),
		visibleSize:    max(0, visibleSize),
		scrollSize:     max(0, scrollSize),
		scrollPosition: max(0, scrollPosition),
	}
	s.refresh()
	return s
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	c := *s
	return &c
}

// SetVisibleSize updates the viewport length and reports whether it changed.
func (s *State) SetVisibleSize(v int) bool {
	v = max(0, v)
	if s.visibleSize == v {
		return false
	}
	s.visibleSize = v
	s.refresh()
	return true
}

// SetScrollSize updates the content length and reports whether it changed.
func (s *State) SetScrollSize(v int) bool {
	v = max(0, v)
	if s.scrollSize == v {
		return false
	}
	s.scrollSize = v
	s.refresh()
	return true
}

// SetScrollPosition updates the offset and reports whether it changed.
func (s *State) SetScrollPosition(v int) bool {
	v = max(0, v)
	if s.scrollPosition == v {
		return false
	}
	s.scrollPosition = v
	s.refresh()
	return true
}

// SetArrowSize updates the arrow cell length and reports whether it changed.
func (s *State) SetArrowSize(v int) bool {
	v = max(0, v)
	if s.arrowSize == v {
		return false
	}
	s.arrowSize = v
	s.refresh()
	return true
}

func (s *State) refresh() {
	s.availableSize, s.isNeeded, s.sliderSize, s.sliderRatio, s.sliderPosition =
		computeValues(s.arrowSize, s.minSliderSize, s.visibleSize, s.scrollSize, s.scrollPosition)
}

func computeValues(arrowSize, minSliderSize, visibleSize, scrollSize, scrollPosition int) (available int, needed bool, sliderSize int, ratio float64, sliderPos int) {
	available = max(0, visibleSize)
	representable := max(0, available-2*arrowSize)
	needed = scrollSize > 0 && scrollSize > visibleSize

	if !needed {
		return available, false, representable, 0, 0
	}

	sliderSize = max(minSliderSize, visibleSize*representable/scrollSize)
	sliderSize = min(sliderSize, representable)

	ratio = float64(representable-sliderSize) / float64(scrollSize-visibleSize)

	maxPos := representable - sliderSize
	sliderPos = int(math.Round(float64(scrollPosition) * ratio))
	sliderPos = max(0, min(sliderPos, maxPos))

	return available, true, sliderSize, ratio, sliderPos
}

// ArrowSize returns the length of each arrow cell.
func (s *State) ArrowSize() int { return s.arrowSize }

// ScrollPosition returns the offset the state was computed for.
func (s *State) ScrollPosition() int { return s.scrollPosition }

// VisibleSize returns the viewport length.
func (s *State) VisibleSize() int { return s.visibleSize }

// ScrollSize returns the content length.
func (s *State) ScrollSize() int { return s.scrollSize }

// RectangleLargeSize is the full track length, arrows included.
func (s *State) RectangleLargeSize() int { return s.availableSize }

// IsNeeded reports whether the content overflows the viewport.
func (s *State) IsNeeded() bool { return s.isNeeded }

// SliderSize returns the slider length.
func (s *State) SliderSize() int { return s.sliderSize }

// SliderPosition returns the slider offset from the end of the leading arrow.
func (s *State) SliderPosition() int { return s.sliderPosition }

// SliderCenter returns the slider midpoint measured from the track origin.
func (s *State) SliderCenter() int {
	return s.arrowSize + s.sliderPosition + s.sliderSize/2
}

// DesiredScrollPositionFromOffset maps an offset along the track (arrows
// included) to the scroll position that would centre the slider there.
// A slider that fills its track cannot move, so the current position is
// returned.
func (s *State) DesiredScrollPositionFromOffset(offset int) int {
	if !s.isNeeded {
		return 0
	}
	if s.sliderRatio == 0 {
		return s.scrollPosition
	}
	desired := float64(offset-s.arrowSize) - float64(s.sliderSize)/2
	return int(math.Round(desired / s.sliderRatio))
}

// DesiredScrollPositionFromOffsetPaged moves one viewport toward the offset.
func (s *State) DesiredScrollPositionFromOffsetPaged(offset int) int {
	if !s.isNeeded {
		return 0
	}
	corrected := offset - s.arrowSize
	if corrected < s.sliderPosition {
		return s.scrollPosition - s.visibleSize
	}
	return s.scrollPosition + s.visibleSize
}

// DesiredScrollPositionFromDelta maps a slider displacement of delta cells
// to a scroll position. The mapping starts from the exact scroll position,
// not the rounded slider cell, so a zero delta changes nothing.
func (s *State) DesiredScrollPositionFromDelta(delta int) int {
	if !s.isNeeded {
		return 0
	}
	if s.sliderRatio == 0 {
		return s.scrollPosition
	}
	return s.scrollPosition + int(math.Round(float64(delta)/s.sliderRatio))
}
