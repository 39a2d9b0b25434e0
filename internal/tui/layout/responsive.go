package layout

import (
	"fmt"
)

// LayoutState is the named breakpoint a window width falls into.
type LayoutState int

const (
	// Narrow is for windows below the wide threshold
	Narrow LayoutState = iota
	// Wide is for windows between the wide and panoramic thresholds
	Wide
	// Panoramic is for windows at or above the panoramic threshold
	Panoramic
)

// Default breakpoint thresholds in logical width units.
const (
	DefaultWideMinWidth      = 640
	DefaultPanoramicMinWidth = 1024

	// DefaultCellWidth converts terminal columns into logical width.
	DefaultCellWidth = 8
)

// String returns the name of a layout state
func (s LayoutState) String() string {
	switch s {
	case Narrow:
		return "narrow"
	case Wide:
		return "wide"
	case Panoramic:
		return "panoramic"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Thresholds holds the lower bounds of the Wide and Panoramic states.
type Thresholds struct {
	WideMinWidth      int
	PanoramicMinWidth int
}

// DefaultThresholds returns the 640/1024 breakpoints.
func DefaultThresholds() Thresholds {
	return Thresholds{
		WideMinWidth:      DefaultWideMinWidth,
		PanoramicMinWidth: DefaultPanoramicMinWidth,
	}
}

// Validate checks that both thresholds are positive and strictly increasing.
func (t Thresholds) Validate() error {
	if t.WideMinWidth <= 0 {
		return fmt.Errorf("wide threshold must be positive, got %d", t.WideMinWidth)
	}
	if t.PanoramicMinWidth <= t.WideMinWidth {
		return fmt.Errorf("panoramic threshold %d must be greater than wide threshold %d",
			t.PanoramicMinWidth, t.WideMinWidth)
	}
	return nil
}

// Classify returns the layout state for a width.
func (t Thresholds) Classify(width int) LayoutState {
	if width < t.WideMinWidth {
		return Narrow
	}
	if width < t.PanoramicMinWidth {
		return Wide
	}
	return Panoramic
}

// Classify returns the layout state for a width using the default thresholds.
// Zero and negative widths are Narrow.
func Classify(width int) LayoutState {
	return DefaultThresholds().Classify(width)
}

// LogicalWidth converts a terminal column count into logical width.
func LogicalWidth(cols, cellWidth int) int {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return cols * cellWidth
}
