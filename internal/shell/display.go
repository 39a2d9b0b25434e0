package shell

import "fmt"

// DisplayMode describes how the pane sits relative to the content area.
type DisplayMode int

const (
	// DisplayModeInline shows the pane beside the content, full width when open
	// and hidden when closed.
	DisplayModeInline DisplayMode = iota
	// DisplayModeCompactInline shows the pane beside the content and keeps an
	// icon strip when closed.
	DisplayModeCompactInline
	// DisplayModeOverlay draws the open pane over the content and hides it
	// when closed.
	DisplayModeOverlay
	// DisplayModeCompactOverlay draws the open pane over the content and keeps
	// an icon strip when closed.
	DisplayModeCompactOverlay
)

// IsOverlay reports whether an open pane covers the content area.
func (m DisplayMode) IsOverlay() bool {
	switch m {
	case DisplayModeOverlay, DisplayModeCompactOverlay:
		return true
	default:
		return false
	}
}

// IsCompact reports whether a closed pane keeps its icon strip.
func (m DisplayMode) IsCompact() bool {
	return m == DisplayModeCompactInline || m == DisplayModeCompactOverlay
}

func (m DisplayMode) String() string {
	switch m {
	case DisplayModeInline:
		return "inline"
	case DisplayModeCompactInline:
		return "compact-inline"
	case DisplayModeOverlay:
		return "overlay"
	case DisplayModeCompactOverlay:
		return "compact-overlay"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}
