package themes

import "github.com/charmbracelet/lipgloss"

// ColorPalette is the set of colors a theme derives its styles from.
type ColorPalette struct {
	Primary   lipgloss.AdaptiveColor
	Secondary lipgloss.AdaptiveColor

	Error lipgloss.AdaptiveColor

	Text      lipgloss.AdaptiveColor
	TextMuted lipgloss.AdaptiveColor

	// Surface backs the pane; Overlay backs an open overlay pane.
	Surface lipgloss.AdaptiveColor
	Overlay lipgloss.AdaptiveColor

	Border      lipgloss.AdaptiveColor
	BorderFocus lipgloss.AdaptiveColor

	Selection lipgloss.AdaptiveColor
}

// DarkPalette returns the default dark palette
func DarkPalette() ColorPalette {
	return ColorPalette{
		Primary:     lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"},
		Secondary:   lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"},
		Error:       lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"},
		Text:        lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#F9FAFB"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		Surface:     lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#1F2937"},
		Overlay:     lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#111827"},
		Border:      lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"},
		BorderFocus: lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"},
		Selection:   lipgloss.AdaptiveColor{Light: "#EDE9FE", Dark: "#312E81"},
	}
}

// LightPalette returns the light palette
func LightPalette() ColorPalette {
	return ColorPalette{
		Primary:     lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#7C3AED"},
		Secondary:   lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#2563EB"},
		Error:       lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#DC2626"},
		Text:        lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#1F2937"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"},
		Surface:     lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#F3F4F6"},
		Overlay:     lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#FFFFFF"},
		Border:      lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#D1D5DB"},
		BorderFocus: lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#7C3AED"},
		Selection:   lipgloss.AdaptiveColor{Light: "#EDE9FE", Dark: "#EDE9FE"},
	}
}

// NordPalette returns the Nord palette
func NordPalette() ColorPalette {
	return ColorPalette{
		Primary:     lipgloss.AdaptiveColor{Light: "#88C0D0", Dark: "#88C0D0"},
		Secondary:   lipgloss.AdaptiveColor{Light: "#81A1C1", Dark: "#81A1C1"},
		Error:       lipgloss.AdaptiveColor{Light: "#BF616A", Dark: "#BF616A"},
		Text:        lipgloss.AdaptiveColor{Light: "#ECEFF4", Dark: "#ECEFF4"},
		TextMuted:   lipgloss.AdaptiveColor{Light: "#D8DEE9", Dark: "#D8DEE9"},
		Surface:     lipgloss.AdaptiveColor{Light: "#3B4252", Dark: "#3B4252"},
		Overlay:     lipgloss.AdaptiveColor{Light: "#2E3440", Dark: "#2E3440"},
		Border:      lipgloss.AdaptiveColor{Light: "#4C566A", Dark: "#4C566A"},
		BorderFocus: lipgloss.AdaptiveColor{Light: "#88C0D0", Dark: "#88C0D0"},
		Selection:   lipgloss.AdaptiveColor{Light: "#434C5E", Dark: "#434C5E"},
	}
}
