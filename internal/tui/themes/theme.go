package themes

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles used to draw the shell frame.
type Theme struct {
	Name    string
	Palette ColorPalette

	// Pane
	Pane         lipgloss.Style
	PaneOverlay  lipgloss.Style
	PaneHeader   lipgloss.Style
	PaneItem     lipgloss.Style
	PaneSelected lipgloss.Style
	PaneCursor   lipgloss.Style
	PaneDivider  lipgloss.Style

	// Content
	Content  lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style

	// Help
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
}

// Clone returns a copy of the theme
func (t *Theme) Clone() *Theme {
	clone := *t
	return &clone
}

// WithPalette returns a copy of the theme rebuilt from p
func (t *Theme) WithPalette(p ColorPalette) *Theme {
	clone := t.Clone()
	clone.Palette = p
	clone.rebuildStyles()
	return clone
}

func (t *Theme) rebuildStyles() {
	p := t.Palette

	t.Pane = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Surface).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(p.Border)
	t.PaneOverlay = lipgloss.NewStyle().
		Foreground(p.Text).
		Background(p.Overlay).
		BorderStyle(lipgloss.ThickBorder()).
		BorderRight(true).
		BorderForeground(p.BorderFocus)
	t.PaneHeader = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	t.PaneItem = lipgloss.NewStyle().Foreground(p.Text)
	t.PaneSelected = lipgloss.NewStyle().Foreground(p.Primary).Background(p.Selection).Bold(true)
	t.PaneCursor = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	t.PaneDivider = lipgloss.NewStyle().Foreground(p.Border)

	t.Content = lipgloss.NewStyle().Foreground(p.Text).Padding(0, 1)
	t.Title = lipgloss.NewStyle().Foreground(p.Primary).Bold(true).MarginBottom(1)
	t.Subtitle = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	t.Muted = lipgloss.NewStyle().Foreground(p.TextMuted)
	t.Error = lipgloss.NewStyle().Foreground(p.Error).Bold(true)

	t.HelpKey = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	t.HelpDesc = lipgloss.NewStyle().Foreground(p.TextMuted)
}

func buildTheme(name string, palette ColorPalette) *Theme {
	t := &Theme{
		Name:    name,
		Palette: palette,
	}
	t.rebuildStyles()
	return t
}

// DarkTheme returns the default dark theme
func DarkTheme() *Theme {
	return buildTheme(string(PresetDark), DarkPalette())
}

// LightTheme returns the light theme
func LightTheme() *Theme {
	return buildTheme(string(PresetLight), LightPalette())
}

// NordTheme returns the Nord theme
func NordTheme() *Theme {
	return buildTheme(string(PresetNord), NordPalette())
}
