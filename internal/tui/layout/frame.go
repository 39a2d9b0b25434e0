package layout

import (
	"strings"

	"navshell/internal/tui/themes"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Fixed frame rows.
const (
	TitleBarHeight  = 1
	StatusBarHeight = 2
)

// Frame stacks the title bar, the pane beside the content area, and the
// status bar into a view of exactly Width x Height cells.
type Frame struct {
	theme   *themes.Theme
	unicode bool

	width  int
	height int

	Sidebar   *Sidebar
	StatusBar *StatusBar
}

// NewFrame creates a frame with a fresh sidebar and status bar.
func NewFrame() *Frame {
	return &Frame{
		theme:     themes.Global().Active(),
		unicode:   GetCapabilities().Unicode,
		Sidebar:   NewSidebar(),
		StatusBar: NewStatusBar(),
	}
}

// SetTheme applies theme to the frame and its parts.
func (f *Frame) SetTheme(theme *themes.Theme) {
	f.theme = theme
	f.Sidebar.SetTheme(theme)
	f.StatusBar.SetTheme(theme)
}

// SetUnicode switches glyph sets.
func (f *Frame) SetUnicode(unicode bool) {
	f.unicode = unicode
	f.Sidebar.SetUnicode(unicode)
	f.StatusBar.SetUnicode(unicode)
}

// SetSize sets the terminal size in cells.
func (f *Frame) SetSize(width, height int) {
	f.width = width
	f.height = height
	f.Sidebar.SetHeight(f.BodyHeight())
	f.StatusBar.SetWidth(width)
}

// Width returns the frame width.
func (f *Frame) Width() int {
	return f.width
}

// Height returns the frame height.
func (f *Frame) Height() int {
	return f.height
}

// BodyTop is the first row of the pane and content area.
func (f *Frame) BodyTop() int {
	return TitleBarHeight
}

// BodyHeight is the number of rows shared by the pane and the content area.
func (f *Frame) BodyHeight() int {
	return max(f.height-TitleBarHeight-StatusBarHeight, 1)
}

// ContentSize returns the cells left for page content.
func (f *Frame) ContentSize() (width, height int) {
	return max(f.width-f.Sidebar.InlineWidth(), 1), f.BodyHeight()
}

// PaneWidthAt returns the width of the pane the pointer would hit: the
// floating pane when one is open, otherwise the inline pane.
func (f *Frame) PaneWidthAt() int {
	if f.Sidebar.Floating() {
		return f.Sidebar.FloatingWidth()
	}
	return f.Sidebar.InlineWidth()
}

// IsToggle reports whether the cell at x,y is the title bar menu button.
func (f *Frame) IsToggle(x, y int) bool {
	return y == 0 && x >= 0 && x < 2
}

// Render draws the frame around content. title is shown in the title bar.
func (f *Frame) Render(title, content string) string {
	if f.width <= 0 || f.height <= 0 {
		return ""
	}

	bodyHeight := f.BodyHeight()
	contentWidth, _ := f.ContentSize()

	body := constrainToSize(f.theme.Content.Render(content), contentWidth, bodyHeight)
	if pane := f.Sidebar.View(); pane != "" {
		body = lipgloss.JoinHorizontal(lipgloss.Top, constrainToSize(pane, f.Sidebar.InlineWidth(), bodyHeight), body)
	}
	if f.Sidebar.Floating() {
		body = overlayLeft(body, f.Sidebar.FloatingView())
	}
	body = constrainToSize(body, f.width, bodyHeight)

	sections := []string{
		f.renderTitleBar(title),
		body,
		f.StatusBar.View(),
	}
	return constrainToSize(strings.Join(sections, "\n"), f.width, f.height)
}

func (f *Frame) renderTitleBar(title string) string {
	menu := f.theme.PaneHeader.Render(themes.Menu(f.unicode))
	return renderFixedWidthLine(menu+" "+f.theme.Subtitle.Render(title), f.width)
}

// overlayLeft draws top over the left edge of base, row by row.
func overlayLeft(base, top string) string {
	baseLines := strings.Split(base, "\n")
	topLines := strings.Split(top, "\n")

	for i, line := range topLines {
		if i >= len(baseLines) {
			break
		}
		w := lipgloss.Width(line)
		baseLines[i] = line + ansi.TruncateLeft(baseLines[i], w, "")
	}
	return strings.Join(baseLines, "\n")
}

// renderFixedWidthLine pads or cuts a single line to width.
func renderFixedWidthLine(line string, width int) string {
	line, _, _ = strings.Cut(line, "\n")

	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	if lineWidth > width {
		return truncateString(line, width)
	}
	return line
}

// constrainToSize pads or cuts content to exactly width x height cells.
func constrainToSize(content string, width, height int) string {
	lines := strings.Split(content, "\n")

	for i, line := range lines {
		lines[i] = renderFixedWidthLine(line, width)
	}

	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

// truncateString cuts s to maxWidth cells with a trailing ellipsis.
func truncateString(s string, maxWidth int) string {
	if maxWidth <= 1 {
		return ansi.Truncate(s, maxWidth, "")
	}
	return ansi.Truncate(s, maxWidth, "…")
}
