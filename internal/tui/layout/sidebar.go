package layout

import (
	"strings"

	"navshell/internal/tui/themes"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Default pane widths in columns, border included.
const (
	DefaultExpandedWidth = 26
	DefaultCompactWidth  = 4
)

// Row markers returned by the sidebar row map.
const (
	rowBlank   = -1
	rowToggle  = -2
	rowDivider = -3
)

// SidebarItem is one navigation entry as drawn by the Sidebar.
type SidebarItem struct {
	ID       string
	Title    string
	Icon     string
	Selected bool
}

// Sidebar draws the navigation pane. It holds no navigation state of its own
// beyond the keyboard cursor; the host copies open/overlay/compact and the
// items in from the shell controller before each render.
type Sidebar struct {
	theme   *themes.Theme
	unicode bool
	title   string

	height        int
	expandedWidth int
	compactWidth  int

	open    bool
	overlay bool
	compact bool

	primary   []SidebarItem
	secondary []SidebarItem

	cursor  int
	focused bool
}

// NewSidebar creates a sidebar with the active theme and detected glyph set.
func NewSidebar() *Sidebar {
	return &Sidebar{
		theme:         themes.Global().Active(),
		unicode:       GetCapabilities().Unicode,
		title:         "navshell",
		expandedWidth: DefaultExpandedWidth,
		compactWidth:  DefaultCompactWidth,
	}
}

// SetTheme sets the theme
func (s *Sidebar) SetTheme(theme *themes.Theme) {
	s.theme = theme
}

// SetUnicode switches between glyph and ASCII icons.
func (s *Sidebar) SetUnicode(unicode bool) {
	s.unicode = unicode
}

// SetTitle sets the header text shown when the pane is expanded.
func (s *Sidebar) SetTitle(title string) {
	s.title = title
}

// SetHeight sets the number of rows the pane fills.
func (s *Sidebar) SetHeight(height int) {
	s.height = height
}

// SetWidths sets the expanded and compact widths.
func (s *Sidebar) SetWidths(expanded, compact int) {
	if expanded > 2 {
		s.expandedWidth = expanded
	}
	if compact > 1 {
		s.compactWidth = compact
	}
}

// SetMode copies the presentation flags from the shell state.
func (s *Sidebar) SetMode(open, overlay, compact bool) {
	s.open = open
	s.overlay = overlay
	s.compact = compact
}

// SetItems replaces the entries. The cursor is clamped to the new item count.
func (s *Sidebar) SetItems(primary, secondary []SidebarItem) {
	s.primary = primary
	s.secondary = secondary
	s.clampCursor()
}

// SetFocused marks the pane as having keyboard focus.
func (s *Sidebar) SetFocused(focused bool) {
	s.focused = focused
}

// Focused reports whether the pane has keyboard focus.
func (s *Sidebar) Focused() bool {
	return s.focused
}

// InlineWidth is the number of columns the pane takes from the content area.
// An open overlay pane floats and only its compact strip, if any, is inline.
func (s *Sidebar) InlineWidth() int {
	switch {
	case s.open && !s.overlay:
		return s.expandedWidth
	case s.compact:
		return s.compactWidth
	default:
		return 0
	}
}

// Floating reports whether the pane is drawn over the content area.
func (s *Sidebar) Floating() bool {
	return s.open && s.overlay
}

// FloatingWidth is the width of the pane when floating.
func (s *Sidebar) FloatingWidth() int {
	return s.expandedWidth
}

// MoveCursor moves the keyboard cursor, wrapping at both ends.
func (s *Sidebar) MoveCursor(delta int) {
	n := len(s.primary) + len(s.secondary)
	if n == 0 {
		s.cursor = 0
		return
	}
	s.cursor = ((s.cursor+delta)%n + n) % n
}

// SetCursor moves the keyboard cursor to the item with id.
func (s *Sidebar) SetCursor(id string) bool {
	for i, item := range s.items() {
		if item.ID == id {
			s.cursor = i
			return true
		}
	}
	return false
}

// CursorID returns the id under the keyboard cursor.
func (s *Sidebar) CursorID() string {
	items := s.items()
	if s.cursor < 0 || s.cursor >= len(items) {
		return ""
	}
	return items[s.cursor].ID
}

// ItemAt returns the item id drawn on row, counted from the top of the pane.
func (s *Sidebar) ItemAt(row int) (string, bool) {
	rows := s.rowMap()
	if row < 0 || row >= len(rows) || rows[row] < 0 {
		return "", false
	}
	return s.items()[rows[row]].ID, true
}

// IsToggleRow reports whether row holds the pane toggle.
func (s *Sidebar) IsToggleRow(row int) bool {
	rows := s.rowMap()
	return row >= 0 && row < len(rows) && rows[row] == rowToggle
}

// View renders the pane as it sits inline: expanded, compact strip or empty.
func (s *Sidebar) View() string {
	switch {
	case s.open && !s.overlay:
		return s.render(s.expandedWidth, true, s.theme.Pane)
	case s.compact:
		return s.render(s.compactWidth, false, s.theme.Pane)
	default:
		return ""
	}
}

// FloatingView renders the expanded pane for drawing over the content.
func (s *Sidebar) FloatingView() string {
	if !s.Floating() {
		return ""
	}
	return s.render(s.expandedWidth, true, s.theme.PaneOverlay)
}

func (s *Sidebar) items() []SidebarItem {
	out := make([]SidebarItem, 0, len(s.primary)+len(s.secondary))
	out = append(out, s.primary...)
	return append(out, s.secondary...)
}

func (s *Sidebar) clampCursor() {
	n := len(s.primary) + len(s.secondary)
	if s.cursor >= n {
		s.cursor = max(n-1, 0)
	}
}

// rowMap assigns each pane row an item index or a row marker. Primary items
// follow the header; secondary items are pinned to the bottom when the height
// allows it.
func (s *Sidebar) rowMap() []int {
	h := max(s.height, 0)
	rows := make([]int, 0, h)
	rows = append(rows, rowToggle, rowDivider)
	for i := range s.primary {
		rows = append(rows, i)
	}

	if len(s.secondary) > 0 {
		for gap := h - len(rows) - 1 - len(s.secondary); gap > 0; gap-- {
			rows = append(rows, rowBlank)
		}
		rows = append(rows, rowDivider)
		for i := range s.secondary {
			rows = append(rows, len(s.primary)+i)
		}
	}

	for len(rows) < h {
		rows = append(rows, rowBlank)
	}
	return rows[:h]
}

func (s *Sidebar) render(width int, expanded bool, frame lipgloss.Style) string {
	// One column goes to the right border
	inner := max(width-1, 1)
	items := s.items()

	divider := "─"
	if !s.unicode {
		divider = "-"
	}

	lines := make([]string, 0, s.height)
	for _, r := range s.rowMap() {
		switch {
		case r == rowToggle:
			lines = append(lines, s.renderHeader(inner, expanded))
		case r == rowDivider:
			lines = append(lines, s.theme.PaneDivider.Render(strings.Repeat(divider, inner)))
		case r == rowBlank:
			lines = append(lines, strings.Repeat(" ", inner))
		default:
			lines = append(lines, s.renderItem(items[r], r == s.cursor, inner, expanded))
		}
	}

	return frame.Render(strings.Join(lines, "\n"))
}

func (s *Sidebar) renderHeader(width int, expanded bool) string {
	menu := themes.Menu(s.unicode)
	if !expanded {
		return s.theme.PaneHeader.Width(width).Align(lipgloss.Center).Render(menu)
	}
	text := ansi.Truncate(menu+" "+s.title, width, "…")
	return s.theme.PaneHeader.Width(width).Render(text)
}

func (s *Sidebar) renderItem(item SidebarItem, cursor bool, width int, expanded bool) string {
	icon := themes.Icon(item.Icon, s.unicode)

	style := s.theme.PaneItem
	if item.Selected {
		style = s.theme.PaneSelected
	}

	if !expanded {
		if cursor && s.focused {
			style = style.Inherit(s.theme.PaneCursor).Underline(true)
		}
		return style.Width(width).Align(lipgloss.Center).Render(icon)
	}

	prefix := " "
	if cursor && s.focused {
		prefix = s.theme.PaneCursor.Render(themes.Cursor(s.unicode))
	}
	text := ansi.Truncate(icon+" "+item.Title, width-1, "…")
	return prefix + style.Width(width-1).Render(text)
}
