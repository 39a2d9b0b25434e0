package layout

import (
	"strings"

	"navshell/internal/tui/themes"

	"github.com/charmbracelet/lipgloss"
)

// StatusMessageType indicates the type of status message
type StatusMessageType int

const (
	StatusMessageNormal StatusMessageType = iota
	StatusMessageError
)

// StatusBar shows key hints or a transient message on the left and the
// current layout on the right.
type StatusBar struct {
	theme   *themes.Theme
	width   int
	unicode bool

	hints string

	message     string
	messageType StatusMessageType

	mode string
}

// NewStatusBar creates a new status bar
func NewStatusBar() *StatusBar {
	return &StatusBar{
		theme:   themes.Global().Active(),
		unicode: GetCapabilities().Unicode,
	}
}

// SetTheme sets the theme
func (s *StatusBar) SetTheme(theme *themes.Theme) {
	s.theme = theme
}

// SetUnicode switches between box drawing and ASCII borders.
func (s *StatusBar) SetUnicode(unicode bool) {
	s.unicode = unicode
}

// SetWidth sets the width in cells.
func (s *StatusBar) SetWidth(width int) {
	s.width = width
}

// SetHints sets the pre-rendered key hints.
func (s *StatusBar) SetHints(hints string) {
	s.hints = hints
}

// SetMessage shows message in place of the hints.
func (s *StatusBar) SetMessage(message string) {
	s.message = message
	s.messageType = StatusMessageNormal
}

// SetErrorMessage shows an error in place of the hints.
func (s *StatusBar) SetErrorMessage(message string) {
	s.message = message
	s.messageType = StatusMessageError
}

// ClearMessage brings the hints back.
func (s *StatusBar) ClearMessage() {
	s.message = ""
}

// Message returns the current message.
func (s *StatusBar) Message() string {
	return s.message
}

// SetMode sets the right-hand indicator, e.g. the layout state name.
func (s *StatusBar) SetMode(mode string) {
	s.mode = mode
}

// View renders the bar, top border included.
func (s *StatusBar) View() string {
	if s.width <= 0 {
		return ""
	}

	left := s.hints
	if s.message != "" {
		if s.messageType == StatusMessageError {
			left = s.theme.Error.Render(s.message)
		} else {
			left = s.theme.Muted.Render(s.message)
		}
	}

	right := ""
	if s.mode != "" {
		right = s.theme.Subtitle.Render("[" + s.mode + "]")
	}

	gap := s.width - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
		right = ""
	}
	left = renderFixedWidthLine(left, gap)
	line := left + right

	border := "─"
	if !s.unicode {
		border = "-"
	}
	top := s.theme.PaneDivider.Render(strings.Repeat(border, s.width))
	return top + "\n" + line
}
