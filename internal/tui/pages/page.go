// Package pages provides the content pages shown beside the navigation pane.
//
// Every page is a markdown document rendered with glamour and scrolled with a
// viewport. Titles and bodies come from the i18n catalogue under
// pages.<id>.title and pages.<id>.body.
package pages

import (
	"navshell/internal/tui/themes"

	tea "github.com/charmbracelet/bubbletea"
)

// BasePage provides common functionality for pages.
type BasePage struct {
	id     string
	theme  *themes.Theme
	width  int
	height int
}

// NewBasePage creates a new base page.
func NewBasePage(id string, theme *themes.Theme) *BasePage {
	if theme == nil {
		theme = themes.Global().Active()
	}
	return &BasePage{
		id:    id,
		theme: theme,
	}
}

// ID returns the page identifier.
func (p *BasePage) ID() string {
	return p.id
}

// Theme returns the page theme.
func (p *BasePage) Theme() *themes.Theme {
	return p.theme
}

// Width returns the page width.
func (p *BasePage) Width() int {
	return p.width
}

// Height returns the page height.
func (p *BasePage) Height() int {
	return p.height
}

// SetSize updates the page dimensions.
func (p *BasePage) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Init implements tea.Model (to be overridden).
func (p *BasePage) Init() tea.Cmd {
	return nil
}

// ContentWidth returns the width left for text once the frame padding and
// the glamour margin are taken off.
func (p *BasePage) ContentWidth() int {
	return max(p.width-4, 10)
}
