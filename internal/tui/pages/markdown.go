package pages

import (
	"strings"

	"navshell/internal/tui/i18n"
	"navshell/internal/tui/themes"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// Glamour standard style names.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleASCII = "ascii"
	StyleNoTTY = "notty"
)

// StyleFor picks the glamour style matching a theme.
func StyleFor(theme *themes.Theme, unicode bool) string {
	switch {
	case !unicode:
		return StyleASCII
	case theme != nil && theme.Name == string(themes.PresetLight):
		return StyleLight
	default:
		return StyleDark
	}
}

// MarkdownPage renders a markdown body that is re-read on every render, so
// locale and configuration changes show up without rebuilding the page.
type MarkdownPage struct {
	*BasePage

	title string
	tr    *i18n.I18n
	body  func() string
	style string

	viewport viewport.Model

	renderedWidth  int
	renderedSource string
}

// NewMarkdownPage creates a page whose text comes from the catalogue keys
// pages.<id>.title and pages.<id>.body. title is used when the catalogue has
// no title for id; a page without a body gets a placeholder naming it.
func NewMarkdownPage(id, title string, tr *i18n.I18n, opts Options, vars ...any) *MarkdownPage {
	p := &MarkdownPage{
		BasePage: NewBasePage(id, opts.Theme),
		title:    title,
		tr:       tr,
		style:    opts.style(),
		viewport: viewport.New(0, 0),
	}
	p.body = func() string {
		key := "pages." + id + ".body"
		if tr.Has(key) {
			return tr.T(key, vars...)
		}
		return tr.T("pages.placeholder", "title", p.Title())
	}
	return p
}

// Title returns the translated title.
func (p *MarkdownPage) Title() string {
	key := "pages." + p.id + ".title"
	if p.tr.Has(key) {
		return p.tr.T(key)
	}
	return p.title
}

// SetSize updates the page and viewport dimensions.
func (p *MarkdownPage) SetSize(width, height int) {
	p.BasePage.SetSize(width, height)
	p.viewport.Width = max(width-2, 0)
	p.viewport.Height = height
}

// Init scrolls back to the top each time the page is shown.
func (p *MarkdownPage) Init() tea.Cmd {
	p.viewport.GotoTop()
	return nil
}

// Update implements tea.Model.
func (p *MarkdownPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		p.refresh()
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return p, cmd
	}
	return p, nil
}

// View implements tea.Model.
func (p *MarkdownPage) View() string {
	p.refresh()
	return p.viewport.View()
}

// Source returns the markdown currently shown.
func (p *MarkdownPage) Source() string {
	p.refresh()
	return p.renderedSource
}

// refresh re-renders when the width or the source text changed.
func (p *MarkdownPage) refresh() {
	source := p.body()
	width := p.ContentWidth()
	if width == p.renderedWidth && source == p.renderedSource {
		return
	}

	p.renderedWidth = width
	p.renderedSource = source
	p.viewport.SetContent(renderMarkdown(source, p.style, width))
}

// renderMarkdown falls back to the raw source when glamour fails.
func renderMarkdown(source, style string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return source
	}

	out, err := r.Render(source)
	if err != nil {
		return source
	}
	return strings.Trim(out, "\n")
}
