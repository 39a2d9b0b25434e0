package pages

import (
	"fmt"
	"strings"

	"navshell/internal/config"
	"navshell/internal/tui/app"
	"navshell/internal/tui/i18n"

	tea "github.com/charmbracelet/bubbletea"
)

// SettingsPage shows the configuration currently in effect.
type SettingsPage struct {
	*MarkdownPage

	cfg *config.Config
}

// NewSettingsPage creates a new settings page.
func NewSettingsPage(title string, tr *i18n.I18n, opts Options) *SettingsPage {
	p := &SettingsPage{
		MarkdownPage: NewMarkdownPage(PageSettings, title, tr, opts),
		cfg:          opts.Config,
	}
	if p.cfg == nil {
		p.cfg = config.DefaultConfig()
	}

	intro := p.body
	p.body = func() string {
		return intro() + "\n\n" + p.table()
	}
	return p
}

// Update picks up reloaded configuration; everything else scrolls.
func (p *SettingsPage) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(app.ConfigReloadedMsg); ok && msg.Config != nil {
		p.cfg = msg.Config
		return p, nil
	}
	_, cmd := p.MarkdownPage.Update(msg)
	return p, cmd
}

func (p *SettingsPage) table() string {
	rows := [][2]string{
		{"settings.theme", p.cfg.Theme},
		{"settings.locale", i18n.LocaleDisplayName(p.tr.Locale())},
		{"settings.wide_min_width", fmt.Sprint(p.cfg.Layout.WideMinWidth)},
		{"settings.panoramic_min_width", fmt.Sprint(p.cfg.Layout.PanoramicMinWidth)},
		{"settings.cell_width", fmt.Sprint(p.cfg.Layout.CellWidth)},
		{"settings.items", fmt.Sprintf("%d + %d", len(p.cfg.Navigation.Primary), len(p.cfg.Navigation.Secondary))},
	}

	var b strings.Builder
	fmt.Fprintf(&b, "| %s | %s |\n", p.tr.T("settings.setting"), p.tr.T("settings.value"))
	b.WriteString("|---|---|\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s |\n", p.tr.T(row[0]), row[1])
	}
	return b.String()
}
