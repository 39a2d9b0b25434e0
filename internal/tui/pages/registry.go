package pages

import (
	"navshell/internal/config"
	"navshell/internal/tui/app"
	"navshell/internal/tui/i18n"
	"navshell/internal/tui/themes"
)

// Page ids with dedicated content.
const (
	PageMain         = "main"
	PageWebView      = "webview"
	PageMediaPlayer  = "mediaplayer"
	PageMasterDetail = "masterdetail"
	PageGrid         = "grid"
	PageChart        = "chart"
	PageTabbed       = "tabbed"
	PageMap          = "map"
	PageCamera       = "camera"
	PageImageGallery = "imagegallery"
	PageSettings     = "settings"
	PageAbout        = app.AboutPageID
)

// Options configures page construction.
type Options struct {
	// Config is shown on the settings page.
	Config *config.Config

	// Version is interpolated into the about page.
	Version string

	Theme   *themes.Theme
	Unicode bool

	// Style overrides the glamour style derived from Theme and Unicode.
	Style string
}

func (o Options) style() string {
	if o.Style != "" {
		return o.Style
	}
	return StyleFor(o.Theme, o.Unicode)
}

// Factory returns a constructor for the page behind a navigation item.
func Factory(tr *i18n.I18n, opts Options) func(item config.NavItemConfig) app.Page {
	return func(item config.NavItemConfig) app.Page {
		title := tr.T(item.Label)
		if item.Page == PageSettings {
			return NewSettingsPage(title, tr, opts)
		}
		return NewMarkdownPage(item.Page, title, tr, opts)
	}
}

// Register adds a page for every configured navigation item, plus the about
// page. Ids that already have a page are left alone.
func Register(r *app.Router, tr *i18n.I18n, opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	newPage := Factory(tr, opts)

	items := append(append([]config.NavItemConfig{}, cfg.Navigation.Primary...), cfg.Navigation.Secondary...)
	for _, item := range items {
		if item.Page == "" || r.Has(item.Page) {
			continue
		}
		if err := r.Register(newPage(item)); err != nil {
			return err
		}
	}

	if r.Has(PageAbout) {
		return nil
	}
	return r.Register(NewMarkdownPage(PageAbout, "About", tr, opts, "version", opts.Version))
}
