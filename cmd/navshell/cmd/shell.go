package cmd

import (
	"navshell/internal/config"
	"navshell/internal/logger"
	"navshell/internal/metrics"
	"navshell/internal/tui/app"
	"navshell/internal/tui/i18n"
	"navshell/internal/tui/layout"
	"navshell/internal/tui/pages"
	"navshell/internal/tui/themes"
	"navshell/internal/version"
)

// shellParams describes one shell: a local terminal or an SSH session.
type shellParams struct {
	cfg       *config.Config
	log       *logger.Logger
	cols      int
	rows      int
	caps      *layout.TerminalCapabilities
	startPage string
	metrics   *metrics.Metrics
}

// newShell wires a router, its pages and an App for one terminal.
func newShell(p shellParams) (*app.App, error) {
	theme, err := themes.Global().Get(p.cfg.Theme)
	if err != nil {
		p.log.Warn("unknown theme, using default", "theme", p.cfg.Theme)
		theme = themes.Global().Active()
	}

	tr := i18n.New(i18n.WithLocale(p.cfg.Navigation.Locale))

	pageOpts := pages.Options{
		Config:  p.cfg,
		Version: version.Get().String(),
		Theme:   theme,
		Unicode: p.caps.Unicode,
	}
	router := app.NewRouter()
	if err := pages.Register(router, tr, pageOpts); err != nil {
		return nil, err
	}

	opts := []app.Option{
		app.WithConfig(p.cfg),
		app.WithLogger(p.log),
		app.WithTheme(theme),
		app.WithI18n(tr),
		app.WithUnicode(p.caps.Unicode),
		app.WithInitialSize(p.cols, p.rows),
		app.WithStartPage(p.startPage),
		app.WithPageFactory(pages.Factory(tr, pageOpts)),
	}
	if p.metrics != nil {
		opts = append(opts,
			app.WithDispatcherWrapper(p.metrics.Dispatcher),
			app.WithObserver(p.metrics.Observer()),
		)
	}

	return app.New(router, opts...)
}

// startMetrics starts the metrics endpoint when enabled. The returned stop
// func is never nil.
func startMetrics(cfg config.MetricsConfig, log *logger.Logger) (*metrics.Metrics, func(), error) {
	if !cfg.Enabled {
		return nil, func() {}, nil
	}

	m := metrics.New()
	srv := metrics.NewServer(cfg, m, log)
	if err := srv.Start(); err != nil {
		return nil, func() {}, err
	}

	stop := func() {
		ctx, cancel := shutdownContext()
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Warn("metrics shutdown", logger.WithError(err))
		}
	}
	return m, stop, nil
}
