package cmd

import (
	"sync/atomic"

	"navshell/internal/config"
	"navshell/internal/logger"
	navssh "navshell/internal/ssh"
	"navshell/internal/tui/layout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// serveCmd serves the shell over SSH
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the shell over SSH",
	Long: `Serve the navigation shell over SSH. Every client gets its own shell,
sized from its terminal. Configuration changes apply to new sessions.

Examples:
  navshell serve
  ssh -p 2323 localhost`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := commandContext()

	m, stopMetrics, err := startMetrics(cfg.Metrics, log)
	if err != nil {
		return err
	}
	defer stopMetrics()

	var current atomic.Pointer[config.Config]
	current.Store(cfg)

	if w, err := config.NewWatcher(cfgFile, config.DefaultReloadInterval); err == nil {
		w.OnChange(func(c *config.Config) {
			current.Store(c)
			log.Info("configuration reloaded for new sessions", "file", w.ConfigFile())
		})
		w.OnError(func(err error) {
			log.Warn("config reload failed", "file", w.ConfigFile(), logger.WithError(err))
		})
		w.Start()
		defer w.Stop()
	}

	factory := func(info navssh.SessionInfo) (tea.Model, error) {
		return newShell(shellParams{
			cfg:     current.Load(),
			log:     log.ForSession(info.Session),
			cols:    info.Cols,
			rows:    info.Rows,
			caps:    layout.CapabilitiesFromEnv(info.Env),
			metrics: m,
		})
	}

	opts := []navssh.ServerOption{navssh.WithLogger(log)}
	if m != nil {
		opts = append(opts, navssh.WithSessionHook(m.SessionStarted))
	}

	srv, err := navssh.NewServer(cfg.SSH, factory, opts...)
	if err != nil {
		return err
	}
	if err := srv.Start(ctx); err != nil {
		return err
	}

	<-ctx.Done()

	shutdownCtx, cancel := shutdownContext()
	defer cancel()
	return srv.Stop(shutdownCtx)
}
