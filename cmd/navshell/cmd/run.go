package cmd

import (
	"context"
	"os"
	"time"

	"navshell/internal/config"
	"navshell/internal/logger"
	"navshell/internal/tui/app"
	"navshell/internal/tui/i18n"
	"navshell/internal/tui/layout"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	runPage   string
	runTheme  string
	runLocale string
	runASCII  bool
)

// runCmd starts the shell in the current terminal
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the shell in this terminal",
	Long: `Start the navigation shell in the current terminal.

The configuration file is watched while the shell runs; saving it rebuilds
the navigation pane without a restart.

Examples:
  navshell run
  navshell run --page chart
  navshell run --theme nord --locale de`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	runCmd.Flags().StringVarP(&runPage, "page", "p", "", "page to open first (default is navigation.start_page)")
	runCmd.Flags().StringVarP(&runTheme, "theme", "t", "", "color theme (dark, light, nord)")
	runCmd.Flags().StringVarP(&runLocale, "locale", "l", "", "display language (en, de)")
	runCmd.Flags().BoolVar(&runASCII, "ascii", false, "draw with ASCII glyphs only")
}

func runShell(cmd *cobra.Command, args []string) error {
	applyRunOverrides(cfg)

	caps := layout.DetectCapabilities()
	if runASCII {
		caps.Unicode = false
	}

	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		log.Debug("terminal size unknown, waiting for first resize", logger.WithError(err))
	}

	m, stopMetrics, err := startMetrics(cfg.Metrics, log)
	if err != nil {
		return err
	}
	defer stopMetrics()

	shell, err := newShell(shellParams{
		cfg:       cfg,
		log:       log,
		cols:      cols,
		rows:      rows,
		caps:      caps,
		startPage: runPage,
		metrics:   m,
	})
	if err != nil {
		return err
	}

	program := tea.NewProgram(shell,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(commandContext()),
	)

	if w := watchConfig(program); w != nil {
		defer w.Stop()
	}

	_, err = program.Run()
	if err != nil && commandContext().Err() != nil {
		// Interrupted by a signal
		return nil
	}
	return err
}

// watchConfig feeds config reloads into program. It returns nil when there
// is no file to watch.
func watchConfig(program *tea.Program) *config.Watcher {
	w, err := config.NewWatcher(cfgFile, config.DefaultReloadInterval)
	if err != nil {
		log.Debug("config not watched", logger.WithError(err))
		return nil
	}

	w.OnChange(func(c *config.Config) {
		applyRunOverrides(c)
		program.Send(app.ConfigReloadedMsg{Config: c})
	})
	w.OnError(func(err error) {
		log.Warn("config reload failed", "file", w.ConfigFile(), logger.WithError(err))
		program.Send(app.ConfigErrorMsg{Err: err})
	})
	w.Start()

	log.Debug("watching config", "file", w.ConfigFile())
	return w
}

// applyRunOverrides lets command line flags win over the file.
func applyRunOverrides(c *config.Config) {
	if runTheme != "" {
		c.Theme = runTheme
	}
	c.Navigation.Locale = i18n.ResolveLocale(runLocale, c.Navigation.Locale)
}

func shutdownContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 5*time.Second)
}
