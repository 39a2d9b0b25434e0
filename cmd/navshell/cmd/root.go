// Package cmd implements the navshell command line.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"navshell/internal/config"
	"navshell/internal/logger"

	"github.com/spf13/cobra"
)

var (
	// cfgFile is the path to the config file (set via --config flag)
	cfgFile string

	// logLevel overrides log.level when set
	logLevel string

	// cfg holds the loaded configuration
	cfg *config.Config

	// log is the logger instance
	log *logger.Logger

	// cmdCtx carries the logger and the command session
	cmdCtx context.Context

	cmdStartTime time.Time
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "navshell",
	Short: "A responsive navigation shell for the terminal",
	Long: `navshell is a terminal application shell with a navigation pane that
adapts to the window width: an overlay on narrow terminals, a compact icon
strip on wide ones and a pinned pane on panoramic ones.`,
	SilenceUsage:     true,
	TraverseChildren: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipsConfig(cmd) {
			return nil
		}

		if err := loadConfig(cmd); err != nil {
			return err
		}

		var err error
		log, err = logger.NewForSurface(cfg.Log, logger.SurfaceFor(cmd.Name()))
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		session := logger.NewCommandSession(cmd)
		log = log.ForSession(session)

		cmdCtx = logger.WithSession(cmd.Context(), session)
		cmdCtx = logger.WithLogger(cmdCtx, log)
		cmdStartTime = time.Now()

		log.Debug("command started", "args", args)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if log == nil {
			return nil
		}

		log.Debug("command completed", "duration_ms", time.Since(cmdStartTime).Milliseconds())
		return log.Close()
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command until it returns or the process is
// interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/navshell/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd, serveCmd, classifyCmd, versionCmd, configCmd)
}

// skipsConfig reports commands that must work without a readable config.
func skipsConfig(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "init", "path":
		return true
	}
	return false
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = logLevel
	}

	return nil
}

// commandContext returns the context set up by the root command.
func commandContext() context.Context {
	if cmdCtx == nil {
		return context.Background()
	}
	return cmdCtx
}
