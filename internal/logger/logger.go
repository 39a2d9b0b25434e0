// Package logger provides structured logging for navshell using log/slog.
//
// Where records may go depends on the surface a command runs on. The TUI
// owns the terminal, so its console output is redirected to a rotated file
// under the user config dir; the SSH server owns no terminal and logs to
// stderr unless told otherwise.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"navshell/internal/config"

	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultFileName is the TUI log file created when no file is configured.
const DefaultFileName = "navshell.log"

// Surface is what a command draws on.
type Surface int

const (
	// SurfaceCommand prints a result and exits; logs follow the config.
	SurfaceCommand Surface = iota
	// SurfaceTUI holds the alternate screen until it quits.
	SurfaceTUI
	// SurfaceServe runs the SSH server; sessions never see its logs.
	SurfaceServe
)

// SurfaceFor maps a command name to its surface.
func SurfaceFor(command string) Surface {
	switch command {
	case "run":
		return SurfaceTUI
	case "serve":
		return SurfaceServe
	}
	return SurfaceCommand
}

// Logger wraps slog.Logger with the navshell log configuration.
type Logger struct {
	*slog.Logger
	cfg    config.LogConfig
	closer io.Closer
}

// DefaultFilePath returns <user config dir>/navshell.log.
func DefaultFilePath() (string, error) {
	dir, err := config.UserConfigDir(config.AppName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, DefaultFileName), nil
}

// ForSurface rewrites cfg so that nothing is written over the surface.
//
// For the TUI, stdout and stderr outputs are dropped and, when no file is
// left, the default file is used. "none" keeps the TUI silent. For the SSH
// server an empty output means stderr.
func ForSurface(cfg config.LogConfig, surface Surface) config.LogConfig {
	switch surface {
	case SurfaceTUI:
		if isConsole(cfg.Output) {
			cfg.Output = ""
		}
		if cfg.Output == "" && cfg.FilePath == "" {
			if path, err := DefaultFilePath(); err == nil {
				cfg.FilePath = path
			}
		}
	case SurfaceServe:
		if cfg.Output == "" {
			cfg.Output = "stderr"
		}
	}
	return cfg
}

// NewForSurface is New after ForSurface.
func NewForSurface(cfg config.LogConfig, surface Surface) (*Logger, error) {
	return New(ForSurface(cfg, surface))
}

// New creates a Logger from cfg as given.
func New(cfg config.LogConfig) (*Logger, error) {
	writer, closer, err := buildWriters(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build log writers: %w", err)
	}

	level, err := parseLevel(cfg.Level)
	if err != nil {
		if closer != nil {
			closer.Close()
		}
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "json":
		handler = slog.NewJSONHandler(writer, &slog.HandlerOptions{Level: level, AddSource: cfg.EnableCaller})
	case "pretty":
		handler = NewConsoleHandler(writer, &ConsoleHandlerOptions{
			Level:   level,
			NoColor: cfg.NoColor,
		})
	default:
		handler = slog.NewTextHandler(writer, &slog.HandlerOptions{Level: level, AddSource: cfg.EnableCaller})
	}

	return &Logger{
		Logger: slog.New(handler),
		cfg:    cfg,
		closer: closer,
	}, nil
}

// FilePath returns the rotated file the logger writes, or "" when it only
// writes to the console.
func (l *Logger) FilePath() string {
	if l.cfg.FilePath != "" {
		return l.cfg.FilePath
	}
	if out := l.cfg.Output; out != "" && out != "none" && !isConsole(out) {
		return out
	}
	return ""
}

// Close closes the rotated files. Derived loggers share them and never close.
func (l *Logger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}

// With returns a Logger with the given attributes.
func (l *Logger) With(attrs ...any) *Logger {
	return &Logger{Logger: l.Logger.With(attrs...), cfg: l.cfg}
}

// WithGroup returns a Logger with the given group name.
func (l *Logger) WithGroup(name string) *Logger {
	return &Logger{Logger: l.Logger.WithGroup(name), cfg: l.cfg}
}

func isConsole(output string) bool {
	switch strings.ToLower(output) {
	case "stdout", "stderr":
		return true
	}
	return false
}

// buildWriters combines the console output and the log file. Any output that
// is not stdout, stderr or none is taken as a file path.
func buildWriters(cfg config.LogConfig) (io.Writer, io.Closer, error) {
	var writers []io.Writer
	var closers []io.Closer

	switch strings.ToLower(cfg.Output) {
	case "stdout":
		writers = append(writers, os.Stdout)
	case "stderr":
		writers = append(writers, os.Stderr)
	case "", "none":
	default:
		lj := newLumberjack(cfg.Output, cfg)
		writers = append(writers, lj)
		closers = append(closers, lj)
	}

	if cfg.FilePath != "" && cfg.FilePath != cfg.Output {
		lj := newLumberjack(cfg.FilePath, cfg)
		writers = append(writers, lj)
		closers = append(closers, lj)
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = io.Discard
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	var closer io.Closer
	if len(closers) > 0 {
		closer = &multiCloser{closers: closers}
	}
	return writer, closer, nil
}

func newLumberjack(path string, cfg config.LogConfig) *lumberjack.Logger {
	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	maxBackups := cfg.MaxBackups
	if maxBackups <= 0 {
		maxBackups = 3
	}
	maxAge := cfg.MaxAgeDays
	if maxAge <= 0 {
		maxAge = 28
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
}

// parseLevel converts a string log level to slog.Level.
func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", level)
	}
}

// multiCloser implements io.Closer for multiple closers.
type multiCloser struct {
	closers []io.Closer
}

func (mc *multiCloser) Close() error {
	var errs []error
	for _, c := range mc.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("failed to close %d writers: %v", len(errs), errs)
	}
	return nil
}

// Default wraps slog.Default. Packages fall back to it when no logger is set.
func Default() *Logger {
	return &Logger{
		Logger: slog.Default(),
		cfg:    config.LogConfig{},
	}
}

// Discard returns a logger that drops every record.
func Discard() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		cfg:    config.LogConfig{},
	}
}
