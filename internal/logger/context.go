package logger

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type contextKey string

const (
	sessionContextKey contextKey = "session_context"
	loggerContextKey  contextKey = "logger"
)

// Session describes one running shell: a local terminal or an SSH client.
type Session struct {
	ID        string
	Origin    string // "local" or "ssh"
	Command   string
	User      string
	Hostname  string
	Remote    string
	StartedAt time.Time
}

// NewCommandSession creates a local Session for a cobra command.
func NewCommandSession(cmd *cobra.Command) *Session {
	s := &Session{
		ID:        uuid.New().String(),
		Origin:    "local",
		Command:   cmd.CommandPath(),
		User:      os.Getenv("USER"),
		StartedAt: time.Now(),
	}
	if hostname, err := os.Hostname(); err == nil {
		s.Hostname = hostname
	}
	return s
}

// NewRemoteSession creates a Session for an SSH client.
func NewRemoteSession(user, remote string) *Session {
	return &Session{
		ID:        uuid.New().String(),
		Origin:    "ssh",
		User:      user,
		Remote:    remote,
		StartedAt: time.Now(),
	}
}

// LogGroup returns the session as a grouped slog attribute.
func (s *Session) LogGroup() slog.Attr {
	if s == nil {
		return slog.Attr{}
	}

	attrs := []any{
		slog.String("id", s.ID),
		slog.String("origin", s.Origin),
	}
	if s.Command != "" {
		attrs = append(attrs, slog.String("command", s.Command))
	}
	if s.User != "" {
		attrs = append(attrs, slog.String("user", s.User))
	}
	if s.Hostname != "" {
		attrs = append(attrs, slog.String("hostname", s.Hostname))
	}
	if s.Remote != "" {
		attrs = append(attrs, slog.String("remote", s.Remote))
	}

	return slog.Group("session", attrs...)
}

// WithSession stores a Session in the context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

// SessionFrom retrieves the Session from the context.
func SessionFrom(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionContextKey).(*Session); ok {
		return s
	}
	return nil
}

// WithLogger stores a Logger in the context.
func WithLogger(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey, l)
}

// LoggerFrom retrieves the Logger from the context.
func LoggerFrom(ctx context.Context) *Logger {
	if l, ok := ctx.Value(loggerContextKey).(*Logger); ok {
		return l
	}
	return Default()
}

// ForSession returns a child logger tagged with the session.
func (l *Logger) ForSession(s *Session) *Logger {
	if s == nil {
		return l
	}
	return l.With(s.LogGroup())
}
