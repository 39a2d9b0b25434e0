// Package ssh serves the navigation shell over SSH with Wish.
//
// Every session gets its own shell built by a ShellFactory, sized from the
// session pty, so clients never share navigation state.
package ssh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"

	"navshell/internal/config"
	"navshell/internal/logger"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
)

// SessionInfo describes an SSH client to the shell factory.
type SessionInfo struct {
	Session *logger.Session
	Cols    int
	Rows    int
	Term    string

	// Env looks up the client environment, TERM included.
	Env func(string) string
}

// ShellFactory builds the model served to one session.
type ShellFactory func(info SessionInfo) (tea.Model, error)

// Server is the SSH server for remote shell access.
type Server struct {
	cfg       config.SSHConfig
	log       *logger.Logger
	factory   ShellFactory
	onSession func() (done func())

	server   *ssh.Server
	listener net.Listener
}

// ServerOption configures the SSH server.
type ServerOption func(*Server)

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) ServerOption {
	return func(s *Server) {
		if log != nil {
			s.log = log
		}
	}
}

// WithSessionHook calls fn when an interactive session starts and the func it
// returns when the session ends.
func WithSessionHook(fn func() (done func())) ServerOption {
	return func(s *Server) {
		s.onSession = fn
	}
}

// NewServer creates the SSH server. The host key is generated at
// cfg.HostKeyPath when missing.
func NewServer(cfg config.SSHConfig, factory ShellFactory, opts ...ServerOption) (*Server, error) {
	s := &Server{
		cfg:     cfg,
		log:     logger.Default(),
		factory: factory,
	}

	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithGroup("ssh")

	sshOpts := []ssh.Option{
		wish.WithAddress(s.address()),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(s.teaHandler),
			s.trackingMiddleware(),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(slog.NewLogLogger(s.log.Handler(), slog.LevelInfo)),
		),
	}
	if cfg.AuthorizedKeys != "" {
		sshOpts = append(sshOpts, wish.WithAuthorizedKeys(cfg.AuthorizedKeys))
	}
	if cfg.IdleTimeout > 0 {
		sshOpts = append(sshOpts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	srv, err := wish.NewServer(sshOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}
	s.server = srv

	return s, nil
}

// Start listens on the configured address and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.address())
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	s.listener = ln

	go func() {
		s.log.Info("starting SSH server", "addr", ln.Addr().String())
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.log.Error("SSH server error", logger.WithError(err))
		}
	}()

	return nil
}

// Addr returns the listen address once started.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop stops the SSH server.
func (s *Server) Stop(ctx context.Context) error {
	if s.server == nil {
		return nil
	}

	s.log.Info("stopping SSH server")
	return s.server.Shutdown(ctx)
}

func (s *Server) address() string {
	return net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
}

// teaHandler builds one shell per session.
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, active := sess.Pty()
	if !active {
		return nil, nil
	}

	env := envLookup(sess.Environ())
	if env("TERM") == "" {
		term := pty.Term
		base := env
		env = func(key string) string {
			if key == "TERM" {
				return term
			}
			return base(key)
		}
	}

	info := SessionInfo{
		Session: logger.NewRemoteSession(sess.User(), sess.RemoteAddr().String()),
		Cols:    pty.Window.Width,
		Rows:    pty.Window.Height,
		Term:    pty.Term,
		Env:     env,
	}

	model, err := s.factory(info)
	if err != nil {
		s.log.Error("shell not created", info.Session.LogGroup(), logger.WithError(err))
		_, _ = io.WriteString(sess.Stderr(), "navshell: "+err.Error()+"\n")
		return nil, nil
	}

	s.log.Debug("shell created", info.Session.LogGroup(), "cols", info.Cols, "rows", info.Rows)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

func (s *Server) trackingMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			if s.onSession != nil {
				done := s.onSession()
				defer done()
			}
			next(sess)
		}
	}
}

// envLookup turns KEY=VALUE pairs into a getenv func.
func envLookup(environ []string) func(string) string {
	vars := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			vars[k] = v
		}
	}
	return func(key string) string {
		return vars[key]
	}
}
