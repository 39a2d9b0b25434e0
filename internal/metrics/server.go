package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"navshell/internal/config"
	"navshell/internal/logger"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes a registry over HTTP.
type Server struct {
	cfg     config.MetricsConfig
	metrics *Metrics
	log     *logger.Logger

	server   *http.Server
	listener net.Listener
	wg       sync.WaitGroup
}

// NewServer creates a server for m on cfg.Address and cfg.Path.
func NewServer(cfg config.MetricsConfig, m *Metrics, log *logger.Logger) *Server {
	if log == nil {
		log = logger.Default()
	}
	if cfg.Path == "" {
		cfg.Path = "/metrics"
	}
	return &Server{
		cfg:     cfg,
		metrics: m,
		log:     log.WithGroup("metrics"),
	}
}

// Start listens and serves in the background. Listen errors are returned.
func (s *Server) Start() error {
	mux := http.NewServeMux()
	mux.Handle(s.cfg.Path, promhttp.HandlerFor(s.metrics.Registry(), promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))

	ln, err := net.Listen("tcp", s.cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to start metrics server: %w", err)
	}
	s.listener = ln

	s.server = &http.Server{
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("metrics server stopped", logger.WithError(err))
		}
	}()

	s.log.Info("metrics available", "url", fmt.Sprintf("http://%s%s", ln.Addr(), s.cfg.Path))
	return nil
}

// Addr returns the listen address once started.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Shutdown stops the server and waits for it to exit.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	err := s.server.Shutdown(ctx)
	s.wg.Wait()
	if err != nil {
		return fmt.Errorf("metrics server shutdown: %w", err)
	}
	return nil
}
