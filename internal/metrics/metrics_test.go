package metrics

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"navshell/internal/config"
	"navshell/internal/logger"
	"navshell/internal/shell"
	"navshell/internal/tui/layout"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestDispatcher_CountsRequestsAndFailures(t *testing.T) {
	m := New()
	boom := errors.New("boom")

	d := m.Dispatcher(shell.DispatcherFunc(func(pageID string, _ any) error {
		if pageID == "broken" {
			return boom
		}
		return nil
	}))

	if err := d.Navigate("main", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := d.Navigate("broken", nil); !errors.Is(err, boom) {
		t.Fatalf("expected error passed through, got %v", err)
	}

	if got := testutil.ToFloat64(m.navigationRequests.WithLabelValues("main")); got != 1 {
		t.Errorf("requests main = %v", got)
	}
	if got := testutil.ToFloat64(m.navigationRequests.WithLabelValues("broken")); got != 1 {
		t.Errorf("requests broken = %v", got)
	}
	if got := testutil.ToFloat64(m.navigationFailures.WithLabelValues("broken")); got != 1 {
		t.Errorf("failures broken = %v", got)
	}
	if got := testutil.ToFloat64(m.navigationFailures.WithLabelValues("main")); got != 0 {
		t.Errorf("failures main = %v", got)
	}
}

func TestObserver_DerivesFromControllerState(t *testing.T) {
	m := New()
	c := shell.New(nil, shell.WithLogger(logger.Discard()), shell.WithObserver(m.Observer()))

	defs := shell.Definitions{Primary: []shell.ItemDefinition{
		{Label: "Main", PageID: "main"},
		{Label: "Chart", PageID: "chart"},
	}}
	if err := c.Initialize(1200, defs); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	c.TogglePane()
	_ = c.SelectItem("main")
	c.OnNavigationCompleted("chart")
	c.OnWindowResized(300)
	c.OnWindowResized(200)

	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"panoramic", testutil.ToFloat64(m.layoutTransitions.WithLabelValues(layout.Panoramic.String())), 1},
		{"narrow", testutil.ToFloat64(m.layoutTransitions.WithLabelValues(layout.Narrow.String())), 1},
		{"pane open", testutil.ToFloat64(m.paneChanges.WithLabelValues("open")), 1},
		{"pane closed", testutil.ToFloat64(m.paneChanges.WithLabelValues("closed")), 1},
		{"selected main", testutil.ToFloat64(m.selections.WithLabelValues("main")), 1},
		{"selected chart", testutil.ToFloat64(m.selections.WithLabelValues("chart")), 1},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, c.got)
		}
	}
}

func TestSessionGauge(t *testing.T) {
	m := New()
	done1 := m.SessionStarted()
	done2 := m.SessionStarted()
	done1()

	if got := testutil.ToFloat64(m.sessions); got != 1 {
		t.Errorf("expected 1 active session, got %v", got)
	}
	done2()
	if got := testutil.ToFloat64(m.sessions); got != 0 {
		t.Errorf("expected 0 active sessions, got %v", got)
	}
}

func TestServer_ServesRegistry(t *testing.T) {
	m := New()
	_ = m.Dispatcher(shell.DispatcherFunc(func(string, any) error { return nil })).Navigate("main", nil)

	s := NewServer(config.MetricsConfig{Address: "127.0.0.1:0", Path: "/metrics"}, m, logger.Discard())
	if err := s.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Shutdown(ctx); err != nil {
			t.Errorf("Shutdown: %v", err)
		}
	})

	resp, err := http.Get("http://" + s.Addr() + "/metrics")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(body), `navshell_navigation_requests_total{page="main"} 1`) {
		t.Errorf("expected request counter in output:\n%s", body)
	}
}

func TestServer_ListenError(t *testing.T) {
	s := NewServer(config.MetricsConfig{Address: "256.0.0.1:bad"}, New(), logger.Discard())
	if err := s.Start(); err == nil {
		t.Fatal("expected listen error")
	}
	if err := s.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown of unstarted server: %v", err)
	}
}
