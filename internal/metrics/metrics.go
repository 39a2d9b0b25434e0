// Package metrics exports Prometheus counters for the navigation shell.
//
// One Metrics value is shared by every shell in the process; each shell gets
// its own Observer so state diffs are computed per shell.
package metrics

import (
	"navshell/internal/shell"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "navshell"

// Metrics holds the shell collectors and the registry they live in.
type Metrics struct {
	registry *prometheus.Registry

	navigationRequests *prometheus.CounterVec
	navigationFailures *prometheus.CounterVec
	selections         *prometheus.CounterVec
	layoutTransitions  *prometheus.CounterVec
	paneChanges        *prometheus.CounterVec
	sessions           prometheus.Gauge
}

// New creates the collectors and registers them, along with the Go and
// process collectors, in a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		navigationRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigation_requests_total",
			Help:      "Page transitions requested through the dispatcher.",
		}, []string{"page"}),
		navigationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigation_failures_total",
			Help:      "Page transitions the dispatcher rejected.",
		}, []string{"page"}),
		selections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "navigation_selections_total",
			Help:      "Times the highlight moved to a page, whoever started the transition.",
		}, []string{"page"}),
		layoutTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "layout_transitions_total",
			Help:      "Layout states applied, initial layout included.",
		}, []string{"state"}),
		paneChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pane_visibility_changes_total",
			Help:      "Pane open and close events.",
		}, []string{"visibility"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Shells currently running.",
		}),
	}

	m.registry.MustRegister(
		m.navigationRequests,
		m.navigationFailures,
		m.selections,
		m.layoutTransitions,
		m.paneChanges,
		m.sessions,
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry the collectors are registered in.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// SessionStarted increments the active session gauge and returns a func
// that decrements it.
func (m *Metrics) SessionStarted() (done func()) {
	m.sessions.Inc()
	return m.sessions.Dec
}

// Dispatcher counts requests and failures passing through next.
func (m *Metrics) Dispatcher(next shell.Dispatcher) shell.Dispatcher {
	return shell.DispatcherFunc(func(pageID string, param any) error {
		m.navigationRequests.WithLabelValues(pageID).Inc()
		if err := next.Navigate(pageID, param); err != nil {
			m.navigationFailures.WithLabelValues(pageID).Inc()
			return err
		}
		return nil
	})
}

// Observer returns a shell state observer for one shell. It is called on
// that shell's event loop only.
func (m *Metrics) Observer() func(shell.State) {
	var (
		seen bool
		last shell.State
	)

	return func(s shell.State) {
		if !seen || s.LayoutState != last.LayoutState {
			m.layoutTransitions.WithLabelValues(s.LayoutState.String()).Inc()
		}
		if seen && s.PaneOpen != last.PaneOpen {
			m.paneChanges.WithLabelValues(visibility(s.PaneOpen)).Inc()
		}
		if s.SelectedID != "" && s.SelectedID != last.SelectedID {
			m.selections.WithLabelValues(s.SelectedID).Inc()
		}

		seen = true
		last = s
	}
}

func visibility(open bool) string {
	if open {
		return "open"
	}
	return "closed"
}
