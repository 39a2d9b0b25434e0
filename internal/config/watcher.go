package config

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// DefaultReloadInterval is the minimum spacing between two reloads.
// Editors often write a file several times per save.
const DefaultReloadInterval = 250 * time.Millisecond

// Watcher watches the config file and reloads it on change.
type Watcher struct {
	v       *viper.Viper
	limiter *rate.Limiter

	mu         sync.RWMutex
	callbacks  []func(*Config)
	errorFn    func(error)
	lastConfig *Config

	ctx    context.Context
	cancel context.CancelFunc
}

// NewWatcher creates a watcher for cfgFile, or for the file found on the
// search paths when cfgFile is empty.
func NewWatcher(cfgFile string, interval time.Duration) (*Watcher, error) {
	v := newViper(cfgFile)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, err
	}

	if interval <= 0 {
		interval = DefaultReloadInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Watcher{
		v:          v,
		limiter:    rate.NewLimiter(rate.Every(interval), 1),
		lastConfig: cfg,
		ctx:        ctx,
		cancel:     cancel,
	}, nil
}

// OnChange registers a callback that receives each successfully reloaded config.
// Callbacks run on the watcher goroutine.
func (w *Watcher) OnChange(callback func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callbacks = append(w.callbacks, callback)
}

// OnError registers a callback for reloads that fail to parse or validate.
func (w *Watcher) OnError(callback func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.errorFn = callback
}

// Start begins watching the config file.
func (w *Watcher) Start() {
	w.v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		if err := w.limiter.Wait(w.ctx); err != nil {
			return
		}
		w.handleChange()
	})
	w.v.WatchConfig()
}

// Stop prevents further callbacks. Viper keeps its fsnotify goroutine until
// the process exits.
func (w *Watcher) Stop() {
	w.cancel()
}

// ConfigFile returns the watched file.
func (w *Watcher) ConfigFile() string {
	return w.v.ConfigFileUsed()
}

// Current returns the last successfully loaded config.
func (w *Watcher) Current() *Config {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lastConfig
}

// Reload forces a configuration reload.
func (w *Watcher) Reload() error {
	if err := w.v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}
	return w.handleChange()
}

func (w *Watcher) handleChange() error {
	if w.ctx.Err() != nil {
		return w.ctx.Err()
	}

	cfg, err := decode(w.v)

	w.mu.Lock()
	callbacks := make([]func(*Config), len(w.callbacks))
	copy(callbacks, w.callbacks)
	errorFn := w.errorFn
	if err == nil {
		w.lastConfig = cfg
	}
	w.mu.Unlock()

	if err != nil {
		if errorFn != nil {
			errorFn(err)
		}
		return err
	}

	for _, cb := range callbacks {
		cb(cfg)
	}
	return nil
}
