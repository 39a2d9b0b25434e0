// Package themes provides the color themes and icon glyphs of the shell.
package themes

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// PresetName identifies a built-in theme
type PresetName string

const (
	PresetDark  PresetName = "dark"
	PresetLight PresetName = "light"
	PresetNord  PresetName = "nord"
)

// ErrUnknownTheme is returned for a name with no registered theme.
var ErrUnknownTheme = errors.New("unknown theme")

// Registry manages theme presets and the active theme
type Registry struct {
	mu         sync.RWMutex
	presets    map[PresetName]*Theme
	active     *Theme
	activeName PresetName
}

var (
	globalRegistry *Registry
	once           sync.Once
)

// Global returns the process-wide theme registry
func Global() *Registry {
	once.Do(func() {
		globalRegistry = NewRegistry()
	})
	return globalRegistry
}

// NewRegistry creates a registry holding the built-in presets with dark active.
func NewRegistry() *Registry {
	r := &Registry{
		presets: map[PresetName]*Theme{
			PresetDark:  DarkTheme(),
			PresetLight: LightTheme(),
			PresetNord:  NordTheme(),
		},
	}
	r.active = r.presets[PresetDark]
	r.activeName = PresetDark
	return r
}

// Get returns the theme registered under name.
func (r *Registry) Get(name string) (*Theme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if t, ok := r.presets[PresetName(name)]; ok {
		return t, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
}

// Register adds or replaces a theme.
func (r *Registry) Register(name string, theme *Theme) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.presets[PresetName(name)] = theme
}

// Active returns the active theme
func (r *Registry) Active() *Theme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// ActiveName returns the name of the active theme
func (r *Registry) ActiveName() PresetName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.activeName
}

// SetActive switches the active theme. Unknown names leave it unchanged.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.presets[PresetName(name)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	r.active = t
	r.activeName = PresetName(name)
	return nil
}

// Names returns the registered theme names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.presets))
	for name := range r.presets {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}

// DetectColorScheme picks dark or light from the terminal background.
func DetectColorScheme() PresetName {
	if lipgloss.HasDarkBackground() {
		return PresetDark
	}
	return PresetLight
}
