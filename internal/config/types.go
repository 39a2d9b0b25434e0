package config

import (
	"fmt"
	"time"
)

// LogConfig holds logging configuration
type LogConfig struct {
	Level        string `mapstructure:"level" yaml:"level"`                   // debug, info, warn, error
	Format       string `mapstructure:"format" yaml:"format"`                 // text, json, pretty
	Output       string `mapstructure:"output" yaml:"output"`                 // stdout, stderr, empty, or file path
	FilePath     string `mapstructure:"file_path" yaml:"file_path"`           // path to log file (in addition to output)
	MaxSizeMB    int    `mapstructure:"max_size_mb" yaml:"max_size_mb"`       // max size in MB before rotation
	MaxBackups   int    `mapstructure:"max_backups" yaml:"max_backups"`       // max number of old log files to keep
	MaxAgeDays   int    `mapstructure:"max_age_days" yaml:"max_age_days"`     // max days to retain old log files
	EnableCaller bool   `mapstructure:"enable_caller" yaml:"enable_caller"`   // include source file/line in logs
	NoColor      bool   `mapstructure:"no_color" yaml:"no_color"`             // disable colored output (pretty format only)
}

// LayoutConfig holds the breakpoint thresholds.
//
// Widths are logical units; a terminal of N columns has a logical width of
// N * CellWidth.
type LayoutConfig struct {
	WideMinWidth      int `mapstructure:"wide_min_width" yaml:"wide_min_width"`
	PanoramicMinWidth int `mapstructure:"panoramic_min_width" yaml:"panoramic_min_width"`
	CellWidth         int `mapstructure:"cell_width" yaml:"cell_width"`
}

// NavItemConfig declares one navigation entry. Label is a translation key;
// keys without a translation are shown verbatim.
type NavItemConfig struct {
	Label string `mapstructure:"label" yaml:"label"`
	Icon  string `mapstructure:"icon" yaml:"icon"`
	Page  string `mapstructure:"page" yaml:"page"`
}

// NavigationConfig holds the navigation surface definition
type NavigationConfig struct {
	Locale    string          `mapstructure:"locale" yaml:"locale"`
	StartPage string          `mapstructure:"start_page" yaml:"start_page"`
	Primary   []NavItemConfig `mapstructure:"primary" yaml:"primary"`
	Secondary []NavItemConfig `mapstructure:"secondary" yaml:"secondary"`
}

// MetricsConfig holds the Prometheus endpoint configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
	Address string `mapstructure:"address" yaml:"address"`
	Path    string `mapstructure:"path" yaml:"path"`
}

// SSHConfig holds the SSH server configuration for `navshell serve`
type SSHConfig struct {
	Host        string `mapstructure:"host" yaml:"host"`
	Port        int    `mapstructure:"port" yaml:"port"`
	HostKeyPath string `mapstructure:"host_key_path" yaml:"host_key_path"`

	// AuthorizedKeys restricts logins to the keys in this file. Empty
	// accepts any client.
	AuthorizedKeys string `mapstructure:"authorized_keys" yaml:"authorized_keys"`

	// IdleTimeout closes sessions without input for this long. Zero disables it.
	IdleTimeout time.Duration `mapstructure:"idle_timeout" yaml:"idle_timeout"`
}

// Config is the navshell configuration
type Config struct {
	Log        LogConfig        `mapstructure:"log" yaml:"log"`
	Layout     LayoutConfig     `mapstructure:"layout" yaml:"layout"`
	Navigation NavigationConfig `mapstructure:"navigation" yaml:"navigation"`
	Metrics    MetricsConfig    `mapstructure:"metrics" yaml:"metrics"`
	SSH        SSHConfig        `mapstructure:"ssh" yaml:"ssh"`
	Theme      string           `mapstructure:"theme" yaml:"theme"`
}

// DefaultPrimaryItems returns the default primary navigation entries.
func DefaultPrimaryItems() []NavItemConfig {
	return []NavItemConfig{
		{Label: "nav.main", Icon: "document", Page: "main"},
		{Label: "nav.webview", Icon: "globe", Page: "webview"},
		{Label: "nav.mediaplayer", Icon: "play", Page: "mediaplayer"},
		{Label: "nav.masterdetail", Icon: "list", Page: "masterdetail"},
		{Label: "nav.grid", Icon: "grid", Page: "grid"},
		{Label: "nav.chart", Icon: "chart", Page: "chart"},
		{Label: "nav.tabbed", Icon: "tabs", Page: "tabbed"},
		{Label: "nav.map", Icon: "map", Page: "map"},
		{Label: "nav.camera", Icon: "camera", Page: "camera"},
		{Label: "nav.imagegallery", Icon: "image", Page: "imagegallery"},
	}
}

// DefaultSecondaryItems returns the default secondary navigation entries.
func DefaultSecondaryItems() []NavItemConfig {
	return []NavItemConfig{
		{Label: "nav.settings", Icon: "settings", Page: "settings"},
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			Output:     "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Layout: LayoutConfig{
			WideMinWidth:      640,
			PanoramicMinWidth: 1024,
			CellWidth:         8,
		},
		Navigation: NavigationConfig{
			Locale:    "en",
			StartPage: "main",
			Primary:   DefaultPrimaryItems(),
			Secondary: DefaultSecondaryItems(),
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Address: "127.0.0.1:9464",
			Path:    "/metrics",
		},
		SSH: SSHConfig{
			Host:        "127.0.0.1",
			Port:        2323,
			HostKeyPath: ".ssh/navshell_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		Theme: "dark",
	}
}

// Validate checks the values a shell cannot start with.
func (c *Config) Validate() error {
	if c.Layout.WideMinWidth <= 0 {
		return fmt.Errorf("layout.wide_min_width must be positive, got %d", c.Layout.WideMinWidth)
	}
	if c.Layout.PanoramicMinWidth <= c.Layout.WideMinWidth {
		return fmt.Errorf("layout.panoramic_min_width (%d) must be greater than layout.wide_min_width (%d)",
			c.Layout.PanoramicMinWidth, c.Layout.WideMinWidth)
	}
	if c.Layout.CellWidth <= 0 {
		return fmt.Errorf("layout.cell_width must be positive, got %d", c.Layout.CellWidth)
	}
	if c.SSH.Port < 0 || c.SSH.Port > 65535 {
		return fmt.Errorf("ssh.port out of range: %d", c.SSH.Port)
	}
	return c.Navigation.validate()
}

// validate rejects empty or repeated page ids across both item lists. A
// shell cannot be initialized from such a list.
func (n NavigationConfig) validate() error {
	seen := make(map[string]string, len(n.Primary)+len(n.Secondary))
	for _, group := range []struct {
		name  string
		items []NavItemConfig
	}{
		{"primary", n.Primary},
		{"secondary", n.Secondary},
	} {
		for i, item := range group.items {
			if item.Page == "" {
				return fmt.Errorf("navigation.%s[%d].page must not be empty", group.name, i)
			}
			if prev, ok := seen[item.Page]; ok {
				return fmt.Errorf("navigation.%s[%d].page %q already declared in navigation.%s", group.name, i, item.Page, prev)
			}
			seen[item.Page] = group.name
		}
	}
	return nil
}
