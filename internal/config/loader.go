package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// AppName is used for config directories and the environment prefix
const AppName = "navshell"

// configSearchPaths returns the paths to search for config files in order of precedence
// (later paths have higher priority in Viper)
func configSearchPaths(appName string) []string {
	paths := []string{}

	// System-wide (lowest priority)
	paths = append(paths, filepath.Join("/etc", appName))

	// User-specific
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", appName))
	}

	// Current directory (highest priority for files)
	if cwd, err := os.Getwd(); err == nil {
		paths = append(paths, cwd)
	}

	return paths
}

// UserConfigDir returns the user-specific config directory for the app
func UserConfigDir(appName string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// newViper creates and configures a new Viper instance
func newViper(cfgFile string) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	for _, path := range configSearchPaths(AppName) {
		v.AddConfigPath(path)
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}

	v.SetEnvPrefix(strings.ToUpper(AppName))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setViperDefaults(v, DefaultConfig())

	return v
}

// Load loads the configuration from cfgFile, or from the search paths when
// cfgFile is empty. A missing config file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := newViper(cfgFile)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; use defaults + env vars
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// setViperDefaults sets default values in Viper from a config struct
func setViperDefaults(v *viper.Viper, c *Config) {
	v.SetDefault("log.level", c.Log.Level)
	v.SetDefault("log.format", c.Log.Format)
	v.SetDefault("log.output", c.Log.Output)
	v.SetDefault("log.file_path", c.Log.FilePath)
	v.SetDefault("log.max_size_mb", c.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", c.Log.MaxBackups)
	v.SetDefault("log.max_age_days", c.Log.MaxAgeDays)
	v.SetDefault("log.enable_caller", c.Log.EnableCaller)
	v.SetDefault("log.no_color", c.Log.NoColor)
	// Layout
	v.SetDefault("layout.wide_min_width", c.Layout.WideMinWidth)
	v.SetDefault("layout.panoramic_min_width", c.Layout.PanoramicMinWidth)
	v.SetDefault("layout.cell_width", c.Layout.CellWidth)
	// Navigation
	v.SetDefault("navigation.locale", c.Navigation.Locale)
	v.SetDefault("navigation.start_page", c.Navigation.StartPage)
	v.SetDefault("navigation.primary", navItemMaps(c.Navigation.Primary))
	v.SetDefault("navigation.secondary", navItemMaps(c.Navigation.Secondary))
	// Metrics
	v.SetDefault("metrics.enabled", c.Metrics.Enabled)
	v.SetDefault("metrics.address", c.Metrics.Address)
	v.SetDefault("metrics.path", c.Metrics.Path)
	// SSH
	v.SetDefault("ssh.host", c.SSH.Host)
	v.SetDefault("ssh.port", c.SSH.Port)
	v.SetDefault("ssh.host_key_path", c.SSH.HostKeyPath)
	v.SetDefault("ssh.authorized_keys", c.SSH.AuthorizedKeys)
	v.SetDefault("ssh.idle_timeout", c.SSH.IdleTimeout)

	v.SetDefault("theme", c.Theme)
}

func navItemMaps(items []NavItemConfig) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, map[string]any{
			"label": item.Label,
			"icon":  item.Icon,
			"page":  item.Page,
		})
	}
	return out
}

// WriteDefault writes the default configuration as YAML to path.
// An existing file is left untouched and reported as an error.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfigPath returns the user config file path.
func DefaultConfigPath() (string, error) {
	dir, err := UserConfigDir(AppName)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
