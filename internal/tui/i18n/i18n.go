// Package i18n resolves display text for the shell from embedded YAML locales.
//
// Keys use dot notation ("nav.main", "pages.chart.title"). A key missing from
// the active locale falls back to the default locale and then to the key itself.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"
	"sync"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var embeddedLocales embed.FS

// SupportedLocales lists the embedded locales.
var SupportedLocales = []string{"en", "de"}

// DefaultLocale is used when nothing else matches.
const DefaultLocale = "en"

// LocaleDisplayNames maps locale codes to their own names.
var LocaleDisplayNames = map[string]string{
	"en": "English",
	"de": "Deutsch",
}

// I18n holds the loaded translations and the active locale.
type I18n struct {
	mu           sync.RWMutex
	locale       string
	fallback     string
	translations map[string]map[string]string
	source       fs.FS
}

// Option configures an I18n.
type Option func(*I18n)

// WithLocale sets the active locale.
func WithLocale(locale string) Option {
	return func(i *I18n) {
		i.locale = locale
	}
}

// WithFallback sets the fallback locale.
func WithFallback(locale string) Option {
	return func(i *I18n) {
		i.fallback = locale
	}
}

// WithDirectory loads locale files from dir instead of the embedded set.
func WithDirectory(dir string) Option {
	return func(i *I18n) {
		i.source = os.DirFS(dir)
	}
}

// WithFS loads locale files from the root of fsys.
func WithFS(fsys fs.FS) Option {
	return func(i *I18n) {
		i.source = fsys
	}
}

// New creates an I18n. An active locale that cannot be loaded falls back to
// the fallback locale.
func New(opts ...Option) *I18n {
	sub, _ := fs.Sub(embeddedLocales, "locales")
	i := &I18n{
		locale:       DefaultLocale,
		fallback:     DefaultLocale,
		translations: make(map[string]map[string]string),
		source:       sub,
	}

	for _, opt := range opts {
		opt(i)
	}

	_ = i.load(i.fallback)
	if err := i.load(i.locale); err != nil {
		i.locale = i.fallback
	}

	return i
}

// SetLocale changes the active locale.
func (i *I18n) SetLocale(locale string) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if err := i.load(locale); err != nil {
		return err
	}
	i.locale = locale
	return nil
}

// Locale returns the active locale.
func (i *I18n) Locale() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.locale
}

// T translates key. Args are either one map[string]any or key/value pairs
// and fill {{.name}} placeholders.
func (i *I18n) T(key string, args ...any) string {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if val, ok := i.lookup(key); ok {
		return interpolate(val, args...)
	}
	return key
}

// Has reports whether key resolves in the active or fallback locale.
func (i *I18n) Has(key string) bool {
	i.mu.RLock()
	defer i.mu.RUnlock()

	_, ok := i.lookup(key)
	return ok
}

func (i *I18n) lookup(key string) (string, bool) {
	if val, ok := i.translations[i.locale][key]; ok {
		return val, true
	}
	if val, ok := i.translations[i.fallback][key]; ok {
		return val, true
	}
	return "", false
}

// load reads and flattens a locale file. Callers hold the write lock or own i.
func (i *I18n) load(locale string) error {
	if _, ok := i.translations[locale]; ok {
		return nil
	}

	data, err := fs.ReadFile(i.source, locale+".yaml")
	if err != nil {
		data, err = fs.ReadFile(i.source, locale+".yml")
	}
	if err != nil {
		return fmt.Errorf("failed to load locale %s: %w", locale, err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse locale %s: %w", locale, err)
	}

	flat := make(map[string]string)
	flatten("", raw, flat)
	i.translations[locale] = flat
	return nil
}

func flatten(prefix string, src map[string]any, dst map[string]string) {
	for k, v := range src {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, dst)
		case string:
			dst[key] = val
		default:
			dst[key] = fmt.Sprint(val)
		}
	}
}

func interpolate(s string, args ...any) string {
	if len(args) == 0 || !strings.Contains(s, "{{") {
		return s
	}

	data, ok := args[0].(map[string]any)
	if !ok {
		data = make(map[string]any, len(args)/2)
		for j := 0; j+1 < len(args); j += 2 {
			if k, ok := args[j].(string); ok {
				data[k] = args[j+1]
			}
		}
	}

	tmpl, err := template.New("i18n").Option("missingkey=zero").Parse(s)
	if err != nil {
		return s
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return s
	}
	return buf.String()
}

// IsValidLocale reports whether locale is embedded.
func IsValidLocale(locale string) bool {
	return slices.Contains(SupportedLocales, locale)
}

// LocaleDisplayName returns the display name for a locale code.
func LocaleDisplayName(locale string) string {
	if name, ok := LocaleDisplayNames[locale]; ok {
		return name
	}
	return locale
}

// DetectSystemLocale reads LANGUAGE, LC_ALL, LC_MESSAGES and LANG in that
// order and returns the first supported match.
func DetectSystemLocale() string {
	for _, env := range []string{"LANGUAGE", "LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := os.Getenv(env); v != "" {
			if locale := matchLocale(v); locale != "" {
				return locale
			}
		}
	}
	return DefaultLocale
}

// matchLocale maps "de_DE.UTF-8", "de-AT" or "de" to "de".
func matchLocale(sys string) string {
	locale := strings.ToLower(sys)
	if idx := strings.IndexAny(locale, ".@"); idx != -1 {
		locale = locale[:idx]
	}
	// LANGUAGE may hold a colon separated priority list
	for _, candidate := range strings.Split(locale, ":") {
		candidate = strings.ReplaceAll(candidate, "_", "-")
		if IsValidLocale(candidate) {
			return candidate
		}
		if lang, _, ok := strings.Cut(candidate, "-"); ok && IsValidLocale(lang) {
			return lang
		}
	}
	return ""
}

// ResolveLocale picks the flag value, then the config value, then the system
// locale. Unsupported values are skipped.
func ResolveLocale(flagLocale, configLocale string) string {
	if IsValidLocale(flagLocale) {
		return flagLocale
	}
	if IsValidLocale(configLocale) {
		return configLocale
	}
	return DetectSystemLocale()
}
