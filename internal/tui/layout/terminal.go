package layout

import (
	"os"
	"strings"
	"sync"
)

// TerminalCapabilities describes what the terminal can draw.
type TerminalCapabilities struct {
	// Unicode selects glyph icons over ASCII ones.
	Unicode bool
	// TrueColor reports 24-bit color support.
	TrueColor bool
}

var (
	detectedCaps     *TerminalCapabilities
	capsOnce         sync.Once
	capsOverride     *TerminalCapabilities
	capsOverrideLock sync.RWMutex
)

// DetectCapabilities inspects the environment once and caches the result.
func DetectCapabilities() *TerminalCapabilities {
	capsOnce.Do(func() {
		detectedCaps = CapabilitiesFromEnv(os.Getenv)
	})
	return detectedCaps
}

// CapabilitiesFromEnv derives capabilities from environment lookups. SSH
// sessions pass the client's environment here.
func CapabilitiesFromEnv(getenv func(string) string) *TerminalCapabilities {
	return &TerminalCapabilities{
		Unicode:   detectUnicode(getenv),
		TrueColor: detectTrueColor(getenv),
	}
}

// GetCapabilities returns the override if set, otherwise the detected value.
func GetCapabilities() *TerminalCapabilities {
	capsOverrideLock.RLock()
	defer capsOverrideLock.RUnlock()
	if capsOverride != nil {
		return capsOverride
	}
	return DetectCapabilities()
}

// SetCapabilities overrides detection.
func SetCapabilities(caps *TerminalCapabilities) {
	capsOverrideLock.Lock()
	defer capsOverrideLock.Unlock()
	capsOverride = caps
}

// ResetCapabilities clears the override.
func ResetCapabilities() {
	capsOverrideLock.Lock()
	defer capsOverrideLock.Unlock()
	capsOverride = nil
}

func detectUnicode(getenv func(string) string) bool {
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		v := strings.ToLower(getenv(key))
		if v == "" {
			continue
		}
		// The first locale variable set wins
		if strings.Contains(v, "utf-8") || strings.Contains(v, "utf8") {
			return true
		}
		if v == "c" || v == "posix" {
			return false
		}
		break
	}

	term := strings.ToLower(getenv("TERM"))
	if term == "linux" || term == "vt100" || term == "dumb" {
		return false
	}
	return true
}

func detectTrueColor(getenv func(string) string) bool {
	switch getenv("COLORTERM") {
	case "truecolor", "24bit":
		return true
	}
	if getenv("WT_SESSION") != "" {
		return true
	}
	switch getenv("TERM_PROGRAM") {
	case "iTerm.app", "vscode", "WezTerm", "Hyper":
		return true
	}
	return false
}
