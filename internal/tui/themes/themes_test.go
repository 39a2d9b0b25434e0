package themes

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	want := []string{"dark", "light", "nord"}
	if diff := cmp.Diff(want, r.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if r.ActiveName() != PresetDark {
		t.Errorf("expected dark active, got %q", r.ActiveName())
	}
	if r.Active().Name != "dark" {
		t.Errorf("expected active theme 'dark', got %q", r.Active().Name)
	}
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()

	theme, err := r.Get("nord")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if theme.Name != "nord" {
		t.Errorf("expected nord, got %q", theme.Name)
	}

	if _, err := r.Get("solarized"); !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("expected ErrUnknownTheme, got %v", err)
	}
}

func TestRegistry_SetActive(t *testing.T) {
	r := NewRegistry()

	if err := r.SetActive("light"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Active().Name != "light" {
		t.Errorf("expected light active, got %q", r.Active().Name)
	}

	if err := r.SetActive("missing"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if r.ActiveName() != PresetLight {
		t.Errorf("failed switch must keep light active, got %q", r.ActiveName())
	}
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()
	custom := DarkTheme().WithPalette(NordPalette())
	custom.Name = "midnight"
	r.Register("midnight", custom)

	got, err := r.Get("midnight")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Palette.Primary != NordPalette().Primary {
		t.Error("expected nord palette on custom theme")
	}
}

func TestGlobal_Singleton(t *testing.T) {
	if Global() != Global() {
		t.Error("expected the same registry")
	}
}

func TestWithPalette_DoesNotMutate(t *testing.T) {
	base := DarkTheme()
	_ = base.WithPalette(LightPalette())

	if base.Palette.Surface != DarkPalette().Surface {
		t.Error("WithPalette must not change the receiver")
	}
}

func TestIcon(t *testing.T) {
	tests := []struct {
		name    string
		unicode bool
		want    string
	}{
		{"settings", true, "⚙"},
		{"settings", false, "S"},
		{"chart", false, "C"},
		{"unheard-of", true, IconFallback},
		{"unheard-of", false, IconFallbackASCII},
		{"", true, IconFallback},
	}

	for _, tt := range tests {
		if got := Icon(tt.name, tt.unicode); got != tt.want {
			t.Errorf("Icon(%q, %v) = %q, want %q", tt.name, tt.unicode, got, tt.want)
		}
	}
}
