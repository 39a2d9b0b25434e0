package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"navshell/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Cleanup(func() {
		cfgFile = ""
		logLevel = ""
		classifyCols = false
		configInitForce = false
		cfg = nil
		log = nil
		cmdCtx = nil
	})

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := config.WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault: %v", err)
	}
	return path
}

func TestClassify(t *testing.T) {
	path := writeConfig(t)

	tests := []struct {
		args []string
		want string
	}{
		{[]string{"classify", "0"}, "0: narrow (overlay, pane closed)"},
		{[]string{"classify", "639"}, "639: narrow (overlay, pane closed)"},
		{[]string{"classify", "640"}, "640: wide (compact-inline, pane closed)"},
		{[]string{"classify", "1024"}, "1024: panoramic (compact-inline, pane closed)"},
		{[]string{"classify", "--cols", "100"}, "800: wide (compact-inline, pane closed)"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			out, err := execute(t, append([]string{"--config", path}, tt.args...)...)
			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if strings.TrimSpace(out) != tt.want {
				t.Errorf("expected %q, got %q", tt.want, out)
			}
		})
	}
}

func TestClassify_InvalidWidth(t *testing.T) {
	path := writeConfig(t)
	if _, err := execute(t, "--config", path, "classify", "wide"); err == nil {
		t.Fatal("expected error for non-numeric width")
	}
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.HasPrefix(out, "navshell ") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if _, err := execute(t, "--config", path, "config", "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file: %v", err)
	}

	if _, err := execute(t, "--config", path, "config", "init"); err == nil {
		t.Error("expected error when the file exists")
	}
	if _, err := execute(t, "--config", path, "config", "init", "--force"); err != nil {
		t.Errorf("init --force: %v", err)
	}

	out, err := execute(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "wide_min_width: 640") {
		t.Errorf("expected thresholds in output:\n%s", out)
	}
}
