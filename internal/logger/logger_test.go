package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"navshell/internal/config"

	"github.com/spf13/cobra"
)

// ==================== Logger Tests ====================

func TestNew_Formats(t *testing.T) {
	for _, format := range []string{"text", "json", "pretty"} {
		t.Run(format, func(t *testing.T) {
			logger, err := New(config.LogConfig{
				Level:  "debug",
				Format: format,
				Output: "stderr",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			defer logger.Close()

			if logger == nil {
				t.Fatal("expected non-nil logger")
			}
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "verbose"})
	if err == nil {
		t.Fatal("expected error for invalid level")
	}
	if !strings.Contains(err.Error(), "invalid log level") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "navshell.log")

	logger, err := New(config.LogConfig{
		Level:    "info",
		Format:   "json",
		FilePath: path,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	logger.Info("shell started", "width", 640)
	if err := logger.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(data), &record); err != nil {
		t.Fatalf("expected JSON record, got %q: %v", data, err)
	}
	if record["msg"] != "shell started" {
		t.Errorf("expected msg 'shell started', got %v", record["msg"])
	}
	if record["width"] != float64(640) {
		t.Errorf("expected width 640, got %v", record["width"])
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := parseLevel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Info("dropped")
	if err := l.Close(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

// ==================== Console Handler Tests ====================

func TestConsoleHandler_WritesGroups(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(&buf, &ConsoleHandlerOptions{Level: slog.LevelDebug, NoColor: true})

	log := slog.New(h).WithGroup("shell")
	log.Debug("layout changed", "layout", "wide")

	out := buf.String()
	if !strings.Contains(out, "layout changed") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "shell.layout") {
		t.Errorf("expected grouped key in output, got %q", out)
	}
}

func TestConsoleHandler_Level(t *testing.T) {
	h := NewConsoleHandler(&bytes.Buffer{}, &ConsoleHandlerOptions{Level: slog.LevelWarn})

	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled at warn level")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled at warn level")
	}
}

// ==================== Error Tests ====================

func TestWrapError(t *testing.T) {
	if WrapError(nil, "ignored") != nil {
		t.Error("expected nil for nil error")
	}

	base := errors.New("boom")
	err := WrapError(base, "navigate")

	if !errors.Is(err, base) {
		t.Error("expected wrapped error to match base")
	}
	if err.Error() != "navigate: boom" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	var we *WrappedError
	if !errors.As(err, &we) {
		t.Fatal("expected *WrappedError")
	}
	if !strings.HasPrefix(we.Caller(), "logger/logger_test.go:") {
		t.Errorf("unexpected caller: %q", we.Caller())
	}
}

func TestWithError(t *testing.T) {
	if attr := WithError(nil); attr.Key != "" {
		t.Errorf("expected empty attr, got %v", attr)
	}

	err := fmt.Errorf("select: %w", errors.New("router offline"))
	attr := WithError(err)

	if attr.Key != "error" {
		t.Fatalf("expected key 'error', got %q", attr.Key)
	}

	fields := map[string]slog.Value{}
	for _, a := range attr.Value.Group() {
		fields[a.Key] = a.Value
	}
	if fields["message"].String() != "select: router offline" {
		t.Errorf("unexpected message: %v", fields["message"])
	}
	if _, ok := fields["chain"]; !ok {
		t.Error("expected chain for wrapped error")
	}
}

// ==================== Context Tests ====================

func TestSessionContext(t *testing.T) {
	cmd := &cobra.Command{Use: "run"}
	s := NewCommandSession(cmd)

	if s.ID == "" {
		t.Error("expected session id")
	}
	if s.Origin != "local" {
		t.Errorf("expected origin 'local', got %q", s.Origin)
	}
	if s.Command != "run" {
		t.Errorf("expected command 'run', got %q", s.Command)
	}

	ctx := WithSession(context.Background(), s)
	if SessionFrom(ctx) != s {
		t.Error("expected session from context")
	}
	if SessionFrom(context.Background()) != nil {
		t.Error("expected nil session from empty context")
	}
}

func TestRemoteSession_UniqueIDs(t *testing.T) {
	a := NewRemoteSession("alice", "10.0.0.1:5000")
	b := NewRemoteSession("alice", "10.0.0.1:5001")

	if a.ID == b.ID {
		t.Error("expected distinct session ids")
	}
	if a.Origin != "ssh" {
		t.Errorf("expected origin 'ssh', got %q", a.Origin)
	}
}

func TestLoggerFromContext(t *testing.T) {
	l := Discard()
	ctx := WithLogger(context.Background(), l)

	if LoggerFrom(ctx) != l {
		t.Error("expected logger from context")
	}
	if LoggerFrom(context.Background()) == nil {
		t.Error("expected default logger")
	}
}

func TestForSession(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	l.ForSession(NewRemoteSession("bob", "127.0.0.1:1")).Info("connected")

	var record map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	session, ok := record["session"].(map[string]any)
	if !ok {
		t.Fatalf("expected session group, got %v", record)
	}
	if session["user"] != "bob" {
		t.Errorf("expected user 'bob', got %v", session["user"])
	}
}

// ==================== Surface Tests ====================

func TestSurfaceFor(t *testing.T) {
	tests := []struct {
		command string
		want    Surface
	}{
		{"run", SurfaceTUI},
		{"serve", SurfaceServe},
		{"classify", SurfaceCommand},
		{"show", SurfaceCommand},
	}

	for _, tt := range tests {
		if got := SurfaceFor(tt.command); got != tt.want {
			t.Errorf("SurfaceFor(%q) = %d, want %d", tt.command, got, tt.want)
		}
	}
}

func TestForSurface(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	defaultFile := filepath.Join(home, ".config", "navshell", DefaultFileName)

	tests := []struct {
		name     string
		cfg      config.LogConfig
		surface  Surface
		wantOut  string
		wantFile string
	}{
		{"tui defaults to file", config.LogConfig{}, SurfaceTUI, "", defaultFile},
		{"tui drops stderr", config.LogConfig{Output: "stderr"}, SurfaceTUI, "", defaultFile},
		{"tui keeps configured file", config.LogConfig{Output: "stdout", FilePath: "/tmp/x.log"}, SurfaceTUI, "", "/tmp/x.log"},
		{"tui keeps output file", config.LogConfig{Output: "/tmp/out.log"}, SurfaceTUI, "/tmp/out.log", ""},
		{"tui none stays silent", config.LogConfig{Output: "none"}, SurfaceTUI, "none", ""},
		{"serve defaults to stderr", config.LogConfig{}, SurfaceServe, "stderr", ""},
		{"serve keeps stdout", config.LogConfig{Output: "stdout"}, SurfaceServe, "stdout", ""},
		{"command unchanged", config.LogConfig{}, SurfaceCommand, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ForSurface(tt.cfg, tt.surface)
			if got.Output != tt.wantOut {
				t.Errorf("output = %q, want %q", got.Output, tt.wantOut)
			}
			if got.FilePath != tt.wantFile {
				t.Errorf("file = %q, want %q", got.FilePath, tt.wantFile)
			}
		})
	}
}

func TestNewForSurface_TUIWritesDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	log, err := NewForSurface(config.LogConfig{Level: "info", Output: "stderr"}, SurfaceTUI)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(home, ".config", "navshell", DefaultFileName)
	if log.FilePath() != want {
		t.Errorf("FilePath() = %q, want %q", log.FilePath(), want)
	}

	log.Info("layout changed", "layout", "wide")
	if err := log.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}

	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "layout changed") {
		t.Errorf("expected record in %s, got %q", want, data)
	}
}

func TestFilePath_ConsoleOnly(t *testing.T) {
	log, err := New(config.LogConfig{Output: "stdout"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer log.Close()

	if got := log.FilePath(); got != "" {
		t.Errorf("expected no file, got %q", got)
	}
	if got := log.WithGroup("shell").FilePath(); got != "" {
		t.Errorf("expected derived logger without file, got %q", got)
	}
}
