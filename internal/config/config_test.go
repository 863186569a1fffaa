package config_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/karupanerura/lazyload/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lazydemo.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &config.Config{
		LogLevel: "info",
		Quiz:     config.Quiz{Count: 5000, Delay: 1500 * time.Millisecond},
		Hotel: config.Hotel{
			Rooms:          10,
			ListDelay:      500 * time.Millisecond,
			InitialDelay:   800 * time.Millisecond,
			MoreDelay:      600 * time.Millisecond,
			PageSize:       2,
			ViewportHeight: 800,
			CardHeight:     240,
			CardGap:        16,
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"log_level: debug",
		"quiz:",
		"  count: 20",
		"  delay: 0s",
		"hotel:",
		"  rooms: 4",
		"  more_delay: 10ms",
	}, "\n"))
	t.Setenv("LAZYDEMO_HOTEL_PAGE_SIZE", "3")
	t.Setenv("LAZYDEMO_QUIZ_COUNT", "30")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("unexpected log level: %s", cfg.LogLevel)
	}
	if cfg.Quiz.Count != 30 || cfg.Quiz.Delay != 0 {
		t.Errorf("unexpected quiz config: %+v", cfg.Quiz)
	}
	if cfg.Hotel.Rooms != 4 || cfg.Hotel.MoreDelay != 10*time.Millisecond || cfg.Hotel.PageSize != 3 {
		t.Errorf("unexpected hotel config: %+v", cfg.Hotel)
	}
	if cfg.Hotel.InitialDelay != 800*time.Millisecond {
		t.Errorf("expected the default initial delay, got %v", cfg.Hotel.InitialDelay)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Parallel()

	if _, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, "hotel:\n  page_size: 0\n")
	if _, err := config.Load(path); !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "debug", want: zerolog.DebugLevel},
		{level: "error", want: zerolog.ErrorLevel},
		{level: "", want: zerolog.InfoLevel},
		{level: "verbose", want: zerolog.InfoLevel},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		logger := config.NewLogger(&buf, tt.level)
		if got := logger.GetLevel(); got != tt.want {
			t.Errorf("NewLogger(%q) level = %v, want %v", tt.level, got, tt.want)
		}
	}

	var buf bytes.Buffer
	logger := config.NewLogger(&buf, "info")
	logger.Info().Str("room", "room-0").Msg("prices loaded")
	if out := buf.String(); !strings.Contains(out, "prices loaded") || !strings.Contains(out, "room-0") {
		t.Errorf("unexpected log output: %q", out)
	}
}
