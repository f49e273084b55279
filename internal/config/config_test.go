package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestDefaultWorkspaceChordsUseAltArrows(t *testing.T) {
	cfg := DefaultConfig()
	want := map[string]string{
		"workspace_prev": "ydotool key 56:1 105:1 105:0 56:0",
		"workspace_next": "ydotool key 56:1 106:1 106:0 56:0",
	}
	for name, cmd := range want {
		if got := cfg.SessionActions[name]; got != cmd {
			t.Fatalf("%s: expected %q, got %q", name, cmd, got)
		}
	}
}

func TestLoadFromPath_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFromPath(filepath.Join(t.TempDir(), "settings.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SelfAppID != "org.broomlabs.wloverview" {
		t.Fatalf("expected default self_app_id, got %q", cfg.SelfAppID)
	}
	if cfg.Grid.Spacing != 22 {
		t.Fatalf("expected default spacing 22, got %d", cfg.Grid.Spacing)
	}
}

func TestLoadFromPath_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := `
grid:
  spacing: 10
timers:
  clock: 30s
log_level: debug
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Grid.Spacing != 10 {
		t.Fatalf("expected spacing 10, got %d", cfg.Grid.Spacing)
	}
	if cfg.Grid.WidthFraction != 0.9 {
		t.Fatalf("expected default width_fraction to survive, got %v", cfg.Grid.WidthFraction)
	}
	if cfg.Timers.Clock.Std() != 30*time.Second {
		t.Fatalf("expected clock timer 30s, got %v", cfg.Timers.Clock.Std())
	}
	if cfg.Timers.Volume.Std() != 5*time.Second {
		t.Fatalf("expected default volume timer, got %v", cfg.Timers.Volume.Std())
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log_level debug, got %q", cfg.LogLevel)
	}
}

func TestLoadFromPath_UnknownFieldRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("no_such_field: 1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFromPath(path); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestValidate_ReportsYAMLPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.WidthFraction = 1.5
	err := cfg.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Path != "grid.width_fraction" {
		t.Fatalf("unexpected path %q", verr.Path)
	}
	if !strings.Contains(err.Error(), "grid.width_fraction") {
		t.Fatalf("error message missing path: %v", err)
	}
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "verbose"
	if err := cfg.Validate(); err == nil {
		t.Fatalf("expected validation error for bad log_level")
	}
}

func TestIconSizeFor(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		width int
		want  int
	}{
		{300, 96},
		{260, 96},
		{220, 80},
		{180, 64},
		{120, 48},
		{0, 48},
	}
	for _, tc := range cases {
		if got := cfg.IconSizeFor(tc.width); got != tc.want {
			t.Fatalf("IconSizeFor(%d): expected %d, got %d", tc.width, tc.want, got)
		}
	}
}
