package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"TANKS_WIDTH", "TANKS_HEIGHT", "TANKS_PLAYERS", "TANKS_TOUCH", "TANKS_SEED", "TANKS_DEBUG_PATH", "TANKS_SHOW_LOG", "TANKS_LAYOUTS"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	clearEnv(t)
	s, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s != Defaults() {
		t.Fatalf("expected defaults, got %+v", s)
	}
}

func TestLoad_ReadsEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TANKS_WIDTH", "800")
	t.Setenv("TANKS_HEIGHT", "600")
	t.Setenv("TANKS_PLAYERS", "0")
	t.Setenv("TANKS_TOUCH", "true")
	t.Setenv("TANKS_SEED", "42")
	t.Setenv("TANKS_DEBUG_PATH", "1")
	t.Setenv("TANKS_LAYOUTS", "arena.yaml")

	s, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Width != 800 || s.Height != 600 || s.Players != 0 || !s.Touch || s.Seed != 42 || !s.DebugPath ||
		s.LayoutsPath != "arena.yaml" {
		t.Fatalf("unexpected settings %+v", s)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "tanks.env")
	if err := os.WriteFile(path, []byte("TANKS_PLAYERS=2\nTANKS_WIDTH=1024\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		os.Unsetenv("TANKS_PLAYERS")
		os.Unsetenv("TANKS_WIDTH")
	})

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if s.Players != 2 || s.Width != 1024 || s.Height != 720 {
		t.Fatalf("unexpected settings %+v", s)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"TANKS_WIDTH":   "wide",
		"TANKS_PLAYERS": "3",
		"TANKS_TOUCH":   "maybe",
		"TANKS_SEED":    "x",
		"TANKS_HEIGHT":  "-5",
	}
	for k, v := range cases {
		t.Run(k, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(k, v)
			if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Fatalf("%s=%s: expected error", k, v)
			}
		})
	}
}
