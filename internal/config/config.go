// Package config loads startup settings from the environment and an optional
// .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// MenuPlayers means "no player count given": open the menu.
const MenuPlayers = -1

// Settings are the knobs read at startup.
type Settings struct {
	Width     int
	Height    int
	Players   int // 0 demo, 1 vs computer, 2 local, MenuPlayers for the menu
	Touch     bool
	Seed      int64 // 0 picks a time-based seed
	DebugPath bool
	ShowLog   bool
	// LayoutsPath names an optional YAML file of barrier layouts that
	// replaces the built-in cycle.
	LayoutsPath string
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		Width:   1280,
		Height:  720,
		Players: MenuPlayers,
	}
}

// Load reads the given .env files (default ".env") if they exist, then
// overlays TANKS_* variables from the process environment onto Defaults.
// Variables already set in the environment win over file values.
func Load(files ...string) (Settings, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	s := Defaults()
	var err error
	if s.Width, err = intVar("TANKS_WIDTH", s.Width); err != nil {
		return Settings{}, err
	}
	if s.Height, err = intVar("TANKS_HEIGHT", s.Height); err != nil {
		return Settings{}, err
	}
	if s.Players, err = intVar("TANKS_PLAYERS", s.Players); err != nil {
		return Settings{}, err
	}
	if s.Touch, err = boolVar("TANKS_TOUCH", s.Touch); err != nil {
		return Settings{}, err
	}
	if s.DebugPath, err = boolVar("TANKS_DEBUG_PATH", s.DebugPath); err != nil {
		return Settings{}, err
	}
	if s.ShowLog, err = boolVar("TANKS_SHOW_LOG", s.ShowLog); err != nil {
		return Settings{}, err
	}
	s.LayoutsPath = os.Getenv("TANKS_LAYOUTS")
	if v, ok := os.LookupEnv("TANKS_SEED"); ok && v != "" {
		if s.Seed, err = strconv.ParseInt(v, 10, 64); err != nil {
			return Settings{}, fmt.Errorf("TANKS_SEED: %w", err)
		}
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the game cannot start with.
func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", s.Width, s.Height)
	}
	if s.Players != MenuPlayers && (s.Players < 0 || s.Players > 2) {
		return fmt.Errorf("TANKS_PLAYERS=%d: want 0, 1 or 2", s.Players)
	}
	return nil
}

func intVar(name string, def int) (int, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return n, nil
}

func boolVar(name string, def bool) (bool, error) {
	v, ok := os.LookupEnv(name)
	if !ok || v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
