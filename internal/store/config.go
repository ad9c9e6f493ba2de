package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const configFileName = "config.json"

// Config holds optional user preferences stored alongside the notes db.
// All fields are optional; a missing or unreadable file yields the zero
// value.
type Config struct {
	// AutosaveMs overrides the autosave quiet period (milliseconds).
	AutosaveMs int `json:"autosaveMs,omitempty"`
	// ExportDir overrides where exported note files are written
	// (default: current working directory).
	ExportDir string `json:"exportDir,omitempty"`
	// Theme forces the palette ("light", "dark"; default: auto-detect).
	Theme string `json:"theme,omitempty"`
}

// DefaultDir is the fallback data directory (~/.jot) when neither --dir nor
// JOT_DIR is set.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".jot"), nil
}

// LoadConfig reads config.json from the store dir, best-effort.
func (s Store) LoadConfig() Config {
	var cfg Config
	b, err := os.ReadFile(filepath.Join(s.Dir, configFileName))
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// AutosaveQuiet is the debounce quiet period, defaulting to 650ms.
func (c Config) AutosaveQuiet() time.Duration {
	if c.AutosaveMs <= 0 {
		return 650 * time.Millisecond
	}
	return time.Duration(c.AutosaveMs) * time.Millisecond
}
