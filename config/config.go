package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/natefinch/atomic"

	"github.com/ftahirops/xreport/grid"
)

// Config holds user-configurable defaults.
type Config struct {
	Section          string      `json:"default_section"`
	HideDescriptions bool        `json:"hide_descriptions"`
	Mouse            bool        `json:"mouse"`
	MaxColWidth      int         `json:"max_col_width"`
	Theme            ThemeConfig `json:"theme"`
}

// ThemeConfig overrides table colours. Empty fields keep the built-in
// palette. Values are hex ("#282A36") or ANSI numbers ("236").
type ThemeConfig struct {
	Surface1   string `json:"surface1,omitempty"`
	Surface2   string `json:"surface2,omitempty"`
	Hover      string `json:"hover,omitempty"`
	Header     string `json:"header,omitempty"`
	HeaderText string `json:"header_text,omitempty"`
	Action     string `json:"action,omitempty"`
	Text       string `json:"text,omitempty"`
	Strong     string `json:"strong,omitempty"`
	Muted      string `json:"muted,omitempty"`
	Border     string `json:"border,omitempty"`
}

// Default returns a config with sensible defaults.
func Default() Config {
	return Config{
		Section:     "semi-equip",
		Mouse:       true,
		MaxColWidth: 40,
	}
}

// Path returns ~/.config/xreport/config.json (or XDG_CONFIG_HOME).
// Returns empty string if home directory cannot be determined.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "xreport", "config.json")
}

// Load loads config from disk; returns defaults on error.
func Load() Config {
	return LoadFile(Path())
}

// LoadFile loads config from path. A missing file yields the defaults; a
// malformed one is reported and the defaults are kept for the fields it
// could not set.
func LoadFile(path string) Config {
	cfg := Default()
	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		log.Printf("xreport: warning: config parse error: %v", err)
	}
	if cfg.MaxColWidth < 0 {
		log.Printf("xreport: warning: max_col_width %d ignored", cfg.MaxColWidth)
		cfg.MaxColWidth = Default().MaxColWidth
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveFile(Path(), cfg)
}

// SaveFile writes cfg to path atomically, creating the directory.
func SaveFile(path string, cfg Config) error {
	if path == "" {
		return fmt.Errorf("cannot determine config directory")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return atomic.WriteFile(path, bytes.NewReader(append(data, '\n')))
}

// Apply overlays the configured colours onto th.
func (t ThemeConfig) Apply(th grid.Theme) grid.Theme {
	set := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	set(&th.Surface1, t.Surface1)
	set(&th.Surface2, t.Surface2)
	set(&th.Hover, t.Hover)
	set(&th.Header, t.Header)
	set(&th.HeaderText, t.HeaderText)
	set(&th.Action, t.Action)
	set(&th.Text, t.Text)
	set(&th.Strong, t.Strong)
	set(&th.Muted, t.Muted)
	set(&th.Border, t.Border)
	return th
}
