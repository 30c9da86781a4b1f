// Package config provides TOML-based configuration for digits programs.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/phanxgames/digits"
)

// Config is the root configuration document.
type Config struct {
	Window  WindowConfig  `toml:"window"`
	Font    FontConfig    `toml:"font"`
	Runtime RuntimeConfig `toml:"runtime"`
	Log     LogConfig     `toml:"log"`
	Layout  LayoutConfig  `toml:"layout"`
}

// WindowConfig describes the initial window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	// Background is a hex colour, "#rrggbb" or "#rrggbbaa".
	Background string `toml:"background"`
}

// FontConfig selects the font used by labels built from markup.
type FontConfig struct {
	Path string `toml:"path"` // empty selects the platform default
	Size int    `toml:"size"`
}

// RuntimeConfig tunes the App loop.
type RuntimeConfig struct {
	Idle             Duration `toml:"idle"`
	MaxAncestorDepth int      `toml:"max_ancestor_depth"`
	Debug            bool     `toml:"debug"`
	Script           string   `toml:"script"` // optional input script replayed at startup
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
	JSON  bool   `toml:"json"`
}

// LayoutConfig points at the widget tree to load.
type LayoutConfig struct {
	Markup string `toml:"markup"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "digits",
			Width:      640,
			Height:     480,
			Background: "#202020",
		},
		Font: FontConfig{
			Size: digits.DefaultFontSize,
		},
		Runtime: RuntimeConfig{
			Idle:             Duration{digits.DefaultIdleInterval},
			MaxAncestorDepth: digits.DefaultMaxAncestorDepth,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Validate reports every invalid field.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window: size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if _, err := ParseColor(c.Window.Background); err != nil {
		errs = append(errs, fmt.Errorf("window: background: %w", err))
	}
	if c.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font: size %d must be positive", c.Font.Size))
	}
	if c.Runtime.MaxAncestorDepth <= 0 {
		errs = append(errs, fmt.Errorf("runtime: max_ancestor_depth %d must be positive", c.Runtime.MaxAncestorDepth))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log: %w", err))
	}
	return errors.Join(errs...)
}

// AppOptions converts the runtime settings into digits.App options. The
// config must be valid.
func (c *Config) AppOptions() []digits.Option {
	opts := []digits.Option{
		digits.WithIdleInterval(c.Runtime.Idle.Duration),
		digits.WithMaxAncestorDepth(c.Runtime.MaxAncestorDepth),
		digits.WithDebug(c.Runtime.Debug),
	}
	if bg, err := ParseColor(c.Window.Background); err == nil {
		opts = append(opts, digits.WithBackground(bg))
	}
	return opts
}

// ParseLevel maps a level name to a slog.Level. Empty means info.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown level %q", level)
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". Empty yields the default
// window background.
func ParseColor(s string) (digits.Color, error) {
	if s == "" {
		return digits.DefaultBackground, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return digits.Color{}, fmt.Errorf("invalid colour %q", s)
	}
	var v [4]uint8
	v[3] = 0xff
	for i := 0; i < len(hex)/2; i++ {
		b, err := strconv.ParseUint(hex[2*i:2*i+2], 16, 8)
		if err != nil {
			return digits.Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
		}
		v[i] = uint8(b)
	}
	return digits.Color{R: v[0], G: v[1], B: v[2], A: v[3]}, nil
}

// Duration wraps time.Duration with TOML-friendly string parsing.
// Supports standard Go duration strings: "10ms", "1s", "5m", etc.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML parsing.
func (d *Duration) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "" {
		d.Duration = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if parsed < 0 {
		return fmt.Errorf("negative duration %q not allowed", s)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler for TOML serialization.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}
