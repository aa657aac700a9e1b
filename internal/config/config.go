package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/Akashdeep-Patra/zed-scroll-view/internal/ui/scrollbar"
	"github.com/spf13/viper"
)

// Config holds the resolved application configuration.
type Config struct {
	// Theme name: "dark" (default) or "light".
	Theme string `mapstructure:"theme"`

	// Vertical and Horizontal scrollbar visibility: auto, visible or hidden.
	Vertical   string `mapstructure:"vertical"`
	Horizontal string `mapstructure:"horizontal"`
	// Arrows draws one-cell arrow buttons at both ends of each track.
	Arrows        bool `mapstructure:"arrows"`
	MinSliderSize int  `mapstructure:"min_slider_size"`
	// SnapBack is "auto" (Windows only), "on" or "off".
	SnapBack         string `mapstructure:"snap_back"`
	SnapBackDistance int    `mapstructure:"snap_back_distance"`
	// ScrollByPage makes track clicks page toward the pointer.
	ScrollByPage bool `mapstructure:"scroll_by_page"`

	WheelLines   int `mapstructure:"wheel_lines"`
	WheelColumns int `mapstructure:"wheel_columns"`

	HideDelay      time.Duration `mapstructure:"hide_delay"`
	RevealDuration time.Duration `mapstructure:"reveal_duration"`
	FadeDuration   time.Duration `mapstructure:"fade_duration"`

	// Unicode selects block glyphs; turn off for terminals without them.
	Unicode bool `mapstructure:"unicode"`

	Highlight      bool   `mapstructure:"highlight"`
	HighlightStyle string `mapstructure:"highlight_style"`
	TabWidth       int    `mapstructure:"tab_width"`

	// Watch reloads the file when it changes on disk.
	Watch         bool          `mapstructure:"watch"`
	WatchDebounce time.Duration `mapstructure:"watch_debounce"`

	// LogFile receives debug output; the terminal itself is owned by the TUI.
	LogFile  string `mapstructure:"log_file"`
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from ~/.config/zsv/config.yaml, or from path when
// it is non-empty. Environment variables prefixed ZSV_ override file values.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(configDirectory())
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix("ZSV")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is fine; use defaults.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the UI cannot interpret.
func (c *Config) Validate() error {
	if _, err := scrollbar.ParseVisibility(c.Vertical); err != nil {
		return fmt.Errorf("vertical: %w", err)
	}
	if _, err := scrollbar.ParseVisibility(c.Horizontal); err != nil {
		return fmt.Errorf("horizontal: %w", err)
	}
	switch strings.ToLower(c.SnapBack) {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("snap_back: unknown value %q (want auto, on or off)", c.SnapBack)
	}
	if c.WheelLines < 1 || c.WheelColumns < 1 {
		return errors.New("wheel_lines and wheel_columns must be at least 1")
	}
	if c.TabWidth < 1 {
		return errors.New("tab_width must be at least 1")
	}
	return nil
}

// SnapBackEnabled resolves the snap_back setting for the running platform.
func (c *Config) SnapBackEnabled() bool {
	switch strings.ToLower(c.SnapBack) {
	case "on":
		return true
	case "off":
		return false
	}
	return runtime.GOOS == "windows"
}

// VerticalVisibility returns the parsed vertical visibility.
func (c *Config) VerticalVisibility() scrollbar.Visibility {
	v, _ := scrollbar.ParseVisibility(c.Vertical)
	return v
}

// HorizontalVisibility returns the parsed horizontal visibility.
func (c *Config) HorizontalVisibility() scrollbar.Visibility {
	v, _ := scrollbar.ParseVisibility(c.Horizontal)
	return v
}

// SlogLevel parses LogLevel, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func configDirectory() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "zsv")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "zsv")
}
