// Package config loads the daemon settings from a YAML file. Everything has
// a working default, so a missing settings file is not an error; a malformed
// or invalid one is, with the offending YAML path in the message.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Grid controls the tile layout solver.
type Grid struct {
	WidthFraction        float64 `yaml:"width_fraction"`
	HeightFraction       float64 `yaml:"height_fraction"`
	Spacing              int     `yaml:"spacing"`
	AspectRatio          float64 `yaml:"aspect_ratio"`
	MinTileWidth         int     `yaml:"min_tile_width"`
	MaxTileWidthFraction float64 `yaml:"max_tile_width_fraction"`
}

// IconSizeBreak maps a minimum tile width to the icon size used at or above
// it. Breaks are checked in order and the first match wins; a MinTileWidth of
// 0 is the catch-all.
type IconSizeBreak struct {
	MinTileWidth int `yaml:"min_tile_width"`
	IconSize     int `yaml:"icon_size"`
}

// Tools names the external command-line tools the daemon shells out to.
type Tools struct {
	WindowControl string `yaml:"window_control"`
	Volume        string `yaml:"volume"`
	Power         string `yaml:"power"`
}

// Duration is a time.Duration that decodes from YAML strings like "30s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

// Timers holds the poll intervals for the overview's periodic refreshes.
type Timers struct {
	Clock    Duration `yaml:"clock"`
	Volume   Duration `yaml:"volume"`
	Populate Duration `yaml:"populate"`
}

// Config is the effective daemon configuration.
type Config struct {
	SelfAppID      string            `yaml:"self_app_id"`
	Grid           Grid              `yaml:"grid"`
	IconSizes      []IconSizeBreak   `yaml:"icon_sizes"`
	ClockFormat    string            `yaml:"clock_format"`
	Tools          Tools             `yaml:"tools"`
	Timers         Timers            `yaml:"timers"`
	SessionActions map[string]string `yaml:"session_actions"`
	DockPath       string            `yaml:"dock_path"`
	LogLevel       string            `yaml:"log_level"`
}

// DefaultConfig returns the configuration used when no settings file exists.
func DefaultConfig() *Config {
	return &Config{
		SelfAppID: "org.broomlabs.wloverview",
		Grid: Grid{
			WidthFraction:        0.9,
			HeightFraction:       0.8,
			Spacing:              22,
			AspectRatio:          4.0 / 3.0,
			MinTileWidth:         120,
			MaxTileWidthFraction: 0.5,
		},
		IconSizes: []IconSizeBreak{
			{MinTileWidth: 260, IconSize: 96},
			{MinTileWidth: 200, IconSize: 80},
			{MinTileWidth: 160, IconSize: 64},
			{MinTileWidth: 0, IconSize: 48},
		},
		ClockFormat: "Monday Jan 2  15:04",
		Tools: Tools{
			WindowControl: "wlrctl",
			Volume:        "wpctl",
			Power:         "upower",
		},
		Timers: Timers{
			Clock:    Duration(time.Minute),
			Volume:   Duration(5 * time.Second),
			Populate: Duration(250 * time.Millisecond),
		},
		SessionActions: map[string]string{
			"workspace_prev": "ydotool key 56:1 105:1 105:0 56:0",
			"workspace_next": "ydotool key 56:1 106:1 106:0 56:0",
			"audio":          "pavucontrol",
			"bluetooth":      "blueman-manager",
			"appearance":     "labwc-tweaks-gtk",
			"lock":           "swaylock -f -c 000000",
		},
		LogLevel: "info",
	}
}

// IconSizeFor picks the icon size for a tile of the given width.
func (c *Config) IconSizeFor(tileWidth int) int {
	for _, brk := range c.IconSizes {
		if tileWidth >= brk.MinTileWidth {
			return brk.IconSize
		}
	}
	return 48
}

// ValidationError reports an invalid setting by its YAML path.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Path, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Validate checks the configuration for values the daemon cannot run with.
func (c *Config) Validate() error {
	if c.SelfAppID == "" {
		return &ValidationError{Path: "self_app_id", Err: fmt.Errorf("self_app_id is required")}
	}
	if c.Grid.WidthFraction <= 0 || c.Grid.WidthFraction > 1 {
		return &ValidationError{Path: "grid.width_fraction", Err: fmt.Errorf("width_fraction must be in (0, 1]")}
	}
	if c.Grid.HeightFraction <= 0 || c.Grid.HeightFraction > 1 {
		return &ValidationError{Path: "grid.height_fraction", Err: fmt.Errorf("height_fraction must be in (0, 1]")}
	}
	if c.Grid.Spacing < 0 {
		return &ValidationError{Path: "grid.spacing", Err: fmt.Errorf("spacing must be >= 0")}
	}
	if c.Grid.AspectRatio <= 0 {
		return &ValidationError{Path: "grid.aspect_ratio", Err: fmt.Errorf("aspect_ratio must be > 0")}
	}
	if c.Grid.MinTileWidth < 0 {
		return &ValidationError{Path: "grid.min_tile_width", Err: fmt.Errorf("min_tile_width must be >= 0")}
	}
	if c.Grid.MaxTileWidthFraction <= 0 || c.Grid.MaxTileWidthFraction > 1 {
		return &ValidationError{Path: "grid.max_tile_width_fraction", Err: fmt.Errorf("max_tile_width_fraction must be in (0, 1]")}
	}
	if len(c.IconSizes) == 0 {
		return &ValidationError{Path: "icon_sizes", Err: fmt.Errorf("icon_sizes must not be empty")}
	}
	for i, brk := range c.IconSizes {
		if brk.IconSize <= 0 {
			return &ValidationError{Path: fmt.Sprintf("icon_sizes[%d].icon_size", i), Err: fmt.Errorf("icon_size must be > 0")}
		}
		if brk.MinTileWidth < 0 {
			return &ValidationError{Path: fmt.Sprintf("icon_sizes[%d].min_tile_width", i), Err: fmt.Errorf("min_tile_width must be >= 0")}
		}
	}
	if c.ClockFormat == "" {
		return &ValidationError{Path: "clock_format", Err: fmt.Errorf("clock_format is required")}
	}
	if c.Tools.WindowControl == "" {
		return &ValidationError{Path: "tools.window_control", Err: fmt.Errorf("window_control is required")}
	}
	if c.Timers.Clock <= 0 || c.Timers.Volume <= 0 || c.Timers.Populate <= 0 {
		return &ValidationError{Path: "timers", Err: fmt.Errorf("timer intervals must be > 0")}
	}
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	return nil
}
