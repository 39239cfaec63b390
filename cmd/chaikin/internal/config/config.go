// Package config loads the optional chaikin.yaml configuration and
// resolves it into concrete app options.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-chaikin/chaikin/pkg/app"
	"github.com/go-chaikin/chaikin/pkg/rendering"
)

// FileName is the configuration file looked up in the config directory.
const FileName = "chaikin.yaml"

// Config represents the optional chaikin.yaml configuration.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Animation AnimationConfig `yaml:"animation"`
	Style     StyleConfig     `yaml:"style"`
}

// WindowConfig contains canvas settings.
type WindowConfig struct {
	Width  int    `yaml:"width,omitempty"`
	Height int    `yaml:"height,omitempty"`
	Title  string `yaml:"title,omitempty"`
}

// AnimationConfig contains playback settings.
type AnimationConfig struct {
	// Steps is the number of smoothing passes per playback.
	Steps int `yaml:"steps,omitempty"`
	// IntervalMS is the cadence between steps in milliseconds.
	IntervalMS int `yaml:"interval_ms,omitempty"`
}

// StyleConfig contains drawing settings. Colors are hex strings,
// "#RRGGBB" or "#AARRGGBB".
type StyleConfig struct {
	PointRadius     float64 `yaml:"point_radius,omitempty"`
	Background      string  `yaml:"background,omitempty"`
	PointColor      string  `yaml:"point_color,omitempty"`
	LineColor       string  `yaml:"line_color,omitempty"`
	ToastBackground string  `yaml:"toast_background,omitempty"`
	ToastTextColor  string  `yaml:"toast_text_color,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Title   string
	Options app.Options
}

// LoadOptional reads chaikin.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads chaikin.yaml (if present), validates it, and fills in
// defaults. Absent fields keep the app defaults; a negative dimension
// or step count is a configuration error.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	if cfg.Window.Width < 0 || cfg.Window.Height < 0 {
		return nil, fmt.Errorf("window: negative dimensions %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Animation.Steps < 0 {
		return nil, fmt.Errorf("animation: negative step count %d", cfg.Animation.Steps)
	}
	if cfg.Animation.IntervalMS < 0 {
		return nil, fmt.Errorf("animation: negative interval %dms", cfg.Animation.IntervalMS)
	}
	if cfg.Style.PointRadius < 0 {
		return nil, fmt.Errorf("style: negative point radius %g", cfg.Style.PointRadius)
	}

	opts := app.Options{
		Width:        cfg.Window.Width,
		Height:       cfg.Window.Height,
		StepCount:    cfg.Animation.Steps,
		StepInterval: time.Duration(cfg.Animation.IntervalMS) * time.Millisecond,
		PointRadius:  cfg.Style.PointRadius,
	}

	colors := []struct {
		value string
		field string
		dst   *rendering.Color
	}{
		{cfg.Style.Background, "background", &opts.Background},
		{cfg.Style.PointColor, "point_color", &opts.PointColor},
		{cfg.Style.LineColor, "line_color", &opts.LineColor},
		{cfg.Style.ToastBackground, "toast_background", &opts.ToastBackground},
		{cfg.Style.ToastTextColor, "toast_text_color", &opts.ToastTextColor},
	}
	for _, c := range colors {
		if c.value == "" {
			continue
		}
		parsed, err := rendering.ParseColor(c.value)
		if err != nil {
			return nil, fmt.Errorf("style: %s: %w", c.field, err)
		}
		*c.dst = parsed
	}

	title := cfg.Window.Title
	if title == "" {
		title = "Chaikin's Algorithm"
	}

	return &Resolved{Title: title, Options: opts}, nil
}
