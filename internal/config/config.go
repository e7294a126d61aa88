// Package config loads machine and job settings from a TOML file.
package config

import (
	"fmt"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"dxf-cam/pkg/geometry"
)

// UCSConfig defines a user coordinate system as an origin and a rotated
// x-axis, both expressed in the drawing's reference frame.
type UCSConfig struct {
	Origin   [2]float64 `toml:"origin"`
	XAxisDeg float64    `toml:"x_axis_deg"`
}

// Transform builds the reference-to-working frame transform: translate the
// UCS origin to (0,0), then rotate the UCS x-axis onto the +x direction.
func (u UCSConfig) Transform() geometry.AffineTransform {
	rotate := geometry.Rotation(-u.XAxisDeg * math.Pi / 180)
	translate := geometry.Translation(-u.Origin[0], -u.Origin[1])
	return rotate.Compose(translate)
}

// Config holds the pipeline settings.
type Config struct {
	// Tolerance is the absolute endpoint-matching tolerance used by the
	// chaining stage.
	Tolerance float64 `toml:"tolerance"`
	// FeedRate is the cutting feed rate in mm/min.
	FeedRate int `toml:"feed_rate"`
	// SafeZ is the retract height for rapid moves.
	SafeZ float64 `toml:"safe_z"`
	// CutZ is the cutting depth.
	CutZ float64 `toml:"cut_z"`
	// UCS, when present, defines the working coordinate frame. Without it
	// the working frame is the drawing's reference frame.
	UCS *UCSConfig `toml:"ucs"`
}

// Default returns the standard settings.
func Default() Config {
	return Config{
		Tolerance: geometry.DefaultTolerance,
		FeedRate:  200,
		SafeZ:     200.0,
		CutZ:      0.0,
	}
}

// Load reads a TOML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Tolerance <= 0 {
		return cfg, fmt.Errorf("config %s: tolerance must be positive", path)
	}
	return cfg, nil
}

// WorkingFrame returns the reference-to-working transform, or nil when no
// UCS is configured.
func (c Config) WorkingFrame() *geometry.AffineTransform {
	if c.UCS == nil {
		return nil
	}
	t := c.UCS.Transform()
	return &t
}
