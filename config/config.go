// Package config loads runtime settings from TOML over compiled defaults
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/parameter"
	"github.com/lixenwraith/mars-base-one/physics"
	"github.com/lixenwraith/mars-base-one/vmath"
	"github.com/lixenwraith/mars-base-one/worldgen"
)

var ErrInvalidConfig = errors.New("config: invalid")

// Config is the full runtime configuration
type Config struct {
	Title string      `toml:"title"`
	Sim   SimConfig   `toml:"sim"`
	World WorldConfig `toml:"world"`
	Index IndexConfig `toml:"index"`
	Audio AudioConfig `toml:"audio"`
}

type SimConfig struct {
	TickRate         int     `toml:"tick_rate"`
	GravityPerSecond float64 `toml:"gravity_per_second"`
	TerminalVelocity float64 `toml:"terminal_velocity"`
	StepScale        float64 `toml:"step_scale"`
	MaxCatchUpTicks  int     `toml:"max_catch_up_ticks"`
}

type WorldConfig struct {
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	TileSize float64 `toml:"tile_size"`
	Cavern   bool    `toml:"cavern"`
	Braiding float64 `toml:"braiding"`
	// Seed 0 draws from entropy
	Seed uint64 `toml:"seed"`
}

type IndexConfig struct {
	ExtentX      float64 `toml:"extent_x"`
	ExtentY      float64 `toml:"extent_y"`
	MaxDepth     int     `toml:"max_depth"`
	LeafCapacity int     `toml:"leaf_capacity"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
	// Volume is a beep effects.Volume exponent, base 2
	Volume float64 `toml:"volume"`
}

// Default returns the compiled defaults
func Default() Config {
	return Config{
		Title: "Mars Base One",
		Sim: SimConfig{
			TickRate:         parameter.TickRate,
			GravityPerSecond: parameter.GravityPerSecond,
			TerminalVelocity: parameter.TerminalVelocity,
			StepScale:        parameter.StepScale,
			MaxCatchUpTicks:  parameter.MaxCatchUpTicks,
		},
		World: WorldConfig{
			Width:    parameter.WorldWidth,
			Height:   parameter.WorldHeight,
			TileSize: parameter.TileSize,
			Braiding: parameter.CavernBraiding,
		},
		Index: IndexConfig{
			ExtentX:      parameter.QuadExtentX,
			ExtentY:      parameter.QuadExtentY,
			MaxDepth:     parameter.QuadMaxDepth,
			LeafCapacity: parameter.QuadLeafCapacity,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.CueVolume,
		},
	}
}

// Load decodes the TOML file at path over Default and validates the result
// Unknown keys are rejected
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes TOML text over Default and validates the result
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown keys %s: %w", strings.Join(names, ", "), ErrInvalidConfig)
}

// Validate reports the first out-of-range field
func (c Config) Validate() error {
	switch {
	case c.Sim.TickRate <= 0:
		return fmt.Errorf("sim.tick_rate %d must be positive: %w", c.Sim.TickRate, ErrInvalidConfig)
	case c.Sim.GravityPerSecond < 0:
		return fmt.Errorf("sim.gravity_per_second %v must be non-negative: %w", c.Sim.GravityPerSecond, ErrInvalidConfig)
	case c.Sim.TerminalVelocity <= 0:
		return fmt.Errorf("sim.terminal_velocity %v must be positive: %w", c.Sim.TerminalVelocity, ErrInvalidConfig)
	case c.Sim.StepScale <= 0:
		return fmt.Errorf("sim.step_scale %v must be positive: %w", c.Sim.StepScale, ErrInvalidConfig)
	case c.Sim.MaxCatchUpTicks < 1:
		return fmt.Errorf("sim.max_catch_up_ticks %d must be at least 1: %w", c.Sim.MaxCatchUpTicks, ErrInvalidConfig)
	case c.World.Width < parameter.MinGridSize || c.World.Height < parameter.MinGridSize:
		return fmt.Errorf("world size %dx%d below %d: %w", c.World.Width, c.World.Height, parameter.MinGridSize, ErrInvalidConfig)
	case c.World.TileSize <= 0:
		return fmt.Errorf("world.tile_size %v must be positive: %w", c.World.TileSize, ErrInvalidConfig)
	case c.World.Braiding < 0 || c.World.Braiding > 1:
		return fmt.Errorf("world.braiding %v outside [0,1]: %w", c.World.Braiding, ErrInvalidConfig)
	case c.Index.MaxDepth < 0:
		return fmt.Errorf("index.max_depth %d must be non-negative: %w", c.Index.MaxDepth, ErrInvalidConfig)
	case c.Index.LeafCapacity < 1:
		return fmt.Errorf("index.leaf_capacity %d must be at least 1: %w", c.Index.LeafCapacity, ErrInvalidConfig)
	}
	// Non-positive extents are left to spatial.Build so the sentinel stays specific
	if c.Index.ExtentX > 0 && c.Index.ExtentY > 0 {
		world := worldgen.SizeBounds(c.World.Width, c.World.Height, c.World.TileSize)
		root := vmath.RectFromCenter(mgl64.Vec2{}, c.IndexExtent())
		if !root.ContainsRect(world) {
			return fmt.Errorf("world %v exceeds index extent %v: %w", world, c.IndexExtent(), ErrInvalidConfig)
		}
	}
	return nil
}

// Physics derives the per-tick integration constants
func (c Config) Physics() physics.Config {
	return physics.NewConfig(c.Sim.GravityPerSecond, c.Sim.TickRate, c.Sim.TerminalVelocity, c.Sim.StepScale)
}

// TickInterval is the wall-clock duration of one tick
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Sim.TickRate)
}

// IndexExtent is the quad-tree root size
func (c Config) IndexExtent() mgl64.Vec2 {
	return mgl64.Vec2{c.Index.ExtentX, c.Index.ExtentY}
}
