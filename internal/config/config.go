// Package config provides YAML-based configuration loading for the world
// generator, the layout calculator and both frontends.
package config

import (
	"errors"
	"fmt"
)

// Layout modes understood by the layout package.
const (
	ModePixelPerfect = "pixel-perfect"
	ModeContinuous   = "continuous"
	ModeUIMargin     = "ui-margin"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config is the complete game configuration.
type Config struct {
	TickRate int            `yaml:"tick_rate"`
	World    WorldConfig    `yaml:"world"`
	Layout   LayoutConfig   `yaml:"layout"`
	Desktop  DesktopConfig  `yaml:"desktop"`
	Terminal TerminalConfig `yaml:"terminal"`
}

// WorldConfig defines the generated world.
type WorldConfig struct {
	Width   int             `yaml:"width"`
	Height  int             `yaml:"height"`
	Animals int             `yaml:"animals"`
	Plants  PlantThresholds `yaml:"plants"`
}

// PlantThresholds are cumulative upper bounds for a uniform draw in [0, 1).
// A draw below Empty leaves the tile bare; at or above Ocotillo it grows a saguaro.
type PlantThresholds struct {
	Empty      float64 `yaml:"empty"`
	NopalSmall float64 `yaml:"nopal_small"`
	NopalBig   float64 `yaml:"nopal_big"`
	Ocotillo   float64 `yaml:"ocotillo"`
}

// Size is a width/height pair in tiles, pixels or cells depending on context.
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// LayoutConfig holds the logical view shared by every frontend.
type LayoutConfig struct {
	View    Size `yaml:"view"`     // Visible tiles
	SkyRows int  `yaml:"sky_rows"` // Rows of the view above the horizon
}

// SurfaceConfig describes how one frontend maps tiles to its surface units.
type SurfaceConfig struct {
	Mode string    `yaml:"mode"` // pixel-perfect, continuous or ui-margin
	Tile Size      `yaml:"tile"` // Surface units per tile
	UI   Size      `yaml:"ui"`   // Logical UI size in surface units
	Icon int       `yaml:"icon"` // Control button size in surface units
	Pad  PadConfig `yaml:"pad"`  // Control button gaps in surface units
}

// PadConfig holds the gaps around the on-screen direction buttons.
type PadConfig struct {
	Left  Size `yaml:"left"`  // Up/Down column
	Right Size `yaml:"right"` // Left/Right column
}

// DesktopConfig defines the sprite window.
type DesktopConfig struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	Title      string        `yaml:"title"`
	Fullscreen bool          `yaml:"fullscreen"`
	Surface    SurfaceConfig `yaml:"surface"`
}

// TerminalConfig defines the terminal frontend.
type TerminalConfig struct {
	Surface SurfaceConfig `yaml:"surface"`
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.TickRate)
	}
	if err := c.World.Validate(); err != nil {
		return err
	}
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	if err := c.Desktop.Surface.Validate("desktop"); err != nil {
		return err
	}
	return c.Terminal.Surface.Validate("terminal")
}

// Validate checks world dimensions, thresholds and the animal budget.
func (w WorldConfig) Validate() error {
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: world size %dx%d", ErrInvalid, w.Width, w.Height)
	}
	if w.Animals < 0 {
		return fmt.Errorf("%w: negative animal count %d", ErrInvalid, w.Animals)
	}
	if w.Animals > w.Width*w.Height {
		return fmt.Errorf("%w: %d animals do not fit in %d tiles", ErrInvalid, w.Animals, w.Width*w.Height)
	}
	return w.Plants.Validate()
}

// Validate checks that thresholds are within [0, 1] and non-decreasing.
func (p PlantThresholds) Validate() error {
	steps := []struct {
		name string
		v    float64
	}{
		{"empty", p.Empty},
		{"nopal_small", p.NopalSmall},
		{"nopal_big", p.NopalBig},
		{"ocotillo", p.Ocotillo},
	}
	prev := 0.0
	for _, s := range steps {
		if s.v < prev || s.v > 1 {
			return fmt.Errorf("%w: plant threshold %s=%.3f out of order", ErrInvalid, s.name, s.v)
		}
		prev = s.v
	}
	return nil
}

// Validate checks the logical view.
func (l LayoutConfig) Validate() error {
	if l.View.W <= 0 || l.View.H <= 0 {
		return fmt.Errorf("%w: view %dx%d", ErrInvalid, l.View.W, l.View.H)
	}
	if l.SkyRows < 0 || l.SkyRows >= l.View.H {
		return fmt.Errorf("%w: sky_rows %d must leave ground in a %d row view", ErrInvalid, l.SkyRows, l.View.H)
	}
	return nil
}

// Validate checks a frontend surface.
func (s SurfaceConfig) Validate(name string) error {
	switch s.Mode {
	case ModePixelPerfect, ModeContinuous, ModeUIMargin:
	default:
		return fmt.Errorf("%w: %s mode %q", ErrInvalid, name, s.Mode)
	}
	if s.Tile.W <= 0 || s.Tile.H <= 0 {
		return fmt.Errorf("%w: %s tile %dx%d", ErrInvalid, name, s.Tile.W, s.Tile.H)
	}
	if s.UI.W <= 0 || s.UI.H <= 0 {
		return fmt.Errorf("%w: %s ui %dx%d", ErrInvalid, name, s.UI.W, s.UI.H)
	}
	if s.Icon <= 0 {
		return fmt.Errorf("%w: %s icon %d", ErrInvalid, name, s.Icon)
	}
	for _, g := range []Size{s.Pad.Left, s.Pad.Right} {
		if g.W < 0 || g.H < 0 {
			return fmt.Errorf("%w: %s pad gap %dx%d", ErrInvalid, name, g.W, g.H)
		}
	}
	return nil
}
