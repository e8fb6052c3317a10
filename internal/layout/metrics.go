package layout

import (
	"errors"
	"fmt"
	"math"

	"github.com/vovakirdan/green-island/internal/core"
)

// ErrUnknownMode is returned by ParseMode for unrecognised names.
var ErrUnknownMode = errors.New("layout: unknown mode")

// Mode selects how the view is scaled into the window.
type Mode int

const (
	// PixelPerfect uses the largest whole scale at which the view fits
	// (at least 1) and centres it.
	PixelPerfect Mode = iota
	// Continuous uses the largest fractional scale at which the view fits
	// and centres it.
	Continuous
	// UIMargin scales the UI rectangle to fit the window, centres it, and
	// hangs the view from its top edge.
	UIMargin
)

// String returns the configuration name of the mode.
func (m Mode) String() string {
	switch m {
	case PixelPerfect:
		return "pixel-perfect"
	case Continuous:
		return "continuous"
	case UIMargin:
		return "ui-margin"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a configuration name into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{PixelPerfect, Continuous, UIMargin} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ScreenMetrics is the layout of one window size: every rectangle the scene
// draws into, in window units.
type ScreenMetrics struct {
	Window core.Vec2
	Scale  float64

	FullStart   core.Vec2
	FullSize    core.Vec2
	SkyStart    core.Vec2
	SkySize     core.Vec2
	GroundStart core.Vec2
	GroundSize  core.Vec2
	UIStart     core.Vec2
	UISize      core.Vec2
	TileSize    core.Vec2
	IconSize    float64
}

// Compute lays out design d in a window of the given size.
func Compute(window core.Vec2, d Design, mode Mode) ScreenMetrics {
	var scale float64
	switch mode {
	case PixelPerfect:
		fit := window.Div(d.FullSizePx).Floor()
		scale = math.Max(1, fit.MinElem())
	case Continuous:
		scale = window.Div(d.FullSizePx).MinElem()
	default:
		scale = window.Div(d.UIPx).MinElem()
	}
	scale = math.Max(0, scale)

	m := ScreenMetrics{
		Window:   window,
		Scale:    scale,
		FullSize: d.FullSizePx.Scale(scale),
		UISize:   d.UIPx.Scale(scale),
		TileSize: d.TilePx.Scale(scale),
		IconSize: d.IconPx * scale,
	}
	m.UIStart = window.Sub(m.UISize).Scale(0.5).Floor()
	m.FullStart = window.Sub(m.FullSize).Scale(0.5).Floor()
	if mode == UIMargin {
		m.FullStart.Y = m.UIStart.Y
	}
	m.SkyStart = m.FullStart
	m.SkySize = d.SkySizePx.Scale(scale)
	m.GroundStart = m.FullStart.Add(d.GroundStartPx.Scale(scale))
	m.GroundSize = d.GroundSizePx.Scale(scale)
	return m
}

// Tile returns the window origin of logical ground tile v. The extra row up
// puts a sprite's anchor on the bottom of its tile.
func (m ScreenMetrics) Tile(v core.Vec2) core.Vec2 {
	return m.GroundStart.Add(v.Add(core.V(0, -1)).Mul(m.TileSize))
}

// FullRect returns the whole view.
func (m ScreenMetrics) FullRect() core.RectF {
	return core.RF(m.FullStart, m.FullSize)
}

// SkyRect returns the sky band.
func (m ScreenMetrics) SkyRect() core.RectF {
	return core.RF(m.SkyStart, m.SkySize)
}

// GroundRect returns the ground band.
func (m ScreenMetrics) GroundRect() core.RectF {
	return core.RF(m.GroundStart, m.GroundSize)
}

// UIRect returns the UI rectangle.
func (m ScreenMetrics) UIRect() core.RectF {
	return core.RF(m.UIStart, m.UISize)
}

// Calculator caches the metrics of the last window size.
type Calculator struct {
	design  Design
	mode    Mode
	metrics ScreenMetrics
	valid   bool
}

// NewCalculator returns a calculator for design d in the given mode.
func NewCalculator(d Design, mode Mode) *Calculator {
	return &Calculator{design: d, mode: mode}
}

// Update returns the metrics for window, recomputing only when the window
// size differs from the previous call. scaleChanged is true when the scale
// differs from the previous metrics; frontends rebuild scaled resources then.
func (c *Calculator) Update(window core.Vec2) (m ScreenMetrics, scaleChanged bool) {
	if c.valid && c.metrics.Window == window {
		return c.metrics, false
	}
	prev := c.metrics.Scale
	first := !c.valid
	c.metrics = Compute(window, c.design, c.mode)
	c.valid = true
	return c.metrics, first || c.metrics.Scale != prev
}

// Metrics returns the most recent metrics.
func (c *Calculator) Metrics() ScreenMetrics {
	return c.metrics
}

// Design returns the calculator's design.
func (c *Calculator) Design() Design {
	return c.design
}

// Mode returns the current mode.
func (c *Calculator) Mode() Mode {
	return c.mode
}

// SetMode switches modes; the next Update recomputes.
func (c *Calculator) SetMode(m Mode) {
	if m != c.mode {
		c.mode = m
		c.valid = false
	}
}
