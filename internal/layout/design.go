// Package layout maps the fixed logical view of the desert onto a window of
// any size.
package layout

import (
	"github.com/vovakirdan/green-island/internal/config"
	"github.com/vovakirdan/green-island/internal/core"
)

// Design holds the design-time constants of one frontend surface. Sizes
// without a Px suffix are in tiles, the rest in surface units (pixels for
// the desktop, cells for the terminal).
type Design struct {
	FullSize     core.Vec2
	SkySize      core.Vec2
	GroundSize   core.Vec2
	GroundStart  core.Vec2
	GroundCenter core.Vec2

	TilePx        core.Vec2
	FullSizePx    core.Vec2
	SkySizePx     core.Vec2
	GroundSizePx  core.Vec2
	GroundStartPx core.Vec2
	UIPx          core.Vec2
	IconPx        float64

	PadGapLeft  core.Vec2
	PadGapRight core.Vec2
}

// NewDesign derives a design from a view of view tiles, the top skyRows of
// which are sky, drawn on a surface described by s.
func NewDesign(view config.Size, skyRows int, s config.SurfaceConfig) Design {
	full := core.V(float64(view.W), float64(view.H))
	sky := core.V(full.X, float64(skyRows))
	ground := core.V(full.X, full.Y-sky.Y)
	groundStart := core.V(0, sky.Y)
	tilePx := vec(s.Tile)

	return Design{
		FullSize:     full,
		SkySize:      sky,
		GroundSize:   ground,
		GroundStart:  groundStart,
		GroundCenter: ground.Scale(0.5).Floor(),

		TilePx:        tilePx,
		FullSizePx:    full.Mul(tilePx),
		SkySizePx:     sky.Mul(tilePx),
		GroundSizePx:  ground.Mul(tilePx),
		GroundStartPx: groundStart.Mul(tilePx),
		UIPx:          vec(s.UI),
		IconPx:        float64(s.Icon),

		PadGapLeft:  vec(s.Pad.Left),
		PadGapRight: vec(s.Pad.Right),
	}
}

// DesignFromConfig builds the design for one frontend surface.
func DesignFromConfig(l config.LayoutConfig, s config.SurfaceConfig) Design {
	return NewDesign(l.View, l.SkyRows, s)
}

// DefaultDesign returns the desktop design: a 15x15 tile view with four sky
// rows, 10 px tiles and a 320x180 UI.
func DefaultDesign() Design {
	cfg := config.Default()
	return DesignFromConfig(cfg.Layout, cfg.Desktop.Surface)
}

// GroundCenterPx returns the centre ground tile's offset from the top of the view.
func (d Design) GroundCenterPx() core.Vec2 {
	return d.GroundCenter.Mul(d.TilePx).Add(d.GroundStartPx)
}

func vec(s config.Size) core.Vec2 {
	return core.V(float64(s.W), float64(s.H))
}
