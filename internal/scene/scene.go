// Package scene composes a frame: sky, mountains, the desert behind and in
// front of the horizon, the wanderer and the on-screen controls. Frontends
// supply a Canvas that knows how to put those on their surface.
package scene

import (
	"github.com/vovakirdan/green-island/internal/assets"
	"github.com/vovakirdan/green-island/internal/core"
	"github.com/vovakirdan/green-island/internal/explore"
	"github.com/vovakirdan/green-island/internal/layout"
	"github.com/vovakirdan/green-island/internal/world"
)

// Margin is how many tiles beyond the view are drawn on each side. It must
// exceed the largest sprite so tall plants just outside the view still
// reach into it.
const Margin = 10

// Surface is a flat band of the scene.
type Surface int

const (
	SurfaceSky Surface = iota
	SurfaceGround
)

// Canvas is a drawing target. Rectangles are in window units.
type Canvas interface {
	// Clear wipes the whole window.
	Clear()
	// Clip restricts drawing to r until Unclip.
	Clip(r core.RectF)
	Unclip()
	// FillSurface paints a flat band.
	FillSurface(s Surface, r core.RectF)
	// DrawBackdrop draws the crop of the mountain image (in fractions of its
	// size) stretched into dst.
	DrawBackdrop(dst, crop core.RectF)
	// DrawSprite draws an atlas sprite stretched into dst, mirrored when flipX.
	DrawSprite(s assets.Sprite, dst core.RectF, flipX bool)
	// DrawControl draws one on-screen button.
	DrawControl(b Button)
}

// Draw composes one frame of e's expedition onto c.
func Draw(c Canvas, e *explore.Explorer, d layout.Design, m layout.ScreenMetrics) {
	c.Clear()
	c.Clip(m.FullRect())

	c.FillSurface(SurfaceSky, m.SkyRect())
	c.DrawBackdrop(
		core.RF(m.FullStart, m.FullSize.Sub(core.V(0, m.TileSize.Y))),
		core.RF(core.V(0, d.TilePx.Y/d.FullSizePx.Y), core.V(1, 1-d.TilePx.Y/d.FullSizePx.Y)),
	)

	drawWorld(c, e.World(), e.Pos(), d, m, false)
	c.FillSurface(SurfaceGround, m.GroundRect())
	c.DrawSprite(assets.SpritePlayer, SpriteRect(assets.SpritePlayer, d.GroundCenter, d, m), e.FacingLeft())
	drawWorld(c, e.World(), e.Pos(), d, m, true)

	c.Unclip()
	if e.ControlsVisible() {
		for _, b := range NewControlPad(d, m).Buttons {
			c.DrawControl(b)
		}
	}
}

// drawWorld draws the tiles around pos. The back pass draws rows behind the
// horizon mirrored below it, so only sprites tall enough to rise above the
// ground band show; the front pass draws the rest in place.
func drawWorld(c Canvas, w *world.World, pos core.Point, d layout.Design, m layout.ScreenMetrics, front bool) {
	gc := d.GroundCenter.Point()
	margin := core.Pt(Margin, Margin)
	extent := gc.Add(margin)
	origin := pos.Sub(extent)

	// Iterate only over tiles inside the world; the mapping stays anchored
	// on the player so the view does not slide at the edges.
	size := w.Size()
	start := core.ClampPoint(origin, core.Point{}, size)
	end := core.ClampPoint(pos.Add(extent), core.Point{}, size)
	horizon := pos.Y - gc.Y

	for y := start.Y; y < end.Y; y++ {
		drawY := y
		if front != (y >= horizon) {
			continue
		}
		if !front {
			drawY = pos.Y - (y - pos.Y) - margin.Y
		}
		for x := start.X; x < end.X; x++ {
			s, ok := tileSprite(w, w.Tile(core.Pt(x, y)))
			if !ok {
				continue
			}
			v := core.Pt(x, drawY).Sub(origin).Sub(margin)
			c.DrawSprite(s, SpriteRect(s, v.Vec(), d, m), false)
		}
	}
}

func tileSprite(w *world.World, t world.Tile) (assets.Sprite, bool) {
	if p, ok := t.Plant(); ok {
		return assets.PlantSprite(p), true
	}
	if i, ok := t.Animal(); ok {
		a, err := w.Animal(i)
		if err != nil {
			return 0, false
		}
		return assets.AnimalSprite(a.Kind), true
	}
	return 0, false
}

// SpriteRect returns where sprite s standing on logical ground tile v lands
// in the window. Multi-tile sprites stand on their bottom-middle tile.
func SpriteRect(s assets.Sprite, v core.Vec2, d layout.Design, m layout.ScreenMetrics) core.RectF {
	f := s.Frame()
	origin := m.Tile(v).Sub(f.Anchor().Mul(d.TilePx).Scale(m.Scale))
	return core.RF(origin, f.Size().Mul(d.TilePx).Scale(m.Scale))
}
