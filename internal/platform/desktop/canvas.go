package desktop

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/green-island/internal/assets"
	"github.com/vovakirdan/green-island/internal/core"
	"github.com/vovakirdan/green-island/internal/scene"
)

var (
	controlFill   = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xa0}
	controlStroke = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xe0}
)

// arrowDirs points each button's chevron.
var arrowDirs = map[core.Action]core.Vec2{
	core.ActionUp:    core.V(0, -1),
	core.ActionDown:  core.V(0, 1),
	core.ActionLeft:  core.V(-1, 0),
	core.ActionRight: core.V(1, 0),
}

// canvas draws the scene onto an ebiten image.
type canvas struct {
	target    *ebiten.Image
	dst       *ebiten.Image
	mountains *ebiten.Image
	sprites   [assets.SpriteCount]*ebiten.Image
}

var _ scene.Canvas = (*canvas)(nil)

func newCanvas(art *assets.Assets) *canvas {
	atlas := ebiten.NewImageFromImage(art.Atlas)
	c := &canvas{mountains: ebiten.NewImageFromImage(art.Mountains)}
	for s := range c.sprites {
		c.sprites[s] = atlas.SubImage(assets.Sprite(s).Frame().Pixels()).(*ebiten.Image)
	}
	return c
}

// begin points the canvas at the frame being drawn.
func (c *canvas) begin(screen *ebiten.Image) {
	c.target = screen
	c.dst = screen
}

func (c *canvas) Clear() {
	c.target.Fill(assets.Background)
}

func (c *canvas) Clip(r core.RectF) {
	c.dst = c.target.SubImage(toImageRect(r.Round())).(*ebiten.Image)
}

func (c *canvas) Unclip() {
	c.dst = c.target
}

func (c *canvas) FillSurface(s scene.Surface, r core.RectF) {
	fill := assets.Sky
	if s == scene.SurfaceGround {
		fill = assets.Ground
	}
	vector.DrawFilledRect(c.dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Size.X), float32(r.Size.Y), fill, false)
}

func (c *canvas) DrawBackdrop(dst, crop core.RectF) {
	b := c.mountains.Bounds()
	size := core.V(float64(b.Dx()), float64(b.Dy()))
	lo := crop.Min.Mul(size).Point()
	hi := crop.Max().Mul(size).Point()
	src := c.mountains.SubImage(image.Rect(lo.X, lo.Y, hi.X, hi.Y)).(*ebiten.Image)
	c.drawStretched(src, dst, false)
}

func (c *canvas) DrawSprite(s assets.Sprite, dst core.RectF, flipX bool) {
	c.drawStretched(c.sprites[s], dst, flipX)
}

func (c *canvas) DrawControl(b scene.Button) {
	r := b.Rect
	vector.DrawFilledRect(c.dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Size.X), float32(r.Size.Y), controlFill, false)

	pts, ok := chevron(b)
	if !ok {
		return
	}
	width := float32(max(1, r.Size.X/10))
	vector.StrokeLine(c.dst, float32(pts[0].X), float32(pts[0].Y), float32(pts[1].X), float32(pts[1].Y), width, controlStroke, true)
	vector.StrokeLine(c.dst, float32(pts[1].X), float32(pts[1].Y), float32(pts[2].X), float32(pts[2].Y), width, controlStroke, true)
}

// drawStretched draws img scaled into dst, mirrored when flipX.
func (c *canvas) drawStretched(img *ebiten.Image, dst core.RectF, flipX bool) {
	b := img.Bounds()
	if b.Empty() || dst.Size.X <= 0 || dst.Size.Y <= 0 {
		return
	}
	w, h := float64(b.Dx()), float64(b.Dy())

	op := &ebiten.DrawImageOptions{}
	if flipX {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(w, 0)
	}
	op.GeoM.Scale(dst.Size.X/w, dst.Size.Y/h)
	op.GeoM.Translate(dst.Min.X, dst.Min.Y)
	op.Filter = ebiten.FilterNearest
	c.dst.DrawImage(img, op)
}

// chevron returns the three points of the arrow on button b: two arms
// meeting at a tip in the button's direction.
func chevron(b scene.Button) ([3]core.Vec2, bool) {
	dir, ok := arrowDirs[b.Action]
	if !ok {
		return [3]core.Vec2{}, false
	}
	center := b.Rect.Min.Add(b.Rect.Size.Scale(0.5))
	arm := b.Rect.Size.MinElem() * 0.25
	side := core.V(-dir.Y, dir.X).Scale(arm)
	tip := center.Add(dir.Scale(arm * 0.5))
	back := center.Sub(dir.Scale(arm * 0.5))
	return [3]core.Vec2{back.Add(side), tip, back.Sub(side)}, true
}

func toImageRect(r core.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}
