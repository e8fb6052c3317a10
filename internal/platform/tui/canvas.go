package tui

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/green-island/internal/assets"
	"github.com/vovakirdan/green-island/internal/core"
	"github.com/vovakirdan/green-island/internal/scene"
)

// halfBlock is the glyph every image cell is drawn with: the foreground
// colors the top half of the cell, the background the bottom half.
const halfBlock = '▀'

// maxBlocks bounds the sampled block cache; it is dropped whole when full.
const maxBlocks = 512

var arrowGlyphs = map[core.Action]rune{
	core.ActionUp:    '▲',
	core.ActionDown:  '▼',
	core.ActionLeft:  '◀',
	core.ActionRight: '▶',
}

var (
	controlBg = core.ColorGray
	controlFg = core.ColorBrightWhite
)

// halfCell is one sampled terminal cell. A half without enough opaque
// pixels behind it is transparent.
type halfCell struct {
	top, bottom       core.Color
	hasTop, hasBottom bool
}

type imageID int

const (
	imageAtlas imageID = iota
	imageMountains
)

type blockKey struct {
	img   imageID
	src   image.Rectangle
	w, h  int
	flipX bool
}

// ScreenCanvas draws the scene onto a core.Screen, one cell per window unit.
type ScreenCanvas struct {
	screen *core.Screen
	art    *assets.Assets
	blocks map[blockKey][]halfCell
}

var _ scene.Canvas = (*ScreenCanvas)(nil)

// NewScreenCanvas creates a canvas drawing art onto screen.
func NewScreenCanvas(screen *core.Screen, art *assets.Assets) *ScreenCanvas {
	return &ScreenCanvas{
		screen: screen,
		art:    art,
		blocks: make(map[blockKey][]halfCell),
	}
}

// Screen returns the target screen.
func (c *ScreenCanvas) Screen() *core.Screen {
	return c.screen
}

// Clear implements scene.Canvas.
func (c *ScreenCanvas) Clear() {
	c.screen.Clear()
}

// Clip implements scene.Canvas.
func (c *ScreenCanvas) Clip(r core.RectF) {
	c.screen.SetClip(r.Round())
}

// Unclip implements scene.Canvas.
func (c *ScreenCanvas) Unclip() {
	c.screen.ResetClip()
}

// FillSurface implements scene.Canvas.
func (c *ScreenCanvas) FillSurface(s scene.Surface, r core.RectF) {
	fill := assets.Sky
	if s == scene.SurfaceGround {
		fill = assets.Ground
	}
	c.screen.Paint(r.Round(), rgb(fill))
}

// DrawBackdrop implements scene.Canvas.
func (c *ScreenCanvas) DrawBackdrop(dst, crop core.RectF) {
	b := c.art.Mountains.Bounds()
	size := core.V(float64(b.Dx()), float64(b.Dy()))
	lo := crop.Min.Mul(size)
	hi := crop.Max().Mul(size)
	src := image.Rect(
		b.Min.X+int(math.Round(lo.X)), b.Min.Y+int(math.Round(lo.Y)),
		b.Min.X+int(math.Round(hi.X)), b.Min.Y+int(math.Round(hi.Y)),
	)
	c.drawImage(imageMountains, c.art.Mountains, src, dst.Round(), false)
}

// DrawSprite implements scene.Canvas.
func (c *ScreenCanvas) DrawSprite(s assets.Sprite, dst core.RectF, flipX bool) {
	c.drawImage(imageAtlas, c.art.Atlas, s.Frame().Pixels(), dst.Round(), flipX)
}

// DrawControl implements scene.Canvas.
func (c *ScreenCanvas) DrawControl(b scene.Button) {
	r := b.Rect.Round()
	if r.Empty() {
		return
	}
	c.screen.Paint(r, controlBg)
	if glyph, ok := arrowGlyphs[b.Action]; ok {
		c.screen.Set(r.X+r.W/2, r.Y+r.H/2, glyph, controlFg)
	}
}

func (c *ScreenCanvas) drawImage(id imageID, img image.Image, src image.Rectangle, dst core.Rect, flipX bool) {
	if dst.Empty() || src.Empty() {
		return
	}
	block := c.block(blockKey{img: id, src: src, w: dst.W, h: dst.H, flipX: flipX}, img)
	for y := 0; y < dst.H; y++ {
		for x := 0; x < dst.W; x++ {
			c.put(dst.X+x, dst.Y+y, block[y*dst.W+x])
		}
	}
}

func (c *ScreenCanvas) block(k blockKey, img image.Image) []halfCell {
	if b, ok := c.blocks[k]; ok {
		return b
	}
	if len(c.blocks) >= maxBlocks {
		clear(c.blocks)
	}
	b := sampleBlock(img, k.src, k.w, k.h, k.flipX)
	c.blocks[k] = b
	return b
}

// put merges h over whatever the cell already shows.
func (c *ScreenCanvas) put(x, y int, h halfCell) {
	if !h.hasTop && !h.hasBottom {
		return
	}
	under := c.screen.GetCell(x, y)
	top, bottom := under.Bg, under.Bg
	if under.Rune == halfBlock {
		top = under.Color
	}
	if h.hasTop {
		top = h.top
	}
	if h.hasBottom {
		bottom = h.bottom
	}
	c.screen.SetCell(x, y, core.Cell{Rune: halfBlock, Color: top, Bg: bottom})
}

// sampleBlock scales the src rectangle of img down (or up) to w*h cells,
// each holding two vertically stacked samples.
func sampleBlock(img image.Image, src image.Rectangle, w, h int, flipX bool) []halfCell {
	out := make([]halfCell, w*h)
	sw := float64(src.Dx()) / float64(w)
	sh := float64(src.Dy()) / float64(2*h)

	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			col := cx
			if flipX {
				col = w - 1 - cx
			}
			x0 := float64(src.Min.X) + float64(col)*sw
			var hc halfCell
			hc.top, hc.hasTop = sampleArea(img, src, x0, float64(src.Min.Y)+float64(2*cy)*sh, sw, sh)
			hc.bottom, hc.hasBottom = sampleArea(img, src, x0, float64(src.Min.Y)+float64(2*cy+1)*sh, sw, sh)
			out[cy*w+cx] = hc
		}
	}
	return out
}

// sampleArea averages the pixels under a float rectangle. It reports false
// when fewer than half of them are opaque.
func sampleArea(img image.Image, bounds image.Rectangle, x, y, w, h float64) (core.Color, bool) {
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	x1, y1 := int(math.Ceil(x+w)), int(math.Ceil(y+h))
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)
	area := image.Rect(x0, y0, x1, y1).Intersect(bounds)
	if area.Empty() {
		return core.ColorDefault, false
	}

	var r, g, b, n uint64
	for py := area.Min.Y; py < area.Max.Y; py++ {
		for px := area.Min.X; px < area.Max.X; px++ {
			pr, pg, pb, pa := img.At(px, py).RGBA()
			if pa < 0x8000 {
				continue
			}
			// Un-premultiply so half-transparent edges keep their hue.
			r += uint64(pr) * 0xffff / uint64(pa)
			g += uint64(pg) * 0xffff / uint64(pa)
			b += uint64(pb) * 0xffff / uint64(pa)
			n++
		}
	}
	total := uint64(area.Dx() * area.Dy())
	if n == 0 || 2*n < total {
		return core.ColorDefault, false
	}
	return core.RGB(uint8(r/n>>8), uint8(g/n>>8), uint8(b/n>>8)), true
}

func rgb(c color.Color) core.Color {
	r, g, b, _ := c.RGBA()
	return core.RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
