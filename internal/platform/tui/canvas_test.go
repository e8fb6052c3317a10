package tui

import (
	"image"
	"image/color"
	"testing"

	"github.com/vovakirdan/green-island/internal/assets"
	"github.com/vovakirdan/green-island/internal/core"
	"github.com/vovakirdan/green-island/internal/scene"
)

var (
	red   = color.RGBA{R: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	blue  = color.RGBA{B: 0xff, A: 0xff}
)

// quadrants returns a 4x4 image: red top-left, green top-right, blue
// bottom-left, transparent bottom-right.
func quadrants() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			switch {
			case x < 2 && y < 2:
				img.Set(x, y, red)
			case y < 2:
				img.Set(x, y, green)
			case x < 2:
				img.Set(x, y, blue)
			}
		}
	}
	return img
}

func TestSampleBlock(t *testing.T) {
	img := quadrants()
	block := sampleBlock(img, img.Bounds(), 2, 1, false)

	left, right := block[0], block[1]
	if !left.hasTop || left.top != core.RGB(0xff, 0, 0) {
		t.Errorf("left top = %v/%v, expected red", left.top, left.hasTop)
	}
	if !left.hasBottom || left.bottom != core.RGB(0, 0, 0xff) {
		t.Errorf("left bottom = %v/%v, expected blue", left.bottom, left.hasBottom)
	}
	if !right.hasTop || right.top != core.RGB(0, 0xff, 0) {
		t.Errorf("right top = %v/%v, expected green", right.top, right.hasTop)
	}
	if right.hasBottom {
		t.Error("transparent quadrant should not be drawn")
	}
}

func TestSampleBlockFlip(t *testing.T) {
	img := quadrants()
	block := sampleBlock(img, img.Bounds(), 2, 1, true)

	if block[0].top != core.RGB(0, 0xff, 0) || block[1].top != core.RGB(0xff, 0, 0) {
		t.Errorf("flipped tops = %v, %v; expected green then red", block[0].top, block[1].top)
	}
	if block[0].hasBottom {
		t.Error("flipped left bottom should be the transparent quadrant")
	}
}

func TestSampleBlockUpscale(t *testing.T) {
	img := quadrants()
	// 8x4 cells from a 4x4 image: each source pixel covers two cells and
	// one cell half.
	block := sampleBlock(img, img.Bounds(), 8, 4, false)
	if len(block) != 32 {
		t.Fatalf("block has %d cells, expected 32", len(block))
	}
	if block[0].top != core.RGB(0xff, 0, 0) || block[7].top != core.RGB(0, 0xff, 0) {
		t.Errorf("corner cells = %v, %v; expected red and green", block[0].top, block[7].top)
	}
	if last := block[31]; last.hasTop || last.hasBottom {
		t.Error("bottom-right cell should be transparent")
	}
}

func TestCanvasPutMergesHalves(t *testing.T) {
	screen := core.NewScreen(3, 1)
	c := NewScreenCanvas(screen, &assets.Assets{})
	sky := core.RGB(1, 2, 3)
	screen.Paint(core.NewRect(0, 0, 3, 1), sky)

	c.put(0, 0, halfCell{top: core.RGB(9, 9, 9), hasTop: true})
	got := screen.GetCell(0, 0)
	if got.Rune != halfBlock || got.Color != core.RGB(9, 9, 9) || got.Bg != sky {
		t.Errorf("top-only cell = %+v, expected the sky kept below", got)
	}

	c.put(0, 0, halfCell{bottom: core.RGB(7, 7, 7), hasBottom: true})
	got = screen.GetCell(0, 0)
	if got.Color != core.RGB(9, 9, 9) || got.Bg != core.RGB(7, 7, 7) {
		t.Errorf("merged cell = %+v, expected earlier top kept", got)
	}

	c.put(1, 0, halfCell{})
	if got := screen.GetCell(1, 0); got.Rune != ' ' || got.Bg != sky {
		t.Errorf("transparent put changed the cell: %+v", got)
	}
}

func TestCanvasDrawSprite(t *testing.T) {
	art, err := assets.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	screen := core.NewScreen(10, 10)
	c := NewScreenCanvas(screen, art)

	c.Clip(core.RF(core.V(0, 0), core.V(5, 10)))
	c.DrawSprite(assets.SpriteSaguaro, core.RF(core.V(2, 2), core.V(6, 5)), false)
	c.Unclip()

	drawn := 0
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if screen.Get(x, y) != halfBlock {
				continue
			}
			drawn++
			if x < 2 || x >= 5 || y < 2 || y >= 7 {
				t.Errorf("sprite drawn at (%d,%d) outside its clipped rect", x, y)
			}
		}
	}
	if drawn == 0 {
		t.Error("saguaro drew nothing")
	}
	if len(c.blocks) != 1 {
		t.Errorf("expected one cached block, got %d", len(c.blocks))
	}

	c.DrawSprite(assets.SpriteSaguaro, core.RF(core.V(2, 2), core.V(6, 5)), false)
	if len(c.blocks) != 1 {
		t.Errorf("redraw added a block: %d cached", len(c.blocks))
	}
}

func TestCanvasDrawBackdrop(t *testing.T) {
	art, err := assets.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	screen := core.NewScreen(12, 6)
	c := NewScreenCanvas(screen, art)

	c.DrawBackdrop(core.RF(core.V(0, 0), core.V(12, 6)), core.RF(core.V(0, 0.1), core.V(1, 0.9)))
	drawn := 0
	for y := 0; y < 6; y++ {
		for x := 0; x < 12; x++ {
			if screen.Get(x, y) == halfBlock {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Error("backdrop drew nothing")
	}
}

func TestCanvasFillSurfaceAndControl(t *testing.T) {
	screen := core.NewScreen(8, 4)
	c := NewScreenCanvas(screen, &assets.Assets{})

	c.FillSurface(scene.SurfaceSky, core.RF(core.V(0, 0), core.V(8, 2)))
	c.FillSurface(scene.SurfaceGround, core.RF(core.V(0, 2), core.V(8, 2)))
	if got := screen.GetCell(0, 0).Bg; got != rgb(assets.Sky) {
		t.Errorf("sky bg = %v, expected %v", got, rgb(assets.Sky))
	}
	if got := screen.GetCell(7, 3).Bg; got != rgb(assets.Ground) {
		t.Errorf("ground bg = %v, expected %v", got, rgb(assets.Ground))
	}

	c.DrawControl(scene.Button{Rect: core.RF(core.V(1, 1), core.V(3, 3)), Action: core.ActionLeft})
	if got := screen.GetCell(2, 2); got.Rune != '◀' || got.Bg != controlBg {
		t.Errorf("button center = %+v, expected left arrow on the button", got)
	}
	if got := screen.GetCell(1, 1); got.Rune != ' ' || got.Bg != controlBg {
		t.Errorf("button corner = %+v, expected blank button cell", got)
	}
}
