// Package assets embeds the sprite atlas and the mountain backdrop and
// describes where each sprite lives in the atlas.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/vovakirdan/green-island/internal/core"
	"github.com/vovakirdan/green-island/internal/world"
)

//go:embed images/atlas.png
var atlasPNG []byte

//go:embed images/mountains.png
var mountainsPNG []byte

// TilePx is the size of one atlas tile in pixels.
const TilePx = 10

// Palette used for the flat bands of the scene.
var (
	Background = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	Sky        = color.RGBA{R: 0xa5, G: 0xc7, B: 0xed, A: 0xff}
	Ground     = color.RGBA{R: 0xc5, G: 0xad, B: 0x95, A: 0xff}
)

// Sprite identifies one image in the atlas.
type Sprite uint8

const (
	SpriteNopalBig Sprite = iota
	SpriteNopalSmall
	SpriteOcotillo
	SpriteSaguaro
	SpriteBead
	SpriteBob
	SpriteCoyote
	SpriteJack
	SpriteJavelina
	SpriteRattler
	SpriteRunner
	SpriteTurkey
	SpritePlayer

	SpriteCount = int(SpritePlayer) + 1
)

var spriteNames = [SpriteCount]string{
	"nopal_big", "nopal_small", "ocotillo", "saguaro",
	"bead", "bob", "coyote", "jack", "javelina", "rattler", "runner", "turkey",
	"player",
}

// String returns the sprite name.
func (s Sprite) String() string {
	if int(s) < SpriteCount {
		return spriteNames[s]
	}
	return fmt.Sprintf("sprite(%d)", s)
}

// Frame is a sprite's rectangle in the atlas, in tiles.
type Frame struct {
	X, Y int
	W, H int
}

// Size returns the frame size in tiles.
func (f Frame) Size() core.Vec2 {
	return core.V(float64(f.W), float64(f.H))
}

// Anchor returns the offset in tiles from the frame's top-left tile to the
// tile that stands on the ground: bottom row, middle column.
func (f Frame) Anchor() core.Vec2 {
	return core.V(float64(f.W-1)*0.5, float64(f.H-1)).Floor()
}

// Pixels returns the frame's rectangle in atlas pixels.
func (f Frame) Pixels() image.Rectangle {
	return image.Rect(f.X*TilePx, f.Y*TilePx, (f.X+f.W)*TilePx, (f.Y+f.H)*TilePx)
}

var frames = [SpriteCount]Frame{
	SpriteNopalBig:   {X: 6, Y: 7, W: 3, H: 2},
	SpriteNopalSmall: {X: 4, Y: 7, W: 1, H: 1},
	SpriteOcotillo:   {X: 11, Y: 6, W: 3, H: 3},
	SpriteSaguaro:    {X: 1, Y: 4, W: 3, H: 5},
	SpriteBead:       {X: 8, Y: 10, W: 1, H: 1},
	SpriteBob:        {X: 6, Y: 9, W: 1, H: 1},
	SpriteCoyote:     {X: 6, Y: 10, W: 1, H: 1},
	SpriteJack:       {X: 7, Y: 9, W: 1, H: 1},
	SpriteJavelina:   {X: 5, Y: 10, W: 1, H: 1},
	SpriteRattler:    {X: 7, Y: 10, W: 1, H: 1},
	SpriteRunner:     {X: 8, Y: 9, W: 1, H: 1},
	SpriteTurkey:     {X: 5, Y: 9, W: 1, H: 1},
	SpritePlayer:     {X: 8, Y: 9, W: 1, H: 1},
}

// Frame returns the sprite's atlas frame.
func (s Sprite) Frame() Frame {
	return frames[s]
}

// PlantSprite returns the sprite for a plant kind.
func PlantSprite(p world.Plant) Sprite {
	switch p {
	case world.NopalBig:
		return SpriteNopalBig
	case world.NopalSmall:
		return SpriteNopalSmall
	case world.Ocotillo:
		return SpriteOcotillo
	default:
		return SpriteSaguaro
	}
}

// AnimalSprite returns the sprite for an animal kind.
func AnimalSprite(k world.AnimalKind) Sprite {
	return SpriteBead + Sprite(k)
}

// Assets holds the decoded images.
type Assets struct {
	Atlas     image.Image
	Mountains image.Image
}

// Load decodes the embedded images.
func Load() (*Assets, error) {
	atlas, err := decode("atlas", atlasPNG)
	if err != nil {
		return nil, err
	}
	mountains, err := decode("mountains", mountainsPNG)
	if err != nil {
		return nil, err
	}
	return &Assets{Atlas: atlas, Mountains: mountains}, nil
}

func decode(name string, data []byte) (image.Image, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}
