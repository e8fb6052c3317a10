package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorGreen)
	if cell := s.GetCell(5, 5); cell.Rune != 'X' || cell.Color != ColorGreen {
		t.Errorf("GetCell(5, 5) = %+v, expected green 'X'", cell)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenClip(t *testing.T) {
	s := NewScreen(10, 4)
	s.SetClip(NewRect(2, 1, 3, 2))
	s.FillRect(NewRect(0, 0, 10, 4), '#', ColorDefault)

	expected := []string{
		"          ",
		"  ###     ",
		"  ###     ",
		"          ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}

	s.ResetClip()
	s.Set(0, 0, '@', ColorDefault)
	if s.Get(0, 0) != '@' {
		t.Error("ResetClip() should allow writes anywhere on screen")
	}
}

func TestScreenClearResetsClip(t *testing.T) {
	s := NewScreen(5, 5)
	s.SetClip(NewRect(0, 0, 1, 1))
	s.Clear()
	s.Set(4, 4, 'Z', ColorDefault)
	if s.Get(4, 4) != 'Z' {
		t.Error("Clear() should reset the clip rectangle")
	}
}

func TestScreenPaintKeepsBackground(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetClip(NewRect(1, 0, 4, 3))
	s.Paint(NewRect(0, 1, 6, 1), ColorSand)
	s.Set(2, 1, '#', ColorBrown)

	if got := s.GetCell(0, 1); got.Bg != ColorDefault {
		t.Errorf("cell outside clip painted: %+v", got)
	}
	if got := s.GetCell(2, 1); got.Rune != '#' || got.Color != ColorBrown || got.Bg != ColorSand {
		t.Errorf("GetCell(2, 1) = %+v, expected brown '#' on sand", got)
	}
	if got := s.GetCell(4, 1); got.Rune != ' ' || got.Bg != ColorSand {
		t.Errorf("GetCell(4, 1) = %+v, expected blank sand", got)
	}

	s.SetCell(3, 2, Cell{Rune: 'x', Color: ColorRed, Bg: ColorBlue})
	if got := s.GetCell(3, 2); got != (Cell{Rune: 'x', Color: ColorRed, Bg: ColorBlue}) {
		t.Errorf("SetCell() stored %+v", got)
	}
}

func TestRGBColor(t *testing.T) {
	c := RGB(0xa5, 0xc7, 0xed)
	if !c.IsRGB() {
		t.Fatal("RGB() should report IsRGB")
	}
	if r, g, b := c.Components(); r != 0xa5 || g != 0xc7 || b != 0xed {
		t.Errorf("Components() = %x %x %x", r, g, b)
	}
	if c.Hex() != "#a5c7ed" {
		t.Errorf("Hex() = %q", c.Hex())
	}
	if ColorSky.IsRGB() || RGB(0, 0, 0) == ColorDefault {
		t.Error("palette and RGB colors must not overlap")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(8, 1)
	s.DrawText(5, 0, "hello", ColorWhite)
	if got := s.Row(0); got != "     hel" {
		t.Errorf("Row(0) = %q, expected text clipped at the edge", got)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("Resize() = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	lines := strings.Split(s.String(), "\n")
	if len(lines) != 3 || len(lines[0]) != 6 {
		t.Errorf("String() after resize has wrong shape: %q", s.String())
	}
}
