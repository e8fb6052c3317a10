package explore

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/green-island/internal/core"
	"github.com/vovakirdan/green-island/internal/layout"
	"github.com/vovakirdan/green-island/internal/world"
)

var bare = world.PlantTable{Empty: 1, NopalSmall: 1, NopalBig: 1, Ocotillo: 1}

// newBareWorld returns a plant-free world with animals standing on targets.
func newBareWorld(t *testing.T, w, h int, targets ...core.Point) *world.World {
	t.Helper()
	wld, err := world.New(world.Options{Width: w, Height: h, Animals: len(targets), Plants: bare}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range targets {
		if j, ok := wld.Tile(p).Animal(); ok && j != i {
			if err := wld.MoveAnimal(j, freeTile(t, wld, targets)); err != nil {
				t.Fatal(err)
			}
		}
		if err := wld.MoveAnimal(i, p); err != nil {
			t.Fatalf("placing animal %d on %s: %v", i, p, err)
		}
	}
	return wld
}

func freeTile(t *testing.T, w *world.World, avoid []core.Point) core.Point {
	t.Helper()
	size := w.Size()
	for x := size.X - 1; x >= 0; x-- {
		for y := size.Y - 1; y >= 0; y-- {
			p := core.Pt(x, y)
			if w.Occupied(p) || contains(avoid, p) {
				continue
			}
			return p
		}
	}
	t.Fatal("no free tile")
	return core.Point{}
}

func contains(ps []core.Point, p core.Point) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestNewExplorer(t *testing.T) {
	e := New(newBareWorld(t, 40, 31), layout.DefaultDesign())

	if e.Pos() != core.Pt(20, 15) {
		t.Errorf("Pos() = %s, expected (20,15)", e.Pos())
	}
	if e.FacingLeft() {
		t.Error("explorer should start facing right")
	}
	if !e.ControlsVisible() {
		t.Error("controls should start visible")
	}
	if e.Fullscreen() {
		t.Error("fullscreen should start off")
	}
	if got := e.Stats().Visited; got != 1 {
		t.Errorf("Visited = %d, expected the start tile", got)
	}
}

func TestStepMoves(t *testing.T) {
	tests := []struct {
		name    string
		actions []core.Action
		want    core.Point
		left    bool
	}{
		{"up", []core.Action{core.ActionUp}, core.Pt(10, 9), false},
		{"down", []core.Action{core.ActionDown}, core.Pt(10, 11), false},
		{"left", []core.Action{core.ActionLeft}, core.Pt(9, 10), true},
		{"right", []core.Action{core.ActionRight}, core.Pt(11, 10), false},
		{"up and left together", []core.Action{core.ActionUp, core.ActionLeft}, core.Pt(9, 9), true},
		{"left then right faces right", []core.Action{core.ActionLeft, core.ActionRight}, core.Pt(10, 10), false},
		{"nothing", nil, core.Pt(10, 10), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(newBareWorld(t, 20, 20), layout.DefaultDesign())
			e.Step(frame(tt.actions...))
			if e.Pos() != tt.want {
				t.Errorf("Pos() = %s, expected %s", e.Pos(), tt.want)
			}
			if e.FacingLeft() != tt.left {
				t.Errorf("FacingLeft() = %v, expected %v", e.FacingLeft(), tt.left)
			}
		})
	}
}

func TestBlockedMoveStillTurns(t *testing.T) {
	// Player starts on (5,5); an animal stands to the left.
	e := New(newBareWorld(t, 10, 10, core.Pt(4, 5)), layout.DefaultDesign())

	res := e.Step(frame(core.ActionLeft))
	if res.Moved || !res.Bumped {
		t.Errorf("Step() = %+v, expected a bump", res)
	}
	if e.Pos() != core.Pt(5, 5) {
		t.Errorf("Pos() = %s, expected to stay on (5,5)", e.Pos())
	}
	if !e.FacingLeft() {
		t.Error("blocked left move should still turn left")
	}
	if s := e.Stats(); s.Bumps != 1 || s.Steps != 0 {
		t.Errorf("Stats() = %+v, expected 1 bump and no steps", s)
	}
}

func TestWorldEdgeIsAWall(t *testing.T) {
	e := New(newBareWorld(t, 1, 1), layout.DefaultDesign())
	for _, a := range core.MoveActions {
		if res := e.Step(frame(a)); res.Moved {
			t.Errorf("%s moved off a 1x1 world", a)
		}
	}
	if e.Pos() != core.Pt(0, 0) {
		t.Errorf("Pos() = %s, expected (0,0)", e.Pos())
	}
	if got := e.Stats().Bumps; got != 4 {
		t.Errorf("Bumps = %d, expected 4", got)
	}
}

func TestControlsVisibility(t *testing.T) {
	e := New(newBareWorld(t, 5, 5), layout.DefaultDesign())

	e.Step(frame(core.ActionHideControls))
	if e.ControlsVisible() {
		t.Error("key press should hide controls")
	}
	e.Step(frame())
	if e.ControlsVisible() {
		t.Error("controls should stay hidden without pointer movement")
	}
	e.Step(frame(core.ActionShowControls))
	if !e.ControlsVisible() {
		t.Error("pointer movement should show controls")
	}
	e.Step(frame(core.ActionHideControls, core.ActionShowControls))
	if !e.ControlsVisible() {
		t.Error("pointer movement in the same frame should win")
	}
}

func TestFullscreenToggle(t *testing.T) {
	e := New(newBareWorld(t, 5, 5), layout.DefaultDesign())

	if res := e.Step(frame(core.ActionToggleFullscreen)); !res.FullscreenToggled || !e.Fullscreen() {
		t.Errorf("first toggle: result %+v, fullscreen %v", res, e.Fullscreen())
	}
	e.Step(frame(core.ActionToggleFullscreen))
	if e.Fullscreen() {
		t.Error("second toggle should leave fullscreen")
	}
	e.SetFullscreen(true)
	if !e.Fullscreen() {
		t.Error("SetFullscreen(true) not applied")
	}
}

func TestQuit(t *testing.T) {
	e := New(newBareWorld(t, 5, 5), layout.DefaultDesign())
	if res := e.Step(frame(core.ActionQuit)); !res.Quit {
		t.Error("Step() should report quit")
	}
}

func TestVisitedCountsDistinctTiles(t *testing.T) {
	e := New(newBareWorld(t, 20, 20), layout.DefaultDesign())
	e.Step(frame(core.ActionRight))
	e.Step(frame(core.ActionLeft))
	e.Step(frame(core.ActionRight))

	s := e.Stats()
	if s.Steps != 3 || s.Visited != 2 || s.Ticks != 3 {
		t.Errorf("Stats() = %+v, expected 3 steps over 2 tiles in 3 ticks", s)
	}
}

func TestSightings(t *testing.T) {
	// Player starts on (20,20); the animal waits 17 rows north, outside the
	// 11-row ground window.
	e := New(newBareWorld(t, 40, 40, core.Pt(20, 3)), layout.DefaultDesign())
	if got := e.Stats().SightingsTotal(); got != 0 {
		t.Fatalf("initial sightings = %d, expected 0", got)
	}

	first := -1
	for i := 0; i < 20; i++ {
		res := e.Step(frame(core.ActionUp))
		if len(res.Sighted) > 0 {
			if first >= 0 {
				t.Fatalf("animal sighted twice (steps %d and %d)", first, i)
			}
			first = i
		}
	}
	// Visible from y=8, twelve steps north.
	if first != 11 {
		t.Errorf("first sighting on step %d, expected 11", first)
	}
	if e.Pos() != core.Pt(20, 4) {
		t.Errorf("Pos() = %s, expected to stop below the animal", e.Pos())
	}
	if got := e.Stats().SightingsTotal(); got != 1 {
		t.Errorf("SightingsTotal() = %d, expected 1", got)
	}
}

func TestSightingsAtStart(t *testing.T) {
	e := New(newBareWorld(t, 9, 9, core.Pt(0, 0), core.Pt(8, 8)), layout.DefaultDesign())
	if got := e.Stats().SightingsTotal(); got != 2 {
		t.Errorf("SightingsTotal() = %d, expected both animals in view", got)
	}
}
