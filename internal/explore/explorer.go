// Package explore moves the wanderer across a world and keeps track of what
// the expedition has seen.
package explore

import (
	"github.com/vovakirdan/green-island/internal/core"
	"github.com/vovakirdan/green-island/internal/layout"
	"github.com/vovakirdan/green-island/internal/world"
)

// Stats summarises an expedition.
type Stats struct {
	Ticks     int                        // Frames stepped
	Steps     int                        // Successful moves
	Bumps     int                        // Moves blocked by an occupied tile
	Visited   int                        // Distinct tiles stood on, including the start
	Sightings [world.AnimalKindCount]int // Distinct animals seen, by kind
}

// SightingsTotal returns the number of distinct animals seen.
func (s Stats) SightingsTotal() int {
	n := 0
	for _, v := range s.Sightings {
		n += v
	}
	return n
}

// StepResult reports what happened during one Step.
type StepResult struct {
	Moved             bool
	Bumped            bool
	FullscreenToggled bool
	Quit              bool
	Sighted           []world.AnimalKind // Animals seen for the first time this step
}

// Explorer is the player's state: where they stand, which way they face and
// what the frontend should show.
type Explorer struct {
	world *world.World
	view  viewWindow

	pos             core.Point
	facingLeft      bool
	controlsVisible bool
	fullscreen      bool

	stats   Stats
	visited map[core.Point]struct{}
	seen    map[int]struct{}
}

// viewWindow is the ground area around the player that counts as seen,
// as offsets from the player's tile.
type viewWindow struct {
	min, max core.Point
}

// New places an explorer in the middle of w, facing right, with the
// on-screen controls visible. The start tile may hold a plant or an animal;
// the explorer simply stands among them.
func New(w *world.World, d layout.Design) *Explorer {
	size := w.Size()
	gc := d.GroundCenter.Point()
	gs := d.GroundSize.Point()

	e := &Explorer{
		world: w,
		view: viewWindow{
			min: core.Pt(-gc.X, -gc.Y),
			max: core.Pt(gs.X-1-gc.X, gs.Y-1-gc.Y),
		},
		pos:             core.Pt(size.X/2, size.Y/2),
		controlsVisible: true,
		visited:         make(map[core.Point]struct{}),
		seen:            make(map[int]struct{}),
	}
	e.visit()
	e.look()
	return e
}

// Step applies one frame of input. Movement is attempted in the order up,
// down, left, right; every horizontal attempt turns the explorer even when
// the way is blocked.
func (e *Explorer) Step(in core.InputFrame) StepResult {
	var res StepResult
	e.stats.Ticks++

	if in.Has(core.ActionHideControls) {
		e.controlsVisible = false
	}
	if in.Has(core.ActionShowControls) {
		e.controlsVisible = true
	}
	if in.Has(core.ActionToggleFullscreen) {
		e.fullscreen = !e.fullscreen
		res.FullscreenToggled = true
	}
	if in.Has(core.ActionQuit) {
		res.Quit = true
	}

	for _, a := range core.MoveActions {
		if !in.Has(a) {
			continue
		}
		dir, _ := a.Direction()
		if e.tryMove(dir) {
			res.Moved = true
		} else {
			res.Bumped = true
		}
	}

	if res.Moved {
		res.Sighted = e.look()
	}
	return res
}

// tryMove moves one tile in dir if the target is free.
func (e *Explorer) tryMove(dir core.Point) bool {
	if dir.X != 0 {
		e.facingLeft = dir.X < 0
	}
	next := e.pos.Add(dir)
	if e.world.Occupied(next) {
		e.stats.Bumps++
		return false
	}
	e.pos = next
	e.stats.Steps++
	e.visit()
	return true
}

func (e *Explorer) visit() {
	if _, ok := e.visited[e.pos]; ok {
		return
	}
	e.visited[e.pos] = struct{}{}
	e.stats.Visited++
}

// look records animals inside the visible ground window.
func (e *Explorer) look() []world.AnimalKind {
	var sighted []world.AnimalKind
	for dy := e.view.min.Y; dy <= e.view.max.Y; dy++ {
		for dx := e.view.min.X; dx <= e.view.max.X; dx++ {
			p := e.pos.Add(core.Pt(dx, dy))
			if !e.world.InBounds(p) {
				continue
			}
			i, ok := e.world.Tile(p).Animal()
			if !ok {
				continue
			}
			if _, dup := e.seen[i]; dup {
				continue
			}
			e.seen[i] = struct{}{}
			a, err := e.world.Animal(i)
			if err != nil {
				continue
			}
			e.stats.Sightings[a.Kind]++
			sighted = append(sighted, a.Kind)
		}
	}
	return sighted
}

// World returns the world being explored.
func (e *Explorer) World() *world.World {
	return e.world
}

// Pos returns the explorer's tile.
func (e *Explorer) Pos() core.Point {
	return e.pos
}

// FacingLeft reports whether the last horizontal attempt was to the left.
func (e *Explorer) FacingLeft() bool {
	return e.facingLeft
}

// ControlsVisible reports whether the on-screen controls should be drawn.
func (e *Explorer) ControlsVisible() bool {
	return e.controlsVisible
}

// Fullscreen reports the requested fullscreen state.
func (e *Explorer) Fullscreen() bool {
	return e.fullscreen
}

// SetFullscreen sets the requested fullscreen state, for frontends that
// start fullscreen.
func (e *Explorer) SetFullscreen(on bool) {
	e.fullscreen = on
}

// Stats returns the expedition so far.
func (e *Explorer) Stats() Stats {
	return e.stats
}
