// Package world generates and owns the desert: a dense grid of tiles holding
// plants or references into a list of animals.
package world

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/green-island/internal/config"
	"github.com/vovakirdan/green-island/internal/core"
	"github.com/vovakirdan/green-island/internal/grid"
)

var (
	// ErrOvercrowded is returned when more animals are requested than free tiles exist.
	ErrOvercrowded = errors.New("world: not enough free tiles for animals")
	// ErrOccupied is returned when an animal is moved onto a non-empty tile.
	ErrOccupied = errors.New("world: tile occupied")
	// ErrNoAnimal is returned for an animal index outside the list.
	ErrNoAnimal = errors.New("world: no such animal")
	// ErrInconsistent is returned by Verify when the grid and the animal list disagree.
	ErrInconsistent = errors.New("world: grid and animal list disagree")
)

// Options controls world generation.
type Options struct {
	Width   int
	Height  int
	Animals int
	Plants  PlantTable
}

// DefaultOptions returns a 1500x1100 desert with 10 000 animals.
func DefaultOptions() Options {
	return Options{
		Width:   1500,
		Height:  1100,
		Animals: 10_000,
		Plants:  DefaultPlantTable(),
	}
}

// OptionsFromConfig converts the world section of the configuration.
func OptionsFromConfig(c config.WorldConfig) Options {
	return Options{
		Width:   c.Width,
		Height:  c.Height,
		Animals: c.Animals,
		Plants:  PlantTableFromConfig(c.Plants),
	}
}

// World is the generated desert. The animal list owns every animal; grid
// tiles only carry the animal's index. MoveAnimal keeps both in step.
type World struct {
	tiles   *grid.Grid[Tile]
	animals []Animal
}

// New generates a world. Plants are sampled for every tile first, then
// animals are placed on distinct free tiles. All randomness comes from rng,
// so the same seed and options reproduce the same world.
func New(opts Options, rng *rand.Rand) (*World, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("world: invalid size %dx%d", opts.Width, opts.Height)
	}
	if opts.Animals < 0 {
		return nil, fmt.Errorf("world: negative animal count %d", opts.Animals)
	}
	if err := opts.Plants.Validate(); err != nil {
		return nil, err
	}

	w := &World{
		tiles:   grid.New[Tile](opts.Width, opts.Height),
		animals: make([]Animal, 0, opts.Animals),
	}
	w.tiles.Fill(func(x, y int) Tile {
		return opts.Plants.Tile(rng)
	})
	if err := w.placeAnimals(opts.Animals, rng); err != nil {
		return nil, err
	}
	return w, nil
}

// placeAnimals puts n animals on distinct empty tiles chosen by a partial
// Fisher-Yates shuffle over the free tile offsets.
func (w *World) placeAnimals(n int, rng *rand.Rand) error {
	if n == 0 {
		return nil
	}
	free := make([]int32, 0, w.tiles.Len())
	w.tiles.Each(func(x, y int, t Tile) {
		if t.IsEmpty() {
			free = append(free, int32(w.tiles.Index(x, y)))
		}
	})
	if n > len(free) {
		return fmt.Errorf("%w: %d animals, %d free tiles", ErrOvercrowded, n, len(free))
	}

	sizeY := w.tiles.SizeY()
	for i := 0; i < n; i++ {
		j := i + rng.Intn(len(free)-i)
		free[i], free[j] = free[j], free[i]

		off := int(free[i])
		pos := core.Pt(off/sizeY, off%sizeY)
		kind := AnimalKinds[rng.Intn(AnimalKindCount)]
		w.tiles.Set(pos.X, pos.Y, AnimalTile(len(w.animals)))
		w.animals = append(w.animals, Animal{Kind: kind, Pos: pos})
	}
	return nil
}

// Size returns the grid dimensions in tiles.
func (w *World) Size() core.Point {
	x, y := w.tiles.Size()
	return core.Pt(x, y)
}

// InBounds reports whether p addresses a tile.
func (w *World) InBounds(p core.Point) bool {
	return w.tiles.InBounds(p.X, p.Y)
}

// Tile returns the tile at p. Panics with a *grid.IndexError out of bounds.
func (w *World) Tile(p core.Point) Tile {
	return w.tiles.At(p.X, p.Y)
}

// Occupied reports whether p holds a plant or an animal.
// Coordinates outside the world count as occupied.
func (w *World) Occupied(p core.Point) bool {
	t, err := w.tiles.Lookup(p.X, p.Y)
	if err != nil {
		return true
	}
	return !t.IsEmpty()
}

// AnimalCount returns the number of animals.
func (w *World) AnimalCount() int {
	return len(w.animals)
}

// Animal returns the animal at index i.
func (w *World) Animal(i int) (Animal, error) {
	if i < 0 || i >= len(w.animals) {
		return Animal{}, fmt.Errorf("%w: index %d of %d", ErrNoAnimal, i, len(w.animals))
	}
	return w.animals[i], nil
}

// AnimalAt returns the animal standing on p, if any.
func (w *World) AnimalAt(p core.Point) (Animal, bool) {
	t, err := w.tiles.Lookup(p.X, p.Y)
	if err != nil {
		return Animal{}, false
	}
	i, ok := t.Animal()
	if !ok {
		return Animal{}, false
	}
	return w.animals[i], true
}

// MoveAnimal moves animal i to an empty tile, updating the old tile, the new
// tile and the animal's position together.
func (w *World) MoveAnimal(i int, to core.Point) error {
	a, err := w.Animal(i)
	if err != nil {
		return err
	}
	if a.Pos == to {
		return nil
	}
	if w.Occupied(to) {
		return fmt.Errorf("%w: %s", ErrOccupied, to)
	}
	w.tiles.Set(a.Pos.X, a.Pos.Y, EmptyTile())
	w.tiles.Set(to.X, to.Y, AnimalTile(i))
	w.animals[i].Pos = to
	return nil
}

// Verify checks that every animal's tile refers back to it and that every
// animal reference in the grid points at an animal standing there.
func (w *World) Verify() error {
	for i, a := range w.animals {
		t, err := w.tiles.Lookup(a.Pos.X, a.Pos.Y)
		if err != nil {
			return fmt.Errorf("%w: animal %d at %s: %v", ErrInconsistent, i, a.Pos, err)
		}
		if j, ok := t.Animal(); !ok || j != i {
			return fmt.Errorf("%w: animal %d at %s but tile holds %s", ErrInconsistent, i, a.Pos, t)
		}
	}

	var err error
	refs := 0
	w.tiles.Each(func(x, y int, t Tile) {
		i, ok := t.Animal()
		if !ok || err != nil {
			return
		}
		refs++
		if i >= len(w.animals) || w.animals[i].Pos != core.Pt(x, y) {
			err = fmt.Errorf("%w: tile (%d,%d) refers to animal %d", ErrInconsistent, x, y, i)
		}
	})
	if err != nil {
		return err
	}
	if refs != len(w.animals) {
		return fmt.Errorf("%w: %d references for %d animals", ErrInconsistent, refs, len(w.animals))
	}
	return nil
}

// Census counts tile contents.
type Census struct {
	Empty   int
	Plants  [PlantCount]int
	Animals [AnimalKindCount]int
}

// PlantTotal returns the number of tiles holding a plant.
func (c Census) PlantTotal() int {
	n := 0
	for _, v := range c.Plants {
		n += v
	}
	return n
}

// AnimalTotal returns the number of animals.
func (c Census) AnimalTotal() int {
	n := 0
	for _, v := range c.Animals {
		n += v
	}
	return n
}

// Census counts every tile in the world.
func (w *World) Census() Census {
	var c Census
	w.tiles.Each(func(x, y int, t Tile) {
		if p, ok := t.Plant(); ok {
			c.Plants[p]++
			return
		}
		if i, ok := t.Animal(); ok {
			c.Animals[w.animals[i].Kind]++
			return
		}
		c.Empty++
	})
	return c
}
