package world

import (
	"fmt"

	"github.com/vovakirdan/green-island/internal/core"
)

// Plant is one of the four cactus kinds that grow in the desert.
type Plant uint8

const (
	NopalBig Plant = iota
	NopalSmall
	Ocotillo
	Saguaro

	PlantCount = int(Saguaro) + 1
)

// String returns the plant's name.
func (p Plant) String() string {
	switch p {
	case NopalBig:
		return "nopal_big"
	case NopalSmall:
		return "nopal_small"
	case Ocotillo:
		return "ocotillo"
	case Saguaro:
		return "saguaro"
	default:
		return fmt.Sprintf("plant(%d)", p)
	}
}

// Plants lists every plant kind in declaration order.
var Plants = []Plant{NopalBig, NopalSmall, Ocotillo, Saguaro}

// AnimalKind is one of the eight desert species.
type AnimalKind uint8

const (
	Bead AnimalKind = iota
	Bob
	Coyote
	Jack
	Javelina
	Rattler
	Runner
	Turkey

	AnimalKindCount = int(Turkey) + 1
)

// String returns the species name.
func (k AnimalKind) String() string {
	switch k {
	case Bead:
		return "bead"
	case Bob:
		return "bob"
	case Coyote:
		return "coyote"
	case Jack:
		return "jack"
	case Javelina:
		return "javelina"
	case Rattler:
		return "rattler"
	case Runner:
		return "runner"
	case Turkey:
		return "turkey"
	default:
		return fmt.Sprintf("animal(%d)", k)
	}
}

// AnimalKinds lists every species in declaration order.
var AnimalKinds = []AnimalKind{Bead, Bob, Coyote, Jack, Javelina, Rattler, Runner, Turkey}

// ParseAnimalKind returns the species with the given name.
func ParseAnimalKind(name string) (AnimalKind, bool) {
	for _, k := range AnimalKinds {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

type tileKind uint8

const (
	tileEmpty tileKind = iota
	tilePlant
	tileAnimal
)

// Tile is the content of one grid cell: nothing, a plant, or a reference to
// an animal in the World's animal list. The zero Tile is empty.
type Tile struct {
	kind   tileKind
	plant  Plant
	animal int32
}

// EmptyTile returns a tile with no occupant.
func EmptyTile() Tile {
	return Tile{}
}

// PlantTile returns a tile holding plant p.
func PlantTile(p Plant) Tile {
	return Tile{kind: tilePlant, plant: p}
}

// AnimalTile returns a tile referencing the animal at index i.
func AnimalTile(i int) Tile {
	return Tile{kind: tileAnimal, animal: int32(i)}
}

// IsEmpty reports whether the tile has no occupant.
func (t Tile) IsEmpty() bool {
	return t.kind == tileEmpty
}

// Plant returns the plant on the tile, if any.
func (t Tile) Plant() (Plant, bool) {
	return t.plant, t.kind == tilePlant
}

// Animal returns the index of the animal on the tile, if any.
func (t Tile) Animal() (int, bool) {
	return int(t.animal), t.kind == tileAnimal
}

// String returns a short description of the tile.
func (t Tile) String() string {
	switch t.kind {
	case tilePlant:
		return t.plant.String()
	case tileAnimal:
		return fmt.Sprintf("animal#%d", t.animal)
	default:
		return "empty"
	}
}

// Animal is a creature living on the grid.
type Animal struct {
	Kind AnimalKind
	Pos  core.Point
}
