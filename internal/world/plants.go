package world

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/green-island/internal/config"
)

// PlantTable holds cumulative upper bounds for a uniform draw in [0, 1).
// Draws below Empty leave the tile bare, draws at or above Ocotillo grow a saguaro.
type PlantTable struct {
	Empty      float64
	NopalSmall float64
	NopalBig   float64
	Ocotillo   float64
}

// DefaultPlantTable returns the standard desert mix: 80% bare ground.
func DefaultPlantTable() PlantTable {
	return PlantTable{
		Empty:      0.80,
		NopalSmall: 0.87,
		NopalBig:   0.94,
		Ocotillo:   0.98,
	}
}

// PlantTableFromConfig converts configured thresholds.
func PlantTableFromConfig(c config.PlantThresholds) PlantTable {
	return PlantTable{
		Empty:      c.Empty,
		NopalSmall: c.NopalSmall,
		NopalBig:   c.NopalBig,
		Ocotillo:   c.Ocotillo,
	}
}

// Validate checks that thresholds are non-decreasing and within [0, 1].
func (t PlantTable) Validate() error {
	bounds := []float64{t.Empty, t.NopalSmall, t.NopalBig, t.Ocotillo}
	prev := 0.0
	for i, b := range bounds {
		if b < prev || b > 1 {
			return fmt.Errorf("world: plant threshold %d (%.3f) out of order", i, b)
		}
		prev = b
	}
	return nil
}

// Pick maps a draw n in [0, 1) to a plant. ok is false for bare ground.
func (t PlantTable) Pick(n float64) (p Plant, ok bool) {
	switch {
	case n < t.Empty:
		return 0, false
	case n < t.NopalSmall:
		return NopalSmall, true
	case n < t.NopalBig:
		return NopalBig, true
	case n < t.Ocotillo:
		return Ocotillo, true
	default:
		return Saguaro, true
	}
}

// Sample draws one independent plant outcome.
func (t PlantTable) Sample(rng *rand.Rand) (Plant, bool) {
	return t.Pick(rng.Float64())
}

// Tile draws one independent tile.
func (t PlantTable) Tile(rng *rand.Rand) Tile {
	if p, ok := t.Sample(rng); ok {
		return PlantTile(p)
	}
	return EmptyTile()
}
