package worldgen

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/mars-base-one/parameter"
	"github.com/lixenwraith/mars-base-one/random"
)

var ErrInvalidGridSize = errors.New("worldgen: grid must be at least 3x3")

func validateSize(width, height int) error {
	if width < parameter.MinGridSize || height < parameter.MinGridSize {
		return fmt.Errorf("size %dx%d: %w", width, height, ErrInvalidGridSize)
	}
	return nil
}

// Generate fills the grid solid and opens a 3x3 pocket around the center
// Returns the grid and the center seed point; rng is unused by this variant and may be nil
func Generate(width, height int, rng *random.Generator) (Grid, Point, error) {
	if err := validateSize(width, height); err != nil {
		return Grid{}, Point{}, err
	}

	g := newGrid(width, height, Solid)
	seed := Point{X: width / 2, Y: height / 2}
	clearSpawn(g, seed)
	return g, seed, nil
}

// clearSpawn opens the 3x3 neighbourhood of seed
// Columns 0 and width-1 stay solid; rows have no such guard
func clearSpawn(g Grid, seed Point) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := seed.X+dx, seed.Y+dy
			if x > 0 && x < g.Width-1 && y >= 0 && y < g.Height {
				g.set(x, y, Open)
			}
		}
	}
}
