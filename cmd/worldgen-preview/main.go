// Command worldgen-preview generates a world grid and prints it with index statistics
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/lixenwraith/mars-base-one/config"
	"github.com/lixenwraith/mars-base-one/random"
	"github.com/lixenwraith/mars-base-one/spatial"
	"github.com/lixenwraith/mars-base-one/worldgen"
)

var (
	widthFlag  = flag.Int("width", 61, "Grid width in tiles")
	heightFlag = flag.Int("height", 31, "Grid height in tiles")
	braidFlag  = flag.Float64("braiding", 0.25, "Cavern braiding [0.0 - 1.0]")
	seedFlag   = flag.Uint64("seed", 0, "Seed (0 = random)")
	cavernFlag = flag.Bool("cavern", true, "Use the cavern generator")
)

func main() {
	flag.Parse()

	rng := random.New()
	if *seedFlag != 0 {
		rng = random.Seeded(*seedFlag)
	}

	start := time.Now()
	var (
		grid  worldgen.Grid
		spawn worldgen.Point
		err   error
	)
	if *cavernFlag {
		grid, spawn, err = worldgen.GenerateCavern(worldgen.CavernConfig{Width: *widthFlag, Height: *heightFlag, Braiding: *braidFlag}, rng)
	} else {
		grid, spawn, err = worldgen.Generate(*widthFlag, *heightFlag, rng)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		os.Exit(1)
	}
	genTime := time.Since(start)

	cfg := config.Default()
	tree, err := indexGrid(grid, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "index: %v\n", err)
		os.Exit(1)
	}

	stats := tree.Stats()
	fmt.Printf("Generated %dx%d in %v\n", grid.Width, grid.Height, genTime)
	fmt.Printf("Solid: %d  Open: %d  Reachable from spawn: %d\n",
		grid.SolidCount(), len(grid.Cells)-grid.SolidCount(), grid.Reachable(spawn))
	fmt.Printf("Index: entries=%d depth=%d nodes=%d leaves=%d stored=%d max-leaf=%d\n",
		tree.Len(), tree.Depth(), stats.Nodes, stats.Leaves, stats.Stored, stats.MaxLeafSize)
	draw(os.Stdout, grid, spawn)
}

// indexGrid builds a frozen quad-tree over the solid tiles
func indexGrid(g worldgen.Grid, cfg config.Config) (*spatial.Tree, error) {
	tree, err := spatial.BuildWithCapacity(cfg.IndexExtent(), cfg.Index.MaxDepth, cfg.Index.LeafCapacity)
	if err != nil {
		return nil, err
	}
	half := worldgen.HalfExtent(g, cfg.World.TileSize)
	rejected := 0
	g.EachSolid(func(x, y int) {
		if !tree.Insert(spatial.Entry{ID: y*g.Width + x, Bounds: worldgen.TileBounds(x, y, cfg.World.TileSize, half)}) {
			rejected++
		}
	})
	tree.Freeze()
	if rejected > 0 {
		return nil, fmt.Errorf("%d tiles outside index extent %v", rejected, cfg.IndexExtent())
	}
	return tree, nil
}

// draw prints the grid with the top row first; world Y points up
func draw(w io.Writer, g worldgen.Grid, spawn worldgen.Point) {
	var b strings.Builder
	for y := g.Height - 1; y >= 0; y-- {
		for x := 0; x < g.Width; x++ {
			switch {
			case x == spawn.X && y == spawn.Y:
				b.WriteRune('S')
			case g.Solid(x, y):
				b.WriteRune('█')
			default:
				b.WriteRune(' ')
			}
		}
		b.WriteByte('\n')
	}
	io.WriteString(w, b.String())
}
