package worldgen

import (
	"github.com/lixenwraith/mars-base-one/random"
)

// CavernConfig controls the randomized cavern variant
type CavernConfig struct {
	Width, Height int

	// Braiding: 0.0 keeps a tree of passages, 1.0 removes every removable dead end
	// No 2x2 open plazas and no isolated solid pillars are ever introduced
	Braiding float64
}

// GenerateCavern carves passages with a recursive backtracker, braids dead ends,
// then applies the same spawn pocket and border columns as Generate
// A nil rng draws from entropy
func GenerateCavern(cfg CavernConfig, rng *random.Generator) (Grid, Point, error) {
	if err := validateSize(cfg.Width, cfg.Height); err != nil {
		return Grid{}, Point{}, err
	}
	if rng == nil {
		rng = random.New()
	}

	g := newGrid(cfg.Width, cfg.Height, Solid)
	seed := Point{X: cfg.Width / 2, Y: cfg.Height / 2}

	carve(g, carveStart(g, seed), rng)
	if cfg.Braiding > 0 {
		braid(g, cfg.Braiding, rng)
	}

	clearSpawn(g, seed)
	sealColumns(g)
	return g, seed, nil
}

// carveStart snaps seed onto the odd lattice the backtracker walks
func carveStart(g Grid, seed Point) Point {
	p := Point{X: seed.X | 1, Y: seed.Y | 1}
	if p.X >= g.Width-1 {
		p.X -= 2
	}
	if p.Y >= g.Height-1 {
		p.Y -= 2
	}
	if p.X < 1 || p.Y < 1 {
		return Point{1, 1}
	}
	return p
}

var (
	jumps = [4]Point{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	steps = [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
)

// carve opens a spanning tree of passages over odd cells
func carve(g Grid, start Point, rng *random.Generator) {
	stack := []Point{start}
	g.set(start.X, start.Y, Open)

	candidates := make([]Point, 0, 4)
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		candidates = candidates[:0]

		for _, d := range jumps {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			// Leave a one-cell solid frame
			if nx > 0 && nx < g.Width-1 && ny > 0 && ny < g.Height-1 && g.Solid(nx, ny) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := candidates[rng.Range(0, len(candidates))]
		g.set(curr.X+d.X/2, curr.Y+d.Y/2, Open)
		next := Point{curr.X + d.X, curr.Y + d.Y}
		g.set(next.X, next.Y, Open)
		stack = append(stack, next)
	}
}

// braid knocks through walls at dead ends with the given probability
func braid(g Grid, probability float64, rng *random.Generator) {
	candidates := make([]Point, 0, 4)
	for y := 1; y < g.Height-1; y += 2 {
		for x := 1; x < g.Width-1; x += 2 {
			if g.Solid(x, y) {
				continue
			}

			exits := 0
			for _, d := range steps {
				if !g.Solid(x+d.X, y+d.Y) {
					exits++
				}
			}
			if exits != 1 || rng.Float() >= probability {
				continue
			}

			candidates = candidates[:0]
			for _, d := range jumps {
				nx, ny := x+d.X, y+d.Y
				wx, wy := x+d.X/2, y+d.Y/2
				if !g.InBounds(nx, ny) || g.Solid(nx, ny) || !g.Solid(wx, wy) {
					continue
				}
				if canOpen(g, wx, wy) {
					candidates = append(candidates, Point{wx, wy})
				}
			}

			if len(candidates) > 0 {
				c := candidates[rng.Range(0, len(candidates))]
				g.set(c.X, c.Y, Open)
			}
		}
	}
}

// canOpen rejects openings that would form a 2x2 open plaza or strand a solid pillar
func canOpen(g Grid, x, y int) bool {
	open := func(tx, ty int) bool { return !g.Solid(tx, ty) }

	if open(x-1, y-1) && open(x, y-1) && open(x-1, y) {
		return false
	}
	if open(x, y-1) && open(x+1, y-1) && open(x+1, y) {
		return false
	}
	if open(x-1, y) && open(x-1, y+1) && open(x, y+1) {
		return false
	}
	if open(x+1, y) && open(x, y+1) && open(x+1, y+1) {
		return false
	}

	for _, d := range steps {
		nx, ny := x+d.X, y+d.Y
		if !g.InBounds(nx, ny) || !g.Solid(nx, ny) {
			continue
		}
		links := 0
		for _, d2 := range steps {
			ax, ay := nx+d2.X, ny+d2.Y
			if ax == x && ay == y {
				continue
			}
			if g.InBounds(ax, ay) && g.Solid(ax, ay) {
				links++
			}
		}
		if links == 0 {
			return false
		}
	}
	return true
}

// sealColumns keeps the outermost columns solid
func sealColumns(g Grid) {
	for y := 0; y < g.Height; y++ {
		g.set(0, y, Solid)
		g.set(g.Width-1, y, Solid)
	}
}
