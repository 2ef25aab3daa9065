// Package worldgen produces the tile grid the lander flies through
package worldgen

// Cell states
const (
	Solid = true
	Open  = false
)

// Point is a tile coordinate
type Point struct {
	X, Y int
}

// Grid is a dense row-major tile map; true marks a solid tile
type Grid struct {
	Width, Height int
	Cells         []bool
}

// newGrid allocates a grid with every cell set to fill
func newGrid(width, height int, fill bool) Grid {
	cells := make([]bool, width*height)
	if fill {
		for i := range cells {
			cells[i] = true
		}
	}
	return Grid{Width: width, Height: height, Cells: cells}
}

// InBounds reports whether (x, y) addresses a cell
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Solid reports the cell state; out of range counts as solid
func (g Grid) Solid(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.Cells[y*g.Width+x]
}

func (g Grid) set(x, y int, v bool) {
	g.Cells[y*g.Width+x] = v
}

// SolidCount returns the number of solid cells
func (g Grid) SolidCount() int {
	n := 0
	for _, c := range g.Cells {
		if c {
			n++
		}
	}
	return n
}

// EachSolid calls fn for every solid cell in row-major order
func (g Grid) EachSolid(fn func(x, y int)) {
	for i, c := range g.Cells {
		if c {
			fn(i%g.Width, i/g.Width)
		}
	}
}

// Reachable counts open cells 4-connected to from, including from itself
// Returns 0 when from is solid or out of range
func (g Grid) Reachable(from Point) int {
	if g.Solid(from.X, from.Y) {
		return 0
	}

	visited := make([]bool, len(g.Cells))
	visited[from.Y*g.Width+from.X] = true
	queue := []Point{from}
	count := 0

	dirs := [4]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		count++

		for _, d := range dirs {
			nx, ny := curr.X+d.X, curr.Y+d.Y
			if g.Solid(nx, ny) {
				continue
			}
			i := ny*g.Width + nx
			if !visited[i] {
				visited[i] = true
				queue = append(queue, Point{nx, ny})
			}
		}
	}
	return count
}
