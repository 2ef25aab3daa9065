package worldgen

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/mars-base-one/vmath"
)

// HalfExtent is half the world size covered by grid at tileSize
func HalfExtent(g Grid, tileSize float64) mgl64.Vec2 {
	return mgl64.Vec2{float64(g.Width) * tileSize / 2, float64(g.Height) * tileSize / 2}
}

// TileCenter maps a tile coordinate to its world-space center
func TileCenter(x, y int, tileSize float64, half mgl64.Vec2) mgl64.Vec2 {
	return mgl64.Vec2{float64(x)*tileSize - half[0], float64(y)*tileSize - half[1]}
}

// TileBounds is the square box of one tile
func TileBounds(x, y int, tileSize float64, half mgl64.Vec2) vmath.Rect {
	return vmath.RectFromCenter(TileCenter(x, y, tileSize, half), mgl64.Vec2{tileSize, tileSize})
}

// TileAt maps a world-space point to the tile whose box contains it
func TileAt(p mgl64.Vec2, tileSize float64, half mgl64.Vec2) Point {
	return Point{
		X: int(math.Floor((p[0]+half[0])/tileSize + 0.5)),
		Y: int(math.Floor((p[1]+half[1])/tileSize + 0.5)),
	}
}

// WorldBounds is the union of all tile boxes
func WorldBounds(g Grid, tileSize float64) vmath.Rect {
	return SizeBounds(g.Width, g.Height, tileSize)
}

// SizeBounds is WorldBounds for a width x height grid that has not been generated yet
func SizeBounds(width, height int, tileSize float64) vmath.Rect {
	half := mgl64.Vec2{float64(width) * tileSize / 2, float64(height) * tileSize / 2}
	lo := TileBounds(0, 0, tileSize, half)
	hi := TileBounds(width-1, height-1, tileSize, half)
	return vmath.Rect{Min: lo.Min, Max: hi.Max}
}
