package vmath

import "github.com/go-gl/mathgl/mgl64"

// Rect is an axis-aligned rectangle [Min, Max]
type Rect struct {
	Min, Max mgl64.Vec2
}

// RectFromCenter builds a rectangle of the given size around center
func RectFromCenter(center, size mgl64.Vec2) Rect {
	half := size.Mul(0.5)
	return Rect{Min: center.Sub(half), Max: center.Add(half)}
}

// Width returns the horizontal extent
func (r Rect) Width() float64 { return r.Max[0] - r.Min[0] }

// Height returns the vertical extent
func (r Rect) Height() float64 { return r.Max[1] - r.Min[1] }

// Center returns the midpoint
func (r Rect) Center() mgl64.Vec2 {
	return r.Min.Add(r.Max).Mul(0.5)
}

// Empty reports a degenerate rectangle with no interior
func (r Rect) Empty() bool {
	return r.Max[0] <= r.Min[0] || r.Max[1] <= r.Min[1]
}

// Overlaps tests open-interval overlap on both axes
// Rectangles sharing only an edge do not overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.Min[0] < o.Max[0] && o.Min[0] < r.Max[0] &&
		r.Min[1] < o.Max[1] && o.Min[1] < r.Max[1]
}

// Contains reports whether p lies inside r, edges included
func (r Rect) Contains(p mgl64.Vec2) bool {
	return p[0] >= r.Min[0] && p[0] <= r.Max[0] &&
		p[1] >= r.Min[1] && p[1] <= r.Max[1]
}

// ContainsRect reports whether o lies entirely within r, shared edges included
func (r Rect) ContainsRect(o Rect) bool {
	return o.Min[0] >= r.Min[0] && o.Max[0] <= r.Max[0] &&
		o.Min[1] >= r.Min[1] && o.Max[1] <= r.Max[1]
}

// Quadrants splits r into four equal sub-rectangles: SW, SE, NW, NE
func (r Rect) Quadrants() [4]Rect {
	c := r.Center()
	return [4]Rect{
		{Min: r.Min, Max: c},
		{Min: mgl64.Vec2{c[0], r.Min[1]}, Max: mgl64.Vec2{r.Max[0], c[1]}},
		{Min: mgl64.Vec2{r.Min[0], c[1]}, Max: mgl64.Vec2{c[0], r.Max[1]}},
		{Min: c, Max: r.Max},
	}
}
