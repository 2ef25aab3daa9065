package vmath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestClampMagnitude(t *testing.T) {
	tests := []struct {
		name    string
		in      mgl64.Vec2
		max     float64
		want    mgl64.Vec2
		clamped bool
	}{
		{"below cap", mgl64.Vec2{1, 1}, 5, mgl64.Vec2{1, 1}, false},
		{"at cap", mgl64.Vec2{3, 4}, 5, mgl64.Vec2{3, 4}, false},
		{"above cap", mgl64.Vec2{6, 8}, 5, mgl64.Vec2{3, 4}, true},
		{"zero", mgl64.Vec2{}, 5, mgl64.Vec2{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := ClampMagnitude(tt.in, tt.max)
			if clamped != tt.clamped {
				t.Errorf("clamped = %v, want %v", clamped, tt.clamped)
			}
			if !got.ApproxEqualThreshold(tt.want, 1e-12) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsFinite(t *testing.T) {
	if !IsFinite(mgl64.Vec2{1, -2}) {
		t.Error("finite vector reported non-finite")
	}
	if IsFinite(mgl64.Vec2{math.NaN(), 0}) {
		t.Error("NaN reported finite")
	}
	if IsFinite(mgl64.Vec2{0, math.Inf(-1)}) {
		t.Error("Inf reported finite")
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{Min: mgl64.Vec2{0, 0}, Max: mgl64.Vec2{10, 10}}

	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{Min: mgl64.Vec2{2, 2}, Max: mgl64.Vec2{3, 3}}, true},
		{"partial", Rect{Min: mgl64.Vec2{5, 5}, Max: mgl64.Vec2{15, 15}}, true},
		{"shared edge", Rect{Min: mgl64.Vec2{10, 0}, Max: mgl64.Vec2{20, 10}}, false},
		{"shared corner", Rect{Min: mgl64.Vec2{10, 10}, Max: mgl64.Vec2{20, 20}}, false},
		{"disjoint", Rect{Min: mgl64.Vec2{-5, -5}, Max: mgl64.Vec2{-1, -1}}, false},
		{"enclosing", Rect{Min: mgl64.Vec2{-1, -1}, Max: mgl64.Vec2{11, 11}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps not symmetric")
			}
		})
	}
}

func TestRectContainsRect(t *testing.T) {
	outer := Rect{Min: mgl64.Vec2{-50, -50}, Max: mgl64.Vec2{50, 50}}
	tests := []struct {
		name  string
		inner Rect
		want  bool
	}{
		{"strictly inside", Rect{Min: mgl64.Vec2{-10, -10}, Max: mgl64.Vec2{10, 10}}, true},
		{"shares an edge", Rect{Min: mgl64.Vec2{40, 40}, Max: mgl64.Vec2{50, 50}}, true},
		{"identical", outer, true},
		{"crosses edge", Rect{Min: mgl64.Vec2{45, 45}, Max: mgl64.Vec2{60, 60}}, false},
		{"fully outside", Rect{Min: mgl64.Vec2{60, 60}, Max: mgl64.Vec2{70, 70}}, false},
		{"encloses", Rect{Min: mgl64.Vec2{-60, -60}, Max: mgl64.Vec2{60, 60}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.ContainsRect(tt.inner); got != tt.want {
				t.Errorf("ContainsRect(%v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}
}

func TestRectQuadrantsCoverParent(t *testing.T) {
	r := Rect{Min: mgl64.Vec2{-4, -2}, Max: mgl64.Vec2{4, 2}}
	q := r.Quadrants()

	area := 0.0
	for _, c := range q {
		if c.Width() != 4 || c.Height() != 2 {
			t.Errorf("quadrant %v has wrong size", c)
		}
		area += c.Width() * c.Height()
	}
	if area != r.Width()*r.Height() {
		t.Errorf("quadrant area %v != parent area %v", area, r.Width()*r.Height())
	}
	if q[0].Min != r.Min || q[3].Max != r.Max {
		t.Errorf("quadrant corners do not match parent")
	}
}

func TestRectFromCenter(t *testing.T) {
	r := RectFromCenter(mgl64.Vec2{10, 20}, mgl64.Vec2{4, 6})
	if r.Min != (mgl64.Vec2{8, 17}) || r.Max != (mgl64.Vec2{12, 23}) {
		t.Errorf("got %v", r)
	}
	if r.Center() != (mgl64.Vec2{10, 20}) {
		t.Errorf("center %v", r.Center())
	}
}
