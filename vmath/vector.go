package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Down is the unit gravity direction (world Y points up)
var Down = mgl64.Vec2{0, -1}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector and false if magnitude <= maxMag
func ClampMagnitude(v mgl64.Vec2, maxMag float64) (mgl64.Vec2, bool) {
	magSq := v.LenSqr()
	if magSq <= maxMag*maxMag || magSq == 0 {
		return v, false
	}
	return v.Mul(maxMag / math.Sqrt(magSq)), true
}

// IsFinite reports whether both components are finite
func IsFinite(v mgl64.Vec2) bool {
	return !math.IsNaN(v[0]) && !math.IsInf(v[0], 0) &&
		!math.IsNaN(v[1]) && !math.IsInf(v[1], 0)
}
