package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// MarginFactor scales the largest axis extent into the scene size.
	MarginFactor = 1.5

	// DefaultSceneSize is the size reported for an empty scene.
	DefaultSceneSize = 10.0
)

// Bounds is the axis-aligned extent of a set of points.
type Bounds struct {
	Min    Vec
	Max    Vec
	Center Vec
	// Size is the largest axis extent scaled by MarginFactor.
	Size  float64
	Empty bool
}

// Extent returns Max - Min. It is the zero vector for empty bounds.
func (b Bounds) Extent() Vec {
	if b.Empty {
		return Vec{}
	}
	return r3.Sub(b.Max, b.Min)
}

// ComputeBounds folds points into their bounding box.
// With no points it returns a centered box of DefaultSceneSize so callers
// never see infinities.
func ComputeBounds(points []Vec) Bounds {
	if len(points) == 0 {
		return Bounds{Size: DefaultSceneSize, Empty: true}
	}

	inf := math.Inf(1)
	lo := Vec{X: inf, Y: inf, Z: inf}
	hi := Vec{X: -inf, Y: -inf, Z: -inf}
	for _, p := range points {
		lo = Vec{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = Vec{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}

	ext := r3.Sub(hi, lo)
	return Bounds{
		Min:    lo,
		Max:    hi,
		Center: Midpoint(lo, hi),
		Size:   math.Max(ext.X, math.Max(ext.Y, ext.Z)) * MarginFactor,
	}
}
