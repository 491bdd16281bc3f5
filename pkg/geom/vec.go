package geom

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vec is a point or direction in 3D space.
type Vec = r3.Vec

// Up is the default elongation axis of a cylinder primitive.
var Up = Vec{X: 0, Y: 1, Z: 0}

// Epsilon is the length below which a direction is treated as zero.
const Epsilon = 1e-9

// Array returns v as an [x, y, z] triple.
func Array(v Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Vec) Vec {
	return r3.Scale(0.5, r3.Add(a, b))
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec) float64 {
	return r3.Norm(r3.Sub(b, a))
}

// Parallel reports whether a and b point the same way within tol.
// Zero vectors are never parallel to anything.
func Parallel(a, b Vec, tol float64) bool {
	na, nb := r3.Norm(a), r3.Norm(b)
	if na < Epsilon || nb < Epsilon {
		return false
	}
	return math.Abs(r3.Dot(a, b)/(na*nb)-1) <= tol
}

// ApproxEqual reports whether every component of a and b differs by at most tol.
func ApproxEqual(a, b Vec, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}
