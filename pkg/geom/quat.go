package geom

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Quat is a rotation stored as a unit quaternion (X, Y, Z imaginary, W real).
type Quat struct {
	X, Y, Z, W float64
}

// Identity is the rotation that leaves every vector unchanged.
var Identity = Quat{W: 1}

// FromNumber converts a gonum quaternion into a Quat.
func FromNumber(n quat.Number) Quat {
	return Quat{X: n.Imag, Y: n.Jmag, Z: n.Kmag, W: n.Real}
}

// Number returns q as a gonum quaternion.
func (q Quat) Number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

// Array returns q in [x, y, z, w] order.
func (q Quat) Array() [4]float64 {
	return [4]float64{q.X, q.Y, q.Z, q.W}
}

// Norm returns the magnitude of q.
func (q Quat) Norm() float64 {
	return quat.Abs(q.Number())
}

// Normalize returns q scaled to unit length. The zero quaternion maps to Identity.
func (q Quat) Normalize() Quat {
	n := q.Norm()
	if n < Epsilon {
		return Identity
	}
	return FromNumber(quat.Scale(1/n, q.Number()))
}

// Rotate applies the rotation q to v.
func (q Quat) Rotate(v Vec) Vec {
	return r3.Rotation(q.Normalize().Number()).Rotate(v)
}

// ApproxEqual reports whether q and p describe the same rotation within tol.
// q and -q are the same rotation.
func (q Quat) ApproxEqual(p Quat, tol float64) bool {
	same := math.Abs(q.X-p.X) <= tol && math.Abs(q.Y-p.Y) <= tol &&
		math.Abs(q.Z-p.Z) <= tol && math.Abs(q.W-p.W) <= tol
	flipped := math.Abs(q.X+p.X) <= tol && math.Abs(q.Y+p.Y) <= tol &&
		math.Abs(q.Z+p.Z) <= tol && math.Abs(q.W+p.W) <= tol
	return same || flipped
}

// ShortestArc returns the smallest rotation that carries the unit vector from
// onto the unit vector to. When the two are opposite, the half turn is taken
// about an axis perpendicular to from.
func ShortestArc(from, to Vec) Quat {
	d := r3.Dot(from, to)
	if d < -1+Epsilon {
		axis := r3.Cross(Vec{X: 1}, from)
		if r3.Norm(axis) < Epsilon {
			axis = r3.Cross(Vec{Y: 1}, from)
		}
		axis = r3.Unit(axis)
		return Quat{X: axis.X, Y: axis.Y, Z: axis.Z, W: 0}
	}
	c := r3.Cross(from, to)
	return Quat{X: c.X, Y: c.Y, Z: c.Z, W: 1 + d}.Normalize()
}
