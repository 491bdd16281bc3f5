package geom

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDegenerate is returned when a cylinder's endpoints coincide.
var ErrDegenerate = errors.New("degenerate geometry: endpoints coincide")

// Cylinder places a cylinder primitive between two points.
// The primitive is centered at Center, elongated along Up in its own frame,
// and rotated by Orientation.
type Cylinder struct {
	Center      Vec
	Orientation Quat
	Length      float64
}

// Direction returns the unit vector the cylinder is aligned with.
func (c Cylinder) Direction() Vec {
	return c.Orientation.Rotate(Up)
}

// Ends returns the two endpoints the cylinder spans.
func (c Cylinder) Ends() (Vec, Vec) {
	half := r3.Scale(c.Length/2, c.Direction())
	return r3.Sub(c.Center, half), r3.Add(c.Center, half)
}

// CylinderBetween computes the cylinder spanning start and end.
// It returns ErrDegenerate when the points are closer than Epsilon.
func CylinderBetween(start, end Vec) (Cylinder, error) {
	dir := r3.Sub(end, start)
	length := r3.Norm(dir)
	if length < Epsilon {
		return Cylinder{}, ErrDegenerate
	}
	return Cylinder{
		Center:      Midpoint(start, end),
		Orientation: ShortestArc(Up, r3.Scale(1/length, dir)),
		Length:      length,
	}, nil
}
