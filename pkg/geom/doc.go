// Package geom provides the vector math behind frame scenes.
//
// # Overview
//
// Two operations live here:
//
//   - [CylinderBetween] turns a pair of 3D endpoints into an oriented cylinder:
//     its center, its length, and the rotation that carries the cylinder's
//     default elongation axis ([Up]) onto the member direction.
//   - [ComputeBounds] folds node positions into an axis-aligned box, a center,
//     and a scene size used to place the camera.
//
// Vectors are gonum [r3.Vec] values and rotations are unit quaternions backed
// by gonum's [quat.Number], so the same values can be fed straight into the
// rest of the gonum ecosystem.
//
// # Degenerate input
//
// Coincident endpoints have no direction, so no rotation is defined for them.
// [CylinderBetween] reports this as [ErrDegenerate] rather than returning a
// zero-length cylinder; callers skip the element and keep going.
//
//	c, err := geom.CylinderBetween(a, b)
//	if errors.Is(err, geom.ErrDegenerate) {
//	    // skip this member
//	}
//
// [r3.Vec]: https://pkg.go.dev/gonum.org/v1/gonum/spatial/r3#Vec
// [quat.Number]: https://pkg.go.dev/gonum.org/v1/gonum/num/quat#Number
package geom
