// Package scene composes a renderable 3D scene from a frame.
//
// [Compose] maps every resolvable member to an oriented cylinder, every node
// to a cube, and every node touched by exactly one member to an extra sphere
// marker. It then centers the scene on the origin with a group translation
// and places a camera outside the frame's bounds. Rasterization, lighting and
// orbit controls belong to whichever renderer consumes the scene.
//
// Primitive identifiers are derived from member and node identifiers, never
// from list positions, so filtering members out of a scene does not change
// the identity of the ones left behind.
package scene

import (
	"github.com/rashika27/frameview/pkg/geom"
)

// Kind identifies the shape of a primitive.
type Kind string

// Primitive kinds.
const (
	KindCylinder Kind = "cylinder"
	KindCube     Kind = "cube"
	KindSphere   Kind = "sphere"
)

// SkipReason explains why a member has no cylinder.
type SkipReason string

// Skip reasons.
const (
	SkipUnresolved SkipReason = "unresolved_reference"
	SkipDegenerate SkipReason = "degenerate_geometry"
)

// Primitive is one drawable element, positioned in frame coordinates.
// The group translation moves all primitives together.
type Primitive struct {
	ID          string
	Kind        Kind
	Position    geom.Vec
	Orientation geom.Quat
	// Length is the cylinder height; zero for other kinds.
	Length float64
	// Radius applies to cylinders and spheres.
	Radius float64
	// Size is the cube edge length.
	Size  float64
	Color string
	// Source is the member or node identifier the primitive was built from.
	Source string
}

// Skipped records a member that was left out of the scene.
type Skipped struct {
	MemberID string
	Start    string
	End      string
	Reason   SkipReason
}

// Camera is a perspective camera placement.
type Camera struct {
	Position geom.Vec
	Target   geom.Vec
	FOV      float64
	Near     float64
	Far      float64
}

// Scene is a composed, centered scene description.
type Scene struct {
	// Translation is applied to the group holding every primitive.
	Translation geom.Vec
	Camera      Camera
	Bounds      geom.Bounds
	Primitives  []Primitive
	Skipped     []Skipped

	MemberCount int
	NodeCount   int
}

// Cylinders returns the cylinder primitives in member order.
func (s *Scene) Cylinders() []Primitive {
	return s.byKind(KindCylinder)
}

// Markers returns the endpoint sphere primitives.
func (s *Scene) Markers() []Primitive {
	return s.byKind(KindSphere)
}

// Primitive looks up a primitive by identifier.
func (s *Scene) Primitive(id string) (Primitive, bool) {
	for _, p := range s.Primitives {
		if p.ID == id {
			return p, true
		}
	}
	return Primitive{}, false
}

func (s *Scene) byKind(k Kind) []Primitive {
	var out []Primitive
	for _, p := range s.Primitives {
		if p.Kind == k {
			out = append(out, p)
		}
	}
	return out
}

// Primitive ID helpers.
func CylinderID(memberID string) string { return "member:" + memberID }
func NodeID(nodeID string) string       { return "node:" + nodeID }
func MarkerID(nodeID string) string     { return "endpoint:" + nodeID }
