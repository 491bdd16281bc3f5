package scene

import (
	"io"

	"github.com/charmbracelet/log"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rashika27/frameview/pkg/frame"
	"github.com/rashika27/frameview/pkg/geom"
)

// Compose builds the scene for f. Members that cannot be drawn are listed in
// Scene.Skipped and do not stop composition. A nil logger discards output.
func Compose(f *frame.Frame, opts Options, logger *log.Logger) *Scene {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	opts = opts.WithDefaults()

	counts := frame.CountConnections(f.Members())
	s := &Scene{
		MemberCount: f.MemberCount(),
		NodeCount:   f.NodeCount(),
		Primitives:  make([]Primitive, 0, f.MemberCount()+2*f.NodeCount()),
	}

	for _, m := range f.Members() {
		start, end, ok := f.Resolve(m)
		if !ok {
			logger.Debug("skipping member with unknown node", "member", m.ID)
			s.Skipped = append(s.Skipped, Skipped{MemberID: m.ID, Start: m.Start, End: m.End, Reason: SkipUnresolved})
			continue
		}

		c, err := geom.CylinderBetween(start.Position, end.Position)
		if err != nil {
			logger.Warn("skipping zero-length member", "member", m.ID)
			s.Skipped = append(s.Skipped, Skipped{MemberID: m.ID, Start: m.Start, End: m.End, Reason: SkipDegenerate})
			continue
		}

		s.Primitives = append(s.Primitives, Primitive{
			ID:          CylinderID(m.ID),
			Kind:        KindCylinder,
			Position:    c.Center,
			Orientation: c.Orientation,
			Length:      c.Length,
			Radius:      opts.MemberRadius,
			Color:       opts.MemberColor,
			Source:      m.ID,
		})
	}

	for _, n := range f.Nodes() {
		s.Primitives = append(s.Primitives, Primitive{
			ID:          NodeID(n.ID),
			Kind:        KindCube,
			Position:    n.Position,
			Orientation: geom.Identity,
			Size:        opts.NodeSize,
			Color:       opts.NodeColor,
			Source:      n.ID,
		})
	}

	for _, id := range counts.Endpoints(f.Members()) {
		n, ok := f.Node(id)
		if !ok {
			continue
		}
		s.Primitives = append(s.Primitives, Primitive{
			ID:          MarkerID(id),
			Kind:        KindSphere,
			Position:    n.Position,
			Orientation: geom.Identity,
			Radius:      opts.EndpointRadius,
			Color:       opts.EndpointColor,
			Source:      id,
		})
	}

	s.Bounds = geom.ComputeBounds(f.Positions())
	s.Translation = r3.Sub(geom.Vec{}, s.Bounds.Center)
	s.Camera = cameraFor(s.Bounds)
	return s
}

// cameraFor places the camera at center + size on every axis, aimed at the
// origin where the translated group sits. A zero-extent scene uses
// MinSceneSize instead.
func cameraFor(b geom.Bounds) Camera {
	size := b.Size
	if size < geom.Epsilon {
		size = MinSceneSize
	}
	return Camera{
		Position: r3.Add(b.Center, geom.Vec{X: size, Y: size, Z: size}),
		Target:   geom.Vec{},
		FOV:      DefaultFOV,
		Near:     DefaultNear,
		Far:      size * FarFactor,
	}
}
