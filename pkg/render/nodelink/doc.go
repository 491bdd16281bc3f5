// Package nodelink draws a frame's topology as a flat node-link diagram.
//
// # Overview
//
// The 3D scene is the main output; this package produces a quick 2D plan or
// elevation view for reports and terminals that cannot run WebGL. Nodes are
// pinned to a plane projection of their coordinates and members are drawn as
// straight undirected edges. Nodes that only one member touches are filled so
// free ends stand out.
//
// # Usage
//
//	dot := nodelink.ToDOT(f, nodelink.Options{Projection: nodelink.ProjectXZ})
//	svg, err := nodelink.RenderSVG(dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Projection: which two axes map to the drawing plane (xy, xz, yz)
//   - Width: drawing width in inches the longest extent is scaled to
//   - Detailed: include coordinates in node labels
//
// Members that reference unknown nodes are left out, the same way the 3D
// scene leaves them out.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] with the neato engine for
// in-process SVG rendering.
package nodelink
