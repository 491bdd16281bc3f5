// Package render turns composed scenes into outputs a viewer can display.
//
// # Overview
//
// Rendering is split by output family:
//
//   - [sink]: the scene description as JSON (for a WebGL client such as
//     three.js) and as a self-contained interactive HTML page.
//   - [nodelink]: a flat topology diagram of the frame drawn with Graphviz,
//     with node positions pinned to a plane projection of their coordinates.
//
// None of these renderers rasterize the 3D scene themselves; the JSON and
// HTML outputs hand primitives to a browser-side runtime that owns lighting,
// camera interaction and drawing.
//
//	data, err := sink.RenderJSON(s)
//	page, err := sink.RenderHTML(s, sink.WithTitle("Frame"))
//	dot := nodelink.ToDOT(f, nodelink.Options{Projection: nodelink.ProjectXZ})
//	svg, err := nodelink.RenderSVG(dot)
//
// [sink]: github.com/rashika27/frameview/pkg/render/sink
// [nodelink]: github.com/rashika27/frameview/pkg/render/nodelink
package render
