package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/rashika27/frameview/pkg/frame"
	"github.com/rashika27/frameview/pkg/geom"
)

// Projection names the two axes a diagram is drawn on.
type Projection string

// Supported projections.
const (
	ProjectXY Projection = "xy"
	ProjectXZ Projection = "xz"
	ProjectYZ Projection = "yz"
)

// DefaultWidth is the drawing width in inches.
const DefaultWidth = 8.0

// ValidProjections is the set of supported projections.
var ValidProjections = map[Projection]bool{
	ProjectXY: true,
	ProjectXZ: true,
	ProjectYZ: true,
}

// ParseProjection validates s. An empty string selects ProjectXY.
func ParseProjection(s string) (Projection, error) {
	if s == "" {
		return ProjectXY, nil
	}
	p := Projection(s)
	if !ValidProjections[p] {
		return "", fmt.Errorf("invalid projection: %q (must be one of: xy, xz, yz)", s)
	}
	return p, nil
}

// Options configures node-link diagram rendering.
type Options struct {
	Projection Projection
	// Width is the drawing width in inches. Zero means DefaultWidth.
	Width float64
	// Detailed includes node coordinates in labels.
	Detailed bool
}

// Project maps v onto the drawing plane.
func (p Projection) Project(v geom.Vec) (float64, float64) {
	switch p {
	case ProjectXZ:
		return v.X, v.Z
	case ProjectYZ:
		return v.Y, v.Z
	default:
		return v.X, v.Y
	}
}

// ToDOT converts a frame to Graphviz DOT source with pinned node positions.
// The result is meant for the neato engine; [RenderSVG] selects it.
func ToDOT(f *frame.Frame, opts Options) string {
	if opts.Projection == "" {
		opts.Projection = ProjectXY
	}
	if opts.Width <= 0 {
		opts.Width = DefaultWidth
	}
	counts := frame.CountConnections(f.Members())
	scale := planeScale(f, opts)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  splines=false;\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, width=0.3, fixedsize=true, fontsize=10];\n")
	buf.WriteString("  edge [penwidth=2, color=\"#8a9bb0\"];\n")
	buf.WriteString("\n")

	for _, n := range f.Nodes() {
		x, y := opts.Projection.Project(n.Position)
		attrs := fmt.Sprintf("label=%q, pos=\"%.4f,%.4f!\"", fmtLabel(n, opts.Detailed), x*scale, y*scale)
		if counts.IsEndpoint(n.ID) {
			attrs += ", fillcolor=\"#e4572e\", fontcolor=white"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, attrs)
	}

	buf.WriteString("\n")
	for _, m := range f.Members() {
		if _, _, ok := f.Resolve(m); !ok {
			continue
		}
		fmt.Fprintf(&buf, "  %q -- %q;\n", m.Start, m.End)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(n frame.Node, detailed bool) string {
	if !detailed {
		return n.ID
	}
	p := n.Position
	return fmt.Sprintf("%s\n(%g, %g, %g)", n.ID, p.X, p.Y, p.Z)
}

// planeScale returns inches per model unit so the longest projected extent
// spans opts.Width.
func planeScale(f *frame.Frame, opts Options) float64 {
	if f.NodeCount() == 0 {
		return 1
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range f.Nodes() {
		x, y := opts.Projection.Project(n.Position)
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	ext := math.Max(maxX-minX, maxY-minY)
	if ext < geom.Epsilon {
		return 1
	}
	return opts.Width / ext
}

// RenderSVG renders DOT source to SVG using Graphviz's neato engine, which
// honors the pinned node positions.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
