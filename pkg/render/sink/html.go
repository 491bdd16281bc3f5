package sink

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/rashika27/frameview/pkg/geom"
	"github.com/rashika27/frameview/pkg/scene"
)

// HTMLOption configures HTML rendering via [RenderHTML].
type HTMLOption func(*htmlRenderer)

type htmlRenderer struct {
	title  string
	width  string
	height string
	theme  string
}

// WithTitle sets the page and chart title.
func WithTitle(t string) HTMLOption { return func(r *htmlRenderer) { r.title = t } }

// WithSize sets the chart width and height as CSS lengths (e.g. "900px").
func WithSize(w, h string) HTMLOption {
	return func(r *htmlRenderer) { r.width, r.height = w, h }
}

// WithTheme selects an ECharts theme such as "dark" or "white".
func WithTheme(t string) HTMLOption { return func(r *htmlRenderer) { r.theme = t } }

// RenderHTML renders s as an interactive HTML page. Coordinates are written
// with the scene's group translation applied, so the frame is centered.
func RenderHTML(s *scene.Scene, options ...HTMLOption) ([]byte, error) {
	r := &htmlRenderer{title: "Frame", width: "900px", height: "700px", theme: "white"}
	for _, o := range options {
		o(r)
	}

	page := components.NewPage()
	page.PageTitle = r.title
	page.AddCharts(r.members(s), r.nodes(s))

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *htmlRenderer) init(title, subtitle string) []charts.GlobalOpts {
	return []charts.GlobalOpts{
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: r.title,
			Width:     r.width,
			Height:    r.height,
			Theme:     r.theme,
		}),
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
	}
}

// members draws each cylinder as a two-point line series.
func (r *htmlRenderer) members(s *scene.Scene) *charts.Line3D {
	cyl := s.Cylinders()
	line := charts.NewLine3D()
	line.SetGlobalOptions(r.init(r.title+" members",
		fmt.Sprintf("%d drawn, %d skipped", len(cyl), len(s.Skipped)))...)

	for _, c := range cyl {
		a, b := geom.Cylinder{Center: c.Position, Orientation: c.Orientation, Length: c.Length}.Ends()
		line.AddSeries(c.Source, []opts.Chart3DData{
			point(a, s.Translation, ""),
			point(b, s.Translation, ""),
		}, charts.WithLineStyleOpts(opts.LineStyle{Color: c.Color, Width: 3}))
	}
	return line
}

// nodes draws node cubes and endpoint markers as two scatter series.
func (r *htmlRenderer) nodes(s *scene.Scene) *charts.Scatter3D {
	sc := charts.NewScatter3D()
	sc.SetGlobalOptions(r.init(r.title+" nodes",
		fmt.Sprintf("%d nodes, %d endpoints", s.NodeCount, len(s.Markers())))...)

	var nodes, ends []opts.Chart3DData
	nodeColor, endColor := scene.DefaultNodeColor, scene.DefaultEndpointColor
	for _, p := range s.Primitives {
		switch p.Kind {
		case scene.KindCube:
			nodes = append(nodes, point(p.Position, s.Translation, p.Source))
			nodeColor = p.Color
		case scene.KindSphere:
			ends = append(ends, point(p.Position, s.Translation, p.Source))
			endColor = p.Color
		}
	}

	sc.AddSeries("nodes", nodes, charts.WithItemStyleOpts(opts.ItemStyle{Color: nodeColor}))
	sc.AddSeries("endpoints", ends, charts.WithItemStyleOpts(opts.ItemStyle{Color: endColor}))
	return sc
}

func point(p, offset geom.Vec, name string) opts.Chart3DData {
	q := r3.Add(p, offset)
	return opts.Chart3DData{Name: name, Value: []interface{}{q.X, q.Y, q.Z}}
}
