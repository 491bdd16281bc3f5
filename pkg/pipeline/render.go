package pipeline

import (
	"fmt"

	"github.com/rashika27/frameview/pkg/frame"
	"github.com/rashika27/frameview/pkg/render/nodelink"
	"github.com/rashika27/frameview/pkg/render/sink"
	"github.com/rashika27/frameview/pkg/scene"
)

// Render generates output artifacts in the requested formats. The scene
// feeds the JSON and HTML outputs, the frame feeds the topology diagram.
func Render(s *scene.Scene, f *frame.Frame, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte)
	var dot string

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = sink.RenderJSON(s)
		case FormatHTML:
			var htmlOpts []sink.HTMLOption
			if opts.Title != "" {
				htmlOpts = append(htmlOpts, sink.WithTitle(opts.Title))
			}
			data, err = sink.RenderHTML(s, htmlOpts...)
		case FormatDOT, FormatSVG:
			if dot == "" {
				dot = nodelink.ToDOT(f, nodelink.Options{
					Projection: nodelink.Projection(opts.Projection),
					Detailed:   opts.Detailed,
				})
			}
			if format == FormatDOT {
				data = []byte(dot)
			} else {
				data, err = nodelink.RenderSVG(dot)
			}
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}
