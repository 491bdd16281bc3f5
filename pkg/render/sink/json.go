package sink

import (
	"encoding/json"

	"github.com/rashika27/frameview/pkg/geom"
	"github.com/rashika27/frameview/pkg/scene"
)

type jsonOutput struct {
	Group      jsonGroup       `json:"group"`
	Camera     jsonCamera      `json:"camera"`
	Bounds     jsonBounds      `json:"bounds"`
	Primitives []jsonPrimitive `json:"primitives"`
	Skipped    []jsonSkipped   `json:"skipped,omitempty"`
	Members    int             `json:"members"`
	Nodes      int             `json:"nodes"`
}

type jsonGroup struct {
	Position [3]float64 `json:"position"`
}

type jsonCamera struct {
	Position [3]float64 `json:"position"`
	Target   [3]float64 `json:"target"`
	FOV      float64    `json:"fov"`
	Near     float64    `json:"near"`
	Far      float64    `json:"far"`
}

type jsonBounds struct {
	Min    [3]float64 `json:"min"`
	Max    [3]float64 `json:"max"`
	Center [3]float64 `json:"center"`
	Size   float64    `json:"size"`
}

type jsonPrimitive struct {
	ID         string     `json:"id"`
	Kind       string     `json:"kind"`
	Position   [3]float64 `json:"position"`
	Quaternion [4]float64 `json:"quaternion"`
	Length     float64    `json:"length,omitempty"`
	Radius     float64    `json:"radius,omitempty"`
	Size       float64    `json:"size,omitempty"`
	Color      string     `json:"color,omitempty"`
	Source     string     `json:"source"`
}

type jsonSkipped struct {
	Member string `json:"member"`
	Start  string `json:"start"`
	End    string `json:"end"`
	Reason string `json:"reason"`
}

// RenderJSON encodes s as an indented JSON scene description.
func RenderJSON(s *scene.Scene) ([]byte, error) {
	out := jsonOutput{
		Group: jsonGroup{Position: geom.Array(s.Translation)},
		Camera: jsonCamera{
			Position: geom.Array(s.Camera.Position),
			Target:   geom.Array(s.Camera.Target),
			FOV:      s.Camera.FOV,
			Near:     s.Camera.Near,
			Far:      s.Camera.Far,
		},
		Bounds: jsonBounds{
			Min:    geom.Array(s.Bounds.Min),
			Max:    geom.Array(s.Bounds.Max),
			Center: geom.Array(s.Bounds.Center),
			Size:   s.Bounds.Size,
		},
		Primitives: make([]jsonPrimitive, 0, len(s.Primitives)),
		Members:    s.MemberCount,
		Nodes:      s.NodeCount,
	}

	for _, p := range s.Primitives {
		out.Primitives = append(out.Primitives, jsonPrimitive{
			ID:         p.ID,
			Kind:       string(p.Kind),
			Position:   geom.Array(p.Position),
			Quaternion: p.Orientation.Array(),
			Length:     p.Length,
			Radius:     p.Radius,
			Size:       p.Size,
			Color:      p.Color,
			Source:     p.Source,
		})
	}
	for _, sk := range s.Skipped {
		out.Skipped = append(out.Skipped, jsonSkipped{
			Member: sk.MemberID,
			Start:  sk.Start,
			End:    sk.End,
			Reason: string(sk.Reason),
		})
	}

	return json.MarshalIndent(out, "", "  ")
}
