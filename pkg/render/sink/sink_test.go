package sink

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rashika27/frameview/pkg/frame"
	"github.com/rashika27/frameview/pkg/geom"
	"github.com/rashika27/frameview/pkg/scene"
)

func testScene() *scene.Scene {
	f := frame.New(
		[]frame.Member{{Start: "1", End: "2"}, {Start: "2", End: "ghost"}},
		[]frame.Node{{ID: "1"}, {ID: "2", Position: geom.Vec{Y: 5}}},
	)
	return scene.Compose(f, scene.Options{}, nil)
}

func TestRenderJSON(t *testing.T) {
	data, err := RenderJSON(testScene())
	if err != nil {
		t.Fatalf("RenderJSON() error = %v", err)
	}

	var out jsonOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if out.Members != 2 || out.Nodes != 2 {
		t.Errorf("counts = %d members, %d nodes", out.Members, out.Nodes)
	}
	if out.Group.Position != [3]float64{0, -2.5, 0} {
		t.Errorf("group position = %v", out.Group.Position)
	}
	if out.Camera.Target != [3]float64{} {
		t.Errorf("camera target = %v, want origin", out.Camera.Target)
	}

	var cyl *jsonPrimitive
	for i := range out.Primitives {
		if out.Primitives[i].Kind == "cylinder" {
			cyl = &out.Primitives[i]
		}
	}
	if cyl == nil {
		t.Fatal("no cylinder in output")
	}
	if cyl.ID != "member:1->2" || cyl.Length != 5 {
		t.Errorf("cylinder = %+v", *cyl)
	}
	if cyl.Position != [3]float64{0, 2.5, 0} || cyl.Quaternion != [4]float64{0, 0, 0, 1} {
		t.Errorf("cylinder transform = %v %v", cyl.Position, cyl.Quaternion)
	}

	if len(out.Skipped) != 1 || out.Skipped[0].Reason != "unresolved_reference" {
		t.Errorf("skipped = %+v", out.Skipped)
	}
}

func TestRenderJSONEmptyScene(t *testing.T) {
	data, err := RenderJSON(scene.Compose(frame.Empty(), scene.Options{}, nil))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte(`"primitives": []`)) {
		t.Errorf("empty scene should encode an empty primitive list:\n%s", data)
	}
}

func TestRenderHTML(t *testing.T) {
	page, err := RenderHTML(testScene(), WithTitle("Test Frame"), WithTheme("dark"), WithSize("400px", "300px"))
	if err != nil {
		t.Fatalf("RenderHTML() error = %v", err)
	}
	for _, want := range []string{"<html", "Test Frame", "echarts"} {
		if !bytes.Contains(page, []byte(want)) {
			t.Errorf("page missing %q", want)
		}
	}
}
