package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/rashika27/frameview/pkg/cache"
	"github.com/rashika27/frameview/pkg/errors"
	"github.com/rashika27/frameview/pkg/scene"
)

const portalJSON = `{
  "members": [
    {"start": "1", "end": "2"},
    {"start": "2", "end": "3"},
    {"start": "3", "end": "4"},
    {"start": "4", "end": "ghost"}
  ],
  "nodes": [
    {"id": "1", "x": 0, "y": 0, "z": 0},
    {"id": "2", "x": 0, "y": 4, "z": 0},
    {"id": "3", "x": 6, "y": 4, "z": 0},
    {"id": "4", "x": 6, "y": 0, "z": 0}
  ]
}`

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"json", false},
		{"html", false},
		{"dot", false},
		{"svg", false},
		{"png", true},
		{"JSON", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"json", "svg"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}

	if err := ValidateFormats([]string{"json", "pdf"}); err == nil {
		t.Error("Invalid format should fail")
	}

	// Empty slice is valid
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{Path: "/tmp/frames/portal.xlsx"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults: %v", err)
	}

	if opts.Source != "portal.xlsx" {
		t.Errorf("Source = %q, want portal.xlsx", opts.Source)
	}
	if opts.Title != "portal.xlsx" {
		t.Errorf("Title = %q, want the source name", opts.Title)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatJSON {
		t.Errorf("Formats = %v, want [json]", opts.Formats)
	}
	if opts.Projection != "xy" {
		t.Errorf("Projection = %q, want xy", opts.Projection)
	}
	if opts.Scene.MemberRadius != scene.DefaultMemberRadius {
		t.Errorf("MemberRadius = %v, want default", opts.Scene.MemberRadius)
	}
}

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"no input", Options{}, true},
		{"data", Options{Data: []byte("x")}, false},
		{"bad format", Options{Data: []byte("x"), Formats: []string{"gif"}}, true},
		{"bad projection", Options{Data: []byte("x"), Projection: "zz"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if (err != nil) != tt.wantErr {
				t.Errorf("error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestArtifactKeyOpts(t *testing.T) {
	opts := Options{Projection: "xz", Title: "Portal"}

	if got := opts.ArtifactKeyOpts(FormatJSON); got != (cache.ArtifactKeyOpts{Format: "json"}) {
		t.Errorf("json key opts should ignore render options: %+v", got)
	}
	if got := opts.ArtifactKeyOpts(FormatSVG); got.Projection != "xz" {
		t.Errorf("svg key opts should carry projection: %+v", got)
	}
	if got := opts.ArtifactKeyOpts(FormatHTML); got.Title != "Portal" {
		t.Errorf("html key opts should carry title: %+v", got)
	}
}

func TestIsJSON(t *testing.T) {
	tests := []struct {
		source string
		data   string
		want   bool
	}{
		{"frame.json", "", true},
		{"FRAME.JSON", "", true},
		{"", "  \n{\"members\": []}", true},
		{"frame.xlsx", "PK\x03\x04", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := IsJSON(tt.source, []byte(tt.data)); got != tt.want {
			t.Errorf("IsJSON(%q, %q) = %v, want %v", tt.source, tt.data, got, tt.want)
		}
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		data   []byte
		code   errors.Code
	}{
		{"empty", "frame.xlsx", nil, errors.ErrCodeFileRead},
		{"corrupt workbook", "frame.xlsx", []byte("not a workbook"), errors.ErrCodeFileRead},
		{"bad json", "frame.json", []byte("{"), errors.ErrCodeFileRead},
		{"one sheet", "frame.xlsx", singleSheet(t), errors.ErrCodeMissingSheet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.source, tt.data)
			if !errors.Is(err, tt.code) {
				t.Errorf("Decode() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func singleSheet(t *testing.T) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetRow("Sheet1", "A1", &[]any{"Start", "End"}); err != nil {
		t.Fatal(err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestExecute(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	res, err := r.Execute(context.Background(), Options{
		Source:  "portal.json",
		Data:    []byte(portalJSON),
		Formats: []string{FormatJSON, FormatHTML, FormatDOT},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if res.Stats.Members != 4 || res.Stats.Nodes != 4 {
		t.Errorf("Stats = %+v, want 4 members and 4 nodes", res.Stats)
	}
	// 3 drawable members, 4 node cubes, endpoints at node 1 and the member
	// end "ghost" (which has no marker since the node does not exist).
	if res.Stats.Primitives != 3+4+1 {
		t.Errorf("Primitives = %d, want 8", res.Stats.Primitives)
	}
	if res.Stats.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", res.Stats.Skipped)
	}
	for _, f := range []string{FormatJSON, FormatHTML, FormatDOT} {
		if len(res.Artifacts[f]) == 0 {
			t.Errorf("missing %s artifact", f)
		}
	}
	if !strings.Contains(string(res.Artifacts[FormatDOT]), `"1" -- "2"`) {
		t.Error("dot artifact missing edge")
	}
	if res.CacheInfo.LoadHit || res.CacheInfo.RenderHit {
		t.Error("null cache should never hit")
	}
}

func TestExecuteCachesByContent(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(c, nil, nil)
	defer r.Close()

	ctx := context.Background()
	opts := Options{Source: "portal.json", Data: []byte(portalJSON)}

	first, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheInfo.LoadHit {
		t.Error("first load should miss")
	}

	// Same bytes under another name still hit.
	opts.Source = "copy.json"
	second, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheInfo.LoadHit || !second.CacheInfo.RenderHit {
		t.Errorf("second run should hit the cache: %+v", second.CacheInfo)
	}
	if first.FrameHash != second.FrameHash {
		t.Error("identical bytes should hash identically")
	}
	if string(first.Artifacts[FormatJSON]) != string(second.Artifacts[FormatJSON]) {
		t.Error("cached artifact differs from rendered one")
	}

	// Refresh bypasses the frame cache.
	opts.Refresh = true
	third, err := r.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("third Execute: %v", err)
	}
	if third.CacheInfo.LoadHit {
		t.Error("refresh should not hit the frame cache")
	}
}

func TestExecuteLoadFailure(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{Source: "broken.xlsx", Data: []byte("garbage")})
	if !errors.IsLoadFailure(err) {
		t.Errorf("Execute error = %v, want a load failure", err)
	}
}

func TestExecuteReadsPath(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	_, err := r.Execute(context.Background(), Options{Path: "/nonexistent/frame.xlsx"})
	if !errors.Is(err, errors.ErrCodeFileRead) {
		t.Errorf("Execute error = %v, want FILE_READ_FAILURE", err)
	}
}
