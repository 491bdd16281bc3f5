// Package pipeline provides the load → compose → render pipeline for frameview.
//
// The CLI and the HTTP viewer both run frames through this package so that a
// spreadsheet produces the same scene and the same artifacts whichever entry
// point received it.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Decode spreadsheet or JSON bytes into a frame
//  2. Compose: Turn the frame into a centered 3D scene
//  3. Render: Generate output in various formats (JSON, HTML, DOT, SVG)
//
// Load and Render are cached: frames by the hash of the input bytes and
// artifacts by the hash of the scene they were drawn from. Compose is cheap
// and always runs.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Source:  "portal.xlsx",
//	    Data:    data,
//	    Formats: []string{"json", "html"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	page := result.Artifacts["html"]
package pipeline

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rashika27/frameview/pkg/cache"
	"github.com/rashika27/frameview/pkg/frame"
	"github.com/rashika27/frameview/pkg/render/nodelink"
	"github.com/rashika27/frameview/pkg/scene"
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatHTML = "html"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// DefaultFormat is rendered when no format is requested.
const DefaultFormat = FormatJSON

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatHTML: true,
	FormatDOT:  true,
	FormatSVG:  true,
}

// Options contains all configuration for a pipeline run.
type Options struct {
	// Load options
	Source  string `json:"source,omitempty"` // display name, also used to detect JSON input
	Path    string `json:"path,omitempty"`   // read Data from this file when Data is empty
	Data    []byte `json:"-"`
	Refresh bool   `json:"refresh,omitempty"` // bypass cached frames

	// Compose options
	Scene scene.Options `json:"scene,omitempty"`

	// Render options
	Formats    []string `json:"formats,omitempty"`
	Projection string   `json:"projection,omitempty"`
	Title      string   `json:"title,omitempty"`
	Detailed   bool     `json:"detailed,omitempty"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Frame is the decoded frame.
	Frame *frame.Frame

	// FrameHash is the content hash of the input bytes.
	FrameHash string

	// Scene is the composed scene.
	Scene *scene.Scene

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Members     int
	Nodes       int
	Primitives  int
	Skipped     int
	LoadTime    time.Duration
	ComposeTime time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the frame came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, html, dot, svg)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that there is something to load.
func (o *Options) ValidateForLoad() error {
	if len(o.Data) == 0 && o.Path == "" {
		return fmt.Errorf("data or path is required")
	}
	if o.Source == "" && o.Path != "" {
		o.Source = filepath.Base(o.Path)
	}
	return nil
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.Projection == "" {
		o.Projection = string(nodelink.ProjectXY)
	}
	if o.Title == "" {
		o.Title = o.Source
	}
	o.Scene = o.Scene.WithDefaults()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	_, err := nodelink.ParseProjection(o.Projection)
	return err
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatHTML:
		opts.Title = o.Title
	case FormatDOT, FormatSVG:
		opts.Projection = o.Projection
		if o.Detailed {
			opts.Projection += "+detailed"
		}
	}
	return opts
}
