// Package pkg holds the frameview libraries.
//
// # Overview
//
// frameview reads a workbook describing a structural frame (members and
// nodes), composes a centered 3D scene and renders it. The packages are:
//
//  1. [sheet] and [io] - Decoding workbooks and frame JSON
//  2. [frame] and [geom] - The frame model and the vector math behind it
//  3. [scene] - Cylinders, node markers, endpoint markers and the camera
//  4. [render] - Scene JSON, the interactive page and the topology diagram
//  5. [pipeline] - Orchestration (load → compose → render) with caching
//  6. [viewer] and [server] - The browser viewer and its HTTP surface
//
// # Architecture
//
//	Workbook (xlsx) or frame JSON
//	         ↓
//	    [pipeline] Load → [frame.Frame]
//	         ↓
//	    [pipeline] Compose → [scene.Scene]
//	         ↓
//	    [pipeline] Render → json / html / dot / svg
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	res, err := runner.Execute(ctx, pipeline.Options{Path: "portal.xlsx", Formats: []string{"html"}})
//	if err != nil {
//	    return err
//	}
//	os.WriteFile("portal.html", res.Artifacts["html"], 0o644)
package pkg
