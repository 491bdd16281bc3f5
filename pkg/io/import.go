package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rashika27/frameview/pkg/frame"
	"github.com/rashika27/frameview/pkg/geom"
)

// ReadJSON decodes a JSON frame from r.
//
// ReadJSON returns an error if the JSON is malformed or a node has an empty
// identifier. Members that reference unknown nodes are kept; they are dropped
// later, at scene composition. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*frame.Frame, error) {
	var data dataset
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	nodes := make([]frame.Node, 0, len(data.Nodes))
	for i, n := range data.Nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node %d: missing id", i)
		}
		nodes = append(nodes, frame.Node{
			ID:       n.ID,
			Position: geom.Vec{X: n.X, Y: n.Y, Z: n.Z},
		})
	}

	members := make([]frame.Member, 0, len(data.Members))
	for _, m := range data.Members {
		members = append(members, frame.Member{Start: m.Start, End: m.End})
	}

	return frame.New(members, nodes), nil
}

// ImportJSON reads a JSON file at path and returns the decoded frame.
// The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (*frame.Frame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
