package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rashika27/frameview/pkg/frame"
)

type dataset struct {
	Members []member `json:"members"`
	Nodes   []node   `json:"nodes"`
}

type member struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type node struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Z  float64 `json:"z"`
}

// WriteJSON encodes a frame as JSON and writes it to w.
// This format can be re-imported with [ReadJSON] for round-trip processing.
func WriteJSON(f *frame.Frame, w io.Writer) error {
	out := dataset{
		Members: make([]member, len(f.Members())),
		Nodes:   make([]node, len(f.Nodes())),
	}
	for i, m := range f.Members() {
		out.Members[i] = member{Start: m.Start, End: m.End}
	}
	for i, n := range f.Nodes() {
		out.Nodes[i] = node{ID: n.ID, X: n.Position.X, Y: n.Position.Y, Z: n.Position.Z}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// MarshalJSON returns the JSON encoding of f.
func MarshalJSON(f *frame.Frame) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteJSON(f, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportJSON writes a frame to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(f *frame.Frame, path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	return WriteJSON(f, out)
}
