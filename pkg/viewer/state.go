// Package viewer holds the dataset currently shown by the frame viewer.
//
// A [State] is an immutable snapshot: the decoded frame, its composed scene
// and the status message shown next to it. Every upload builds a fresh
// State and swaps it in whole, so readers never observe a half-replaced
// dataset. A failed upload swaps in an empty State that carries the error.
package viewer

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rashika27/frameview/pkg/errors"
	"github.com/rashika27/frameview/pkg/frame"
	"github.com/rashika27/frameview/pkg/scene"
)

// EmptyMessage is shown before anything has been loaded.
const EmptyMessage = "No file loaded"

// State is one snapshot of the viewer. Treat it as read-only.
type State struct {
	ID       string
	Source   string
	Frame    *frame.Frame
	Scene    *scene.Scene
	Message  string
	Err      error
	LoadedAt time.Time
}

// Empty returns the initial state.
func Empty() *State {
	f := frame.Empty()
	return &State{
		ID:      uuid.NewString(),
		Frame:   f,
		Scene:   scene.Compose(f, scene.Options{}, nil),
		Message: EmptyMessage,
	}
}

// Loaded returns the state for a successful load of source.
func Loaded(source string, f *frame.Frame, s *scene.Scene) *State {
	return &State{
		ID:       uuid.NewString(),
		Source:   source,
		Frame:    f,
		Scene:    s,
		Message:  LoadedMessage(f),
		LoadedAt: time.Now(),
	}
}

// Failed returns an empty state carrying err.
func Failed(source string, err error) *State {
	st := Empty()
	st.Source = source
	st.Err = err
	st.Message = errors.UserMessage(err)
	return st
}

// LoadedMessage is the status line for a loaded frame.
func LoadedMessage(f *frame.Frame) string {
	return fmt.Sprintf("Loaded %d members and %d nodes", f.MemberCount(), f.NodeCount())
}

// IsEmpty reports whether no dataset is loaded.
func (s *State) IsEmpty() bool {
	return s.Frame == nil || s.Frame.IsEmpty()
}

// Code returns the error code of a failed load, or "".
func (s *State) Code() errors.Code {
	if s.Err == nil {
		return ""
	}
	if code := errors.GetCode(s.Err); code != "" {
		return code
	}
	return errors.ErrCodeInternal
}
