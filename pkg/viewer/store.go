package viewer

import (
	"context"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/rashika27/frameview/pkg/errors"
	"github.com/rashika27/frameview/pkg/pipeline"
	"github.com/rashika27/frameview/pkg/scene"
)

// Options are applied to every load and render the store performs.
type Options struct {
	Scene      scene.Options
	Projection string
}

// Store owns the current State. It is safe for concurrent use; the most
// recent Upload or Reset wins.
type Store struct {
	runner *pipeline.Runner
	opts   Options
	logger *log.Logger
	state  atomic.Pointer[State]
}

// NewStore returns a store in the empty state.
func NewStore(runner *pipeline.Runner, opts Options, logger *log.Logger) *Store {
	if runner == nil {
		runner = pipeline.NewRunner(nil, nil, logger)
	}
	if logger == nil {
		logger = runner.Logger
	}
	s := &Store{runner: runner, opts: opts, logger: logger}
	s.state.Store(Empty())
	return s
}

// Current returns the current snapshot.
func (s *Store) Current() *State {
	return s.state.Load()
}

// Upload loads data as the new dataset. On failure the store is reset to an
// empty state carrying the error, which is also returned.
func (s *Store) Upload(ctx context.Context, name string, data []byte) (*State, error) {
	res, err := s.runner.Execute(ctx, pipeline.Options{
		Source:     name,
		Data:       data,
		Scene:      s.opts.Scene,
		Projection: s.opts.Projection,
		Formats:    []string{pipeline.FormatJSON},
	})
	if err != nil {
		st := Failed(name, err)
		s.state.Store(st)
		s.logger.Warn("upload failed", "source", name, "code", st.Code(), "err", err)
		return st, err
	}

	st := Loaded(name, res.Frame, res.Scene)
	s.state.Store(st)
	s.logger.Info(st.Message, "source", name, "skipped", len(res.Scene.Skipped))
	return st, nil
}

// Reset returns the store to the empty state.
func (s *Store) Reset() *State {
	st := Empty()
	s.state.Store(st)
	return st
}

// Render draws the current dataset in format. It returns a NOT_FOUND error
// when nothing is loaded.
func (s *Store) Render(ctx context.Context, format string) ([]byte, error) {
	st := s.Current()
	if st.IsEmpty() {
		return nil, errors.New(errors.ErrCodeNotFound, "no dataset loaded")
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unsupported format %q", format)
	}

	artifacts, err := s.runner.Render(ctx, st.Scene, st.Frame, pipeline.Options{
		Source:     st.Source,
		Scene:      s.opts.Scene,
		Projection: s.opts.Projection,
		Formats:    []string{format},
	})
	if err != nil {
		return nil, err
	}
	return artifacts[format], nil
}
