package viewer

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/rashika27/frameview/pkg/errors"
)

const chainJSON = `{
  "members": [{"start": "a", "end": "b"}, {"start": "b", "end": "c"}],
  "nodes": [
    {"id": "a", "x": 0, "y": 0, "z": 0},
    {"id": "b", "x": 0, "y": 2, "z": 0},
    {"id": "c", "x": 2, "y": 2, "z": 0}
  ]
}`

func TestEmpty(t *testing.T) {
	st := Empty()
	if !st.IsEmpty() {
		t.Error("Empty() should be empty")
	}
	if st.Message != EmptyMessage {
		t.Errorf("Message = %q", st.Message)
	}
	if st.Scene == nil || st.Scene.Bounds.Size != 10 {
		t.Error("empty state should carry the default scene")
	}
	if st.ID == "" || st.ID == Empty().ID {
		t.Error("each state should get a fresh ID")
	}
}

func TestUpload(t *testing.T) {
	s := NewStore(nil, Options{}, nil)
	st, err := s.Upload(context.Background(), "chain.json", []byte(chainJSON))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if st.Message != "Loaded 2 members and 3 nodes" {
		t.Errorf("Message = %q", st.Message)
	}
	if s.Current() != st {
		t.Error("Current() should return the uploaded state")
	}
	if st.Source != "chain.json" || st.LoadedAt.IsZero() {
		t.Errorf("state metadata not set: %+v", st)
	}
}

func TestUploadFailureResets(t *testing.T) {
	s := NewStore(nil, Options{}, nil)
	ctx := context.Background()
	if _, err := s.Upload(ctx, "chain.json", []byte(chainJSON)); err != nil {
		t.Fatal(err)
	}

	st, err := s.Upload(ctx, "broken.xlsx", []byte("not a workbook"))
	if err == nil {
		t.Fatal("Upload should fail")
	}
	if !st.IsEmpty() {
		t.Error("failed upload should leave an empty dataset")
	}
	if st.Code() != errors.ErrCodeFileRead {
		t.Errorf("Code() = %q, want FILE_READ_FAILURE", st.Code())
	}
	if st.Message == "" || st.Message == EmptyMessage {
		t.Errorf("failed state should carry the error message, got %q", st.Message)
	}
	if s.Current() != st {
		t.Error("failed state should be current")
	}
}

func TestReset(t *testing.T) {
	s := NewStore(nil, Options{}, nil)
	_, _ = s.Upload(context.Background(), "chain.json", []byte(chainJSON))

	st := s.Reset()
	if !st.IsEmpty() || s.Current() != st {
		t.Error("Reset should install an empty state")
	}
}

func TestRender(t *testing.T) {
	s := NewStore(nil, Options{Projection: "xy"}, nil)
	ctx := context.Background()

	if _, err := s.Render(ctx, "json"); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Render on empty store error = %v, want NOT_FOUND", err)
	}

	_, _ = s.Upload(ctx, "chain.json", []byte(chainJSON))
	data, err := s.Render(ctx, "dot")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(data), `"a" -- "b"`) {
		t.Errorf("dot output missing edge:\n%s", data)
	}

	if _, err := s.Render(ctx, "png"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(png) error = %v, want INVALID_FORMAT", err)
	}
}

func TestConcurrentReaders(t *testing.T) {
	s := NewStore(nil, Options{}, nil)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = s.Upload(ctx, "chain.json", []byte(chainJSON))
		}()
		go func() {
			defer wg.Done()
			st := s.Current()
			// A snapshot is always internally consistent.
			if st.Scene.MemberCount != st.Frame.MemberCount() {
				t.Errorf("torn snapshot: scene has %d members, frame %d", st.Scene.MemberCount, st.Frame.MemberCount())
			}
		}()
	}
	wg.Wait()
}
