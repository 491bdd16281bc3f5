package geom

import (
	"math"
	"testing"
)

func TestComputeBounds(t *testing.T) {
	tests := []struct {
		name       string
		points     []Vec
		wantCenter Vec
		wantSize   float64
	}{
		{
			name:       "right triangle",
			points:     []Vec{{}, {X: 10}, {Y: 10}},
			wantCenter: Vec{X: 5, Y: 5},
			wantSize:   15,
		},
		{
			name:       "single point",
			points:     []Vec{{X: 2, Y: -3, Z: 4}},
			wantCenter: Vec{X: 2, Y: -3, Z: 4},
			wantSize:   0,
		},
		{
			name:       "z dominates",
			points:     []Vec{{X: -1, Y: 0, Z: -20}, {X: 1, Y: 2, Z: 20}},
			wantCenter: Vec{X: 0, Y: 1, Z: 0},
			wantSize:   60,
		},
		{
			name:       "negative octant",
			points:     []Vec{{X: -4, Y: -4, Z: -4}, {X: -2, Y: -3, Z: -1}},
			wantCenter: Vec{X: -3, Y: -3.5, Z: -2.5},
			wantSize:   4.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ComputeBounds(tt.points)
			if b.Empty {
				t.Fatal("bounds should not be empty")
			}
			if !ApproxEqual(b.Center, tt.wantCenter, 1e-12) {
				t.Errorf("Center = %v, want %v", b.Center, tt.wantCenter)
			}
			if math.Abs(b.Size-tt.wantSize) > 1e-12 {
				t.Errorf("Size = %v, want %v", b.Size, tt.wantSize)
			}
		})
	}
}

func TestComputeBoundsEmpty(t *testing.T) {
	for _, pts := range [][]Vec{nil, {}} {
		b := ComputeBounds(pts)
		if !b.Empty {
			t.Error("Empty should be true")
		}
		if b.Center != (Vec{}) {
			t.Errorf("Center = %v, want origin", b.Center)
		}
		if b.Size != DefaultSceneSize {
			t.Errorf("Size = %v, want %v", b.Size, DefaultSceneSize)
		}
		for _, v := range []float64{b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z} {
			if math.IsInf(v, 0) {
				t.Fatal("empty bounds leaked an infinity")
			}
		}
	}
}

func TestBoundsExtent(t *testing.T) {
	b := ComputeBounds([]Vec{{X: 1, Y: 2, Z: 3}, {X: 4, Y: 6, Z: 3}})
	if got := b.Extent(); got != (Vec{X: 3, Y: 4, Z: 0}) {
		t.Errorf("Extent() = %v", got)
	}
	if got := ComputeBounds(nil).Extent(); got != (Vec{}) {
		t.Errorf("empty Extent() = %v", got)
	}
}
