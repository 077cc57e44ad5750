package picker

import (
	"errors"
	"testing"
)

func TestNextIndexBounded(t *testing.T) {
	tests := []struct {
		name       string
		i, count   int
		want       int
		atBoundary bool
	}{
		{"first to second", 0, 5, 1, false},
		{"middle", 2, 5, 3, false},
		{"last stays put", 4, 5, 4, true},
		{"past last clamps", 7, 5, 4, true},
		{"single row", 0, 1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, atBoundary, err := NextIndex(tt.i, tt.count, false)
			if err != nil {
				t.Fatalf("NextIndex returned error: %v", err)
			}
			if got != tt.want || atBoundary != tt.atBoundary {
				t.Errorf("NextIndex(%d, %d) = (%d, %v), want (%d, %v)",
					tt.i, tt.count, got, atBoundary, tt.want, tt.atBoundary)
			}
		})
	}
}

func TestNextIndexLooping(t *testing.T) {
	got, atBoundary, err := NextIndex(4, 5, true)
	if err != nil {
		t.Fatalf("NextIndex returned error: %v", err)
	}
	if got != 0 {
		t.Errorf("successor of last row should wrap to 0, got %d", got)
	}
	if atBoundary {
		t.Error("looping mode should never report a boundary")
	}
}

func TestPreviousIndexBounded(t *testing.T) {
	tests := []struct {
		name       string
		i, count   int
		want       int
		atBoundary bool
	}{
		{"second to first", 1, 5, 0, false},
		{"first stays put", 0, 5, 0, true},
		{"negative clamps", -3, 5, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, atBoundary, err := PreviousIndex(tt.i, tt.count, false)
			if err != nil {
				t.Fatalf("PreviousIndex returned error: %v", err)
			}
			if got != tt.want || atBoundary != tt.atBoundary {
				t.Errorf("PreviousIndex(%d, %d) = (%d, %v), want (%d, %v)",
					tt.i, tt.count, got, atBoundary, tt.want, tt.atBoundary)
			}
		})
	}
}

func TestPreviousIndexLooping(t *testing.T) {
	got, _, err := PreviousIndex(0, 5, true)
	if err != nil {
		t.Fatalf("PreviousIndex returned error: %v", err)
	}
	if got != 4 {
		t.Errorf("predecessor of row 0 should wrap to 4, got %d", got)
	}
}

func TestIndexEmptySource(t *testing.T) {
	if _, _, err := NextIndex(0, 0, false); !errors.Is(err, ErrEmptySource) {
		t.Errorf("NextIndex with zero rows: got %v, want ErrEmptySource", err)
	}
	if _, _, err := PreviousIndex(0, 0, true); !errors.Is(err, ErrEmptySource) {
		t.Errorf("PreviousIndex with zero rows: got %v, want ErrEmptySource", err)
	}
}

func TestWrapIndex(t *testing.T) {
	tests := []struct {
		i, count, want int
	}{
		{0, 5, 0},
		{5, 5, 0},
		{7, 5, 2},
		{-1, 5, 4},
		{-6, 5, 4},
	}
	for _, tt := range tests {
		if got := wrapIndex(tt.i, tt.count); got != tt.want {
			t.Errorf("wrapIndex(%d, %d) = %d, want %d", tt.i, tt.count, got, tt.want)
		}
	}
}

func TestNearestRow(t *testing.T) {
	const extent = 40

	tests := []struct {
		name     string
		offset   float32
		velocity float32
		want     int
	}{
		{"on boundary", 80, 0, 2},
		{"just below midpoint", 59, 0, 1},
		{"just above midpoint", 61, 0, 2},
		{"negative offset", -25, 0, -1},
		{"halfway zero velocity picks lower", 60, 0, 1},
		{"halfway positive velocity picks upper", 60, 5, 2},
		{"halfway negative velocity picks lower", 60, -5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nearestRow(tt.offset, extent, tt.velocity); got != tt.want {
				t.Errorf("nearestRow(%v, %v, %v) = %d, want %d",
					tt.offset, float32(extent), tt.velocity, got, tt.want)
			}
		})
	}
}
