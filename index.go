package picker

import (
	"errors"
	"math"
)

// ErrEmptySource is returned by operations that require at least one row
// when the data source reports zero rows.
var ErrEmptySource = errors.New("picker: data source is empty")

// ErrIndexOutOfRange is returned by SelectRow when the requested row is
// outside [0, NumberOfRows()-1]. The call is a no-op: no state change,
// no delegate notification.
var ErrIndexOutOfRange = errors.New("picker: row index out of range")

// NextIndex returns the row index after i.
//
// In looping mode the index space is a ring: the successor of the last row
// is row 0 and atBoundary is always false. In non-looping mode the result
// is clamped to [0, count-1] and atBoundary reports that i was already the
// last row (the physics engine uses this to apply rubber-band resistance
// instead of advancing).
func NextIndex(i, count int, looping bool) (next int, atBoundary bool, err error) {
	if count == 0 {
		return 0, false, ErrEmptySource
	}
	if looping {
		return wrapIndex(i+1, count), false, nil
	}
	if i >= count-1 {
		return count - 1, true, nil
	}
	return clampi(i, 0, count-1) + 1, false, nil
}

// PreviousIndex returns the row index before i.
// See NextIndex for the looping and boundary semantics.
func PreviousIndex(i, count int, looping bool) (prev int, atBoundary bool, err error) {
	if count == 0 {
		return 0, false, ErrEmptySource
	}
	if looping {
		return wrapIndex(i-1, count), false, nil
	}
	if i <= 0 {
		return 0, true, nil
	}
	return clampi(i, 0, count-1) - 1, false, nil
}

// wrapIndex maps an arbitrary index onto the ring [0, count).
// count must be > 0.
func wrapIndex(i, count int) int {
	return ((i % count) + count) % count
}

// nearestRow resolves a continuous offset to the nearest discrete row.
// The result is unclamped and unwrapped; callers clamp (non-looping) or
// wrap (looping) against the row count.
//
// An offset exactly halfway between two rows resolves toward the row in
// the direction of the residual velocity, or toward the lower index when
// the velocity is zero. The tie-break is deterministic.
func nearestRow(offset, extent, velocity float32) int {
	q := offset / extent
	base := float32(math.Floor(float64(q)))
	frac := q - base
	row := int(base)
	switch {
	case frac > 0.5:
		row++
	case frac < 0.5:
		// keep lower row
	case velocity > 0:
		row++
	}
	return row
}

// offsetForRow returns the row-aligned offset for a discrete row index.
func offsetForRow(row int, extent float32) float32 {
	return float32(row) * extent
}
