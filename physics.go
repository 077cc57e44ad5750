package picker

import "math"

// scrollPhase is the state of the scroll physics engine.
type scrollPhase int

const (
	// phaseIdle: velocity is zero and the offset rests on a row boundary.
	phaseIdle scrollPhase = iota
	// phaseDragging: a pointer is down and drives the offset directly.
	phaseDragging
	// phaseDecelerating: the offset integrates a decaying release velocity.
	phaseDecelerating
	// phaseSettling: the offset eases onto the nearest row boundary.
	phaseSettling
)

// String returns a human-readable phase name.
func (ph scrollPhase) String() string {
	switch ph {
	case phaseIdle:
		return "idle"
	case phaseDragging:
		return "dragging"
	case phaseDecelerating:
		return "decelerating"
	case phaseSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// scrollEngine converts gesture deltas and release velocities into a
// continuous scroll offset and resolves it back to row-aligned resting
// positions.
//
// The engine owns {offset, velocity, rowCount} exclusively. All mutation
// happens on the host's main loop: gesture events arrive through
// beginDrag/drag/endDrag/cancel and simulation advances once per frame
// through tick. In non-looping mode the offset is bounded by
// [0, (rowCount-1)*extent] with rubber-band resistance past the bounds;
// in looping mode the offset is unbounded and callers wrap the resolved
// row onto the ring.
type scrollEngine struct {
	phase    scrollPhase
	offset   float32
	velocity float32
	rowCount int

	extent  float32
	looping bool
	phys    Physics

	// Settle animation state, valid while phase == phaseSettling.
	settleFrom   float32
	settleTarget float32
	settleTime   float32
}

// maxOffset returns the largest row-aligned offset in non-looping mode.
func (e *scrollEngine) maxOffset() float32 {
	if e.rowCount == 0 {
		return 0
	}
	return float32(e.rowCount-1) * e.extent
}

// idle returns true when no gesture, deceleration, or settle is active.
func (e *scrollEngine) idle() bool {
	return e.phase == phaseIdle
}

// moveTo jumps the offset to a resting position with no animation.
func (e *scrollEngine) moveTo(offset float32) {
	e.phase = phaseIdle
	e.offset = offset
	e.velocity = 0
	e.settleTime = 0
}

// beginDrag enters the dragging phase. Returns false when the picker has
// no rows: an empty component does not respond to gestures.
func (e *scrollEngine) beginDrag() bool {
	if e.rowCount == 0 {
		e.offset = 0
		return false
	}
	e.phase = phaseDragging
	e.velocity = 0
	return true
}

// drag applies a pointer delta (already projected onto the swipe axis)
// while dragging. In non-looping mode, movement beyond the content bounds
// is compressed by the rubber-band damping factor so the wheel trails the
// pointer with progressively increasing resistance. Movement within the
// bounds is applied 1:1.
func (e *scrollEngine) drag(delta float32) {
	if e.phase != phaseDragging || delta == 0 {
		return
	}
	if e.looping {
		e.offset += delta
		return
	}

	maxOff := e.maxOffset()
	d := e.phys.RubberBandDamping
	rem := delta
	for rem != 0 {
		switch {
		case rem < 0 && e.offset <= 0:
			// Pushing further past the first row: fully damped.
			e.offset += rem * d
			rem = 0
		case rem > 0 && e.offset >= maxOff:
			// Pushing further past the last row: fully damped.
			e.offset += rem * d
			rem = 0
		case rem > 0 && e.offset < 0:
			// Returning from below the first row: damped until back in range.
			need := -e.offset / d
			if rem >= need {
				e.offset = 0
				rem -= need
			} else {
				e.offset += rem * d
				rem = 0
			}
		case rem < 0 && e.offset > maxOff:
			// Returning from beyond the last row.
			need := (maxOff - e.offset) / d
			if rem <= need {
				e.offset = maxOff
				rem -= need
			} else {
				e.offset += rem * d
				rem = 0
			}
		case rem > 0:
			// Free travel toward the last row.
			free := maxOff - e.offset
			if rem <= free {
				e.offset += rem
				rem = 0
			} else {
				e.offset = maxOff
				rem -= free
			}
		default:
			// Free travel toward the first row.
			free := -e.offset
			if rem >= free {
				e.offset += rem
				rem = 0
			} else {
				e.offset = 0
				rem -= free
			}
		}
	}
}

// endDrag leaves the dragging phase with the estimated release velocity.
// Fast releases decelerate; slow releases (and releases left beyond the
// content bounds) settle straight onto the nearest valid row.
func (e *scrollEngine) endDrag(releaseVelocity float32) {
	if e.rowCount == 0 {
		e.moveTo(0)
		return
	}
	outOfBounds := !e.looping && (e.offset < 0 || e.offset > e.maxOffset())
	if outOfBounds || absf32(releaseVelocity) < e.phys.FlickVelocity {
		e.beginSettle(releaseVelocity)
		return
	}
	e.phase = phaseDecelerating
	e.velocity = releaseVelocity
}

// cancel aborts whatever is in flight and settles from the current offset.
// Called on gesture-cancel; a reload resets synchronously via moveTo
// instead.
func (e *scrollEngine) cancel() {
	if e.rowCount == 0 {
		e.moveTo(0)
		return
	}
	e.beginSettle(e.velocity)
}

// beginSettle starts the snap animation toward the row nearest the current
// offset, using residualVelocity only to break exact-halfway ties.
func (e *scrollEngine) beginSettle(residualVelocity float32) {
	e.settleToOffset(e.nearestRowOffset(residualVelocity))
}

// settleToOffset starts the snap animation toward an explicit target
// offset. Used by animated SelectRow.
func (e *scrollEngine) settleToOffset(target float32) {
	e.settleFrom = e.offset
	e.settleTarget = target
	e.settleTime = 0
	e.velocity = 0
	e.phase = phaseSettling
}

// nearestRowOffset returns the row-aligned offset nearest the current
// offset, clamped into range in non-looping mode.
func (e *scrollEngine) nearestRowOffset(residualVelocity float32) float32 {
	row := nearestRow(e.offset, e.extent, residualVelocity)
	if !e.looping {
		row = clampi(row, 0, e.rowCount-1)
	}
	return offsetForRow(row, e.extent)
}

// tick advances the simulation by dt seconds. It returns true exactly once
// per settle, on the tick that completes it; the caller then commits the
// discrete selection.
func (e *scrollEngine) tick(dt float32) (settled bool) {
	if dt <= 0 {
		return false
	}
	switch e.phase {
	case phaseDecelerating:
		e.offset += e.velocity * dt
		e.velocity *= float32(math.Exp(float64(-e.phys.Friction * dt)))

		stopped := absf32(e.velocity) < e.phys.StopVelocity
		drifted := !e.looping && (e.offset < 0 || e.offset > e.maxOffset())
		if stopped || drifted {
			e.beginSettle(e.velocity)
		}
	case phaseSettling:
		e.settleTime += dt
		dur := e.phys.SettleDuration
		if dur <= 0 || e.settleTime >= dur {
			e.offset = e.settleTarget
			e.phase = phaseIdle
			return true
		}
		t := e.settleTime / dur
		e.offset = e.settleFrom + (e.settleTarget-e.settleFrom)*easeOutCubic(t)
	}
	return false
}

// easeOutCubic maps t in [0,1] to an eased progress value: fast start,
// gentle stop.
func easeOutCubic(t float32) float32 {
	u := 1 - t
	return 1 - u*u*u
}
