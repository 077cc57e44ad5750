package picker

import "testing"

const testExtent = 40

func newTestEngine(rows int, looping bool) *scrollEngine {
	return &scrollEngine{
		rowCount: rows,
		extent:   testExtent,
		looping:  looping,
		phys:     DefaultPhysics(),
	}
}

// runUntilIdle ticks the engine at 60 Hz until it comes to rest.
func runUntilIdle(t *testing.T, e *scrollEngine) {
	t.Helper()
	for i := 0; i < 2000; i++ {
		e.tick(1.0 / 60.0)
		if e.idle() {
			return
		}
	}
	t.Fatalf("engine did not come to rest, phase %v, offset %v, velocity %v",
		e.phase, e.offset, e.velocity)
}

func TestDragWithinBoundsIsDirect(t *testing.T) {
	e := newTestEngine(5, false)
	if !e.beginDrag() {
		t.Fatal("beginDrag should succeed with rows present")
	}
	e.drag(60)
	if e.offset != 60 {
		t.Errorf("in-range drag should track 1:1, offset = %v, want 60", e.offset)
	}
	e.drag(-30)
	if e.offset != 30 {
		t.Errorf("offset = %v, want 30", e.offset)
	}
}

func TestDragPastStartIsDamped(t *testing.T) {
	e := newTestEngine(5, false)
	e.beginDrag()
	e.drag(-40)
	if e.offset != -20 {
		t.Errorf("overshoot should be damped by 0.5, offset = %v, want -20", e.offset)
	}
	// Further overshoot stays damped.
	e.drag(-40)
	if e.offset != -40 {
		t.Errorf("offset = %v, want -40", e.offset)
	}
}

func TestDragBackFromOvershoot(t *testing.T) {
	e := newTestEngine(5, false)
	e.beginDrag()
	e.drag(-40) // offset -20
	// 40 raw units are consumed re-entering the range, the remaining 10
	// travel freely.
	e.drag(50)
	if e.offset != 10 {
		t.Errorf("offset = %v, want 10", e.offset)
	}
}

func TestDragCrossingIntoOvershoot(t *testing.T) {
	e := newTestEngine(5, false)
	e.beginDrag()
	e.drag(150) // in range, maxOffset is 160
	e.drag(30)  // 10 free, then 20 damped past the end
	if e.offset != 170 {
		t.Errorf("offset = %v, want 170", e.offset)
	}
}

func TestLoopingDragIsUnbounded(t *testing.T) {
	e := newTestEngine(5, true)
	e.beginDrag()
	e.drag(1000)
	if e.offset != 1000 {
		t.Errorf("looping drag should be 1:1 without bounds, offset = %v", e.offset)
	}
}

func TestSlowReleaseSettlesToNearestRow(t *testing.T) {
	e := newTestEngine(5, false)
	e.beginDrag()
	e.drag(70)
	e.endDrag(0)
	if e.phase != phaseSettling {
		t.Fatalf("slow release should settle, phase = %v", e.phase)
	}
	runUntilIdle(t, e)
	if e.offset != 80 {
		t.Errorf("offset = %v, want 80 (row 2)", e.offset)
	}
}

func TestSettleReportsExactlyOnce(t *testing.T) {
	e := newTestEngine(5, false)
	e.beginDrag()
	e.drag(70)
	e.endDrag(0)

	settles := 0
	for i := 0; i < 2000 && !e.idle(); i++ {
		if e.tick(1.0 / 60.0) {
			settles++
		}
	}
	if settles != 1 {
		t.Errorf("tick reported settled %d times, want 1", settles)
	}
	// Further ticks at rest report nothing.
	if e.tick(1.0 / 60.0) {
		t.Error("idle tick should not report settled")
	}
}

func TestHalfwayReleaseBreaksTieTowardVelocity(t *testing.T) {
	e := newTestEngine(5, false)
	e.beginDrag()
	e.drag(60) // exactly halfway between rows 1 and 2
	e.endDrag(10)
	runUntilIdle(t, e)
	if e.offset != 80 {
		t.Errorf("positive residual velocity should pick the upper row, offset = %v, want 80", e.offset)
	}

	e = newTestEngine(5, false)
	e.beginDrag()
	e.drag(60)
	e.endDrag(0)
	runUntilIdle(t, e)
	if e.offset != 40 {
		t.Errorf("zero velocity should pick the lower row, offset = %v, want 40", e.offset)
	}
}

func TestFlickDecelerates(t *testing.T) {
	e := newTestEngine(20, false)
	e.beginDrag()
	e.drag(40)
	e.endDrag(300)
	if e.phase != phaseDecelerating {
		t.Fatalf("fast release should decelerate, phase = %v", e.phase)
	}
	runUntilIdle(t, e)
	if e.offset <= 40 {
		t.Errorf("flick should have carried the wheel forward, offset = %v", e.offset)
	}
	if rem := e.offset - float32(int(e.offset/testExtent))*testExtent; rem != 0 {
		t.Errorf("resting offset %v is not row-aligned", e.offset)
	}
	if e.offset > e.maxOffset() {
		t.Errorf("resting offset %v exceeds maxOffset %v", e.offset, e.maxOffset())
	}
}

func TestReleaseOutOfBoundsSettlesBack(t *testing.T) {
	e := newTestEngine(3, false)
	e.beginDrag()
	e.drag(-60) // damped to -30
	e.endDrag(-500)
	if e.phase != phaseSettling {
		t.Fatalf("out-of-bounds release should settle, not decelerate, phase = %v", e.phase)
	}
	runUntilIdle(t, e)
	if e.offset != 0 {
		t.Errorf("offset = %v, want 0 (first row)", e.offset)
	}
}

func TestCancelSettles(t *testing.T) {
	e := newTestEngine(5, false)
	e.beginDrag()
	e.drag(55)
	e.cancel()
	runUntilIdle(t, e)
	if e.offset != 40 {
		t.Errorf("offset = %v, want 40", e.offset)
	}
}

func TestLoopingFlickRestsAligned(t *testing.T) {
	e := newTestEngine(5, true)
	e.beginDrag()
	e.drag(10)
	e.endDrag(800)
	runUntilIdle(t, e)
	if rem := e.offset - float32(int(e.offset/testExtent))*testExtent; rem != 0 {
		t.Errorf("resting offset %v is not row-aligned", e.offset)
	}
}

func TestEmptyEngineRejectsGestures(t *testing.T) {
	e := newTestEngine(0, false)
	if e.beginDrag() {
		t.Error("beginDrag should fail with no rows")
	}
	e.endDrag(100)
	if !e.idle() || e.offset != 0 {
		t.Errorf("empty engine should rest at 0, phase %v offset %v", e.phase, e.offset)
	}
}

func TestMoveToStopsEverything(t *testing.T) {
	e := newTestEngine(5, false)
	e.beginDrag()
	e.drag(70)
	e.endDrag(300)
	e.moveTo(80)
	if !e.idle() || e.offset != 80 || e.velocity != 0 {
		t.Errorf("moveTo should force an idle resting state, phase %v offset %v velocity %v",
			e.phase, e.offset, e.velocity)
	}
}
