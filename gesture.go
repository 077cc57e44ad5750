package picker

// gestureSampleWindow is how far back, in seconds, pointer samples count
// toward the release velocity estimate.
const gestureSampleWindow float32 = 0.1

// gestureSampleCount is the ring buffer capacity for pointer samples.
const gestureSampleCount = 8

type gestureSample struct {
	pos  float32
	time float32
}

// gestureState tracks one pointer gesture along the swipe axis: the last
// pointer position for delta computation and a short history of timed
// samples for estimating the release velocity of a flick.
type gestureState struct {
	active  bool
	lastPos float32

	// clock is a monotonic gesture timebase advanced by Update(dt).
	clock float32

	samples [gestureSampleCount]gestureSample
	head    int
	count   int
}

func (g *gestureState) begin(pos float32) {
	g.active = true
	g.lastPos = pos
	g.head = 0
	g.count = 0
	g.record(pos)
}

func (g *gestureState) deactivate() {
	g.active = false
	g.count = 0
}

// advance moves the gesture clock forward. The clock only ever grows;
// sample ages are measured against it.
func (g *gestureState) advance(dt float32) {
	if dt > 0 {
		g.clock += dt
	}
}

// record stores a pointer position at the current clock, overwriting the
// oldest sample when the ring is full.
func (g *gestureState) record(pos float32) {
	g.samples[g.head] = gestureSample{pos: pos, time: g.clock}
	g.head = (g.head + 1) % gestureSampleCount
	if g.count < gestureSampleCount {
		g.count++
	}
}

// releaseVelocity estimates the pointer velocity at release from the
// samples inside the recent window, in position units per second. Returns
// zero when the window holds too little history to divide safely, which
// reads as a slow release rather than a flick.
func (g *gestureState) releaseVelocity() float32 {
	cutoff := g.clock - gestureSampleWindow

	var oldest, newest gestureSample
	found := false
	for i := 0; i < g.count; i++ {
		s := g.samples[(g.head-1-i+gestureSampleCount)%gestureSampleCount]
		if s.time < cutoff {
			break
		}
		if !found {
			newest = s
			found = true
		}
		oldest = s
	}
	if !found {
		return 0
	}
	span := newest.time - oldest.time
	if span <= 1e-4 {
		return 0
	}
	return (newest.pos - oldest.pos) / span
}

// HandleInput feeds one frame of pointer and key input to the picker.
// Call once per frame, before Update.
//
// A left-button press inside the frame begins a drag; pointer movement
// along the swipe axis spins the wheel (the orthogonal component is
// ignored); release either flicks into a deceleration or settles onto the
// nearest row. Escape cancels an in-flight gesture. When the pointer
// hovers the frame and the wheel is at rest, the scroll wheel and the
// arrow, Home, and End keys step the selection with animation.
func (p *Picker) HandleInput(in *InputState) {
	if in == nil {
		return
	}

	axisPos := in.MouseY
	if p.orientation == OrientationHorizontal {
		axisPos = in.MouseX
	}
	hovered := p.frame.Contains(Vec2{X: in.MouseX, Y: in.MouseY})

	if p.gesture.active {
		switch {
		case in.KeyPressed(KeyEscape):
			p.engine.cancel()
			p.gesture.deactivate()
		case in.MouseReleased(MouseButtonLeft), !in.MouseDown(MouseButtonLeft):
			// A missed release event (focus loss) ends the drag too.
			p.gesture.record(axisPos)
			p.engine.endDrag(-p.gesture.releaseVelocity())
			p.gesture.deactivate()
		default:
			delta := axisPos - p.gesture.lastPos
			p.gesture.lastPos = axisPos
			p.gesture.record(axisPos)
			// Natural scrolling: content follows the pointer.
			p.engine.drag(-delta)
		}
		return
	}

	if hovered && in.MouseClicked(MouseButtonLeft) {
		if p.engine.beginDrag() {
			p.pendingTarget = -1
			p.gesture.begin(axisPos)
		}
		return
	}

	if !hovered || !p.engine.idle() {
		return
	}
	p.handleStepInput(in)
}

// handleStepInput applies scroll-wheel and keyboard stepping while the
// wheel is at rest.
func (p *Picker) handleStepInput(in *InputState) {
	count := p.cache.rowCount(p)
	if count == 0 {
		return
	}

	wheel := in.MouseWheelY
	if p.orientation == OrientationHorizontal && in.MouseWheelX != 0 {
		wheel = in.MouseWheelX
	}
	if wheel != 0 {
		steps := int(wheel)
		if steps == 0 {
			if wheel > 0 {
				steps = 1
			} else {
				steps = -1
			}
		}
		p.stepSelection(-steps)
		return
	}

	prevKey, nextKey := KeyUp, KeyDown
	if p.orientation == OrientationHorizontal {
		prevKey, nextKey = KeyLeft, KeyRight
	}
	switch {
	case in.KeyPressed(prevKey):
		p.stepSelection(-1)
	case in.KeyPressed(nextKey):
		p.stepSelection(1)
	case in.KeyPressed(KeyHome):
		_ = p.SelectRow(0, true)
	case in.KeyPressed(KeyEnd):
		_ = p.SelectRow(count-1, true)
	}
}

// stepSelection moves the selection by steps rows, honoring the looping
// topology, and animates onto the result. Stepping past a boundary in
// non-looping mode stops at the boundary row.
func (p *Picker) stepSelection(steps int) {
	count := p.cache.rowCount(p)
	if count == 0 || steps == 0 {
		return
	}
	row := p.selectedRow
	if row < 0 {
		row = 0
	}
	for ; steps > 0; steps-- {
		next, atBoundary, err := NextIndex(row, count, p.looping)
		if err != nil {
			return
		}
		row = next
		if atBoundary {
			break
		}
	}
	for ; steps < 0; steps++ {
		prev, atBoundary, err := PreviousIndex(row, count, p.looping)
		if err != nil {
			return
		}
		row = prev
		if atBoundary {
			break
		}
	}
	_ = p.SelectRow(row, true)
}
