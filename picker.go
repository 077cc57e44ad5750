package picker

import "math"

// Picker is a spinning-wheel row selector. Rows come from a DataSource,
// gestures spin the wheel through a scroll physics engine, and the wheel
// always comes to rest with exactly one row selected. The delegate is
// notified once per effective selection change.
//
// The picker is a retained control driven by the host's main loop:
//
//	in.Reset()
//	... collect events into in ...
//	p.HandleInput(in)
//	p.Update(dt)
//	p.Draw(drawList, fontTexture)
//
// All methods must be called from that single loop; the picker performs
// no internal locking.
type Picker struct {
	dataSource DataSource
	delegate   Delegate

	frame       Rect
	orientation Orientation
	looping     bool
	rowExtent   float32
	style       Style
	phys        Physics

	engine  scrollEngine
	cache   sourceCache
	gesture gestureState

	// selectedRow is the committed selection, -1 when the source is empty.
	selectedRow int

	// pendingTarget holds the row an animated SelectRow is heading for;
	// -1 when no programmatic selection is in flight.
	pendingTarget int

	// Orientation and looping changes requested while the wheel is moving
	// are deferred until it next comes to rest.
	pendingOrientation *Orientation
	pendingLooping     *bool

	requestRender func()
}

// New creates a Picker for the given data source. The initial selection is
// row 0 when the source has rows, otherwise none; no delegate notification
// is made for the initial selection.
func New(ds DataSource, opts ...Option) *Picker {
	p := &Picker{
		dataSource:    ds,
		orientation:   OrientationVertical,
		rowExtent:     DefaultRowExtent,
		style:         DefaultStyle(),
		phys:          DefaultPhysics(),
		selectedRow:   -1,
		pendingTarget: -1,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.engine.extent = p.rowExtent
	p.engine.looping = p.looping
	p.engine.phys = p.phys

	p.engine.rowCount = p.cache.rowCount(p)
	if p.engine.rowCount > 0 {
		p.selectedRow = 0
	}
	p.engine.moveTo(0)
	return p
}

// NumberOfRows returns the number of rows in the component, as last
// reported by the data source.
func (p *Picker) NumberOfRows() int {
	return p.cache.rowCount(p)
}

// SelectedRow returns the committed selection, or -1 when the data source
// is empty. While the wheel is moving this is the last committed row, not
// the row currently nearest the selection band.
func (p *Picker) SelectedRow() int {
	return p.selectedRow
}

// RowSize returns the size of one row cell: the frame spans the axis
// orthogonal to the swipe orientation, the row extent spans the swipe axis.
func (p *Picker) RowSize() Vec2 {
	if p.orientation == OrientationHorizontal {
		return Vec2{X: p.rowExtent, Y: p.frame.H}
	}
	return Vec2{X: p.frame.W, Y: p.rowExtent}
}

// Frame returns the control's frame rectangle.
func (p *Picker) Frame() Rect { return p.frame }

// SetFrame moves and resizes the control. The scroll offset is unaffected.
func (p *Picker) SetFrame(frame Rect) { p.frame = frame }

// Offset returns the current continuous scroll offset along the swipe
// axis, in the same units as the row extent. Row i is centered in the
// selection band when the offset equals i times the row extent.
func (p *Picker) Offset() float32 { return p.engine.offset }

// IsAnimating returns true while a gesture, deceleration, or settle
// animation is in progress.
func (p *Picker) IsAnimating() bool {
	return !p.engine.idle() || p.gesture.active
}

// Orientation returns the current swipe orientation.
func (p *Picker) Orientation() Orientation { return p.orientation }

// Looping reports whether the picker presents its rows as a ring.
func (p *Picker) Looping() bool { return p.looping }

// RowExtent returns the size of one row along the swipe axis.
func (p *Picker) RowExtent() float32 { return p.rowExtent }

// SetDelegate replaces the selection delegate. Pass nil to clear it.
func (p *Picker) SetDelegate(d Delegate) { p.delegate = d }

// SetDataSource replaces the data source and reloads the component.
// Pass nil to clear it; the picker then reads as empty.
func (p *Picker) SetDataSource(ds DataSource) {
	p.dataSource = ds
	p.ReloadComponent()
}

// SetOrientation changes the swipe orientation. While the wheel is moving
// the change is deferred until it comes to rest, so an in-flight gesture
// keeps its axis.
func (p *Picker) SetOrientation(o Orientation) {
	if p.IsAnimating() {
		p.pendingOrientation = &o
		return
	}
	p.orientation = o
}

// SetLooping switches between bounded and ring presentation. While the
// wheel is moving the change is deferred until it comes to rest.
func (p *Picker) SetLooping(looping bool) {
	if p.IsAnimating() {
		p.pendingLooping = &looping
		return
	}
	p.applyLooping(looping)
}

func (p *Picker) applyLooping(looping bool) {
	p.looping = looping
	p.engine.looping = looping
	// Re-anchor the resting offset so the committed row stays selected
	// under the new topology.
	if p.selectedRow >= 0 {
		p.engine.moveTo(offsetForRow(p.selectedRow, p.rowExtent))
	}
}

// SelectRow selects a row programmatically.
//
// With animated false the wheel jumps straight to the row. With animated
// true the wheel eases onto it and the delegate notification is deferred
// until the animation completes; a second SelectRow or a new gesture
// before then supersedes the animation and its pending notification.
//
// Returns ErrEmptySource when the source has no rows and
// ErrIndexOutOfRange when row is outside [0, NumberOfRows()-1]. Failed
// calls change nothing and notify nobody.
func (p *Picker) SelectRow(row int, animated bool) error {
	count := p.cache.rowCount(p)
	if count == 0 {
		pickerLogger.Debug("SelectRow rejected: empty source", "row", row)
		return ErrEmptySource
	}
	if row < 0 || row >= count {
		pickerLogger.Debug("SelectRow rejected: out of range", "row", row, "count", count)
		return ErrIndexOutOfRange
	}

	p.gesture.deactivate()
	p.pendingTarget = -1

	if !animated {
		p.engine.moveTo(offsetForRow(row, p.rowExtent))
		p.applySelection(row)
		p.notifyRender()
		return nil
	}

	target := offsetForRow(row, p.rowExtent)
	if p.looping {
		// Head for the wrap-equivalent of row nearest the current offset
		// so the wheel takes the short way around the ring.
		cur := p.engine.offset / p.rowExtent
		n := float64(count)
		k := row + count*int(math.Round(float64(cur-float32(row))/n))
		target = offsetForRow(k, p.rowExtent)
	}
	if target == p.engine.offset {
		// Already resting on the row; commit without an animation.
		p.engine.moveTo(target)
		p.applySelection(row)
		p.notifyRender()
		return nil
	}
	p.pendingTarget = row
	p.engine.settleToOffset(target)
	return nil
}

// ReloadComponent re-reads the data source and resets the wheel to a
// resting state, as if freshly constructed, without animation. Any
// in-flight gesture or animation is cancelled and its pending
// notification dropped.
//
// The previous selection is preserved when it is still a valid row in the
// new data; otherwise the selection falls back to row 0, or to none when
// the source is now empty. The delegate is notified only when the
// effective selection changed.
func (p *Picker) ReloadComponent() {
	p.gesture.deactivate()
	p.pendingTarget = -1

	p.cache.invalidate()
	count := p.cache.rowCount(p)
	p.engine.rowCount = count

	if count == 0 {
		p.engine.moveTo(0)
		p.applySelection(-1)
		p.notifyRender()
		return
	}

	row := p.selectedRow
	if row < 0 || row >= count {
		row = 0
	}
	p.engine.moveTo(offsetForRow(row, p.rowExtent))
	p.applySelection(row)
	p.notifyRender()
}

// Update advances animations by dt seconds. Call once per frame, after
// HandleInput. When a settle animation completes this is where the
// selection is committed and the delegate notified.
func (p *Picker) Update(dt float32) {
	p.gesture.advance(dt)

	if p.engine.tick(dt) {
		p.commitSettle()
	}

	if !p.IsAnimating() {
		if p.pendingOrientation != nil {
			p.orientation = *p.pendingOrientation
			p.pendingOrientation = nil
		}
		if p.pendingLooping != nil {
			p.applyLooping(*p.pendingLooping)
			p.pendingLooping = nil
		}
	}
}

// commitSettle turns the settled offset back into a discrete selection.
// The settle target is always row-aligned, so the resolved row is exact;
// a row outside the valid range here means internal state went bad, which
// is logged and clamped rather than propagated.
func (p *Picker) commitSettle() {
	count := p.engine.rowCount
	if count == 0 {
		p.applySelection(-1)
		return
	}

	row := nearestRow(p.engine.offset, p.rowExtent, 0)
	if p.looping {
		wrapped := wrapIndex(row, count)
		if wrapped != row {
			// Renormalize the resting offset onto the principal range so
			// repeated spins cannot accumulate float error.
			p.engine.moveTo(offsetForRow(wrapped, p.rowExtent))
		}
		row = wrapped
	} else if row < 0 || row >= count {
		pickerLogger.Warn("settled outside row range, clamping",
			"row", row, "count", count, "offset", p.engine.offset)
		row = clampi(row, 0, count-1)
		p.engine.moveTo(offsetForRow(row, p.rowExtent))
	}

	target := p.pendingTarget
	p.pendingTarget = -1
	if target >= 0 && target != row {
		pickerLogger.Warn("settle missed animation target",
			"target", target, "row", row)
	}

	p.applySelection(row)
	p.notifyRender()
}

// applySelection commits a new selected row and notifies the delegate when
// the selection effectively changed. row is -1 to clear the selection.
func (p *Picker) applySelection(row int) {
	if row == p.selectedRow {
		return
	}
	prev := p.selectedRow
	p.selectedRow = row

	if p.delegate == nil {
		return
	}
	if prev >= 0 {
		if d, ok := p.delegate.(Deselector); ok {
			d.DidDeselectRow(p, prev)
		}
	}
	if row >= 0 {
		p.delegate.DidSelectRow(p, row)
	}
}

func (p *Picker) notifyRender() {
	if p.requestRender != nil {
		p.requestRender()
	}
}
