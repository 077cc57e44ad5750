package picker_test

import (
	"testing"

	"github.com/spinwheel/picker"
)

// frame runs one input+update cycle, then clears per-frame input edges.
func frame(p *picker.Picker, in *picker.InputState) {
	p.HandleInput(in)
	p.Update(1.0 / 60.0)
	in.Reset()
}

// press begins a drag at the center of the test frame.
func press(p *picker.Picker, in *picker.InputState) {
	in.SetMousePos(100, 110)
	in.SetMouseButton(picker.MouseButtonLeft, true)
	frame(p, in)
}

// holdStill runs enough stationary frames to drain the velocity window.
func holdStill(p *picker.Picker, in *picker.InputState) {
	for i := 0; i < 10; i++ {
		frame(p, in)
	}
}

func release(p *picker.Picker, in *picker.InputState) {
	in.SetMouseButton(picker.MouseButtonLeft, false)
	frame(p, in)
}

func TestDragMovesOffset(t *testing.T) {
	p, _, _ := newTestPicker(5)
	in := picker.NewInputState()

	press(p, in)
	in.SetMousePos(100, 80)
	frame(p, in)

	if got := p.Offset(); got != 30 {
		t.Errorf("Offset = %v, want 30 (content follows the pointer)", got)
	}
	if got := p.SelectedRow(); got != 0 {
		t.Errorf("selection must not change mid-drag, got %d", got)
	}
}

func TestOrthogonalMovementIgnored(t *testing.T) {
	p, _, _ := newTestPicker(5)
	in := picker.NewInputState()

	press(p, in)
	in.SetMousePos(180, 110)
	frame(p, in)

	if got := p.Offset(); got != 0 {
		t.Errorf("horizontal movement on a vertical picker moved the offset to %v", got)
	}
}

func TestSlowReleaseSnapsToNearestRow(t *testing.T) {
	p, _, del := newTestPicker(5)
	in := picker.NewInputState()

	press(p, in)
	in.SetMousePos(100, 80) // offset 30, nearest row 1
	frame(p, in)
	holdStill(p, in)
	release(p, in)

	settle(t, p)

	if got := p.Offset(); got != 40 {
		t.Errorf("Offset = %v, want 40", got)
	}
	if got := p.SelectedRow(); got != 1 {
		t.Errorf("SelectedRow = %d, want 1", got)
	}
	want := []string{"deselect 0", "select 1"}
	if len(del.events) != 2 || del.events[0] != want[0] || del.events[1] != want[1] {
		t.Errorf("events = %v, want %v", del.events, want)
	}
}

func TestFlickCarriesPastAdjacentRow(t *testing.T) {
	p, _, _ := newTestPicker(20)
	in := picker.NewInputState()

	press(p, in)
	y := float32(110)
	for i := 0; i < 5; i++ {
		y -= 20
		in.SetMousePos(100, y)
		frame(p, in)
	}
	release(p, in)

	settle(t, p)

	if got := p.SelectedRow(); got < 3 {
		t.Errorf("flick should carry past the adjacent row, SelectedRow = %d", got)
	}
	if off, want := p.Offset(), float32(p.SelectedRow())*40; off != want {
		t.Errorf("Offset = %v, not aligned with selected row (want %v)", off, want)
	}
}

func TestEscapeCancelsGesture(t *testing.T) {
	p, _, _ := newTestPicker(5)
	in := picker.NewInputState()

	press(p, in)
	in.SetMousePos(100, 80)
	frame(p, in)

	in.SetKey(picker.KeyEscape, true)
	frame(p, in)

	// The stale button release must not restart anything.
	in.SetKey(picker.KeyEscape, false)
	in.SetMouseButton(picker.MouseButtonLeft, false)
	frame(p, in)

	settle(t, p)

	if got := p.Offset(); got != 40 {
		t.Errorf("cancelled gesture should snap to the nearest row, Offset = %v", got)
	}
	if got := p.SelectedRow(); got != 1 {
		t.Errorf("SelectedRow = %d, want 1", got)
	}
}

func TestReloadMidGestureResetsSynchronously(t *testing.T) {
	p, _, del := newTestPicker(5)
	in := picker.NewInputState()

	press(p, in)
	in.SetMousePos(100, 80)
	frame(p, in)

	p.ReloadComponent()

	if p.IsAnimating() {
		t.Error("reload must leave the picker at rest")
	}
	if got := p.Offset(); got != 0 {
		t.Errorf("Offset = %v, want 0 (selected row 0)", got)
	}

	// The pointer is still down; the dead gesture must not keep scrolling.
	in.SetMousePos(100, 40)
	frame(p, in)
	if got := p.Offset(); got != 0 {
		t.Errorf("movement after reload moved the offset to %v", got)
	}

	release(p, in)
	settle(t, p)
	if got := p.SelectedRow(); got != 0 {
		t.Errorf("SelectedRow = %d, want 0", got)
	}
	if len(del.events) != 0 {
		t.Errorf("no effective change, must not notify, got %v", del.events)
	}
}

func TestScrollWheelStepsSelection(t *testing.T) {
	p, _, _ := newTestPicker(5)
	in := picker.NewInputState()

	in.SetMousePos(100, 110)
	in.SetMouseWheel(0, -1) // scroll down, next row
	frame(p, in)

	settle(t, p)

	if got := p.SelectedRow(); got != 1 {
		t.Errorf("SelectedRow = %d, want 1", got)
	}
}

func TestScrollWheelAtBoundary(t *testing.T) {
	p, _, del := newTestPicker(5)
	in := picker.NewInputState()

	in.SetMousePos(100, 110)
	in.SetMouseWheel(0, 1) // scroll up at row 0
	frame(p, in)

	settle(t, p)

	if got := p.SelectedRow(); got != 0 {
		t.Errorf("SelectedRow = %d, want 0", got)
	}
	if len(del.events) != 0 {
		t.Errorf("boundary step must not notify, got %v", del.events)
	}
}

func TestScrollWheelWrapsWhenLooping(t *testing.T) {
	p, _, _ := newTestPicker(5, picker.WithLooping(true))
	in := picker.NewInputState()

	in.SetMousePos(100, 110)
	in.SetMouseWheel(0, 1) // previous from row 0 wraps to the last row
	frame(p, in)

	settle(t, p)

	if got := p.SelectedRow(); got != 4 {
		t.Errorf("SelectedRow = %d, want 4", got)
	}
}

func TestArrowKeysStepSelection(t *testing.T) {
	p, _, _ := newTestPicker(5)
	in := picker.NewInputState()
	in.SetMousePos(100, 110)

	in.SetKey(picker.KeyDown, true)
	frame(p, in)
	in.SetKey(picker.KeyDown, false)
	settle(t, p)

	if got := p.SelectedRow(); got != 1 {
		t.Errorf("SelectedRow = %d, want 1", got)
	}

	in.SetKey(picker.KeyUp, true)
	frame(p, in)
	in.SetKey(picker.KeyUp, false)
	settle(t, p)

	if got := p.SelectedRow(); got != 0 {
		t.Errorf("SelectedRow = %d, want 0", got)
	}
}

func TestHomeEndKeys(t *testing.T) {
	p, _, _ := newTestPicker(7)
	in := picker.NewInputState()
	in.SetMousePos(100, 110)

	in.SetKey(picker.KeyEnd, true)
	frame(p, in)
	in.SetKey(picker.KeyEnd, false)
	settle(t, p)

	if got := p.SelectedRow(); got != 6 {
		t.Errorf("SelectedRow = %d, want 6", got)
	}

	in.SetKey(picker.KeyHome, true)
	frame(p, in)
	in.SetKey(picker.KeyHome, false)
	settle(t, p)

	if got := p.SelectedRow(); got != 0 {
		t.Errorf("SelectedRow = %d, want 0", got)
	}
}

func TestKeysIgnoredOutsideFrame(t *testing.T) {
	p, _, _ := newTestPicker(5)
	in := picker.NewInputState()
	in.SetMousePos(500, 500)

	in.SetKey(picker.KeyDown, true)
	frame(p, in)
	settle(t, p)

	if got := p.SelectedRow(); got != 0 {
		t.Errorf("keys should only act while hovered, SelectedRow = %d", got)
	}
}

func TestViolentFlickStaysInRange(t *testing.T) {
	p, _, _ := newTestPicker(3)
	in := picker.NewInputState()

	press(p, in)
	y := float32(110)
	for i := 0; i < 4; i++ {
		y += 40 // fast drag toward lower offsets
		in.SetMousePos(100, y)
		frame(p, in)
	}
	release(p, in)

	settle(t, p)

	row := p.SelectedRow()
	if row < 0 || row > 2 {
		t.Fatalf("SelectedRow = %d, out of range", row)
	}
	off := p.Offset()
	if off < 0 || off > 80 {
		t.Errorf("Offset = %v, outside [0, 80]", off)
	}
}

func TestEmptyPickerIgnoresGestures(t *testing.T) {
	p, _, del := newTestPicker(0)
	in := picker.NewInputState()

	press(p, in)
	in.SetMousePos(100, 40)
	frame(p, in)
	release(p, in)
	settle(t, p)

	if got := p.Offset(); got != 0 {
		t.Errorf("Offset = %v, want 0", got)
	}
	if got := p.SelectedRow(); got != -1 {
		t.Errorf("SelectedRow = %d, want -1", got)
	}
	if len(del.events) != 0 {
		t.Errorf("empty picker must not notify, got %v", del.events)
	}
}
