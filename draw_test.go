package picker_test

import (
	"testing"

	"github.com/spinwheel/picker"
)

func TestDrawEmitsGeometry(t *testing.T) {
	p, _, _ := newTestPicker(5)

	dl := picker.AcquireDrawList()
	defer picker.ReleaseDrawList(dl)

	p.Draw(dl, 1)
	dl.Finalize()

	if len(dl.VtxBuffer) == 0 {
		t.Fatal("draw emitted no vertices")
	}
	if len(dl.CmdBuffer) == 0 {
		t.Fatal("draw emitted no commands")
	}

	// Text runs against the font texture, background and indicator untextured.
	sawFont, sawUntextured := false, false
	for _, cmd := range dl.CmdBuffer {
		if cmd.TextureID == 1 {
			sawFont = true
		}
		if cmd.TextureID == 0 {
			sawUntextured = true
		}
	}
	if !sawFont {
		t.Error("no command uses the font texture")
	}
	if !sawUntextured {
		t.Error("no untextured command for background and indicator")
	}
}

func TestDrawFetchesOnlyVisibleTitles(t *testing.T) {
	p, src, _ := newTestPicker(1000)

	dl := picker.AcquireDrawList()
	defer picker.ReleaseDrawList(dl)

	src.titleCalls = 0
	p.Draw(dl, 1)

	// The 220pt frame shows about six 40pt rows plus partial neighbors.
	if src.titleCalls == 0 {
		t.Fatal("visible rows should have their titles fetched")
	}
	if src.titleCalls > 12 {
		t.Errorf("title fetches should be limited to the visible window, got %d", src.titleCalls)
	}
}

func TestDrawEmptyPicker(t *testing.T) {
	p, _, _ := newTestPicker(0)

	dl := picker.AcquireDrawList()
	defer picker.ReleaseDrawList(dl)

	p.Draw(dl, 1)
	dl.Finalize()

	// Background and indicator still render without rows.
	if len(dl.VtxBuffer) == 0 {
		t.Error("empty picker should still draw its chrome")
	}
}

func TestDrawZeroSizeFrameIsNoop(t *testing.T) {
	src := &testSource{rows: []string{"a"}}
	p := picker.New(src)

	dl := picker.AcquireDrawList()
	defer picker.ReleaseDrawList(dl)

	p.Draw(dl, 1)
	if len(dl.VtxBuffer) != 0 {
		t.Error("zero-size frame should draw nothing")
	}
}
