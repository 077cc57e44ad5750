/*
Package picker implements a spinning-wheel value selector (a slot-machine
style picker) for real-time rendering engines, designed as idiomatic Go
with an explicit per-frame driving loop.

# Overview

A Picker presents the rows of a DataSource as a wheel that the user spins
with drag and flick gestures. Released wheels decelerate under friction
and always snap onto a row boundary, so the control is never left between
values. Exactly one delegate notification is made per effective selection
change, whether the change came from a settled gesture, a programmatic
SelectRow, or a data reload.

The picker is a retained control but does not own a window or an event
loop: the host application feeds it input, time, and a draw target every
frame.

# Quick Start

	// Setup
	months := picker.StaticSource{"Jan", "Feb", "Mar", "Apr"}
	p := picker.New(months,
	    picker.WithFrame(picker.Rect{X: 40, Y: 40, W: 160, H: 220}),
	    picker.WithLooping(true),
	    picker.WithDelegate(delegate),
	)

	renderer, _ := opengl.NewRenderer(800, 600)
	input := picker.NewInputState()

	// Frame loop
	for !window.ShouldClose() {
	    input.Reset()
	    ... collect events into input ...

	    p.HandleInput(input)
	    p.Update(deltaTime)

	    dl := picker.AcquireDrawList()
	    p.Draw(dl, renderer.FontTextureID())
	    dl.Finalize()
	    renderer.Render(dl)
	    picker.ReleaseDrawList(dl)

	    window.SwapBuffers()
	}

# Interaction Reference

Pointer:

	drag          spin the wheel along the swipe axis
	flick         release above the flick velocity to keep spinning
	release       below the flick velocity, snap to the nearest row
	Escape        cancel the gesture in flight, snap to the nearest row

While the pointer hovers the frame and the wheel is at rest:

	scroll wheel  step the selection one row per notch
	arrow keys    step the selection (Up/Down vertical, Left/Right horizontal)
	Home, End     jump to the first or last row

# Threading

All Picker methods must be called from the host's main loop. The picker
performs no internal locking and delegate callbacks run synchronously on
the calling goroutine.
*/
package picker
