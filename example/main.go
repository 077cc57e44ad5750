// Example demonstrates a month picker in a GLFW window.
//
// Prerequisites:
//
//	OpenGL 4.1 and X11/GLFW development headers
//	go run ./example/
//
// The example creates a GLFW window, initializes the OpenGL renderer, and
// drives two wheels: a looping vertical month wheel and a horizontal year
// wheel. Drag or flick a wheel with the mouse, or hover it and use the
// scroll wheel, arrow keys, Home, and End. Month selections are logged to
// stderr.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/spinwheel/picker"
	"github.com/spinwheel/picker/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "picker example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// logDelegate logs selection changes.
type logDelegate struct {
	log *slog.Logger
	ds  picker.StaticSource
}

func (d *logDelegate) DidSelectRow(p *picker.Picker, row int) {
	d.log.Info("selected", "row", row, "title", d.ds.TitleForRow(p, row))
}

func (d *logDelegate) DidDeselectRow(p *picker.Picker, row int) {
	d.log.Debug("deselected", "row", row)
}

func run() error {
	// Initialize GLFW.
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL.
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("picker renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	months := picker.StaticSource{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	}
	delegate := &logDelegate{
		log: slog.New(slog.NewTextHandler(os.Stderr, nil)),
		ds:  months,
	}

	monthWheel := picker.New(months,
		picker.WithFrame(picker.Rect{X: 300, Y: 120, W: 200, H: 300}),
		picker.WithLooping(true),
		picker.WithRowExtent(36),
		picker.WithDelegate(delegate),
	)

	var years picker.StaticSource
	for y := 1990; y <= 2030; y++ {
		years = append(years, fmt.Sprintf("%d", y))
	}
	yearWheel := picker.New(years,
		picker.WithFrame(picker.Rect{X: 100, Y: 480, W: 600, H: 60}),
		picker.WithOrientation(picker.OrientationHorizontal),
		picker.WithRowExtent(80),
	)

	lastTime := glfw.GetTime()

	// Main loop.
	for !window.ShouldClose() {
		glfw.PollEvents()
		in := inputAdapter.Update()

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		renderer.Resize(w, h)
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		monthWheel.HandleInput(in)
		monthWheel.Update(dt)
		yearWheel.HandleInput(in)
		yearWheel.Update(dt)

		dl := picker.AcquireDrawList()
		monthWheel.Draw(dl, renderer.FontTextureID())
		yearWheel.Draw(dl, renderer.FontTextureID())
		dl.Finalize()
		if err := renderer.Render(dl); err != nil {
			picker.ReleaseDrawList(dl)
			return fmt.Errorf("picker render: %w", err)
		}
		picker.ReleaseDrawList(dl)

		window.SwapBuffers()
	}

	return nil
}
