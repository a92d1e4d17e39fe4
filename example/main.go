// Example demonstrates a horizontal looping carousel with inertial scrolling
// and snapping.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// The example creates a GLFW window, sets up a scroll view over colored
// cells, and drives it from mouse drags, the wheel and Home/End/PageUp/
// PageDown. Drag the tiles sideways and release to coast; the view snaps to
// the nearest tile and loops endlessly.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/scrollview"
	"github.com/go-theft-auto/scrollview/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 300
	windowTitle  = "scrollview example"

	cellInterval = 0.2
	cellSpan     = 0.18
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "verbose scroll view logging")
	flag.Parse()
	scrollview.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
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

	// Create the cell renderer (the host) and input adapter.
	renderer, err := opengl.NewCellRenderer(windowWidth, windowHeight, scrollview.Horizontal, cellSpan)
	if err != nil {
		return fmt.Errorf("cell renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	// Create the scroll view: a horizontal, endlessly looping carousel that
	// coasts after release and snaps to the nearest tile.
	view, err := scrollview.New[uint32](renderer,
		scrollview.WithAxis(scrollview.Horizontal),
		scrollview.WithLoop(),
		scrollview.WithCellInterval(cellInterval),
		scrollview.WithScrollOffset(0.5-cellInterval/2),
		scrollview.WithSnap(scrollview.DefaultSnapConfig()),
	)
	if err != nil {
		return fmt.Errorf("scroll view: %w", err)
	}

	// Items are packed 0xAABBGGRR tile colors.
	items := []uint32{
		0xFF4C6FEB, 0xFF4CC3EB, 0xFF4CEBB8, 0xFF6FEB4C, 0xFFC3EB4C,
		0xFFEBB84C, 0xFFEB6F4C, 0xFFEB4C8A, 0xFFC34CEB, 0xFF6F4CEB,
	}
	if err := view.SetItems(items); err != nil {
		return fmt.Errorf("set items: %w", err)
	}

	unsubscribe := view.OnSelectionChanged(func(index int) {
		fmt.Printf("selected tile %d\n", index)
	})
	defer unsubscribe()

	for _, p := range scrollview.CheckSetup(view) {
		fmt.Fprintln(os.Stderr, "setup:", p)
	}

	// Main loop.
	lastTime := glfw.GetTime()
	for !window.ShouldClose() {
		inputAdapter.Update()
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := float32(now - lastTime)
		lastTime = now

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		renderer.Resize(w, h)
		viewport := scrollview.Rect{X: 0, Y: 0, W: float32(w), H: float32(h)}

		if err := view.HandleInput(inputAdapter.Input(), viewport); err != nil {
			return fmt.Errorf("handle input: %w", err)
		}
		if err := view.Update(dt); err != nil {
			return fmt.Errorf("update: %w", err)
		}

		renderer.Draw()
		window.SwapBuffers()
	}

	return nil
}
