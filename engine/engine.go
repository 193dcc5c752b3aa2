package engine

import (
	"github.com/Carmen-Shannon/shadercast/engine/applog"
	"github.com/Carmen-Shannon/shadercast/engine/capture"
	"github.com/Carmen-Shannon/shadercast/engine/profiler"
	"github.com/Carmen-Shannon/shadercast/engine/renderer"
	"github.com/Carmen-Shannon/shadercast/engine/window"
)

// loopState tracks where the render loop is in its lifecycle.
type loopState int

const (
	// stateRunning means frames are being drawn (and captured, if recording).
	stateRunning loopState = iota

	// stateTerminating means the frame budget is exhausted or a close was
	// requested; no further frames are drawn or captured.
	stateTerminating
)

// engine is the implementation of the Engine interface.
// Owns the window, the renderer, and the recording state. Everything runs on
// the single thread that owns the OpenGL context; the only blocking waits are
// event polling and, after the loop, the external encoder.
type engine struct {
	window   window.Window
	renderer renderer.Renderer
	logger   *applog.Logger

	profiler         *profiler.Profiler
	profilingEnabled bool

	// recording state
	recording   bool
	framesDir   string
	totalFrames int
	frameIndex  int

	state loopState

	// grab captures the current color buffer to a file. Swappable for tests;
	// defaults to capture.Grab.
	grab func(path string, width, height int) error
}

// Engine drives the demo: it repeatedly clears, draws the full-screen shader,
// optionally captures the frame, presents, and polls events, until the window
// closes or the configured frame budget is exhausted.
type Engine interface {
	// Window returns the underlying window.
	//
	// Returns:
	//   - window.Window: the window instance
	Window() window.Window

	// Renderer returns the underlying renderer.
	//
	// Returns:
	//   - renderer.Renderer: the renderer instance
	Renderer() renderer.Renderer

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()

	// FramesCaptured returns how many capture attempts have been made.
	//
	// Returns:
	//   - int: the number of frames attempted so far
	FramesCaptured() int

	// Run starts the render loop and blocks until the window closes or the
	// frame budget is reached. Must be called on the thread that owns the
	// OpenGL context.
	Run()
}

var _ Engine = &engine{}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder
// pattern.
//
// Parameters:
//   - options: functional options for engine configuration (window, renderer, recording, profiling)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		state: stateRunning,
		grab:  capture.Grab,
	}
	for _, opt := range options {
		opt(e)
	}

	if e.logger == nil {
		e.logger = applog.New(discard{})
	}
	if e.profiler == nil {
		e.profiler = profiler.NewProfiler(e.logger)
	}

	if e.window != nil && e.renderer != nil {
		e.window.SetResizeCallback(func(width, height int) {
			e.renderer.Resize(width, height)
			e.logger.Printf("Window resized: width = %d, height = %d", width, height)
		})
	}

	return e
}

func (e *engine) Window() window.Window {
	return e.window
}

func (e *engine) Renderer() renderer.Renderer {
	return e.renderer
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

func (e *engine) FramesCaptured() int {
	return e.frameIndex
}

func (e *engine) Run() {
	e.window.SetUpdateCallback(e.renderFrame)
	e.logger.Println("Starting render loop.")
	e.window.ProcessMessages()
	e.logger.Println("Exiting render loop.")
}

// renderFrame runs one loop iteration: clear and draw, then capture the
// frame when recording. Capture failures are logged and skipped; they never
// stop the loop. Reaching the frame budget moves the loop to Terminating and
// requests a window close.
func (e *engine) renderFrame() {
	if e.state == stateTerminating {
		return
	}

	e.renderer.DrawFrame()

	if e.recording {
		path := capture.FramePath(e.framesDir, e.frameIndex)
		if err := e.grab(path, e.window.Width(), e.window.Height()); err != nil {
			e.logger.Printf("Error: failed to capture frame %d: %v", e.frameIndex, err)
		} else {
			e.logger.Printf("Saved frame to: %s", path)
		}

		e.frameIndex++
		if e.frameIndex >= e.totalFrames {
			e.state = stateTerminating
			e.window.RequestClose()
		}
	}

	if e.profilingEnabled {
		e.profiler.Tick()
	}
}

// discard is an io.Writer sink for engines constructed without a logger.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
