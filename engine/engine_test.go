package engine

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/shadercast/engine/applog"
	"github.com/Carmen-Shannon/shadercast/engine/renderer/shader"
	"github.com/Carmen-Shannon/shadercast/engine/window"
)

// fakeWindow drives the update callback in a plain loop, standing in for the
// GLFW message loop.
type fakeWindow struct {
	width, height int
	running       bool
	onUpdate      func()
	onResize      func(width, height int)

	// maxIterations bounds the loop for non-recording tests.
	maxIterations int
	iterations    int
	swaps         int
}

func (w *fakeWindow) SetUpdateCallback(cb func())                { w.onUpdate = cb }
func (w *fakeWindow) SetResizeCallback(cb func(wd, h int))       { w.onResize = cb }
func (w *fakeWindow) SetKeyDownCallback(cb func(keyCode uint32)) {}
func (w *fakeWindow) IsRunning() bool                            { return w.running }
func (w *fakeWindow) RequestClose()                              { w.running = false }
func (w *fakeWindow) SwapBuffers()                               { w.swaps++ }
func (w *fakeWindow) Close() error                               { w.running = false; return nil }
func (w *fakeWindow) Width() int                                 { return w.width }
func (w *fakeWindow) Height() int                                { return w.height }

func (w *fakeWindow) ProcessMessages() {
	for w.running {
		if w.onUpdate != nil {
			w.onUpdate()
		}
		w.SwapBuffers()
		w.iterations++
		if w.maxIterations > 0 && w.iterations >= w.maxIterations {
			w.running = false
		}
	}
}

var _ window.Window = &fakeWindow{}

func TestRunStopsAtFrameBudget(t *testing.T) {
	win := &fakeWindow{width: 8, height: 8, running: true}
	var captured []string

	e := &engine{
		window:      win,
		renderer:    noopRenderer{},
		logger:      applog.New(&bytes.Buffer{}),
		state:       stateRunning,
		recording:   true,
		framesDir:   "frames",
		totalFrames: 10,
		grab: func(path string, width, height int) error {
			captured = append(captured, path)
			return nil
		},
	}

	e.Run()

	assert.Equal(t, 10, e.FramesCaptured())
	require.Len(t, captured, 10)
	assert.Equal(t, filepath.Join("frames", "frame_00000.png"), captured[0])
	assert.Equal(t, filepath.Join("frames", "frame_00009.png"), captured[9])
	assert.False(t, win.IsRunning())
}

func TestCaptureFailureDoesNotStopLoop(t *testing.T) {
	win := &fakeWindow{width: 8, height: 8, running: true}
	var buf bytes.Buffer
	calls := 0

	e := &engine{
		window:      win,
		renderer:    noopRenderer{},
		logger:      applog.New(&buf),
		state:       stateRunning,
		recording:   true,
		framesDir:   "frames",
		totalFrames: 5,
		grab: func(path string, width, height int) error {
			calls++
			if calls == 2 {
				return errors.New("allocation failed")
			}
			return nil
		},
	}

	e.Run()

	assert.Equal(t, 5, e.FramesCaptured())
	assert.Contains(t, buf.String(), "failed to capture frame 1")
}

func TestRunWithoutRecordingEndsOnWindowClose(t *testing.T) {
	win := &fakeWindow{width: 8, height: 8, running: true, maxIterations: 7}

	e := &engine{
		window:   win,
		renderer: noopRenderer{},
		logger:   applog.New(&bytes.Buffer{}),
		state:    stateRunning,
		grab: func(path string, width, height int) error {
			t.Fatal("grab must not be called when recording is off")
			return nil
		},
	}

	e.Run()

	assert.Zero(t, e.FramesCaptured())
	assert.Equal(t, 7, win.iterations)
}

func TestNewEngineWiresResizeToRenderer(t *testing.T) {
	win := &fakeWindow{width: 8, height: 8, running: true}
	r := &recordingRenderer{}
	var buf bytes.Buffer

	NewEngine(
		WithWindow(win),
		WithRenderer(r),
		WithLogger(applog.New(&buf)),
	)

	require.NotNil(t, win.onResize)
	win.onResize(640, 480)
	assert.Equal(t, [][2]int{{640, 480}}, r.resizes)
	assert.Contains(t, buf.String(), "Window resized: width = 640, height = 480")
}

// noopRenderer satisfies renderer.Renderer with no GL calls.
type noopRenderer struct{}

func (noopRenderer) Init(width, height int) error { return nil }
func (noopRenderer) SetProgram(shader.Program)    {}
func (noopRenderer) DrawFrame()                   {}
func (noopRenderer) Resize(width, height int)     {}
func (noopRenderer) Release()                     {}

// recordingRenderer records resize calls.
type recordingRenderer struct {
	noopRenderer
	resizes [][2]int
}

func (r *recordingRenderer) Resize(width, height int) {
	r.resizes = append(r.resizes, [2]int{width, height})
}
