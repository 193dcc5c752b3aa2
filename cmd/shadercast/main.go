package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/Carmen-Shannon/shadercast/engine"
	"github.com/Carmen-Shannon/shadercast/engine/applog"
	"github.com/Carmen-Shannon/shadercast/engine/config"
	"github.com/Carmen-Shannon/shadercast/engine/renderer"
	"github.com/Carmen-Shannon/shadercast/engine/renderer/shader"
	"github.com/Carmen-Shannon/shadercast/engine/video"
	"github.com/Carmen-Shannon/shadercast/engine/window"
)

// logFilePath is the fixed log file location, truncated at every start.
const logFilePath = "shaderapp_logs.log"

func init() {
	// GLFW and OpenGL calls must all happen on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

// run owns the whole pipeline: config, window, shaders, render loop, video
// assembly. Exit codes: 0 normal (including an encoder failure, which
// preserves the frames), -1 for log/window/loader initialization failures,
// 1 for shader load/compile/link failures.
func run() int {
	lg, err := applog.Open(logFilePath)
	if err != nil {
		fmt.Println("Error: Unable to open log file.")
		return -1
	}
	defer lg.Close()
	lg.Println("----- Program Start -----")

	cfg, err := config.Load(os.Args[1:], os.Stdin, os.Stdout, lg)
	if err != nil {
		lg.Printf("Error: %v", err)
		return -1
	}
	cfg.LogSummary(lg)

	win, err := window.NewWindow(
		window.WithWidth(cfg.Width),
		window.WithHeight(cfg.Height),
		window.WithTitle(cfg.Title),
	)
	if err != nil {
		lg.Printf("Error creating the window: %v", err)
		return -1
	}
	lg.Println("Window created successfully.")

	rend := renderer.NewRenderer()
	if err := rend.Init(win.Width(), win.Height()); err != nil {
		lg.Printf("Error loading OpenGL: %v", err)
		win.Close()
		return -1
	}
	lg.Println("OpenGL loaded successfully.")

	prog, err := buildProgram(cfg, lg)
	if err != nil {
		lg.Printf("Error: %v", err)
		win.Close()
		return 1
	}
	rend.SetProgram(prog)

	if cfg.RecordVideo {
		if err := os.MkdirAll(cfg.FramesDir, 0o755); err != nil {
			lg.Printf("Warning: unable to create frames folder %q: %v", cfg.FramesDir, err)
		}
	}

	opts := []engine.EngineBuilderOption{
		engine.WithWindow(win),
		engine.WithRenderer(rend),
		engine.WithLogger(lg),
	}
	if cfg.RecordVideo {
		opts = append(opts, engine.WithRecording(cfg.FramesDir, cfg.TotalFrames()))
	}
	eng := engine.NewEngine(opts...)
	eng.Run()

	rend.Release()
	win.Close()
	lg.Println("OpenGL resources released; GLFW terminated.")

	if cfg.RecordVideo {
		assembleVideo(cfg, lg)
	}

	lg.Println("----- Program End -----")
	return 0
}

// buildProgram loads, compiles, and links the configured shader pair.
// Any shader the pipeline has already acquired is released before returning
// an error.
func buildProgram(cfg config.Config, lg *applog.Logger) (shader.Program, error) {
	lg.Printf("Loading shader from '%s'...", cfg.VertexPath)
	vertSrc, err := shader.LoadSource(cfg.VertexPath)
	if err != nil {
		return nil, err
	}
	lg.Printf("Loading shader from '%s'...", cfg.FragmentPath)
	fragSrc, err := shader.LoadSource(cfg.FragmentPath)
	if err != nil {
		return nil, err
	}

	lg.Println("Compiling vertex shader...")
	vert, err := shader.Compile(shader.StageVertex, vertSrc)
	if err != nil {
		return nil, err
	}
	lg.Println("Compiling fragment shader...")
	frag, err := shader.Compile(shader.StageFragment, fragSrc)
	if err != nil {
		vert.Release()
		return nil, err
	}

	lg.Println("Creating shader program...")
	prog, err := shader.Link(vert, frag)
	if err != nil {
		vert.Release()
		frag.Release()
		return nil, err
	}
	lg.Println("Shader program created and linked successfully.")
	return prog, nil
}

// assembleVideo shells out to the external encoder over the captured frame
// sequence. On success the intermediate frames are removed; on failure they
// are left in place for manual recovery and the process still exits 0.
func assembleVideo(cfg config.Config, lg *applog.Logger) {
	lg.Println("Combining frames into video using ffmpeg...")
	asm := video.NewAssembler(
		video.WithFPS(cfg.FPS),
		video.WithFramesDir(cfg.FramesDir),
		video.WithOutputFile(cfg.OutputVideo),
	)

	if err := asm.Run(context.Background()); err != nil {
		lg.Printf("Error: ffmpeg command failed: %v", err)
		return
	}
	lg.Printf("Video created successfully: %s", cfg.OutputVideo)

	lg.Println("Removing temporary frame images...")
	if _, err := asm.CleanupFrames(); err != nil {
		lg.Printf("Warning: failed to remove frame images: %v", err)
	}
}
