package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Carmen-Shannon/shadercast/engine/applog"
)

// Config holds every knob the app accepts, from the command line or the
// interactive menu. Zero-config runs fall back to Default().
type Config struct {
	// Width is the requested window width in pixels.
	Width int

	// Height is the requested window height in pixels.
	Height int

	// Title is the window title displayed in the title bar.
	Title string

	// VertexPath is the filesystem path of the vertex shader source.
	VertexPath string

	// FragmentPath is the filesystem path of the fragment shader source.
	FragmentPath string

	// RecordVideo enables per-frame capture and video assembly.
	RecordVideo bool

	// FPS is the capture and encode frame rate.
	FPS int

	// Duration is the recording length in seconds.
	Duration float64

	// FramesDir is the directory receiving the captured frame images.
	FramesDir string

	// OutputVideo is the path of the assembled video file.
	OutputVideo string
}

// Default returns the configuration used when the user provides nothing.
func Default() Config {
	return Config{
		Width:        2560,
		Height:       1440,
		Title:        "My First Shader!",
		VertexPath:   "shaders/vertex_shader.glsl",
		FragmentPath: "shaders/fragment_shader.glsl",
		RecordVideo:  false,
		FPS:          30,
		Duration:     5.0,
		FramesDir:    "frames",
		OutputVideo:  "output.mp4",
	}
}

// TotalFrames returns the number of frames to capture for the configured
// rate and duration, truncated toward zero.
func (c Config) TotalFrames() int {
	return int(float64(c.FPS) * c.Duration)
}

// Parse reads the positional command line form:
//
//	width height [title] [vertex_path] [fragment_path] [--video <0|1> <fps> <duration> <frames_dir> <output_file>]
//
// args is the argument list without the program name. A --video flag with
// fewer than five trailing parameters logs a warning and leaves recording
// disabled.
//
// Parameters:
//   - args: command line arguments, program name excluded
//   - lg: logger for the --video warning
//
// Returns:
//   - Config: the parsed configuration, defaults filled in
//   - error: error if width or height is missing or not a number
func Parse(args []string, lg *applog.Logger) (Config, error) {
	c := Default()
	if len(args) < 2 {
		return c, fmt.Errorf("expected at least width and height, got %d argument(s)", len(args))
	}

	var err error
	if c.Width, err = strconv.Atoi(args[0]); err != nil {
		return c, fmt.Errorf("invalid width %q: %w", args[0], err)
	}
	if c.Height, err = strconv.Atoi(args[1]); err != nil {
		return c, fmt.Errorf("invalid height %q: %w", args[1], err)
	}
	if len(args) >= 3 {
		c.Title = args[2]
	}
	if len(args) >= 4 {
		c.VertexPath = args[3]
	}
	if len(args) >= 5 {
		c.FragmentPath = args[4]
	}

	for i := 5; i < len(args); i++ {
		if args[i] != "--video" {
			continue
		}
		// The flag carries five parameters: enabled, fps, duration, dir, file.
		if i+5 > len(args)-1 {
			lg.Println("Warning: --video flag provided but not enough parameters.")
			break
		}
		enabled, err := strconv.Atoi(args[i+1])
		if err != nil {
			return c, fmt.Errorf("invalid --video enable flag %q: %w", args[i+1], err)
		}
		c.RecordVideo = enabled != 0
		if c.FPS, err = strconv.Atoi(args[i+2]); err != nil {
			return c, fmt.Errorf("invalid fps %q: %w", args[i+2], err)
		}
		if c.Duration, err = strconv.ParseFloat(args[i+3], 64); err != nil {
			return c, fmt.Errorf("invalid duration %q: %w", args[i+3], err)
		}
		c.FramesDir = args[i+4]
		c.OutputVideo = args[i+5]
		break
	}

	return c, nil
}

// Prompt collects the configuration interactively. Menu choice 1 (or any
// unreadable choice) keeps the defaults; choice 2 asks for every field.
//
// Parameters:
//   - r: input source, normally standard input
//   - w: prompt destination, normally standard output
//
// Returns:
//   - Config: the collected configuration
func Prompt(r io.Reader, w io.Writer) Config {
	c := Default()
	br := bufio.NewReader(r)

	fmt.Fprintln(w, "Welcome to ShaderApp!")
	fmt.Fprintln(w, "1. Use default parameters")
	fmt.Fprintln(w, "2. Customize parameters")
	fmt.Fprint(w, "Enter your choice (1 or 2): ")

	choice, ok := readInt(br)
	if !ok || choice != 2 {
		return c
	}

	fmt.Fprint(w, "Enter window width: ")
	if v, ok := readInt(br); ok {
		c.Width = v
	}
	fmt.Fprint(w, "Enter window height: ")
	if v, ok := readInt(br); ok {
		c.Height = v
	}
	fmt.Fprint(w, "Enter window title: ")
	if s, ok := readLine(br); ok {
		c.Title = s
	}
	fmt.Fprint(w, "Enter vertex shader path: ")
	if s, ok := readLine(br); ok {
		c.VertexPath = s
	}
	fmt.Fprint(w, "Enter fragment shader path: ")
	if s, ok := readLine(br); ok {
		c.FragmentPath = s
	}

	fmt.Fprint(w, "Record video? (0/1): ")
	if v, ok := readInt(br); ok {
		c.RecordVideo = v != 0
	}
	if c.RecordVideo {
		fmt.Fprint(w, "Enter FPS: ")
		if v, ok := readInt(br); ok {
			c.FPS = v
		}
		fmt.Fprint(w, "Enter duration (seconds): ")
		if v, ok := readFloat(br); ok {
			c.Duration = v
		}
		fmt.Fprint(w, "Output frames folder: ")
		if s, ok := readLine(br); ok {
			c.FramesDir = s
		}
		fmt.Fprint(w, "Output video file: ")
		if s, ok := readLine(br); ok {
			c.OutputVideo = s
		}
	}

	return c
}

// Load resolves the configuration from the command line when at least width
// and height are present, and from the interactive menu otherwise.
//
// Parameters:
//   - args: command line arguments, program name excluded
//   - stdin: interactive input source
//   - stdout: interactive prompt destination
//   - lg: logger for parse decisions
//
// Returns:
//   - Config: the resolved configuration
//   - error: error if the command line form is malformed
func Load(args []string, stdin io.Reader, stdout io.Writer, lg *applog.Logger) (Config, error) {
	if len(args) >= 2 {
		c, err := Parse(args, lg)
		if err != nil {
			return c, err
		}
		lg.Println("Command line parameters received.")
		return c, nil
	}
	lg.Println("No command line parameters detected, launching interactive menu.")
	return Prompt(stdin, stdout), nil
}

// LogSummary writes the resolved configuration block to the log.
func (c Config) LogSummary(lg *applog.Logger) {
	lg.Println("Configuration:")
	lg.Printf("  Window Size   : %d x %d", c.Width, c.Height)
	lg.Printf("  Title         : %s", c.Title)
	lg.Printf("  Vertex Shader : %s", c.VertexPath)
	lg.Printf("  Fragment Shdr : %s", c.FragmentPath)
	if c.RecordVideo {
		lg.Println("  Video Capture : YES")
		lg.Printf("    FPS         : %d", c.FPS)
		lg.Printf("    Duration    : %.2f sec", c.Duration)
		lg.Printf("    Frames Dir  : %s", c.FramesDir)
		lg.Printf("    Output Video: %s", c.OutputVideo)
	} else {
		lg.Println("  Video Capture : NO")
	}
}

// readLine reads one line, trimming the trailing newline and surrounding
// whitespace. Returns false on read failure or an empty line.
func readLine(br *bufio.Reader) (string, bool) {
	line, err := br.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	line = strings.TrimSpace(line)
	return line, line != ""
}

func readInt(br *bufio.Reader) (int, bool) {
	s, ok := readLine(br)
	if !ok {
		return 0, false
	}
	v, err := strconv.Atoi(s)
	return v, err == nil
}

func readFloat(br *bufio.Reader) (float64, bool) {
	s, ok := readLine(br)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	return v, err == nil
}
