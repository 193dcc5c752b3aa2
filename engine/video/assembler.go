package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Carmen-Shannon/shadercast/engine/capture"
)

// ErrEncoderFailed is wrapped into the error returned when the external
// encoder exits nonzero. Callers branch on it to preserve the frame sequence.
var ErrEncoderFailed = errors.New("video encoder failed")

// assembler is the implementation of the Assembler interface.
// Holds the encoder invocation parameters resolved from the options.
type assembler struct {
	encoderPath string
	fps         int
	framesDir   string
	outputFile  string

	// bitrateMbps caps the encoder bitrate; 0 derives fps*2 Mbps.
	bitrateMbps int

	// lossless requests a constant-quality lossless encode (qp 0). The
	// bitrate cap is passed alongside it; which setting dominates is the
	// encoder's business.
	lossless bool
}

// Assembler merges a captured frame sequence into a single video file by
// invoking an external encoder, then removes the intermediate frames on
// success. The encoder is an external collaborator: the contract is the
// command template plus its exit code.
type Assembler interface {
	// Args returns the argument list passed to the encoder binary.
	//
	// Returns:
	//   - []string: the encoder arguments, binary name excluded
	Args() []string

	// Run invokes the encoder over the frame sequence and blocks until it
	// exits. The invocation is not interruptible once started except through
	// the provided context.
	//
	// Parameters:
	//   - ctx: context bounding the encoder process
	//
	// Returns:
	//   - error: ErrEncoderFailed (wrapped, with captured stderr) on nonzero exit
	Run(ctx context.Context) error

	// CleanupFrames deletes every frame-sequence file in the frames
	// directory.
	//
	// Returns:
	//   - int: number of files removed
	//   - error: first removal error encountered
	CleanupFrames() (int, error)

	// Assemble runs the encoder and, only on success, removes the
	// intermediate frames. On failure the frames are left in place for
	// manual recovery.
	//
	// Parameters:
	//   - ctx: context bounding the encoder process
	//
	// Returns:
	//   - error: the Run error, or a cleanup error after a successful encode
	Assemble(ctx context.Context) error
}

var _ Assembler = &assembler{}

// NewAssembler creates an Assembler with the provided options.
// Defaults: encoder "ffmpeg", 30 fps, frames dir "frames", output
// "output.mp4", lossless quality with a derived fps*2 Mbps bitrate cap.
//
// Parameters:
//   - options: functional options to configure the assembler
//
// Returns:
//   - Assembler: the configured assembler
func NewAssembler(options ...AssemblerBuilderOption) Assembler {
	a := &assembler{
		encoderPath: "ffmpeg",
		fps:         30,
		framesDir:   "frames",
		outputFile:  "output.mp4",
		lossless:    true,
	}
	for _, opt := range options {
		opt(a)
	}
	return a
}

func (a *assembler) Args() []string {
	bitrate := a.bitrateMbps
	if bitrate <= 0 {
		bitrate = a.fps * 2
	}
	args := []string{
		"-y",
		"-framerate", fmt.Sprintf("%d", a.fps),
		"-i", filepath.Join(a.framesDir, "frame_%05d.png"),
		"-c:v", "libx264",
		"-preset", "veryslow",
	}
	if a.lossless {
		args = append(args, "-qp", "0")
	}
	args = append(args,
		"-pix_fmt", "yuv444p",
		"-g", "1",
		"-b:v", fmt.Sprintf("%dM", bitrate),
		a.outputFile,
	)
	return args
}

func (a *assembler) Run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, a.encoderPath, a.Args()...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return fmt.Errorf("%w: %v: %s", ErrEncoderFailed, err, detail)
		}
		return fmt.Errorf("%w: %v", ErrEncoderFailed, err)
	}
	return nil
}

func (a *assembler) CleanupFrames() (int, error) {
	matches, err := filepath.Glob(filepath.Join(a.framesDir, capture.FrameGlob))
	if err != nil {
		return 0, fmt.Errorf("failed to list frame files: %w", err)
	}
	removed := 0
	for _, m := range matches {
		if err := os.Remove(m); err != nil {
			return removed, fmt.Errorf("failed to remove frame file %q: %w", m, err)
		}
		removed++
	}
	return removed, nil
}

func (a *assembler) Assemble(ctx context.Context) error {
	if err := a.Run(ctx); err != nil {
		return err
	}
	if _, err := a.CleanupFrames(); err != nil {
		return err
	}
	return nil
}
