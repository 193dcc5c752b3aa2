package video

// AssemblerBuilderOption is a functional option for configuring an assembler.
// Use the With* functions to create options.
type AssemblerBuilderOption func(a *assembler)

// WithEncoderPath sets the encoder binary to invoke.
//
// Parameters:
//   - path: encoder binary name or path (default "ffmpeg")
//
// Returns:
//   - AssemblerBuilderOption: option function to apply
func WithEncoderPath(path string) AssemblerBuilderOption {
	return func(a *assembler) {
		a.encoderPath = path
	}
}

// WithFPS sets the frame rate of the assembled video.
//
// Parameters:
//   - fps: frames per second (values <= 0 keep the default of 30)
//
// Returns:
//   - AssemblerBuilderOption: option function to apply
func WithFPS(fps int) AssemblerBuilderOption {
	return func(a *assembler) {
		if fps > 0 {
			a.fps = fps
		}
	}
}

// WithFramesDir sets the directory holding the captured frame sequence.
//
// Parameters:
//   - dir: the frame sequence directory
//
// Returns:
//   - AssemblerBuilderOption: option function to apply
func WithFramesDir(dir string) AssemblerBuilderOption {
	return func(a *assembler) {
		a.framesDir = dir
	}
}

// WithOutputFile sets the path of the assembled video file.
//
// Parameters:
//   - path: the output video path
//
// Returns:
//   - AssemblerBuilderOption: option function to apply
func WithOutputFile(path string) AssemblerBuilderOption {
	return func(a *assembler) {
		a.outputFile = path
	}
}

// WithBitrateMbps overrides the bitrate cap. The default derives fps*2 Mbps.
//
// Parameters:
//   - mbps: bitrate cap in megabits per second (values <= 0 keep the derived default)
//
// Returns:
//   - AssemblerBuilderOption: option function to apply
func WithBitrateMbps(mbps int) AssemblerBuilderOption {
	return func(a *assembler) {
		if mbps > 0 {
			a.bitrateMbps = mbps
		}
	}
}

// WithLossless toggles the constant-quality lossless encode setting.
//
// Parameters:
//   - lossless: if true, request qp 0 from the encoder
//
// Returns:
//   - AssemblerBuilderOption: option function to apply
func WithLossless(lossless bool) AssemblerBuilderOption {
	return func(a *assembler) {
		a.lossless = lossless
	}
}
