package capture

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// FramePattern is the printf pattern for frame file names. The zero-padded
// index keeps the sequence contiguous for the encoder's fixed-pattern input.
const FramePattern = "frame_%05d.png"

// FrameGlob matches every captured frame file in a directory.
const FrameGlob = "frame_*.png"

// FramePath returns the path of the frame with the given index inside dir,
// following FramePattern.
//
// Parameters:
//   - dir: the frame output directory
//   - index: the zero-based frame index
//
// Returns:
//   - string: the frame file path
func FramePath(dir string, index int) string {
	return filepath.Join(dir, fmt.Sprintf(FramePattern, index))
}

// FlipVertical returns a copy of pixels with the row order reversed.
// OpenGL reads back with a bottom-left origin; image files expect top-left,
// so source row y lands on destination row height-1-y. Pixels are tightly
// packed RGBA with a stride of width*4.
//
// Parameters:
//   - pixels: the raw read-back, len must be width*height*4
//   - width: frame width in pixels
//   - height: frame height in pixels
//
// Returns:
//   - []byte: the flipped pixel data
//   - error: error if the buffer length does not match the dimensions
func FlipVertical(pixels []byte, width, height int) ([]byte, error) {
	stride := width * 4
	if len(pixels) != stride*height {
		return nil, fmt.Errorf("pixel buffer is %d bytes, want %d for %dx%d RGBA", len(pixels), stride*height, width, height)
	}
	flipped := make([]byte, len(pixels))
	for y := 0; y < height; y++ {
		copy(flipped[(height-1-y)*stride:(height-y)*stride], pixels[y*stride:(y+1)*stride])
	}
	return flipped, nil
}

// Encode writes top-left-origin RGBA pixel data to w in the given format.
//
// Parameters:
//   - w: destination writer
//   - pixels: tightly packed RGBA data, stride width*4
//   - width: frame width in pixels
//   - height: frame height in pixels
//   - format: file extension selecting the encoder (".png", ".bmp", ".tif", ".tiff")
//
// Returns:
//   - error: error if the format is unknown or encoding fails
func Encode(w io.Writer, pixels []byte, width, height int, format string) error {
	if len(pixels) != width*height*4 {
		return fmt.Errorf("pixel buffer is %d bytes, want %d for %dx%d RGBA", len(pixels), width*height*4, width, height)
	}
	img := &image.NRGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	switch strings.ToLower(format) {
	case ".png":
		return png.Encode(w, img)
	case ".bmp":
		return bmp.Encode(w, img)
	case ".tif", ".tiff":
		return tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("unsupported frame format %q", format)
	}
}

// Save encodes top-left-origin RGBA pixel data to a file, choosing the
// encoder from the path extension.
//
// Parameters:
//   - path: destination file path
//   - pixels: tightly packed RGBA data, stride width*4
//   - width: frame width in pixels
//   - height: frame height in pixels
//
// Returns:
//   - error: error if the file cannot be created or encoding fails
func Save(path string, pixels []byte, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create frame file %q: %w", path, err)
	}
	if err := Encode(f, pixels, width, height, filepath.Ext(path)); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode frame %q: %w", path, err)
	}
	return f.Close()
}

// Grab reads the current color buffer back from OpenGL, flips it to a
// top-left origin, and saves it to path. A failure leaves the render loop
// untouched; the caller logs and moves on.
//
// Requires a current OpenGL context on the calling thread.
//
// Parameters:
//   - path: destination file path, extension selects the encoder
//   - width: framebuffer width in pixels
//   - height: framebuffer height in pixels
//
// Returns:
//   - error: error if the read-back dimensions are invalid or saving fails
func Grab(path string, width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid capture size %dx%d", width, height)
	}
	pixels := make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	flipped, err := FlipVertical(pixels, width, height)
	if err != nil {
		return err
	}
	return Save(path, flipped, width, height)
}
