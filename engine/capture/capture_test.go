package capture

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rowMarkedPixels builds a width x height RGBA buffer where every pixel in
// row y has R = y, making row order visible after a flip.
func rowMarkedPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 4
			pixels[i] = byte(y)
			pixels[i+3] = 0xff
		}
	}
	return pixels
}

func TestFramePath(t *testing.T) {
	assert.Equal(t, filepath.Join("frames", "frame_00000.png"), FramePath("frames", 0))
	assert.Equal(t, filepath.Join("frames", "frame_00059.png"), FramePath("frames", 59))
	assert.Equal(t, filepath.Join("out", "frame_12345.png"), FramePath("out", 12345))
}

func TestFrameSequenceNaming(t *testing.T) {
	// fps=30, duration=2.0 gives exactly 60 contiguous names.
	const total = 30 * 2
	seen := make(map[string]bool, total)
	for i := 0; i < total; i++ {
		seen[FramePath("d", i)] = true
	}
	require.Len(t, seen, total)
	assert.True(t, seen[filepath.Join("d", "frame_00000.png")])
	assert.True(t, seen[filepath.Join("d", "frame_00059.png")])
	for i := 0; i < total; i++ {
		assert.True(t, seen[filepath.Join("d", fmt.Sprintf("frame_%05d.png", i))], "gap at frame %d", i)
	}
}

func TestFlipVerticalReversesRows(t *testing.T) {
	const width, height = 3, 5
	pixels := rowMarkedPixels(width, height)

	flipped, err := FlipVertical(pixels, width, height)
	require.NoError(t, err)

	stride := width * 4
	for y := 0; y < height; y++ {
		assert.Equal(t, pixels[(height-1-y)*stride:(height-y)*stride], flipped[y*stride:(y+1)*stride], "row %d", y)
	}
	// Output row 0 carries the marker of input row height-1.
	assert.Equal(t, byte(height-1), flipped[0])
}

func TestFlipVerticalRoundTrips(t *testing.T) {
	const width, height = 4, 3
	pixels := rowMarkedPixels(width, height)
	once, err := FlipVertical(pixels, width, height)
	require.NoError(t, err)
	twice, err := FlipVertical(once, width, height)
	require.NoError(t, err)
	assert.Equal(t, pixels, twice)
}

func TestFlipVerticalRejectsBadLength(t *testing.T) {
	_, err := FlipVertical(make([]byte, 10), 3, 5)
	require.Error(t, err)
}

func TestEncodePNGPreservesPixels(t *testing.T) {
	const width, height = 3, 5
	pixels := rowMarkedPixels(width, height)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, pixels, width, height, ".png"))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, width, height), decoded.Bounds())
	for y := 0; y < height; y++ {
		r, _, _, _ := decoded.At(0, y).RGBA()
		assert.Equal(t, uint32(y), r>>8, "row %d", y)
	}
}

func TestEncodeFormats(t *testing.T) {
	pixels := rowMarkedPixels(2, 2)
	for _, format := range []string{".png", ".bmp", ".tif", ".tiff", ".PNG"} {
		var buf bytes.Buffer
		assert.NoError(t, Encode(&buf, pixels, 2, 2, format), format)
		assert.NotZero(t, buf.Len(), format)
	}

	var buf bytes.Buffer
	err := Encode(&buf, pixels, 2, 2, ".gif")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported frame format")
}

func TestSaveWritesDecodablePNG(t *testing.T) {
	const width, height = 4, 2
	path := FramePath(t.TempDir(), 7)
	require.NoError(t, Save(path, rowMarkedPixels(width, height), width, height))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	decoded, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, width, height), decoded.Bounds())
}

func TestSaveFailsOnMissingDirectory(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "nope", "frame_00000.png"), rowMarkedPixels(1, 1), 1, 1)
	require.Error(t, err)
}
