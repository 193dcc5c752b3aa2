package video

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Carmen-Shannon/shadercast/engine/capture"
)

func writeFrames(t *testing.T, dir string, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		require.NoError(t, os.WriteFile(capture.FramePath(dir, i), []byte("png"), 0o644))
	}
}

func frameFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, capture.FrameGlob))
	require.NoError(t, err)
	return matches
}

func TestArgsDefaultDerivesBitrate(t *testing.T) {
	a := NewAssembler(WithFPS(30), WithFramesDir("frames"), WithOutputFile("out.mp4"))
	assert.Equal(t, []string{
		"-y",
		"-framerate", "30",
		"-i", filepath.Join("frames", "frame_%05d.png"),
		"-c:v", "libx264",
		"-preset", "veryslow",
		"-qp", "0",
		"-pix_fmt", "yuv444p",
		"-g", "1",
		"-b:v", "60M",
		"out.mp4",
	}, a.Args())
}

func TestArgsKnobs(t *testing.T) {
	a := NewAssembler(WithFPS(24), WithBitrateMbps(10), WithLossless(false), WithOutputFile("demo.mkv"))
	args := a.Args()
	assert.NotContains(t, args, "-qp")
	assert.Contains(t, args, "10M")
	assert.Contains(t, args, "demo.mkv")
	assert.Contains(t, args, "24")
}

func TestCleanupFramesRemovesOnlySequenceFiles(t *testing.T) {
	dir := t.TempDir()
	writeFrames(t, dir, 3)
	keep := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(keep, []byte("keep me"), 0o644))

	a := NewAssembler(WithFramesDir(dir))
	removed, err := a.CleanupFrames()
	require.NoError(t, err)
	assert.Equal(t, 3, removed)
	assert.Empty(t, frameFiles(t, dir))
	_, err = os.Stat(keep)
	assert.NoError(t, err)
}

func TestAssemblePreservesFramesOnEncoderFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test encoder stub requires a POSIX false binary")
	}
	dir := t.TempDir()
	writeFrames(t, dir, 4)

	a := NewAssembler(WithEncoderPath("false"), WithFramesDir(dir), WithOutputFile(filepath.Join(dir, "out.mp4")))
	err := a.Assemble(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncoderFailed)
	assert.Len(t, frameFiles(t, dir), 4)
}

func TestAssembleRemovesFramesOnEncoderSuccess(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("test encoder stub requires a POSIX true binary")
	}
	dir := t.TempDir()
	writeFrames(t, dir, 4)

	a := NewAssembler(WithEncoderPath("true"), WithFramesDir(dir), WithOutputFile(filepath.Join(dir, "out.mp4")))
	require.NoError(t, a.Assemble(context.Background()))
	assert.Empty(t, frameFiles(t, dir))
}

func TestRunReportsMissingEncoder(t *testing.T) {
	a := NewAssembler(WithEncoderPath(filepath.Join(t.TempDir(), "no-such-encoder")))
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEncoderFailed)
}
