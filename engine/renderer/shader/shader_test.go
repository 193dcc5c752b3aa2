package shader

// These tests cover the paths that must reject bad input before any OpenGL
// call is made, so they run without a context. Compile and link success
// paths require a live driver and are exercised by the demo itself.

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageString(t *testing.T) {
	assert.Equal(t, "vertex", StageVertex.String())
	assert.Equal(t, "fragment", StageFragment.String())
	assert.Equal(t, "unknown", Stage(99).String())
}

func TestCompileRejectsEmptySource(t *testing.T) {
	for _, src := range []string{"", "   ", "\n\t\n"} {
		_, err := Compile(StageVertex, src)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "vertex shader source is empty")
	}
}

func TestLoadSource(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "vert.glsl")
	require.NoError(t, os.WriteFile(path, []byte("#version 410 core\n"), 0o644))
	src, err := LoadSource(path)
	require.NoError(t, err)
	assert.Equal(t, "#version 410 core\n", src)

	_, err = LoadSource(filepath.Join(dir, "missing.glsl"))
	require.Error(t, err)

	empty := filepath.Join(dir, "empty.glsl")
	require.NoError(t, os.WriteFile(empty, nil, 0o644))
	_, err = LoadSource(empty)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is empty")
}
