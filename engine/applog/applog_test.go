package applog

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenTruncatesAndWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shaderapp_logs.log")
	require.NoError(t, os.WriteFile(path, []byte("stale contents\n"), 0o644))

	lg, err := Open(path)
	require.NoError(t, err)
	lg.Printf("window size: %dx%d", 640, 480)
	require.NoError(t, lg.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "stale contents")
	assert.Contains(t, string(data), "window size: 640x480")
}

func TestOpenFailsOnBadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "dir", "app.log"))
	require.Error(t, err)
}

func TestCloseIsIdempotentWithoutFile(t *testing.T) {
	var buf bytes.Buffer
	lg := New(&buf)
	lg.Println("starting render loop")
	require.NoError(t, lg.Close())
	require.NoError(t, lg.Close())
	assert.Contains(t, buf.String(), "starting render loop")
}
