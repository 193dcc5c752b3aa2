package profiler

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Carmen-Shannon/shadercast/engine/applog"
)

func TestTickLogsAfterInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(applog.New(&buf))
	p.SetUpdateInterval(time.Millisecond)

	assert.False(t, p.Tick())
	time.Sleep(5 * time.Millisecond)
	assert.True(t, p.Tick())
	assert.Contains(t, buf.String(), "[Profiler] FPS:")
}

func TestTickStaysQuietWithinInterval(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(applog.New(&buf))

	for i := 0; i < 10; i++ {
		assert.False(t, p.Tick())
	}
	assert.Empty(t, buf.String())
}
