package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Stage identifies the pipeline stage a shader is compiled for.
type Stage int

const (
	// StageVertex is the vertex shader stage.
	StageVertex Stage = iota

	// StageFragment is the fragment shader stage.
	StageFragment
)

// String returns the lowercase stage name used in diagnostics.
func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "vertex"
	case StageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// glEnum maps the stage to the OpenGL shader type constant.
func (s Stage) glEnum() uint32 {
	switch s {
	case StageVertex:
		return gl.VERTEX_SHADER
	case StageFragment:
		return gl.FRAGMENT_SHADER
	default:
		return 0
	}
}

// shader is the implementation of the Shader interface.
// Holds the GL object name, the stage, and the source text until linked.
type shader struct {
	handle   uint32
	stage    Stage
	source   string
	released bool
}

// Shader is one compiled shader stage. The handle stays valid until Release
// is called, which happens automatically when the shader is consumed by a
// successful Link.
type Shader interface {
	// Handle returns the OpenGL shader object name, or 0 after release.
	//
	// Returns:
	//   - uint32: the GL shader object name
	Handle() uint32

	// Stage returns the pipeline stage this shader was compiled for.
	//
	// Returns:
	//   - Stage: the shader stage
	Stage() Stage

	// Source returns the GLSL source text the shader was compiled from.
	//
	// Returns:
	//   - string: the source text
	Source() string

	// Released reports whether the underlying GL object has been deleted.
	//
	// Returns:
	//   - bool: true once the shader has been released or consumed by a link
	Released() bool

	// Release deletes the underlying GL shader object.
	// Safe to call multiple times; subsequent calls are no-ops.
	Release()
}

var _ Shader = &shader{}

// Compile compiles one shader stage from GLSL source text.
// Blank source fails before any backend call. On a compile error the shader
// object is deleted and the error carries the driver's full info log.
//
// Requires a current OpenGL context on the calling thread.
//
// Parameters:
//   - stage: the pipeline stage to compile for
//   - source: the GLSL source text
//
// Returns:
//   - Shader: the compiled shader, nil on failure
//   - error: error carrying the compiler diagnostics on failure
func Compile(stage Stage, source string) (Shader, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("%s shader source is empty", stage)
	}

	handle := gl.CreateShader(stage.glEnum())
	if handle == 0 {
		return nil, fmt.Errorf("failed to create %s shader object", stage)
	}

	// go-gl requires NUL-terminated source strings.
	// Reference: https://pkg.go.dev/github.com/go-gl/gl/v4.1-core/gl#Strs
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		infoLog := shaderInfoLog(handle)
		gl.DeleteShader(handle)
		return nil, fmt.Errorf("error compiling %s shader:\n%s", stage, infoLog)
	}

	return &shader{handle: handle, stage: stage, source: source}, nil
}

func (s *shader) Handle() uint32 {
	return s.handle
}

func (s *shader) Stage() Stage {
	return s.stage
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) Released() bool {
	return s.released
}

func (s *shader) Release() {
	if s.released {
		return
	}
	gl.DeleteShader(s.handle)
	s.handle = 0
	s.released = true
}

// shaderInfoLog fetches the complete info log for a shader object.
// The buffer is sized from INFO_LOG_LENGTH so long diagnostics are never
// truncated.
func shaderInfoLog(handle uint32) string {
	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return "(no info log available)"
	}
	buf := make([]byte, logLength+1)
	gl.GetShaderInfoLog(handle, logLength, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}
