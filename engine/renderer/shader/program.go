package shader

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// program is the implementation of the Program interface.
type program struct {
	handle   uint32
	released bool
}

// Program is a linked, drawable vertex+fragment shader pairing.
type Program interface {
	// Handle returns the OpenGL program object name, or 0 after release.
	//
	// Returns:
	//   - uint32: the GL program object name
	Handle() uint32

	// Bind makes this program the active program for subsequent draw calls.
	Bind()

	// Release deletes the underlying GL program object.
	// Safe to call multiple times; subsequent calls are no-ops.
	Release()
}

var _ Program = &program{}

// Link links a compiled vertex and fragment shader into a drawable program.
// Invalid inputs (nil, already released, or stage mismatch) fail before any
// backend call. On link failure the partially created program object is
// deleted and the error carries the linker's full info log. On success both
// input shaders are detached, released, and no longer independently usable.
//
// Requires a current OpenGL context on the calling thread.
//
// Parameters:
//   - vertex: the compiled vertex shader
//   - fragment: the compiled fragment shader
//
// Returns:
//   - Program: the linked program, nil on failure
//   - error: error carrying the linker diagnostics on failure
func Link(vertex, fragment Shader) (Program, error) {
	if err := validateLinkInput(vertex, StageVertex); err != nil {
		return nil, err
	}
	if err := validateLinkInput(fragment, StageFragment); err != nil {
		return nil, err
	}

	handle := gl.CreateProgram()
	if handle == 0 {
		return nil, fmt.Errorf("failed to create shader program object")
	}

	gl.AttachShader(handle, vertex.Handle())
	gl.AttachShader(handle, fragment.Handle())
	gl.LinkProgram(handle)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		infoLog := programInfoLog(handle)
		gl.DeleteProgram(handle)
		return nil, fmt.Errorf("error linking shader program:\n%s", infoLog)
	}

	// The stages are baked into the program; the standalone shader objects
	// are no longer needed.
	gl.DetachShader(handle, vertex.Handle())
	gl.DetachShader(handle, fragment.Handle())
	vertex.Release()
	fragment.Release()

	return &program{handle: handle}, nil
}

// validateLinkInput rejects link inputs that cannot possibly link, without
// touching the backend.
func validateLinkInput(s Shader, want Stage) error {
	if s == nil {
		return fmt.Errorf("missing %s shader for program creation", want)
	}
	if s.Released() {
		return fmt.Errorf("%s shader has already been released", want)
	}
	if s.Stage() != want {
		return fmt.Errorf("expected a %s shader, got a %s shader", want, s.Stage())
	}
	return nil
}

func (p *program) Handle() uint32 {
	return p.handle
}

func (p *program) Bind() {
	gl.UseProgram(p.handle)
}

func (p *program) Release() {
	if p.released {
		return
	}
	gl.DeleteProgram(p.handle)
	p.handle = 0
	p.released = true
}

// programInfoLog fetches the complete info log for a program object.
// Sized from INFO_LOG_LENGTH, same as shaderInfoLog.
func programInfoLog(handle uint32) string {
	var logLength int32
	gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return "(no info log available)"
	}
	buf := make([]byte, logLength+1)
	gl.GetProgramInfoLog(handle, logLength, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}
