package shader

import (
	"fmt"
	"os"
)

// LoadSource reads GLSL source text from a file.
// An unreadable or empty file is an error; the source is otherwise returned
// verbatim for Compile.
//
// Parameters:
//   - path: filesystem path of the shader source file
//
// Returns:
//   - string: the source text
//   - error: error if the file cannot be read or contains nothing
func LoadSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("unable to open shader file %q: %w", path, err)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("shader file %q is empty", path)
	}
	return string(data), nil
}
