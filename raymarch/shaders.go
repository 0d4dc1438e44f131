package raymarch

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
)

//go:embed vertex.wgsl
var vertexShaderSource string

//go:embed fragment.wgsl
var fragmentShaderSource string

const (
	vertexEntryPoint   = "vs_main"
	fragmentEntryPoint = "fs_main"
)

var ErrInvalidShader = errors.New("invalid shader")

// Shaders holds the wgsl source of the vertex and the fragment stage.
type Shaders struct {
	Vertex   string
	Fragment string
}

// DefaultShaders returns the shaders embedded into the binary.
func DefaultShaders() Shaders {
	shaders := Shaders{
		Vertex:   vertexShaderSource,
		Fragment: fragmentShaderSource,
	}

	Handle(shaders.Validate(), "embedded shaders")

	return shaders
}

// LoadShaders replaces the default shader sources with the content of the
// given files. An empty path keeps the embedded source for that stage.
func LoadShaders(vertexPath, fragmentPath string) (Shaders, error) {
	shaders := DefaultShaders()

	if vertexPath != "" {
		code, err := os.ReadFile(vertexPath)
		if err != nil {
			return Shaders{}, fmt.Errorf("read vertex shader: %w", err)
		}

		shaders.Vertex = string(code)
	}

	if fragmentPath != "" {
		code, err := os.ReadFile(fragmentPath)
		if err != nil {
			return Shaders{}, fmt.Errorf("read fragment shader: %w", err)
		}

		shaders.Fragment = string(code)
	}

	return shaders, nil
}

// Validate performs a cheap structural check of both sources. It catches
// sources that can never compile before any gpu resource is created. The
// gpu shader compiler still has the final word.
func (s Shaders) Validate() error {
	if err := validateStage("vertex", s.Vertex, "@vertex", "fn "+vertexEntryPoint); err != nil {
		return err
	}

	if err := validateStage("fragment", s.Fragment, "@fragment", "fn "+fragmentEntryPoint, "var<uniform>"); err != nil {
		return err
	}

	return nil
}

func validateStage(stage, source string, required ...string) error {
	if strings.TrimSpace(source) == "" {
		return fmt.Errorf("%w: %s source is empty", ErrInvalidShader, stage)
	}

	for _, token := range required {
		if !strings.Contains(source, token) {
			return fmt.Errorf("%w: %s source is missing %q", ErrInvalidShader, stage, token)
		}
	}

	if err := checkBrackets(source); err != nil {
		return fmt.Errorf("%w: %s source: %w", ErrInvalidShader, stage, err)
	}

	return nil
}

func checkBrackets(source string) error {
	closing := map[rune]rune{')': '(', ']': '[', '}': '{'}

	var stack []rune
	line := 1

	for _, ch := range stripComments(source) {
		switch ch {
		case '\n':
			line++

		case '(', '[', '{':
			stack = append(stack, ch)

		case ')', ']', '}':
			if len(stack) == 0 || stack[len(stack)-1] != closing[ch] {
				return fmt.Errorf("unexpected %q in line %d", ch, line)
			}

			stack = stack[:len(stack)-1]
		}
	}

	if len(stack) > 0 {
		return fmt.Errorf("unclosed %q at end of source", stack[len(stack)-1])
	}

	return nil
}

// stripComments replaces line and block comments with spaces, keeping
// newlines so line numbers stay intact.
func stripComments(source string) string {
	var sb strings.Builder
	sb.Grow(len(source))

	depth := 0
	lineComment := false

	for idx := 0; idx < len(source); idx++ {
		ch := source[idx]

		var next byte
		if idx+1 < len(source) {
			next = source[idx+1]
		}

		switch {
		case lineComment:
			if ch == '\n' {
				lineComment = false
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}

		case ch == '/' && next == '*':
			depth++
			idx++
			sb.WriteString("  ")

		case depth > 0 && ch == '*' && next == '/':
			depth--
			idx++
			sb.WriteString("  ")

		case depth > 0:
			if ch == '\n' {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}

		case ch == '/' && next == '/':
			lineComment = true
			idx++
			sb.WriteString("  ")

		default:
			sb.WriteByte(ch)
		}
	}

	return sb.String()
}
