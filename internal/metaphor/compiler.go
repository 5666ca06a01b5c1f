package metaphor

import (
	"bytes"
)

// Compiler parses a Metaphor document and renders it to prompt text.
type Compiler struct{}

// NewCompiler returns a Compiler.
func NewCompiler() Compiler {
	return Compiler{}
}

// Compile parses text as the root document name and returns the rendered
// prompt. Parse failures are returned as a *ParseError.
func (Compiler) Compile(text, name string, searchPaths []string) ([]byte, error) {
	root, err := Parse(text, name, searchPaths)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := Render(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
