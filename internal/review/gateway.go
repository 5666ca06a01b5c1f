package review

import (
	"errors"
	"io/fs"

	"github.com/dshills/code-review/internal/diag"
	"github.com/dshills/code-review/internal/metaphor"
)

// RootName is the document name the assembled review document is compiled
// under.
const RootName = "<root>"

// Compiler compiles a Metaphor document into prompt text. Files the
// document includes are looked up in searchPaths.
type Compiler interface {
	Compile(text, name string, searchPaths []string) ([]byte, error)
}

// Gateway runs the assembled document through a Compiler and classifies
// its failures.
type Gateway struct {
	compiler Compiler
}

// NewGateway returns a Gateway that uses c.
func NewGateway(c Compiler) *Gateway {
	return &Gateway{compiler: c}
}

// Compile compiles doc once. Every syntax error is a format error, including
// an Include: that cannot be resolved or read. Only an embedded file that
// cannot be opened is an input error.
func (g *Gateway) Compile(doc Document, searchPaths []string) ([]byte, error) {
	artifact, err := g.compiler.Compile(doc.Text, RootName, searchPaths)
	if err == nil {
		return artifact, nil
	}

	var perr *metaphor.ParseError
	if errors.As(err, &perr) && len(perr.Errors) > 0 {
		list := make(diag.List, 0, len(perr.Errors))
		for _, se := range perr.Errors {
			list = append(list, fromSyntaxError(se))
		}
		return nil, list
	}
	return nil, diag.New(diag.KindFormat, "document compilation failed", "", err)
}

func fromSyntaxError(se *metaphor.SyntaxError) *diag.Error {
	kind := diag.KindFormat
	if se.Embed && (errors.Is(se.Err, fs.ErrNotExist) || errors.Is(se.Err, fs.ErrPermission)) {
		kind = diag.KindInputOpen
	}
	return &diag.Error{
		Kind:    kind,
		Message: se.Message,
		Path:    se.Filename,
		Line:    se.Line,
		Column:  se.Column,
		Source:  se.Text,
		Err:     se.Err,
	}
}
