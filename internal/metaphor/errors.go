package metaphor

import (
	"fmt"
	"strings"
)

// SyntaxError describes one problem found while parsing. Err holds the
// underlying I/O error when the problem is a file that could not be read.
// Embed is set when the problem is an Embed: reference, as opposed to an
// Include: or the document text itself.
type SyntaxError struct {
	Message  string
	Filename string
	Line     int
	Column   int
	Text     string
	Err      error
	Embed    bool
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: file %s", e.Message, e.Filename)
	}
	return fmt.Sprintf("%s: line %d, column %d, file %s", e.Message, e.Line, e.Column, e.Filename)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// ParseError is returned by [Parse] when a document has one or more syntax
// errors.
type ParseError struct {
	Errors []*SyntaxError
}

func (e *ParseError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, se := range e.Errors {
		msgs = append(msgs, se.Error())
	}
	return strings.Join(msgs, "\n")
}

func (e *ParseError) Unwrap() []error {
	errs := make([]error, 0, len(e.Errors))
	for _, se := range e.Errors {
		errs = append(errs, se)
	}
	return errs
}
