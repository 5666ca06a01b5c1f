package diag

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Kind classifies a failure. Higher values take precedence when a [List]
// mixes kinds.
type Kind int

const (
	KindUsage Kind = iota + 1
	KindFormat
	KindInputOpen
	KindOutputWrite
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindFormat:
		return "format"
	case KindInputOpen:
		return "input"
	case KindOutputWrite:
		return "output"
	default:
		return "unknown"
	}
}

// Error is a single diagnostic. Line and Column are 1-based; zero means the
// position is not known.
type Error struct {
	Kind    Kind
	Message string
	Path    string
	Line    int
	Column  int
	Source  string // offending source line, when known
	Err     error
}

// New creates a diagnostic of the given kind.
func New(kind Kind, message, path string, err error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Path:    path,
		Err:     err,
	}
}

// Usagef creates a usage diagnostic with a formatted message.
func Usagef(format string, args ...any) *Error {
	return &Error{Kind: KindUsage, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if e.Path != "" {
		fmt.Fprintf(&b, ": %s", e.Path)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, ": line %d", e.Line)
		if e.Column > 0 {
			fmt.Fprintf(&b, ", column %d", e.Column)
		}
	}
	if cause := e.cause(); cause != nil {
		fmt.Fprintf(&b, " (%v)", cause)
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// cause returns the wrapped error for display. A *fs.PathError repeats the
// path we already print, so only its inner error is shown.
func (e *Error) cause() error {
	if e.Err == nil {
		return nil
	}
	var pathErr *fs.PathError
	if errors.As(e.Err, &pathErr) && pathErr.Path == e.Path {
		return pathErr.Err
	}
	return e.Err
}

// List holds the diagnostics from one failed operation, in the order they
// were found.
type List []*Error

func (l List) Error() string {
	msgs := make([]string, 0, len(l))
	for _, e := range l {
		msgs = append(msgs, e.Error())
	}
	return strings.Join(msgs, "\n")
}

func (l List) Unwrap() []error {
	errs := make([]error, 0, len(l))
	for _, e := range l {
		errs = append(errs, e)
	}
	return errs
}

// Kind returns the highest-precedence kind in the list.
func (l List) Kind() Kind {
	var k Kind
	for _, e := range l {
		k = max(k, e.Kind)
	}
	if k == 0 {
		return KindUsage
	}
	return k
}

// KindOf reports the kind of err. Errors that carry no diagnostic, such as
// flag parsing failures, are usage errors.
func KindOf(err error) Kind {
	var l List
	if errors.As(err, &l) {
		return l.Kind()
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUsage
}

// entries flattens err into the diagnostics it carries, or nil if it
// carries none.
func entries(err error) []*Error {
	var l List
	if errors.As(err, &l) {
		return l
	}
	var e *Error
	if errors.As(err, &e) {
		return []*Error{e}
	}
	return nil
}
