package diag

import (
	"fmt"
	"io"
	"strings"
)

const rule = "----------------"

// Write formats err for the error stream. Diagnostics with a source
// position are framed with a caret pointing at the column; everything else
// is written as a single "Error:" line.
func Write(w io.Writer, err error) error {
	ew := &errWriter{w: w}

	diags := entries(err)
	if diags == nil {
		ew.printf("Error: %v\n", err)
		return ew.err
	}

	framed := false
	for _, d := range diags {
		if d.Line == 0 {
			ew.printf("Error: %s\n", d.Error())
			continue
		}
		writeFramed(ew, d)
		framed = true
	}
	if framed {
		ew.println(rule)
	}
	return ew.err
}

func writeFramed(ew *errWriter, d *Error) {
	ew.println(rule)
	ew.printf("%s: line %d", d.Message, d.Line)
	if d.Column > 0 {
		ew.printf(", column %d", d.Column)
	}
	if d.Path != "" {
		ew.printf(", file %s", d.Path)
	}
	ew.println("")
	if d.Column > 0 {
		caret := strings.Repeat(" ", d.Column-1)
		ew.printf("%s|\n%sv\n", caret, caret)
	}
	if d.Source != "" {
		ew.println(d.Source)
	}
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

func (ew *errWriter) println(s string) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintln(ew.w, s)
}
