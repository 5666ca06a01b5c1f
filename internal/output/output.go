package output

import (
	"io"
	"log/slog"
	"os"

	"github.com/dshills/code-review/internal/diag"
)

// WriteArtifact writes artifact to outPath, or to stdout when outPath is
// empty.
func WriteArtifact(stdout io.Writer, artifact []byte, outPath string) error {
	if outPath == "" {
		if _, err := stdout.Write(artifact); err != nil {
			return diag.New(diag.KindOutputWrite, "cannot write output", "<stdout>", err)
		}
		return nil
	}

	f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return diag.New(diag.KindOutputWrite, "cannot create output file", outPath, err)
	}
	if _, err := f.Write(artifact); err != nil {
		f.Close()
		return diag.New(diag.KindOutputWrite, "cannot write output file", outPath, err)
	}
	if err := f.Close(); err != nil {
		return diag.New(diag.KindOutputWrite, "cannot write output file", outPath, err)
	}

	slog.Debug("wrote review prompt", "path", outPath, "bytes", len(artifact))
	return nil
}
