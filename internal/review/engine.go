package review

import (
	"log/slog"
	"os"

	"github.com/dshills/code-review/internal/config"
	"github.com/dshills/code-review/internal/diag"
)

// CheckInputs verifies that every input file can be opened for reading.
// The first one that cannot is reported.
func CheckInputs(paths []string) error {
	for _, p := range paths {
		if err := checkInput(p); err != nil {
			return err
		}
	}
	return nil
}

func checkInput(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return diag.New(diag.KindInputOpen, "cannot open input file", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return diag.New(diag.KindInputOpen, "cannot open input file", path, err)
	}
	if info.IsDir() {
		return diag.New(diag.KindInputOpen, "input is a directory", path, nil)
	}
	return nil
}

// Run produces the review prompt for cfg. Nothing is written; the caller
// emits the returned artifact.
func Run(cfg config.Config, compiler Compiler) ([]byte, error) {
	inputs := cfg.Inputs()
	if err := CheckInputs(inputs); err != nil {
		return nil, err
	}

	dirs := cfg.GuidelineDirs()
	guidelines, err := DiscoverGuidelines(dirs)
	if err != nil {
		return nil, err
	}
	slog.Debug("discovered guidelines", "count", len(guidelines))

	doc, err := Assemble(guidelines, inputs)
	if err != nil {
		return nil, err
	}
	slog.Debug("assembled review document", "includes", doc.Guidelines, "embeds", doc.Inputs)

	artifact, err := NewGateway(compiler).Compile(doc, dirs)
	if err != nil {
		return nil, err
	}
	slog.Debug("compiled review prompt", "bytes", len(artifact))
	return artifact, nil
}
