package review

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dshills/code-review/internal/diag"
)

// GuidelineExt is the file extension that marks a guideline file.
const GuidelineExt = ".m6r"

// DiscoverGuidelines lists the guideline files in dirs. Directories are
// scanned in the order given and are not descended into; files within one
// directory are sorted by name. A file reachable from more than one
// directory is reported once, at its first position.
func DiscoverGuidelines(dirs []string) ([]GuidelineFile, error) {
	seen := make(map[string]bool)
	var found []GuidelineFile

	for _, dir := range dirs {
		names, err := guidelineNames(dir)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			path, err := filepath.Abs(filepath.Join(dir, name))
			if err != nil {
				return nil, diag.New(diag.KindUsage, "invalid guideline path", filepath.Join(dir, name), err)
			}
			if seen[path] {
				continue
			}
			seen[path] = true
			found = append(found, GuidelineFile{Path: path, Dir: dir})
		}
		slog.Debug("scanned guideline directory", "dir", dir, "files", len(names))
	}

	if len(found) == 0 {
		return nil, diag.Usagef("no %s guideline files found in the search path", GuidelineExt)
	}
	return found, nil
}

// guidelineNames returns the sorted names of the guideline files directly
// inside dir.
func guidelineNames(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, diag.New(diag.KindUsage, "invalid guideline directory", dir, err)
	}
	if !info.IsDir() {
		return nil, diag.New(diag.KindUsage, "guideline path is not a directory", dir, nil)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, diag.New(diag.KindUsage, "cannot read guideline directory", dir, err)
	}

	var names []string
	for _, e := range entries {
		if !strings.HasSuffix(e.Name(), GuidelineExt) {
			continue
		}
		if isDir(dir, e) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// isDir reports whether the entry is a directory, following symlinks.
func isDir(dir string, e os.DirEntry) bool {
	if e.IsDir() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.IsDir()
}
