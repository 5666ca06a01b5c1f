package metaphor

import (
	"path/filepath"
	"strings"
)

// fenceLanguages maps file extensions to code fence info strings.
var fenceLanguages = map[string]string{
	".go":    "go",
	".py":    "python",
	".js":    "javascript",
	".ts":    "typescript",
	".tsx":   "tsx",
	".jsx":   "jsx",
	".rs":    "rust",
	".java":  "java",
	".rb":    "ruby",
	".cpp":   "cpp",
	".cc":    "cpp",
	".hpp":   "cpp",
	".c":     "c",
	".h":     "c",
	".cs":    "csharp",
	".php":   "php",
	".swift": "swift",
	".kt":    "kotlin",
	".sql":   "sql",
	".sh":    "bash",
	".yaml":  "yaml",
	".yml":   "yaml",
	".json":  "json",
	".tf":    "hcl",
	".html":  "html",
	".css":   "css",
	".md":    "markdown",
	".m6r":   "metaphor",
}

func fenceLanguage(name string) string {
	if lang, ok := fenceLanguages[strings.ToLower(filepath.Ext(name))]; ok {
		return lang
	}
	return "plaintext"
}

// embedLines renders a file as the text lines of a fenced block.
func embedLines(name string, data []byte) []string {
	lines := []string{
		"File: " + name,
		"```" + fenceLanguage(name),
	}

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text != "" {
		lines = append(lines, strings.Split(text, "\n")...)
	}

	return append(lines, "```")
}
