package metaphor

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func parseErrors(t *testing.T, err error) []*SyntaxError {
	t.Helper()
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	return pe.Errors
}

func texts(n *Node) []string {
	var out []string
	for _, c := range n.Children {
		if c.Type == NodeText {
			out = append(out, c.Value)
		}
	}
	return out
}

func TestParse_Blocks(t *testing.T) {
	text := "Role:\n" +
		"    You review code.\n" +
		"Context: Background\n" +
		"    Some facts.\n" +
		"    Context: Detail\n" +
		"        More facts.\n" +
		"Action: Review\n" +
		"    Do it.\n"

	root, err := Parse(text, "<root>", nil)
	require.NoError(t, err)
	require.Len(t, root.Children, 3)

	role := root.Child(NodeRole)
	require.NotNil(t, role)
	assert.Equal(t, "", role.Value)
	assert.Equal(t, []string{"You review code."}, texts(role))

	ctx := root.Child(NodeContext)
	require.NotNil(t, ctx)
	assert.Equal(t, "Background", ctx.Value)
	assert.Equal(t, []string{"Some facts."}, texts(ctx))
	inner := ctx.Child(NodeContext)
	require.NotNil(t, inner)
	assert.Equal(t, "Detail", inner.Value)
	assert.Equal(t, []string{"More facts."}, texts(inner))

	action := root.Child(NodeAction)
	require.NotNil(t, action)
	assert.Equal(t, "Review", action.Value)
	assert.Equal(t, []string{"Do it."}, texts(action))
}

func TestParse_TextContinuationKeepsIndent(t *testing.T) {
	text := "Action:\n" +
		"    first\n" +
		"        second\n" +
		"      third\n"

	root, err := Parse(text, "<root>", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "    second", "  third"}, texts(root.Child(NodeAction)))
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		message string
		line    int
		column  int
	}{
		{"bad indentation", "Action:\n  two\n", "Bad indentation", 2, 3},
		{"unexpected indentation", "Action:\n        deep\n", "Unexpected indentation", 2, 9},
		{"tab", "Action:\n\tdo\n", "Tab character used for indentation", 2, 1},
		{"duplicate action", "Action: a\nAction: b\n", "Duplicate 'Action' block", 2, 1},
		{"duplicate role", "Role:\n    x\nRole:\n    y\nAction:\n", "Duplicate 'Role' block", 3, 1},
		{"context in action", "Action:\n    Context: x\n", "'Context' is not allowed in 'Action' blocks", 2, 5},
		{"role in context", "Context:\n    Role:\nAction:\n", "'Role' is not allowed in 'Context' blocks", 2, 5},
		{"text at top level", "hello\nAction:\n", "Unexpected text outside of a block", 1, 1},
		{"embed at top level", "Embed: x.go\nAction:\n", "'Embed' must be inside a block", 1, 1},
		{"include without name", "Action:\n    Include:\n", "Expected file name after 'Include:'", 2, 5},
		{"embed without name", "Action:\n    Embed:   \n", "Expected file name after 'Embed:'", 2, 5},
		{"indented keyword", "Action:\n    text\n  Context: x\n", "Bad indentation", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text, "<root>", nil)
			errs := parseErrors(t, err)
			require.NotEmpty(t, errs)

			assert.Equal(t, tt.message, errs[0].Message)
			assert.Equal(t, "<root>", errs[0].Filename)
			assert.Equal(t, tt.line, errs[0].Line)
			assert.Equal(t, tt.column, errs[0].Column)
		})
	}
}

func TestParse_NoAction(t *testing.T) {
	_, err := Parse("Role:\n    x\n", "<root>", nil)
	errs := parseErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "No 'Action' block found", errs[0].Message)
	assert.Equal(t, 0, errs[0].Line)
}

func TestParse_CollectsAllErrors(t *testing.T) {
	text := "Action:\n" +
		"\tone\n" +
		"    fine\n" +
		"  two\n"

	_, err := Parse(text, "<root>", nil)
	errs := parseErrors(t, err)
	require.Len(t, errs, 2)
	assert.Equal(t, 2, errs[0].Line)
	assert.Equal(t, 4, errs[1].Line)
}

func TestParse_IncludeFromSearchPath(t *testing.T) {
	guides := t.TempDir()
	writeFile(t, guides, "go.m6r", "Context: Go\n    Prefer small functions.\n")

	text := "Context: Review guidelines\n" +
		"    Include: go.m6r\n" +
		"Action: Review\n"

	root, err := Parse(text, "<root>", []string{guides})
	require.NoError(t, err)

	ctx := root.Child(NodeContext)
	require.NotNil(t, ctx)
	goCtx := ctx.Child(NodeContext)
	require.NotNil(t, goCtx)
	assert.Equal(t, "Go", goCtx.Value)
	assert.Equal(t, []string{"Prefer small functions."}, texts(goCtx))
}

func TestParse_IncludeRelativeToIncludingFile(t *testing.T) {
	guides := t.TempDir()
	writeFile(t, guides, "common.m6r", "Shared rule.\n")
	main := writeFile(t, guides, "main.m6r", "Context: Main\n    Include: common.m6r\n")

	text := "Context: Review guidelines\n" +
		"    Include: " + main + "\n" +
		"Action: Review\n"

	root, err := Parse(text, "<root>", nil)
	require.NoError(t, err)
	mainCtx := root.Child(NodeContext).Child(NodeContext)
	require.NotNil(t, mainCtx)
	assert.Equal(t, []string{"Shared rule."}, texts(mainCtx))
}

func TestParse_IncludeErrorsReportIncludedFile(t *testing.T) {
	guides := t.TempDir()
	path := writeFile(t, guides, "bad.m6r", "Context: Bad\n   misaligned\n")

	text := "Context: Review guidelines\n" +
		"    Include: " + path + "\n" +
		"Action: Review\n"

	_, err := Parse(text, "<root>", nil)
	errs := parseErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "Bad indentation", errs[0].Message)
	assert.Equal(t, path, errs[0].Filename)
	assert.Equal(t, 2, errs[0].Line)
	assert.Equal(t, 4, errs[0].Column)
}

func TestParse_IncludeMissing(t *testing.T) {
	text := "Context: Review guidelines\n" +
		"    Include: nope.m6r\n" +
		"Action: Review\n"

	_, err := Parse(text, "<root>", []string{t.TempDir()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	errs := parseErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "File not found: nope.m6r", errs[0].Message)
	assert.Equal(t, 2, errs[0].Line)
	assert.Equal(t, 5, errs[0].Column)
	assert.False(t, errs[0].Embed)
}

func TestParse_RecursiveInclude(t *testing.T) {
	guides := t.TempDir()
	path := writeFile(t, guides, "loop.m6r", "Context: Loop\n    Include: loop.m6r\n")

	text := "Context: Review guidelines\n" +
		"    Include: " + path + "\n" +
		"Action: Review\n"

	_, err := Parse(text, "<root>", nil)
	errs := parseErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "Recursive include of loop.m6r", errs[0].Message)
	assert.Equal(t, path, errs[0].Filename)
}

func TestParse_IncludedKindMustFitBlock(t *testing.T) {
	guides := t.TempDir()
	path := writeFile(t, guides, "act.m6r", "Action: Sneaky\n")

	text := "Context: Review guidelines\n" +
		"    Include: " + path + "\n" +
		"Action: Review\n"

	_, err := Parse(text, "<root>", nil)
	errs := parseErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "'Action' is not allowed in 'Context' blocks", errs[0].Message)
	assert.Equal(t, path, errs[0].Filename)
	assert.Equal(t, 1, errs[0].Line)
}

func TestParse_Embed(t *testing.T) {
	src := t.TempDir()
	path := writeFile(t, src, "main.go", "package main\r\n\r\nfunc main() {}\r\n")

	root, err := Parse("Action: Review\n    Embed: "+path+"\n", "<root>", nil)
	require.NoError(t, err)

	want := []string{
		"File: " + path,
		"```go",
		"package main",
		"",
		"func main() {}",
		"```",
	}
	assert.Equal(t, want, texts(root.Child(NodeAction)))
}

func TestParse_EmbedGlob(t *testing.T) {
	src := t.TempDir()
	b := writeFile(t, src, "b.py", "print('b')\n")
	a := writeFile(t, src, "a.py", "print('a')\n")
	writeFile(t, src, "notes.txt", "skip\n")

	root, err := Parse("Action: Review\n    Embed: "+filepath.Join(src, "*.py")+"\n", "<root>", nil)
	require.NoError(t, err)

	want := []string{
		"File: " + a, "```python", "print('a')", "```",
		"File: " + b, "```python", "print('b')", "```",
	}
	assert.Equal(t, want, texts(root.Child(NodeAction)))
}

func TestParse_EmbedMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "gone.go")

	_, err := Parse("Action: Review\n    Embed: "+missing+"\n", "<root>", nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	errs := parseErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "File not found: "+missing, errs[0].Message)
	assert.True(t, errs[0].Embed)
}

func TestParse_EmbedBadPattern(t *testing.T) {
	_, err := Parse("Action: Review\n    Embed: [\n", "<root>", nil)
	errs := parseErrors(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "Bad file pattern: [", errs[0].Message)
	assert.True(t, errors.Is(err, filepath.ErrBadPattern))
	assert.False(t, errors.Is(err, fs.ErrNotExist))
}

func TestFenceLanguage(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"main.go", "go"},
		{"app.PY", "python"},
		{"index.tsx", "tsx"},
		{"guide.m6r", "metaphor"},
		{"README", "plaintext"},
		{"data.xyz", "plaintext"},
	}
	for _, tt := range tests {
		if got := fenceLanguage(tt.name); got != tt.want {
			t.Errorf("fenceLanguage(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}
