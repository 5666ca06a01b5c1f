package metaphor

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// parser consumes the tokens of one file. Included files get their own
// parser that shares the error list and appends into the including block.
type parser struct {
	filename    string
	dir         string
	tokens      []token
	pos         int
	searchPaths []string
	chain       []string // absolute paths of the files being included
	errs        *[]*SyntaxError
}

func newParser(filename, dir, text string, searchPaths, chain []string, errs *[]*SyntaxError) *parser {
	tokens, lexErrs := lex(filename, text)
	*errs = append(*errs, lexErrs...)
	return &parser{
		filename:    filename,
		dir:         dir,
		tokens:      tokens,
		searchPaths: searchPaths,
		chain:       chain,
		errs:        errs,
	}
}

// Parse parses a root document. Relative Include: and Embed: references in
// the root are resolved against the working directory first, then against
// each search path in order; references inside an included file are
// resolved against that file's directory first.
func Parse(text, filename string, searchPaths []string) (*Node, error) {
	var errs []*SyntaxError
	p := newParser(filename, "", text, searchPaths, nil, &errs)

	root := &Node{Type: NodeRoot}
	p.parseBody(root, 0)

	if len(errs) == 0 && root.Child(NodeAction) == nil {
		errs = append(errs, &SyntaxError{Message: "No 'Action' block found", Filename: filename})
	}
	if len(errs) > 0 {
		return nil, &ParseError{Errors: errs}
	}
	return root, nil
}

// parseBody appends the items indented exactly indent spaces to parent and
// returns at the first line indented less.
func (p *parser) parseBody(parent *Node, indent int) {
	afterText := false

	for p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		if tok.indent < indent {
			return
		}

		if tok.indent > indent {
			// Deeper text continues a run of text and keeps its extra indent.
			if tok.kind == tokenText && afterText {
				parent.add(&Node{Type: NodeText, Value: strings.Repeat(" ", tok.indent-indent) + tok.value})
				p.pos++
				continue
			}
			p.fail(tok, indentMessage(tok.indent-indent))
			p.skipBlock()
			continue
		}

		afterText = false
		if msg := checkAllowed(parent.Type, tok.kind); msg != "" {
			p.fail(tok, msg)
			p.skipBlock()
			continue
		}

		switch tok.kind {
		case tokenText:
			parent.add(&Node{Type: NodeText, Value: tok.value})
			afterText = true
			p.pos++
		case tokenRole, tokenContext, tokenAction:
			typ := blockType(tok.kind)
			if parent.Type == NodeRoot && parent.Child(typ) != nil {
				p.fail(tok, fmt.Sprintf("Duplicate '%s' block", typ))
				p.skipBlock()
				continue
			}
			node := &Node{Type: typ, Value: tok.value}
			parent.add(node)
			p.pos++
			p.parseBody(node, indent+indentSize)
		case tokenInclude:
			p.pos++
			p.include(parent, tok)
		case tokenEmbed:
			p.pos++
			p.embed(parent, tok)
		}
	}
}

// skipBlock drops the current token and every following line indented
// deeper than it.
func (p *parser) skipBlock() {
	start := p.tokens[p.pos].indent
	p.pos++
	for p.pos < len(p.tokens) && p.tokens[p.pos].indent > start {
		p.pos++
	}
}

func (p *parser) include(parent *Node, tok token) {
	if tok.value == "" {
		p.fail(tok, "Expected file name after 'Include:'")
		return
	}

	path, err := p.resolve(tok.value)
	if err != nil {
		p.failErr(tok, fmt.Sprintf("File not found: %s", tok.value), err)
		return
	}
	if slices.Contains(p.chain, path) {
		p.fail(tok, fmt.Sprintf("Recursive include of %s", tok.value))
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		p.failErr(tok, fmt.Sprintf("Cannot read file: %s", tok.value), err)
		return
	}
	slog.Debug("including file", "file", path, "from", p.filename, "line", tok.line)

	chain := append(slices.Clone(p.chain), path)
	sub := newParser(path, filepath.Dir(path), string(data), p.searchPaths, chain, p.errs)
	sub.parseBody(parent, 0)
}

func (p *parser) embed(parent *Node, tok token) {
	if tok.value == "" {
		p.fail(tok, "Expected file name after 'Embed:'")
		return
	}

	matches, err := p.glob(tok.value)
	if err != nil {
		p.failEmbed(tok, fmt.Sprintf("Bad file pattern: %s", tok.value), err)
		return
	}
	if len(matches) == 0 {
		p.failEmbed(tok, fmt.Sprintf("File not found: %s", tok.value), fs.ErrNotExist)
		return
	}

	for _, name := range matches {
		data, err := os.ReadFile(name)
		if err != nil {
			p.failEmbed(tok, fmt.Sprintf("Cannot read file: %s", name), err)
			continue
		}
		slog.Debug("embedding file", "file", name, "bytes", len(data))
		for _, line := range embedLines(name, data) {
			parent.add(&Node{Type: NodeText, Value: line})
		}
	}
}

// candidates lists the places a relative reference may live, in lookup order.
func (p *parser) candidates(name string) []string {
	if filepath.IsAbs(name) {
		return []string{name}
	}
	c := []string{filepath.Join(p.dir, name)}
	for _, sp := range p.searchPaths {
		c = append(c, filepath.Join(sp, name))
	}
	return c
}

func (p *parser) resolve(name string) (string, error) {
	for _, c := range p.candidates(name) {
		if isFile(c) {
			return filepath.Abs(c)
		}
	}
	return "", fmt.Errorf("%s: %w", name, fs.ErrNotExist)
}

// glob returns the files matching name at the first candidate location that
// has any. A literal path that exists wins over pattern interpretation.
func (p *parser) glob(name string) ([]string, error) {
	for _, c := range p.candidates(name) {
		if isFile(c) {
			return []string{c}, nil
		}
		matches, err := filepath.Glob(c)
		if err != nil {
			return nil, err
		}
		files := slices.DeleteFunc(matches, func(m string) bool { return !isFile(m) })
		if len(files) > 0 {
			slices.Sort(files)
			return files, nil
		}
	}
	return nil, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (p *parser) fail(tok token, msg string) {
	p.failErr(tok, msg, nil)
}

func (p *parser) failErr(tok token, msg string, err error) {
	*p.errs = append(*p.errs, p.syntaxError(tok, msg, err))
}

func (p *parser) failEmbed(tok token, msg string, err error) {
	se := p.syntaxError(tok, msg, err)
	se.Embed = true
	*p.errs = append(*p.errs, se)
}

func (p *parser) syntaxError(tok token, msg string, err error) *SyntaxError {
	return &SyntaxError{
		Message:  msg,
		Filename: p.filename,
		Line:     tok.line,
		Column:   tok.column(),
		Text:     tok.source,
		Err:      err,
	}
}

func indentMessage(extra int) string {
	if extra%indentSize != 0 {
		return "Bad indentation"
	}
	return "Unexpected indentation"
}

func blockType(k tokenKind) NodeType {
	switch k {
	case tokenRole:
		return NodeRole
	case tokenContext:
		return NodeContext
	default:
		return NodeAction
	}
}

// checkAllowed returns an error message if a token of kind k may not appear
// directly inside a block of type parent.
func checkAllowed(parent NodeType, k tokenKind) string {
	switch parent {
	case NodeRoot:
		switch k {
		case tokenRole, tokenContext, tokenAction, tokenInclude:
			return ""
		case tokenText:
			return "Unexpected text outside of a block"
		}
		return fmt.Sprintf("'%s' must be inside a block", k)
	case NodeContext:
		if k == tokenRole || k == tokenAction {
			return fmt.Sprintf("'%s' is not allowed in '%s' blocks", k, parent)
		}
	case NodeRole, NodeAction:
		if k == tokenRole || k == tokenContext || k == tokenAction {
			return fmt.Sprintf("'%s' is not allowed in '%s' blocks", k, parent)
		}
	}
	return ""
}
