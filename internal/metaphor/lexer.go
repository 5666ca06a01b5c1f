package metaphor

import (
	"strings"
)

const indentSize = 4

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenRole
	tokenContext
	tokenAction
	tokenInclude
	tokenEmbed
)

var keywords = map[string]tokenKind{
	"Role:":    tokenRole,
	"Context:": tokenContext,
	"Action:":  tokenAction,
	"Include:": tokenInclude,
	"Embed:":   tokenEmbed,
}

func (k tokenKind) String() string {
	switch k {
	case tokenRole:
		return "Role"
	case tokenContext:
		return "Context"
	case tokenAction:
		return "Action"
	case tokenInclude:
		return "Include"
	case tokenEmbed:
		return "Embed"
	default:
		return "text"
	}
}

// token is one non-blank source line.
type token struct {
	kind   tokenKind
	value  string
	indent int // leading spaces
	line   int
	source string
}

func (t token) column() int {
	return t.indent + 1
}

// lex splits text into line tokens. Lines that cannot be tokenized are
// reported and dropped so that parsing can continue.
func lex(filename, text string) ([]token, []*SyntaxError) {
	var (
		tokens []token
		errs   []*SyntaxError
	)

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSuffix(raw, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := 0
		for line[indent] == ' ' {
			indent++
		}
		if line[indent] == '\t' {
			errs = append(errs, &SyntaxError{
				Message:  "Tab character used for indentation",
				Filename: filename,
				Line:     i + 1,
				Column:   indent + 1,
				Text:     line,
			})
			continue
		}

		content := strings.TrimRight(line[indent:], " \t")
		tok := token{
			kind:   tokenText,
			value:  content,
			indent: indent,
			line:   i + 1,
			source: line,
		}
		word, rest := splitWord(content)
		if kind, ok := keywords[word]; ok {
			tok.kind = kind
			tok.value = strings.TrimSpace(rest)
		}
		tokens = append(tokens, tok)
	}

	return tokens, errs
}

func splitWord(s string) (word, rest string) {
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}
