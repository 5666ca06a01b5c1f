// Package metaphor compiles Metaphor documents into rendered prompt text.
//
// A Metaphor document is an indentation-structured outline of Role, Context
// and Action blocks. Blocks nest by exactly one indent unit (four spaces).
// Include: pulls another Metaphor file into the enclosing block and Embed:
// inlines the contents of source files as fenced text.
//
//	Role:
//	    You are an expert software reviewer.
//	Context: Review guidelines
//	    Include: /path/to/go.m6r
//	Action: Review code
//	    Embed: main.go
//
// [Parse] builds the syntax tree and collects every syntax error it can
// find into a [*ParseError]. [Render] writes the tree back out with
// normalized indentation. [Compiler] combines the two.
package metaphor
