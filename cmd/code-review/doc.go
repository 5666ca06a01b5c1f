// Code-review generates an AI prompt for reviewing source files.
//
// It collects the .m6r guideline files from the guideline directories,
// builds a Metaphor review document that includes every guideline and
// embeds every input file, compiles it and writes the resulting prompt.
//
// Usage:
//
//	code-review main.go util.go                 # guidelines from the current directory
//	code-review -g ~/guidelines -g ./team *.py  # several guideline directories
//	code-review -o prompt.txt main.go           # write the prompt to a file
//
// Guideline directories may also be given in CODE_REVIEW_GUIDELINE_PATH or in
// the guideline-dirs list of $XDG_CONFIG_HOME/code-review/config.yaml.
//
// Exit codes: 0 success, 1 usage error, 2 document format error, 3 input file
// cannot be opened, 4 output cannot be written.
package main
