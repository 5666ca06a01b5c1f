// Package review turns guideline directories and the files to review into
// a compiled review prompt.
//
// The pipeline runs in a fixed order: the input files are checked, the
// guideline directories are scanned for .m6r files, the fixed review
// document is assembled with one Include line per guideline and one Embed
// line per input, and the document is handed to a [Compiler]. Every
// failure is returned as a diag error carrying its exit classification.
package review
