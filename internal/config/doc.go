// Package config resolves the code-review run configuration.
//
// Guideline directories are merged from, in order:
//  1. -g/--guideline-dir flags
//  2. CODE_REVIEW_GUIDELINE_PATH (platform path-list separated)
//  3. guideline-dirs in the config file ($XDG_CONFIG_HOME/code-review/config.yaml)
//  4. the working directory, when none of the above supply any
//
// [Resolve] is pure: it takes every source as an explicit value. [Load]
// performs the ambient reads (environment, config file, working directory)
// and then calls [Resolve].
package config
