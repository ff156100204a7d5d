// Package compiledb defines the JSON Compilation Database records and the
// writer that serializes them in the array-of-objects shape consumed by
// clang tooling and static analyzers.
package compiledb

import "strings"

// Record describes how one translation unit was compiled.
type Record struct {
	// Directory is the working directory to assume when interpreting any
	// remaining relative paths in Arguments or File. Constant for a run.
	Directory string `json:"directory"`
	// Arguments holds the synthetic compiler-identity token first, followed
	// by the retained -I/-D flags in their original order.
	Arguments []string `json:"arguments"`
	// File is the compiled source, relative to the stripped project root
	// when that component was present in the discovered path.
	File string `json:"file"`
}

// CompilerFor returns the synthetic compiler-identity token for a source
// path: "gcc" for C sources, "g++" for everything else.
func CompilerFor(source string) string {
	if strings.HasSuffix(source, ".c") {
		return "gcc"
	}
	return "g++"
}
