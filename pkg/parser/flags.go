package parser

import (
	"strings"

	"github.com/liuyu80/buildLog2CompileCommands/pkg/relpath"
)

// normalizeFlags walks the tokens strictly before the output marker and
// keeps only the flags that affect semantic analysis: -I include paths
// (rewritten relative to the project root) and -D macro definitions. Both
// the fused form (-Iinc) and the split form (-I inc) normalize to one fused
// token. Everything else (-O2, -std=, -fpic, -g, -shared, the compile-only
// flag itself) is dropped. Emitted order follows the original invocation.
func normalizeFlags(args []string, source, projectRoot string) []string {
	var flags []string

	for i, arg := range args {
		if arg == source {
			continue
		}

		switch {
		case strings.HasPrefix(arg, "-I"):
			value := arg[2:]
			if value == "" && i+1 < len(args) {
				value = args[i+1]
			}
			if value == "" {
				continue
			}
			flags = append(flags, "-I"+relpath.Strip(value, projectRoot))

		case strings.HasPrefix(arg, "-D"):
			if arg == "-D" {
				if i+1 < len(args) {
					flags = append(flags, arg+args[i+1])
				}
				continue
			}
			// Macro values are not paths; emit unchanged.
			flags = append(flags, arg)
		}
	}

	return flags
}
