package parser

import (
	"strings"

	"github.com/liuyu80/buildLog2CompileCommands/pkg/catalogue"
)

// A strategy scans the tokens before the output marker, backward from the
// marker toward the start, and picks the source-file token. Strategies run
// in a fixed priority order until one succeeds.
type strategy struct {
	name string
	pick func(args []string) (string, bool)
}

// Resolver identifies the source-file token among compile arguments.
type Resolver struct {
	catalogue *catalogue.Catalogue
	strict    bool
}

// NewResolver builds a resolver backed by the given catalogue. In strict
// mode a bare .c/.cpp token with no path separator and no catalogue entry is
// rejected; the permissive default accepts it as-is.
func NewResolver(cat *catalogue.Catalogue, strict bool) *Resolver {
	return &Resolver{catalogue: cat, strict: strict}
}

// Resolve picks the source file from the tokens strictly before the output
// marker. The returned token is as it appeared in the log; Lookup-based
// substitution happens in the caller so flag filtering can still skip the
// original spelling.
func (r *Resolver) Resolve(beforeOutput []string) (string, bool) {
	for _, s := range r.strategies() {
		if tok, ok := s.pick(beforeOutput); ok {
			return tok, true
		}
	}
	return "", false
}

// Substitute maps a non-absolute source token to an absolute catalogued path
// with a matching filename. Tokens without a catalogue entry are kept as
// given.
func (r *Resolver) Substitute(tok string) string {
	if isAbsPath(tok) {
		return tok
	}
	if abs, ok := r.catalogue.Lookup(tok); ok {
		return abs
	}
	return tok
}

func (r *Resolver) strategies() []strategy {
	ss := []strategy{
		{name: "path-token", pick: pickPathToken},
		{name: "catalogued", pick: r.pickCatalogued},
	}
	if !r.strict {
		ss = append(ss, strategy{name: "bare-token", pick: pickBareToken})
	}
	return ss
}

// pickPathToken accepts the first candidate (scanning backward) that already
// looks like a path: it contains a separator or is absolute.
func pickPathToken(args []string) (string, bool) {
	for i := len(args) - 1; i >= 0; i-- {
		if !isSourceCandidate(args[i]) {
			continue
		}
		if strings.ContainsAny(args[i], `/\`) || isAbsPath(args[i]) {
			return args[i], true
		}
	}
	return "", false
}

// pickCatalogued accepts a bare filename only when the on-disk catalogue
// knows a file by that name.
func (r *Resolver) pickCatalogued(args []string) (string, bool) {
	for i := len(args) - 1; i >= 0; i-- {
		if !isSourceCandidate(args[i]) {
			continue
		}
		if _, ok := r.catalogue.Lookup(args[i]); ok {
			return args[i], true
		}
	}
	return "", false
}

// pickBareToken accepts any remaining candidate, even without a path
// separator or catalogue entry. Strict mode leaves this strategy out.
func pickBareToken(args []string) (string, bool) {
	for i := len(args) - 1; i >= 0; i-- {
		if isSourceCandidate(args[i]) {
			return args[i], true
		}
	}
	return "", false
}

// isSourceCandidate filters tokens that could name the compiled file: the
// .c/.cpp suffix, not an option, and not a quoted payload such as
// -D__FILENAME__="foo.c" split off by whitespace tokenization.
func isSourceCandidate(tok string) bool {
	if !strings.HasSuffix(tok, ".c") && !strings.HasSuffix(tok, ".cpp") {
		return false
	}
	if strings.HasPrefix(tok, "-") {
		return false
	}
	if len(tok) >= 2 && strings.HasPrefix(tok, `"`) && strings.HasSuffix(tok, `"`) {
		return false
	}
	return true
}

func isAbsPath(tok string) bool {
	if strings.HasPrefix(tok, "/") {
		return true
	}
	// Windows-style drive paths appear in cross-compile logs.
	if len(tok) >= 3 && tok[1] == ':' && (tok[2] == '/' || tok[2] == '\\') {
		return true
	}
	return false
}
