// Package parser turns raw build-log lines into compilation database
// records. One pass, one line at a time: sanitize, match the driver
// invocation, tokenize the arguments, resolve the source file, and keep the
// include/define flags that matter to semantic analysis.
package parser

import (
	"strings"

	"github.com/liuyu80/buildLog2CompileCommands/pkg/catalogue"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/compiledb"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/relpath"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/sanitize"
)

// outputMarker introduces the object-file argument; a compile command in the
// supported logs always names its output.
const outputMarker = "-o"

// LineResult classifies what one log line produced.
type LineResult int

const (
	// LineIgnored: not a compile invocation (the common case).
	LineIgnored LineResult = iota
	// LineSkipped: matched a driver invocation but yielded no record.
	// Silent per line; callers count these for the aggregate report.
	LineSkipped
	// LineParsed: produced a record.
	LineParsed
)

// Options tune which lines are accepted.
type Options struct {
	// Drivers is the set of recognized compiler-driver tokens. Empty means
	// DefaultDrivers.
	Drivers []string
	// CacheWrapper optionally prefixes any driver. Empty means
	// DefaultCacheWrapper.
	CacheWrapper string
	// StrictSource rejects bare .c/.cpp tokens that have no path separator
	// and no catalogue entry instead of accepting them verbatim.
	StrictSource bool
}

// Parser converts single build-log lines into records. Read-only after
// construction, so it is safe to share across goroutines; output ordering is
// the caller's concern.
type Parser struct {
	directory string
	project   string
	matcher   *Matcher
	resolver  *Resolver
}

// New builds a parser. directory is recorded on every record as the working
// directory of the run; project is the root component stripped from paths.
func New(directory, project string, cat *catalogue.Catalogue, opts Options) *Parser {
	drivers := opts.Drivers
	if len(drivers) == 0 {
		drivers = DefaultDrivers
	}
	wrapper := opts.CacheWrapper
	if wrapper == "" {
		wrapper = DefaultCacheWrapper
	}
	if cat == nil {
		cat = catalogue.New(nil)
	}

	return &Parser{
		directory: directory,
		project:   project,
		matcher:   NewMatcher(drivers, wrapper),
		resolver:  NewResolver(cat, opts.StrictSource),
	}
}

// ParseLine examines one raw log line. A defect in one line's structure must
// never abort the rest of the log, so any panic from unexpected input is
// absorbed into LineSkipped.
func (p *Parser) ParseLine(raw string) (rec compiledb.Record, result LineResult) {
	defer func() {
		if r := recover(); r != nil {
			rec, result = compiledb.Record{}, LineSkipped
		}
	}()

	line := sanitize.Line(raw)
	argStr, ok := p.matcher.Match(line)
	if !ok {
		return compiledb.Record{}, LineIgnored
	}

	args := strings.Fields(argStr)
	oIndex := indexOutputMarker(args)
	if oIndex < 0 {
		return compiledb.Record{}, LineSkipped
	}

	token, ok := p.resolver.Resolve(args[:oIndex])
	if !ok {
		return compiledb.Record{}, LineSkipped
	}
	source := p.resolver.Substitute(token)

	file := relpath.Strip(source, p.project)
	if file == "" {
		return compiledb.Record{}, LineSkipped
	}

	arguments := append(
		[]string{compiledb.CompilerFor(source)},
		normalizeFlags(args[:oIndex], token, p.project)...,
	)

	return compiledb.Record{
		Directory: p.directory,
		Arguments: arguments,
		File:      file,
	}, LineParsed
}

// indexOutputMarker finds the -o token, requiring a value after it.
func indexOutputMarker(args []string) int {
	for i, arg := range args {
		if arg == outputMarker {
			if i+1 >= len(args) {
				return -1
			}
			return i
		}
	}
	return -1
}
