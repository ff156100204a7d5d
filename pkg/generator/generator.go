// Package generator runs the full log-to-database pipeline: open the build
// log, parse it line by line, and write the compilation database. Watch and
// serve modes re-run the same pipeline.
package generator

import (
	"fmt"
	"os"

	"github.com/liuyu80/buildLog2CompileCommands/pkg/compiledb"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/logging"
	"github.com/liuyu80/buildLog2CompileCommands/pkg/parser"
)

// Generator ties a parser to a log file and an output path.
type Generator struct {
	LogPath string
	Output  string
	Parser  *parser.Parser
}

// Result is one completed pipeline run.
type Result struct {
	Records []compiledb.Record
	Stats   parser.Stats
}

// Run executes one pass: parse the log and write the database. A missing or
// unreadable log aborts before anything is written. An empty result is not
// an error; a valid empty array is still written and the condition is
// reported once.
func (g *Generator) Run() (*Result, error) {
	f, err := os.Open(g.LogPath)
	if err != nil {
		return nil, fmt.Errorf("opening build log: %w", err)
	}
	defer func() { _ = f.Close() }()

	records, stats, err := g.Parser.ParseLog(f)
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		logging.Info("no compile commands found or parsed from the log file",
			"log", g.LogPath, "lines", stats.Lines)
	}
	logging.Debug("parse pass complete",
		"lines", stats.Lines, "records", stats.Records, "skipped", stats.Skipped)

	if err := compiledb.Write(g.Output, records); err != nil {
		return nil, err
	}

	return &Result{Records: records, Stats: stats}, nil
}
