package parser

import (
	"bufio"
	"fmt"
	"io"

	"github.com/liuyu80/buildLog2CompileCommands/pkg/compiledb"
)

// Stats summarizes one pass over a log. Per-line failures stay silent, but
// the totals are reported once at the end of the run.
type Stats struct {
	Lines   int // lines read
	Records int // records produced
	Skipped int // lines that matched a driver but yielded no record
}

// ParseLog runs the parser over every line of r, in order, and returns the
// records in encounter order. Only a read error on the input aborts the
// pass; malformed lines are counted and skipped.
func (p *Parser) ParseLog(r io.Reader) ([]compiledb.Record, Stats, error) {
	var (
		records []compiledb.Record
		stats   Stats
	)

	scanner := bufio.NewScanner(r)
	// Link and compile lines in real logs can run very long.
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		stats.Lines++
		rec, result := p.ParseLine(scanner.Text())
		switch result {
		case LineParsed:
			records = append(records, rec)
			stats.Records++
		case LineSkipped:
			stats.Skipped++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("reading build log: %w", err)
	}

	return records, stats, nil
}
