package compiledb

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Marshal serializes records as an indented JSON array. HTML escaping is
// disabled so include paths like "a<b>" and non-ASCII characters survive
// literally instead of becoming \uXXXX sequences. A nil or empty slice
// serializes as a valid empty array.
func Marshal(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("encoding compilation database: %w", err)
	}
	return buf.Bytes(), nil
}

// Write serializes records and writes them to path in one shot. Partial
// writes are not retried; the caller reports the returned error.
func Write(path string, records []Record) error {
	data, err := Marshal(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
