// Package content loads game data from tab-separated files and resolves the
// cross-references between them into ready-to-play sanctuaries.
package content

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Row is one data line keyed by header column name.
type Row struct {
	// Line is the 1-based line number of the row in its file.
	Line   int
	Fields map[string]string
}

// Get returns the trimmed value of column, or "" if the row lacks it.
func (r Row) Get(column string) string {
	return strings.TrimSpace(r.Fields[column])
}

// ReadTSV parses tab-separated data whose first line is a header.
//
// Postcondition: Returns one Row per non-empty data line; missing trailing
// columns read as "". Returns an error on malformed input.
func ReadTSV(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return []Row{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	rows := []Row{}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}
		line, _ := cr.FieldPos(0)
		fields := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				fields[col] = record[i]
			}
		}
		rows = append(rows, Row{Line: line, Fields: fields})
	}
	return rows, nil
}

// ReadTSVFile reads the TSV file at path.
//
// Postcondition: Returns an error wrapping os.ErrNotExist if the file is missing.
func ReadTSVFile(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %q: %w", path, err)
	}
	return rows, nil
}

// SplitList splits a comma-separated list of names, dropping blanks.
func SplitList(s string) []string {
	var names []string
	for _, part := range strings.Split(s, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}
