package units

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// LoadTable reads the conversion factor matrix and returns a Converter over
// it. The first header cell labels the row-unit column (conventionally
// "From\To"); the remaining header cells name the target units. Every data
// row carries one factor per target unit.
//
// Coverage must be symmetric: every row unit appears as a column and vice
// versa. The matrix is loaded once at startup and treated as read-only.
func LoadTable(r io.Reader) (*Converter, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("load unit table: %w", err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("load unit table: expected header and at least one row, got %d records", len(records))
	}

	header := records[0]
	if len(header) < 2 {
		return nil, fmt.Errorf("load unit table: header carries no target units")
	}
	targets := header[1:]

	table := make(map[string]map[string]float64, len(records)-1)
	for i, record := range records[1:] {
		if len(record) != len(header) {
			return nil, fmt.Errorf("load unit table: row %d has %d cells, want %d", i+2, len(record), len(header))
		}

		from := record[0]
		if _, dup := table[from]; dup {
			return nil, fmt.Errorf("load unit table: duplicate row unit %q", from)
		}

		row := make(map[string]float64, len(targets))
		for j, cell := range record[1:] {
			factor, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("load unit table: row %q column %q: %w", from, targets[j], err)
			}
			row[targets[j]] = factor
		}
		table[from] = row
	}

	for _, target := range targets {
		if _, ok := table[target]; !ok {
			return nil, fmt.Errorf("load unit table: column unit %q has no matching row", target)
		}
	}
	if len(table) != len(targets) {
		return nil, fmt.Errorf("load unit table: %d row units vs %d column units", len(table), len(targets))
	}

	return NewConverter(table), nil
}
