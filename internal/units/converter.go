// Package units provides table-driven linear unit conversion for the fixed
// set of physical units carried by the factor matrix.
package units

import (
	"fmt"
	"sort"

	"loading-analysis-service/internal/domain"
)

// Converter multiplies values by factors from a from->to table. The table is
// copied at construction and never mutated afterward. A unit converts to
// itself only when the table carries an explicit identity entry; identity is
// never inferred.
type Converter struct {
	table map[string]map[string]float64
}

// NewConverter builds a Converter over a defensive copy of the given table.
func NewConverter(table map[string]map[string]float64) *Converter {
	copied := make(map[string]map[string]float64, len(table))
	for from, row := range table {
		dst := make(map[string]float64, len(row))
		for to, factor := range row {
			dst[to] = factor
		}
		copied[from] = dst
	}
	return &Converter{table: copied}
}

// Convert returns value scaled by the table factor for the unit pair.
func (c *Converter) Convert(value float64, from, to string) (float64, error) {
	row, ok := c.table[from]
	if !ok {
		return 0, fmt.Errorf("convert from %q: %w", from, domain.ErrUnknownUnit)
	}
	factor, ok := row[to]
	if !ok {
		return 0, fmt.Errorf("convert from %q to %q: %w", from, to, domain.ErrUnknownUnit)
	}
	return value * factor, nil
}

// FeetToMeters is a named convenience for the pair the packing model uses on
// every evaluation.
func (c *Converter) FeetToMeters(value float64) (float64, error) {
	return c.Convert(value, "ft", "m")
}

// Units lists the units the table covers, sorted for stable display.
func (c *Converter) Units() []string {
	out := make([]string, 0, len(c.table))
	for u := range c.table {
		out = append(out, u)
	}
	sort.Strings(out)
	return out
}
