// Package scheduledata reads arrival batches from hub schedule CSV exports.
package scheduledata

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"loading-analysis-service/internal/domain"
)

// Column layout of the hub export. Parcels is optional; the other columns
// are a precondition for processing any row at all.
type scheduleRow struct {
	ArrivalTime string `csv:"Arrival Time"`
	VehicleType string `csv:"Vehicle Type"`
	Operation   string `csv:"Type"`
	HubCode     string `csv:"Hub Code"`
	Parcels     string `csv:"Parcels"`
}

var requiredColumns = []string{"Arrival Time", "Vehicle Type", "Type", "Hub Code"}

// CSVSource implements ports.ScheduleSource over one parsed CSV export.
type CSVSource struct {
	rows []scheduleRow
}

// NewCSVSource reads and validates the export. A missing required column
// fails the whole batch; malformed values inside rows are deferred to
// Entries, which skips and reports them per row.
func NewCSVSource(r io.Reader) (*CSVSource, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read schedule csv: %w", err)
	}

	if err := checkHeader(data); err != nil {
		return nil, err
	}

	var rows []scheduleRow
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("parse schedule csv: %w", err)
	}

	return &CSVSource{rows: rows}, nil
}

func checkHeader(data []byte) error {
	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		return fmt.Errorf("read schedule csv header: %w", err)
	}

	present := make(map[string]bool, len(header))
	for _, col := range header {
		present[strings.TrimSpace(col)] = true
	}
	for _, col := range requiredColumns {
		if !present[col] {
			return fmt.Errorf("schedule csv is missing required column %q", col)
		}
	}
	return nil
}

// Hubs lists distinct hub codes in first-seen order.
func (s *CSVSource) Hubs(_ context.Context) ([]string, error) {
	seen := make(map[string]bool)
	var hubs []string
	for _, row := range s.rows {
		code := strings.TrimSpace(row.HubCode)
		if code == "" || seen[code] {
			continue
		}
		seen[code] = true
		hubs = append(hubs, code)
	}
	return hubs, nil
}

// Entries parses the rows belonging to one hub. Rows with malformed arrival
// times, operation types, or parcel counts are skipped and reported; the
// remaining rows still process. Row indices refer to positions within the
// hub's rows, matching the order of the returned entries.
func (s *CSVSource) Entries(_ context.Context, hubCode string) ([]domain.ScheduleEntry, []domain.RowIssue, error) {
	var (
		entries []domain.ScheduleEntry
		issues  []domain.RowIssue
	)

	idx := -1
	for _, row := range s.rows {
		if strings.TrimSpace(row.HubCode) != hubCode {
			continue
		}
		idx++

		arrival, err := domain.ParseClockTime(row.ArrivalTime)
		if err != nil {
			issues = append(issues, domain.RowIssue{RowIndex: idx, Reason: err.Error()})
			continue
		}

		op, err := domain.ParseOperationType(row.Operation)
		if err != nil {
			issues = append(issues, domain.RowIssue{RowIndex: idx, Reason: err.Error()})
			continue
		}

		var override *int
		if p := strings.TrimSpace(row.Parcels); p != "" {
			n, err := strconv.Atoi(p)
			if err != nil || n < 1 {
				issues = append(issues, domain.RowIssue{
					RowIndex: idx,
					Reason:   fmt.Sprintf("parcel count %q is not a positive integer", row.Parcels),
				})
				continue
			}
			override = &n
		}

		entries = append(entries, domain.ScheduleEntry{
			VehicleType:    strings.TrimSpace(row.VehicleType),
			ArrivalTime:    arrival,
			Operation:      op,
			HubCode:        hubCode,
			ParcelOverride: override,
		})
	}

	return entries, issues, nil
}
