package ports

import (
	"context"

	"loading-analysis-service/internal/domain"
)

// ScheduleSource is a boundary for reading arrival batches from a data
// source. Batch data is always analyzed one hub at a time.
type ScheduleSource interface {
	// Hubs lists the distinct hub codes present in the batch.
	Hubs(ctx context.Context) ([]string, error)

	// Entries returns the parsed schedule rows for one hub, plus per-row
	// problems for rows that were skipped rather than parsed. Row-level
	// problems never fail the call.
	Entries(ctx context.Context, hubCode string) ([]domain.ScheduleEntry, []domain.RowIssue, error)
}
