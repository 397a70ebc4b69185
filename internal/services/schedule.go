package services

import (
	"errors"
	"fmt"
	"math"

	"loading-analysis-service/internal/domain"
)

// ScheduleRequest aggregates one arrival batch against a single 24-hour
// window. NumWorkers divides every duration linearly; no diminishing
// returns are modeled.
type ScheduleRequest struct {
	Entries    []domain.ScheduleEntry
	Mode       domain.OperationMode
	NumWorkers int
}

// ScheduleResult is the aggregation output: per-vehicle intervals in input
// order for timeline display, an hour-of-day occupancy count covering only
// the hours touched by at least one entry, and the rows that were skipped.
type ScheduleResult struct {
	Intervals      []domain.VehicleInterval
	HourlyWorkload map[int]int
	Skipped        []domain.RowIssue
}

// AggregateSchedule places every batch entry on the 24-hour timeline.
//
// Each entry's duration comes from the empirical model, divided across
// NumWorkers. Work that runs past 24:00 splits into two intervals, both
// attributed to the same vehicle. The hourly counter increments for every
// integer hour in [startHour, endHour] inclusive: an operation occupying
// only a fraction of its first or last hour still counts there, a coarse
// occupancy approximation rather than a time-weighted load.
//
// Entries whose vehicle class is absent from the benchmark table are
// skipped and reported; they never abort the batch.
func AggregateSchedule(req ScheduleRequest, model *EmpiricalModel) (*ScheduleResult, error) {
	if req.NumWorkers < 1 {
		return nil, errors.New("aggregate schedule: number of workers must be at least 1")
	}
	if req.Mode != domain.ModeManual && req.Mode != domain.ModeMachine {
		return nil, fmt.Errorf("aggregate schedule: unknown operation mode %q", req.Mode)
	}

	result := &ScheduleResult{HourlyWorkload: make(map[int]int)}

	for i, entry := range req.Entries {
		times, ok := model.Estimate(entry.VehicleType, entry.ParcelOverride, req.Mode)
		if !ok {
			result.Skipped = append(result.Skipped, domain.RowIssue{
				RowIndex: i,
				Reason:   fmt.Sprintf("vehicle type %q not in benchmark table", entry.VehicleType),
			})
			continue
		}

		durationHr := times.ForOperation(entry.Operation) / float64(req.NumWorkers)

		startMin := int(entry.ArrivalTime)
		startHour := entry.ArrivalTime.Hour()

		// Wall-clock end, wrapped at midnight. Sub-minute remainders are
		// truncated; the schedule operates at minute grain.
		totalMin := float64(startMin) + durationHr*60
		endHour := int(totalMin/60) % 24
		endMin := endHour*60 + int(math.Mod(totalMin, 60))

		interval := domain.VehicleInterval{
			EntryIndex:    i,
			VehicleType:   model.ResolveType(entry.VehicleType),
			SourceType:    entry.VehicleType,
			Operation:     entry.Operation,
			DurationHours: durationHr,
		}

		if endMin < startMin {
			// Crosses midnight: [start, 24:00) plus [00:00, end].
			interval.Parts = []domain.Interval{
				{StartMinute: startMin, EndMinute: domain.MinutesPerDay},
				{StartMinute: 0, EndMinute: endMin},
			}
			for h := startHour; h <= 23; h++ {
				result.HourlyWorkload[h]++
			}
			for h := 0; h <= endHour; h++ {
				result.HourlyWorkload[h]++
			}
		} else {
			interval.Parts = []domain.Interval{
				{StartMinute: startMin, EndMinute: endMin},
			}
			for h := startHour; h <= endHour; h++ {
				result.HourlyWorkload[h]++
			}
		}

		result.Intervals = append(result.Intervals, interval)
	}

	return result, nil
}
