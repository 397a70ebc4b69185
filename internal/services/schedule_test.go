package services

import (
	"strings"
	"testing"

	"loading-analysis-service/internal/domain"
)

// Model tuned for exact durations: no walking (alpha 0), no turnaround, so
// manual loading is 81s*100/3600 = 2.25h and unloading 36s*100/3600 = 1.0h.
func scheduleTestModel() *EmpiricalModel {
	params := domain.EmpiricalParameters{
		F1: 1, F2: 1, F3: 1, F4: 1,
		Alpha:          0,
		TurnSec:        0,
		WalkSpeedMps:   1,
		LoadedSpeedMps: 1,
		LoadDelaySec:   81,
		UnloadDelaySec: 36,
	}
	benchmarks := []domain.BenchmarkProfile{
		{Type: "Box Van", LengthFt: 10, DefaultParcels: 100},
	}
	return NewEmpiricalModel(params, benchmarks, map[string]string{"BV": "Box Van"})
}

func mustClock(t *testing.T, s string) domain.ClockTime {
	t.Helper()
	c, err := domain.ParseClockTime(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return c
}

func TestAggregateScheduleMidnightWrap(t *testing.T) {
	req := ScheduleRequest{
		Entries: []domain.ScheduleEntry{
			{VehicleType: "Box Van", ArrivalTime: mustClock(t, "23:30"), Operation: domain.OperationUnloading},
		},
		Mode:       domain.ModeManual,
		NumWorkers: 1,
	}

	result, err := AggregateSchedule(req, scheduleTestModel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Intervals) != 1 {
		t.Fatalf("intervals = %d, want 1", len(result.Intervals))
	}

	iv := result.Intervals[0]
	if iv.DurationHours != 1.0 {
		t.Fatalf("duration = %v, want 1.0", iv.DurationHours)
	}
	if len(iv.Parts) != 2 {
		t.Fatalf("parts = %d, want 2 (split at midnight)", len(iv.Parts))
	}
	if iv.Parts[0] != (domain.Interval{StartMinute: 23*60 + 30, EndMinute: domain.MinutesPerDay}) {
		t.Errorf("first part = %+v, want [23:30, 24:00)", iv.Parts[0])
	}
	if iv.Parts[1] != (domain.Interval{StartMinute: 0, EndMinute: 30}) {
		t.Errorf("second part = %+v, want [00:00, 00:30]", iv.Parts[1])
	}

	if len(result.HourlyWorkload) != 2 {
		t.Fatalf("workload = %v, want exactly hours 23 and 0", result.HourlyWorkload)
	}
	if result.HourlyWorkload[23] != 1 || result.HourlyWorkload[0] != 1 {
		t.Errorf("workload = %v, want hour 23 and hour 0 each counted once", result.HourlyWorkload)
	}
}

func TestAggregateScheduleWorkerDivision(t *testing.T) {
	req := ScheduleRequest{
		Entries: []domain.ScheduleEntry{
			{VehicleType: "Box Van", ArrivalTime: mustClock(t, "6:00"), Operation: domain.OperationLoading},
		},
		Mode:       domain.ModeManual,
		NumWorkers: 3,
	}

	result, err := AggregateSchedule(req, scheduleTestModel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	iv := result.Intervals[0]
	if iv.DurationHours != 0.75 {
		t.Fatalf("duration = %v, want 2.25h split across 3 workers = 0.75h", iv.DurationHours)
	}
	if len(iv.Parts) != 1 {
		t.Fatalf("parts = %d, want 1", len(iv.Parts))
	}
	if iv.Parts[0] != (domain.Interval{StartMinute: 6 * 60, EndMinute: 6*60 + 45}) {
		t.Errorf("part = %+v, want [06:00, 06:45]", iv.Parts[0])
	}

	if len(result.HourlyWorkload) != 1 || result.HourlyWorkload[6] != 1 {
		t.Errorf("workload = %v, want only hour 6", result.HourlyWorkload)
	}
}

func TestAggregateScheduleEdgeHoursBothCount(t *testing.T) {
	// 10:45 + 1h = 11:45: the operation occupies fractions of hours 10 and
	// 11 and both count, the coarse occupancy approximation.
	req := ScheduleRequest{
		Entries: []domain.ScheduleEntry{
			{VehicleType: "Box Van", ArrivalTime: mustClock(t, "10:45"), Operation: domain.OperationUnloading},
		},
		Mode:       domain.ModeManual,
		NumWorkers: 1,
	}

	result, err := AggregateSchedule(req, scheduleTestModel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HourlyWorkload[10] != 1 || result.HourlyWorkload[11] != 1 {
		t.Errorf("workload = %v, want hours 10 and 11", result.HourlyWorkload)
	}
}

func TestAggregateScheduleSkipsUnknownTypes(t *testing.T) {
	req := ScheduleRequest{
		Entries: []domain.ScheduleEntry{
			{VehicleType: "BV", ArrivalTime: mustClock(t, "08:00"), Operation: domain.OperationLoading},
			{VehicleType: "Hovercraft", ArrivalTime: mustClock(t, "09:00"), Operation: domain.OperationLoading},
			{VehicleType: "Box Van", ArrivalTime: mustClock(t, "10:00"), Operation: domain.OperationUnloading},
		},
		Mode:       domain.ModeManual,
		NumWorkers: 1,
	}

	result, err := AggregateSchedule(req, scheduleTestModel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Intervals) != 2 {
		t.Fatalf("intervals = %d, want 2 (unknown class skipped)", len(result.Intervals))
	}
	// input order preserved, alias resolved but source code retained
	if result.Intervals[0].EntryIndex != 0 || result.Intervals[1].EntryIndex != 2 {
		t.Errorf("entry order not preserved: %+v", result.Intervals)
	}
	if result.Intervals[0].VehicleType != "Box Van" || result.Intervals[0].SourceType != "BV" {
		t.Errorf("alias resolution lost: %+v", result.Intervals[0])
	}

	if len(result.Skipped) != 1 {
		t.Fatalf("skipped = %d, want 1", len(result.Skipped))
	}
	if result.Skipped[0].RowIndex != 1 || !strings.Contains(result.Skipped[0].Reason, "Hovercraft") {
		t.Errorf("skip report = %+v", result.Skipped[0])
	}
}

func TestAggregateScheduleParcelOverride(t *testing.T) {
	// 200 parcels doubles the unloading duration to 2h.
	override := 200
	req := ScheduleRequest{
		Entries: []domain.ScheduleEntry{
			{
				VehicleType:    "Box Van",
				ArrivalTime:    mustClock(t, "12:00"),
				Operation:      domain.OperationUnloading,
				ParcelOverride: &override,
			},
		},
		Mode:       domain.ModeManual,
		NumWorkers: 1,
	}

	result, err := AggregateSchedule(req, scheduleTestModel())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Intervals[0].DurationHours != 2.0 {
		t.Fatalf("duration = %v, want 2.0", result.Intervals[0].DurationHours)
	}
	for _, h := range []int{12, 13, 14} {
		if result.HourlyWorkload[h] != 1 {
			t.Errorf("hour %d = %d, want 1", h, result.HourlyWorkload[h])
		}
	}
}

func TestAggregateScheduleValidation(t *testing.T) {
	model := scheduleTestModel()

	_, err := AggregateSchedule(ScheduleRequest{Mode: domain.ModeManual, NumWorkers: 0}, model)
	if err == nil {
		t.Error("expected error for zero workers")
	}

	_, err = AggregateSchedule(ScheduleRequest{Mode: "turbo", NumWorkers: 1}, model)
	if err == nil {
		t.Error("expected error for unknown mode")
	}
}
