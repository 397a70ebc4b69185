package domain

import (
	"fmt"
	"strings"
)

// OperationType is the direction of a dock operation.
type OperationType string

const (
	OperationLoading   OperationType = "Loading"
	OperationUnloading OperationType = "Unloading"
)

// ParseOperationType reads a batch "Type" column value, case-insensitively.
func ParseOperationType(s string) (OperationType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "loading":
		return OperationLoading, nil
	case "unloading":
		return OperationUnloading, nil
	default:
		return "", fmt.Errorf("operation type must be Loading or Unloading, got %q", s)
	}
}

// OperationMode selects between manual crews and machine-assisted handling.
type OperationMode string

const (
	ModeManual  OperationMode = "manual"
	ModeMachine OperationMode = "machine"
)

// ParseOperationMode reads a mode selection, case-insensitively.
func ParseOperationMode(s string) (OperationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "manual":
		return ModeManual, nil
	case "machine":
		return ModeMachine, nil
	default:
		return "", fmt.Errorf("operation mode must be manual or machine, got %q", s)
	}
}

// ScheduleEntry is one row of an arrival batch: a vehicle of some class
// arriving at a hub at a time of day for loading or unloading. A nil
// ParcelOverride means the class's fleet-average parcel count applies.
type ScheduleEntry struct {
	VehicleType    string
	ArrivalTime    ClockTime
	Operation      OperationType
	HubCode        string
	ParcelOverride *int
}

// Interval is a same-day span on the 24-hour window, in minutes since
// midnight. EndMinute may be MinutesPerDay for spans that run up to midnight.
type Interval struct {
	StartMinute int
	EndMinute   int
}

// VehicleInterval places one schedule entry on the timeline. Work that runs
// past midnight carries two parts; both belong to the same vehicle for
// workload counting.
type VehicleInterval struct {
	EntryIndex    int
	VehicleType   string // canonical class after alias resolution
	SourceType    string // class code as given in the batch
	Operation     OperationType
	DurationHours float64
	Parts         []Interval
}

// RowIssue reports a batch row that was skipped rather than processed.
// Row-level problems never abort the remaining rows.
type RowIssue struct {
	RowIndex int
	Reason   string
}
