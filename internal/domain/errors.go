package domain

import "errors"

var (
	// ErrUnknownUnit marks a conversion involving a unit the factor table
	// does not carry. Conversions are never inferred, including identity.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrUnknownVehicleType marks a vehicle class missing from the benchmark
	// table after alias resolution. Batch callers skip the row.
	ErrUnknownVehicleType = errors.New("unknown vehicle type")

	// ErrInvalidTimeFormat marks an arrival time that is not HH:MM or HH:MM:SS.
	ErrInvalidTimeFormat = errors.New("invalid time format")
)
