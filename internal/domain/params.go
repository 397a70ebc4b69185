package domain

import "fmt"

// OperationParameters tune the worker-movement component of the geometric
// model. All values are strictly positive; defaults come from a field study
// of hub loading crews and may be overridden per vehicle instance.
type OperationParameters struct {
	SpeedWithoutLoadMps float64
	SpeedWithLoadMps    float64
	UnloadingDelaySec   float64
	LoadingDelaySec     float64
	FatigueRatio        float64
	TimeMultiplier      float64
}

// DefaultOperationParameters returns the field-study defaults.
func DefaultOperationParameters() OperationParameters {
	return OperationParameters{
		SpeedWithoutLoadMps: 0.9,
		SpeedWithLoadMps:    0.67,
		UnloadingDelaySec:   10.21,
		LoadingDelaySec:     13.8,
		FatigueRatio:        0.8833333333,
		TimeMultiplier:      1.13,
	}
}

// Validate rejects non-positive values. Speeds of zero would divide walking
// distance by zero; a zero multiplier would silently erase every estimate.
func (p OperationParameters) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"speed without load", p.SpeedWithoutLoadMps},
		{"speed with load", p.SpeedWithLoadMps},
		{"unloading delay", p.UnloadingDelaySec},
		{"loading delay", p.LoadingDelaySec},
		{"fatigue ratio", p.FatigueRatio},
		{"time multiplier", p.TimeMultiplier},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return fmt.Errorf("operation parameter %s must be positive, got %v", c.name, c.value)
		}
	}
	return nil
}

// EmpiricalParameters is the fitted parameter set behind the benchmark time
// model. The values come from a least-squares fit against observed hub
// operations and are passed explicitly into every computation rather than
// read from package state.
type EmpiricalParameters struct {
	// Fatigue multipliers per parcel-count band.
	F1 float64
	F2 float64
	F3 float64
	F4 float64

	// Alpha is the effective fraction of the cargo length walked per parcel trip.
	Alpha float64
	// TurnSec is the per-parcel turnaround overhead.
	TurnSec float64

	WalkSpeedMps   float64
	LoadedSpeedMps float64
	LoadDelaySec   float64
	UnloadDelaySec float64
}

// DefaultEmpiricalParameters returns the fitted defaults.
func DefaultEmpiricalParameters() EmpiricalParameters {
	return EmpiricalParameters{
		F1:    1.296,
		F2:    1.200,
		F3:    1.008,
		F4:    1.029,
		Alpha: 0.830,

		TurnSec:        1.879,
		WalkSpeedMps:   0.830,
		LoadedSpeedMps: 0.534,
		LoadDelaySec:   13.96,
		UnloadDelaySec: 9.93,
	}
}

// FatigueMultiplier is a step function over total parcel count modeling
// worker slowdown on longer jobs. Bands are contiguous and left-closed; the
// last band is unbounded above.
func (p EmpiricalParameters) FatigueMultiplier(parcels int) float64 {
	switch {
	case parcels <= 100:
		return p.F1
	case parcels <= 200:
		return p.F2
	case parcels <= 300:
		return p.F3
	default:
		return p.F4
	}
}
