package services

import (
	"fmt"
	"math"

	"loading-analysis-service/internal/domain"
	"loading-analysis-service/internal/units"
)

// Step size of the triangular walking model: each successive length-wise
// parcel position adds 0.75 ft to the walk.
const lengthStepFt = 0.75

// EstimateGeometric computes packing counts and handling times for one
// vehicle configuration.
//
// Parcels pack axis-aligned in a fixed orientation; partial parcels and
// rotations are not modeled. Walking distance along the cargo length uses a
// closed-form triangular sum of steps. A parcel dimension at or above the
// matching vehicle dimension zeroes that axis and with it every derived
// time; that is a valid estimate, not an error.
//
// The configuration's time multiplier is applied exactly once to every time
// figure, including the going/coming components.
func EstimateGeometric(cfg domain.VehicleConfig, conv *units.Converter) (*domain.GeometricEstimate, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("estimate geometric: %w", err)
	}

	parcelsL := int(math.Floor(cfg.Profile.LengthFt / cfg.Parcel.LengthFt))
	parcelsB := int(math.Floor(cfg.Profile.BreadthFt / cfg.Parcel.BreadthFt))
	parcelsH := int(math.Floor(cfg.Profile.HeightFt / cfg.Parcel.HeightFt))
	if parcelsL < 0 {
		parcelsL = 0 // negative vehicle dimensions clamp to an empty packing
	}
	if parcelsB < 0 {
		parcelsB = 0
	}
	if parcelsH < 0 {
		parcelsH = 0
	}

	parcelsPerLayer := parcelsB * parcelsH
	totalParcels := parcelsL * parcelsPerLayer

	// Triangular series over the length-wise stops; zero for 0 or 1 stop.
	stepsPerWayFt := lengthStepFt * float64(parcelsL-1) * float64(parcelsL)
	if parcelsL <= 1 {
		stepsPerWayFt = 0
	}
	totalStepsFt := stepsPerWayFt * float64(parcelsPerLayer)

	totalStepsM, err := conv.FeetToMeters(totalStepsFt)
	if err != nil {
		return nil, fmt.Errorf("estimate geometric: %w", err)
	}

	goingHr := totalStepsM / cfg.Params.SpeedWithoutLoadMps / 3600
	comingHr := totalStepsM / cfg.Params.SpeedWithLoadMps / 3600
	walkingHr := goingHr + comingHr

	unloadingHr := float64(totalParcels) * cfg.Params.UnloadingDelaySec / 3600
	loadingHr := float64(totalParcels) * cfg.Params.LoadingDelaySec / 3600

	m := cfg.Params.TimeMultiplier
	return &domain.GeometricEstimate{
		VehicleType:      cfg.Profile.Type,
		VehicleVolumeFt3: cfg.Profile.VolumeFt3(),
		ParcelVolumeFt3:  cfg.Parcel.VolumeFt3(),

		ParcelsLengthwise:  parcelsL,
		ParcelsBreadthwise: parcelsB,
		ParcelsHeightwise:  parcelsH,
		ParcelsPerLayer:    parcelsPerLayer,
		TotalParcels:       totalParcels,

		GoingHours:        goingHr * m,
		ComingHours:       comingHr * m,
		TotalWalkingHours: walkingHr * m,

		LoadingHours:        loadingHr * m,
		TotalLoadingHours:   (walkingHr + loadingHr) * m,
		UnloadingHours:      unloadingHr * m,
		TotalUnloadingHours: (walkingHr + unloadingHr) * m,
	}, nil
}
