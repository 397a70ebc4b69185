package handlers

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"

	"loading-analysis-service/internal/adapters/refdata"
	"loading-analysis-service/internal/api/dto"
	"loading-analysis-service/internal/domain"
	"loading-analysis-service/internal/services"
	"loading-analysis-service/internal/units"
)

const maxEstimateVehicles = 50

type EstimateHandler struct {
	Catalog   *refdata.Catalog
	Converter *units.Converter
}

// Estimate runs the geometric packing model for every requested vehicle
// configuration. The whole fleet is re-evaluated on each call; the engine is
// cheap enough that no incremental state is worth keeping.
func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.EstimateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if len(req.Vehicles) == 0 {
		writeError(w, r, http.StatusBadRequest, "vehicles must not be empty")
		return
	}
	if len(req.Vehicles) > maxEstimateVehicles {
		writeError(w, r, http.StatusBadRequest,
			fmt.Sprintf("at most %d vehicles per request", maxEstimateVehicles))
		return
	}

	res := dto.ListEstimateResponse{Estimates: make([]dto.EstimateResponse, 0, len(req.Vehicles))}
	for i, v := range req.Vehicles {
		profile, ok := h.Catalog.ProfileByType(v.Type)
		if !ok {
			writeError(w, r, http.StatusBadRequest,
				fmt.Sprintf("vehicles[%d]: unknown vehicle type %q", i, v.Type))
			return
		}

		cfg := buildConfig(profile, v)
		est, err := services.EstimateGeometric(cfg, h.Converter)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, fmt.Sprintf("vehicles[%d]: %v", i, err))
			return
		}

		res.Estimates = append(res.Estimates, toEstimateResponse(est))
	}

	log.Debug().Int("vehicles", len(req.Vehicles)).Msg("Geometric estimates computed")
	writeJSON(w, r, http.StatusOK, res)
}

// buildConfig starts from the profile defaults and applies only the fields
// the request explicitly set.
func buildConfig(profile domain.VehicleProfile, v dto.VehicleConfigRequest) domain.VehicleConfig {
	cfg := domain.NewVehicleConfig(profile)

	if v.LengthFt != nil {
		cfg.Profile.LengthFt = *v.LengthFt
	}
	if v.BreadthFt != nil {
		cfg.Profile.BreadthFt = *v.BreadthFt
	}
	if v.HeightFt != nil {
		cfg.Profile.HeightFt = *v.HeightFt
	}
	if v.PayloadKg != nil {
		cfg.PayloadKg = *v.PayloadKg
	}

	if v.ParcelLengthFt != nil {
		cfg.Parcel.LengthFt = *v.ParcelLengthFt
	}
	if v.ParcelBreadthFt != nil {
		cfg.Parcel.BreadthFt = *v.ParcelBreadthFt
	}
	if v.ParcelHeightFt != nil {
		cfg.Parcel.HeightFt = *v.ParcelHeightFt
	}

	if v.SpeedWithoutLoadMps != nil {
		cfg.Params.SpeedWithoutLoadMps = *v.SpeedWithoutLoadMps
	}
	if v.SpeedWithLoadMps != nil {
		cfg.Params.SpeedWithLoadMps = *v.SpeedWithLoadMps
	}
	if v.UnloadingDelaySec != nil {
		cfg.Params.UnloadingDelaySec = *v.UnloadingDelaySec
	}
	if v.LoadingDelaySec != nil {
		cfg.Params.LoadingDelaySec = *v.LoadingDelaySec
	}
	if v.FatigueRatio != nil {
		cfg.Params.FatigueRatio = *v.FatigueRatio
	}
	if v.TimeMultiplier != nil {
		cfg.Params.TimeMultiplier = *v.TimeMultiplier
	}

	return cfg
}

func toEstimateResponse(est *domain.GeometricEstimate) dto.EstimateResponse {
	return dto.EstimateResponse{
		VehicleType:      est.VehicleType,
		VehicleVolumeFt3: est.VehicleVolumeFt3,
		ParcelVolumeFt3:  est.ParcelVolumeFt3,

		ParcelsLengthwise:  est.ParcelsLengthwise,
		ParcelsBreadthwise: est.ParcelsBreadthwise,
		ParcelsHeightwise:  est.ParcelsHeightwise,
		ParcelsPerLayer:    est.ParcelsPerLayer,
		TotalParcels:       est.TotalParcels,

		GoingHours:        est.GoingHours,
		ComingHours:       est.ComingHours,
		TotalWalkingHours: est.TotalWalkingHours,

		LoadingHours:        est.LoadingHours,
		TotalLoadingHours:   est.TotalLoadingHours,
		UnloadingHours:      est.UnloadingHours,
		TotalUnloadingHours: est.TotalUnloadingHours,

		TotalWalkingDisplay:   domain.FormatHours(est.TotalWalkingHours),
		TotalLoadingDisplay:   domain.FormatHours(est.TotalLoadingHours),
		TotalUnloadingDisplay: domain.FormatHours(est.TotalUnloadingHours),
	}
}
