package handlers

import (
	"net/http"

	"loading-analysis-service/internal/adapters/refdata"
	"loading-analysis-service/internal/api/dto"
)

type VehicleHandler struct {
	Catalog *refdata.Catalog
}

// List returns the reference catalog so front ends can populate vehicle
// selection forms without hardcoding the tables.
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.VehicleCatalogResponse{
		Profiles:   make([]dto.VehicleProfileResponse, 0, len(h.Catalog.Profiles)),
		Benchmarks: make([]dto.BenchmarkProfileResponse, 0, len(h.Catalog.Benchmarks)),
		Aliases:    h.Catalog.Aliases,
	}
	for _, p := range h.Catalog.Profiles {
		res.Profiles = append(res.Profiles, dto.VehicleProfileResponse{
			Type:         p.Type,
			LengthFt:     p.LengthFt,
			BreadthFt:    p.BreadthFt,
			HeightFt:     p.HeightFt,
			PayloadMinKg: p.Payload.MinKg,
			PayloadMaxKg: p.Payload.MaxKg,
		})
	}
	for _, b := range h.Catalog.Benchmarks {
		res.Benchmarks = append(res.Benchmarks, dto.BenchmarkProfileResponse{
			Type:           b.Type,
			LengthFt:       b.LengthFt,
			DefaultParcels: b.DefaultParcels,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
