package api

import (
	"net/http"

	"loading-analysis-service/internal/adapters/refdata"
	"loading-analysis-service/internal/api/handlers"
	"loading-analysis-service/internal/services"
	"loading-analysis-service/internal/units"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// where the reference tables or the factor matrix came from.
func NewRouter(catalog *refdata.Catalog, converter *units.Converter) http.Handler {
	mux := http.NewServeMux()

	model := services.NewEmpiricalModel(catalog.Params, catalog.Benchmarks, catalog.Aliases)

	vehicleHandler := &handlers.VehicleHandler{Catalog: catalog}
	estimateHandler := &handlers.EstimateHandler{Catalog: catalog, Converter: converter}
	scheduleHandler := &handlers.ScheduleHandler{Model: model}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/vehicles", vehicleHandler.List)
	mux.HandleFunc("/estimates", estimateHandler.Estimate)
	mux.HandleFunc("/schedule", scheduleHandler.Schedule)

	return loggingMiddleware(mux)
}
