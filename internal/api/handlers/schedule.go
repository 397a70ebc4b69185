package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"loading-analysis-service/internal/api/dto"
	"loading-analysis-service/internal/domain"
	"loading-analysis-service/internal/platform/obs"
	"loading-analysis-service/internal/services"
)

const maxWorkers = 20

type ScheduleHandler struct {
	Model *services.EmpiricalModel
}

// Schedule aggregates an arrival batch onto the 24-hour timeline and
// returns intervals, hourly workload, and the rows that were skipped.
func (h *ScheduleHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ScheduleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	mode := domain.ModeManual
	if strings.TrimSpace(req.Mode) != "" {
		var err error
		mode, err = domain.ParseOperationMode(req.Mode)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
	}

	workers := req.Workers
	if workers == 0 {
		workers = 1
	}
	if workers < 1 || workers > maxWorkers {
		writeError(w, r, http.StatusBadRequest,
			fmt.Sprintf("workers must be between 1 and %d", maxWorkers))
		return
	}

	if len(req.Entries) == 0 {
		writeError(w, r, http.StatusBadRequest, "entries must not be empty")
		return
	}

	entries := make([]domain.ScheduleEntry, 0, len(req.Entries))
	var skipped []dto.RowIssueResponse
	hub := strings.TrimSpace(req.Hub)

	for i, e := range req.Entries {
		if hub != "" && strings.TrimSpace(e.HubCode) != hub {
			continue
		}

		arrival, err := domain.ParseClockTime(e.ArrivalTime)
		if err != nil {
			skipped = append(skipped, dto.RowIssueResponse{Row: i, Reason: err.Error()})
			continue
		}
		op, err := domain.ParseOperationType(e.Operation)
		if err != nil {
			skipped = append(skipped, dto.RowIssueResponse{Row: i, Reason: err.Error()})
			continue
		}
		if e.Parcels != nil && *e.Parcels < 1 {
			skipped = append(skipped, dto.RowIssueResponse{
				Row:    i,
				Reason: fmt.Sprintf("parcel count %d is not positive", *e.Parcels),
			})
			continue
		}

		entries = append(entries, domain.ScheduleEntry{
			VehicleType:    strings.TrimSpace(e.VehicleType),
			ArrivalTime:    arrival,
			Operation:      op,
			HubCode:        e.HubCode,
			ParcelOverride: e.Parcels,
		})
	}

	result, err := h.aggregate(r.Context(), entries, mode, workers)
	if err != nil {
		log.Error().Err(err).Msg("Schedule aggregation failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ScheduleResponse{
		Intervals:      make([]dto.VehicleIntervalResponse, 0, len(result.Intervals)),
		HourlyWorkload: result.HourlyWorkload,
		Skipped:        skipped,
	}
	for _, iv := range result.Intervals {
		res.Intervals = append(res.Intervals, toIntervalResponse(iv))
	}
	for _, issue := range result.Skipped {
		res.Skipped = append(res.Skipped, dto.RowIssueResponse{Row: issue.RowIndex, Reason: issue.Reason})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *ScheduleHandler) aggregate(
	ctx context.Context,
	entries []domain.ScheduleEntry,
	mode domain.OperationMode,
	workers int,
) (result *services.ScheduleResult, err error) {
	defer obs.Time(ctx, "aggregate schedule")(&err)

	return services.AggregateSchedule(services.ScheduleRequest{
		Entries:    entries,
		Mode:       mode,
		NumWorkers: workers,
	}, h.Model)
}

func toIntervalResponse(iv domain.VehicleInterval) dto.VehicleIntervalResponse {
	parts := make([]dto.IntervalResponse, 0, len(iv.Parts))
	for _, p := range iv.Parts {
		parts = append(parts, dto.IntervalResponse{
			StartMinute: p.StartMinute,
			EndMinute:   p.EndMinute,
			Start:       formatMinute(p.StartMinute),
			End:         formatMinute(p.EndMinute),
		})
	}
	return dto.VehicleIntervalResponse{
		EntryIndex:    iv.EntryIndex,
		VehicleType:   iv.VehicleType,
		SourceType:    iv.SourceType,
		Operation:     string(iv.Operation),
		DurationHours: iv.DurationHours,
		Duration:      domain.FormatHours(iv.DurationHours),
		Parts:         parts,
	}
}

func formatMinute(m int) string {
	if m == domain.MinutesPerDay {
		return "24:00"
	}
	return domain.ClockTime(m).String()
}
