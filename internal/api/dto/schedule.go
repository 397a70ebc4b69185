package dto

type ScheduleEntryRequest struct {
	VehicleType string `json:"vehicle_type"`
	ArrivalTime string `json:"arrival_time"` // HH:MM or HH:MM:SS
	Operation   string `json:"operation"`    // Loading | Unloading
	HubCode     string `json:"hub_code"`
	Parcels     *int   `json:"parcels"`
}

type ScheduleRequest struct {
	Mode    string                 `json:"mode"` // manual | machine
	Workers int                    `json:"workers"`
	Hub     string                 `json:"hub"` // optional filter over entries
	Entries []ScheduleEntryRequest `json:"entries"`
}

type IntervalResponse struct {
	StartMinute int    `json:"start_minute"`
	EndMinute   int    `json:"end_minute"`
	Start       string `json:"start"` // HH:MM
	End         string `json:"end"`   // HH:MM, "24:00" for spans ending at midnight
}

type VehicleIntervalResponse struct {
	EntryIndex    int                `json:"entry_index"`
	VehicleType   string             `json:"vehicle_type"`
	SourceType    string             `json:"source_type"`
	Operation     string             `json:"operation"`
	DurationHours float64            `json:"duration_hours"`
	Duration      string             `json:"duration"`
	Parts         []IntervalResponse `json:"parts"`
}

type RowIssueResponse struct {
	Row    int    `json:"row"`
	Reason string `json:"reason"`
}

type ScheduleResponse struct {
	Intervals      []VehicleIntervalResponse `json:"intervals"`
	HourlyWorkload map[int]int               `json:"hourly_workload"`
	Skipped        []RowIssueResponse        `json:"skipped"`
}
