package dto

// VehicleConfigRequest selects a vehicle profile and optionally overrides
// its geometry, parcel assumptions, and operation parameters. Absent fields
// keep the profile defaults; switching Type discards all prior overrides by
// construction since every request is evaluated from scratch.
type VehicleConfigRequest struct {
	Type string `json:"type"`

	LengthFt  *float64 `json:"length_ft"`
	BreadthFt *float64 `json:"breadth_ft"`
	HeightFt  *float64 `json:"height_ft"`
	PayloadKg *float64 `json:"payload_kg"`

	ParcelLengthFt  *float64 `json:"parcel_length_ft"`
	ParcelBreadthFt *float64 `json:"parcel_breadth_ft"`
	ParcelHeightFt  *float64 `json:"parcel_height_ft"`

	SpeedWithoutLoadMps *float64 `json:"speed_without_load_mps"`
	SpeedWithLoadMps    *float64 `json:"speed_with_load_mps"`
	UnloadingDelaySec   *float64 `json:"unloading_delay_sec"`
	LoadingDelaySec     *float64 `json:"loading_delay_sec"`
	FatigueRatio        *float64 `json:"fatigue_ratio"`
	TimeMultiplier      *float64 `json:"time_multiplier"`
}

type EstimateRequest struct {
	Vehicles []VehicleConfigRequest `json:"vehicles"`
}

type EstimateResponse struct {
	VehicleType      string  `json:"vehicle_type"`
	VehicleVolumeFt3 float64 `json:"vehicle_volume_ft3"`
	ParcelVolumeFt3  float64 `json:"parcel_volume_ft3"`

	ParcelsLengthwise  int `json:"parcels_lengthwise"`
	ParcelsBreadthwise int `json:"parcels_breadthwise"`
	ParcelsHeightwise  int `json:"parcels_heightwise"`
	ParcelsPerLayer    int `json:"parcels_per_layer"`
	TotalParcels       int `json:"total_parcels"`

	GoingHours        float64 `json:"going_hours"`
	ComingHours       float64 `json:"coming_hours"`
	TotalWalkingHours float64 `json:"total_walking_hours"`

	LoadingHours        float64 `json:"loading_hours"`
	TotalLoadingHours   float64 `json:"total_loading_hours"`
	UnloadingHours      float64 `json:"unloading_hours"`
	TotalUnloadingHours float64 `json:"total_unloading_hours"`

	TotalWalkingDisplay   string `json:"total_walking_display"`
	TotalLoadingDisplay   string `json:"total_loading_display"`
	TotalUnloadingDisplay string `json:"total_unloading_display"`
}

type ListEstimateResponse struct {
	Estimates []EstimateResponse `json:"estimates"`
}

type VehicleProfileResponse struct {
	Type         string  `json:"type"`
	LengthFt     float64 `json:"length_ft"`
	BreadthFt    float64 `json:"breadth_ft"`
	HeightFt     float64 `json:"height_ft"`
	PayloadMinKg float64 `json:"payload_min_kg"`
	PayloadMaxKg float64 `json:"payload_max_kg"`
}

type BenchmarkProfileResponse struct {
	Type           string  `json:"type"`
	LengthFt       float64 `json:"length_ft"`
	DefaultParcels int     `json:"default_parcels"`
}

type VehicleCatalogResponse struct {
	Profiles   []VehicleProfileResponse   `json:"profiles"`
	Benchmarks []BenchmarkProfileResponse `json:"benchmarks"`
	Aliases    map[string]string          `json:"aliases"`
}
