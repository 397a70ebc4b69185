package domain

import (
	"fmt"
	"math"
)

// HandlingTimes is the result shape shared by both estimation models: total
// hours to load or unload one vehicle. The geometric and empirical models
// disagree on assumptions but agree on this output.
type HandlingTimes struct {
	LoadingHours   float64
	UnloadingHours float64
}

// ForOperation selects the figure matching a schedule entry's operation.
func (h HandlingTimes) ForOperation(op OperationType) float64 {
	if op == OperationUnloading {
		return h.UnloadingHours
	}
	return h.LoadingHours
}

// GeometricEstimate is the full output record of the geometric packing and
// time model for one vehicle configuration. All time figures carry the
// configuration's time multiplier exactly once.
type GeometricEstimate struct {
	VehicleType      string
	VehicleVolumeFt3 float64
	ParcelVolumeFt3  float64

	ParcelsLengthwise  int
	ParcelsBreadthwise int
	ParcelsHeightwise  int
	ParcelsPerLayer    int
	TotalParcels       int

	GoingHours        float64
	ComingHours       float64
	TotalWalkingHours float64

	LoadingHours        float64
	TotalLoadingHours   float64
	UnloadingHours      float64
	TotalUnloadingHours float64
}

// Handling projects the estimate onto the shared result shape.
func (e GeometricEstimate) Handling() HandlingTimes {
	return HandlingTimes{
		LoadingHours:   e.TotalLoadingHours,
		UnloadingHours: e.TotalUnloadingHours,
	}
}

// FormatHours renders fractional hours as "3h 25m": floor hours plus the
// rounded remainder in minutes, normalized so 59.6m rolls into the hour.
func FormatHours(h float64) string {
	hours := int(h)
	minutes := int(math.Round((h - float64(hours)) * 60))
	if minutes == 60 {
		hours++
		minutes = 0
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
