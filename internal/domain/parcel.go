package domain

import "fmt"

// ParcelDimensions is the axis-aligned bounding box of a single parcel, in
// feet. Parcels pack in this fixed orientation only; no rotation is modeled.
type ParcelDimensions struct {
	LengthFt  float64
	BreadthFt float64
	HeightFt  float64
}

// VolumeFt3 returns the parcel volume in cubic feet.
func (p ParcelDimensions) VolumeFt3() float64 {
	return p.LengthFt * p.BreadthFt * p.HeightFt
}

// Validate rejects non-positive dimensions, which would make per-axis
// packing counts meaningless.
func (p ParcelDimensions) Validate() error {
	if p.LengthFt <= 0 || p.BreadthFt <= 0 || p.HeightFt <= 0 {
		return fmt.Errorf("parcel dimensions must be positive, got %.2fx%.2fx%.2f ft",
			p.LengthFt, p.BreadthFt, p.HeightFt)
	}
	return nil
}

// DefaultParcelDimensions returns the standard carton assumption used when a
// vehicle configuration does not override parcel geometry.
func DefaultParcelDimensions() ParcelDimensions {
	return ParcelDimensions{LengthFt: 1.25, BreadthFt: 1.0, HeightFt: 1.0}
}
