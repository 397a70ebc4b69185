package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// VehicleProfile describes the outer cargo geometry and rated payload of a
// vehicle class. Reference data for the geometric packing model; immutable
// after load.
type VehicleProfile struct {
	Type      string
	LengthFt  float64
	BreadthFt float64
	HeightFt  float64
	Payload   PayloadRange
}

// VolumeFt3 returns the gross cargo volume in cubic feet.
func (p VehicleProfile) VolumeFt3() float64 {
	return p.LengthFt * p.BreadthFt * p.HeightFt
}

// BenchmarkProfile keys the empirical time model. Only the cargo length and
// a fleet-average parcel count are known per class; breadth and height play
// no role in the fitted formulas.
type BenchmarkProfile struct {
	Type           string
	LengthFt       float64
	DefaultParcels int
}

// PayloadRange is the rated payload of a vehicle class in kilograms.
// Classes rated at a single figure encode MinKg == MaxKg.
type PayloadRange struct {
	MinKg float64
	MaxKg float64
}

// Fixed reports whether the class has a single rated payload.
func (r PayloadRange) Fixed() bool { return r.MinKg == r.MaxKg }

func (r PayloadRange) String() string {
	if r.Fixed() {
		return strconv.FormatFloat(r.MinKg, 'f', -1, 64)
	}
	return fmt.Sprintf("%s to %s",
		strconv.FormatFloat(r.MinKg, 'f', -1, 64),
		strconv.FormatFloat(r.MaxKg, 'f', -1, 64))
}

// ParsePayloadRange reads a manufacturer payload figure, either a plain
// number ("32000") or a span ("7000 to 9000").
func ParsePayloadRange(s string) (PayloadRange, error) {
	s = strings.TrimSpace(s)

	if lo, hi, found := strings.Cut(s, " to "); found {
		minKg, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
		if err != nil {
			return PayloadRange{}, fmt.Errorf("parse payload range %q: %w", s, err)
		}
		maxKg, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
		if err != nil {
			return PayloadRange{}, fmt.Errorf("parse payload range %q: %w", s, err)
		}
		if maxKg < minKg {
			return PayloadRange{}, fmt.Errorf("parse payload range %q: max below min", s)
		}
		return PayloadRange{MinKg: minKg, MaxKg: maxKg}, nil
	}

	kg, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return PayloadRange{}, fmt.Errorf("parse payload range %q: %w", s, err)
	}
	return PayloadRange{MinKg: kg, MaxKg: kg}, nil
}
