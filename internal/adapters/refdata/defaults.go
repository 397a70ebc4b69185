// Package refdata supplies the read-only reference tables the estimation
// models consume: vehicle profiles, benchmark profiles, the short-code alias
// map, and the fitted empirical parameters.
package refdata

import "loading-analysis-service/internal/domain"

// Catalog bundles the reference tables. It is built once at startup and
// never mutated afterwards.
type Catalog struct {
	Profiles   []domain.VehicleProfile
	Benchmarks []domain.BenchmarkProfile
	Aliases    map[string]string
	Params     domain.EmpiricalParameters
}

// ProfileByType looks up a geometric profile by its exact type name.
func (c *Catalog) ProfileByType(vehicleType string) (domain.VehicleProfile, bool) {
	for _, p := range c.Profiles {
		if p.Type == vehicleType {
			return p, true
		}
	}
	return domain.VehicleProfile{}, false
}

// Default returns the built-in catalog: the manufacturer dimension table,
// the fleet benchmark table, and the short codes the hub exports use.
func Default() *Catalog {
	return &Catalog{
		Profiles: []domain.VehicleProfile{
			{Type: "40 ft ODC Trailer / Container", LengthFt: 40, BreadthFt: 8, HeightFt: 9, Payload: domain.PayloadRange{MinKg: 32000, MaxKg: 32000}},
			{Type: "32 ft Container SXL", LengthFt: 32, BreadthFt: 8, HeightFt: 9, Payload: domain.PayloadRange{MinKg: 7000, MaxKg: 9000}},
			{Type: "32 ft Container MXL", LengthFt: 32, BreadthFt: 8, HeightFt: 9, Payload: domain.PayloadRange{MinKg: 14000, MaxKg: 18000}},
			{Type: "24 ft Box/Container Truck", LengthFt: 24, BreadthFt: 8, HeightFt: 9, Payload: domain.PayloadRange{MinKg: 7500, MaxKg: 16000}},
			{Type: "Tata 22 ft Container", LengthFt: 22, BreadthFt: 8, HeightFt: 8, Payload: domain.PayloadRange{MinKg: 10000, MaxKg: 10000}},
			{Type: "Eicher 19 ft", LengthFt: 19, BreadthFt: 7, HeightFt: 8, Payload: domain.PayloadRange{MinKg: 10491, MaxKg: 10631}},
			{Type: "Eicher 17 ft", LengthFt: 17, BreadthFt: 6, HeightFt: 8, Payload: domain.PayloadRange{MinKg: 4300, MaxKg: 13300}},
			{Type: "Eicher 14 ft (LCV)", LengthFt: 14, BreadthFt: 6, HeightFt: 8, Payload: domain.PayloadRange{MinKg: 4015, MaxKg: 4120}},
			{Type: "Tata Super Ace", LengthFt: 14, BreadthFt: 5, HeightFt: 6, Payload: domain.PayloadRange{MinKg: 1000, MaxKg: 1000}},
			{Type: "Tata Ace / Dost", LengthFt: 12, BreadthFt: 5, HeightFt: 6, Payload: domain.PayloadRange{MinKg: 600, MaxKg: 1100}},
			{Type: "Tata 407 / Dost Bada", LengthFt: 9, BreadthFt: 6, HeightFt: 6, Payload: domain.PayloadRange{MinKg: 2250, MaxKg: 2500}},
			{Type: "Mahindra Bolero Pickup", LengthFt: 8, BreadthFt: 5, HeightFt: 6, Payload: domain.PayloadRange{MinKg: 1010, MaxKg: 1010}},
		},
		Benchmarks: []domain.BenchmarkProfile{
			{Type: "50 ft ODC Trailer / Container", LengthFt: 50, DefaultParcels: 1500},
			{Type: "32 ft Container MXL", LengthFt: 32, DefaultParcels: 1000},
			{Type: "32 ft Container SXL", LengthFt: 32, DefaultParcels: 700},
			{Type: "24 ft Box/Container Truck", LengthFt: 24, DefaultParcels: 600},
			{Type: "Tata 22 ft Container", LengthFt: 22, DefaultParcels: 600},
			{Type: "Eicher 19 ft", LengthFt: 19, DefaultParcels: 500},
			{Type: "Eicher 17 ft", LengthFt: 17, DefaultParcels: 425},
			{Type: "Eicher 14 ft (LCV)", LengthFt: 14, DefaultParcels: 300},
			{Type: "Tata 407 / Dost Bada", LengthFt: 10, DefaultParcels: 215},
			{Type: "Mahindra Bolero Pickup", LengthFt: 9, DefaultParcels: 100},
			{Type: "Tata Ace / Dost", LengthFt: 8, DefaultParcels: 50},
		},
		Aliases: map[string]string{
			"19'":    "Eicher 19 ft",
			"20'":    "Tata 407 / Dost Bada",
			"32' MA": "32 ft Container MXL",
			"32'SXL": "32 ft Container SXL",
			"14'":    "Eicher 14 ft (LCV)",
			"17'":    "Eicher 17 ft",
			"22'":    "Tata 22 ft Container",
		},
		Params: domain.DefaultEmpiricalParameters(),
	}
}
