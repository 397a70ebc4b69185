package services

import "loading-analysis-service/internal/domain"

const metersPerFoot = 0.3048

// Machine-assisted handling carries a fixed 50% contingency over the base
// handling time and no walking component.
const machineBuffer = 1.5

// EmpiricalModel estimates handling time from the fitted benchmark
// parameters, keyed by vehicle class. Unlike the geometric model it never
// inspects a packing arrangement: a single effective walking distance per
// parcel trip is derived from the cargo length alone.
type EmpiricalModel struct {
	params     domain.EmpiricalParameters
	benchmarks map[string]domain.BenchmarkProfile
	aliases    map[string]string
}

// NewEmpiricalModel builds a model over the benchmark table and the
// short-code alias map. Both are copied; the model is read-only afterwards.
func NewEmpiricalModel(
	params domain.EmpiricalParameters,
	benchmarks []domain.BenchmarkProfile,
	aliases map[string]string,
) *EmpiricalModel {
	byType := make(map[string]domain.BenchmarkProfile, len(benchmarks))
	for _, b := range benchmarks {
		byType[b.Type] = b
	}
	aliasCopy := make(map[string]string, len(aliases))
	for code, canonical := range aliases {
		aliasCopy[code] = canonical
	}
	return &EmpiricalModel{params: params, benchmarks: byType, aliases: aliasCopy}
}

// ResolveType maps a short batch code ("32'SXL") to its canonical vehicle
// class. Unmapped codes pass through unchanged, treated as already canonical.
func (m *EmpiricalModel) ResolveType(code string) string {
	if canonical, ok := m.aliases[code]; ok {
		return canonical
	}
	return code
}

// Benchmark returns the benchmark profile for a class, after alias
// resolution.
func (m *EmpiricalModel) Benchmark(vehicleType string) (domain.BenchmarkProfile, bool) {
	b, ok := m.benchmarks[m.ResolveType(vehicleType)]
	return b, ok
}

// Benchmarks lists the benchmark table in no particular order.
func (m *EmpiricalModel) Benchmarks() []domain.BenchmarkProfile {
	out := make([]domain.BenchmarkProfile, 0, len(m.benchmarks))
	for _, b := range m.benchmarks {
		out = append(out, b)
	}
	return out
}

// Estimate returns manual- or machine-mode handling times for a vehicle
// class. A nil parcelOverride uses the class's fleet-average parcel count.
// ok is false when the class is absent from the benchmark table after alias
// resolution; batch callers skip such rows rather than abort.
func (m *EmpiricalModel) Estimate(
	vehicleType string,
	parcelOverride *int,
	mode domain.OperationMode,
) (domain.HandlingTimes, bool) {
	profile, ok := m.Benchmark(vehicleType)
	if !ok {
		return domain.HandlingTimes{}, false
	}

	parcels := profile.DefaultParcels
	if parcelOverride != nil {
		parcels = *parcelOverride
	}
	n := float64(parcels)
	fatigue := m.params.FatigueMultiplier(parcels)

	// Effective walking distance per parcel trip.
	distM := profile.LengthFt * metersPerFoot * m.params.Alpha

	walkHr := (distM/m.params.WalkSpeedMps + distM/m.params.LoadedSpeedMps) * n * fatigue / 3600
	loadHr := (m.params.LoadDelaySec + m.params.TurnSec) * n * fatigue / 3600
	unloadHr := (m.params.UnloadDelaySec + m.params.TurnSec) * n * fatigue / 3600

	if mode == domain.ModeMachine {
		return domain.HandlingTimes{
			LoadingHours:   loadHr * machineBuffer,
			UnloadingHours: unloadHr * machineBuffer,
		}, true
	}
	return domain.HandlingTimes{
		LoadingHours:   walkHr + loadHr,
		UnloadingHours: walkHr + unloadHr,
	}, true
}
