package refdata

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"loading-analysis-service/internal/domain"
)

type catalogFile struct {
	Vehicles []struct {
		Type     string  `yaml:"type"`
		LengthFt float64 `yaml:"length_ft"`
		BreadthFt float64 `yaml:"breadth_ft"`
		HeightFt float64 `yaml:"height_ft"`
		Payload  string  `yaml:"payload_kg"`
	} `yaml:"vehicles"`

	Benchmarks []struct {
		Type           string  `yaml:"type"`
		LengthFt       float64 `yaml:"length_ft"`
		DefaultParcels int     `yaml:"default_parcels"`
	} `yaml:"benchmarks"`

	Aliases map[string]string `yaml:"aliases"`

	Parameters *struct {
		F1             float64 `yaml:"f1"`
		F2             float64 `yaml:"f2"`
		F3             float64 `yaml:"f3"`
		F4             float64 `yaml:"f4"`
		Alpha          float64 `yaml:"alpha"`
		TurnSec        float64 `yaml:"turn_sec"`
		WalkSpeedMps   float64 `yaml:"walk_speed_mps"`
		LoadedSpeedMps float64 `yaml:"loaded_speed_mps"`
		LoadDelaySec   float64 `yaml:"load_delay_sec"`
		UnloadDelaySec float64 `yaml:"unload_delay_sec"`
	} `yaml:"parameters"`
}

// LoadYAML reads a catalog override file. Sections that are absent fall back
// to the built-in defaults, so a file may override just the alias map or
// just the fitted parameters.
func LoadYAML(r io.Reader) (*Catalog, error) {
	var file catalogFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}

	catalog := Default()

	if len(file.Vehicles) > 0 {
		profiles := make([]domain.VehicleProfile, 0, len(file.Vehicles))
		for _, v := range file.Vehicles {
			payload, err := domain.ParsePayloadRange(v.Payload)
			if err != nil {
				return nil, fmt.Errorf("load reference data: vehicle %q: %w", v.Type, err)
			}
			profiles = append(profiles, domain.VehicleProfile{
				Type:      v.Type,
				LengthFt:  v.LengthFt,
				BreadthFt: v.BreadthFt,
				HeightFt:  v.HeightFt,
				Payload:   payload,
			})
		}
		catalog.Profiles = profiles
	}

	if len(file.Benchmarks) > 0 {
		benchmarks := make([]domain.BenchmarkProfile, 0, len(file.Benchmarks))
		for _, b := range file.Benchmarks {
			benchmarks = append(benchmarks, domain.BenchmarkProfile{
				Type:           b.Type,
				LengthFt:       b.LengthFt,
				DefaultParcels: b.DefaultParcels,
			})
		}
		catalog.Benchmarks = benchmarks
	}

	if len(file.Aliases) > 0 {
		catalog.Aliases = file.Aliases
	}

	if p := file.Parameters; p != nil {
		catalog.Params = domain.EmpiricalParameters{
			F1: p.F1, F2: p.F2, F3: p.F3, F4: p.F4,
			Alpha:          p.Alpha,
			TurnSec:        p.TurnSec,
			WalkSpeedMps:   p.WalkSpeedMps,
			LoadedSpeedMps: p.LoadedSpeedMps,
			LoadDelaySec:   p.LoadDelaySec,
			UnloadDelaySec: p.UnloadDelaySec,
		}
	}

	return catalog, nil
}
