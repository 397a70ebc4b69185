package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"loading-analysis-service/internal/domain"
	"loading-analysis-service/internal/services"
	"loading-analysis-service/internal/units"
)

func estimateCommand() *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Run the geometric packing model for one vehicle configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "type", Required: true, Usage: "vehicle type from the profile table"},
			&cli.StringFlag{Name: "units", Value: "data/unit_conversion.csv", Usage: "unit conversion matrix CSV"},
			&cli.StringFlag{Name: "refdata", Usage: "optional reference data YAML override"},

			&cli.Float64Flag{Name: "length", Usage: "vehicle cargo length (ft)"},
			&cli.Float64Flag{Name: "breadth", Usage: "vehicle cargo breadth (ft)"},
			&cli.Float64Flag{Name: "height", Usage: "vehicle cargo height (ft)"},

			&cli.Float64Flag{Name: "parcel-length", Usage: "parcel length (ft)"},
			&cli.Float64Flag{Name: "parcel-breadth", Usage: "parcel breadth (ft)"},
			&cli.Float64Flag{Name: "parcel-height", Usage: "parcel height (ft)"},

			&cli.Float64Flag{Name: "speed-empty", Usage: "walking speed without load (m/s)"},
			&cli.Float64Flag{Name: "speed-loaded", Usage: "walking speed with load (m/s)"},
			&cli.Float64Flag{Name: "loading-delay", Usage: "per-parcel loading delay (s)"},
			&cli.Float64Flag{Name: "unloading-delay", Usage: "per-parcel unloading delay (s)"},
			&cli.Float64Flag{Name: "multiplier", Usage: "time multiplier"},
		},
		Action: runEstimate,
	}
}

func runEstimate(c *cli.Context) error {
	catalog, err := openCatalog(c.String("refdata"))
	if err != nil {
		return err
	}

	profile, ok := catalog.ProfileByType(c.String("type"))
	if !ok {
		return fmt.Errorf("vehicle type %q is not in the profile table", c.String("type"))
	}

	f, err := os.Open(c.String("units"))
	if err != nil {
		return fmt.Errorf("open unit table %q: %w", c.String("units"), err)
	}
	defer f.Close()

	converter, err := units.LoadTable(f)
	if err != nil {
		return err
	}

	cfg := domain.NewVehicleConfig(profile)
	if c.IsSet("length") {
		cfg.Profile.LengthFt = c.Float64("length")
	}
	if c.IsSet("breadth") {
		cfg.Profile.BreadthFt = c.Float64("breadth")
	}
	if c.IsSet("height") {
		cfg.Profile.HeightFt = c.Float64("height")
	}
	if c.IsSet("parcel-length") {
		cfg.Parcel.LengthFt = c.Float64("parcel-length")
	}
	if c.IsSet("parcel-breadth") {
		cfg.Parcel.BreadthFt = c.Float64("parcel-breadth")
	}
	if c.IsSet("parcel-height") {
		cfg.Parcel.HeightFt = c.Float64("parcel-height")
	}
	if c.IsSet("speed-empty") {
		cfg.Params.SpeedWithoutLoadMps = c.Float64("speed-empty")
	}
	if c.IsSet("speed-loaded") {
		cfg.Params.SpeedWithLoadMps = c.Float64("speed-loaded")
	}
	if c.IsSet("loading-delay") {
		cfg.Params.LoadingDelaySec = c.Float64("loading-delay")
	}
	if c.IsSet("unloading-delay") {
		cfg.Params.UnloadingDelaySec = c.Float64("unloading-delay")
	}
	if c.IsSet("multiplier") {
		cfg.Params.TimeMultiplier = c.Float64("multiplier")
	}

	est, err := services.EstimateGeometric(cfg, converter)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Vehicle\t%s\n", est.VehicleType)
	fmt.Fprintf(w, "Vehicle volume (ft3)\t%.2f\n", est.VehicleVolumeFt3)
	fmt.Fprintf(w, "Parcel volume (ft3)\t%.2f\n", est.ParcelVolumeFt3)
	fmt.Fprintf(w, "Parcels L x B x H\t%d x %d x %d\n", est.ParcelsLengthwise, est.ParcelsBreadthwise, est.ParcelsHeightwise)
	fmt.Fprintf(w, "Parcels per layer\t%d\n", est.ParcelsPerLayer)
	fmt.Fprintf(w, "Total parcels\t%d\n", est.TotalParcels)
	fmt.Fprintf(w, "Going time\t%s\n", domain.FormatHours(est.GoingHours))
	fmt.Fprintf(w, "Coming time\t%s\n", domain.FormatHours(est.ComingHours))
	fmt.Fprintf(w, "Total walking\t%s\n", domain.FormatHours(est.TotalWalkingHours))
	fmt.Fprintf(w, "Loading time\t%s\n", domain.FormatHours(est.LoadingHours))
	fmt.Fprintf(w, "Total loading delay\t%s\n", domain.FormatHours(est.TotalLoadingHours))
	fmt.Fprintf(w, "Unloading time\t%s\n", domain.FormatHours(est.UnloadingHours))
	fmt.Fprintf(w, "Total unloading delay\t%s\n", domain.FormatHours(est.TotalUnloadingHours))
	return w.Flush()
}
