package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"loading-analysis-service/internal/adapters/refdata"
	"loading-analysis-service/internal/adapters/scheduledata"
	"loading-analysis-service/internal/domain"
	"loading-analysis-service/internal/services"
)

func hubsCommand() *cli.Command {
	return &cli.Command{
		Name:  "hubs",
		Usage: "List the hub codes present in a schedule export",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "schedule CSV file"},
		},
		Action: func(c *cli.Context) error {
			source, err := openSource(c.String("input"))
			if err != nil {
				return err
			}

			hubs, err := source.Hubs(context.Background())
			if err != nil {
				return err
			}
			for _, h := range hubs {
				fmt.Println(h)
			}
			return nil
		},
	}
}

func scheduleCommand() *cli.Command {
	return &cli.Command{
		Name:  "schedule",
		Usage: "Aggregate one hub's arrivals onto the 24-hour timeline",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Required: true, Usage: "schedule CSV file"},
			&cli.StringFlag{Name: "hub", Required: true, Usage: "hub code to analyze"},
			&cli.StringFlag{Name: "mode", Value: "manual", Usage: "operation mode: manual or machine"},
			&cli.IntFlag{Name: "workers", Value: 1, Usage: "number of workers per vehicle"},
			&cli.StringFlag{Name: "refdata", Usage: "optional reference data YAML override"},
		},
		Action: runSchedule,
	}
}

func runSchedule(c *cli.Context) error {
	ctx := context.Background()

	mode, err := domain.ParseOperationMode(c.String("mode"))
	if err != nil {
		return err
	}
	workers := c.Int("workers")
	if workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", workers)
	}

	source, err := openSource(c.String("input"))
	if err != nil {
		return err
	}
	catalog, err := openCatalog(c.String("refdata"))
	if err != nil {
		return err
	}

	entries, issues, err := source.Entries(ctx, c.String("hub"))
	if err != nil {
		return err
	}

	model := services.NewEmpiricalModel(catalog.Params, catalog.Benchmarks, catalog.Aliases)
	result, err := services.AggregateSchedule(services.ScheduleRequest{
		Entries:    entries,
		Mode:       mode,
		NumWorkers: workers,
	}, model)
	if err != nil {
		return err
	}

	printIntervals(entries, result)
	printWorkload(result.HourlyWorkload)
	printIssues(issues, result.Skipped)
	return nil
}

func printIntervals(entries []domain.ScheduleEntry, result *services.ScheduleResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ARRIVAL\tTYPE\tMAPPED TYPE\tOPERATION\tDURATION\tTIMELINE")

	for _, iv := range result.Intervals {
		entry := entries[iv.EntryIndex]

		spans := make([]string, 0, len(iv.Parts))
		for _, p := range iv.Parts {
			spans = append(spans, fmt.Sprintf("%s-%s", clockLabel(p.StartMinute), clockLabel(p.EndMinute)))
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			entry.ArrivalTime,
			iv.SourceType,
			iv.VehicleType,
			iv.Operation,
			domain.FormatHours(iv.DurationHours),
			strings.Join(spans, " + "),
		)
	}
	w.Flush()
}

func printWorkload(workload map[int]int) {
	if len(workload) == 0 {
		return
	}

	hours := make([]int, 0, len(workload))
	for h := range workload {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	fmt.Println("\nHOURLY WORKLOAD (vehicles being worked)")
	for _, h := range hours {
		fmt.Printf("%02d:00  %s (%d)\n", h, strings.Repeat("#", workload[h]), workload[h])
	}
}

func printIssues(parseIssues, skipped []domain.RowIssue) {
	if len(parseIssues)+len(skipped) == 0 {
		return
	}

	fmt.Println("\nSKIPPED ROWS")
	for _, issue := range parseIssues {
		fmt.Printf("row %d: %s\n", issue.RowIndex, issue.Reason)
	}
	for _, issue := range skipped {
		fmt.Printf("row %d: %s\n", issue.RowIndex, issue.Reason)
	}
}

func clockLabel(minute int) string {
	if minute == domain.MinutesPerDay {
		return "24:00"
	}
	return domain.ClockTime(minute).String()
}

func openSource(path string) (*scheduledata.CSVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open schedule csv %q: %w", path, err)
	}
	defer f.Close()

	return scheduledata.NewCSVSource(f)
}

func openCatalog(path string) (*refdata.Catalog, error) {
	if path == "" {
		return refdata.Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference data %q: %w", path, err)
	}
	defer f.Close()

	return refdata.LoadYAML(f)
}
