package main

import (
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/Lrrr908/sewer-showdown/internal/store"
	"github.com/Lrrr908/sewer-showdown/pkg/pipeline"
	"github.com/Lrrr908/sewer-showdown/pkg/routing"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.Path != "" {
				fmt.Printf("    -> %s = %v\n", e.Path, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.Path != "" {
				fmt.Printf("    -> %s\n", w.Path)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printStats(s *pipeline.Stats) {
	fmt.Printf("Layout (%dx%d, %d towns, %s)\n", s.Width, s.Height, s.Towns, s.Elapsed.Round(1e6))
	fmt.Println("==============================")
	fmt.Println()

	fmt.Printf("%-12s %12s %12s\n", "Roads", "Centerline", "Surface")
	fmt.Printf("%-12s %12s %12s\n", "------------", "------------", "------------")
	for i := len(routing.Classes) - 1; i >= 0; i-- {
		c := routing.Classes[i].String()
		fmt.Printf("%-12s %12s %12s\n", c, humanize.Comma(int64(s.Centerlines[c])), humanize.Comma(int64(s.Surface[c])))
	}
	fmt.Printf("  Bridges:              %s\n", humanize.Comma(int64(s.Bridges)))
	fmt.Println()

	fmt.Printf("  Blocks:               %s (%s tiles)\n", humanize.Comma(int64(s.Blocks)), humanize.Comma(int64(s.BlockTiles)))
	fmt.Printf("  Parks:                %s (%s tiles)\n", humanize.Comma(int64(s.Parks)), humanize.Comma(int64(s.ParkTiles)))
	fmt.Printf("  Graded tiles:         %s\n", humanize.Comma(int64(s.Graded)))
	fmt.Println()

	fmt.Printf("%-12s %12s %12s\n", "Zone", "Blocks", "Buildings")
	fmt.Printf("%-12s %12s %12s\n", "------------", "------------", "------------")
	for _, z := range pipeline.ZoneOrder() {
		fmt.Printf("%-12s %12s %12s\n", z, humanize.Comma(int64(s.Zones[z])), humanize.Comma(int64(s.BuildingsByZone[z])))
	}
	fmt.Println()

	fmt.Printf("  Buildings:            %s (%s rotated, %s corner upgrades, %s neighborhood)\n",
		humanize.Comma(int64(s.Buildings)), humanize.Comma(int64(s.Rotated)),
		humanize.Comma(int64(s.CornerUpgrades)), humanize.Comma(int64(s.Neighborhood)))
	fmt.Printf("  Catalog buildings:    %d of %d placed\n", s.Specials, s.SpecialsRequested)

	kinds := make([]string, 0, len(s.BuildingsByKind))
	for k := range s.BuildingsByKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if s.BuildingsByKind[kinds[i]] != s.BuildingsByKind[kinds[j]] {
			return s.BuildingsByKind[kinds[i]] > s.BuildingsByKind[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})
	for _, k := range kinds {
		fmt.Printf("    %-18s %8s\n", k, humanize.Comma(int64(s.BuildingsByKind[k])))
	}
}

func printHistory(runs []store.Run) {
	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return
	}
	fmt.Printf("%-36s  %-16s  %8s  %9s  %9s  %-8s  %s\n", "ID", "When", "Seed", "Roads", "Buildings", "Status", "Project")
	for _, r := range runs {
		status := "valid"
		if !r.Valid {
			status = "invalid"
		} else if r.Warnings > 0 {
			status = fmt.Sprintf("%d warn", r.Warnings)
		}
		fmt.Printf("%-36s  %-16s  %8d  %9s  %9s  %-8s  %s\n",
			r.ID, humanize.Time(r.Time()), r.Seed,
			humanize.Comma(int64(r.RoadTiles)), humanize.Comma(int64(r.Buildings)),
			status, r.Project)
	}
}
