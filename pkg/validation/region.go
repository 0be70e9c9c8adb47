package validation

import (
	"fmt"

	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
)

// ValidateRegion checks a region document's structure and, when present,
// that its generated layers are consistent with the terrain.
func ValidateRegion(rg *region.Region) *Report {
	r := NewReport()

	if !validateTerrain(rg, r) {
		return r
	}
	validateTowns(rg, r)
	validateRoadLayers(rg, r)
	validateBuildingLayer(rg, r)

	return r
}

func validateTerrain(rg *region.Region, r *Report) bool {
	if rg.Height() == 0 || rg.Width() == 0 {
		r.AddError(Result{
			Level:    LevelTerrain,
			Message:  "terrain grid is missing or empty",
			Path:     region.KeyTerrain,
			Expected: "at least 1x1 tiles",
		})
		return false
	}
	ok := true
	for y, row := range rg.Terrain {
		if len(row) != rg.Width() {
			r.AddError(Result{
				Level:       LevelTerrain,
				Message:     fmt.Sprintf("terrain row %d has %d tiles, want %d", y, len(row), rg.Width()),
				Path:        fmt.Sprintf("%s[%d]", region.KeyTerrain, y),
				ActualValue: len(row),
				Expected:    fmt.Sprintf("%d", rg.Width()),
			})
			ok = false
		}
	}
	return ok
}

func validateTowns(rg *region.Region, r *Report) {
	if len(rg.Towns) == 0 {
		r.AddError(Result{
			Level:    LevelTerrain,
			Message:  "region has no towns",
			Path:     region.KeyTowns,
			Expected: "at least 1 town",
		})
		return
	}
	seen := make(map[string]bool)
	for i, t := range rg.Towns {
		path := fmt.Sprintf("%s[%d]", region.KeyTowns, i)
		if !inBounds(rg, t.X, t.Y) {
			r.AddError(Result{
				Level:       LevelTerrain,
				Message:     fmt.Sprintf("town %s at (%d,%d) is outside the terrain grid", t.ID, t.X, t.Y),
				Path:        path,
				ActualValue: fmt.Sprintf("(%d,%d)", t.X, t.Y),
				Expected:    fmt.Sprintf("0 <= x < %d, 0 <= y < %d", rg.Width(), rg.Height()),
			})
		}
		switch t.Tier {
		case "A", "B", "C":
		default:
			r.AddWarning(Result{
				Level:       LevelTerrain,
				Message:     fmt.Sprintf("town %s has unknown tier %q", t.ID, t.Tier),
				Path:        path + ".tier",
				ActualValue: t.Tier,
				Expected:    "A, B or C",
			})
		}
		if t.Radius <= 0 {
			r.AddWarning(Result{
				Level:       LevelTerrain,
				Message:     fmt.Sprintf("town %s has no urban area (radius %.1f)", t.ID, t.Radius),
				Path:        path + ".radius",
				ActualValue: t.Radius,
				Expected:    "> 0",
			})
		}
		if t.ID != "" && seen[t.ID] {
			r.AddWarning(Result{
				Level:   LevelTerrain,
				Message: fmt.Sprintf("duplicate town id %s", t.ID),
				Path:    path + ".id",
			})
		}
		seen[t.ID] = true
	}
}

func validateRoadLayers(rg *region.Region, r *Report) {
	out := 0
	for _, n := range rg.RoadGraph {
		if !inBounds(rg, n.X, n.Y) {
			out++
		}
	}
	for _, t := range rg.RoadTiles {
		if !inBounds(rg, t.X, t.Y) {
			out++
		}
	}
	if out > 0 {
		r.AddWarning(Result{
			Level:       LevelRoads,
			Message:     fmt.Sprintf("%d road tiles lie outside the terrain grid", out),
			Path:        region.KeyRoadTiles,
			ActualValue: out,
			Expected:    "0",
		})
	}
}

func validateBuildingLayer(rg *region.Region, r *Report) {
	for i, b := range rg.Buildings {
		if !inBounds(rg, b.X, b.Y) || !terrain.Kind(rg.Terrain[b.Y][b.X]).IsBuildable() {
			r.AddWarning(Result{
				Level:       LevelPlacement,
				Message:     fmt.Sprintf("%s at (%d,%d) is not on buildable land", b.Kind, b.X, b.Y),
				Path:        fmt.Sprintf("%s[%d]", region.KeyBuildings, i),
				ActualValue: fmt.Sprintf("(%d,%d)", b.X, b.Y),
			})
		}
	}
}

func inBounds(rg *region.Region, x, y int) bool {
	return x >= 0 && y >= 0 && x < rg.Width() && y < rg.Height()
}
