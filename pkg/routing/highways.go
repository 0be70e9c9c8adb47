package routing

import (
	"fmt"
	"sort"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

// Highways connects the tier-A towns along an east-west chain (towns sorted
// by x) and a north-south chain (sorted by y). With fewer than two tier-A
// towns the highest-density towns stand in. Unroutable links are skipped.
func Highways(g *terrain.Grid, water *terrain.Water, towns []region.Town, rc config.RoadConfig) (*geo.TileSet, *validation.Report) {
	report := validation.NewReport()
	centerlines := g.NewTileSet()

	anchors := highwayAnchors(towns, rc.HighwayFallbackCount)
	cost := highwayCost(g, water, rc)

	byX := append([]region.Town(nil), anchors...)
	sort.SliceStable(byX, func(i, j int) bool { return byX[i].X < byX[j].X })
	byY := append([]region.Town(nil), anchors...)
	sort.SliceStable(byY, func(i, j int) bool { return byY[i].Y < byY[j].Y })

	skipped := 0
	for _, chain := range [][]region.Town{byX, byY} {
		for i := 0; i+1 < len(chain); i++ {
			a, b := chain[i], chain[i+1]
			path := FindPath(g.W, g.H, geo.Pt(a.X, a.Y), geo.Pt(b.X, b.Y), cost, rc.TurnPenalty)
			if path == nil {
				skipped++
				report.AddInfo(validation.Result{
					Level:   validation.LevelRoads,
					Message: fmt.Sprintf("highway link %s -> %s is unroutable", a.ID, b.ID),
				})
				continue
			}
			for _, p := range path {
				centerlines.Add(p)
			}
		}
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelRoads,
		Message: fmt.Sprintf("highway spine: %d anchors, %d centerline tiles, %d links skipped", len(anchors), centerlines.Len(), skipped),
	})
	return centerlines, report
}

// highwayAnchors returns the tier-A towns, or the fallback highest-density
// towns when fewer than two tier-A towns exist.
func highwayAnchors(towns []region.Town, fallback int) []region.Town {
	var tierA []region.Town
	for _, t := range towns {
		if t.Tier == "A" {
			tierA = append(tierA, t)
		}
	}
	if len(tierA) >= 2 {
		return tierA
	}
	dense := append([]region.Town(nil), towns...)
	sort.SliceStable(dense, func(i, j int) bool { return dense[i].Density > dense[j].Density })
	if len(dense) > fallback {
		dense = dense[:fallback]
	}
	return dense
}
