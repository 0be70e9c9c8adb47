package layout

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

// FillNeighborhoods surrounds every catalog building with small commercial
// infill, favoring road-side tiles close to it.
func FillNeighborhoods(specials []Special, towns []region.Town, site *Site, rng *rand.Rand, cfg config.Config) ([]Building, *validation.Report) {
	report := validation.NewReport()
	sc := cfg.Special
	pool := sc.NeighborhoodPool
	var out []Building
	if len(pool) == 0 {
		return out, report
	}

	radius := sc.NeighborhoodRadius
	for _, s := range specials {
		var candidates []siteCandidate
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				p := geo.Pt(s.X+dx, s.Y+dy)
				if !site.Free(p) || site.Occupied.Has(p) {
					continue
				}
				d := abs(dx) + abs(dy)
				if d < 2 {
					continue
				}
				score := -d
				if site.RoadAdjacent(p) {
					score += 10
				}
				candidates = append(candidates, siteCandidate{p: p, score: score})
			}
		}
		sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].score > candidates[j].score })

		target := max(1, int(float64(len(candidates))*sc.NeighborhoodFill))
		placed := 0
		for _, c := range candidates {
			if placed >= target {
				break
			}
			if site.Occupied.Has(c.p) {
				continue
			}
			kind := pickKind(pool, rng)
			rotated := pickRotation(kind, rng, cfg)
			if !site.CanPlace(c.p, kind, rotated) {
				continue
			}
			site.Occupy(c.p, kind, rotated)
			variant := rng.Intn(cfg.Buildings.ColorVariants)
			out = append(out, Building{
				Point:        c.p,
				Kind:         kind,
				Rotated:      rotated,
				Zone:         ZoneCommercial,
				Facing:       geo.South,
				Floors:       Floors(ZoneCommercial, c.p, nearestTownManhattan(c.p, towns), rng, cfg),
				ColorVariant: variant,
			})
			placed++
		}
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelPlacement,
		Message: fmt.Sprintf("placed %d neighborhood buildings around %d catalog buildings", len(out), len(specials)),
	})
	return out, report
}

func nearestTownManhattan(p geo.Point, towns []region.Town) *region.Town {
	var best *region.Town
	bestD := 0
	for i := range towns {
		d := geo.Manhattan(p, geo.Pt(towns[i].X, towns[i].Y))
		if best == nil || d < bestD {
			best, bestD = &towns[i], d
		}
	}
	return best
}
