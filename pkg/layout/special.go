package layout

import (
	"fmt"
	"sort"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

// Special is a placed catalog building.
type Special struct {
	geo.Point
	BuildingID string
	Town       int
}

// Record converts s to its region document form.
func (s Special) Record() region.Placement {
	return region.Placement{BuildingID: s.BuildingID, X: s.X, Y: s.Y}
}

type siteCandidate struct {
	p     geo.Point
	score int
}

// PlaceSpecial positions the catalog buildings assigned to each town
// (assignments maps town index to building ids). Tiles of the town's blocks
// close to a road are ranked by zone, road distance and closeness to the
// center; when none fits, square rings around the center are searched.
// Buildings that still do not fit are reported and skipped.
func PlaceSpecial(assignments map[int][]string, blocks []Block, towns []region.Town, site *Site, cfg config.Config) ([]Special, *validation.Report) {
	report := validation.NewReport()
	sc := cfg.Special
	kind := sc.FootprintKind

	var specials []Special
	placed := make(map[string]bool)

	spaced := func(p geo.Point) bool {
		for _, s := range specials {
			if geo.Manhattan(p, s.Point) < sc.MinSpacing {
				return false
			}
		}
		return true
	}
	fits := func(p geo.Point) bool {
		return !site.Occupied.Has(p) && spaced(p) && site.CanPlace(p, kind, false)
	}

	indices := make([]int, 0, len(assignments))
	for ti := range assignments {
		if ti >= 0 && ti < len(towns) {
			indices = append(indices, ti)
		}
	}
	sort.Ints(indices)

	failed := 0
	for _, ti := range indices {
		town := towns[ti]
		center := geo.Pt(town.X, town.Y)
		candidates := rankSites(ti, center, blocks, site, sc)

		for _, bid := range assignments[ti] {
			if placed[bid] {
				continue
			}
			spot, ok := geo.Point{}, false
			for _, c := range candidates {
				if fits(c.p) {
					spot, ok = c.p, true
					break
				}
			}
			if !ok {
				spot, ok = ringSearch(center, site, sc, fits)
			}
			if !ok {
				failed++
				report.AddWarning(validation.Result{
					Level:   validation.LevelPlacement,
					Message: fmt.Sprintf("could not place building %q near %s", bid, town.ID),
					Path:    fmt.Sprintf("towns[%d]", ti),
				})
				continue
			}
			site.Occupy(spot, kind, false)
			specials = append(specials, Special{Point: spot, BuildingID: bid, Town: ti})
			placed[bid] = true
		}
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelPlacement,
		Message: fmt.Sprintf("placed %d catalog buildings (%d unplaced)", len(specials), failed),
	})
	return specials, report
}

// rankSites scores the road-side tiles of town ti's blocks, best first.
func rankSites(ti int, center geo.Point, blocks []Block, site *Site, sc config.SpecialConfig) []siteCandidate {
	var out []siteCandidate
	for i := range blocks {
		b := &blocks[i]
		if b.Town != ti {
			continue
		}
		for _, p := range b.Tiles {
			if !site.Free(p) {
				continue
			}
			rd := probeRoad(p, site, sc.RoadProbe)
			if rd > sc.MaxRoadDist {
				continue
			}
			score := b.Zone.priority()*100 + (10-min(rd, 10))*10 - geo.Manhattan(p, center)
			out = append(out, siteCandidate{p: p, score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })
	return out
}

// probeRoad returns the smallest step, up to probe, at which any axis ray
// from p meets road surface; 99 when none does.
func probeRoad(p geo.Point, site *Site, probe int) int {
	for step := 1; step <= probe; step++ {
		for _, d := range geo.Dirs {
			if site.Surface.Has(p.Step(d, step)) {
				return step
			}
		}
	}
	return 99
}

// ringSearch walks square rings of growing radius around center and returns
// the first free tile accepted by fits.
func ringSearch(center geo.Point, site *Site, sc config.SpecialConfig, fits func(geo.Point) bool) (geo.Point, bool) {
	for r := sc.FallbackMinRadius; r <= sc.FallbackMaxRadius; r++ {
		for dx := -r; dx <= r; dx++ {
			for dy := -r; dy <= r; dy++ {
				if abs(dx) != r && abs(dy) != r {
					continue
				}
				p := geo.Pt(center.X+dx, center.Y+dy)
				if site.Free(p) && fits(p) {
					return p, true
				}
			}
		}
	}
	return geo.Point{}, false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
