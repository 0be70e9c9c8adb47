package routing

import (
	"fmt"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

// LocalStreets lays an axis-aligned street grid inside each town's urban
// disk, aligned to a nearby major road when one passes within two tiles of
// the center. Downtown and metro towns also get a ring road. Water and major
// centerlines are never claimed.
func LocalStreets(g *terrain.Grid, water *terrain.Water, towns []region.Town, major *geo.TileSet, cfg config.Config) (*geo.TileSet, *validation.Report) {
	report := validation.NewReport()
	centerlines := g.NewTileSet()

	for _, t := range towns {
		r := cfg.UrbanRadius(t.Tier, t.Radius)
		spacing := cfg.Spacing(t.Profile)
		cx, cy := float64(t.X), float64(t.Y)
		r2 := r * r

		x0, x1 := max(0, int(cx-r)), min(g.W-1, int(cx+r))
		y0, y1 := max(0, int(cy-r)), min(g.H-1, int(cy+r))

		d2 := func(x, y int) float64 {
			dx, dy := float64(x)-cx, float64(y)-cy
			return dx*dx + dy*dy
		}
		claim := func(x, y int) {
			p := geo.Pt(x, y)
			if !water.Has(p) {
				centerlines.Add(p)
			}
		}

		anchor := gridAnchor(geo.Pt(t.X, t.Y), major)

		for y := anchor.Y - geo.FloorDiv(anchor.Y-y0, spacing)*spacing; y <= y1; y += spacing {
			if y < y0 {
				continue
			}
			for x := x0; x <= x1; x++ {
				if d2(x, y) <= r2 {
					claim(x, y)
				}
			}
		}
		for x := anchor.X - geo.FloorDiv(anchor.X-x0, spacing)*spacing; x <= x1; x += spacing {
			if x < x0 {
				continue
			}
			for y := y0; y <= y1; y++ {
				if d2(x, y) <= r2 {
					claim(x, y)
				}
			}
		}

		if cfg.HasRingRoad(t.Profile) {
			rr := r * cfg.Urban.RingRoadFraction
			lo, hi := (rr-1)*(rr-1), (rr+1)*(rr+1)
			for y := y0; y <= y1; y++ {
				for x := x0; x <= x1; x++ {
					if d := d2(x, y); d >= lo && d <= hi {
						claim(x, y)
					}
				}
			}
		}
	}
	centerlines.RemoveAll(major)

	report.AddInfo(validation.Result{
		Level:   validation.LevelRoads,
		Message: fmt.Sprintf("local streets: %d centerline tiles across %d towns", centerlines.Len(), len(towns)),
	})
	return centerlines, report
}

// gridAnchor returns the major centerline tile within Chebyshev distance 2 of
// center closest to it (ties by squared distance, then y, then x), or center
// itself when none is near.
func gridAnchor(center geo.Point, major *geo.TileSet) geo.Point {
	best, bestD := center, -1
	for dy := -2; dy <= 2; dy++ {
		for dx := -2; dx <= 2; dx++ {
			p := geo.Pt(center.X+dx, center.Y+dy)
			if !major.Has(p) {
				continue
			}
			// Row-major scan order already breaks ties by y, then x.
			if d := dx*dx + dy*dy; bestD < 0 || d < bestD {
				best, bestD = p, d
			}
		}
	}
	return best
}
