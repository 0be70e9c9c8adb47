package layout

import (
	"fmt"
	"math"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/routing"
	"github.com/Lrrr908/sewer-showdown/pkg/surface"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

// ZoneType classifies a block's land use.
type ZoneType string

const (
	ZoneIndustrial  ZoneType = "industrial"
	ZoneCommercial  ZoneType = "commercial"
	ZoneResidential ZoneType = "residential"
	ZoneSparse      ZoneType = "sparse"
)

// Zones lists the zone types in report order.
var Zones = []ZoneType{ZoneCommercial, ZoneResidential, ZoneIndustrial, ZoneSparse}

// farAway stands in for "no such feature nearby".
const farAway = 999

// priority ranks zones for catalog building placement.
func (z ZoneType) priority() int {
	switch z {
	case ZoneCommercial:
		return 3
	case ZoneResidential:
		return 2
	case ZoneIndustrial:
		return 1
	}
	return 0
}

// ZoneFor applies the zoning rules to a block's distances. Industrial wins
// over commercial, which wins over residential.
func ZoneFor(hwyDist, artDist, waterDist int, relDist float64, zc config.ZoningConfig) ZoneType {
	switch {
	case hwyDist <= zc.HighwayDist && waterDist <= zc.WaterDist:
		return ZoneIndustrial
	case artDist <= zc.ArterialDist || relDist <= zc.CenterFrac:
		return ZoneCommercial
	case relDist <= zc.MidFrac:
		return ZoneResidential
	}
	return ZoneSparse
}

// Classify assigns every block its nearest town and zone.
func Classify(blocks []Block, towns []region.Town, surf *surface.Surface, water *terrain.Water, cfg config.Config) *validation.Report {
	report := validation.NewReport()
	w, h := surf.W, surf.H
	hwyField := geo.DistanceField(w, h, surf.Set(routing.Highway))
	artField := geo.DistanceField(w, h, surf.Set(routing.Arterial))

	counts := make(map[ZoneType]int)
	upgraded := 0
	for i := range blocks {
		b := &blocks[i]
		b.CX, b.CY = centroid(b.Tiles)
		b.Town = nearestTown(b.CX, b.CY, towns)
		if b.Town < 0 {
			b.Zone = ZoneSparse
			counts[b.Zone]++
			continue
		}

		t := towns[b.Town]
		urbanR := cfg.UrbanRadius(t.Tier, t.Radius)
		b.RelDist = math.Hypot(b.CX-float64(t.X), b.CY-float64(t.Y)) / math.Max(urbanR, 1)

		hwy, art, wd := farAway, farAway, farAway
		for _, p := range b.Tiles {
			hwy = min(hwy, fieldAt(hwyField, w, p))
			art = min(art, fieldAt(artField, w, p))
			wd = min(wd, waterDistance(p, water, cfg.Zoning.WaterDist))
		}
		b.Zone = ZoneFor(hwy, art, wd, b.RelDist, cfg.Zoning)

		if b.Zone != ZoneIndustrial && b.Zone != ZoneCommercial && touchesCorner(b.Tiles, surf) {
			b.Zone = ZoneCommercial
			upgraded++
		}
		counts[b.Zone]++
	}

	report.AddInfo(validation.Result{
		Level: validation.LevelBlocks,
		Message: fmt.Sprintf("zoned %d blocks: %d commercial, %d residential, %d industrial, %d sparse (%d corner upgrades)",
			len(blocks), counts[ZoneCommercial], counts[ZoneResidential], counts[ZoneIndustrial], counts[ZoneSparse], upgraded),
	})
	return report
}

func centroid(tiles []geo.Point) (float64, float64) {
	var sx, sy float64
	for _, p := range tiles {
		sx += float64(p.X)
		sy += float64(p.Y)
	}
	n := float64(len(tiles))
	return sx / n, sy / n
}

// nearestTown returns the index of the town closest to (x, y); the first
// town wins ties.
func nearestTown(x, y float64, towns []region.Town) int {
	best, bestD := -1, math.Inf(1)
	for i, t := range towns {
		d := math.Hypot(x-float64(t.X), y-float64(t.Y))
		if d < bestD {
			best, bestD = i, d
		}
	}
	return best
}

func fieldAt(field []int, w int, p geo.Point) int {
	d := field[p.Y*w+p.X]
	if d == geo.Unreached {
		return farAway
	}
	return d
}

// waterDistance walks the four axis rays from p and returns the step of the
// first water tile within limit+1 steps.
func waterDistance(p geo.Point, water *terrain.Water, limit int) int {
	best := farAway
	for _, d := range geo.Dirs {
		for step := 1; step <= limit+1; step++ {
			if water.Has(p.Step(d, step)) {
				best = min(best, step)
				break
			}
		}
	}
	return best
}

// touchesCorner reports whether any tile has major road surface next to it on
// both axes.
func touchesCorner(tiles []geo.Point, surf *surface.Surface) bool {
	for _, p := range tiles {
		var axes [2]bool
		for _, d := range geo.Dirs {
			if surf.IsMajor(p.Step(d, 1)) {
				axes[d.Axis()] = true
			}
		}
		if axes[0] && axes[1] {
			return true
		}
	}
	return false
}
