package layout

import (
	"fmt"
	"math/rand"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

// Building is a placed background building. Point is the south-west anchor
// of its footprint.
type Building struct {
	geo.Point
	Kind         string
	Rotated      bool
	Zone         ZoneType
	Facing       geo.Dir
	Floors       int
	ColorVariant int

	// Corner is set when the corner pass swapped the kind.
	Corner bool
}

// Record converts b to its region document form.
func (b Building) Record() region.Building {
	return region.Building{
		X:            b.X,
		Y:            b.Y,
		Kind:         b.Kind,
		ColorVariant: b.ColorVariant,
		Zone:         string(b.Zone),
		Facing:       b.Facing.Letter(),
		Floors:       b.Floors,
		Rotated:      b.Rotated,
	}
}

// pickKind draws a kind from a weighted pool.
func pickKind(pool []config.WeightedKind, rng *rand.Rand) string {
	total := 0.0
	for _, wk := range pool {
		total += wk.Weight
	}
	r := rng.Float64() * total
	for _, wk := range pool {
		r -= wk.Weight
		if r <= 0 {
			return wk.Kind
		}
	}
	return pool[len(pool)-1].Kind
}

// pickRotation draws the rotation flag. Square kinds never consume a draw.
func pickRotation(kind string, rng *rand.Rand, cfg config.Config) bool {
	return cfg.Rotatable(kind) && rng.Float64() < cfg.Buildings.RotateChance
}

// PlaceBuildings fills the lot band of every zoned block, nearest the road
// first, up to the zone's fill ratio. Sparse blocks also seed a few interior
// tiles. A corner pass then swaps buildings that sit on major intersections
// to corner kinds.
func PlaceBuildings(blocks []Block, towns []region.Town, site *Site, rng *rand.Rand, cfg config.Config) ([]Building, *validation.Report) {
	report := validation.NewReport()
	var buildings []Building
	reach := cfg.Lots.SidewalkDepth + 2

	place := func(p geo.Point, zone ZoneType, facing geo.Dir, town *region.Town, pool []config.WeightedKind) bool {
		kind := pickKind(pool, rng)
		rotated := pickRotation(kind, rng, cfg)
		if !site.CanPlace(p, kind, rotated) {
			return false
		}
		site.Occupy(p, kind, rotated)
		variant := rng.Intn(cfg.Buildings.ColorVariants)
		buildings = append(buildings, Building{
			Point:        p,
			Kind:         kind,
			Rotated:      rotated,
			Zone:         zone,
			Facing:       facing,
			Floors:       Floors(zone, p, town, rng, cfg),
			ColorVariant: variant,
		})
		return true
	}

	for i := range blocks {
		b := &blocks[i]
		pool := cfg.Buildings.ZonePools[string(b.Zone)]
		if len(pool) == 0 {
			continue
		}
		var town *region.Town
		if b.Town >= 0 && b.Town < len(towns) {
			town = &towns[b.Town]
		}

		lots := SplitLots(b, site.Surface, cfg.Lots)
		limit := max(1, int(float64(len(lots.Lot))*cfg.FillRatio(string(b.Zone))))
		placed := 0
		for _, p := range lots.Lot {
			if placed >= limit {
				break
			}
			if site.Occupied.Has(p) {
				continue
			}
			if place(p, b.Zone, Facing(p, site.Surface, reach), town, pool) {
				placed++
			}
		}

		if b.Zone == ZoneSparse && len(lots.Interior) > 0 {
			n := max(1, len(lots.Interior)/cfg.Lots.InteriorDivisor)
			for _, p := range lots.Interior[:n] {
				if site.Occupied.Has(p) {
					continue
				}
				place(p, b.Zone, geo.South, town, pool)
			}
		}
	}

	corners := UpgradeCorners(buildings, site, rng, cfg)
	report.AddInfo(validation.Result{
		Level:   validation.LevelPlacement,
		Message: fmt.Sprintf("placed %d lot buildings (%d corner upgrades)", len(buildings), corners),
	})
	return buildings, report
}

// UpgradeCorners swaps non-industrial buildings that see major road on both
// axes to a corner kind. The swap is tried against the occupancy with the
// old footprint removed and is dropped when the new kind does not fit.
func UpgradeCorners(buildings []Building, site *Site, rng *rand.Rand, cfg config.Config) int {
	kinds := cfg.Buildings.CornerKinds
	if len(kinds) == 0 {
		return 0
	}
	reach := cfg.Lots.SidewalkDepth + 1
	upgraded := 0
	for i := range buildings {
		b := &buildings[i]
		if b.Zone == ZoneIndustrial || cfg.IsCornerKind(b.Kind) {
			continue
		}
		if !seesMajorOnBothAxes(b.Point, site, reach) {
			continue
		}

		kind := kinds[rng.Intn(len(kinds))]
		rotated := pickRotation(kind, rng, cfg)

		site.Release(b.Point, b.Kind, b.Rotated)
		if !site.CanPlace(b.Point, kind, rotated) {
			site.Occupy(b.Point, b.Kind, b.Rotated)
			continue
		}
		site.Occupy(b.Point, kind, rotated)
		b.Kind, b.Rotated, b.Corner = kind, rotated, true
		upgraded++
	}
	return upgraded
}

func seesMajorOnBothAxes(p geo.Point, site *Site, reach int) bool {
	var axes [2]bool
	for _, d := range geo.Dirs {
		for step := 1; step <= reach; step++ {
			if site.Surface.IsMajor(p.Step(d, step)) {
				axes[d.Axis()] = true
				break
			}
		}
	}
	return axes[0] && axes[1]
}
