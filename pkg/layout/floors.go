package layout

import (
	"math"
	"math/rand"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
)

// Floors draws a floor count for a building of zone at p. Heights fall off
// with distance from the town center; downtown tiers get a bonus band near
// the center reaching DowntownMaxFloors.
func Floors(zone ZoneType, p geo.Point, town *region.Town, rng *rand.Rand, cfg config.Config) int {
	fr := cfg.FloorRange(string(zone))
	if town == nil {
		return randInt(rng, fr.Min, fr.Max)
	}

	urbanR := cfg.UrbanRadius(town.Tier, town.Radius)
	rel := geo.Distance(p, geo.Pt(town.X, town.Y)) / math.Max(urbanR, 1)

	bc := cfg.Buildings
	if rel < bc.DowntownBonusFrac && cfg.IsDowntownTier(town.Tier) {
		closeness := 1 - rel/bc.DowntownBonusFrac
		top := int(float64(fr.Max) + closeness*float64(bc.DowntownMaxFloors-fr.Max))
		return randInt(rng, max(fr.Min, top/2), top)
	}

	closeness := math.Max(0, 1-rel)
	floors := fr.Min + int(closeness*float64(fr.Max-fr.Min))
	return max(fr.Min, randInt(rng, fr.Min, max(fr.Min, floors)))
}

// randInt draws uniformly from [lo, hi].
func randInt(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}
