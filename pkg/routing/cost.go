package routing

import (
	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
)

// terrainCost prices a tile for road building. Bridgeable water costs
// CostBridge; other water and unknown terrain codes are impassable.
func terrainCost(g *terrain.Grid, water *terrain.Water, rc config.RoadConfig, mountain float64) CostFunc {
	return func(p geo.Point) (float64, bool) {
		if water.Has(p) {
			if water.CanBridge(p) {
				return rc.CostBridge, true
			}
			return 0, false
		}
		switch g.At(p) {
		case terrain.Land, terrain.Coast:
			return rc.CostLand, true
		case terrain.Mountain:
			return mountain, true
		}
		return 0, false
	}
}

// highwayCost is the highway pass cost model.
func highwayCost(g *terrain.Grid, water *terrain.Water, rc config.RoadConfig) CostFunc {
	return terrainCost(g, water, rc, rc.CostMountain)
}

// arterialCost discounts existing highway centerlines so arterials merge
// onto them, and charges extra for mountains.
func arterialCost(g *terrain.Grid, water *terrain.Water, highways *geo.TileSet, rc config.RoadConfig) CostFunc {
	base := terrainCost(g, water, rc, rc.CostMountain+rc.ArterialMountainExtra)
	return func(p geo.Point) (float64, bool) {
		if highways.Has(p) {
			return rc.HighwayDiscount, true
		}
		return base(p)
	}
}
