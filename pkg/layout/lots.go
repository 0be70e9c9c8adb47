package layout

import (
	"sort"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/surface"
)

// Band is a tile's depth class within its block.
type Band int

const (
	BandSidewalk Band = iota
	BandLot
	BandInterior
)

// Lots splits a block into depth bands measured from the road frontage.
type Lots struct {
	Dist     map[geo.Point]int
	Sidewalk []geo.Point
	Lot      []geo.Point // sorted by road distance, nearest first
	Interior []geo.Point // block order
}

// RoadDistances measures every block tile's depth from the road: 1 on the
// frontage, 1 + Manhattan distance to the nearest frontage tile otherwise.
// Blocks without frontage read farAway everywhere.
func RoadDistances(b *Block, surf *surface.Surface) map[geo.Point]int {
	dist := make(map[geo.Point]int, len(b.Tiles))
	minX, minY := b.Tiles[0].X, b.Tiles[0].Y
	maxX, maxY := minX, minY
	for _, p := range b.Tiles {
		minX, maxX = min(minX, p.X), max(maxX, p.X)
		minY, maxY = min(minY, p.Y), max(maxY, p.Y)
	}
	w, h := maxX-minX+1, maxY-minY+1
	origin := geo.Pt(minX, minY)

	frontage := geo.NewTileSet(w, h)
	for _, p := range b.Tiles {
		for _, n := range p.Neighbors() {
			if surf.Has(n) {
				frontage.Add(p.Sub(origin))
				break
			}
		}
	}
	if frontage.Len() == 0 {
		for _, p := range b.Tiles {
			dist[p] = farAway
		}
		return dist
	}

	field := geo.DistanceField(w, h, frontage)
	for _, p := range b.Tiles {
		q := p.Sub(origin)
		dist[p] = 1 + field[q.Y*w+q.X]
	}
	return dist
}

// BandFor classifies a road distance.
func BandFor(d int, lc config.LotConfig) Band {
	switch {
	case d <= lc.SidewalkDepth:
		return BandSidewalk
	case d <= lc.SidewalkDepth+lc.LotDepth:
		return BandLot
	}
	return BandInterior
}

// SplitLots bands the tiles of b.
func SplitLots(b *Block, surf *surface.Surface, lc config.LotConfig) Lots {
	lots := Lots{Dist: RoadDistances(b, surf)}
	for _, p := range b.Tiles {
		switch BandFor(lots.Dist[p], lc) {
		case BandSidewalk:
			lots.Sidewalk = append(lots.Sidewalk, p)
		case BandLot:
			lots.Lot = append(lots.Lot, p)
		default:
			lots.Interior = append(lots.Interior, p)
		}
	}
	sort.SliceStable(lots.Lot, func(i, j int) bool {
		return lots.Dist[lots.Lot[i]] < lots.Dist[lots.Lot[j]]
	})
	return lots
}

// Facing returns the first direction, in N, E, S, W order, whose ray from p
// reaches road surface within reach steps. Buildings with no road in sight
// face south.
func Facing(p geo.Point, surf *surface.Surface, reach int) geo.Dir {
	for _, d := range geo.Dirs {
		for step := 1; step <= reach; step++ {
			if surf.Has(p.Step(d, step)) {
				return d
			}
		}
	}
	return geo.South
}
