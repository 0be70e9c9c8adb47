package region

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
)

const townSeedOffset = 200

// Synthesize builds a demo region: noise terrain plus towns placed on the
// most desirable land.
func Synthesize(cfg config.SynthConfig, seed int64) *Region {
	g := terrain.Synthesize(cfg, seed)
	return &Region{
		Terrain: g.Rows(),
		Towns:   PlaceTowns(g, cfg.TownCount, seed),
	}
}

type townClass struct {
	tier     string
	radius   float64
	minDist  float64
	profiles []string
	density  float64
}

var townClasses = []townClass{
	{"A", 5, 24, []string{"downtown", "metro"}, 0.8},
	{"B", 4, 14, []string{"arts_district", "tourist", "industrial"}, 0.5},
	{"C", 3, 10, []string{"suburb", "suburb", "industrial"}, 0.2},
}

// PlaceTowns scores every inland land tile and seeds up to count towns,
// tier A first, each class keeping its own minimum spacing from all towns
// placed so far.
func PlaceTowns(g *terrain.Grid, count int, seed int64) []Town {
	if count <= 0 {
		return nil
	}
	rng := rand.New(rand.NewSource(seed + townSeedOffset))

	type scored struct {
		p     geo.Point
		score float64
	}
	var candidates []scored
	const margin = 6
	for y := margin; y < g.H-margin; y++ {
		for x := margin; x < g.W-margin; x++ {
			p := geo.Pt(x, y)
			if g.At(p) != terrain.Land {
				continue
			}
			candidates = append(candidates, scored{p, townScore(g, p)})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	numA := min(2+rng.Intn(2), count)
	numB := min(count/3, count-numA)
	quota := []int{numA, numB, count - numA - numB}

	var towns []Town
	for ci, class := range townClasses {
		placed := 0
		for _, c := range candidates {
			if placed >= quota[ci] {
				break
			}
			if tooClose(c.p, towns, class.minDist) {
				continue
			}
			towns = append(towns, Town{
				ID:      fmt.Sprintf("town_%02d", len(towns)+1),
				X:       c.p.X,
				Y:       c.p.Y,
				Tier:    class.tier,
				Radius:  class.radius,
				Profile: class.profiles[rng.Intn(len(class.profiles))],
				Density: class.density + rng.Float64()*0.2,
			})
			placed++
		}
	}
	return towns
}

// townScore prefers flat land with water nearby and few mountains.
func townScore(g *terrain.Grid, p geo.Point) float64 {
	water, land, mountain := 0, 0, 0
	for dy := -3; dy <= 3; dy++ {
		for dx := -3; dx <= 3; dx++ {
			switch g.At(geo.Pt(p.X+dx, p.Y+dy)) {
			case terrain.Ocean, terrain.River, terrain.Coast:
				water++
			case terrain.Mountain:
				mountain++
			default:
				land++
			}
		}
	}
	return 3 + 0.5*float64(min(water, 4)) + 0.1*float64(land) - 0.2*float64(mountain)
}

func tooClose(p geo.Point, towns []Town, minDist float64) bool {
	for _, t := range towns {
		if geo.Distance(p, geo.Pt(t.X, t.Y)) < minDist {
			return true
		}
	}
	return false
}
