package terrain

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
)

// Seed offsets for the synthetic terrain layers.
const (
	elevationSeedOffset = 101
	moistureSeedOffset  = 102
	riverSeedOffset     = 211
)

// Synthesize generates an island-style terrain grid from layered simplex
// noise. Elevation falls off toward the grid edge so the border is always
// ocean; rivers descend from wet highlands toward the sea with a Perlin
// meander term.
func Synthesize(cfg config.SynthConfig, seed int64) *Grid {
	w, h := cfg.Width, cfg.Height
	g := NewGrid(w, h, Land)
	if w <= 0 || h <= 0 {
		return g
	}

	elevNoise := opensimplex.NewNormalized(seed + elevationSeedOffset)
	moistNoise := opensimplex.NewNormalized(seed + moistureSeedOffset)

	elev := make([]float64, w*h)
	moist := make([]float64, w*h)
	cx := math.Max(float64(w-1)/2, 1)
	cy := math.Max(float64(h-1)/2, 1)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			fx, fy := float64(x), float64(y)
			e := octaveNoise(elevNoise, fx, fy, 4, 0.04, 0.5)

			// Continental shaping: push the rim under sea level.
			edge := math.Max(math.Abs(fx-cx)/cx, math.Abs(fy-cy)/cy)
			e *= math.Max(0, 1-math.Pow(edge, 4))

			i := y*w + x
			elev[i] = e
			moist[i] = octaveNoise(moistNoise, fx, fy, 3, 0.05, 0.5)

			switch {
			case e < cfg.SeaLevel:
				g.cells[i] = Ocean
			case e > cfg.MountainLvl:
				g.cells[i] = Mountain
			}
		}
	}

	markCoast(g, elev, cfg)
	placeRivers(g, elev, moist, cfg, seed)
	return g
}

// markCoast converts low land bordering the ocean into coast.
func markCoast(g *Grid, elev []float64, cfg config.SynthConfig) {
	var coast []geo.Point
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			p := geo.Pt(x, y)
			if g.At(p) != Land {
				continue
			}
			low := elev[y*g.W+x] < cfg.SeaLevel+cfg.CoastBand
			for _, n := range p.Neighbors() {
				if g.InBounds(n) && g.At(n) == Ocean {
					low = true
					break
				}
			}
			if low {
				coast = append(coast, p)
			}
		}
	}
	for _, p := range coast {
		g.Set(p, Coast)
	}
}

func placeRivers(g *Grid, elev, moist []float64, cfg config.SynthConfig, seed int64) {
	if cfg.RiverCount <= 0 {
		return
	}
	rng := rand.New(rand.NewSource(seed + riverSeedOffset))
	meander := perlin.NewPerlin(2, 2, 3, seed+riverSeedOffset)

	highland := cfg.SeaLevel + (cfg.MountainLvl-cfg.SeaLevel)*0.6
	var sources []geo.Point
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			i := y*g.W + x
			if g.cells[i] != Ocean && elev[i] > highland && moist[i] > 0.5 {
				sources = append(sources, geo.Pt(x, y))
			}
		}
	}
	rng.Shuffle(len(sources), func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})
	if len(sources) > cfg.RiverCount {
		sources = sources[:cfg.RiverCount]
	}

	for _, start := range sources {
		traceRiver(g, elev, meander, start)
	}
}

// traceRiver follows the lowest unvisited neighbor from start until it
// reaches the ocean or climbs out of a basin.
func traceRiver(g *Grid, elev []float64, meander *perlin.Perlin, start geo.Point) {
	visited := g.NewTileSet()
	cur := start
	for step := 0; step < g.W+g.H; step++ {
		visited.Add(cur)
		k := g.At(cur)
		if k == Ocean {
			return
		}
		if k != Mountain {
			g.Set(cur, River)
		}

		here := elev[cur.Y*g.W+cur.X]
		best, bestScore := cur, math.Inf(1)
		for _, n := range cur.Neighbors() {
			if !g.InBounds(n) || visited.Has(n) {
				continue
			}
			score := elev[n.Y*g.W+n.X] + 0.04*meander.Noise2D(float64(n.X)*0.15, float64(n.Y)*0.15)
			if score < bestScore {
				best, bestScore = n, score
			}
		}
		if best == cur || elev[best.Y*g.W+best.X] > here+0.05 {
			return
		}
		cur = best
	}
}

// octaveNoise layers several noise frequencies into fractal noise in [0,1].
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxVal
}
