package terrain

import "github.com/Lrrr908/sewer-showdown/pkg/geo"

// Water holds the open-water tiles of a grid and the subset a road may
// bridge.
type Water struct {
	Tiles      *geo.TileSet
	Bridgeable *geo.TileSet
}

// AnalyzeWater collects ocean and river tiles and marks as bridgeable every
// tile of a maximal horizontal or vertical water run of length 1..maxSpan
// that has a non-water tile inside the grid at both ends. Runs touching the
// grid edge have no confirmed far bank and never qualify.
func AnalyzeWater(g *Grid, maxSpan int) *Water {
	w := &Water{Tiles: g.NewTileSet(), Bridgeable: g.NewTileSet()}
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			if g.At(geo.Pt(x, y)).IsWater() {
				w.Tiles.Add(geo.Pt(x, y))
			}
		}
	}

	for y := 0; y < g.H; y++ {
		w.markRuns(geo.Pt(0, y), geo.East, g.W, maxSpan)
	}
	for x := 0; x < g.W; x++ {
		w.markRuns(geo.Pt(x, 0), geo.South, g.H, maxSpan)
	}
	return w
}

// markRuns walks one row or column of length n starting at origin.
func (w *Water) markRuns(origin geo.Point, d geo.Dir, n, maxSpan int) {
	i := 0
	for i < n {
		if !w.Tiles.Has(origin.Step(d, i)) {
			i++
			continue
		}
		end := i
		for end < n && w.Tiles.Has(origin.Step(d, end)) {
			end++
		}
		run := end - i
		if i > 0 && end < n && run >= 1 && run <= maxSpan {
			for j := i; j < end; j++ {
				w.Bridgeable.Add(origin.Step(d, j))
			}
		}
		i = end
	}
}

// Has reports whether p is open water.
func (w *Water) Has(p geo.Point) bool { return w.Tiles.Has(p) }

// CanBridge reports whether p is a bridgeable water tile.
func (w *Water) CanBridge(p geo.Point) bool { return w.Bridgeable.Has(p) }
