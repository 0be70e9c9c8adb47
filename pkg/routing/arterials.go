package routing

import (
	"fmt"
	"math"
	"sort"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

// ArterialEdges returns the town pairs the arterial pass connects: a minimum
// spanning tree by Euclidean distance followed by the cheapest non-tree
// pairs closer than CrossLinkMaxDist, at most CrossLinkFraction of the tree
// size.
func ArterialEdges(towns []region.Town, rc config.RoadConfig) (tree, cross []Edge) {
	dist := func(i, j int) float64 {
		return geo.Distance(geo.Pt(towns[i].X, towns[i].Y), geo.Pt(towns[j].X, towns[j].Y))
	}
	tree = MST(len(towns), dist)

	inTree := make(map[Edge]bool, len(tree))
	for _, e := range tree {
		inTree[Edge{min(e.I, e.J), max(e.I, e.J)}] = true
	}

	var pairs []weightedEdge
	for i := 0; i < len(towns); i++ {
		for j := i + 1; j < len(towns); j++ {
			if inTree[Edge{i, j}] {
				continue
			}
			if d := dist(i, j); d < rc.CrossLinkMaxDist {
				pairs = append(pairs, weightedEdge{d, i, j})
			}
		}
	}
	sort.Slice(pairs, func(a, b int) bool { return edgeHeap(pairs).Less(a, b) })

	limit := int(math.Floor(float64(len(tree)) * rc.CrossLinkFraction))
	for _, p := range pairs {
		if len(cross) >= limit {
			break
		}
		cross = append(cross, Edge{p.i, p.j})
	}
	return tree, cross
}

// Arterials realizes every arterial edge as an A* path. Highway centerlines
// are cheap to reuse and are subtracted from the result.
func Arterials(g *terrain.Grid, water *terrain.Water, towns []region.Town, highways *geo.TileSet, rc config.RoadConfig) (*geo.TileSet, *validation.Report) {
	report := validation.NewReport()
	centerlines := g.NewTileSet()

	tree, cross := ArterialEdges(towns, rc)
	cost := arterialCost(g, water, highways, rc)

	skipped := 0
	for _, e := range append(append([]Edge(nil), tree...), cross...) {
		a, b := towns[e.I], towns[e.J]
		path := FindPath(g.W, g.H, geo.Pt(a.X, a.Y), geo.Pt(b.X, b.Y), cost, rc.TurnPenalty)
		if path == nil {
			skipped++
			report.AddInfo(validation.Result{
				Level:   validation.LevelRoads,
				Message: fmt.Sprintf("arterial link %s -> %s is unroutable", a.ID, b.ID),
			})
			continue
		}
		for _, p := range path {
			centerlines.Add(p)
		}
	}
	centerlines.RemoveAll(highways)

	report.AddInfo(validation.Result{
		Level:   validation.LevelRoads,
		Message: fmt.Sprintf("arterial backbone: %d tree + %d cross-link edges, %d centerline tiles, %d links skipped", len(tree), len(cross), centerlines.Len(), skipped),
	})
	return centerlines, report
}
