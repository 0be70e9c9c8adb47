// Package surface widens the one-tile centerline graph into the two-tile road
// surface that blocks are carved around.
package surface

import (
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/routing"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
)

// Tile is one road surface tile. Bridge is set when the tile lies on water.
type Tile struct {
	geo.Point
	Class  routing.Class
	Bridge bool
}

// Surface is a dense class map over the region grid.
type Surface struct {
	W, H    int
	classes []routing.Class
	bridges *geo.TileSet
	n       int
}

// Expand widens every centerline. Tiles with only north/south neighbors
// widen one column east, tiles with only east/west neighbors widen one row
// south, junctions fill the 2x2 block anchored at the tile and isolated tiles
// follow the vertical rule. Where expansions overlap the higher class wins.
// Tiles falling outside the grid are dropped.
func Expand(graph *routing.Graph, water *terrain.Water) *Surface {
	s := &Surface{
		W:       graph.W,
		H:       graph.H,
		classes: make([]routing.Class, graph.W*graph.H),
		bridges: geo.NewTileSet(graph.W, graph.H),
	}
	for _, c := range graph.Tiles {
		for _, p := range footprint(c) {
			s.claim(p, c.Class)
		}
	}
	s.Each(func(t Tile) {
		if water.Has(t.Point) {
			s.bridges.Add(t.Point)
		}
	})
	return s
}

func footprint(c routing.Centerline) []geo.Point {
	ns := c.Mask&(geo.MaskN|geo.MaskS) != 0
	ew := c.Mask&(geo.MaskE|geo.MaskW) != 0
	p := c.Point
	east, south := p.Step(geo.East, 1), p.Step(geo.South, 1)
	switch {
	case ns && ew:
		return []geo.Point{p, east, south, east.Step(geo.South, 1)}
	case ew:
		return []geo.Point{p, south}
	default:
		return []geo.Point{p, east}
	}
}

func (s *Surface) claim(p geo.Point, c routing.Class) {
	if !s.InBounds(p) {
		return
	}
	i := p.Y*s.W + p.X
	if s.classes[i] == routing.None {
		s.n++
	}
	if c > s.classes[i] {
		s.classes[i] = c
	}
}

// InBounds reports whether p lies on the grid.
func (s *Surface) InBounds(p geo.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.W && p.Y < s.H
}

// ClassAt returns the surface class at p, None off the road.
func (s *Surface) ClassAt(p geo.Point) routing.Class {
	if !s.InBounds(p) {
		return routing.None
	}
	return s.classes[p.Y*s.W+p.X]
}

// Has reports whether p is road surface.
func (s *Surface) Has(p geo.Point) bool {
	return s.ClassAt(p) != routing.None
}

// IsMajor reports whether p is highway or arterial surface.
func (s *Surface) IsMajor(p geo.Point) bool {
	return s.ClassAt(p).IsMajor()
}

// IsBridge reports whether the surface tile at p spans water.
func (s *Surface) IsBridge(p geo.Point) bool {
	return s.bridges.Has(p)
}

// Len returns the number of surface tiles.
func (s *Surface) Len() int { return s.n }

// Bridges returns the number of bridge tiles.
func (s *Surface) Bridges() int { return s.bridges.Len() }

// Each calls fn for every surface tile in row-major order.
func (s *Surface) Each(fn func(Tile)) {
	for i, c := range s.classes {
		if c == routing.None {
			continue
		}
		p := geo.Pt(i%s.W, i/s.W)
		fn(Tile{Point: p, Class: c, Bridge: s.bridges.Has(p)})
	}
}

// Tiles returns all surface tiles in row-major order.
func (s *Surface) Tiles() []Tile {
	out := make([]Tile, 0, s.n)
	s.Each(func(t Tile) { out = append(out, t) })
	return out
}

// Set returns the surface tiles of the given classes, or every surface tile
// when no class is given.
func (s *Surface) Set(classes ...routing.Class) *geo.TileSet {
	out := geo.NewTileSet(s.W, s.H)
	s.Each(func(t Tile) {
		if len(classes) == 0 {
			out.Add(t.Point)
			return
		}
		for _, c := range classes {
			if t.Class == c {
				out.Add(t.Point)
				return
			}
		}
	})
	return out
}

// Count returns the number of surface tiles of class c.
func (s *Surface) Count(c routing.Class) int {
	n := 0
	for _, k := range s.classes {
		if k == c {
			n++
		}
	}
	return n
}
