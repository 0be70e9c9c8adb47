package routing

import "github.com/Lrrr908/sewer-showdown/pkg/geo"

// Centerline is one tile of the road graph. Mask has a bit set for every
// cardinal neighbor that is also a centerline, regardless of class.
type Centerline struct {
	geo.Point
	Class Class
	Mask  uint8
}

// Graph is the union of the three centerline passes.
type Graph struct {
	W, H     int
	Highway  *geo.TileSet
	Arterial *geo.TileSet
	Local    *geo.TileSet
	All      *geo.TileSet

	// Tiles are sorted row-major.
	Tiles []Centerline
}

// BuildGraph merges the centerline sets, computes each tile's connectivity
// mask and tags it with the highest class that claimed it.
func BuildGraph(w, h int, highway, arterial, local *geo.TileSet) *Graph {
	all := geo.NewTileSet(w, h)
	all.AddAll(highway)
	all.AddAll(arterial)
	all.AddAll(local)

	g := &Graph{W: w, H: h, Highway: highway, Arterial: arterial, Local: local, All: all}
	g.Tiles = make([]Centerline, 0, all.Len())
	all.Each(func(p geo.Point) {
		var mask uint8
		for _, d := range geo.Dirs {
			if all.Has(p.Add(d.Delta())) {
				mask |= d.Bit()
			}
		}
		g.Tiles = append(g.Tiles, Centerline{Point: p, Class: g.ClassAt(p), Mask: mask})
	})
	return g
}

// ClassAt returns the class of the centerline at p, or None.
func (g *Graph) ClassAt(p geo.Point) Class {
	switch {
	case g.Highway.Has(p):
		return Highway
	case g.Arterial.Has(p):
		return Arterial
	case g.Local.Has(p):
		return Local
	}
	return None
}

// Count returns the number of centerline tiles of class c.
func (g *Graph) Count(c Class) int {
	switch c {
	case Highway:
		return g.Highway.Len()
	case Arterial:
		return g.Arterial.Len()
	case Local:
		return g.Local.Len()
	}
	return 0
}
