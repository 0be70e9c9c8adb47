package layout

import (
	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/surface"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
)

// Site is the placement context shared by every building pass: the static
// terrain, water and road surface plus the running footprint occupancy.
type Site struct {
	Grid     *terrain.Grid
	Water    *terrain.Water
	Surface  *surface.Surface
	Occupied *geo.TileSet

	cfg config.Config
}

// NewSite creates a site with nothing occupied.
func NewSite(g *terrain.Grid, water *terrain.Water, surf *surface.Surface, cfg config.Config) *Site {
	return &Site{
		Grid:     g,
		Water:    water,
		Surface:  surf,
		Occupied: geo.NewTileSet(g.W, g.H),
		cfg:      cfg,
	}
}

// Free reports whether a building could stand on p ignoring footprints:
// in bounds, off the road, dry and buildable.
func (s *Site) Free(p geo.Point) bool {
	return s.Grid.InBounds(p) &&
		!s.Surface.Has(p) &&
		!s.Water.Has(p) &&
		s.Grid.At(p).IsBuildable()
}

// Footprint returns the tiles covered by kind anchored at its south-west
// corner p: columns x..x+w-1, rows y-h+1..y.
func (s *Site) Footprint(p geo.Point, kind string, rotated bool) []geo.Point {
	w, h := s.cfg.Footprint(kind, rotated)
	out := make([]geo.Point, 0, w*h)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			out = append(out, geo.Pt(p.X+dx, p.Y-dy))
		}
	}
	return out
}

// CanPlace reports whether kind fits at p: every footprint tile is free and
// unoccupied, and the BuildingGap ring around the footprint is unoccupied.
func (s *Site) CanPlace(p geo.Point, kind string, rotated bool) bool {
	w, h := s.cfg.Footprint(kind, rotated)
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			t := geo.Pt(p.X+dx, p.Y-dy)
			if !s.Free(t) || s.Occupied.Has(t) {
				return false
			}
		}
	}
	gap := s.cfg.Lots.BuildingGap
	for dy := -gap; dy < h+gap; dy++ {
		for dx := -gap; dx < w+gap; dx++ {
			if dx >= 0 && dx < w && dy >= 0 && dy < h {
				continue
			}
			if s.Occupied.Has(geo.Pt(p.X+dx, p.Y-dy)) {
				return false
			}
		}
	}
	return true
}

// Occupy marks the footprint of kind at p.
func (s *Site) Occupy(p geo.Point, kind string, rotated bool) {
	for _, t := range s.Footprint(p, kind, rotated) {
		s.Occupied.Add(t)
	}
}

// Release clears the footprint of kind at p.
func (s *Site) Release(p geo.Point, kind string, rotated bool) {
	for _, t := range s.Footprint(p, kind, rotated) {
		s.Occupied.Remove(t)
	}
}

// RoadAdjacent reports whether any 4-neighbor of p is road surface.
func (s *Site) RoadAdjacent(p geo.Point) bool {
	for _, n := range p.Neighbors() {
		if s.Surface.Has(n) {
			return true
		}
	}
	return false
}
