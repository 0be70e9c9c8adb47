package pipeline

import (
	"time"

	"github.com/Lrrr908/sewer-showdown/pkg/layout"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/routing"
)

// Stats summarizes a run.
type Stats struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Towns  int `json:"towns"`

	Centerlines map[string]int `json:"centerlines"`
	Surface     map[string]int `json:"surface"`
	Bridges     int            `json:"bridges"`

	Blocks     int            `json:"blocks"`
	BlockTiles int            `json:"block_tiles"`
	Parks      int            `json:"parks"`
	ParkTiles  int            `json:"park_tiles"`
	Graded     int            `json:"graded"`
	Zones      map[string]int `json:"zones"`

	Buildings       int            `json:"buildings"`
	BuildingsByZone map[string]int `json:"buildings_by_zone"`
	BuildingsByKind map[string]int `json:"buildings_by_kind"`
	Rotated         int            `json:"rotated"`
	CornerUpgrades  int            `json:"corner_upgrades"`
	Neighborhood    int            `json:"neighborhood"`

	Specials          int `json:"specials"`
	SpecialsRequested int `json:"specials_requested"`

	Elapsed time.Duration `json:"elapsed_ns"`
}

func collectStats(res *Result, towns []region.Town, graded, infill, requested int) Stats {
	s := Stats{
		Width:             res.Grid.W,
		Height:            res.Grid.H,
		Towns:             len(towns),
		Centerlines:       make(map[string]int),
		Surface:           make(map[string]int),
		Bridges:           res.Surface.Bridges(),
		Blocks:            len(res.Blocks),
		Parks:             len(res.Parks),
		Graded:            graded,
		Zones:             make(map[string]int),
		Buildings:         len(res.Buildings),
		BuildingsByZone:   make(map[string]int),
		BuildingsByKind:   make(map[string]int),
		Neighborhood:      infill,
		Specials:          len(res.Specials),
		SpecialsRequested: requested,
	}
	for _, c := range routing.Classes {
		s.Centerlines[c.String()] = res.Graph.Count(c)
		s.Surface[c.String()] = res.Surface.Count(c)
	}
	for _, b := range res.Blocks {
		s.BlockTiles += b.Len()
		s.Zones[string(b.Zone)]++
	}
	for _, p := range res.Parks {
		s.ParkTiles += p.Len()
	}
	for _, b := range res.Buildings {
		s.BuildingsByZone[string(b.Zone)]++
		s.BuildingsByKind[b.Kind]++
		if b.Rotated {
			s.Rotated++
		}
		if b.Corner {
			s.CornerUpgrades++
		}
	}
	return s
}

// ZoneOrder lists zones in display order.
func ZoneOrder() []string {
	out := make([]string, len(layout.Zones))
	for i, z := range layout.Zones {
		out[i] = string(z)
	}
	return out
}
