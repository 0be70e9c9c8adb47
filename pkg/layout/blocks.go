// Package layout turns the road surface into urban fabric: blocks and parks,
// zoning, lot bands, background buildings, catalog buildings and the infill
// around them.
package layout

import (
	"fmt"
	"math"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/surface"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

// Block is a 4-connected region of buildable tiles bounded by roads, water or
// the edge of the urban area.
type Block struct {
	ID    int
	Tiles []geo.Point // flood-fill order
	Town  int         // nearest town index, -1 when there are no towns
	Zone  ZoneType

	// Centroid and RelDist are filled by Classify.
	CX, CY  float64
	RelDist float64
}

// Len returns the block's tile count.
func (b *Block) Len() int { return len(b.Tiles) }

// UrbanMask marks every tile within a town's urban radius.
func UrbanMask(w, h int, towns []region.Town, cfg config.Config) *geo.TileSet {
	mask := geo.NewTileSet(w, h)
	for _, t := range towns {
		r := cfg.UrbanRadius(t.Tier, t.Radius)
		reach := int(math.Abs(r)) + 1
		for dy := -reach; dy <= reach; dy++ {
			for dx := -reach; dx <= reach; dx++ {
				if float64(dx*dx+dy*dy) <= r*r {
					mask.Add(geo.Pt(t.X+dx, t.Y+dy))
				}
			}
		}
	}
	return mask
}

// ExtractBlocks flood-fills the urban tiles left between roads and water.
// Regions of at least MinBlockArea tiles become blocks; smaller regions of at
// least MinParkArea tiles become parks; the rest is discarded.
func ExtractBlocks(g *terrain.Grid, water *terrain.Water, surf *surface.Surface, urban *geo.TileSet, bc config.BlockConfig) (blocks, parks []Block, report *validation.Report) {
	report = validation.NewReport()
	visited := geo.NewTileSet(g.W, g.H)

	open := func(p geo.Point) bool {
		return g.InBounds(p) &&
			!visited.Has(p) &&
			urban.Has(p) &&
			!surf.Has(p) &&
			!water.Has(p) &&
			g.At(p).IsBuildable()
	}

	discarded := 0
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			start := geo.Pt(x, y)
			if !open(start) {
				continue
			}
			visited.Add(start)
			tiles := []geo.Point{start}
			for head := 0; head < len(tiles); head++ {
				for _, n := range tiles[head].Neighbors() {
					if open(n) {
						visited.Add(n)
						tiles = append(tiles, n)
					}
				}
			}

			switch {
			case len(tiles) >= bc.MinBlockArea:
				blocks = append(blocks, Block{ID: len(blocks), Tiles: tiles, Town: -1})
			case len(tiles) >= bc.MinParkArea:
				parks = append(parks, Block{ID: len(parks), Tiles: tiles, Town: -1})
			default:
				discarded++
			}
		}
	}

	report.AddInfo(validation.Result{
		Level:   validation.LevelBlocks,
		Message: fmt.Sprintf("extracted %d blocks and %d parks (%d slivers discarded)", len(blocks), len(parks), discarded),
	})
	return blocks, parks, report
}

// TileSet collects the tiles of every block into one set.
func TileSet(w, h int, blocks []Block) *geo.TileSet {
	s := geo.NewTileSet(w, h)
	for _, b := range blocks {
		for _, p := range b.Tiles {
			s.Add(p)
		}
	}
	return s
}
