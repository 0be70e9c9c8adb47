// Package pipeline runs the generation phases over a region: roads, surface,
// blocks, grading, zoning, catalog buildings, neighborhood infill and lot
// buildings, and writes the results back into the region document.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/Lrrr908/sewer-showdown/pkg/catalog"
	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/layout"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/routing"
	"github.com/Lrrr908/sewer-showdown/pkg/surface"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

var (
	ErrEmptyTerrain  = errors.New("terrain grid is empty")
	ErrJaggedTerrain = errors.New("terrain grid is not rectangular")
	ErrNoTowns       = errors.New("region has no towns")
	ErrInvalidRegion = errors.New("region failed validation")
	ErrInvalidConfig = errors.New("configuration failed validation")
)

// Result holds every intermediate layer of a run.
type Result struct {
	Grid     *terrain.Grid
	Water    *terrain.Water
	Graph    *routing.Graph
	Surface  *surface.Surface
	Blocks   []layout.Block
	Parks    []layout.Block
	Specials []layout.Special
	// Buildings lists the lot buildings followed by the neighborhood infill.
	Buildings []layout.Building
	Stats     Stats
}

// Generate runs the full pipeline on rg and overwrites its terrain, road and
// building layers. A nil catalog places no catalog buildings. Structural
// problems with the input or config abort the run with a wrapped sentinel
// error and an invalid report; everything else is reported and survived.
func Generate(rg *region.Region, cfg config.Config, cat *catalog.Catalog) (*Result, *validation.Report, error) {
	start := time.Now()

	report := validation.ValidateConfig(cfg)
	if !report.Valid {
		return nil, report, fmt.Errorf("%w: %s", ErrInvalidConfig, report.Summary)
	}

	grid, err := checkInput(rg, report)
	if err != nil {
		return nil, report, err
	}
	towns := rg.Towns

	water := terrain.AnalyzeWater(grid, cfg.Terrain.MaxBridgeSpan)
	slog.Info("terrain analyzed",
		"width", grid.W, "height", grid.H,
		"water", water.Tiles.Len(), "bridgeable", water.Bridgeable.Len())

	graph, r := routing.BuildNetwork(grid, water, towns, cfg)
	report.Merge(r)

	surf := surface.Expand(graph, water)
	slog.Info("surface expanded", "tiles", surf.Len(), "bridges", surf.Bridges())

	urban := layout.UrbanMask(grid.W, grid.H, towns, cfg)
	blocks, parks, r := layout.ExtractBlocks(grid, water, surf, urban, cfg.Blocks)
	report.Merge(r)

	graded := terrain.Grade(grid,
		layout.TileSet(grid.W, grid.H, blocks),
		layout.TileSet(grid.W, grid.H, parks),
		surf.Set())

	report.Merge(layout.Classify(blocks, towns, surf, water, cfg))
	slog.Info("blocks zoned", "blocks", len(blocks), "parks", len(parks), "graded", graded)

	assignment := make(catalog.Assignment)
	if cat != nil {
		assignment, r = cat.Assign(towns, phaseRNG(cfg.Seed, cfg.Special.SeedOffset))
		report.Merge(r)
	}

	site := layout.NewSite(grid, water, surf, cfg)
	specials, r := layout.PlaceSpecial(assignment, blocks, towns, site, cfg)
	report.Merge(r)

	infill, r := layout.FillNeighborhoods(specials, towns, site, phaseRNG(cfg.Seed, cfg.Special.FillSeedOffset), cfg)
	report.Merge(r)

	lots, r := layout.PlaceBuildings(blocks, towns, site, phaseRNG(cfg.Seed, 0), cfg)
	report.Merge(r)

	buildings := make([]layout.Building, 0, len(lots)+len(infill))
	buildings = append(buildings, lots...)
	buildings = append(buildings, infill...)
	slog.Info("buildings placed",
		"lots", len(lots), "neighborhood", len(infill),
		"catalog", len(specials), "requested", assignment.Len())

	res := &Result{
		Grid:      grid,
		Water:     water,
		Graph:     graph,
		Surface:   surf,
		Blocks:    blocks,
		Parks:     parks,
		Specials:  specials,
		Buildings: buildings,
	}
	res.Stats = collectStats(res, towns, graded, len(infill), assignment.Len())
	res.Stats.Elapsed = time.Since(start)

	write(rg, res)
	return res, report, nil
}

// phaseRNG seeds an independent source for one phase.
func phaseRNG(seed, offset int64) *rand.Rand {
	return rand.New(rand.NewSource(seed + offset))
}

// checkInput builds the grid and rejects regions the pipeline cannot run on.
func checkInput(rg *region.Region, report *validation.Report) (*terrain.Grid, error) {
	grid, err := terrain.FromRows(rg.Terrain)
	switch {
	case errors.Is(err, terrain.ErrEmpty):
		report.AddError(validation.Result{Level: validation.LevelTerrain, Message: err.Error(), Path: region.KeyTerrain})
		return nil, fmt.Errorf("%w: %w", ErrEmptyTerrain, err)
	case err != nil:
		report.AddError(validation.Result{Level: validation.LevelTerrain, Message: err.Error(), Path: region.KeyTerrain})
		return nil, fmt.Errorf("%w: %w", ErrJaggedTerrain, err)
	}
	if len(rg.Towns) == 0 {
		report.AddError(validation.Result{Level: validation.LevelTerrain, Message: "region has no towns", Path: region.KeyTowns})
		return nil, ErrNoTowns
	}

	// Only the inputs are checked; the generated layers are about to be
	// replaced.
	r := validation.ValidateRegion(&region.Region{Terrain: rg.Terrain, Towns: rg.Towns})
	report.Merge(r)
	if !r.Valid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRegion, r.Summary)
	}
	return grid, nil
}

// write replaces the region's generated layers with the run's output.
func write(rg *region.Region, res *Result) {
	rg.Terrain = res.Grid.Rows()

	rg.RoadGraph = make([]region.RoadNode, 0, len(res.Graph.Tiles))
	for _, c := range res.Graph.Tiles {
		rg.RoadGraph = append(rg.RoadGraph, region.RoadNode{X: c.X, Y: c.Y, Class: c.Class.String(), Mask: c.Mask})
	}

	rg.RoadTiles = make([]region.RoadTile, 0, res.Surface.Len())
	res.Surface.Each(func(t surface.Tile) {
		rg.RoadTiles = append(rg.RoadTiles, region.RoadTile{X: t.X, Y: t.Y, Class: t.Class.String(), Bridge: t.Bridge})
	})

	rg.Buildings = make([]region.Building, 0, len(res.Buildings))
	for _, b := range res.Buildings {
		rg.Buildings = append(rg.Buildings, b.Record())
	}

	rg.Placements = make([]region.Placement, 0, len(res.Specials))
	for _, s := range res.Specials {
		rg.Placements = append(rg.Placements, s.Record())
	}
}
