package pipeline

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lrrr908/sewer-showdown/pkg/catalog"
	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
)

// testRegion is a 64x40 landmass with a mountain ridge and a narrow river
// between two towns.
func testRegion() *region.Region {
	g := terrain.NewGrid(64, 40, terrain.Land)
	for y := 0; y < 40; y++ {
		g.Set(pt(31, y), terrain.River)
		g.Set(pt(32, y), terrain.River)
	}
	for x := 5; x < 25; x++ {
		g.Set(pt(x, 6), terrain.Mountain)
	}
	return &region.Region{
		Terrain: g.Rows(),
		Towns: []region.Town{
			{ID: "west", X: 15, Y: 20, Tier: "A", Radius: 4, Profile: "downtown", Density: 1, Artists: []string{"ann.lee"}},
			{ID: "east", X: 48, Y: 20, Tier: "B", Radius: 3, Profile: "suburb", Density: 0.6},
		},
	}
}

func testCatalog() *catalog.Catalog {
	return catalog.New(
		catalog.Entry{ID: "bld_ann", ArtistID: "ann_lee"},
		catalog.Entry{ID: "bld_bo", ArtistID: "bo"},
	)
}

func TestGenerateWritesLayers(t *testing.T) {
	rg := testRegion()
	res, report, err := Generate(rg, config.Default(), testCatalog())
	require.NoError(t, err)
	require.True(t, report.Valid, report.Errors)

	assert.NotEmpty(t, rg.RoadGraph)
	assert.NotEmpty(t, rg.RoadTiles)
	assert.NotEmpty(t, rg.Buildings)
	assert.Len(t, rg.Placements, 2)
	assert.Equal(t, len(rg.Buildings), res.Stats.Buildings)
	assert.Equal(t, 2, res.Stats.SpecialsRequested)

	original := testRegion().Terrain
	for _, rt := range rg.RoadTiles {
		require.True(t, rt.X >= 0 && rt.Y >= 0 && rt.X < 64 && rt.Y < 40, "road tile out of bounds: %+v", rt)
		water := terrain.Kind(original[rt.Y][rt.X]).IsWater()
		assert.Equal(t, water, rt.Bridge, "bridge flag at (%d,%d)", rt.X, rt.Y)
	}
	for i := 1; i < len(rg.RoadTiles); i++ {
		a, b := rg.RoadTiles[i-1], rg.RoadTiles[i]
		assert.True(t, a.Y < b.Y || (a.Y == b.Y && a.X < b.X), "road tiles must be row-major")
	}

	roads := make(map[[2]int]bool, len(rg.RoadTiles))
	for _, rt := range rg.RoadTiles {
		roads[[2]int{rt.X, rt.Y}] = true
	}
	for _, b := range rg.Buildings {
		assert.False(t, roads[[2]int{b.X, b.Y}], "building anchored on a road at (%d,%d)", b.X, b.Y)
		assert.True(t, terrain.Kind(rg.Terrain[b.Y][b.X]).IsBuildable())
	}
}

func TestGenerateGradesUnderRoads(t *testing.T) {
	rg := testRegion()
	_, _, err := Generate(rg, config.Default(), nil)
	require.NoError(t, err)
	for _, rt := range rg.RoadTiles {
		assert.NotEqual(t, int(terrain.Mountain), rg.Terrain[rt.Y][rt.X], "mountain left under road at (%d,%d)", rt.X, rt.Y)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, b := testRegion(), testRegion()
	_, _, err := Generate(a, config.Default(), testCatalog())
	require.NoError(t, err)
	_, _, err = Generate(b, config.Default(), testCatalog())
	require.NoError(t, err)

	ja, err := json.Marshal(a)
	require.NoError(t, err)
	jb, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, string(ja), string(jb))
}

func TestGenerateSeedChangesBuildings(t *testing.T) {
	a, b := testRegion(), testRegion()
	cfg := config.Default()
	_, _, err := Generate(a, cfg, nil)
	require.NoError(t, err)
	cfg.Seed = 7
	_, _, err = Generate(b, cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, a.RoadTiles, b.RoadTiles, "roads do not depend on the seed")
	assert.NotEqual(t, a.Buildings, b.Buildings)
}

func TestGenerateFatalInputs(t *testing.T) {
	bad := config.Default()
	bad.Blocks.MinBlockArea = 1

	outOfBounds := testRegion()
	outOfBounds.Towns[1].X = 500

	cases := []struct {
		name string
		rg   *region.Region
		cfg  config.Config
		want error
	}{
		{"empty terrain", &region.Region{Towns: testRegion().Towns}, config.Default(), ErrEmptyTerrain},
		{"jagged terrain", &region.Region{Terrain: [][]int{{2, 2}, {2}}, Towns: testRegion().Towns}, config.Default(), ErrJaggedTerrain},
		{"no towns", &region.Region{Terrain: testRegion().Terrain}, config.Default(), ErrNoTowns},
		{"town off the map", outOfBounds, config.Default(), ErrInvalidRegion},
		{"invalid config", testRegion(), bad, ErrInvalidConfig},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res, report, err := Generate(c.rg, c.cfg, nil)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, c.want), "got %v, want %v", err, c.want)
			assert.False(t, report.Valid)
			assert.Nil(t, c.rg.Buildings, "failed runs must not write layers")
		})
	}
}

func TestLoadProjectWithoutCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, region.Save(filepath.Join(dir, "region.json"), testRegion()))

	p, report, err := LoadProject(dir)
	require.NoError(t, err)
	assert.Nil(t, p.Catalog)
	assert.Len(t, report.Warnings, 1)
	assert.Equal(t, config.Default().Seed, p.Config.Seed)

	_, _, err = p.Generate()
	require.NoError(t, err)
	require.NoError(t, p.Save())

	reloaded, err := region.Load(p.RegionPath)
	require.NoError(t, err)
	assert.Equal(t, len(p.Region.Buildings), len(reloaded.Buildings))
}

func TestLoadProjectWithCatalog(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, region.Save(filepath.Join(dir, "region.json.zst"), testRegion()))
	cat := `{"buildings":[{"id":"bld_ann","artistId":"ann_lee"}]}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, catalog.ProjectFile), []byte(cat), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ProjectFile), []byte("seed: 9\n"), 0o644))

	p, report, err := LoadProject(dir)
	require.NoError(t, err)
	assert.Empty(t, report.Warnings)
	require.NotNil(t, p.Catalog)
	assert.Equal(t, int64(9), p.Config.Seed)

	res, _, err := p.Generate()
	require.NoError(t, err)
	assert.Equal(t, 1, res.Stats.Specials)
}

func pt(x, y int) geo.Point { return geo.Pt(x, y) }
