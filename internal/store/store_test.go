package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lrrr908/sewer-showdown/pkg/pipeline"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/validation"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleRegion() *region.Region {
	return &region.Region{
		Terrain: [][]int{{2, 2, 2}, {2, 2, 2}},
		Towns:   []region.Town{{ID: "t1", X: 1, Y: 1}},
		RoadTiles: []region.RoadTile{
			{X: 0, Y: 0, Class: "local"},
		},
		Buildings: []region.Building{
			{X: 1, Y: 1, Kind: "shop", Zone: "commercial", Facing: "n", Floors: 3, ColorVariant: 2},
			{X: 2, Y: 1, Kind: "mall", Zone: "commercial", Facing: "s", Floors: 1, Rotated: true},
		},
		Placements: []region.Placement{{BuildingID: "bld_a", X: 0, Y: 1}},
	}
}

func TestRecordAndFetch(t *testing.T) {
	s := openTemp(t)
	report := validation.NewReport()
	report.AddWarning(validation.Result{Message: "w"})
	stats := pipeline.Stats{Buildings: 2, Zones: map[string]int{"commercial": 1}}

	id, err := s.Record("demo", 42, sampleRegion(), stats, report)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	run, err := s.Run(id)
	require.NoError(t, err)
	assert.Equal(t, "demo", run.Project)
	assert.Equal(t, int64(42), run.Seed)
	assert.Equal(t, 3, run.Width)
	assert.Equal(t, 2, run.Height)
	assert.Equal(t, 2, run.Buildings)
	assert.Equal(t, 1, run.Specials)
	assert.Equal(t, 1, run.Warnings)
	assert.True(t, run.Valid)

	got, err := run.Stats()
	require.NoError(t, err)
	assert.Equal(t, 1, got.Zones["commercial"])

	buildings, err := s.Buildings(id)
	require.NoError(t, err)
	assert.Equal(t, sampleRegion().Buildings, buildings)
}

func TestRunsNewestFirst(t *testing.T) {
	s := openTemp(t)
	first, err := s.Record("a", 1, sampleRegion(), pipeline.Stats{}, validation.NewReport())
	require.NoError(t, err)
	second, err := s.Record("b", 2, sampleRegion(), pipeline.Stats{}, validation.NewReport())
	require.NoError(t, err)

	runs, err := s.Runs(10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].ID)
	assert.Equal(t, first, runs[1].ID)

	runs, err = s.Runs(1)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}

func TestUnknownRun(t *testing.T) {
	s := openTemp(t)
	_, err := s.Run("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
