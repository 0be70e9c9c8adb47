package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLookups(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 35.0, cfg.UrbanRadius("A", 10))
	assert.Equal(t, 20.0, cfg.UrbanRadius("Z", 10), "unknown tier uses default multiplier")
	assert.Equal(t, 10, cfg.Spacing("downtown"))
	assert.Equal(t, 12, cfg.Spacing("unknown"))
	assert.True(t, cfg.HasRingRoad("metro"))
	assert.False(t, cfg.HasRingRoad("suburb"))

	w, h := cfg.Footprint("mall", false)
	assert.Equal(t, [2]int{4, 2}, [2]int{w, h})
	w, h = cfg.Footprint("mall", true)
	assert.Equal(t, [2]int{2, 4}, [2]int{w, h})
	w, h = cfg.Footprint("kiosk", false)
	assert.Equal(t, [2]int{1, 1}, [2]int{w, h})

	assert.True(t, cfg.Rotatable("warehouse"))
	assert.False(t, cfg.Rotatable("shop"))
	assert.Equal(t, FloorRange{1, 8}, cfg.FloorRange("commercial"))
	assert.Equal(t, FloorRange{1, 1}, cfg.FloorRange("nowhere"))
	assert.InDelta(t, 0.45, cfg.FillRatio("commercial"), 1e-9)
	assert.True(t, cfg.IsDowntownTier("B"))
	assert.False(t, cfg.IsDowntownTier("C"))
	assert.True(t, cfg.IsCornerKind("gas_station"))
}

func TestLoadOverlaysDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", ProjectFile))
	require.NoError(t, err)

	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, 4.0, cfg.Roads.TurnPenalty)
	assert.Equal(t, 12.0, cfg.Roads.CostBridge, "untouched keys keep defaults")
	assert.Equal(t, 20, cfg.Spacing("suburb"))
	assert.Equal(t, 10, cfg.Spacing("downtown"), "map entries merge per key")
	assert.InDelta(t, 0.5, cfg.FillRatio("sparse"), 1e-9)
	assert.InDelta(t, 0.45, cfg.FillRatio("commercial"), 1e-9)
}

func TestLoadProjectMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadProject(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default().Seed, cfg.Seed)
}

func TestLoadProjectBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ProjectFile), []byte("seed: [oops"), 0o644))
	_, err := LoadProject(dir)
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	dir := t.TempDir()
	path := filepath.Join(dir, ProjectFile)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
