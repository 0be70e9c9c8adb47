package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lrrr908/sewer-showdown/internal/store"
	"github.com/Lrrr908/sewer-showdown/pkg/region"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
)

func writeProject(t *testing.T, towns []region.Town) string {
	t.Helper()
	dir := t.TempDir()
	g := terrain.NewGrid(48, 32, terrain.Land)
	rg := &region.Region{Terrain: g.Rows(), Towns: towns}
	require.NoError(t, region.Save(filepath.Join(dir, "region.json"), rg))
	return dir
}

func defaultTowns() []region.Town {
	return []region.Town{
		{ID: "a", X: 12, Y: 16, Tier: "A", Radius: 3, Profile: "downtown", Density: 1},
		{ID: "b", X: 36, Y: 16, Tier: "C", Radius: 3, Profile: "suburb", Density: 0.4},
	}
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRegionEndpoint(t *testing.T) {
	srv := New(writeProject(t, defaultTowns()), 0, nil)
	rec := do(t, srv.Handler(), http.MethodGet, "/api/region")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Contains(t, doc, region.KeyTerrain)
	assert.Contains(t, doc, region.KeyTowns)
}

func TestRegionEndpointMissingProject(t *testing.T) {
	srv := New(t.TempDir(), 0, nil)
	rec := do(t, srv.Handler(), http.MethodGet, "/api/region")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestValidationEndpoint(t *testing.T) {
	srv := New(writeProject(t, defaultTowns()), 0, nil)
	rec := do(t, srv.Handler(), http.MethodGet, "/api/validation")
	require.Equal(t, http.StatusOK, rec.Code)

	var report struct {
		Valid    bool              `json:"valid"`
		Warnings []json.RawMessage `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.True(t, report.Valid)
	assert.Len(t, report.Warnings, 1, "missing catalog is a warning")
}

func TestGenerateEndpointSavesAndRecords(t *testing.T) {
	dir := writeProject(t, defaultTowns())
	history, err := store.Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer history.Close()

	h := New(dir, 0, history).Handler()
	rec := do(t, h, http.MethodPost, "/api/generate?save=true")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		RunID string `json:"run_id"`
		Saved bool   `json:"saved"`
		Stats struct {
			Buildings int `json:"buildings"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Saved)
	assert.NotEmpty(t, resp.RunID)

	rg, err := region.Load(filepath.Join(dir, "region.json"))
	require.NoError(t, err)
	assert.Equal(t, resp.Stats.Buildings, len(rg.Buildings))
	assert.NotEmpty(t, rg.RoadTiles)

	rec = do(t, h, http.MethodGet, "/api/history")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), resp.RunID)
}

func TestGenerateEndpointRejectsBadRegion(t *testing.T) {
	srv := New(writeProject(t, nil), 0, nil)
	rec := do(t, srv.Handler(), http.MethodPost, "/api/generate")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "no towns")
}

func TestMetricsEndpoint(t *testing.T) {
	h := New(writeProject(t, defaultTowns()), 0, nil).Handler()
	require.Equal(t, http.StatusOK, do(t, h, http.MethodPost, "/api/generate").Code)

	rec := do(t, h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `urbanplan_generate_runs_total{result="ok"} 1`), body)
	assert.Contains(t, body, "urbanplan_http_request_duration_seconds")
}

func TestHistoryDisabled(t *testing.T) {
	h := New(t.TempDir(), 0, nil).Handler()
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/api/history").Code)
}
