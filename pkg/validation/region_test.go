package validation

import (
	"encoding/json"
	"testing"

	"github.com/Lrrr908/sewer-showdown/pkg/region"
)

func validRegion() *region.Region {
	return &region.Region{
		Terrain: [][]int{{2, 2, 2}, {2, 0, 2}},
		Towns:   []region.Town{{ID: "t1", X: 1, Y: 0, Tier: "A", Radius: 3, Profile: "metro"}},
	}
}

func TestValidateRegionValid(t *testing.T) {
	r := ValidateRegion(validRegion())
	if !r.Valid || len(r.Warnings) != 0 {
		t.Errorf("expected clean report, got %s: %v %v", r.Summary, r.Errors, r.Warnings)
	}
}

func TestValidateRegionEmptyTerrain(t *testing.T) {
	rg := validRegion()
	rg.Terrain = nil
	r := ValidateRegion(rg)
	if r.Valid {
		t.Error("empty terrain should be invalid")
	}
}

func TestValidateRegionJagged(t *testing.T) {
	rg := validRegion()
	rg.Terrain = [][]int{{2, 2, 2}, {2}}
	r := ValidateRegion(rg)
	if r.Valid || len(r.Errors) != 1 {
		t.Errorf("jagged grid: valid=%v errors=%d, want invalid with 1 error", r.Valid, len(r.Errors))
	}
}

func TestValidateRegionTowns(t *testing.T) {
	rg := validRegion()
	rg.Towns = nil
	if ValidateRegion(rg).Valid {
		t.Error("zero towns should be invalid")
	}

	rg = validRegion()
	rg.Towns = append(rg.Towns, region.Town{ID: "t1", X: 9, Y: 9, Tier: "Q", Radius: 0})
	r := ValidateRegion(rg)
	if r.Valid {
		t.Error("out-of-bounds town should be invalid")
	}
	if len(r.Warnings) != 3 {
		t.Errorf("warnings = %d, want 3 (tier, radius, duplicate id)", len(r.Warnings))
	}
}

func TestValidateRegionLayers(t *testing.T) {
	rg := validRegion()
	rg.RoadTiles = []region.RoadTile{{X: 3, Y: 0, Class: "local"}, {X: 0, Y: 0, Class: "local"}}
	rg.Buildings = []region.Building{{X: 1, Y: 1, Kind: "shop"}, {X: 0, Y: 1, Kind: "shop"}}
	r := ValidateRegion(rg)
	if !r.Valid {
		t.Errorf("layer problems should only warn: %v", r.Errors)
	}
	if got := r.Count(LevelRoads); got != 1 {
		t.Errorf("road warnings = %d, want 1", got)
	}
	if got := r.Count(LevelPlacement); got != 1 {
		t.Errorf("placement warnings = %d, want 1", got)
	}
}

func TestValidateRegionDecodedLayers(t *testing.T) {
	doc := `{
	  "terrainGrid": [[2,2],[0,2]],
	  "towns": [{"id":"t1","x":1,"y":0,"tier":"A","radius":3,"profile":"metro"}],
	  "roadTiles": [{"x":50,"y":50,"class":"local"}],
	  "roadGraph": [{"x":0,"y":0,"class":"local","mask":0}],
	  "bgBuildings": [{"x":0,"y":1,"kind":"shop","colorVariant":0,"zone":"commercial","facing":"s","floors":1}]
	}`
	var rg region.Region
	if err := json.Unmarshal([]byte(doc), &rg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rg.RoadTiles) != 1 || len(rg.Buildings) != 1 {
		t.Fatalf("decoded roadTiles = %d, buildings = %d, want 1 and 1", len(rg.RoadTiles), len(rg.Buildings))
	}

	r := ValidateRegion(&rg)
	if !r.Valid {
		t.Errorf("layer problems should only warn: %v", r.Errors)
	}
	if got := r.Count(LevelRoads); got != 1 {
		t.Errorf("road warnings = %d, want 1", got)
	}
	if got := r.Count(LevelPlacement); got != 1 {
		t.Errorf("placement warnings = %d, want 1", got)
	}
}
