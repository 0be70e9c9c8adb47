// Package region is the data contract shared with the rest of the toolchain:
// the region JSON document carrying terrain, towns and the generated layers.
// Keys this package does not own are carried through verbatim.
package region

import (
	"encoding/json"
	"fmt"
)

// Keys of the region document.
const (
	KeyTerrain    = "terrainGrid"
	KeyTowns      = "towns"
	KeyRoadGraph  = "roadGraph"
	KeyRoadTiles  = "roadTiles"
	KeyBuildings  = "bgBuildings"
	KeyPlacements = "buildingPlacements"
)

// RoadNode is one centerline tile of the road graph.
type RoadNode struct {
	X     int    `json:"x"`
	Y     int    `json:"y"`
	Class string `json:"class"`
	Mask  uint8  `json:"mask"`
}

// RoadTile is one tile of the expanded road surface.
type RoadTile struct {
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Class  string `json:"class"`
	Bridge bool   `json:"bridge,omitempty"`
}

// Building is one generated background building. X, Y is the south-west
// anchor of its footprint.
type Building struct {
	X            int    `json:"x"`
	Y            int    `json:"y"`
	Kind         string `json:"kind"`
	ColorVariant int    `json:"colorVariant"`
	Zone         string `json:"zone"`
	Facing       string `json:"facing"`
	Floors       int    `json:"floors"`
	Rotated      bool   `json:"rotated,omitempty"`
}

// Placement positions a catalog building.
type Placement struct {
	BuildingID string `json:"buildingId"`
	X          int    `json:"x"`
	Y          int    `json:"y"`
}

// Region is a decoded region document. Generated layers hold whatever the
// document carried and are replaced wholesale by the pipeline.
type Region struct {
	Terrain [][]int
	Towns   []Town

	RoadGraph  []RoadNode
	RoadTiles  []RoadTile
	Buildings  []Building
	Placements []Placement

	// Extra holds every other top-level key verbatim.
	Extra map[string]json.RawMessage

	rawTowns json.RawMessage
}

// UnmarshalJSON decodes the owned keys, generated layers included, and keeps
// the rest in Extra.
func (r *Region) UnmarshalJSON(data []byte) error {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*r = Region{Extra: make(map[string]json.RawMessage)}

	for key, raw := range doc {
		switch key {
		case KeyTerrain:
			if err := json.Unmarshal(raw, &r.Terrain); err != nil {
				return fmt.Errorf("decoding %s: %w", key, err)
			}
		case KeyTowns:
			if err := json.Unmarshal(raw, &r.Towns); err != nil {
				return fmt.Errorf("decoding %s: %w", key, err)
			}
			r.rawTowns = raw
		case KeyRoadGraph:
			if err := json.Unmarshal(raw, &r.RoadGraph); err != nil {
				return fmt.Errorf("decoding %s: %w", key, err)
			}
		case KeyRoadTiles:
			if err := json.Unmarshal(raw, &r.RoadTiles); err != nil {
				return fmt.Errorf("decoding %s: %w", key, err)
			}
		case KeyBuildings:
			if err := json.Unmarshal(raw, &r.Buildings); err != nil {
				return fmt.Errorf("decoding %s: %w", key, err)
			}
		case KeyPlacements:
			if err := json.Unmarshal(raw, &r.Placements); err != nil {
				return fmt.Errorf("decoding %s: %w", key, err)
			}
		default:
			r.Extra[key] = raw
		}
	}
	return nil
}

// MarshalJSON writes Extra, the owned keys and any generated layers. Keys are
// emitted in sorted order so identical regions encode identically.
func (r Region) MarshalJSON() ([]byte, error) {
	doc := make(map[string]any, len(r.Extra)+6)
	for k, v := range r.Extra {
		doc[k] = v
	}
	doc[KeyTerrain] = r.Terrain
	if r.rawTowns != nil {
		doc[KeyTowns] = r.rawTowns
	} else {
		doc[KeyTowns] = r.Towns
	}
	if r.RoadGraph != nil {
		doc[KeyRoadGraph] = r.RoadGraph
	}
	if r.RoadTiles != nil {
		doc[KeyRoadTiles] = r.RoadTiles
	}
	if r.Buildings != nil {
		doc[KeyBuildings] = r.Buildings
	}
	if r.Placements != nil {
		doc[KeyPlacements] = r.Placements
	}
	return json.Marshal(doc)
}

// Width returns the terrain width, 0 for an empty grid.
func (r *Region) Width() int {
	if len(r.Terrain) == 0 {
		return 0
	}
	return len(r.Terrain[0])
}

// Height returns the number of terrain rows.
func (r *Region) Height() int { return len(r.Terrain) }
