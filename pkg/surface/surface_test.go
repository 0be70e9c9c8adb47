package surface

import (
	"testing"

	"github.com/Lrrr908/sewer-showdown/pkg/geo"
	"github.com/Lrrr908/sewer-showdown/pkg/routing"
	"github.com/Lrrr908/sewer-showdown/pkg/terrain"
)

func graphOf(w, h int, hw, art, loc []geo.Point) *routing.Graph {
	set := func(pts []geo.Point) *geo.TileSet {
		s := geo.NewTileSet(w, h)
		for _, p := range pts {
			s.Add(p)
		}
		return s
	}
	return routing.BuildGraph(w, h, set(hw), set(art), set(loc))
}

func dryWater(w, h int) *terrain.Water {
	return terrain.AnalyzeWater(terrain.NewGrid(w, h, terrain.Land), 6)
}

func TestExpandVerticalWidensEast(t *testing.T) {
	g := graphOf(5, 5, nil, nil, []geo.Point{geo.Pt(1, 1), geo.Pt(1, 2), geo.Pt(1, 3)})
	s := Expand(g, dryWater(5, 5))
	if s.Len() != 6 {
		t.Fatalf("surface = %d tiles, want 6", s.Len())
	}
	for y := 1; y <= 3; y++ {
		if !s.Has(geo.Pt(2, y)) {
			t.Errorf("missing east widening at (2,%d)", y)
		}
	}
}

func TestExpandHorizontalWidensSouth(t *testing.T) {
	g := graphOf(5, 5, nil, nil, []geo.Point{geo.Pt(1, 1), geo.Pt(2, 1), geo.Pt(3, 1)})
	s := Expand(g, dryWater(5, 5))
	if s.Len() != 6 {
		t.Fatalf("surface = %d tiles, want 6", s.Len())
	}
	for x := 1; x <= 3; x++ {
		if !s.Has(geo.Pt(x, 2)) {
			t.Errorf("missing south widening at (%d,2)", x)
		}
	}
}

func TestExpandJunctionFillsBlock(t *testing.T) {
	// An L corner at (1,1).
	g := graphOf(5, 5, nil, nil, []geo.Point{geo.Pt(1, 1), geo.Pt(2, 1), geo.Pt(1, 2)})
	s := Expand(g, dryWater(5, 5))
	for _, p := range []geo.Point{geo.Pt(1, 1), geo.Pt(2, 1), geo.Pt(1, 2), geo.Pt(2, 2)} {
		if !s.Has(p) {
			t.Errorf("corner block missing %v", p)
		}
	}
}

func TestExpandIsolatedUsesVerticalRule(t *testing.T) {
	g := graphOf(3, 3, nil, nil, []geo.Point{geo.Pt(0, 0)})
	s := Expand(g, dryWater(3, 3))
	if s.Len() != 2 || !s.Has(geo.Pt(1, 0)) {
		t.Errorf("isolated tile: got %v", s.Tiles())
	}
}

func TestExpandDropsOutOfBounds(t *testing.T) {
	g := graphOf(3, 3, nil, nil, []geo.Point{geo.Pt(2, 1), geo.Pt(2, 2)})
	s := Expand(g, dryWater(3, 3))
	s.Each(func(tile Tile) {
		if !s.InBounds(tile.Point) {
			t.Errorf("out-of-bounds surface tile %v", tile.Point)
		}
	})
	if s.Len() != 2 {
		t.Errorf("surface = %d tiles, want 2", s.Len())
	}
}

func TestClassPrecedence(t *testing.T) {
	// A vertical arterial at x=1 widens east onto x=2, where a local street
	// stub also expands.
	art := []geo.Point{geo.Pt(1, 0), geo.Pt(1, 1), geo.Pt(1, 2)}
	loc := []geo.Point{geo.Pt(2, 0), geo.Pt(3, 0), geo.Pt(3, 1), geo.Pt(3, 2)}
	g := graphOf(6, 3, nil, art, loc)
	s := Expand(g, dryWater(6, 3))
	for y := 0; y < 3; y++ {
		if c := s.ClassAt(geo.Pt(2, y)); c != routing.Arterial {
			t.Errorf("(2,%d) class = %v, want arterial", y, c)
		}
	}
	if got := s.Count(routing.Local) + s.Count(routing.Arterial); got != s.Len() {
		t.Errorf("class counts %d != surface size %d", got, s.Len())
	}
}

func TestBridgeFlag(t *testing.T) {
	grid := terrain.MustParse(
		"..=..",
		"..=..",
		".....",
	)
	water := terrain.AnalyzeWater(grid, 6)
	g := graphOf(5, 3, []geo.Point{geo.Pt(0, 0), geo.Pt(1, 0), geo.Pt(2, 0), geo.Pt(3, 0)}, nil, nil)
	s := Expand(g, water)
	if !s.IsBridge(geo.Pt(2, 0)) || !s.IsBridge(geo.Pt(2, 1)) {
		t.Error("surface over the river should be flagged as bridge")
	}
	if s.Bridges() != 2 {
		t.Errorf("bridges = %d, want 2", s.Bridges())
	}
	s.Each(func(tile Tile) {
		if tile.Bridge && !water.Has(tile.Point) {
			t.Errorf("bridge tile %v is not on water", tile.Point)
		}
	})
}

func TestWideningOntoOpenWaterIsFlagged(t *testing.T) {
	grid := terrain.MustParse(
		".....",
		"~~~~~",
	)
	water := terrain.AnalyzeWater(grid, 6)
	// A street along the shore widens south onto the ocean row.
	g := graphOf(5, 2, nil, nil, []geo.Point{geo.Pt(0, 0), geo.Pt(1, 0), geo.Pt(2, 0), geo.Pt(3, 0), geo.Pt(4, 0)})
	s := Expand(g, water)
	for x := 0; x < 5; x++ {
		p := geo.Pt(x, 1)
		if water.CanBridge(p) {
			t.Fatalf("%v should not be bridgeable", p)
		}
		if !s.IsBridge(p) {
			t.Errorf("surface on open water at %v should carry the bridge flag", p)
		}
	}
	if s.Bridges() != 5 {
		t.Errorf("bridges = %d, want 5", s.Bridges())
	}
}
