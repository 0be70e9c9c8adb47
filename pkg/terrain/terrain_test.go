package terrain

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Lrrr908/sewer-showdown/pkg/config"
	"github.com/Lrrr908/sewer-showdown/pkg/geo"
)

func TestFromRowsErrors(t *testing.T) {
	if _, err := FromRows(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("nil rows: err = %v, want ErrEmpty", err)
	}
	if _, err := FromRows([][]int{{}}); !errors.Is(err, ErrEmpty) {
		t.Errorf("empty row: err = %v, want ErrEmpty", err)
	}
	if _, err := FromRows([][]int{{2, 2}, {2}}); !errors.Is(err, ErrJagged) {
		t.Errorf("jagged rows: err = %v, want ErrJagged", err)
	}
}

func TestRowsRoundTrip(t *testing.T) {
	rows := [][]int{{0, 1, 2}, {3, 4, 2}}
	g, err := FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	if g.W != 3 || g.H != 2 {
		t.Fatalf("size = %dx%d, want 3x2", g.W, g.H)
	}
	if !reflect.DeepEqual(g.Rows(), rows) {
		t.Errorf("Rows() = %v, want %v", g.Rows(), rows)
	}
	if g.At(geo.Pt(0, 1)) != Mountain {
		t.Errorf("At(0,1) = %v, want mountain", g.At(geo.Pt(0, 1)))
	}
	if g.At(geo.Pt(-1, 0)) != Ocean {
		t.Error("out-of-bounds should read as ocean")
	}
}

func TestKindPredicates(t *testing.T) {
	cases := []struct {
		k         Kind
		water     bool
		buildable bool
	}{
		{Ocean, true, false},
		{Coast, false, false},
		{Land, false, true},
		{Mountain, false, true},
		{River, true, false},
	}
	for _, c := range cases {
		if c.k.IsWater() != c.water {
			t.Errorf("%v.IsWater() = %v, want %v", c.k, c.k.IsWater(), c.water)
		}
		if c.k.IsBuildable() != c.buildable {
			t.Errorf("%v.IsBuildable() = %v, want %v", c.k, c.k.IsBuildable(), c.buildable)
		}
	}
}

func TestZeroWidthGapIsBridgeable(t *testing.T) {
	g := MustParse(
		"...=...",
	)
	w := AnalyzeWater(g, 1)
	if !w.CanBridge(geo.Pt(3, 0)) {
		t.Error("single-tile river between land should be bridgeable")
	}
	if w.Bridgeable.Len() != 1 {
		t.Errorf("bridgeable = %d, want 1", w.Bridgeable.Len())
	}
}

func TestOversizedGapNotBridgeable(t *testing.T) {
	g := MustParse(
		".=======.",
	)
	w := AnalyzeWater(g, 6)
	if w.Bridgeable.Len() != 0 {
		t.Errorf("run of 7 with span 6: bridgeable = %d, want 0", w.Bridgeable.Len())
	}
	if w.Tiles.Len() != 7 {
		t.Errorf("water = %d, want 7", w.Tiles.Len())
	}

	w = AnalyzeWater(g, 7)
	if w.Bridgeable.Len() != 7 {
		t.Errorf("run of 7 with span 7: bridgeable = %d, want 7", w.Bridgeable.Len())
	}
}

func TestEdgeRunsNeverBridgeable(t *testing.T) {
	g := MustParse(
		"~~...",
		"...==",
	)
	w := AnalyzeWater(g, 6)
	if w.Bridgeable.Len() != 0 {
		t.Errorf("edge-touching runs: bridgeable = %v, want none", w.Bridgeable.Points())
	}
}

func TestVerticalRun(t *testing.T) {
	g := MustParse(
		".~.",
		".~.",
		"...",
	)
	w := AnalyzeWater(g, 6)
	// Column 1 touches the top edge; each row run is bounded by land.
	for _, p := range []geo.Point{geo.Pt(1, 0), geo.Pt(1, 1)} {
		if !w.CanBridge(p) {
			t.Errorf("%v should be bridgeable via its row run", p)
		}
	}
}

func TestGradeOnlyFlattensMountains(t *testing.T) {
	g := MustParse(
		"^^~",
		"^.=",
	)
	s := g.NewTileSet()
	s.Add(geo.Pt(0, 0))
	s.Add(geo.Pt(2, 0))
	s.Add(geo.Pt(2, 1))
	if n := Grade(g, s, nil); n != 1 {
		t.Errorf("graded = %d, want 1", n)
	}
	want := [][]int{{2, 3, 0}, {3, 2, 4}}
	if !reflect.DeepEqual(g.Rows(), want) {
		t.Errorf("grid = %v, want %v", g.Rows(), want)
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	cfg := config.Default().Synth
	cfg.Width, cfg.Height = 48, 36
	a := Synthesize(cfg, 9)
	b := Synthesize(cfg, 9)
	if !reflect.DeepEqual(a.Rows(), b.Rows()) {
		t.Fatal("same seed produced different terrain")
	}
	if a.W != 48 || a.H != 36 {
		t.Errorf("size = %dx%d, want 48x36", a.W, a.H)
	}
	for x := 0; x < a.W; x++ {
		if a.At(geo.Pt(x, 0)) != Ocean || a.At(geo.Pt(x, a.H-1)) != Ocean {
			t.Fatalf("border column %d is not ocean", x)
		}
	}
}
