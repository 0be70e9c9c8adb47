package geo

import "testing"

func TestManhattanAndDistance(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(3, 4)
	if got := Manhattan(a, b); got != 7 {
		t.Errorf("Manhattan = %d, want 7", got)
	}
	if got := Distance(a, b); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestFloorDiv(t *testing.T) {
	cases := []struct{ a, b, want int }{
		{7, 2, 3},
		{-7, 2, -4},
		{-6, 3, -2},
		{0, 5, 0},
	}
	for _, c := range cases {
		if got := FloorDiv(c.a, c.b); got != c.want {
			t.Errorf("FloorDiv(%d, %d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}

func TestDirBitsAndAxes(t *testing.T) {
	wantBits := []uint8{MaskN, MaskE, MaskS, MaskW}
	for i, d := range Dirs {
		if d.Bit() != wantBits[i] {
			t.Errorf("dir %d bit = %d, want %d", d, d.Bit(), wantBits[i])
		}
	}
	if North.Axis() != South.Axis() || East.Axis() != West.Axis() || North.Axis() == East.Axis() {
		t.Error("axes should pair N/S and E/W")
	}
	if p := Pt(5, 5).Step(North, 2); p != Pt(5, 3) {
		t.Errorf("Step north = %v, want (5,3)", p)
	}
}

func TestTileSetBounds(t *testing.T) {
	s := NewTileSet(3, 2)
	if s.Add(Pt(-1, 0)) || s.Add(Pt(3, 0)) || s.Add(Pt(0, 2)) {
		t.Error("out-of-bounds insert should be ignored")
	}
	if !s.Add(Pt(2, 1)) {
		t.Error("expected insert to succeed")
	}
	if s.Add(Pt(2, 1)) {
		t.Error("duplicate insert should report false")
	}
	if s.Len() != 1 || !s.Has(Pt(2, 1)) || s.Has(Pt(9, 9)) {
		t.Errorf("unexpected set state: len=%d", s.Len())
	}
	s.Remove(Pt(2, 1))
	if s.Len() != 0 {
		t.Errorf("len after remove = %d, want 0", s.Len())
	}
}

func TestTileSetRowMajorOrder(t *testing.T) {
	s := NewTileSet(4, 4)
	s.Add(Pt(3, 0))
	s.Add(Pt(0, 2))
	s.Add(Pt(1, 0))
	pts := s.Points()
	want := []Point{Pt(1, 0), Pt(3, 0), Pt(0, 2)}
	if len(pts) != len(want) {
		t.Fatalf("got %d points, want %d", len(pts), len(want))
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
}

func TestDistanceFieldIsManhattan(t *testing.T) {
	src := NewTileSet(6, 5)
	src.Add(Pt(1, 1))
	src.Add(Pt(5, 4))
	field := DistanceField(6, 5, src)
	for y := 0; y < 5; y++ {
		for x := 0; x < 6; x++ {
			p := Pt(x, y)
			want := Manhattan(p, Pt(1, 1))
			if d := Manhattan(p, Pt(5, 4)); d < want {
				want = d
			}
			if got := field[y*6+x]; got != want {
				t.Errorf("field%v = %d, want %d", p, got, want)
			}
		}
	}
}

func TestDistanceFieldNoSources(t *testing.T) {
	field := DistanceField(2, 2, NewTileSet(2, 2))
	for i, d := range field {
		if d != Unreached {
			t.Errorf("field[%d] = %d, want Unreached", i, d)
		}
	}
}
