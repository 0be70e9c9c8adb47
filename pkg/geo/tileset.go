package geo

// TileSet is a dense membership set over a W×H grid. Lookups outside the
// grid report false and insertions outside the grid are ignored, so callers
// can probe neighbors without bounds checks.
type TileSet struct {
	w, h int
	bits []bool
	n    int
}

// NewTileSet creates an empty set for a w×h grid.
func NewTileSet(w, h int) *TileSet {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &TileSet{w: w, h: h, bits: make([]bool, w*h)}
}

// Width returns the grid width the set was created for.
func (s *TileSet) Width() int { return s.w }

// Height returns the grid height the set was created for.
func (s *TileSet) Height() int { return s.h }

// InBounds reports whether p lies on the grid.
func (s *TileSet) InBounds(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < s.w && p.Y < s.h
}

// Has reports whether p is in the set.
func (s *TileSet) Has(p Point) bool {
	if !s.InBounds(p) {
		return false
	}
	return s.bits[p.Y*s.w+p.X]
}

// Add inserts p and reports whether it was newly added.
func (s *TileSet) Add(p Point) bool {
	if !s.InBounds(p) {
		return false
	}
	i := p.Y*s.w + p.X
	if s.bits[i] {
		return false
	}
	s.bits[i] = true
	s.n++
	return true
}

// Remove deletes p from the set.
func (s *TileSet) Remove(p Point) {
	if !s.InBounds(p) {
		return
	}
	i := p.Y*s.w + p.X
	if s.bits[i] {
		s.bits[i] = false
		s.n--
	}
}

// Len returns the number of members.
func (s *TileSet) Len() int { return s.n }

// AddAll inserts every member of other.
func (s *TileSet) AddAll(other *TileSet) {
	other.Each(func(p Point) { s.Add(p) })
}

// RemoveAll deletes every member of other.
func (s *TileSet) RemoveAll(other *TileSet) {
	other.Each(func(p Point) { s.Remove(p) })
}

// Clone returns an independent copy.
func (s *TileSet) Clone() *TileSet {
	c := &TileSet{w: s.w, h: s.h, bits: make([]bool, len(s.bits)), n: s.n}
	copy(c.bits, s.bits)
	return c
}

// Each calls fn for every member in row-major order.
func (s *TileSet) Each(fn func(Point)) {
	for i, ok := range s.bits {
		if ok {
			fn(Point{X: i % s.w, Y: i / s.w})
		}
	}
}

// Points returns the members in row-major order.
func (s *TileSet) Points() []Point {
	out := make([]Point, 0, s.n)
	s.Each(func(p Point) { out = append(out, p) })
	return out
}
