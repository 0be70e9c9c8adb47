package terrain

import (
	"errors"
	"fmt"

	"github.com/Lrrr908/sewer-showdown/pkg/geo"
)

var (
	ErrEmpty  = errors.New("terrain grid is empty")
	ErrJagged = errors.New("terrain grid rows have unequal length")
)

// Grid is a dense W×H terrain map. Cells are stored row-major.
type Grid struct {
	W, H  int
	cells []Kind
}

// NewGrid returns a w×h grid filled with fill.
func NewGrid(w, h int, fill Kind) *Grid {
	g := &Grid{W: w, H: h, cells: make([]Kind, w*h)}
	for i := range g.cells {
		g.cells[i] = fill
	}
	return g
}

// FromRows builds a grid from the region's nested row arrays.
func FromRows(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	w := len(rows[0])
	g := &Grid{W: w, H: len(rows), cells: make([]Kind, 0, w*len(rows))}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrJagged)
		}
		for _, v := range row {
			g.cells = append(g.cells, Kind(v))
		}
	}
	return g, nil
}

// MustParse builds a grid from text rows, one character per tile:
// '~' ocean, ',' coast, '.' land, '^' mountain, '=' river. It panics on bad
// input and is intended for fixtures.
func MustParse(rows ...string) *Grid {
	codes := map[rune]Kind{'~': Ocean, ',': Coast, '.': Land, '^': Mountain, '=': River}
	out := make([][]int, len(rows))
	for y, row := range rows {
		for _, c := range row {
			k, ok := codes[c]
			if !ok {
				panic(fmt.Sprintf("terrain: unknown tile %q in row %d", c, y))
			}
			out[y] = append(out[y], int(k))
		}
	}
	g, err := FromRows(out)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the grid as nested row arrays.
func (g *Grid) Rows() [][]int {
	out := make([][]int, g.H)
	for y := range out {
		row := make([]int, g.W)
		for x := range row {
			row[x] = int(g.cells[y*g.W+x])
		}
		out[y] = row
	}
	return out
}

// InBounds reports whether p lies on the grid.
func (g *Grid) InBounds(p geo.Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.W && p.Y < g.H
}

// At returns the kind at p. Out-of-bounds positions read as Ocean.
func (g *Grid) At(p geo.Point) Kind {
	if !g.InBounds(p) {
		return Ocean
	}
	return g.cells[p.Y*g.W+p.X]
}

// Set writes k at p; out-of-bounds writes are ignored.
func (g *Grid) Set(p geo.Point, k Kind) {
	if g.InBounds(p) {
		g.cells[p.Y*g.W+p.X] = k
	}
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, cells: make([]Kind, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// NewTileSet returns an empty tile set sized to the grid.
func (g *Grid) NewTileSet() *geo.TileSet {
	return geo.NewTileSet(g.W, g.H)
}

// Counts tallies tiles per kind.
func (g *Grid) Counts() map[Kind]int {
	counts := make(map[Kind]int)
	for _, k := range g.cells {
		counts[k]++
	}
	return counts
}
