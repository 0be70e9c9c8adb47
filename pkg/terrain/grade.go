package terrain

import "github.com/Lrrr908/sewer-showdown/pkg/geo"

// Grade flattens mountain tiles covered by any of the given sets to land and
// returns how many tiles changed. No other kind is touched.
func Grade(g *Grid, sets ...*geo.TileSet) int {
	changed := 0
	for _, s := range sets {
		if s == nil {
			continue
		}
		s.Each(func(p geo.Point) {
			if g.At(p) == Mountain {
				g.Set(p, Land)
				changed++
			}
		})
	}
	return changed
}
