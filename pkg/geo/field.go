package geo

// Unreached marks grid cells with no source in a distance field.
const Unreached = -1

// DistanceField computes, for every tile of the w×h grid, the Manhattan
// distance to the nearest member of sources. The grid has no obstacles, so a
// breadth-first sweep yields exact L1 distances. Cells are indexed y*w+x.
func DistanceField(w, h int, sources *TileSet) []int {
	field := make([]int, w*h)
	for i := range field {
		field[i] = Unreached
	}
	queue := make([]Point, 0, sources.Len())
	sources.Each(func(p Point) {
		field[p.Y*w+p.X] = 0
		queue = append(queue, p)
	})

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		d := field[cur.Y*w+cur.X]
		for _, n := range cur.Neighbors() {
			if n.X < 0 || n.Y < 0 || n.X >= w || n.Y >= h {
				continue
			}
			i := n.Y*w + n.X
			if field[i] != Unreached {
				continue
			}
			field[i] = d + 1
			queue = append(queue, n)
		}
	}
	return field
}
