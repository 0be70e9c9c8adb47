package geo

// Dir is one of the four cardinal directions.
type Dir int

const (
	North Dir = iota
	East
	South
	West
)

// Connectivity mask bits, one per cardinal neighbor.
const (
	MaskN uint8 = 1
	MaskE uint8 = 2
	MaskS uint8 = 4
	MaskW uint8 = 8
)

// Dirs lists the cardinal directions in N, E, S, W order. Every scan that
// consumes randomness or picks a "first" direction iterates in this order.
var Dirs = [4]Dir{North, East, South, West}

var dirDeltas = [4]Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the unit step for d.
func (d Dir) Delta() Point {
	return dirDeltas[d]
}

// Bit returns the connectivity mask bit for d.
func (d Dir) Bit() uint8 {
	return 1 << uint(d)
}

// Axis returns 0 for north/south and 1 for east/west.
func (d Dir) Axis() int {
	return int(d) % 2
}

// Letter returns the lowercase compass letter used in the region format.
func (d Dir) Letter() string {
	return [4]string{"n", "e", "s", "w"}[d]
}

// Neighbors returns the four cardinal neighbors of p in N, E, S, W order.
func (p Point) Neighbors() [4]Point {
	var out [4]Point
	for i, d := range dirDeltas {
		out[i] = p.Add(d)
	}
	return out
}
