// Package geo provides integer tile geometry shared by every generation phase.
// Tile coordinates grow east along X and south along Y.
package geo

import "math"

// Point is a tile coordinate on the region grid.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Pt is a shorthand constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Step returns the point n tiles away from p in direction d.
func (p Point) Step(d Dir, n int) Point {
	delta := d.Delta()
	return Point{p.X + delta.X*n, p.Y + delta.Y*n}
}

// Less orders points row-major: by Y, then by X.
func (p Point) Less(q Point) bool {
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.X < q.X
}

// Manhattan returns the L1 distance between a and b.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// DistanceTo returns the Euclidean distance from a fractional position to p.
func DistanceTo(x, y float64, p Point) float64 {
	return math.Hypot(x-float64(p.X), y-float64(p.Y))
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
