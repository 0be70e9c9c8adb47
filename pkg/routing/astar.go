package routing

import (
	"container/heap"
	"math"

	"github.com/Lrrr908/sewer-showdown/pkg/geo"
)

// CostFunc returns the cost of entering p, or false when p is impassable.
type CostFunc func(p geo.Point) (float64, bool)

// noDir is the heading of the start state.
const noDir = -1

type node struct {
	f, g float64
	x, y int
	dir  int
}

// openSet is a min-heap ordered by (f, x, y, dir) so equal-cost frontiers
// always expand in the same order.
type openSet []node

func (h openSet) Len() int { return len(h) }
func (h openSet) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.x != b.x {
		return a.x < b.x
	}
	if a.y != b.y {
		return a.y < b.y
	}
	return a.dir < b.dir
}
func (h openSet) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *openSet) Push(x any)   { *h = append(*h, x.(node)) }
func (h *openSet) Pop() any {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

// FindPath runs A* over a w×h grid from start to goal with a Manhattan
// heuristic. When turnPenalty is positive the search state includes the
// incoming heading and every change of heading costs turnPenalty, so two
// arrivals at the same tile from different headings are kept apart. It
// returns the tile path including both endpoints, or nil when goal is
// unreachable.
func FindPath(w, h int, start, goal geo.Point, cost CostFunc, turnPenalty float64) []geo.Point {
	inBounds := func(p geo.Point) bool { return p.X >= 0 && p.Y >= 0 && p.X < w && p.Y < h }
	if !inBounds(start) || !inBounds(goal) {
		return nil
	}

	directional := turnPenalty > 0
	headings := 1
	if directional {
		headings = 5 // noDir plus four cardinal headings
	}
	stateOf := func(x, y, dir int) int {
		if !directional {
			return y*w + x
		}
		return (y*w+x)*headings + dir + 1
	}

	gScore := make([]float64, w*h*headings)
	for i := range gScore {
		gScore[i] = math.Inf(1)
	}
	came := make([]int, len(gScore))
	for i := range came {
		came[i] = -1
	}

	startDir := noDir
	startState := stateOf(start.X, start.Y, startDir)
	gScore[startState] = 0
	open := &openSet{{f: float64(geo.Manhattan(start, goal)), x: start.X, y: start.Y, dir: startDir}}

	for open.Len() > 0 {
		cur := heap.Pop(open).(node)
		curState := stateOf(cur.x, cur.y, cur.dir)
		if cur.g > gScore[curState] {
			continue
		}
		if cur.x == goal.X && cur.y == goal.Y {
			return reconstruct(came, curState, w, headings)
		}

		for di, d := range geo.Dirs {
			next := geo.Pt(cur.x, cur.y).Add(d.Delta())
			if !inBounds(next) {
				continue
			}
			c, ok := cost(next)
			if !ok {
				continue
			}
			ng := cur.g + c
			ndir := noDir
			if directional {
				ndir = di
				if cur.dir >= 0 && di != cur.dir {
					ng += turnPenalty
				}
			}
			ns := stateOf(next.X, next.Y, ndir)
			if ng < gScore[ns] {
				gScore[ns] = ng
				came[ns] = curState
				heap.Push(open, node{
					f:   ng + float64(geo.Manhattan(next, goal)),
					g:   ng,
					x:   next.X,
					y:   next.Y,
					dir: ndir,
				})
			}
		}
	}
	return nil
}

func reconstruct(came []int, state, w, headings int) []geo.Point {
	var path []geo.Point
	for s := state; s >= 0; s = came[s] {
		cell := s / headings
		path = append(path, geo.Pt(cell%w, cell/w))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
