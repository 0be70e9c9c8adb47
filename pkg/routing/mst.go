package routing

import "container/heap"

// Edge joins two node indices.
type Edge struct {
	I, J int
}

type weightedEdge struct {
	cost float64
	i, j int
}

type edgeHeap []weightedEdge

func (h edgeHeap) Len() int { return len(h) }
func (h edgeHeap) Less(a, b int) bool {
	if h[a].cost != h[b].cost {
		return h[a].cost < h[b].cost
	}
	if h[a].i != h[b].i {
		return h[a].i < h[b].i
	}
	return h[a].j < h[b].j
}
func (h edgeHeap) Swap(a, b int) { h[a], h[b] = h[b], h[a] }
func (h *edgeHeap) Push(x any)   { *h = append(*h, x.(weightedEdge)) }
func (h *edgeHeap) Pop() any {
	old := *h
	e := old[len(old)-1]
	*h = old[:len(old)-1]
	return e
}

// MST builds a minimum spanning tree over n nodes with Prim's algorithm,
// growing from node 0. Heap ties break on (cost, i, j). Edges are returned in
// the order they join the tree.
func MST(n int, cost func(i, j int) float64) []Edge {
	if n < 2 {
		return nil
	}
	inTree := make([]bool, n)
	inTree[0] = true
	h := &edgeHeap{}
	for j := 1; j < n; j++ {
		heap.Push(h, weightedEdge{cost(0, j), 0, j})
	}

	var edges []Edge
	for h.Len() > 0 && len(edges) < n-1 {
		e := heap.Pop(h).(weightedEdge)
		if inTree[e.j] {
			continue
		}
		inTree[e.j] = true
		edges = append(edges, Edge{e.i, e.j})
		for k := 0; k < n; k++ {
			if !inTree[k] {
				heap.Push(h, weightedEdge{cost(e.j, k), e.j, k})
			}
		}
	}
	return edges
}
