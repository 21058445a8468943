package tricount

import (
	"sync/atomic"

	"github.com/intel/forGoParallel/parallel"
)

// TriangleCount runs the forward algorithm over the compact graph and
// returns the exact triangle count.
//
// One logical worker handles each node u: for every forward neighbor v in
// u's row, the worker merges u's and v's ascending rows with two pointers
// and adds the match count to the shared total. For a triangle {u,v,w}
// with rank(u) < rank(v) < rank(w), only u's edge to v sees w in both
// remaining rows, so each triangle contributes exactly once. The workers
// share nothing but the counter; parallel.Range returns only after every
// worker finishes, which is the barrier that makes the final load safe.
func (g *Graph) TriangleCount() uint32 {
	n := g.NumNodes()
	if n == 0 {
		return 0
	}
	var total uint32
	parallel.Range(0, n, func(low, high int) {
		for u := low; u < high; u++ {
			countFrom(uint32(u), g.Offsets, g.Adjacency, &total)
		}
	})
	return atomic.LoadUint32(&total)
}

// countFrom is the per-node worker body. A worker dispatched past the node
// range does nothing. Rows are read-only; the only write is the atomic add
// per nonzero intersection.
func countFrom(u uint32, offsets, adjacency []uint32, total *uint32) {
	if uint64(u) >= uint64(len(offsets)-1) {
		return
	}
	uRow := adjacency[offsets[u]:offsets[u+1]]
	for _, v := range uRow {
		vRow := adjacency[offsets[v]:offsets[v+1]]
		if c := intersectCount(uRow, vRow); c != 0 {
			atomic.AddUint32(total, c)
		}
	}
}

// intersectCount merges two strictly ascending rows, advancing the smaller
// head and counting equal heads, until either row runs out.
func intersectCount(a, b []uint32) uint32 {
	var n uint32
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			n++
			i++
			j++
		}
	}
	return n
}
