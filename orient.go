package tricount

// forwardDegrees counts, per node, the canonical edges it wins under the
// rank order. This is the row-length pass of the two-phase arena build;
// orienting by ascending degree bounds any forward row by O(sqrt(E)).
func forwardDegrees(edges []uint64, deg []uint32, n int) []uint32 {
	fwd := make([]uint32, n)
	for _, k := range edges {
		u, v := unpackEdge(k)
		if rankLess(deg, u, v) {
			fwd[u]++
		} else {
			fwd[v]++
		}
	}
	return fwd
}

// orientFill writes each oriented edge at its row's next free slot. The
// cursor starts as a copy of the row offsets and each row ends exactly
// full, so every canonical edge lands in exactly one row.
func orientFill(edges []uint64, deg, offsets, adjacency []uint32) {
	next := make([]uint32, len(offsets)-1)
	copy(next, offsets[:len(offsets)-1])
	for _, k := range edges {
		u, v := unpackEdge(k)
		if !rankLess(deg, u, v) {
			u, v = v, u
		}
		adjacency[next[u]] = v
		next[u]++
	}
}
