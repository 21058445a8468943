package tricount

// degrees tallies canonical-edge endpoints into a dense array of length n.
// Node slots with no incident edge stay zero.
func degrees(edges []uint64, n int) []uint32 {
	deg := make([]uint32, n)
	for _, k := range edges {
		u, v := unpackEdge(k)
		deg[u]++
		deg[v]++
	}
	return deg
}

// rankLess is the node order that drives edge orientation: degree
// ascending, ties broken by id ascending. It is a strict total order, so
// exactly one endpoint of every canonical edge wins.
func rankLess(deg []uint32, u, v uint32) bool {
	du, dv := deg[u], deg[v]
	if du != dv {
		return du < dv
	}
	return u < v
}
