package tricount

import "slices"

// prefixSum turns row lengths into row offsets: len(rowLen)+1 entries,
// last entry the total.
func prefixSum(rowLen []uint32) []uint32 {
	offsets := make([]uint32, len(rowLen)+1)
	var total uint32
	for i, l := range rowLen {
		offsets[i] = total
		total += l
	}
	offsets[len(rowLen)] = total
	return offsets
}

// sortRows sorts each CSR row ascending in place. Rows hold distinct ids,
// so sorted here means strictly ascending.
func sortRows(offsets, adjacency []uint32) {
	for i := 0; i+1 < len(offsets); i++ {
		slices.Sort(adjacency[offsets[i]:offsets[i+1]])
	}
}
