package tricount

import (
	"fmt"

	"tricount/edgelist"
)

// Graph is the compact oriented graph handed to the counting kernel.
// Offsets[u] .. Offsets[u+1] bounds u's forward row in Adjacency; every row
// is strictly ascending. Rows only ever point from lower to higher rank, so
// the relation is acyclic and every canonical edge appears in exactly one
// row. Both slices are read-only once Build returns.
type Graph struct {
	Offsets   []uint32
	Adjacency []uint32

	deg   []uint32
	stats IngestStats
}

// Build runs the host pipeline: two-pass ingestion, degree ranking, edge
// orientation, and CSR packing. The returned graph covers node slots
// 0 .. MaxID, so ids mentioned only in discarded records (such as
// self-loops) still get an empty row.
func Build(src edgelist.Source) (*Graph, error) {
	edges, stats, err := ingest(src)
	if err != nil {
		return nil, err
	}
	if uint64(len(edges)) > maxNodeID {
		return nil, fmt.Errorf("%w: %v", ErrTooManyEdges, len(edges))
	}
	n := 0
	if stats.Records > 0 {
		n = int(stats.MaxID) + 1
	}
	deg := degrees(edges, n)
	offsets := prefixSum(forwardDegrees(edges, deg, n))
	adjacency := make([]uint32, len(edges))
	orientFill(edges, deg, offsets, adjacency)
	sortRows(offsets, adjacency)
	return &Graph{Offsets: offsets, Adjacency: adjacency, deg: deg, stats: stats}, nil
}

// NumNodes returns the number of allocatable node slots, isolated ones
// included.
func (g *Graph) NumNodes() int {
	return len(g.Offsets) - 1
}

// NumEdges returns the number of canonical undirected edges, which equals
// the total oriented edge count.
func (g *Graph) NumEdges() int {
	return len(g.Adjacency)
}

// Row returns u's forward row. The slice aliases the graph's backing array
// and must not be modified.
func (g *Graph) Row(u uint32) []uint32 {
	return g.Adjacency[g.Offsets[u]:g.Offsets[u+1]]
}

// Stats returns the ingestion statistics gathered while building the graph.
func (g *Graph) Stats() IngestStats {
	return g.stats
}
