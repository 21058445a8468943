package tricount

import (
	"errors"
	"fmt"

	"tricount/edgelist"
)

// maxNodeID is the largest representable endpoint: two ids are packed into
// one uint64 during deduplication and stored as uint32 in the CSR arrays.
const maxNodeID = 1<<32 - 1

var (
	// ErrNodeRange reports a node id too large for the 32-bit packing.
	ErrNodeRange = errors.New("tricount: node id does not fit in 32 bits")

	// ErrTooManyEdges reports a unique edge count too large for 32-bit
	// row offsets.
	ErrTooManyEdges = errors.New("tricount: unique edge count does not fit in 32 bits")
)

// IngestStats describes one ingestion run.
type IngestStats struct {
	Records    int    // parseable edge records seen
	SelfLoops  int    // records with equal endpoints, dropped
	Duplicates int    // records merged into an earlier canonical edge
	Edges      int    // unique canonical edges kept
	MaxID      uint32 // largest node id seen, valid when Records > 0
}

// packEdge builds the canonical sort key: min endpoint in the high half,
// max endpoint in the low half. One numeric sort then both orders the edge
// set and puts duplicates side by side.
func packEdge(u, v uint32) uint64 {
	if u > v {
		u, v = v, u
	}
	return uint64(u)<<32 | uint64(v)
}

func unpackEdge(k uint64) (u, v uint32) {
	return uint32(k >> 32), uint32(k)
}

// eachEdge opens src, applies fn to every record, and returns the record
// count. A malformed line aborts the pass with the scanner's error.
func eachEdge(src edgelist.Source, fn func(u, v uint64)) (int, error) {
	r, err := src.Open()
	if err != nil {
		return 0, err
	}
	sc := edgelist.NewScanner(src.Name(), r)
	n := 0
	for sc.Scan() {
		e := sc.Edge()
		fn(e.U, e.V)
		n++
	}
	if err := sc.Err(); err != nil {
		_ = r.Close()
		return n, err
	}
	return n, r.Close()
}

// ingest reads src twice: the first pass counts records and finds the
// largest node id, the second materializes one packed key per surviving
// record into an exactly-sized buffer. Sorting and a linear dedup then
// yield the canonical edge set in ascending key order. Peak memory is one
// uint64 per non-loop record, independent of how the two passes interleave
// with the source.
func ingest(src edgelist.Source) ([]uint64, IngestStats, error) {
	var stats IngestStats

	var maxID uint64
	records, err := eachEdge(src, func(u, v uint64) {
		if u > maxID {
			maxID = u
		}
		if v > maxID {
			maxID = v
		}
	})
	if err != nil {
		return nil, stats, err
	}
	if maxID > maxNodeID {
		return nil, stats, fmt.Errorf("%w: %v", ErrNodeRange, maxID)
	}
	stats.Records = records
	stats.MaxID = uint32(maxID)

	keys := make([]uint64, 0, records)
	loops := 0
	if _, err := eachEdge(src, func(u, v uint64) {
		if u == v {
			loops++
			return
		}
		keys = append(keys, packEdge(uint32(u), uint32(v)))
	}); err != nil {
		return nil, stats, err
	}
	stats.SelfLoops = loops

	sortEdgeKeys(keys)
	unique := dedupKeys(keys)
	stats.Duplicates = len(keys) - unique
	stats.Edges = unique
	return keys[:unique], stats, nil
}

// dedupKeys compacts a sorted key slice in place and returns the unique
// count.
func dedupKeys(keys []uint64) int {
	if len(keys) == 0 {
		return 0
	}
	w := 1
	for i := 1; i < len(keys); i++ {
		if keys[i] != keys[i-1] {
			keys[w] = keys[i]
			w++
		}
	}
	return w
}
