package tricount

import (
	"errors"
	"testing"

	"tricount/edgelist"
)

func TestPackEdgeCanonical(t *testing.T) {
	if packEdge(3, 5) != packEdge(5, 3) {
		t.Error("pack must be orientation independent")
	}
	u, v := unpackEdge(packEdge(5, 3))
	if u != 3 || v != 5 {
		t.Errorf("unpack gave (%v, %v), expected (3, 5)", u, v)
	}
	u, v = unpackEdge(packEdge(0, maxNodeID))
	if u != 0 || v != maxNodeID {
		t.Errorf("unpack gave (%v, %v), expected (0, %v)", u, v, uint32(maxNodeID))
	}
}

func TestIngestDedupAndSelfLoops(t *testing.T) {
	edges, stats, err := ingest(edgelist.Text("5 5\n1 2\n2 1\n1 2\n2 3\n1 3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if stats.Records != 6 || stats.SelfLoops != 1 || stats.Duplicates != 2 || stats.Edges != 3 {
		t.Errorf("unexpected stats %+v", stats)
	}
	if stats.MaxID != 5 {
		t.Errorf("max id is %v, expected 5", stats.MaxID)
	}
	for i, k := range edges {
		u, v := unpackEdge(k)
		if u >= v {
			t.Errorf("edge %v: (%v, %v) is not canonical", i, u, v)
		}
		if i > 0 && edges[i-1] >= k {
			t.Errorf("edge %v: keys not strictly ascending", i)
		}
	}
}

func TestIngestMalformedFails(t *testing.T) {
	_, _, err := ingest(edgelist.Text("1 2\nnot an edge\n"))
	if err == nil {
		t.Fatal("malformed line must fail the run")
	}
}

func TestIngestNodeRangeValidation(t *testing.T) {
	_, _, err := ingest(edgelist.Text("4294967296 1\n"))
	if !errors.Is(err, ErrNodeRange) {
		t.Errorf("got %v, expected ErrNodeRange", err)
	}
	if _, _, err = ingest(edgelist.Text("4294967295 1\n")); err != nil {
		t.Errorf("largest representable id must be accepted, got %v", err)
	}
}

func TestIngestEmptyInput(t *testing.T) {
	edges, stats, err := ingest(edgelist.Text("# only a comment\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(edges) != 0 || stats.Records != 0 {
		t.Errorf("expected no edges, got %v edges, stats %+v", len(edges), stats)
	}
}

func TestDedupKeys(t *testing.T) {
	keys := []uint64{1, 1, 2, 3, 3, 3, 7}
	if n := dedupKeys(keys); n != 4 {
		t.Errorf("unique count is %v, expected 4", n)
	} else if keys[0] != 1 || keys[1] != 2 || keys[2] != 3 || keys[3] != 7 {
		t.Errorf("compacted keys are %v", keys[:n])
	}
	if n := dedupKeys(nil); n != 0 {
		t.Errorf("empty dedup gave %v", n)
	}
}
