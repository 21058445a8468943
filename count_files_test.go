package tricount_test

import (
	"path/filepath"
	"testing"

	"tricount"
	"tricount/edgelist"
)

var triangleCountTestFiles = []struct {
	ntriangles uint32
	name       string
}{
	{1, "triangle.txt"},
	{4, "k4.txt"},
	{0, "path.txt"},
	{1, "dupes.txt"},
	{1, "isolated.txt"},
	{20, "k6.txt"},
	{6, "wheel6.txt"},
}

func TestTriangleCountFiles(t *testing.T) {
	for _, file := range triangleCountTestFiles {
		t.Run(file.name, func(t *testing.T) {
			G, err := tricount.Build(edgelist.File(filepath.Join("testdata", file.name)))
			if err != nil {
				t.Fatal(err)
			}
			nt := G.TriangleCount()
			if nt != file.ntriangles {
				t.Errorf("ntriangles is %v, expected %v", nt, file.ntriangles)
			}
			check, err := tricount.CheckCount(G)
			if err != nil {
				t.Fatal(err)
			}
			if check != int(nt) {
				t.Errorf("GraphBLAS recount is %v, kernel count is %v", check, nt)
			}
		})
	}
}

func TestCheckCountEmptyGraph(t *testing.T) {
	G, err := tricount.Build(edgelist.Text(""))
	if err != nil {
		t.Fatal(err)
	}
	nt, err := tricount.CheckCount(G)
	if err != nil {
		t.Fatal(err)
	}
	if nt != 0 {
		t.Errorf("recount is %v, expected 0", nt)
	}
}
