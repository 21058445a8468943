package tricount

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DegreeStats summarizes the degree distribution of the canonical graph.
type DegreeStats struct {
	Mean   float64
	Median float64
	Max    uint32
}

// DegreeStats reports mean, median, and maximum degree over all node
// slots. Isolated slots count as degree zero, matching the allocation
// bound the kernel runs over.
func (g *Graph) DegreeStats() DegreeStats {
	if len(g.deg) == 0 {
		return DegreeStats{}
	}
	d := make([]float64, len(g.deg))
	var max uint32
	for i, x := range g.deg {
		d[i] = float64(x)
		if x > max {
			max = x
		}
	}
	sort.Float64s(d)
	return DegreeStats{
		Mean:   stat.Mean(d, nil),
		Median: stat.Quantile(0.5, stat.Empirical, d, nil),
		Max:    max,
	}
}
