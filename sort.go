package tricount

import (
	"sort"

	"github.com/intel/forGoParallel/psort"
)

// edgeKeySorter parallel-sorts packed canonical edge keys.
type edgeKeySorter []uint64

func (s edgeKeySorter) Assign(source psort.StableSorter) func(i, j, len int) {
	src := source.(edgeKeySorter)
	return func(i, j, len int) {
		copy(s[i:i+len], src[j:j+len])
	}
}

func (s edgeKeySorter) Len() int {
	return len(s)
}

func (s edgeKeySorter) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s edgeKeySorter) NewTemp() psort.StableSorter {
	return edgeKeySorter(make([]uint64, len(s)))
}

func (s edgeKeySorter) SequentialSort(i, j int) {
	sort.Stable(s[i:j])
}

func (s edgeKeySorter) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

func sortEdgeKeys(keys []uint64) {
	psort.StableSort(edgeKeySorter(keys))
}
