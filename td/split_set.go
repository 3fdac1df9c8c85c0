package td

import "sort"

// SplitSet enumerates bipartitions of elems into two ordered sides
// (a, b), one per index in 1..2^(n-1)-1 where n = len(elems). The
// smallest element is always placed in a, so (a,b) returned for two
// distinct indices is never the same pair and never a swapped copy of
// each other: every split index yields one distinct, unordered-set
// bipartition, and the full range of indices covers all of them
// exactly once.
//
// Each remaining element (elems sorted ascending, excluding the
// smallest) is assigned to b if its corresponding bit of index is set,
// otherwise to a.
func SplitSet(elems []int, index int) (a, b []int) {
	if len(elems) == 0 {
		return nil, nil
	}
	sorted := append([]int(nil), elems...)
	sort.Ints(sorted)

	a = append(a, sorted[0])
	for j := 1; j < len(sorted); j++ {
		if (index>>(uint(j-1)))&1 == 1 {
			b = append(b, sorted[j])
		} else {
			a = append(a, sorted[j])
		}
	}
	return a, b
}
