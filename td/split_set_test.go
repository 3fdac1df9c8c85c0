package td_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-graphalg/treewidth/td"
)

func TestSplitSetAllUnique(t *testing.T) {
	elems := []int{1, 2, 3, 4, 5, 6}
	n := len(elems)
	max := 1 << uint(n-1)

	type pair struct{ a, b string }
	seen := make(map[pair]bool)

	count := 0
	for i := 1; i < max; i++ {
		a, b := td.SplitSet(elems, i)
		count++
		ka, kb := key(a), key(b)
		require.False(t, seen[pair{ka, kb}] || seen[pair{kb, ka}], "split index %d duplicates an earlier (A,B) pair", i)
		seen[pair{ka, kb}] = true
	}
	require.Equal(t, 31, count)
}

func TestSplitSetFiveElementCount(t *testing.T) {
	elems := []int{1, 2, 3, 4, 5}
	n := len(elems)
	max := 1 << uint(n-1)
	count := 0
	for i := 1; i < max; i++ {
		td.SplitSet(elems, i)
		count++
	}
	require.Equal(t, 15, count)
}

func TestSplitSetEdgeCases(t *testing.T) {
	a, b := td.SplitSet(nil, 1)
	require.Empty(t, a)
	require.Empty(t, b)

	a, b = td.SplitSet([]int{1, 2}, 1)
	require.Len(t, a, 1, "2-element split should be 1/1, got a=%v b=%v", a, b)
	require.Len(t, b, 1, "2-element split should be 1/1, got a=%v b=%v", a, b)
}

func key(vs []int) string {
	out := ""
	for _, v := range vs {
		out += string(rune('a' + v))
	}
	return out
}
