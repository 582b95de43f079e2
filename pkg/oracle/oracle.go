package oracle

import (
	"github.com/tidwall/btree"
	"golang.org/x/exp/slices"
)

// KeySet is the sorted, immutable view of a fixture's keys that every
// answer is computed against.
type KeySet struct {
	tree *btree.BTreeG[int64]
}

// NewKeySet copies keys; the caller's slice keeps its draw order.
func NewKeySet(keys []int64) *KeySet {
	tree := btree.NewBTreeG(func(a, b int64) bool {
		return a < b
	})

	sorted := slices.Clone(keys)
	slices.Sort(sorted)
	for _, k := range sorted {
		// ascending input takes the append fast path
		tree.Load(k)
	}
	return &KeySet{tree: tree}
}

func (s *KeySet) Len() int {
	return s.tree.Len()
}

func (s *KeySet) Min() (int64, bool) {
	return s.tree.Min()
}

func (s *KeySet) Max() (int64, bool) {
	return s.tree.Max()
}

// Rank returns the index-th smallest key, 1-based. ok is false outside
// [1, Len()].
func (s *KeySet) Rank(index int) (key int64, ok bool) {
	if index < 1 || index > s.tree.Len() {
		return 0, false
	}
	return s.tree.GetAt(index - 1)
}

// CountLess returns the number of keys strictly less than value. The scan
// starts at the smallest key and stops at the first key that is not less.
func (s *KeySet) CountLess(value int64) int {
	cnt := 0
	s.tree.Scan(func(k int64) bool {
		if k < value {
			cnt++
			return true
		}
		return false
	})
	return cnt
}

// CountInRange returns the number of keys k with low <= k <= high.
func (s *KeySet) CountInRange(low, high int64) int {
	if high < low {
		return 0
	}
	cnt := 0
	s.tree.Ascend(low, func(k int64) bool {
		if k > high {
			return false
		}
		cnt++
		return true
	})
	return cnt
}

// Sorted returns the keys in ascending order.
func (s *KeySet) Sorted() []int64 {
	return s.tree.Items()
}
