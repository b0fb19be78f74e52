// Package rangeset tracks a set of non-negative indices as disjoint,
// maximally coalesced ranges ordered by their lower bound.
package rangeset

import (
	"strings"

	"github.com/google/btree"
)

const btreeDegree = 16

// Set is an ordered collection of disjoint, pairwise non-adjacent
// ranges. Freeing an index that touches a stored range coalesces with
// it, so the set always holds the minimum number of ranges.
//
// A Set is not safe for concurrent use.
type Set struct {
	tree  *btree.BTreeG[Range]
	count int // total number of indices covered by the tree
}

// New returns an empty Set.
func New() *Set {
	return &Set{
		tree: btree.NewG(btreeDegree, func(a, b Range) bool {
			return a.Min < b.Min
		}),
	}
}

// floor returns the stored range with the greatest Min <= v.
func (s *Set) floor(v int) (Range, bool) {
	var out Range
	var ok bool
	s.tree.DescendLessOrEqual(Range{Min: v, Max: v}, func(r Range) bool {
		out, ok = r, true
		return false
	})
	return out, ok
}

// Free adds r to the set, coalescing with any range adjacent on either
// side. It reports whether r was actually added: false means at least
// one index of r was already free, and the set is left unchanged.
func (s *Set) Free(r Range) bool {
	merged := r

	if left, ok := s.floor(r.Max); ok {
		if left.Overlaps(r) {
			// Some index of r is already free.
			return false
		}
		if left.Max+1 == r.Min {
			s.tree.Delete(left)
			merged = merged.Merge(left)
		}
	}
	if right, ok := s.tree.Get(Range{Min: r.Max + 1}); ok {
		s.tree.Delete(right)
		merged = merged.Merge(right)
	}

	s.tree.ReplaceOrInsert(merged)
	s.count += r.Len()
	return true
}

// Use removes the single index v from the set, splitting the enclosing
// range if needed. It reports whether v was free.
func (s *Set) Use(v int) bool {
	enc, ok := s.floor(v)
	if !ok || !enc.Contains(v) {
		return false
	}

	s.tree.Delete(enc)
	if enc.Min < v {
		s.tree.ReplaceOrInsert(Range{Min: enc.Min, Max: v - 1})
	}
	if v < enc.Max {
		s.tree.ReplaceOrInsert(Range{Min: v + 1, Max: enc.Max})
	}
	s.count--
	return true
}

// TakeLowest removes and returns the smallest free index.
func (s *Set) TakeLowest() (int, bool) {
	first, ok := s.tree.Min()
	if !ok {
		return 0, false
	}
	s.tree.Delete(first)
	if first.Min < first.Max {
		s.tree.ReplaceOrInsert(Range{Min: first.Min + 1, Max: first.Max})
	}
	s.count--
	return first.Min, true
}

// IsFree reports whether v is covered by a stored range.
func (s *Set) IsFree(v int) bool {
	enc, ok := s.floor(v)
	return ok && enc.Contains(v)
}

// Last returns the stored range with the greatest Min.
func (s *Set) Last() (Range, bool) {
	return s.tree.Max()
}

// RemoveLast removes the stored range with the greatest Min, if any.
func (s *Set) RemoveLast() {
	if r, ok := s.tree.DeleteMax(); ok {
		s.count -= r.Len()
	}
}

// Ranges returns the stored ranges in ascending Min order.
func (s *Set) Ranges() []Range {
	out := make([]Range, 0, s.tree.Len())
	s.tree.Ascend(func(r Range) bool {
		out = append(out, r)
		return true
	})
	return out
}

// RangesFrom returns every stored range whose Max >= v, in ascending
// order: the range containing v, if any, followed by all higher ones.
func (s *Set) RangesFrom(v int) []Range {
	pivot := Range{Min: v, Max: v}
	if enc, ok := s.floor(v); ok && enc.Contains(v) {
		pivot = enc
	}
	var out []Range
	s.tree.AscendGreaterOrEqual(pivot, func(r Range) bool {
		out = append(out, r)
		return true
	})
	return out
}

// Len returns the number of stored ranges.
func (s *Set) Len() int {
	return s.tree.Len()
}

// Count returns the total number of free indices.
func (s *Set) Count() int {
	return s.count
}

// Clear removes every range from the set.
func (s *Set) Clear() {
	s.tree.Clear(false)
	s.count = 0
}

func (s *Set) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	s.tree.Ascend(func(r Range) bool {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(r.String())
		return true
	})
	b.WriteByte('}')
	return b.String()
}
