package indexpool

import "github.com/net-agent/indexpool/rangeset"

// Iterator walks the in-use indices of a Pool in ascending order. It
// snapshots the pool's free ranges at construction, so it stays valid
// for its own lifetime but does not observe later mutations.
type Iterator struct {
	holes []rangeset.Range
	index int
	end   int
}

// AllIndices returns an iterator over every index currently in use.
func (p *Pool) AllIndices() *Iterator {
	it := &Iterator{
		holes: p.free.Ranges(),
		end:   p.nextID,
	}
	if len(it.holes) > 0 && it.holes[0].Min == 0 {
		it.index = it.holes[0].Max + 1
		it.holes = it.holes[1:]
	}
	return it
}

// AllIndicesAfter returns an iterator over every in-use index >= after.
func (p *Pool) AllIndicesAfter(after int) *Iterator {
	if after < 0 {
		after = 0
	}
	it := &Iterator{
		holes: p.free.RangesFrom(after),
		index: after,
		end:   p.nextID,
	}
	if len(it.holes) > 0 && it.holes[0].Contains(after) {
		it.index = it.holes[0].Max + 1
		it.holes = it.holes[1:]
	}
	return it
}

// Next returns the next in-use index. The second result is false once
// the iterator is exhausted.
func (it *Iterator) Next() (int, bool) {
	if it.index >= it.end {
		return 0, false
	}

	id := it.index
	it.index++

	if len(it.holes) > 0 && it.index == it.holes[0].Min {
		it.index = it.holes[0].Max + 1
		it.holes = it.holes[1:]
	}
	return id, true
}
