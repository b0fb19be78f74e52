// Package indexpool manages allocation of unique non-negative indices.
// It acts like a pseudo-memory allocator over the natural numbers:
// returned indices are recycled lowest-first, and freed indices are
// tracked as coalesced ranges so the bookkeeping stays compact no
// matter how many indices have churned through the pool.
package indexpool

import (
	"errors"
	"fmt"
	"math"

	"github.com/net-agent/indexpool/rangeset"
)

var (
	// ErrAlreadyReturned is reported by ReturnID for an index that is
	// not currently in use.
	ErrAlreadyReturned = errors.New("An index was tried to be returned to the pool, but it was already marked as free.")
	// ErrAlreadyInUse is reported by RequestID for an index that is
	// already held.
	ErrAlreadyInUse = errors.New("An index was requested which was already marked as in use.")
)

// Pool hands out unique indices and takes them back for reuse. Every
// index below the frontier is either in use or covered by the free
// set; every index at or above it has never been issued.
//
// A Pool is not safe for concurrent use.
type Pool struct {
	nextID int
	inUse  int
	free   *rangeset.Set
}

// New returns an empty Pool. Indices start at 0.
func New() *Pool {
	return WithInitialIndex(0)
}

// WithInitialIndex returns an empty Pool whose first NewID result is
// index. The [0, index) region can be read as either a base offset or
// a pre-allocated block: it is not issuable by NewID and not counted
// by InUse, but returning one of its indices is accepted and makes
// that index issuable again.
func WithInitialIndex(index int) *Pool {
	return &Pool{
		nextID: index,
		free:   rangeset.New(),
	}
}

// NewID allocates the lowest index that is not currently in use.
func (p *Pool) NewID() int {
	p.inUse++

	if id, ok := p.free.TakeLowest(); ok {
		return id
	}

	id := p.nextID
	p.nextID++
	return id
}

// RequestID allocates a specific index. It returns ErrAlreadyInUse,
// leaving the pool unchanged, if the index is already held. Requesting
// an index beyond the frontier marks the skipped-over region free.
//
// RequestID panics if id is negative or math.MaxInt.
func (p *Pool) RequestID(id int) error {
	if id < 0 || id == math.MaxInt {
		panic(fmt.Sprintf("indexpool: requested index %d out of range", id))
	}

	switch {
	case id == p.nextID:
		p.nextID++
	case id > p.nextID:
		// No stored range ends at nextID-1 (it would have collapsed),
		// so the gap below id cannot overlap or touch an existing one.
		p.free.Free(rangeset.Range{Min: p.nextID, Max: id - 1})
		p.nextID = id + 1
	default:
		if !p.free.Use(id) {
			return ErrAlreadyInUse
		}
	}

	p.inUse++
	return nil
}

// ReturnID gives an index back to the pool so it may be handed out
// again. It returns ErrAlreadyReturned, leaving the pool unchanged, if
// the index was not in use. Whether ignoring that error is okay is up
// to the caller.
func (p *Pool) ReturnID(id int) error {
	if id < 0 || id >= p.nextID {
		return ErrAlreadyReturned
	}

	if id+1 == p.nextID {
		p.nextID--
	} else if !p.free.Free(rangeset.Single(id)) {
		return ErrAlreadyReturned
	}

	p.inUse--

	for p.collapseNext() {
	}
	return nil
}

// collapseNext pulls the frontier down over the highest free range
// when that range ends flush with it.
func (p *Pool) collapseNext() bool {
	last, ok := p.free.Last()
	if !ok || last.Max+1 != p.nextID {
		return false
	}
	p.free.RemoveLast()
	p.nextID = last.Min
	return true
}

// IsFree reports whether id is currently available.
func (p *Pool) IsFree(id int) bool {
	return id >= p.nextID || p.free.IsFree(id)
}

// Maximum returns an exclusive upper bound on every index in use,
// specifically the highest in-use index plus one. Useful to size a
// slice with room for all issued indices.
func (p *Pool) Maximum() int {
	return p.nextID
}

// InUse returns the number of indices currently held.
func (p *Pool) InUse() int {
	return p.inUse
}

// Clear resets the pool to its initial empty state.
func (p *Pool) Clear() {
	p.free.Clear()
	p.inUse = 0
	p.nextID = 0
}

func (p *Pool) String() string {
	return fmt.Sprintf("Pool{next:%d inUse:%d free:%s}", p.nextID, p.inUse, p.free)
}
