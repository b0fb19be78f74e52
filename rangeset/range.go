package rangeset

import "fmt"

// Range is a closed interval [Min, Max] of non-negative indices.
// A Range is well-formed when Min <= Max; all methods require it.
type Range struct {
	Min int
	Max int
}

// Single returns the one-element range [v, v].
func Single(v int) Range {
	return Range{Min: v, Max: v}
}

// Len returns the number of indices covered by r.
func (r Range) Len() int {
	return r.Max - r.Min + 1
}

// Contains reports whether v lies inside r.
func (r Range) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

// Overlaps reports whether r and o share at least one index.
func (r Range) Overlaps(o Range) bool {
	return r.Min <= o.Max && o.Min <= r.Max
}

// Merge returns the smallest range covering both r and o. The result
// is only an exact union when the two ranges overlap or touch.
func (r Range) Merge(o Range) Range {
	out := r
	if o.Min < out.Min {
		out.Min = o.Min
	}
	if o.Max > out.Max {
		out.Max = o.Max
	}
	return out
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}
