// Package interval provides the half-open integer intervals and ordered
// interval sets that address text positions throughout the editing core.
package interval

import "fmt"

// Interval represents a half-open range of text positions.
// Begin is inclusive, End is exclusive: [Begin, End).
type Interval struct {
	Begin int // Inclusive start position
	End   int // Exclusive end position
}

// New creates an Interval. It panics if begin is negative or end < begin;
// malformed intervals are programmer errors, never data.
func New(begin, end int) Interval {
	if begin < 0 || end < begin {
		panic(fmt.Sprintf("interval: invalid interval [%d:%d)", begin, end))
	}
	return Interval{Begin: begin, End: end}
}

// String returns a human-readable representation of the interval.
func (iv Interval) String() string {
	return fmt.Sprintf("[%d:%d)", iv.Begin, iv.End)
}

// Len returns the number of positions covered by the interval.
func (iv Interval) Len() int {
	return iv.End - iv.Begin
}

// IsEmpty returns true if the interval covers no positions.
func (iv Interval) IsEmpty() bool {
	return iv.Begin == iv.End
}

// Contains returns true if the given position is within the interval.
func (iv Interval) Contains(pos int) bool {
	return pos >= iv.Begin && pos < iv.End
}

// ContainsInterval returns true if other lies entirely within the interval.
func (iv Interval) ContainsInterval(other Interval) bool {
	return other.Begin >= iv.Begin && other.End <= iv.End
}

// Overlaps returns true if the two intervals share at least one position.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Begin < other.End && other.Begin < iv.End
}

// Touches returns true if the intervals overlap or are directly adjacent.
func (iv Interval) Touches(other Interval) bool {
	return iv.Begin <= other.End && other.Begin <= iv.End
}

// Union returns the smallest interval containing both intervals.
func (iv Interval) Union(other Interval) Interval {
	begin := iv.Begin
	if other.Begin < begin {
		begin = other.Begin
	}
	end := iv.End
	if other.End > end {
		end = other.End
	}
	return Interval{Begin: begin, End: end}
}

// Compare orders intervals lexicographically on (Begin, End).
// It returns -1, 0 or 1.
func (iv Interval) Compare(other Interval) int {
	switch {
	case iv.Begin < other.Begin:
		return -1
	case iv.Begin > other.Begin:
		return 1
	case iv.End < other.End:
		return -1
	case iv.End > other.End:
		return 1
	default:
		return 0
	}
}
