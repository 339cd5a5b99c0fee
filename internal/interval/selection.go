package interval

import (
	"fmt"
	"strings"
)

// Selection is an ordered, deduplicated set of non-overlapping intervals.
// The zero value is an empty selection ready for use.
type Selection struct {
	intervals []Interval
}

// NewSelection creates a selection containing the given intervals.
// Overlapping or adjacent intervals are merged.
func NewSelection(ivs ...Interval) Selection {
	var s Selection
	for _, iv := range ivs {
		s.Add(iv)
	}
	return s
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	parts := make([]string, len(s.intervals))
	for i, iv := range s.intervals {
		parts[i] = iv.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Len returns the number of intervals in the selection.
func (s Selection) Len() int {
	return len(s.intervals)
}

// IsEmpty returns true if the selection contains no intervals.
func (s Selection) IsEmpty() bool {
	return len(s.intervals) == 0
}

// At returns the i-th interval in position order.
func (s Selection) At(i int) Interval {
	return s.intervals[i]
}

// All returns the intervals in position order. The slice is a copy.
func (s Selection) All() []Interval {
	out := make([]Interval, len(s.intervals))
	copy(out, s.intervals)
	return out
}

// Add inserts an interval, keeping the set ordered by Begin and merging
// any intervals the new one overlaps or touches.
func (s *Selection) Add(iv Interval) {
	if iv.End < iv.Begin || iv.Begin < 0 {
		panic(fmt.Sprintf("interval: invalid interval %s added to selection", iv))
	}

	merged := iv
	out := s.intervals[:0:0]
	for _, cur := range s.intervals {
		switch {
		case cur.End < merged.Begin:
			out = append(out, cur)
		case merged.End < cur.Begin:
			out = append(out, merged)
			merged = cur
		default:
			merged = merged.Union(cur)
		}
	}
	out = append(out, merged)
	s.intervals = out
}

// Contains returns true if the position lies inside one of the intervals.
func (s Selection) Contains(pos int) bool {
	for _, iv := range s.intervals {
		if iv.Contains(pos) {
			return true
		}
	}
	return false
}

// ContainsInterval returns true if other lies entirely within one of the
// selection's intervals.
func (s Selection) ContainsInterval(other Interval) bool {
	for _, iv := range s.intervals {
		if iv.ContainsInterval(other) {
			return true
		}
	}
	return false
}

// ContentLen returns the total number of positions covered by the selection.
func (s Selection) ContentLen() int {
	n := 0
	for _, iv := range s.intervals {
		n += iv.Len()
	}
	return n
}

// Run is a single element of a partition: one interval of the text, tagged
// with whether it belongs to the partitioning selection.
type Run struct {
	InSelection bool
	Interval    Interval
}

// Partition splits [0, textLen) into an alternating sequence of unselected
// and selected runs that covers every position exactly once. Runs may be
// empty; the sequence always starts and ends with an unselected run.
func (s Selection) Partition(textLen int) []Run {
	runs := make([]Run, 0, 2*len(s.intervals)+1)
	prev := 0
	for _, iv := range s.intervals {
		runs = append(runs,
			Run{InSelection: false, Interval: Interval{Begin: prev, End: iv.Begin}},
			Run{InSelection: true, Interval: iv},
		)
		prev = iv.End
	}
	runs = append(runs, Run{InSelection: false, Interval: Interval{Begin: prev, End: textLen}})
	return runs
}
