package conceal

import "sort"

// Merge combines window-local and global substitutions into one sequence in
// ascending (interval, replacement) order, resolving overlaps: a
// substitution whose interval lies inside another's is dropped, so a
// superset substitution always wins and identical intervals keep the first
// in replacement order. An empty substitution touching a boundary of a
// larger one counts as an insertion beside it, not as a contained
// sub-interval, and survives.
func Merge(local, global []Substitution) []Substitution {
	merged := make([]Substitution, 0, len(local)+len(global))
	merged = append(merged, local...)
	merged = append(merged, global...)
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Compare(merged[j]) < 0
	})

	out := merged[:0]
	for _, s := range merged {
		if n := len(out); n > 0 {
			last := out[n-1]
			if inside(s, last) {
				continue
			}
			if inside(last, s) && s.Interval.Begin == last.Interval.Begin {
				out[n-1] = s
				continue
			}
		}
		out = append(out, s)
	}
	return out
}

// inside reports whether s's interval lies inside outer's, treating an
// empty interval at either boundary of outer as outside.
func inside(s, outer Substitution) bool {
	if !outer.Interval.ContainsInterval(s.Interval) {
		return false
	}
	if s.Interval.IsEmpty() &&
		(s.Interval.Begin == outer.Interval.Begin || s.Interval.Begin == outer.Interval.End) {
		return false
	}
	return true
}
