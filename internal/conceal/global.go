package conceal

import "sort"

// GlobalSet is the per-document, append-only ordered set of global
// substitutions. It stays sorted by (interval, replacement) so that the view
// engine can binary-search the slice relevant to a window.
type GlobalSet struct {
	subs []Substitution
}

// NewGlobalSet creates an empty global substitution set.
func NewGlobalSet() *GlobalSet {
	return &GlobalSet{}
}

// Len returns the number of substitutions in the set.
func (g *GlobalSet) Len() int {
	return len(g.subs)
}

// Add inserts a substitution at its sorted position. Duplicates are kept;
// the merge step deduplicates at query time.
func (g *GlobalSet) Add(s Substitution) {
	i := sort.Search(len(g.subs), func(i int) bool {
		return g.subs[i].Compare(s) >= 0
	})
	g.subs = append(g.subs, Substitution{})
	copy(g.subs[i+1:], g.subs[i:])
	g.subs[i] = s
}

// All returns the full ordered set. Callers must not modify the slice.
func (g *GlobalSet) All() []Substitution {
	return g.subs
}

// Slice returns the ordered substitutions whose intervals begin inside
// [begin, end), found by binary search. Callers must not modify the slice.
func (g *GlobalSet) Slice(begin, end int) []Substitution {
	lo := sort.Search(len(g.subs), func(i int) bool {
		return g.subs[i].Interval.Begin >= begin
	})
	hi := sort.Search(len(g.subs), func(i int) bool {
		return g.subs[i].Interval.Begin >= end
	})
	return g.subs[lo:hi]
}
