// Package conceal provides the substitutions that make a view differ from
// the stored text: character replacement, folding and other markup. It owns
// the substitution value type, the document-wide ordered substitution set,
// and the merge step that combines window-local and global substitutions for
// the view engine. What gets substituted where is decided by rule sources;
// the view engine only consumes the resulting ordered list.
package conceal

import (
	"fmt"
	"strings"

	"github.com/quorik/veil/internal/interval"
)

// Substitution maps an original-text span to the text that appears in its
// place in a view. The replacement may be empty (folding) and the interval
// may be empty (pure insertion into the view).
type Substitution struct {
	Interval    interval.Interval
	Replacement string
}

// String returns a human-readable representation of the substitution.
func (s Substitution) String() string {
	return fmt.Sprintf("%s->%q", s.Interval, s.Replacement)
}

// Compare orders substitutions lexicographically on (interval, replacement).
func (s Substitution) Compare(other Substitution) int {
	if c := s.Interval.Compare(other.Interval); c != 0 {
		return c
	}
	return strings.Compare(s.Replacement, other.Replacement)
}

// Source supplies the substitutions for a document. The global list covers
// the whole document and is kept in ascending (interval, replacement) order;
// local substitutions are materialized per query for exactly the requested
// range and are valid only for that range.
type Source interface {
	// LocalSubstitutions computes the substitutions local to the original
	// range [begin, begin+length).
	LocalSubstitutions(begin, length int) []Substitution

	// GlobalSubstitutions returns the document-wide substitution list in
	// ascending order. Callers must not modify the returned slice.
	GlobalSubstitutions() []Substitution
}
