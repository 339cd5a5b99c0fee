package text

import (
	"fmt"
	"unicode/utf8"

	"github.com/quorik/veil/internal/interval"
)

// Transformation describes a replacement of the content addressed by a
// selection. It records the content present at construction time so that
// application against a text that has since changed fails instead of
// corrupting the document.
type Transformation struct {
	// Selection addresses the regions to replace, in original-text
	// coordinates.
	Selection interval.Selection

	// Original is the content of each selection interval at construction
	// time, in iteration order. Used for staleness validation.
	Original []string

	// Replacements holds one replacement string per selection interval,
	// in iteration order.
	Replacements []string

	// Validate is an optional caller-supplied hook. A non-nil error
	// reported by the hook fails the transformation as stale.
	Validate func(Text) error
}

// NewTransformation creates a transformation replacing the selection's
// current content in t with the given replacements. It panics if the number
// of replacements differs from the number of selection intervals.
func NewTransformation(t Text, sel interval.Selection, replacements []string) Transformation {
	if len(replacements) != sel.Len() {
		panic(fmt.Sprintf("text: %d replacements for %d selection intervals", len(replacements), sel.Len()))
	}
	return Transformation{
		Selection:    sel,
		Original:     t.SubstringsOf(sel),
		Replacements: replacements,
	}
}

// Inverse returns the transformation that undoes tr, addressed in the
// coordinates of the text produced by applying tr.
func (tr Transformation) Inverse() Transformation {
	var sel interval.Selection
	original := make([]string, 0, len(tr.Replacements))
	replacements := make([]string, 0, len(tr.Original))

	delta := 0
	for i, iv := range tr.Selection.All() {
		begin := iv.Begin + delta
		length := utf8.RuneCountInString(tr.Replacements[i])
		sel.Add(interval.New(begin, begin+length))
		original = append(original, tr.Replacements[i])
		replacements = append(replacements, tr.Original[i])
		delta += length - iv.Len()
	}

	return Transformation{
		Selection:    sel,
		Original:     original,
		Replacements: replacements,
	}
}

// check validates tr against t before application.
func (tr Transformation) check(t Text) error {
	if len(tr.Replacements) != tr.Selection.Len() {
		panic(fmt.Sprintf("text: %d replacements for %d selection intervals", len(tr.Replacements), tr.Selection.Len()))
	}

	current := t.SubstringsOf(tr.Selection)
	if len(current) != len(tr.Original) {
		return fmt.Errorf("text: selection shape changed: %w", ErrStaleTransformation)
	}
	for i, want := range tr.Original {
		if current[i] != want {
			return fmt.Errorf("text: content at %s is %q, expected %q: %w",
				tr.Selection.At(i), current[i], want, ErrStaleTransformation)
		}
	}

	if tr.Validate != nil {
		if err := tr.Validate(t); err != nil {
			return fmt.Errorf("text: validation hook: %v: %w", err, ErrStaleTransformation)
		}
	}
	return nil
}
