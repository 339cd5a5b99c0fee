// Package text provides the immutable text value type of the editing core
// and the validated, reversible transformations that change it.
//
// A Text is never mutated in place: every transformation produces a brand-new
// value and leaves the receiver untouched, so history layers can hold prior
// values without copying. Positions are rune offsets.
package text

import (
	"fmt"
	"strings"

	"github.com/quorik/veil/internal/interval"
)

// Text is an immutable document body. The zero value is the empty text.
type Text struct {
	runes []rune
}

// New creates a Text from the given content.
func New(content string) Text {
	return Text{runes: []rune(content)}
}

// String returns the full content of the text.
func (t Text) String() string {
	return string(t.runes)
}

// Len returns the length of the text in runes.
func (t Text) Len() int {
	return len(t.runes)
}

// CharAt returns the rune at the given position.
func (t Text) CharAt(pos int) (rune, error) {
	if pos < 0 || pos >= len(t.runes) {
		return 0, fmt.Errorf("text: position %d in text of length %d: %w", pos, len(t.runes), ErrOutOfRange)
	}
	return t.runes[pos], nil
}

// SubstringOf returns the content addressed by the interval. Slicing
// semantics apply: the exclusive end is clamped to the text length.
func (t Text) SubstringOf(iv interval.Interval) string {
	begin := iv.Begin
	end := iv.End
	if begin > len(t.runes) {
		begin = len(t.runes)
	}
	if end > len(t.runes) {
		end = len(t.runes)
	}
	return string(t.runes[begin:end])
}

// SubstringsOf returns the content of each interval of the selection, in
// position order.
func (t Text) SubstringsOf(sel interval.Selection) []string {
	out := make([]string, 0, sel.Len())
	for _, iv := range sel.All() {
		out = append(out, t.SubstringOf(iv))
	}
	return out
}

// Transform applies the transformation and returns the resulting text.
// The receiver is left untouched. It returns ErrStaleTransformation if the
// content addressed by the transformation's selection no longer equals the
// content recorded at construction time, or if the transformation's
// validation hook rejects the text.
func (t Text) Transform(tr Transformation) (Text, error) {
	if err := tr.check(t); err != nil {
		return Text{}, err
	}

	var b strings.Builder
	next := 0
	for _, run := range tr.Selection.Partition(t.Len()) {
		if run.InSelection {
			b.WriteString(tr.Replacements[next])
			next++
		} else {
			b.WriteString(t.SubstringOf(run.Interval))
		}
	}
	if next != len(tr.Replacements) {
		panic(fmt.Sprintf("text: %d replacements consumed, %d provided", next, len(tr.Replacements)))
	}
	return New(b.String()), nil
}
