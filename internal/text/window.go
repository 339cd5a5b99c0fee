package text

import (
	"fmt"

	"github.com/quorik/veil/internal/interval"
)

// Window is a read-only restriction of a text to an absolute sub-range
// [Begin, End). It is a snapshot: it does not observe later changes to the
// text it was built from. Accesses keep using absolute positions; anything
// outside the bounds fails with ErrOutOfRange rather than silently clamping,
// except that interval lookups clamp their exclusive end (slicing
// semantics), never their begin.
//
// Windows exist for cheap local previews: transforming a window touches only
// the windowed content instead of the whole document.
type Window struct {
	content []rune
	bounds  interval.Interval
}

// NewWindow creates a window over t restricted to bounds.
func NewWindow(t Text, bounds interval.Interval) (Window, error) {
	if bounds.End > t.Len() {
		return Window{}, fmt.Errorf("text: window %s over text of length %d: %w", bounds, t.Len(), ErrOutOfRange)
	}
	return Window{
		content: []rune(t.SubstringOf(bounds)),
		bounds:  bounds,
	}, nil
}

// Bounds returns the absolute range the window covers.
func (w Window) Bounds() interval.Interval {
	return w.bounds
}

// Len returns the length of the windowed content in runes.
func (w Window) Len() int {
	return len(w.content)
}

// String returns the windowed content.
func (w Window) String() string {
	return string(w.content)
}

// CharAt returns the rune at the given absolute position.
func (w Window) CharAt(pos int) (rune, error) {
	if !w.bounds.Contains(pos) {
		return 0, fmt.Errorf("text: position %d outside window %s: %w", pos, w.bounds, ErrOutOfRange)
	}
	return w.content[pos-w.bounds.Begin], nil
}

// SubstringOf returns the content addressed by the absolute interval.
// The interval's begin must lie inside the window; its exclusive end is
// clamped to the window end.
func (w Window) SubstringOf(iv interval.Interval) (string, error) {
	if iv.Begin < w.bounds.Begin || iv.Begin > w.bounds.End {
		return "", fmt.Errorf("text: interval %s outside window %s: %w", iv, w.bounds, ErrOutOfRange)
	}
	end := iv.End
	if end > w.bounds.End {
		end = w.bounds.End
	}
	return string(w.content[iv.Begin-w.bounds.Begin : end-w.bounds.Begin]), nil
}

// SubstringsOf returns the content of each interval of the selection.
func (w Window) SubstringsOf(sel interval.Selection) ([]string, error) {
	out := make([]string, 0, sel.Len())
	for _, iv := range sel.All() {
		s, err := w.SubstringOf(iv)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Transform applies the transformation to the windowed content and returns
// the transformed content as a new Text. Every interval of the
// transformation's selection must lie fully inside the window; a violation
// fails with ErrOutOfRange before anything is computed.
func (w Window) Transform(tr Transformation) (Text, error) {
	for _, iv := range tr.Selection.All() {
		if !w.bounds.ContainsInterval(iv) {
			return Text{}, fmt.Errorf("text: transformation interval %s outside window %s: %w", iv, w.bounds, ErrOutOfRange)
		}
	}

	var local interval.Selection
	for _, iv := range tr.Selection.All() {
		local.Add(interval.New(iv.Begin-w.bounds.Begin, iv.End-w.bounds.Begin))
	}

	localTr := Transformation{
		Selection:    local,
		Original:     tr.Original,
		Replacements: tr.Replacements,
		Validate:     tr.Validate,
	}
	return Text{runes: w.content}.Transform(localTr)
}
