// Package view derives, for a bounded viewport, the text a user actually
// sees: the stored text with all concealments applied, together with
// bidirectional position mappings between original and view coordinates and
// the document's selection and highlighting projected into view space.
//
// A View is a short-lived snapshot. It must be discarded and rebuilt when
// the text, the substitutions, the offset or the size change;
// selection-only or highlighting-only changes can be refreshed in place
// without rebuilding text and mappings.
//
// Positional code deals with two coordinate spaces. Variables carrying
// original-text positions are prefixed with o, view-text positions with v.
package view

import (
	"errors"
	"fmt"

	"github.com/quorik/veil/internal/conceal"
	"github.com/quorik/veil/internal/highlight"
	"github.com/quorik/veil/internal/interval"
	"github.com/quorik/veil/internal/text"
	"github.com/quorik/veil/internal/wrap"
)

// ErrInvalidArgument indicates malformed viewport parameters: non-positive
// width or height, or an offset outside the text.
var ErrInvalidArgument = errors.New("invalid argument")

// Document is the read surface the view engine consumes. The caller must
// not mutate the document while a view is being built.
type Document interface {
	// Text returns the current document text.
	Text() text.Text

	// Selection returns the document's absolute selection.
	Selection() interval.Selection

	// Highlighting returns the sparse position-to-tag table.
	Highlighting() highlight.Map

	// Conceal returns the document's substitution source.
	Conceal() conceal.Source
}

// View is the materialized viewport of one document at one point in time.
type View struct {
	doc    Document
	width  int
	height int
	offset int

	// Text is the view text: the sampled original range with all
	// substitutions applied.
	Text string

	// Selection is the document selection projected into view positions.
	Selection interval.Selection

	// Highlighting holds one tag per view position; untagged positions
	// hold the empty string. Its length always equals the view text
	// length.
	Highlighting []string

	// OrigToView maps original positions (counted from the view offset)
	// to view positions. The final entry is a sentinel for the exclusive
	// end of the consumed original range. Every original position inside
	// a substituted span maps to the view position where its replacement
	// begins.
	OrigToView []int

	// ViewToOrig maps view positions to absolute original positions. The
	// final entry is a sentinel for the exclusive end of the view text.
	// Every view position inside a replacement maps to the original
	// begin of the substituted span. After screen-window snapping this
	// array keeps its full sampled length; the entries beyond the view
	// text carry the sampled range's end, which selection projection
	// reads as the window's original end.
	ViewToOrig []int
}

// ForScreen builds a view holding at least height wrapped display lines of
// width columns, starting at original position offset.
func ForScreen(doc Document, width, height, offset int) (*View, error) {
	if width <= 0 {
		return nil, fmt.Errorf("view: width %d: %w", width, ErrInvalidArgument)
	}
	if height <= 0 {
		return nil, fmt.Errorf("view: height %d: %w", height, ErrInvalidArgument)
	}
	if offset < 0 || offset > doc.Text().Len() {
		return nil, fmt.Errorf("view: offset %d in text of length %d: %w", offset, doc.Text().Len(), ErrInvalidArgument)
	}

	v := &View{doc: doc, width: width, height: height, offset: offset}
	v.Text, v.OrigToView, v.ViewToOrig = v.sampleScreen()
	v.RefreshSelection()
	v.RefreshHighlighting()
	return v, nil
}

// ForInterval builds a view over the explicit original range iv, with no
// wrapped-line sampling. Width is used only by the wrapping helpers.
func ForInterval(doc Document, width int, iv interval.Interval) (*View, error) {
	if width <= 0 {
		return nil, fmt.Errorf("view: width %d: %w", width, ErrInvalidArgument)
	}
	if iv.End > doc.Text().Len() {
		return nil, fmt.Errorf("view: interval %s in text of length %d: %w", iv, doc.Text().Len(), ErrInvalidArgument)
	}

	v := &View{doc: doc, width: width, offset: iv.Begin}
	v.Text, v.OrigToView, v.ViewToOrig = computeRange(doc, iv.Begin, iv.Len())
	v.RefreshSelection()
	v.RefreshHighlighting()
	return v, nil
}

// Width returns the viewport width in columns.
func (v *View) Width() int { return v.width }

// Height returns the viewport height in display lines, or 0 for an
// explicit-interval view.
func (v *View) Height() int { return v.height }

// Offset returns the original position the view starts at.
func (v *View) Offset() int { return v.offset }

// Len returns the view text length in runes.
func (v *View) Len() int {
	return runeLen(v.Text)
}

// TextAsLines returns the view text broken into wrapped display rows.
func (v *View) TextAsLines() []string {
	return wrap.Rows(v.Text, v.width)
}

// RefreshSelection reprojects the document selection into view
// coordinates. Cheaper than rebuilding the view when only the selection
// changed.
func (v *View) RefreshSelection() {
	v.Selection = v.projectSelection()
}

// RefreshHighlighting reprojects the document highlighting into view
// coordinates. Cheaper than rebuilding the view when only the highlighting
// changed.
func (v *View) RefreshHighlighting() {
	v.Highlighting = v.projectHighlighting()
}

// projectSelection clips the document's absolute selection to the window's
// original bounds and maps both endpoints of each surviving interval
// through the forward mapping. Empty intervals sitting exactly on a window
// boundary are kept; plain overlap testing would drop them.
func (v *View) projectSelection() interval.Selection {
	oViewBeg := v.ViewToOrig[0]
	oViewEnd := v.ViewToOrig[len(v.ViewToOrig)-1]
	vLen := runeLen(v.Text)

	var out interval.Selection
	for _, iv := range v.doc.Selection().All() {
		obeg, oend := iv.Begin, iv.End
		// Empty intervals overlap nothing; they survive only when they
		// sit exactly on a window boundary.
		overlaps := obeg < oend && obeg < oViewEnd && oViewBeg < oend
		atEdge := obeg == oend && (obeg == oViewBeg || obeg == oViewEnd)
		if !overlaps && !atEdge {
			continue
		}
		if obeg < oViewBeg {
			obeg = oViewBeg
		}
		if oend > oViewEnd {
			oend = oViewEnd
		}
		if obeg-v.offset < 0 || oend-v.offset >= len(v.OrigToView) {
			continue
		}
		vbeg := v.OrigToView[obeg-v.offset]
		vend := v.OrigToView[oend-v.offset]
		if vbeg < 0 || vbeg > vend || vend > vLen {
			panic(fmt.Sprintf("view: projected interval [%d:%d) outside view text of length %d", vbeg, vend, vLen))
		}
		out.Add(interval.New(vbeg, vend))
	}
	return out
}

// projectHighlighting resolves each view position to its original position
// through the reverse mapping and copies the document's tag for it, if any.
func (v *View) projectHighlighting() []string {
	table := v.doc.Highlighting()
	out := make([]string, runeLen(v.Text))
	for i := range out {
		if tag := table.Tag(v.ViewToOrig[i]); tag != "" {
			out[i] = tag
		}
	}
	return out
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
