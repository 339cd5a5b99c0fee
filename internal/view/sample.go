package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/quorik/veil/internal/conceal"
	"github.com/quorik/veil/internal/interval"
	"github.com/quorik/veil/internal/wrap"
)

// sampleScreen computes the view text and mappings for a (width, height,
// offset) window by incremental sampling: starting from a single original
// rune, the sampled range doubles until the produced view text wraps into
// enough display lines, then the result is snapped to the exact begin of
// the wrapped line after the last required one. Each probe recomputes from
// scratch; determinism of the final read matters more than reusing probe
// work.
func (v *View) sampleScreen() (string, []int, []int) {
	otext := v.doc.Text()
	obeg := v.offset
	if otext.Len()-obeg == 0 {
		return "", []int{0}, []int{0}
	}

	sampleLen := 1
	vtext, oToV, vToO := computeRange(v.doc, obeg, sampleLen)
	for wrap.CountWrappedLines(vtext, v.width) < v.height && obeg+sampleLen < otext.Len() {
		sampleLen *= 2
		vtext, oToV, vToO = computeRange(v.doc, obeg, sampleLen)
	}

	// Snap to the exact boundary: the begin of the wrapped line after the
	// last required one is the required view-text length. If the sampled
	// text ends on the last line with no trailing break, the whole sample
	// is required.
	begLastLine := wrap.MoveNWrappedLinesDown(vtext, v.width, 0, v.height-1)
	required := wrap.NextBeginOfWrappedLine(vtext, v.width, begLastLine)
	vRunes := []rune(vtext)
	if required == begLastLine {
		required = len(vRunes)
	}

	// Doubling must not overshoot by more than 2x; anything past that is
	// a bug in the growth or measurement step above.
	if len(vRunes) > 0 && required <= len(vRunes)/2 {
		panic(fmt.Sprintf("view: snapped length %d from oversampled length %d", required, len(vRunes)))
	}

	if required < len(vRunes) {
		vtext = string(vRunes[:required])
		for i, vpos := range oToV {
			if vpos > required {
				oToV[i] = required
			}
		}
	}
	// vToO deliberately keeps its full sampled length; see the field docs.

	return vtext, oToV, vToO
}

// computeRange runs the single-pass substitution merge over the original
// range [obeg, obeg+sampleLen), producing the view text and both mapping
// arrays, each with a sentinel entry for the exclusive end position. Pure;
// re-run to completion per query.
func computeRange(doc Document, obeg, sampleLen int) (string, []int, []int) {
	otext := doc.Text()
	src := doc.Conceal()
	oend := obeg + sampleLen

	local := src.LocalSubstitutions(obeg, sampleLen)
	global := src.GlobalSubstitutions()
	lo := sort.Search(len(global), func(i int) bool {
		return global[i].Interval.Begin >= obeg
	})
	hi := sort.Search(len(global), func(i int) bool {
		return global[i].Interval.Begin >= oend
	})
	merged := conceal.Merge(local, global[lo:hi])

	var b strings.Builder
	var oToV, vToO []int
	opos := obeg
	vpos := 0

	copyVerbatim := func(end int) {
		for p := opos; p < end; p++ {
			vToO = append(vToO, p)
			oToV = append(oToV, vpos+(p-opos))
		}
		b.WriteString(otext.SubstringOf(interval.New(opos, end)))
		vpos += end - opos
		opos = end
	}

	for _, s := range merged {
		if opos >= oend {
			break
		}
		if s.Interval.Begin < opos {
			// Overlapped by the previous substitution; trimmed away.
			continue
		}
		if s.Interval.Begin > opos {
			end := s.Interval.Begin
			if end > oend {
				end = oend
			}
			copyVerbatim(end)
			if opos < s.Interval.Begin {
				break
			}
		}

		// The substitution starts at opos: append its replacement and
		// collapse both spans onto single anchors, replacement positions
		// back to the original begin, original positions forward to the
		// view position where the replacement starts.
		vlen := runeLen(s.Replacement)
		olen := s.Interval.Len()
		for k := 0; k < vlen; k++ {
			vToO = append(vToO, opos)
		}
		for k := 0; k < olen; k++ {
			oToV = append(oToV, vpos)
		}
		b.WriteString(s.Replacement)
		vpos += vlen
		opos += olen
	}

	if opos < oend {
		end := oend
		if end > otext.Len() {
			end = otext.Len()
		}
		if end > opos {
			copyVerbatim(end)
		}
	}

	// Sentinels make the exclusive end of the sampled range addressable.
	oToV = append(oToV, vpos)
	vToO = append(vToO, opos)

	if len(oToV) != (opos-obeg)+1 || len(vToO) != vpos+1 {
		panic(fmt.Sprintf("view: mapping lengths %d/%d for spans %d/%d", len(oToV), len(vToO), opos-obeg, vpos))
	}

	return b.String(), oToV, vToO
}
