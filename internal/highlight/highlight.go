// Package highlight provides the sparse highlighting table consumed by the
// view engine. Highlighting computation itself happens elsewhere; this
// package only carries its finished result: a mapping from original text
// positions to tag names.
package highlight

// Well-known tag names. Producers may use any string; these are the tags
// the bundled theme styles out of the box.
const (
	TagKeyword  = "kw"
	TagString   = "str"
	TagComment  = "comment"
	TagNumber   = "num"
	TagConceal  = "conceal"
	TagSelected = "selected"
)

// Map is a sparse mapping from original text position to highlight tag.
// Positions without an entry carry no highlighting.
type Map map[int]string

// Tag returns the tag at the given position, or the empty string.
func (m Map) Tag(pos int) string {
	return m[pos]
}

// Set records a tag over the half-open position range [begin, end).
func (m Map) Set(begin, end int, tag string) {
	for p := begin; p < end; p++ {
		m[p] = tag
	}
}
