// Package wrap provides pure column-wrapping arithmetic over strings: how
// many display rows a string occupies at a fixed width, and where wrapped
// rows begin. A display row ends at a newline or when it fills the full
// column width; a trailing row that did neither is incomplete and does not
// count as wrapped output yet.
package wrap

import "fmt"

// rowBegins returns the positions (in runes) where display rows begin,
// including a begin at len(s) when the string ends exactly on a row
// terminator. The first row always begins at 0.
func rowBegins(s string, width int) []int {
	if width <= 0 {
		panic(fmt.Sprintf("wrap: invalid width %d", width))
	}
	begins := []int{0}
	col := 0
	i := 0
	for _, r := range s {
		if r == '\n' {
			begins = append(begins, i+1)
			col = 0
		} else {
			col++
			if col == width {
				begins = append(begins, i+1)
				col = 0
			}
		}
		i++
	}
	return begins
}

// Rows breaks s into display rows at the given column width. Newlines
// terminate a row and are not included; an unterminated trailing row is
// included when non-empty.
func Rows(s string, width int) []string {
	if width <= 0 {
		panic(fmt.Sprintf("wrap: invalid width %d", width))
	}
	var rows []string
	row := make([]rune, 0, width)
	for _, r := range s {
		if r == '\n' {
			rows = append(rows, string(row))
			row = row[:0]
			continue
		}
		row = append(row, r)
		if len(row) == width {
			rows = append(rows, string(row))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		rows = append(rows, string(row))
	}
	return rows
}

// CountWrappedLines returns the number of completed display rows of s at
// the given column width.
func CountWrappedLines(s string, width int) int {
	return len(rowBegins(s, width)) - 1
}

// rowIndex returns the index into begins of the row containing pos.
func rowIndex(begins []int, pos int) int {
	idx := 0
	for i, b := range begins {
		if b > pos {
			break
		}
		idx = i
	}
	return idx
}

// MoveNWrappedLinesDown returns the begin position of the display row n
// rows below the row containing fromPos, clamped to the last row.
func MoveNWrappedLinesDown(s string, width, fromPos, n int) int {
	begins := rowBegins(s, width)
	idx := rowIndex(begins, fromPos) + n
	if idx > len(begins)-1 {
		idx = len(begins) - 1
	}
	return begins[idx]
}

// NextBeginOfWrappedLine returns the begin position of the display row
// after the one containing fromPos. If no later row exists, it returns the
// begin of fromPos's own row.
func NextBeginOfWrappedLine(s string, width, fromPos int) int {
	begins := rowBegins(s, width)
	idx := rowIndex(begins, fromPos)
	if idx+1 < len(begins) {
		return begins[idx+1]
	}
	return begins[idx]
}
