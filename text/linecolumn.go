package text

import (
	"fmt"
	"sort"
)

// LineCol is a 1-based (line, column) position.
type LineCol struct {
	Line, Col int
}

// LineColumnMap translates between byte offsets and (line,column)
// positions within a fixed text buffer. Built by a single pass recording
// the offset of every line start.
type LineColumnMap struct {
	contents   string
	lineStarts []int // byte offset of the first byte of each line; lineStarts[0] == 0
}

// NewLineColumnMap constructs a map over contents.
func NewLineColumnMap(contents string) *LineColumnMap {
	starts := []int{0}
	for i := 0; i < len(contents); i++ {
		if contents[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineColumnMap{contents: contents, lineStarts: starts}
}

// NumLines returns the number of lines recorded.
func (m *LineColumnMap) NumLines() int { return len(m.lineStarts) }

// OffsetAtLine returns the byte offset of the start of line i (0-based).
// O(1).
func (m *LineColumnMap) OffsetAtLine(i int) int {
	if i < 0 || i >= len(m.lineStarts) {
		panic(fmt.Sprintf("text: LineColumnMap.OffsetAtLine: line %d out of range [0,%d)", i, len(m.lineStarts)))
	}
	return m.lineStarts[i]
}

// LineColAtOffset translates a byte offset into a 1-based (line,col) pair
// via binary search over the line-start array.
func (m *LineColumnMap) LineColAtOffset(b int) LineCol {
	i := sort.Search(len(m.lineStarts), func(i int) bool { return m.lineStarts[i] > b }) - 1
	if i < 0 {
		i = 0
	}
	return LineCol{Line: i + 1, Col: b - m.lineStarts[i] + 1}
}

// GetRangeForText validates that s lies within contents and returns its
// (begin,end) positions as (line,col) pairs.
func (m *LineColumnMap) GetRangeForText(s string) (begin, end LineCol, ok bool) {
	lo, hi, inRange := SubRangeOffsets(s, m.contents)
	if !inRange {
		return LineCol{}, LineCol{}, false
	}
	return m.LineColAtOffset(lo), m.LineColAtOffset(hi), true
}

// LineText returns the raw slice of contents that makes up line i
// (0-based), including its trailing newline if present.
func (m *LineColumnMap) LineText(i int) string {
	start := m.OffsetAtLine(i)
	var end int
	if i+1 < len(m.lineStarts) {
		end = m.lineStarts[i+1]
	} else {
		end = len(m.contents)
	}
	return m.contents[start:end]
}
