package diff

import (
	"fmt"
	"strings"
)

// UnifiedDiffText computes a line-level diff between before and after and
// renders it as a standard unified diff: "@@ -a,b +c,d @@" hunk headers,
// one-character ' '/'-'/'+' line prefixes, an optional "--- path"/"+++
// path" header pair, and the "\ No newline at end of file" sentinel
// exactly when a hunk's last line of the relevant side lacks a
// terminating '\n'.
//
// The a,b/c,d ranges are rendered by formatRangeUnified, which applies the
// "count==1 omits the comma" rule git and GNU patch expect; hunk grouping
// uses this package's own SplitHunks, so a hunk whose only edit is a
// single Equals is discarded.
func UnifiedDiffText(before, after, fromFile, toFile string, context int) string {
	aLines := splitKeepEnds(before)
	bLines := splitKeepEnds(after)

	edits := Diff(aLines, bLines, func(a, b string) bool { return a == b })
	hunks := SplitHunks(edits, context)

	var b strings.Builder
	if fromFile != "" || toFile != "" {
		fmt.Fprintf(&b, "--- %s\n", fromFile)
		fmt.Fprintf(&b, "+++ %s\n", toFile)
	}

	delta := 0
	for _, h := range hunks {
		delta = writeHunk(&b, h, aLines, bLines, delta)
	}
	return b.String()
}

// writeHunk writes one hunk. delta is the number of lines inserted minus
// the number deleted before the hunk; it maps the A-indexed Equals edits
// to B line numbers. The delta after the hunk is returned.
func writeHunk(b *strings.Builder, h Hunk, aLines, bLines []string, delta int) int {
	aStart, aStop, bStart, bStop, delta := hunkBounds(h, delta)

	fmt.Fprintf(b, "@@ -%s +%s @@\n",
		formatRangeUnified(aStart, aStop),
		formatRangeUnified(bStart, bStop))

	for _, e := range h.Edits {
		switch e.Op {
		case Equals:
			writeLines(b, ' ', aLines, e.Start, e.End)
		case Delete:
			writeLines(b, '-', aLines, e.Start, e.End)
		case Insert:
			writeLines(b, '+', bLines, e.Start, e.End)
		}
	}
	return delta
}

// formatRangeUnified renders the line range [start,stop) as a unified-diff
// "line,count" field: lines are numbered from 1, a count of 1 omits the
// comma, and an empty range names the line just before it.
func formatRangeUnified(start, stop int) string {
	beginning := start + 1
	length := stop - start
	if length == 1 {
		return fmt.Sprintf("%d", beginning)
	}
	if length == 0 {
		beginning--
	}
	return fmt.Sprintf("%d,%d", beginning, length)
}

func hunkBounds(h Hunk, delta int) (aStart, aStop, bStart, bStop, nextDelta int) {
	aStart, bStart = -1, -1
	for _, e := range h.Edits {
		switch e.Op {
		case Equals:
			if aStart < 0 {
				aStart = e.Start
			}
			if bStart < 0 {
				bStart = e.Start + delta
			}
			aStop = e.End
			bStop = e.End + delta
		case Delete:
			if aStart < 0 {
				aStart = e.Start
			}
			aStop = e.End
			delta -= e.Len()
		case Insert:
			if bStart < 0 {
				bStart = e.Start
			}
			bStop = e.End
			delta += e.Len()
		}
	}
	if aStart < 0 {
		aStart = aStop
	}
	if bStart < 0 {
		bStart = bStop
	}
	return aStart, aStop, bStart, bStop, delta
}

// writeLines writes lines[start:end] with the given prefix. Only the last
// line of a text can lack a '\n'; such a line is followed by the
// "\ No newline at end of file" sentinel.
func writeLines(b *strings.Builder, prefix byte, lines []string, start, end int) {
	for i := start; i < end; i++ {
		line := lines[i]
		hasNL := strings.HasSuffix(line, "\n")
		text := strings.TrimSuffix(line, "\n")
		b.WriteByte(prefix)
		b.WriteString(text)
		b.WriteByte('\n')
		if !hasNL {
			b.WriteString("\\ No newline at end of file\n")
		}
	}
}

// splitKeepEnds splits s into lines, each retaining its trailing '\n' (the
// last line keeps none if the text has no trailing newline; an empty text
// has no lines).
func splitKeepEnds(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
