// Package format implements the comment-controlled disable-range engine
// and spacing/break annotator from spec.md §4.6/§4.7. Grounded on
// verible/common/formatting/format_token.cc and
// verible/common/formatting/unwrapped_line.cc.
package format

import (
	"strings"

	"github.com/hdltoolsmith/svtext/text"
)

// DefaultOffDirective and DefaultOnDirective are the directive spellings
// the original tool recognizes inside comments.
const (
	DefaultOffDirective = "verilog_format: off"
	DefaultOnDirective  = "verilog_format: on"
)

// DisableEngine accumulates the set of byte offsets for which formatting
// is disabled, from two independent sources: off/on comment directives
// scanned over the token stream, and an explicit caller-supplied set of
// selected lines (e.g. from a --lines flag), whose complement is unioned
// in so that everything outside the selected lines is disabled.
type DisableEngine struct {
	disabled *text.ByteOffsetSet
}

// NewDisableEngine returns an engine with nothing disabled.
func NewDisableEngine() *DisableEngine {
	return &DisableEngine{disabled: text.NewByteOffsetSet()}
}

// Disabled returns the accumulated disabled byte-offset ranges.
func (e *DisableEngine) Disabled() *text.ByteOffsetSet { return e.disabled }

// IsDisabled reports whether offset falls in a disabled range.
func (e *DisableEngine) IsDisabled(offset int) bool {
	return e.disabled.Contains(text.ByteOffset(offset))
}

// ScanComments walks tokens in order, classifying each with isComment,
// and disables the byte range from an off-directive comment's end up to
// (but not including) the matching on-directive comment's end — or to
// the end of text if no matching "on" ever appears. For an end-of-line
// off comment, the disabled range starts after the comment's trailing
// newline (not at the comment's own end) so the comment text itself
// remains formatted. Directive text is matched against stripped comment
// bodies via commentText.
func (e *DisableEngine) ScanComments(tokens text.TokenSequence, base string, isComment func(text.Token) bool, commentText func(text.Token, string) string) {
	off := -1
	for _, t := range tokens {
		if !isComment(t) {
			continue
		}
		body := strings.TrimSpace(commentText(t, base))
		switch {
		case strings.Contains(body, DefaultOffDirective):
			if off < 0 {
				off = t.Hi
				if off < len(base) && base[off] == '\n' {
					off++ // end-of-line comment: cover the trailing '\n' too
				}
			}
		case strings.Contains(body, DefaultOnDirective):
			if off >= 0 {
				e.disabled.Add(text.ByteOffset(off), text.ByteOffset(t.Hi))
				off = -1
			}
		}
	}
	if off >= 0 && len(base) > off {
		e.disabled.Add(text.ByteOffset(off), text.ByteOffset(len(base)))
	}
}

// ApplyLineSelection disables every byte offset NOT covered by the given
// set of selected lines (spec.md's "format only these lines" mode): it
// computes the complement of selected within [0, numLines) translated to
// byte offsets via lineAt, and unions it into the disabled set.
func (e *DisableEngine) ApplyLineSelection(selected *text.LineNumberSet, numLines int, lineAt func(int) (lo, hi int)) {
	complement := selected.Complement(0, text.LineNumber(numLines))
	for _, r := range complement.Ranges() {
		for line := int(r.Lo); line < int(r.Hi); line++ {
			lo, hi := lineAt(line)
			e.disabled.Add(text.ByteOffset(lo), text.ByteOffset(hi))
		}
	}
}
