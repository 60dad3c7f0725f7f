package text

import (
	"fmt"
	"sort"

	"github.com/hdltoolsmith/svtext/internal/logging"
)

// TextStructureView is the coherent bundle described in spec.md §3: a
// token stream, a filtered parse view, a line→tokens index, and a syntax
// tree, all referring into one text slice that the view does not own.
type TextStructureView struct {
	contents     string
	tokens       TokenSequence
	tokensView   FilteredTokenView
	lineTokenMap []int // length NumLines()+1, indices into tokens
	tree         Symbol

	lines *LineColumnMap // lazily computed, invalidated on content mutation
}

// NewTextStructureView builds a view over contents from an already-lexed
// TokenSequence (which must validate) and a predicate selecting which
// tokens belong in the filtered parse view.
func NewTextStructureView(contents string, tokens TokenSequence, keep func(Token) bool) (*TextStructureView, error) {
	if err := tokens.Validate(); err != nil {
		return nil, err
	}
	v := &TextStructureView{contents: contents, tokens: tokens}
	v.tokensView = Filter(tokens, keep)
	v.calculateFirstTokensPerLine()
	return v, nil
}

// Contents returns the text slice this view refers into.
func (v *TextStructureView) Contents() string { return v.contents }

// Tokens returns the full (unfiltered) token sequence.
func (v *TextStructureView) Tokens() TokenSequence { return v.tokens }

// TokensView returns the filtered parse view.
func (v *TextStructureView) TokensView() FilteredTokenView { return v.tokensView }

// Tree returns the syntax tree root, or nil if none has been attached yet.
func (v *TextStructureView) Tree() Symbol { return v.tree }

// SetTree attaches (or replaces) the syntax tree root.
func (v *TextStructureView) SetTree(root Symbol) { v.tree = root }

// Lines returns (computing on first use) the LineColumnMap for the current
// contents. Not safe to call concurrently with a mutating method; the
// owner should prime this before sharing the view read-only across
// threads, per spec.md §5.
func (v *TextStructureView) Lines() *LineColumnMap {
	if v.lines == nil {
		v.lines = NewLineColumnMap(v.contents)
	}
	return v.lines
}

func (v *TextStructureView) invalidateLines() { v.lines = nil }

// calculateFirstTokensPerLine rebuilds lineTokenMap: iterate line-start
// offsets; for each, advance a running token index to the first token
// whose extent begins at or after that offset; append a final sentinel
// equal to len(tokens).
func (v *TextStructureView) calculateFirstTokensPerLine() {
	lines := NewLineColumnMap(v.contents)
	v.lines = lines
	n := lines.NumLines()
	idx := make([]int, n+1)
	cursor := 0
	for i := 0; i < n; i++ {
		offset := lines.OffsetAtLine(i)
		for cursor < len(v.tokens) && v.tokens[cursor].Lo < offset {
			cursor++
		}
		idx[i] = cursor
	}
	idx[n] = len(v.tokens)
	v.lineTokenMap = idx
}

// TokenRangeSpanningOffsets returns the half-open token-index range for
// tokens whose extent.Lo falls in [lo,hi).
func (v *TextStructureView) TokenRangeSpanningOffsets(lo, hi int) (begin, end int) {
	return v.tokens.RangeSpanningOffsets(lo, hi)
}

// TokenRangeOnLine returns the tokens that start on line L (0-based).
func (v *TextStructureView) TokenRangeOnLine(line int) []Token {
	if line < 0 || line+1 >= len(v.lineTokenMap) {
		return nil
	}
	return v.tokens[v.lineTokenMap[line]:v.lineTokenMap[line+1]]
}

// NumLines returns the number of lines tracked by the line→token index.
func (v *TextStructureView) NumLines() int {
	if len(v.lineTokenMap) == 0 {
		return 0
	}
	return len(v.lineTokenMap) - 1
}

// FilterTokens rebuilds tokensView to the subset of tokens satisfying
// predicate. Idempotent and composable (callers may apply in sequence by
// intersecting externally).
func (v *TextStructureView) FilterTokens(predicate func(Token) bool) {
	v.tokensView = Filter(v.tokens, predicate)
}

// MutateTokens applies f to every token in tokens in place, and to every
// leaf's Token in tree (these are separate copies of the Token value, so
// both must be walked to keep them in sync).
func (v *TextStructureView) MutateTokens(f func(*Token)) {
	for i := range v.tokens {
		f(&v.tokens[i])
	}
	MutateLeaves(v.tree, f)
}

// RebaseTokensToSuperstring translates every token's extent so that
// token.Lo becomes offset+(token.Lo-srcBaseLo), an offset into superstring, resets
// contents to the given superstring, and invalidates the line cache. Used
// when ownership of a sub-analysis is transferred into a parent.
func (v *TextStructureView) RebaseTokensToSuperstring(superstring string, srcBaseLo, offset int) {
	delta := offset - srcBaseLo
	v.MutateTokens(func(t *Token) {
		t.Lo += delta
		t.Hi += delta
	})
	v.contents = superstring
	v.invalidateLines()
}

// integrityPanic raises a fatal internal error naming the failed check,
// per spec.md §6's "Integrity failure" contract.
func integrityPanic(check string, detail string) {
	panic(fmt.Sprintf("text: integrity check failed: %s: %s", check, detail))
}

// CheckIntegrity verifies the invariants of spec.md §3/§4.4: first/last
// non-EOF tokens' extents lie inside contents; tokensView's indices are in
// range; lineTokenMap endpoints match tokens' endpoints; tree's
// leftmost/rightmost leaves lie inside contents. Fatal (panics) on
// violation, matching the "fatal in release builds" policy of spec.md §7.
func (v *TextStructureView) CheckIntegrity() {
	logging.Debugf("text: integrity check: contents len=%d tokens=%d\n", len(v.contents), len(v.tokens))

	if err := v.tokens.Validate(); err != nil {
		integrityPanic("token-sequence", err.Error())
	}
	nonEOF := v.tokens[:len(v.tokens)-1]
	if len(nonEOF) > 0 {
		first, last := nonEOF[0], nonEOF[len(nonEOF)-1]
		if first.Lo < 0 || first.Hi > len(v.contents) {
			integrityPanic("first-token-in-bounds", fmt.Sprintf("[%d,%d) outside [0,%d)", first.Lo, first.Hi, len(v.contents)))
		}
		if last.Lo < 0 || last.Hi > len(v.contents) {
			integrityPanic("last-token-in-bounds", fmt.Sprintf("[%d,%d) outside [0,%d)", last.Lo, last.Hi, len(v.contents)))
		}
	}
	for _, idx := range v.tokensView.Indices {
		if idx < 0 || idx >= len(v.tokens) {
			integrityPanic("tokens-view-in-range", fmt.Sprintf("index %d outside [0,%d)", idx, len(v.tokens)))
		}
	}
	if len(v.lineTokenMap) > 0 {
		if v.lineTokenMap[0] != 0 {
			integrityPanic("line-token-map-begin", fmt.Sprintf("lineTokenMap[0]=%d, want 0", v.lineTokenMap[0]))
		}
		if v.lineTokenMap[len(v.lineTokenMap)-1] != len(v.tokens) {
			integrityPanic("line-token-map-end", fmt.Sprintf("lineTokenMap last=%d, want %d", v.lineTokenMap[len(v.lineTokenMap)-1], len(v.tokens)))
		}
	}
	if v.tree != nil {
		l := LeftmostLeaf(v.tree)
		r := RightmostLeaf(v.tree)
		if l != nil && (l.Token.Lo < 0 || l.Token.Hi > len(v.contents)) {
			integrityPanic("tree-leftmost-leaf-in-bounds", fmt.Sprintf("[%d,%d) outside [0,%d)", l.Token.Lo, l.Token.Hi, len(v.contents)))
		}
		if r != nil && (r.Token.Lo < 0 || r.Token.Hi > len(v.contents)) {
			integrityPanic("tree-rightmost-leaf-in-bounds", fmt.Sprintf("[%d,%d) outside [0,%d)", r.Token.Lo, r.Token.Hi, len(v.contents)))
		}
	}
}

// trimTreeTo zooms v.tree to the minimal subtree spanning rng, replacing
// the root (possibly with nil).
func (v *TextStructureView) trimTreeTo(rng Interval[int]) {
	v.tree = Trim(v.tree, rng)
}

// trimTokensToSubstring implements step 2 of focus_on_subtree_spanning_substring.
func (v *TextStructureView) trimTokensToSubstring(lo, hi int) {
	begin, end := v.tokens.RangeSpanningOffsets(lo, hi)
	kept := append(TokenSequence{}, v.tokens[begin:end]...)
	for i := range kept {
		kept[i].Lo -= lo
		kept[i].Hi -= lo
		if kept[i].Hi > hi-lo {
			kept[i].Hi = hi - lo // shorten an overhanging last token (e.g. lexical error)
		}
	}
	kept = append(kept, NewEOF(hi-lo))

	newIndices := make([]int, 0, len(v.tokensView.Indices))
	for _, idx := range v.tokensView.Indices {
		if idx >= begin && idx < end {
			newIndices = append(newIndices, idx-begin)
		}
	}
	v.tokens = kept
	v.tokensView = FilteredTokenView{Indices: newIndices}
}

// FocusOnSubtreeSpanningSubstring narrows the view to contents[lo:lo+len],
// zooming the tree and re-slicing the token sequence to match, then
// re-establishes invariants and runs an integrity check.
func (v *TextStructureView) FocusOnSubtreeSpanningSubstring(lo, length int) {
	hi := lo + length
	v.trimTreeTo(Interval[int]{lo, hi})
	MutateLeaves(v.tree, func(t *Token) {
		t.Lo -= lo
		t.Hi -= lo
	})
	v.trimTokensToSubstring(lo, hi)
	v.contents = v.contents[lo:hi]
	v.invalidateLines()
	v.calculateFirstTokensPerLine()
	v.CheckIntegrity()
}

// DeferredExpansion pairs a slot inside a parent tree with a sub-analysis
// whose tree should eventually be spliced into that slot once its tokens
// have been rebased into the parent's text.
type DeferredExpansion struct {
	InsertionPoint *Symbol
	Subanalysis    *TextStructure
}

// ExpandSubtrees is the subtree-expansion protocol of spec.md §4.4. expansions
// maps byte offset (within v's contents, at the time of the original parse)
// to the DeferredExpansion that should be spliced in at that point.
// Processed in ascending-offset order; see spec.md for the full protocol.
func (v *TextStructureView) ExpandSubtrees(expansions map[int]*DeferredExpansion) {
	offsets := make([]int, 0, len(expansions))
	for off := range expansions {
		offsets = append(offsets, off)
	}
	sort.Ints(offsets)

	var combined TokenSequence
	var viewIdx []int
	prevCursor, prevViewCursor := 0, 0

	// copySegment appends old-sequence tokens [from,to) to combined and
	// translates any old view-indices in [viewFrom,viewTo) along with them.
	// Index translation happens before the append so the "position in
	// combined" arithmetic doesn't depend on how much was appended.
	copySegment := func(from, to, viewFrom, viewTo int) {
		base := len(combined)
		for _, idx := range v.tokensView.Indices[viewFrom:viewTo] {
			viewIdx = append(viewIdx, base+(idx-from))
		}
		combined = append(combined, v.tokens[from:to]...)
	}

	for _, offset := range offsets {
		exp := expansions[offset]
		cursor := v.tokens.LowerBound(offset)
		viewCursor := sort.Search(len(v.tokensView.Indices), func(i int) bool {
			return v.tokensView.Indices[i] >= cursor
		})
		logging.Debugf("text: ExpandSubtrees: offset=%d cursor=%d viewCursor=%d\n", offset, cursor, viewCursor)

		copySegment(prevCursor, cursor, prevViewCursor, viewCursor)

		sub := exp.Subanalysis
		subView := sub.View()
		original := subView.Contents()
		if offset+len(original) > len(v.contents) || v.contents[offset:offset+len(original)] != original {
			panic(fmt.Sprintf("text: ExpandSubtrees: sub-analysis text does not byte-equal contents at offset %d", offset))
		}
		if IsSubRange(original, v.contents) {
			panic("text: ExpandSubtrees: sub-analysis text must not already alias the parent's contents before rebasing")
		}

		subView.RebaseTokensToSuperstring(v.contents, 0, offset)

		subTokens := subView.tokens
		if len(subTokens) > 0 && subTokens[len(subTokens)-1].IsEOF() {
			subTokens = subTokens[:len(subTokens)-1]
		}
		base := len(combined)
		combined = append(combined, subTokens...)
		for _, idx := range subView.tokensView.Indices {
			if idx < len(subTokens) {
				viewIdx = append(viewIdx, base+idx)
			}
		}

		*exp.InsertionPoint = subView.Tree()
		sub.clear()

		prevCursor = cursor + 1 // skip the one token the subtree replaces
		prevViewCursor = viewCursor
		if prevViewCursor < len(v.tokensView.Indices) && v.tokensView.Indices[prevViewCursor] == cursor {
			prevViewCursor++
		}
	}

	copySegment(prevCursor, len(v.tokens), prevViewCursor, len(v.tokensView.Indices))

	v.tokens = combined
	v.tokensView = FilteredTokenView{Indices: viewIdx}
	v.calculateFirstTokensPerLine()
}
