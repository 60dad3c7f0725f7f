package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenSequence_ValidateRejectsMissingEOF(t *testing.T) {
	ts := TokenSequence{{Kind: 1, Lo: 0, Hi: 1}}
	assert.Error(t, ts.Validate())
}

func TestTokenSequence_ValidateRejectsNonMonotonic(t *testing.T) {
	ts := TokenSequence{
		{Kind: 1, Lo: 5, Hi: 6},
		{Kind: 1, Lo: 2, Hi: 3},
		NewEOF(6),
	}
	assert.Error(t, ts.Validate())
}

func TestTokenSequence_ValidateAccepts(t *testing.T) {
	ts := TokenSequence{
		{Kind: 1, Lo: 0, Hi: 3},
		{Kind: 1, Lo: 3, Hi: 6},
		NewEOF(6),
	}
	require.NoError(t, ts.Validate())
}

func TestTokenSequence_LowerBoundAndRangeSpanningOffsets(t *testing.T) {
	ts := TokenSequence{
		{Kind: 1, Lo: 0, Hi: 3},
		{Kind: 1, Lo: 3, Hi: 6},
		{Kind: 1, Lo: 6, Hi: 9},
		NewEOF(9),
	}
	assert.Equal(t, 1, ts.LowerBound(3))
	assert.Equal(t, 0, ts.LowerBound(0))
	assert.Equal(t, 3, ts.LowerBound(9))

	begin, end := ts.RangeSpanningOffsets(3, 9)
	assert.Equal(t, 1, begin)
	assert.Equal(t, 3, end)
}

func TestToken_TextAndExtent(t *testing.T) {
	base := "hello world"
	tok := Token{Kind: 1, Lo: 6, Hi: 11}
	assert.Equal(t, "world", tok.Text(base))
	assert.Equal(t, Interval[int]{6, 11}, tok.Extent())
}

func TestEqualIgnoringLocation(t *testing.T) {
	a := Token{Kind: 1, Lo: 0, Hi: 5}
	b := Token{Kind: 1, Lo: 4, Hi: 9}
	assert.True(t, EqualIgnoringLocation(a, b, "hello there", "say hello ok"))

	c := Token{Kind: 2, Lo: 0, Hi: 5}
	assert.False(t, EqualIgnoringLocation(a, c, "hello", "hello"))
}

func TestFilterAndFilteredTokenView(t *testing.T) {
	ts := TokenSequence{
		{Kind: 1, Lo: 0, Hi: 1},
		{Kind: 2, Lo: 1, Hi: 2}, // whitespace, filtered out
		{Kind: 1, Lo: 2, Hi: 3},
		NewEOF(3),
	}
	view := Filter(ts, func(t Token) bool { return t.Kind != 2 })
	require.Len(t, view.Indices, 3)
	toks := view.Tokens(ts)
	assert.Equal(t, ts[0], toks[0])
	assert.Equal(t, ts[2], toks[1])
	assert.True(t, toks[2].IsEOF())
}
