package equiv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdltoolsmith/svtext/text"
)

const (
	kindWS   = 1
	kindWord = 2
)

func isWS(t text.Token) bool { return t.Kind == kindWS }

func tok(kind, lo, hi int) text.Token { return text.Token{Kind: kind, Lo: lo, Hi: hi} }

func TestFormatEquivalent_IgnoresWhitespaceDifferences(t *testing.T) {
	lBase := "a  b"
	rBase := "a b"
	l := text.TokenSequence{tok(kindWord, 0, 1), tok(kindWS, 1, 3), tok(kindWord, 3, 4), text.NewEOF(4)}
	r := text.TokenSequence{tok(kindWord, 0, 1), tok(kindWS, 1, 2), tok(kindWord, 2, 3), text.NewEOF(3)}

	report := FormatEquivalent(lBase, rBase, l, r, isWS)
	assert.True(t, report.Equal)
}

func TestFormatEquivalent_DetectsTextMismatch(t *testing.T) {
	lBase := "a"
	rBase := "b"
	l := text.TokenSequence{tok(kindWord, 0, 1), text.NewEOF(1)}
	r := text.TokenSequence{tok(kindWord, 0, 1), text.NewEOF(1)}

	report := FormatEquivalent(lBase, rBase, l, r, isWS)
	require.False(t, report.Equal)
	require.NotNil(t, report.Mismatch)
	assert.Equal(t, 0, report.Mismatch.Index)
}

func TestFormatEquivalent_DetectsLengthMismatch(t *testing.T) {
	lBase := "a b"
	rBase := "a"
	l := text.TokenSequence{tok(kindWord, 0, 1), tok(kindWS, 1, 2), tok(kindWord, 2, 3), text.NewEOF(3)}
	r := text.TokenSequence{tok(kindWord, 0, 1), text.NewEOF(1)}

	report := FormatEquivalent(lBase, rBase, l, r, isWS)
	require.False(t, report.Equal)
	require.NotNil(t, report.Mismatch)
	assert.True(t, report.Mismatch.LeftExcess)
}

func TestObfuscationEquivalent_IdentifierLengthOnly(t *testing.T) {
	lBase := "foo"
	rBase := "xyz"
	isIdentOrComment := func(t text.Token) bool { return t.Kind == kindWord }

	l := text.TokenSequence{tok(kindWord, 0, 3), text.NewEOF(3)}
	r := text.TokenSequence{tok(kindWord, 0, 3), text.NewEOF(3)}

	report := ObfuscationEquivalent(lBase, rBase, l, r, isIdentOrComment)
	assert.True(t, report.Equal)
}

func TestObfuscationEquivalent_RejectsLengthChange(t *testing.T) {
	lBase := "foo"
	rBase := "xy"
	isIdentOrComment := func(t text.Token) bool { return t.Kind == kindWord }

	l := text.TokenSequence{tok(kindWord, 0, 3), text.NewEOF(3)}
	r := text.TokenSequence{tok(kindWord, 0, 2), text.NewEOF(2)}

	report := ObfuscationEquivalent(lBase, rBase, l, r, isIdentOrComment)
	assert.False(t, report.Equal)
}
