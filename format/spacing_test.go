package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hdltoolsmith/svtext/text"
)

const (
	kindIdent = iota + 10
	kindOpenParen
	kindCloseParen
	kindComma
	kindSemicolon
)

func isOpenParen(t text.Token) bool  { return t.Kind == kindOpenParen }
func isCloseParen(t text.Token) bool { return t.Kind == kindCloseParen }
func isComma(t text.Token) bool      { return t.Kind == kindComma }
func isSemicolon(t text.Token) bool  { return t.Kind == kindSemicolon }

func newAnnotator() *Annotator {
	return NewAnnotator(isOpenParen, isCloseParen, isComma, isSemicolon)
}

func TestAnnotator_NoSpaceBeforeComma(t *testing.T) {
	a := newAnnotator()
	prev := text.Token{Kind: kindIdent}
	comma := text.Token{Kind: kindComma}
	assert.Equal(t, SpaceNone, a.Decide(prev, comma, ""))
}

func TestAnnotator_NoSpaceAfterOpenParen(t *testing.T) {
	a := newAnnotator()
	open := text.Token{Kind: kindOpenParen}
	arg := text.Token{Kind: kindIdent}
	assert.Equal(t, SpaceNone, a.Decide(open, arg, ""))
}

func TestAnnotator_NoSpaceBeforeCloseParen(t *testing.T) {
	a := newAnnotator()
	arg := text.Token{Kind: kindIdent}
	close_ := text.Token{Kind: kindCloseParen}
	assert.Equal(t, SpaceNone, a.Decide(arg, close_, ""))
}

func TestAnnotator_DefaultsToSpaceOne(t *testing.T) {
	a := newAnnotator()
	x := text.Token{Kind: kindIdent}
	y := text.Token{Kind: kindIdent}
	assert.Equal(t, SpaceOne, a.Decide(x, y, ""))
}

func TestAnnotator_Annotate(t *testing.T) {
	a := newAnnotator()
	toks := []text.Token{
		{Kind: kindIdent},
		{Kind: kindOpenParen},
		{Kind: kindIdent},
		{Kind: kindComma},
		{Kind: kindIdent},
		{Kind: kindCloseParen},
	}
	decisions := a.Annotate(toks, "")
	require.Len(t, decisions, 5)
	assert.Equal(t, SpaceOne, decisions[0])   // ident -> (
	assert.Equal(t, SpaceNone, decisions[1])  // ( -> ident
	assert.Equal(t, SpaceNone, decisions[2])  // ident -> ,
	assert.Equal(t, SpaceOne, decisions[3])   // , -> ident
	assert.Equal(t, SpaceNone, decisions[4])  // ident -> )
}

func TestAnnotator_FirstMatchWins(t *testing.T) {
	a := &Annotator{Rules: []SpacingRule{
		{Name: "a", Decision: SpaceNone, Predicate: func(prev, cur text.Token, base string) bool { return true }},
		{Name: "b", Decision: LineBreak, Predicate: func(prev, cur text.Token, base string) bool { return true }},
	}}
	assert.Equal(t, SpaceNone, a.Decide(text.Token{}, text.Token{}, ""))
}

func TestAnnotator_AnnotateEmptyForShortInput(t *testing.T) {
	a := newAnnotator()
	assert.Nil(t, a.Annotate([]text.Token{{Kind: kindIdent}}, ""))
}
