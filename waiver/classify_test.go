package waiver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hdltoolsmith/svtext/text"
)

const (
	kindWS = iota + 1
	kindComment
	kindReal
)

func isWS(t text.Token) bool      { return t.Kind == kindWS }
func isComment(t text.Token) bool { return t.Kind == kindComment }
func stripComment(t text.Token, base string) string {
	s := t.Text(base)
	for len(s) > 0 && s[0] == '/' {
		s = s[1:]
	}
	return s
}

func TestClassifyLine_BlankWhenOnlyWhitespace(t *testing.T) {
	base := "   "
	toks := []text.Token{{Kind: kindWS, Lo: 0, Hi: 3}}
	l := ClassifyLine(toks, base, isWS, isComment, stripComment)
	assert.True(t, l.Blank)
	assert.False(t, l.HasReal)
}

func TestClassifyLine_RealTokenNotBlank(t *testing.T) {
	base := "x"
	toks := []text.Token{{Kind: kindReal, Lo: 0, Hi: 1}}
	l := ClassifyLine(toks, base, isWS, isComment, stripComment)
	assert.False(t, l.Blank)
	assert.True(t, l.HasReal)
}

func TestClassifyLine_CommentOnlyNotBlankNotReal(t *testing.T) {
	base := "//hello"
	toks := []text.Token{{Kind: kindComment, Lo: 0, Hi: 7}}
	l := ClassifyLine(toks, base, isWS, isComment, stripComment)
	assert.False(t, l.Blank)
	assert.False(t, l.HasReal)
	assert.Equal(t, []string{"hello"}, l.Comments)
}
