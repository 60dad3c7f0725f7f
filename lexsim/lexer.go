// Package lexsim is a minimal illustrative tokenizer and recursive-descent
// parser for a tiny expression language. It is NOT a SystemVerilog
// lexer/grammar: it exists only to exercise the text/diff/waiver/format/
// equiv packages in tests and the CLI demo, playing the role spec.md §6
// assigns to "the lexer and parser collaborators" without committing this
// module to a full SystemVerilog grammar. Identifier scanning is grounded
// on the teacher's scanner loop in go/tokenizer.go, adapted to use
// github.com/smasher164/xid for Unicode identifier classification.
package lexsim

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"

	"github.com/hdltoolsmith/svtext/text"
)

// Token kinds. EOFKind is reserved by the text package; real kinds start
// at 1.
const (
	_ = iota
	KindWhitespace
	KindComment
	KindIdent
	KindNumber
	KindPunct
	KindLexError
)

// IsWhitespace, IsComment and IsIdent classify a lexsim token by kind,
// matching the predicate shape the text/waiver/format/equiv packages
// expect from their callers.
func IsWhitespace(t text.Token) bool { return t.Kind == KindWhitespace }
func IsComment(t text.Token) bool    { return t.Kind == KindComment }
func IsIdent(t text.Token) bool      { return t.Kind == KindIdent }

// CommentText strips the leading run of '/' and ' ' characters from a
// line-comment token's text.
func CommentText(t text.Token, base string) string {
	s := t.Text(base)
	for len(s) > 0 && (s[0] == '/' || s[0] == ' ') {
		s = s[1:]
	}
	return s
}

// Lex tokenizes contents into a TokenSequence terminated by an EOF token.
// Recognized token classes: whitespace runs, "// ..." line comments,
// identifiers (xid.Start followed by xid.Continue, per Unicode UAX #31),
// decimal number literals, and single-byte punctuation. Any other
// character (rune) produces a one-character token flagged with a non-zero LexErrorClass rather
// than aborting the scan, mirroring spec.md §7's policy that lexical
// errors are recoverable and reported per-token.
func Lex(contents string) (text.TokenSequence, error) {
	var ts text.TokenSequence
	i := 0
	n := len(contents)

	for i < n {
		r, size := utf8.DecodeRuneInString(contents[i:])

		switch {
		case r == '/' && i+1 < n && contents[i+1] == '/':
			start := i
			i += 2
			for i < n && contents[i] != '\n' {
				i++
			}
			ts = append(ts, text.Token{Kind: KindComment, Lo: start, Hi: i})

		case unicode.IsSpace(r):
			start := i
			for i < n {
				rr, sz := utf8.DecodeRuneInString(contents[i:])
				if !unicode.IsSpace(rr) {
					break
				}
				i += sz
			}
			ts = append(ts, text.Token{Kind: KindWhitespace, Lo: start, Hi: i})

		case xid.Start(r):
			start := i
			i += size
			for i < n {
				rr, sz := utf8.DecodeRuneInString(contents[i:])
				if !xid.Continue(rr) {
					break
				}
				i += sz
			}
			ts = append(ts, text.Token{Kind: KindIdent, Lo: start, Hi: i})

		case unicode.IsDigit(r):
			start := i
			for i < n {
				rr, sz := utf8.DecodeRuneInString(contents[i:])
				if !unicode.IsDigit(rr) {
					break
				}
				i += sz
			}
			ts = append(ts, text.Token{Kind: KindNumber, Lo: start, Hi: i})

		case size == 1 && isPunct(contents[i]):
			ts = append(ts, text.Token{Kind: KindPunct, Lo: i, Hi: i + 1})
			i++

		default:
			ts = append(ts, text.Token{Kind: KindLexError, Lo: i, Hi: i + size, Err: text.LexErrorClass(1)})
			i += size
		}
	}

	ts = append(ts, text.NewEOF(n))
	if err := ts.Validate(); err != nil {
		return nil, fmt.Errorf("lexsim: %w", err)
	}
	return ts, nil
}

func isPunct(b byte) bool {
	switch b {
	case '(', ')', ',', ';', '+', '-', '*', '/', '=':
		return true
	default:
		return false
	}
}
