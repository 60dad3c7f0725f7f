// Package equiv implements the equivalence checker described in
// spec.md §4.9: filter two token streams, compare element-wise under a
// caller-supplied equality, and report the first point of divergence.
package equiv

import "github.com/hdltoolsmith/svtext/text"

// Mismatch describes the first point where two filtered token streams
// diverge.
type Mismatch struct {
	Index        int
	Left, Right  *text.Token // nil on the side that ran out first
	LeftExcess   bool        // true if Left's side was longer and Right ran out
}

// Report is the result of an equivalence check.
type Report struct {
	Equal    bool
	Mismatch *Mismatch
}

// LexicallyEquivalent filters L and R by keep, then compares them
// element-wise under eq. If the filtered lengths differ, it reports the
// first excess token on the longer side; if eq rejects a pair, it reports
// that pair's index and tokens.
func LexicallyEquivalent(
	lBase, rBase string,
	l, r text.TokenSequence,
	keep func(text.Token) bool,
	eq func(a, b text.Token, aBase, bBase string) bool,
) Report {
	lf := filterTokens(l, keep)
	rf := filterTokens(r, keep)

	n := len(lf)
	if len(rf) < n {
		n = len(rf)
	}
	for i := 0; i < n; i++ {
		if !eq(lf[i], rf[i], lBase, rBase) {
			a, b := lf[i], rf[i]
			return Report{Equal: false, Mismatch: &Mismatch{Index: i, Left: &a, Right: &b}}
		}
	}
	if len(lf) != len(rf) {
		longerIsLeft := len(lf) > len(rf)
		idx := n
		if longerIsLeft {
			t := lf[idx]
			return Report{Equal: false, Mismatch: &Mismatch{Index: idx, Left: &t, LeftExcess: true}}
		}
		t := rf[idx]
		return Report{Equal: false, Mismatch: &Mismatch{Index: idx, Right: &t}}
	}
	return Report{Equal: true}
}

func filterTokens(ts text.TokenSequence, keep func(text.Token) bool) []text.Token {
	var out []text.Token
	for _, t := range ts {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// FormatEquivalent is the format-equivalence preset: drops whitespace
// tokens (identified by isWhitespace) and the EOF sentinel, and compares
// kind plus exact text.
func FormatEquivalent(
	lBase, rBase string,
	l, r text.TokenSequence,
	isWhitespace func(text.Token) bool,
) Report {
	keep := func(t text.Token) bool { return !isWhitespace(t) && !t.IsEOF() }
	eq := func(a, b text.Token, aBase, bBase string) bool {
		return a.Kind == b.Kind && a.Text(aBase) == b.Text(bBase)
	}
	return LexicallyEquivalent(lBase, rBase, l, r, keep, eq)
}

// ObfuscationEquivalent is the obfuscation-equivalence preset: preserves
// whitespace tokens, and compares every token that isIdentifierOrComment
// does not select (whitespace included) by kind and exact text, so
// whitespace must match exactly. For identifiers/comments it compares
// kind plus text length only (renamed identifiers of equal length compare
// equal).
func ObfuscationEquivalent(
	lBase, rBase string,
	l, r text.TokenSequence,
	isIdentifierOrComment func(text.Token) bool,
) Report {
	keep := func(t text.Token) bool { return !t.IsEOF() }
	eq := func(a, b text.Token, aBase, bBase string) bool {
		if a.Kind != b.Kind {
			return false
		}
		if isIdentifierOrComment(a) {
			return len(a.Text(aBase)) == len(b.Text(bBase))
		}
		return a.Text(aBase) == b.Text(bBase)
	}
	return LexicallyEquivalent(lBase, rBase, l, r, keep, eq)
}
