package format

import "github.com/hdltoolsmith/svtext/text"

// BreakDecision classifies the whitespace required between two adjacent
// tokens in the formatted output.
type BreakDecision int

const (
	// SpaceOptional lets the line-wrapping pass decide.
	SpaceOptional BreakDecision = iota
	// SpaceNone forbids any whitespace between the tokens.
	SpaceNone
	// SpaceOne forces exactly one space.
	SpaceOne
	// LineBreak forces a newline between the tokens.
	LineBreak
	// LineBreakPreserveIndent forces a newline and preserves the original
	// source's existing indentation for the second token's line, used for
	// constructs the annotator does not attempt to re-indent (per spec.md's
	// Open Question on indentation, resolved here by preserving rather than
	// computing).
	LineBreakPreserveIndent
)

// SpacingRule pairs a predicate matching a (previous, current) token pair
// with the decision to apply when it matches.
type SpacingRule struct {
	Name      string
	Predicate func(prev, cur text.Token, base string) bool
	Decision  BreakDecision
}

// Annotator applies an ordered list of SpacingRule values to successive
// token pairs: first match wins. Grounded on the layered per-token-pair
// rule tables in verible/common/formatting/token_partition_tree.cc,
// adapted here into an explicit predicate/decision list per spec.md
// §4.7's own suggested resolution of its spacing-catalog Open Question.
type Annotator struct {
	Rules []SpacingRule
}

// NewAnnotator returns an Annotator seeded with the default rule table:
// no space before a comma, a semicolon or a closing paren, and no space
// after an opening paren. Every other pair falls through to Decide's
// fallback of SpaceOne.
func NewAnnotator(isOpenParen, isCloseParen, isComma, isSemicolon func(text.Token) bool) *Annotator {
	return &Annotator{Rules: []SpacingRule{
		{
			Name:     "no-space-before-comma-semicolon",
			Decision: SpaceNone,
			Predicate: func(prev, cur text.Token, base string) bool {
				return isComma(cur) || isSemicolon(cur)
			},
		},
		{
			Name:     "no-space-after-open-paren",
			Decision: SpaceNone,
			Predicate: func(prev, cur text.Token, base string) bool {
				return isOpenParen(prev)
			},
		},
		{
			Name:     "no-space-before-close-paren",
			Decision: SpaceNone,
			Predicate: func(prev, cur text.Token, base string) bool {
				return isCloseParen(cur)
			},
		},
	}}
}

// Decide returns the first matching rule's decision for the pair
// (prev, cur), or SpaceOne if no rule matches.
func (a *Annotator) Decide(prev, cur text.Token, base string) BreakDecision {
	for _, r := range a.Rules {
		if r.Predicate(prev, cur, base) {
			return r.Decision
		}
	}
	return SpaceOne
}

// Annotate runs Decide over every adjacent pair in tokens, returning one
// decision per gap (len(tokens)-1 entries, empty if fewer than two
// tokens).
func (a *Annotator) Annotate(tokens []text.Token, base string) []BreakDecision {
	if len(tokens) < 2 {
		return nil
	}
	out := make([]BreakDecision, len(tokens)-1)
	for i := 1; i < len(tokens); i++ {
		out[i-1] = a.Decide(tokens[i-1], tokens[i], base)
	}
	return out
}
