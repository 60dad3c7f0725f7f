// Package waiver implements the lint-waiver construction described in
// spec.md §4.5: a stateful line walker that consumes token-per-line
// ranges and waive-line/-start/-stop directive comments into a per-rule
// bitset of waived lines. Grounded on
// verible/common/analysis/lint_waiver.cc.
package waiver

import (
	"strings"

	"github.com/hdltoolsmith/svtext/text"
)

// Exported command spellings, carried over from the original's literal
// trigger-command vocabulary (spec.md §6) rather than scattering bare
// string literals through the walker.
const (
	CommandWaiveLine  = "waive-line"
	CommandWaiveStart = "waive-start"
	CommandWaiveStop  = "waive-stop"
)

// Store holds, per rule name, the set of lines on which that rule is
// waived.
type Store struct {
	waived map[string]*text.LineNumberSet
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{waived: make(map[string]*text.LineNumberSet)}
}

func (s *Store) setFor(rule string) *text.LineNumberSet {
	set, ok := s.waived[rule]
	if !ok {
		set = text.NewLineNumberSet()
		s.waived[rule] = set
	}
	return set
}

// RuleIsWaivedOnLine reports whether rule is waived on line L (0-based).
func (s *Store) RuleIsWaivedOnLine(rule string, line int) bool {
	set, ok := s.waived[rule]
	if !ok {
		return false
	}
	return set.Contains(text.LineNumber(line))
}

// Line is one line's worth of classified tokens as seen by the walker:
// whether the line is blank, whether it has any "real" (non-whitespace,
// non-comment) token, and the stripped text of every comment on the line.
type Line struct {
	Blank    bool
	HasReal  bool
	Comments []string
}

// ClassifyLine derives a Line from the tokens that start on line L,
// using isWhitespace/isComment to classify each, and stripComment to
// strip comment delimiters before matching directive syntax.
func ClassifyLine(tokens []text.Token, base string, isWhitespace, isComment func(text.Token) bool, stripComment func(text.Token, string) string) Line {
	l := Line{Blank: true}
	for _, t := range tokens {
		switch {
		case isWhitespace(t):
			continue
		case isComment(t):
			l.Comments = append(l.Comments, stripComment(t, base))
		default:
			l.Blank = false
			l.HasReal = true
		}
	}
	if len(l.Comments) > 0 {
		l.Blank = false
	}
	return l
}

// Build walks numLines lines (0-based), calling lineAt(L) to classify each
// one, and returns the waiver Store. trigger is the configurable directive
// prefix (spec.md §6's "<trigger>"); a comment's stripped text of the form
// "<trigger> <command> <rule>" drives the state machine described in
// spec.md §4.5.
func Build(numLines int, trigger string, lineAt func(int) Line) *Store {
	s := NewStore()
	openRanges := make(map[string]int) // rule -> start line, at most one per rule
	deferredOneline := make(map[string]bool)

	flushDeferred := func(line int) {
		for rule := range deferredOneline {
			s.setFor(rule).Add(text.LineNumber(line), text.LineNumber(line+1))
		}
		deferredOneline = make(map[string]bool)
	}

	for line := 0; line < numLines; line++ {
		l := lineAt(line)

		if l.Blank {
			deferredOneline = make(map[string]bool)
		} else if l.HasReal {
			flushDeferred(line)
		}

		for _, comment := range l.Comments {
			rule, command, ok := parseDirective(comment, trigger)
			if !ok {
				continue
			}
			switch command {
			case CommandWaiveLine:
				if l.HasReal {
					s.setFor(rule).Add(text.LineNumber(line), text.LineNumber(line+1))
				} else {
					deferredOneline[rule] = true
				}
			case CommandWaiveStart:
				if _, exists := openRanges[rule]; !exists {
					openRanges[rule] = line
				}
			case CommandWaiveStop:
				if start, exists := openRanges[rule]; exists {
					s.setFor(rule).Add(text.LineNumber(start), text.LineNumber(line))
					delete(openRanges, rule)
				}
			}
		}
	}

	for rule, start := range openRanges {
		s.setFor(rule).Add(text.LineNumber(start), text.LineNumber(numLines))
	}

	return s
}

// parseDirective parses a stripped comment of the form
// "<trigger> <command> <rule>" (whitespace-separated).
func parseDirective(stripped, trigger string) (rule, command string, ok bool) {
	fields := strings.Fields(stripped)
	if len(fields) != 3 || fields[0] != trigger {
		return "", "", false
	}
	switch fields[1] {
	case CommandWaiveLine, CommandWaiveStart, CommandWaiveStop:
		return fields[2], fields[1], true
	default:
		return "", "", false
	}
}
