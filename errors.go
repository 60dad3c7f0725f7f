// Package svtext ties together the text-structure core (package text),
// its diff engine (package diff), lint-waiver store (package waiver), and
// format disable-range/spacing engine (package format) into the error
// taxonomy described in spec.md §7.
package svtext

import (
	"fmt"
	"strings"
)

// Pos is a 1-based (line,col) position plus the file it came from, used by
// every positioned error in the package.
type Pos struct {
	File string
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// LexError is a malformed-token error produced by a lexer collaborator. It
// never propagates out of the core as a panic; callers inspect it on the
// owning analysis object, mirroring SQLCodeParseErrors in the teacher.
type LexError struct {
	Pos     Pos
	Message string
}

func (e LexError) Error() string { return fmt.Sprintf("%s: lex error: %s", e.Pos, e.Message) }

// LexErrors aggregates LexError values from a single analysis.
type LexErrors struct {
	Errors []LexError
}

func (e LexErrors) Error() string {
	var b strings.Builder
	b.WriteString("svtext: lex errors:\n")
	for _, err := range e.Errors {
		fmt.Fprintf(&b, "  %s\n", err)
	}
	return b.String()
}

// ParseError is a syntax error with the offending token's location.
type ParseError struct {
	Pos     Pos
	Message string
}

func (e ParseError) Error() string { return fmt.Sprintf("%s: parse error: %s", e.Pos, e.Message) }

// ParseErrors aggregates ParseError values from a single analysis.
type ParseErrors struct {
	Errors []ParseError
}

func (e ParseErrors) Error() string {
	var b strings.Builder
	b.WriteString("svtext: syntax error:\n\n")
	for _, err := range e.Errors {
		fmt.Fprintf(&b, "%s: %s\n", err.Pos, err.Message)
	}
	return b.String()
}

// RangeError marks an internal invariant violation: a backwards interval,
// a substring not contained in its claimed superstring, an overlapping
// insertion into a DisjointIntervalMap. Per spec.md §7 these are
// programmer errors and are fatal. The text package's invariant checks
// panic with plain string messages naming the check; they do not
// construct a RangeError value.
type RangeError struct {
	Check  string
	Detail string
}

func (e RangeError) Error() string {
	return fmt.Sprintf("svtext: range error (%s): %s", e.Check, e.Detail)
}

// ExpansionError reports that a deferred sub-analysis's text did not
// byte-equal the parent slice at its recorded offset. Fatal, like
// RangeError.
type ExpansionError struct {
	Offset int
	Detail string
}

func (e ExpansionError) Error() string {
	return fmt.Sprintf("svtext: expansion error at offset %d: %s", e.Offset, e.Detail)
}
