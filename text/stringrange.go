package text

import (
	"fmt"
	"strings"
	"unsafe"
)

// dataPointer returns the address of s's first byte, or 0 for an empty
// string (an empty string has no addressable backing byte; treating it as
// "no address" mirrors the original implementation's pointer-range map,
// which cannot locate an owner for a zero-length view either).
func dataPointer(s string) uintptr {
	if len(s) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(unsafe.StringData(s)))
}

// IsSubRange reports whether sub is a byte-for-byte sub-slice of base,
// i.e. whether sub's backing bytes lie within base's backing bytes at the
// same address range. This is a pointer-identity check, not a substring
// content check: two equal-content but independently allocated strings are
// not sub-ranges of one another.
func IsSubRange(sub, base string) bool {
	if len(sub) == 0 {
		// An empty slice is considered contained if its address sits
		// within base's bounds (inclusive of the end, since a zero-length
		// view can legitimately point just past the last byte).
		subLo := dataPointer(sub)
		baseLo := dataPointer(base)
		if subLo == 0 || baseLo == 0 {
			return subLo == baseLo
		}
		return subLo >= baseLo && subLo <= baseLo+uintptr(len(base))
	}
	subLo := dataPointer(sub)
	subHi := subLo + uintptr(len(sub))
	baseLo := dataPointer(base)
	baseHi := baseLo + uintptr(len(base))
	return subLo >= baseLo && subHi <= baseHi
}

// SubRangeOffsets returns the (begin,end) byte offsets of sub relative to
// base's start. Fails (returns ok=false) if sub is not a sub-range of base.
func SubRangeOffsets(sub, base string) (begin, end int, ok bool) {
	if !IsSubRange(sub, base) {
		return 0, 0, false
	}
	begin = int(dataPointer(sub) - dataPointer(base))
	end = begin + len(sub)
	return begin, end, true
}

// StringViewSuperRangeMap maps named owner strings (super-ranges) by their
// backing memory address range, so that given any interior slice one can
// recover which owner it was carved from. Grounded on
// verible/common/strings/string-memory-map.h.
type StringViewSuperRangeMap struct {
	m DisjointIntervalMap[uintptr, string]
}

// NewStringViewSuperRangeMap returns an empty map.
func NewStringViewSuperRangeMap() *StringViewSuperRangeMap {
	return &StringViewSuperRangeMap{}
}

// Insert registers owner's backing bytes as a super-range under the given
// name. Panics (fatal RangeError, per spec.md §7) if owner's address range
// overlaps an already-registered super-range — two live strings can never
// legitimately alias.
func (m *StringViewSuperRangeMap) Insert(name string, owner string) {
	if len(owner) == 0 {
		return
	}
	lo := dataPointer(owner)
	hi := lo + uintptr(len(owner))
	if !m.m.Emplace(lo, hi, name) {
		panic(fmt.Sprintf("text: StringViewSuperRangeMap.Insert: %q overlaps an existing super-range", name))
	}
}

// FindSuperRange returns the name of the super-range that s was carved
// from, if any was registered.
func (m *StringViewSuperRangeMap) FindSuperRange(s string) (name string, ok bool) {
	if len(s) == 0 {
		return "", false
	}
	return m.m.Find(dataPointer(s))
}

// DisplayWhitespace renders whitespace visibly (\n, \t, \r escaped) so
// test failure messages comparing whitespace-laden ranges stay legible.
// Grounded on verible/common/strings/display-utils.h.
func DisplayWhitespace(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case ' ':
			b.WriteString("·") // middle dot stand-in for a space
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
