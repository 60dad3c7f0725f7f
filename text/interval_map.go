package text

import (
	"fmt"
	"sort"
)

type intervalMapEntry[T Offset, V any] struct {
	iv    Interval[T]
	value V
}

// DisjointIntervalMap maps disjoint half-open ranges to owned values.
// Abutting ranges are allowed; overlapping ranges are rejected.
// Grounded on verible/common/util/interval-map.h.
type DisjointIntervalMap[T Offset, V any] struct {
	entries []intervalMapEntry[T, V]
}

func (m *DisjointIntervalMap[T, V]) insertIndex(lo T) int {
	return sort.Search(len(m.entries), func(i int) bool { return m.entries[i].iv.Hi > lo })
}

// Emplace attempts to insert value for [lo,hi). Returns false without
// modifying the map if the range overlaps an existing entry.
func (m *DisjointIntervalMap[T, V]) Emplace(lo, hi T, value V) bool {
	if lo > hi {
		panic(fmt.Sprintf("text: DisjointIntervalMap.Emplace: backwards range [%v,%v)", lo, hi))
	}
	nr := Interval[T]{lo, hi}
	i := m.insertIndex(lo)
	if i < len(m.entries) && m.entries[i].iv.overlaps(nr) {
		return false
	}
	if i > 0 && m.entries[i-1].iv.overlaps(nr) {
		return false
	}
	entry := intervalMapEntry[T, V]{nr, value}
	m.entries = append(m.entries, entry)
	copy(m.entries[i+1:], m.entries[i:])
	m.entries[i] = entry
	return true
}

// MustEmplace is like Emplace but panics (fatal, per spec.md's RangeError
// policy) if the range overlaps an existing entry.
func (m *DisjointIntervalMap[T, V]) MustEmplace(lo, hi T, value V) {
	if !m.Emplace(lo, hi, value) {
		panic(fmt.Sprintf("text: DisjointIntervalMap.MustEmplace: range [%v,%v) overlaps an existing entry", lo, hi))
	}
}

// Find returns the value whose range contains v, if any.
func (m *DisjointIntervalMap[T, V]) Find(v T) (value V, ok bool) {
	i := sort.Search(len(m.entries), func(i int) bool { return m.entries[i].iv.Hi > v })
	if i < len(m.entries) && m.entries[i].iv.Lo <= v {
		return m.entries[i].value, true
	}
	return value, false
}

// FindRange returns the value of the single existing entry that fully
// contains [lo,hi), if any.
func (m *DisjointIntervalMap[T, V]) FindRange(lo, hi T) (value V, ok bool) {
	i := sort.Search(len(m.entries), func(i int) bool { return m.entries[i].iv.Hi > lo })
	if i < len(m.entries) && m.entries[i].iv.ContainsRange(Interval[T]{lo, hi}) {
		return m.entries[i].value, true
	}
	return value, false
}

// Len returns the number of entries.
func (m *DisjointIntervalMap[T, V]) Len() int { return len(m.entries) }

// Range calls f for every entry in ascending order of Lo. Stops early if f
// returns false.
func (m *DisjointIntervalMap[T, V]) Range(f func(iv Interval[T], value V) bool) {
	for _, e := range m.entries {
		if !f(e.iv, e.value) {
			return
		}
	}
}

// ByteOffset is a byte position within an owning text buffer. A distinct
// named type (not an alias) so byte-offset ranges can never be mixed with
// line-number ranges without an explicit conversion.
type ByteOffset int32

// LineNumber is a zero-based line index within an owning text buffer. A
// distinct named type for the same reason as ByteOffset.
type LineNumber int32

// ByteOffsetSet is a type-safe newtype over IntervalSet[ByteOffset], used so
// byte-offset ranges are never accidentally mixed with line-number ranges.
type ByteOffsetSet struct {
	IntervalSet[ByteOffset]
}

// NewByteOffsetSet builds an empty ByteOffsetSet.
func NewByteOffsetSet() *ByteOffsetSet {
	return &ByteOffsetSet{}
}

// LineNumberSet is a type-safe newtype over IntervalSet[LineNumber].
type LineNumberSet struct {
	IntervalSet[LineNumber]
}

// NewLineNumberSet builds an empty LineNumberSet.
func NewLineNumberSet() *LineNumberSet {
	return &LineNumberSet{}
}
