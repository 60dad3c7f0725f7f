// Package text implements the text-structure core: the data model that
// owns a unit of source text together with its token stream and concrete
// syntax tree, keeping byte-precise back-references consistent under
// trimming, rebasing, subtree expansion, and mutation.
package text

// Offset is the integer domain intervals are built over: byte offsets and
// line numbers both live here. Kept narrow (no float support) because the
// random-sampling generator needs to enumerate integer points.
type Offset interface {
	~int | ~int32 | ~int64
}

// Interval is a half-open range [Lo, Hi) over an Offset type.
type Interval[T Offset] struct {
	Lo, Hi T
}

// Empty reports whether the interval contains no points.
func (iv Interval[T]) Empty() bool {
	return iv.Lo >= iv.Hi
}

// Len returns Hi-Lo, clamped to zero for an empty interval.
func (iv Interval[T]) Len() T {
	if iv.Empty() {
		return 0
	}
	return iv.Hi - iv.Lo
}

// Contains reports whether v falls in [Lo, Hi).
func (iv Interval[T]) Contains(v T) bool {
	return v >= iv.Lo && v < iv.Hi
}

// ContainsRange reports whether other is a sub-range of iv.
func (iv Interval[T]) ContainsRange(other Interval[T]) bool {
	if other.Empty() {
		return other.Lo >= iv.Lo && other.Lo <= iv.Hi
	}
	return other.Lo >= iv.Lo && other.Hi <= iv.Hi
}

// overlaps reports whether the two intervals share any point.
func (iv Interval[T]) overlaps(other Interval[T]) bool {
	return iv.Lo < other.Hi && other.Lo < iv.Hi
}

// abuts reports whether the two intervals touch end-to-end without
// overlapping (e.g. [0,3) and [3,5)).
func (iv Interval[T]) abuts(other Interval[T]) bool {
	return iv.Hi == other.Lo || other.Hi == iv.Lo
}
