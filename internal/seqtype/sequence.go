package seqtype

import "github.com/jacoelho/xqsem/internal/occurrence"

// SequenceType is an item type with cardinality bounds. Item is nil exactly
// when the bounds are (0, 0), the empty sequence.
//
// Build values with New, One, WithBounds or Empty. A literal that breaks the
// invariant, a nil Item or a zero upper bound, is read as the empty sequence.
type SequenceType struct {
	Item  ItemType
	Lower uint32
	Upper uint32
}

// Empty returns empty-sequence().
func Empty() SequenceType { return SequenceType{} }

// New returns item with the bounds of the occurrence indicator. A nil item
// yields the empty sequence.
func New(item ItemType, indicator occurrence.Indicator) SequenceType {
	if item == nil {
		return Empty()
	}
	lower, upper := indicator.Bounds()
	return SequenceType{Item: item, Lower: lower, Upper: upper}
}

// One returns item with no occurrence indicator.
func One(item ItemType) SequenceType { return New(item, occurrence.One) }

// WithBounds returns item with explicit bounds. A nil item or a zero upper
// bound yields the empty sequence, and a lower bound above the upper bound is
// clamped.
func WithBounds(item ItemType, lower, upper uint32) SequenceType {
	switch occurrence.CheckBounds(lower, upper) {
	case occurrence.BoundsEmpty:
		return Empty()
	case occurrence.BoundsMinGreaterThanMax:
		lower = upper
	}
	if item == nil {
		return Empty()
	}
	return SequenceType{Item: item, Lower: lower, Upper: upper}
}

// ItemType returns the item type, nil for the empty sequence.
func (s SequenceType) ItemType() ItemType {
	if s.IsEmpty() {
		return nil
	}
	return s.Item
}

// LowerBound returns the minimum number of items.
func (s SequenceType) LowerBound() uint32 {
	if s.IsEmpty() {
		return 0
	}
	return s.Lower
}

// UpperBound returns the maximum number of items; occurrence.Unbounded for * and +.
func (s SequenceType) UpperBound() uint32 {
	if s.IsEmpty() {
		return 0
	}
	return s.Upper
}

// IsEmpty reports whether s is empty-sequence().
func (s SequenceType) IsEmpty() bool { return s.Item == nil || s.Upper == 0 }

// Occurrence returns the indicator closest to the bounds and whether it
// matches them exactly.
func (s SequenceType) Occurrence() (occurrence.Indicator, bool) {
	if s.IsEmpty() {
		return occurrence.ZeroOrOne, false
	}
	if ind, ok := occurrence.FromBounds(s.Lower, s.Upper); ok {
		return ind, true
	}
	return occurrence.Nearest(s.Lower, s.Upper), false
}

// TypeName renders the canonical name of the sequence type.
func (s SequenceType) TypeName() string {
	if s.IsEmpty() {
		return "empty-sequence()"
	}
	name := Name(s.Item)
	if name == "" {
		return ""
	}
	ind, _ := s.Occurrence()
	return name + ind.Suffix()
}

// String returns TypeName.
func (s SequenceType) String() string { return s.TypeName() }

// Concat returns the type of the concatenation of a and b when both share an
// item type, otherwise item() with the summed bounds.
func Concat(a, b SequenceType) SequenceType {
	switch {
	case a.IsEmpty():
		return b
	case b.IsEmpty():
		return a
	}
	lower, upper := occurrence.Add(a.Lower, a.Upper, b.Lower, b.Upper)
	item := a.Item
	if !Equal(a.Item, b.Item) {
		item = AnyItem{}
	}
	return WithBounds(item, lower, upper)
}
