package occurrence

import "math"

// Unbounded is the upper bound of * and +.
const Unbounded uint32 = math.MaxUint32

// Indicator is an occurrence indicator on a sequence type.
type Indicator uint8

const (
	// One is the absence of an indicator: exactly one item.
	One Indicator = iota
	// ZeroOrOne is ?.
	ZeroOrOne
	// ZeroOrMore is *.
	ZeroOrMore
	// OneOrMore is +.
	OneOrMore
)

// Bounds returns the cardinality bounds of the indicator.
func (i Indicator) Bounds() (lower, upper uint32) {
	switch i {
	case ZeroOrOne:
		return 0, 1
	case ZeroOrMore:
		return 0, Unbounded
	case OneOrMore:
		return 1, Unbounded
	default:
		return 1, 1
	}
}

// Suffix returns the indicator as written after an item type.
func (i Indicator) Suffix() string {
	switch i {
	case ZeroOrOne:
		return "?"
	case ZeroOrMore:
		return "*"
	case OneOrMore:
		return "+"
	default:
		return ""
	}
}

// ParseSuffix maps ?, * and + to their indicator; anything else is One.
func ParseSuffix(b byte) (Indicator, bool) {
	switch b {
	case '?':
		return ZeroOrOne, true
	case '*':
		return ZeroOrMore, true
	case '+':
		return OneOrMore, true
	default:
		return One, false
	}
}

// FromBounds returns the indicator with exactly the given bounds.
func FromBounds(lower, upper uint32) (Indicator, bool) {
	switch {
	case lower == 1 && upper == 1:
		return One, true
	case lower == 0 && upper == 1:
		return ZeroOrOne, true
	case lower == 0 && upper == Unbounded:
		return ZeroOrMore, true
	case lower == 1 && upper == Unbounded:
		return OneOrMore, true
	default:
		return One, false
	}
}

// Nearest returns the narrowest indicator whose bounds contain [lower, upper].
func Nearest(lower, upper uint32) Indicator {
	switch {
	case upper <= 1 && lower >= 1:
		return One
	case upper <= 1:
		return ZeroOrOne
	case lower == 0:
		return ZeroOrMore
	default:
		return OneOrMore
	}
}

// BoundsIssue enumerates bounds issue values.
type BoundsIssue uint8

const (
	BoundsOK BoundsIssue = iota
	BoundsEmpty
	BoundsMinGreaterThanMax
)

// CheckBounds validates lower/upper bound consistency. A zero upper bound
// describes the empty sequence.
func CheckBounds(lower, upper uint32) BoundsIssue {
	if upper == 0 {
		return BoundsEmpty
	}
	if upper != Unbounded && lower > upper {
		return BoundsMinGreaterThanMax
	}
	return BoundsOK
}

// Add returns the bounds of the concatenation of two sequences.
func Add(lowerA, upperA, lowerB, upperB uint32) (lower, upper uint32) {
	return saturatingAdd(lowerA, lowerB), saturatingAdd(upperA, upperB)
}

func saturatingAdd(a, b uint32) uint32 {
	if a == Unbounded || b == Unbounded || a > Unbounded-b {
		return Unbounded
	}
	return a + b
}
