package seqtype

import "github.com/jacoelho/xqsem/internal/qname"

// Kind classifies an item type.
type Kind uint8

const (
	// KindAnyType is the fallback for type names that could not be read.
	KindAnyType Kind = iota
	KindAnyItem
	KindNode
	KindAtomicOrUnion
	KindLocalUnion
	KindEnumeration
	KindFunction
	KindMap
	KindArray
	KindRecord
	KindSelfReference
	KindParenthesized
)

var kindNames = [...]string{
	KindAnyType:       "AnyType",
	KindAnyItem:       "AnyItem",
	KindNode:          "Node",
	KindAtomicOrUnion: "AtomicOrUnion",
	KindLocalUnion:    "LocalUnion",
	KindEnumeration:   "Enumeration",
	KindFunction:      "Function",
	KindMap:           "Map",
	KindArray:         "Array",
	KindRecord:        "Record",
	KindSelfReference: "SelfReference",
	KindParenthesized: "Parenthesized",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// ItemType is one of the item type variants declared in this package.
type ItemType interface {
	Kind() Kind
	itemType()
}

// AnyItem is item().
type AnyItem struct{}

// AtomicOrUnion is a named atomic or union type, such as xs:string.
type AtomicOrUnion struct {
	Name qname.QName
}

// LocalUnion is union(T1, T2, ...).
type LocalUnion struct {
	Members []ItemType
}

// Enumeration is enum("a", "b", ...).
type Enumeration struct {
	Values []string
}

// Parenthesized is an item type written inside parentheses.
type Parenthesized struct {
	Inner ItemType
}

func (AnyItem) Kind() Kind { return KindAnyItem }

// Kind falls back to KindAnyType when the name is incomplete.
func (t AtomicOrUnion) Kind() Kind {
	if t.Name.IsIncomplete() {
		return KindAnyType
	}
	return KindAtomicOrUnion
}

func (LocalUnion) Kind() Kind    { return KindLocalUnion }
func (Enumeration) Kind() Kind   { return KindEnumeration }
func (Parenthesized) Kind() Kind { return KindParenthesized }

// MemberTypes returns the union members.
func (t LocalUnion) MemberTypes() []ItemType { return t.Members }

// Unwrap strips any number of enclosing parentheses.
func Unwrap(t ItemType) ItemType {
	for {
		p, ok := t.(Parenthesized)
		if !ok {
			return t
		}
		t = p.Inner
	}
}

func (AnyItem) itemType()       {}
func (AtomicOrUnion) itemType() {}
func (LocalUnion) itemType()    {}
func (Enumeration) itemType()   {}
func (Parenthesized) itemType() {}
