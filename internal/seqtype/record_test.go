package seqtype

import (
	"testing"

	"github.com/jacoelho/xqsem/internal/occurrence"
)

func linkedList() *Record {
	next := New(Self(), occurrence.ZeroOrOne)
	return NewRecord([]Field{
		{Name: "value", Type: seq(AnyItem{}, occurrence.One)},
		{Name: "next", Type: &next},
	}, false)
}

func TestRecordSelfReference(t *testing.T) {
	list := linkedList()
	if got, want := Name(list), "record(value as item(), next as ..?)"; got != want {
		t.Fatalf("Name() = %q, want %q", got, want)
	}

	field, ok := list.Field("next")
	if !ok {
		t.Fatal("Field(next) missing")
	}
	self, ok := field.Type.ItemType().(*SelfReference)
	if !ok {
		t.Fatalf("next item type = %T, want *SelfReference", field.Type.ItemType())
	}
	if self.Record() != list {
		t.Fatal("self-reference does not point at the enclosing record")
	}
	if self.ItemType() != ItemType(list) {
		t.Fatal("ItemType() is not the enclosing record")
	}
}

func TestNestedRecordKeepsOwnSelfReference(t *testing.T) {
	innerSelf := One(Self())
	inner := NewRecord([]Field{{Name: "child", Type: &innerSelf}}, false)
	innerType := One(inner)
	outerSelf := One(Self())
	outer := NewRecord([]Field{
		{Name: "inner", Type: &innerType},
		{Name: "self", Type: &outerSelf},
	}, false)

	if innerSelf.Item.(*SelfReference).Record() != inner {
		t.Fatal("inner self-reference patched to the wrong record")
	}
	if outerSelf.Item.(*SelfReference).Record() != outer {
		t.Fatal("outer self-reference patched to the wrong record")
	}
}

func TestUnpatchedSelfReference(t *testing.T) {
	s := Self()
	if s.Record() != nil || s.ItemType() != nil {
		t.Fatal("placeholder self-reference resolved before NewRecord")
	}
	if Name(s) != ".." {
		t.Fatalf("Name() = %q, want ..", Name(s))
	}
}

func TestRecordEqualWithCycles(t *testing.T) {
	if !Equal(linkedList(), linkedList()) {
		t.Fatal("Equal() = false for identical self-referencing records")
	}

	other := New(Self(), occurrence.ZeroOrMore)
	different := NewRecord([]Field{
		{Name: "value", Type: seq(AnyItem{}, occurrence.One)},
		{Name: "next", Type: &other},
	}, false)
	if Equal(linkedList(), different) {
		t.Fatal("Equal() = true for records with different self-reference cardinality")
	}
}
