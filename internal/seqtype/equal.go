package seqtype

import (
	"errors"
	"slices"

	"github.com/jacoelho/xqsem/internal/resolveguard"
)

var errNotEqual = errors.New("item types differ")

type recordPair struct {
	left, right *Record
}

// Equal reports whether two item types are structurally equal. Records that
// refer to themselves compare equal when their shapes match. A record with
// no fields equals map(*).
func Equal(a, b ItemType) bool {
	c := comparer{guard: resolveguard.NewPointer[recordPair]()}
	return c.itemTypes(a, b) == nil
}

// EqualSequence reports whether two sequence types are structurally equal.
func EqualSequence(a, b SequenceType) bool {
	c := comparer{guard: resolveguard.NewPointer[recordPair]()}
	return c.sequences(a, b) == nil
}

type comparer struct {
	guard *resolveguard.Pointer[recordPair]
}

func (c comparer) itemTypes(a, b ItemType) error {
	a, b = normalize(a), normalize(b)
	if a == nil || b == nil {
		if a == nil && b == nil {
			return nil
		}
		return errNotEqual
	}
	if a.Kind() != b.Kind() {
		return errNotEqual
	}

	switch a := a.(type) {
	case AnyItem:
		return nil
	case AtomicOrUnion:
		return check(a.Name == b.(AtomicOrUnion).Name)
	case Node:
		return c.nodes(a, b.(Node))
	case LocalUnion:
		bu := b.(LocalUnion)
		if len(a.Members) != len(bu.Members) {
			return errNotEqual
		}
		for i := range a.Members {
			if err := c.itemTypes(a.Members[i], bu.Members[i]); err != nil {
				return err
			}
		}
		return nil
	case Enumeration:
		return check(slices.Equal(a.Values, b.(Enumeration).Values))
	case Function:
		return c.functions(a, b.(Function))
	case Map:
		bm := b.(Map)
		if a.Any || bm.Any {
			return check(a.Any == bm.Any)
		}
		if err := c.itemTypes(a.Key, bm.Key); err != nil {
			return err
		}
		if a.Value == nil || bm.Value == nil {
			return check(a.Value == nil && bm.Value == nil)
		}
		return c.sequences(*a.Value, *bm.Value)
	case Array:
		ba := b.(Array)
		if a.Any || ba.Any {
			return check(a.Any == ba.Any)
		}
		return c.sequences(a.Member, ba.Member)
	case *Record:
		return c.records(a, b.(*Record))
	case *SelfReference:
		return c.records(a.Record(), b.(*SelfReference).Record())
	case Parenthesized:
		return c.itemTypes(a.Inner, b.(Parenthesized).Inner)
	}
	return errNotEqual
}

// normalize maps an unconstrained record to map(*).
func normalize(t ItemType) ItemType {
	if r, ok := t.(*Record); ok && r != nil && r.IsUnconstrained() {
		return AnyMap()
	}
	return t
}

func (c comparer) nodes(a, b Node) error {
	if a.Test != b.Test || a.Name != b.Name || a.ContentType != b.ContentType ||
		a.Nillable != b.Nillable || a.Target != b.Target {
		return errNotEqual
	}
	return c.itemTypes(a.Document, b.Document)
}

func (c comparer) functions(a, b Function) error {
	if a.Any != b.Any || a.Variadic != b.Variadic || len(a.Params) != len(b.Params) ||
		len(a.Annotations) != len(b.Annotations) {
		return errNotEqual
	}
	for i := range a.Annotations {
		if a.Annotations[i].Name != b.Annotations[i].Name ||
			!slices.Equal(a.Annotations[i].Values, b.Annotations[i].Values) {
			return errNotEqual
		}
	}
	for i := range a.Params {
		if err := c.sequences(a.Params[i], b.Params[i]); err != nil {
			return err
		}
	}
	if (a.Return == nil) != (b.Return == nil) {
		return errNotEqual
	}
	if a.Return != nil {
		return c.sequences(*a.Return, *b.Return)
	}
	return nil
}

func (c comparer) records(a, b *Record) error {
	if a == nil || b == nil {
		return check(a == b)
	}
	if a == b {
		return nil
	}
	return c.guard.Resolve(recordPair{left: a, right: b}, nil, func() error {
		if a.extensible != b.extensible || len(a.fields) != len(b.fields) {
			return errNotEqual
		}
		for i := range a.fields {
			fa, fb := a.fields[i], b.fields[i]
			if fa.Name != fb.Name || fa.Optional != fb.Optional || (fa.Type == nil) != (fb.Type == nil) {
				return errNotEqual
			}
			if fa.Type == nil {
				continue
			}
			if err := c.sequences(*fa.Type, *fb.Type); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c comparer) sequences(a, b SequenceType) error {
	if a.IsEmpty() || b.IsEmpty() {
		return check(a.IsEmpty() && b.IsEmpty())
	}
	if a.Lower != b.Lower || a.Upper != b.Upper {
		return errNotEqual
	}
	return c.itemTypes(a.Item, b.Item)
}

func check(ok bool) error {
	if ok {
		return nil
	}
	return errNotEqual
}
