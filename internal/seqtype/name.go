package seqtype

import (
	"strings"

	"github.com/jacoelho/xqsem/internal/qname"
)

// Name renders the canonical name of an item type. Incomplete types render
// as the empty string, and so does any type with an incomplete component.
func Name(t ItemType) string {
	var b strings.Builder
	if !writeItemType(&b, t) {
		return ""
	}
	return b.String()
}

// writeItemType reports false when t or one of its components is incomplete.
func writeItemType(b *strings.Builder, t ItemType) bool {
	switch t := t.(type) {
	case nil:
		return false
	case AnyItem:
		b.WriteString("item()")
	case Node:
		writeNode(b, t)
	case AtomicOrUnion:
		if t.Name.IsIncomplete() {
			return false
		}
		b.WriteString(t.Name.String())
	case LocalUnion:
		b.WriteString("union(")
		for i, member := range t.Members {
			if i > 0 {
				b.WriteString(", ")
			}
			if !writeItemType(b, member) {
				return false
			}
		}
		b.WriteByte(')')
	case Enumeration:
		b.WriteString("enum(")
		for i, value := range t.Values {
			if i > 0 {
				b.WriteString(", ")
			}
			writeStringLiteral(b, value)
		}
		b.WriteByte(')')
	case Function:
		return writeFunction(b, t)
	case Map:
		if t.Any {
			b.WriteString("map(*)")
			return true
		}
		b.WriteString("map(")
		if !writeItemType(b, t.Key) || t.Value == nil {
			return false
		}
		b.WriteString(", ")
		if !writeSequenceType(b, *t.Value) {
			return false
		}
		b.WriteByte(')')
	case Array:
		if t.Any {
			b.WriteString("array(*)")
			return true
		}
		b.WriteString("array(")
		if !writeSequenceType(b, t.Member) {
			return false
		}
		b.WriteByte(')')
	case *Record:
		return writeRecord(b, t)
	case *SelfReference:
		b.WriteString("..")
	case Parenthesized:
		b.WriteByte('(')
		if !writeItemType(b, t.Inner) {
			return false
		}
		b.WriteByte(')')
	}
	return true
}

func writeSequenceType(b *strings.Builder, s SequenceType) bool {
	name := s.TypeName()
	b.WriteString(name)
	return name != ""
}

func writeNode(b *strings.Builder, t Node) {
	b.WriteString(t.Test.Keyword())
	b.WriteByte('(')
	switch t.Test {
	case NodeElement, NodeAttribute:
		writeNodeConstraint(b, t)
	case NodeSchemaElement, NodeSchemaAttribute:
		writeName(b, t.Name)
	case NodeProcessingInstruction:
		b.WriteString(t.Target)
	case NodeDocument:
		if t.Document != nil {
			writeItemType(b, t.Document)
		}
	}
	b.WriteByte(')')
}

func writeNodeConstraint(b *strings.Builder, t Node) {
	hasName := !t.Name.IsZero()
	hasType := !t.ContentType.IsZero()
	if !hasName && !hasType {
		return
	}
	if hasName {
		writeName(b, t.Name)
	} else {
		b.WriteByte('*')
	}
	if !hasType {
		return
	}
	b.WriteByte(',')
	writeName(b, t.ContentType)
	if t.Nillable && t.Test == NodeElement {
		b.WriteByte('?')
	}
}

func writeName(b *strings.Builder, name qname.QName) {
	if name.IsIncomplete() && !name.Prefix.IsWildcard() {
		return
	}
	b.WriteString(name.String())
}

func writeFunction(b *strings.Builder, t Function) bool {
	for _, ann := range t.Annotations {
		if ann.Name.IsIncomplete() {
			continue
		}
		b.WriteByte('%')
		b.WriteString(ann.Name.String())
		if len(ann.Values) > 0 {
			b.WriteByte('(')
			b.WriteString(strings.Join(ann.Values, ", "))
			b.WriteByte(')')
		}
		b.WriteByte(' ')
	}
	if t.Any {
		b.WriteString("function(*)")
		return true
	}
	b.WriteString("function(")
	for i, param := range t.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		if !writeSequenceType(b, param) {
			return false
		}
	}
	if t.Variadic && len(t.Params) > 0 {
		b.WriteString("...")
	}
	b.WriteByte(')')
	if t.Return == nil {
		return true
	}
	// A missing return type leaves the function unconstrained.
	if ret := t.Return.TypeName(); ret != "" {
		b.WriteString(" as ")
		b.WriteString(ret)
	}
	return true
}

func writeRecord(b *strings.Builder, r *Record) bool {
	if r.IsUnconstrained() {
		b.WriteString("map(*)")
		return true
	}
	b.WriteString("record(")
	for i, f := range r.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		writeFieldName(b, f.Name)
		if f.Optional {
			b.WriteByte('?')
		}
		if f.Type != nil {
			b.WriteString(" as ")
			if !writeSequenceType(b, *f.Type) {
				return false
			}
		}
	}
	if r.extensible {
		b.WriteString(", *")
	}
	b.WriteByte(')')
	return true
}

func writeFieldName(b *strings.Builder, name string) {
	if qname.IsValidNCName(name) {
		b.WriteString(name)
		return
	}
	writeStringLiteral(b, name)
}

func writeStringLiteral(b *strings.Builder, value string) {
	b.WriteByte('"')
	b.WriteString(strings.ReplaceAll(value, `"`, `""`))
	b.WriteByte('"')
}
