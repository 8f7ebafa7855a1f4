package typesyntax

import (
	"strings"

	"github.com/jacoelho/xqsem/internal/occurrence"
	"github.com/jacoelho/xqsem/internal/qname"
	"github.com/jacoelho/xqsem/internal/seqtype"
)

// ParseSequenceType reads a sequence type.
func ParseSequenceType(text string) seqtype.SequenceType {
	return newReader(text).sequenceType()
}

// ParseItemType reads an item type without an occurrence indicator.
func ParseItemType(text string) seqtype.ItemType {
	return newReader(text).itemType()
}

func (r *typeReader) sequenceType() seqtype.SequenceType {
	if tok := r.peek(); tok.kind == tokName && tok.text == "empty-sequence" && r.followedByParen() {
		r.next()
		r.accept("(")
		r.accept(")")
		return seqtype.Empty()
	}
	item := r.itemType()
	return seqtype.New(item, r.occurrence())
}

func (r *typeReader) occurrence() occurrence.Indicator {
	tok := r.peek()
	if tok.kind != tokPunct || len(tok.text) != 1 {
		return occurrence.One
	}
	ind, ok := occurrence.ParseSuffix(tok.text[0])
	if ok {
		r.next()
	}
	return ind
}

func (r *typeReader) itemType() seqtype.ItemType {
	tok := r.peek()
	switch {
	case tok.is("("):
		r.next()
		inner := r.itemType()
		r.accept(")")
		return seqtype.Parenthesized{Inner: inner}
	case tok.is(".."):
		r.next()
		return seqtype.Self()
	case tok.is("%"):
		return r.function(r.annotations())
	case tok.kind != tokName:
		return seqtype.AtomicOrUnion{}
	}

	if !r.followedByParen() {
		r.next()
		return seqtype.AtomicOrUnion{Name: qname.Parse(tok.text)}
	}
	if kind, ok := seqtype.NodeKindFromKeyword(tok.text); ok {
		r.next()
		return r.node(kind)
	}
	switch tok.text {
	case "item":
		r.next()
		r.accept("(")
		r.accept(")")
		return seqtype.AnyItem{}
	case "function", "fn":
		return r.function(nil)
	case "map":
		r.next()
		return r.mapType()
	case "array":
		r.next()
		return r.arrayType()
	case "record":
		r.next()
		return r.record()
	case "union":
		r.next()
		return r.union()
	case "enum":
		r.next()
		return r.enum()
	}
	// A call-like name that is not a type keyword cannot be a type.
	r.next()
	return seqtype.AtomicOrUnion{}
}

func (r *typeReader) node(kind seqtype.NodeKind) seqtype.ItemType {
	n := seqtype.Node{Test: kind}
	r.accept("(")
	switch kind {
	case seqtype.NodeElement, seqtype.NodeAttribute:
		if name, ok := r.nameOrWildcard(); ok {
			n.Name = name
			if r.accept(",") {
				n.ContentType = r.name()
				n.Nillable = r.accept("?")
			}
		}
	case seqtype.NodeSchemaElement, seqtype.NodeSchemaAttribute:
		n.Name = r.name()
	case seqtype.NodeProcessingInstruction:
		if tok := r.peek(); tok.kind == tokName || tok.kind == tokString {
			r.next()
			n.Target = tok.text
		}
	case seqtype.NodeDocument:
		if tok := r.peek(); tok.kind == tokName {
			n.Document = r.itemType()
		}
	}
	r.accept(")")
	return n
}

// nameOrWildcard reads an element or attribute name constraint, where a
// bare * stands for any name.
func (r *typeReader) nameOrWildcard() (qname.QName, bool) {
	if r.accept("*") {
		return qname.QName{Local: qname.Wildcard}, true
	}
	if r.peek().kind != tokName {
		return qname.QName{}, false
	}
	name := r.name()
	return name, true
}

func (r *typeReader) name() qname.QName {
	tok := r.peek()
	if tok.kind != tokName {
		return qname.QName{}
	}
	r.next()
	return qname.Parse(tok.text)
}

func (r *typeReader) annotations() []seqtype.Annotation {
	var anns []seqtype.Annotation
	for r.accept("%") {
		ann := seqtype.Annotation{Name: r.name()}
		if r.accept("(") {
			for {
				tok := r.peek()
				if tok.kind == tokString {
					ann.Values = append(ann.Values, `"`+strings.ReplaceAll(tok.text, `"`, `""`)+`"`)
				} else if tok.kind == tokNumber {
					ann.Values = append(ann.Values, tok.text)
				} else {
					break
				}
				r.next()
				if !r.accept(",") {
					break
				}
			}
			r.accept(")")
		}
		anns = append(anns, ann)
	}
	return anns
}

func (r *typeReader) function(anns []seqtype.Annotation) seqtype.ItemType {
	fn := seqtype.Function{Annotations: anns}
	if !r.acceptName("function") && !r.acceptName("fn") {
		return fn
	}
	if !r.accept("(") {
		return fn
	}
	if r.accept("*") {
		r.accept(")")
		fn.Any = true
		return fn
	}
	for !r.peek().is(")") && r.peek().kind != tokEOF {
		fn.Params = append(fn.Params, r.sequenceType())
		if r.accept("...") {
			fn.Variadic = true
		}
		if !r.accept(",") {
			break
		}
	}
	r.accept(")")
	if r.acceptName("as") {
		ret := r.sequenceType()
		fn.Return = &ret
	}
	return fn
}

func (r *typeReader) mapType() seqtype.ItemType {
	r.accept("(")
	if r.accept("*") {
		r.accept(")")
		return seqtype.AnyMap()
	}
	m := seqtype.Map{Key: r.itemType()}
	if r.accept(",") {
		value := r.sequenceType()
		m.Value = &value
	}
	r.accept(")")
	return m
}

func (r *typeReader) arrayType() seqtype.ItemType {
	r.accept("(")
	if r.accept("*") {
		r.accept(")")
		return seqtype.AnyArray()
	}
	a := seqtype.Array{Member: r.sequenceType()}
	r.accept(")")
	return a
}

func (r *typeReader) record() seqtype.ItemType {
	r.accept("(")
	var fields []seqtype.Field
	extensible := false
	for {
		if r.accept("*") {
			extensible = true
			break
		}
		tok := r.peek()
		if tok.kind != tokName && tok.kind != tokString {
			break
		}
		r.next()
		field := seqtype.Field{Name: tok.text, Optional: r.accept("?")}
		if r.acceptName("as") {
			t := r.sequenceType()
			field.Type = &t
		}
		fields = append(fields, field)
		if !r.accept(",") {
			break
		}
	}
	r.accept(")")
	return seqtype.NewRecord(fields, extensible)
}

func (r *typeReader) union() seqtype.ItemType {
	r.accept("(")
	var u seqtype.LocalUnion
	for !r.peek().is(")") && r.peek().kind != tokEOF {
		u.Members = append(u.Members, r.itemType())
		if !r.accept(",") {
			break
		}
	}
	r.accept(")")
	return u
}

func (r *typeReader) enum() seqtype.ItemType {
	r.accept("(")
	var e seqtype.Enumeration
	for r.peek().kind == tokString {
		e.Values = append(e.Values, r.next().text)
		if !r.accept(",") {
			break
		}
	}
	r.accept(")")
	return e
}
