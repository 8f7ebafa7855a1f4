package seqtype

import "github.com/jacoelho/xqsem/internal/qname"

// Annotation is %name or %name(literal, ...). Values hold literals as written.
type Annotation struct {
	Name   qname.QName
	Values []string
}

// Function is a function test. Any marks function(*). Return is nil when the
// test has no return type. Variadic marks the last parameter as repeatable.
type Function struct {
	Annotations []Annotation
	Params      []SequenceType
	Return      *SequenceType
	Any         bool
	Variadic    bool
}

// Map is map(K, V) or, with Any set, map(*). Value is nil when the value
// type is missing.
type Map struct {
	Key   ItemType
	Value *SequenceType
	Any   bool
}

// Array is array(T) or, with Any set, array(*).
type Array struct {
	Member SequenceType
	Any    bool
}

// AnyFunction returns function(*).
func AnyFunction() Function { return Function{Any: true} }

// AnyMap returns map(*).
func AnyMap() Map { return Map{Any: true} }

// AnyArray returns array(*).
func AnyArray() Array { return Array{Any: true} }

func (Function) Kind() Kind { return KindFunction }
func (Map) Kind() Kind      { return KindMap }
func (Array) Kind() Kind    { return KindArray }

func (Function) itemType() {}
func (Map) itemType()      {}
func (Array) itemType()    {}
