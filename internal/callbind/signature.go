package callbind

import (
	"strings"

	"github.com/jacoelho/xqsem/internal/occurrence"
	"github.com/jacoelho/xqsem/internal/qname"
	"github.com/jacoelho/xqsem/internal/seqtype"
)

// Variadic marks whether the last parameter collects extra arguments.
type Variadic uint8

const (
	VariadicNo Variadic = iota
	VariadicEllipsis
)

// Param is a declared parameter. Type is nil when undeclared.
type Param struct {
	Name qname.QName
	Type *seqtype.SequenceType
}

// Signature is a function declaration as seen by a call site.
type Signature struct {
	Name     qname.QName
	Params   []Param
	Variadic Variadic
	Return   *seqtype.SequenceType
}

// DeclaredArity is the number of declared parameters.
func (s Signature) DeclaredArity() int {
	return len(s.Params)
}

// RequiredArity is the number of arguments that must be supplied.
func (s Signature) RequiredArity() int {
	if s.Variadic == VariadicEllipsis && len(s.Params) > 0 {
		return len(s.Params) - 1
	}
	return len(s.Params)
}

// AcceptsArity reports whether a call with n arguments can bind to s.
func (s Signature) AcceptsArity(n int) bool {
	if s.Variadic == VariadicEllipsis && len(s.Params) > 0 {
		return n >= s.RequiredArity()
	}
	return n == s.DeclaredArity()
}

// FunctionType returns the function test matching s. Undeclared types are item()*.
func (s Signature) FunctionType() seqtype.Function {
	fn := seqtype.Function{Variadic: s.Variadic == VariadicEllipsis && len(s.Params) > 0}
	for _, p := range s.Params {
		fn.Params = append(fn.Params, typeOrAny(p.Type))
	}
	ret := typeOrAny(s.Return)
	fn.Return = &ret
	return fn
}

// String renders the signature as name($a as T, $b as T...) as R.
func (s Signature) String() string {
	var b strings.Builder
	b.WriteString(s.Name.String())
	b.WriteByte('(')
	for i, p := range s.Params {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('$')
		b.WriteString(p.Name.String())
		if p.Type != nil {
			b.WriteString(" as ")
			b.WriteString(p.Type.TypeName())
		}
		if s.Variadic == VariadicEllipsis && i == len(s.Params)-1 {
			b.WriteString("...")
		}
	}
	b.WriteByte(')')
	if s.Return != nil {
		b.WriteString(" as ")
		b.WriteString(s.Return.TypeName())
	}
	return b.String()
}

func typeOrAny(t *seqtype.SequenceType) seqtype.SequenceType {
	if t == nil {
		return seqtype.New(seqtype.AnyItem{}, occurrence.ZeroOrMore)
	}
	return *t
}

// DeclarationProvider supplies the candidate signatures for an expanded
// function name and arity. Candidates need not all accept the arity.
type DeclarationProvider interface {
	Signatures(name qname.QName, arity int) []Signature
}

// Select returns the first candidate that accepts arity.
func Select(candidates []Signature, arity int) (Signature, bool) {
	for _, sig := range candidates {
		if sig.AcceptsArity(arity) {
			return sig, true
		}
	}
	return Signature{}, false
}

// SelectKeywords returns the first candidate whose fixed parameters outnumber
// arity and name every keyword. A keyword call short of arguments binds to it
// with the unfilled parameters Missing.
func SelectKeywords(candidates []Signature, arity int, keywords []string) (Signature, bool) {
	if len(keywords) == 0 {
		return Signature{}, false
	}
	for _, sig := range candidates {
		if arity >= sig.RequiredArity() || !sig.namesAll(keywords) {
			continue
		}
		return sig, true
	}
	return Signature{}, false
}

func (s Signature) namesAll(keywords []string) bool {
	fixed := s.Params[:s.RequiredArity()]
	for _, kw := range keywords {
		found := false
		for _, p := range fixed {
			if name := p.Name.Local.Value(); name != "" && name == kw {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
