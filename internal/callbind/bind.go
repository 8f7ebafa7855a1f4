package callbind

import "github.com/jacoelho/xqsem/internal/seqtype"

// Keyword is a name := value argument.
type Keyword[E any] struct {
	Name  string
	Value E
}

// Call holds the arguments of a call site. For arrow calls, Implicit holds the
// expression left of the arrow and HasImplicit is set.
type Call[E any] struct {
	Positional  []E
	Keywords    []Keyword[E]
	Implicit    E
	HasImplicit bool
}

// Arrow returns call with implicit bound ahead of its positional arguments.
func Arrow[E any](implicit E, call Call[E]) Call[E] {
	call.Implicit = implicit
	call.HasImplicit = true
	return call
}

// Arity counts the supplied arguments. Repeated keywords count once.
func (c Call[E]) Arity() int {
	n := len(c.Positional)
	if c.HasImplicit {
		n++
	}
	seen := make(map[string]bool, len(c.Keywords))
	for _, kw := range c.Keywords {
		if !seen[kw.Name] {
			seen[kw.Name] = true
			n++
		}
	}
	return n
}

// BindingKind says how a parameter was satisfied.
type BindingKind uint8

const (
	// Bound parameters have a single argument expression in Value.
	Bound BindingKind = iota
	// Concatenation parameters collect several variadic arguments in Values.
	Concatenation
	// Missing parameters were given no argument.
	Missing
	// Empty variadic parameters were given zero arguments.
	Empty
)

// String returns the kind name.
func (k BindingKind) String() string {
	switch k {
	case Bound:
		return "Bound"
	case Concatenation:
		return "Concatenation"
	case Missing:
		return "Missing"
	case Empty:
		return "Empty"
	default:
		return "BindingKind(?)"
	}
}

// Binding pairs a declared parameter with its argument. Type is the
// parameter's declared type, widened to the summed cardinality for a
// concatenation, and nil when the parameter has no declared type.
type Binding[E any] struct {
	Param  Param
	Kind   BindingKind
	Value  E
	Values []E
	Type   *seqtype.SequenceType
}

// Bind matches call arguments to the parameters of sig, in declaration order.
//
// Positional arguments fill parameters first; a parameter left over takes the
// first keyword argument with its name, or is Missing. The variadic parameter
// collects every remaining positional argument. Keywords that name no
// parameter are dropped.
func Bind[E any](call Call[E], sig Signature) []Binding[E] {
	args := call.Positional
	if call.HasImplicit {
		args = make([]E, 0, len(call.Positional)+1)
		args = append(args, call.Implicit)
		args = append(args, call.Positional...)
	}

	fixed := sig.Params
	variadic := sig.Variadic == VariadicEllipsis && len(sig.Params) > 0
	if variadic {
		fixed = sig.Params[:len(sig.Params)-1]
	}

	bindings := make([]Binding[E], 0, len(sig.Params))
	i := 0
	for _, param := range fixed {
		b := Binding[E]{Param: param, Type: param.Type}
		switch {
		case i < len(args):
			b.Kind = Bound
			b.Value = args[i]
			i++
		default:
			if value, ok := keywordValue(call.Keywords, param); ok {
				b.Kind = Bound
				b.Value = value
			} else {
				b.Kind = Missing
			}
		}
		bindings = append(bindings, b)
	}

	if variadic {
		var rest []E
		if i < len(args) {
			rest = args[i:]
		}
		bindings = append(bindings, bindRest(sig.Params[len(sig.Params)-1], rest))
	}
	return bindings
}

func bindRest[E any](param Param, rest []E) Binding[E] {
	b := Binding[E]{Param: param, Type: param.Type}
	switch len(rest) {
	case 0:
		b.Kind = Empty
	case 1:
		b.Kind = Bound
		b.Value = rest[0]
	default:
		b.Kind = Concatenation
		b.Values = append([]E(nil), rest...)
		if param.Type != nil {
			combined := *param.Type
			for range rest[1:] {
				combined = seqtype.Concat(combined, *param.Type)
			}
			b.Type = &combined
		}
	}
	return b
}

func keywordValue[E any](keywords []Keyword[E], param Param) (E, bool) {
	name := param.Name.Local.Value()
	for _, kw := range keywords {
		if name != "" && kw.Name == name {
			return kw.Value, true
		}
	}
	var zero E
	return zero, false
}

// KeywordNames returns the distinct keyword names in call order.
func (c Call[E]) KeywordNames() []string {
	var names []string
	seen := make(map[string]bool, len(c.Keywords))
	for _, kw := range c.Keywords {
		if !seen[kw.Name] {
			seen[kw.Name] = true
			names = append(names, kw.Name)
		}
	}
	return names
}
