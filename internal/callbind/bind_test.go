package callbind

import (
	"testing"

	"github.com/kr/pretty"

	"github.com/jacoelho/xqsem/internal/occurrence"
	"github.com/jacoelho/xqsem/internal/qname"
	"github.com/jacoelho/xqsem/internal/seqtype"
)

type result struct {
	Param  string
	Kind   BindingKind
	Value  string
	Values []string
}

func summarize(bindings []Binding[string]) []result {
	out := make([]result, 0, len(bindings))
	for _, b := range bindings {
		out = append(out, result{Param: b.Param.Name.String(), Kind: b.Kind, Value: b.Value, Values: b.Values})
	}
	return out
}

func params(names ...string) []Param {
	out := make([]Param, 0, len(names))
	for _, name := range names {
		out = append(out, Param{Name: qname.Lexical("", name)})
	}
	return out
}

func TestBind(t *testing.T) {
	pow := Signature{Name: qname.Lexical("math", "pow"), Params: params("x", "y")}
	concat := Signature{Name: qname.Lexical("fn", "concat"), Params: params("value1", "value2", "values"), Variadic: VariadicEllipsis}
	f := Signature{Name: qname.Lexical("", "f"), Params: params("value", "a", "b")}

	tests := []struct {
		name string
		call Call[string]
		sig  Signature
		want []result
	}{
		{
			name: "positional",
			call: Call[string]{Positional: []string{"2", "8"}},
			sig:  pow,
			want: []result{{Param: "x", Kind: Bound, Value: "2"}, {Param: "y", Kind: Bound, Value: "8"}},
		},
		{
			name: "keywords in declaration order",
			call: Call[string]{Keywords: []Keyword[string]{{Name: "y", Value: "2"}, {Name: "x", Value: "8"}}},
			sig:  pow,
			want: []result{{Param: "x", Kind: Bound, Value: "8"}, {Param: "y", Kind: Bound, Value: "2"}},
		},
		{
			name: "unmatched keyword dropped",
			call: Call[string]{Keywords: []Keyword[string]{{Name: "y", Value: "2"}, {Name: "z", Value: "8"}}},
			sig:  pow,
			want: []result{{Param: "x", Kind: Missing}, {Param: "y", Kind: Bound, Value: "2"}},
		},
		{
			name: "positional then keyword",
			call: Call[string]{Positional: []string{"2"}, Keywords: []Keyword[string]{{Name: "y", Value: "3"}}},
			sig:  pow,
			want: []result{{Param: "x", Kind: Bound, Value: "2"}, {Param: "y", Kind: Bound, Value: "3"}},
		},
		{
			name: "first keyword occurrence wins",
			call: Call[string]{Keywords: []Keyword[string]{{Name: "x", Value: "1"}, {Name: "x", Value: "9"}, {Name: "y", Value: "2"}}},
			sig:  pow,
			want: []result{{Param: "x", Kind: Bound, Value: "1"}, {Param: "y", Kind: Bound, Value: "2"}},
		},
		{
			name: "positional beats keyword for same parameter",
			call: Call[string]{Positional: []string{"1"}, Keywords: []Keyword[string]{{Name: "x", Value: "9"}}},
			sig:  pow,
			want: []result{{Param: "x", Kind: Bound, Value: "1"}, {Param: "y", Kind: Missing}},
		},
		{
			name: "variadic empty",
			call: Call[string]{Positional: []string{"2", "4"}},
			sig:  concat,
			want: []result{{Param: "value1", Kind: Bound, Value: "2"}, {Param: "value2", Kind: Bound, Value: "4"}, {Param: "values", Kind: Empty}},
		},
		{
			name: "variadic single",
			call: Call[string]{Positional: []string{"2", "4", "6"}},
			sig:  concat,
			want: []result{{Param: "value1", Kind: Bound, Value: "2"}, {Param: "value2", Kind: Bound, Value: "4"}, {Param: "values", Kind: Bound, Value: "6"}},
		},
		{
			name: "variadic concatenation",
			call: Call[string]{Positional: []string{"2", "4", "6", "8"}},
			sig:  concat,
			want: []result{{Param: "value1", Kind: Bound, Value: "2"}, {Param: "value2", Kind: Bound, Value: "4"}, {Param: "values", Kind: Concatenation, Values: []string{"6", "8"}}},
		},
		{
			name: "variadic ignores keyword for itself",
			call: Call[string]{Positional: []string{"2", "4"}, Keywords: []Keyword[string]{{Name: "values", Value: "6"}}},
			sig:  concat,
			want: []result{{Param: "value1", Kind: Bound, Value: "2"}, {Param: "value2", Kind: Bound, Value: "4"}, {Param: "values", Kind: Empty}},
		},
		{
			name: "arrow prepends implicit argument",
			call: Arrow("$x", Call[string]{Positional: []string{"1", "2"}}),
			sig:  f,
			want: []result{{Param: "value", Kind: Bound, Value: "$x"}, {Param: "a", Kind: Bound, Value: "1"}, {Param: "b", Kind: Bound, Value: "2"}},
		},
		{
			name: "extra positionals dropped for fixed arity",
			call: Call[string]{Positional: []string{"1", "2", "3"}},
			sig:  pow,
			want: []result{{Param: "x", Kind: Bound, Value: "1"}, {Param: "y", Kind: Bound, Value: "2"}},
		},
		{
			name: "no parameters",
			call: Call[string]{Positional: []string{"1"}},
			sig:  Signature{Name: qname.Lexical("fn", "true")},
			want: []result{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := summarize(Bind(tt.call, tt.sig))
			if diff := pretty.Diff(got, tt.want); len(diff) > 0 {
				t.Fatalf("Bind() diff:\n%s", diff)
			}
		})
	}
}

func TestBindConcatenationType(t *testing.T) {
	item := seqtype.AtomicOrUnion{Name: qname.Lexical("xs", "anyAtomicType")}
	opt := seqtype.New(item, occurrence.ZeroOrOne)
	sig := Signature{
		Name:     qname.Lexical("fn", "concat"),
		Params:   []Param{{Name: qname.Lexical("", "values"), Type: &opt}},
		Variadic: VariadicEllipsis,
	}

	got := Bind(Call[string]{Positional: []string{"1", "2", "3"}}, sig)
	if len(got) != 1 {
		t.Fatalf("Bind() len = %d, want 1", len(got))
	}
	if got[0].Type == nil {
		t.Fatalf("Bind() type = nil, want bounds")
	}
	if lower, upper := got[0].Type.LowerBound(), got[0].Type.UpperBound(); lower != 0 || upper != 3 {
		t.Fatalf("Bind() bounds = (%d, %d), want (0, 3)", lower, upper)
	}
	if opt.UpperBound() != 1 {
		t.Fatalf("declared type mutated: upper = %d", opt.UpperBound())
	}
}

func TestBindKeepsDeclaredType(t *testing.T) {
	typ := seqtype.One(seqtype.AtomicOrUnion{Name: qname.Lexical("xs", "double")})
	sig := Signature{Params: []Param{{Name: qname.Lexical("", "x"), Type: &typ}}}
	got := Bind(Call[string]{}, sig)
	if got[0].Kind != Missing || got[0].Type != &typ {
		t.Fatalf("Bind() = %+v, want Missing with declared type", got[0])
	}
}

func TestCallArity(t *testing.T) {
	tests := []struct {
		name string
		call Call[int]
		want int
	}{
		{name: "empty", call: Call[int]{}, want: 0},
		{name: "positional", call: Call[int]{Positional: []int{1, 2}}, want: 2},
		{name: "keywords deduped", call: Call[int]{Keywords: []Keyword[int]{{Name: "a"}, {Name: "a"}, {Name: "b"}}}, want: 2},
		{name: "arrow", call: Arrow(0, Call[int]{Positional: []int{1}}), want: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.call.Arity(); got != tt.want {
				t.Fatalf("Arity() = %d, want %d", got, tt.want)
			}
		})
	}
}
