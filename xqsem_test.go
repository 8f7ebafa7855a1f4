package xqsem_test

import (
	"testing"
	"testing/fstest"

	"github.com/jacoelho/xqsem"
)

const libContext = `
[[namespace]]
prefix = "ex"
uri = "urn:example"

[[function]]
name = "ex:pow"
return = "xs:double"

  [[function.param]]
  name = "x"
  type = "xs:double"

  [[function.param]]
  name = "y"
  type = "xs:double"

[[function]]
name = "ex:concat"
return = "xs:string"
variadic = true

  [[function.param]]
  name = "value1"
  type = "xs:anyAtomicType?"

  [[function.param]]
  name = "value2"
  type = "xs:anyAtomicType?"

  [[function.param]]
  name = "values"
  type = "xs:anyAtomicType?"
`

func newLibAnalyzer(t *testing.T, opts xqsem.Options) *xqsem.Analyzer {
	t.Helper()
	fsys := fstest.MapFS{"lib.toml": &fstest.MapFile{Data: []byte(libContext)}}
	a, err := xqsem.NewAnalyzer(opts.WithStaticContext(fsys, "lib.toml"))
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}
	return a
}

func newLibAnalyzerWith(t *testing.T, providers ...xqsem.DeclarationProvider) *xqsem.Analyzer {
	t.Helper()
	fsys := fstest.MapFS{"lib.toml": &fstest.MapFile{Data: []byte(libContext)}}
	a, err := xqsem.NewAnalyzer(xqsem.NewOptions().WithStaticContext(fsys, "lib.toml"), providers...)
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}
	return a
}

func TestAnalyzerExpand(t *testing.T) {
	a, err := xqsem.NewAnalyzer(xqsem.NewOptions().
		WithNamespace("ex", "urn:one").
		WithNamespace("ex", "urn:two").
		WithDefaultElementNamespace("urn:doc"))
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}

	tests := []struct {
		name string
		text string
		ctx  xqsem.Context
		want string
	}{
		{name: "later binding shadows", text: "ex:a", ctx: xqsem.ContextDefaultElement, want: "{urn:two}a"},
		{name: "default element", text: "para", ctx: xqsem.ContextDefaultElement, want: "{urn:doc}para"},
		{name: "default type", text: "money", ctx: xqsem.ContextDefaultType, want: "{urn:doc}money"},
		{name: "predeclared fn", text: "count", ctx: xqsem.ContextDefaultFunctionRef, want: "{http://www.w3.org/2005/xpath-functions}count"},
		{name: "attribute", text: "id", ctx: xqsem.ContextNone, want: "id"},
		{name: "uri qualified", text: "Q{urn:q}x", ctx: xqsem.ContextUndefined, want: "{urn:q}x"},
		{name: "reserved", text: "opt", ctx: xqsem.ContextReserved("http://www.w3.org/2012/xquery"), want: "{http://www.w3.org/2012/xquery}opt"},
		{name: "unbound", text: "nope:a", ctx: xqsem.ContextDefaultElement, want: ""},
		{name: "undefined", text: "a", ctx: xqsem.ContextUndefined, want: ""},
		{name: "function decl has no predeclared default", text: "f", ctx: xqsem.ContextDefaultFunctionDecl, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Expand(xqsem.ParseQName(tt.text), tt.ctx)
			if tt.want == "" {
				if len(got) != 0 {
					t.Fatalf("Expand(%s) = %v, want none", tt.text, got)
				}
				return
			}
			if len(got) != 1 || got[0].Clark() != tt.want {
				t.Fatalf("Expand(%s) = %v, want %s", tt.text, got, tt.want)
			}
		})
	}
}

func TestAnalyzerWithoutPredeclared(t *testing.T) {
	a, err := xqsem.NewAnalyzer(xqsem.NewOptions().WithPredeclaredNamespaces(false))
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}
	if got := a.Expand(xqsem.ParseQName("xs:string"), xqsem.ContextDefaultType); len(got) != 0 {
		t.Fatalf("Expand(xs:string) = %v, want none", got)
	}
	if got := a.InScope(); len(got) != 0 {
		t.Fatalf("InScope() = %v, want none", got)
	}
}

func TestAnalyzerDefaultFunctionOverride(t *testing.T) {
	a, err := xqsem.NewAnalyzer(xqsem.NewOptions().WithDefaultFunctionNamespace("urn:lib"))
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}
	for _, ctx := range []xqsem.Context{xqsem.ContextDefaultFunctionRef, xqsem.ContextDefaultFunctionDecl} {
		got := a.Expand(xqsem.ParseQName("f"), ctx)
		if len(got) != 1 || got[0].Namespace != "urn:lib" {
			t.Fatalf("Expand(f, %s) = %v, want urn:lib", ctx, got)
		}
	}
}

func TestAnalyzerExpandInLocalScope(t *testing.T) {
	a, err := xqsem.NewAnalyzer(xqsem.NewOptions())
	if err != nil {
		t.Fatalf("NewAnalyzer() error = %v", err)
	}
	local := xqsem.NewScope(a.Scope(), xqsem.NamespaceDecl{PrefixText: "xs", URIText: ""})
	if got := a.ExpandIn(xqsem.ParseQName("xs:int"), xqsem.ContextDefaultType, local); len(got) != 0 {
		t.Fatalf("ExpandIn(undeclared xs) = %v, want none", got)
	}
	if got := a.ExpandIn(xqsem.ParseQName("xs:int"), xqsem.ContextDefaultType, nil); len(got) != 1 {
		t.Fatalf("ExpandIn(nil scope) = %v, want one", got)
	}
}

func TestAnalyzerStaticContext(t *testing.T) {
	a := newLibAnalyzer(t, xqsem.NewOptions())
	name := a.Expand(xqsem.ParseQName("ex:pow"), xqsem.ContextDefaultFunctionRef)
	if len(name) != 1 {
		t.Fatalf("Expand(ex:pow) = %v", name)
	}
	sigs := a.Signatures(name[0], 2)
	if len(sigs) != 1 {
		t.Fatalf("Signatures() len = %d, want 1", len(sigs))
	}
	if got, want := sigs[0].String(), "ex:pow($x as xs:double, $y as xs:double) as xs:double"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestAnalyzerStaticContextErrors(t *testing.T) {
	fsys := fstest.MapFS{"bad.toml": &fstest.MapFile{Data: []byte("[[function]]\nname = \"nope:f\"\n")}}
	if _, err := xqsem.NewAnalyzer(xqsem.NewOptions().WithStaticContext(fsys, "bad.toml")); err == nil {
		t.Fatalf("NewAnalyzer(bad) error = nil")
	}
	if _, err := xqsem.NewAnalyzer(xqsem.NewOptions().WithStaticContext(fsys, "missing.toml")); err == nil {
		t.Fatalf("NewAnalyzer(missing) error = nil")
	}
}

func TestTypeNameRoundTrip(t *testing.T) {
	tests := []string{
		"xs:string",
		"item()*",
		"empty-sequence()",
		"element(*,xs:untyped)?",
		"map(xs:string, record(a, b? as xs:int, *))+",
		"function(xs:int, item()*...) as xs:boolean",
		"union(xs:int, xs:string)",
		`enum("a", "b")`,
	}
	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			if got := xqsem.ParseSequenceType(text).TypeName(); got != text {
				t.Fatalf("TypeName() = %q, want %q", got, text)
			}
		})
	}
	if !xqsem.TypesEqual(xqsem.ParseItemType("record()"), xqsem.ParseItemType("map(*)")) {
		t.Fatalf("TypesEqual(record(), map(*)) = false, want true")
	}
	if got := xqsem.TypeName(xqsem.ParseItemType("fn(*)")); got != "function(*)" {
		t.Fatalf("TypeName(fn(*)) = %q, want function(*)", got)
	}
}
