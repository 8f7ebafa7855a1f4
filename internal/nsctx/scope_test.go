package nsctx

import (
	"slices"
	"testing"

	"github.com/jacoelho/xqsem/internal/qname"
)

func TestInScopeShadowing(t *testing.T) {
	outer := NewScope(nil,
		NamespaceDecl{PrefixText: "a", URIText: "urn:a"},
		NamespaceDecl{PrefixText: "b", URIText: "urn:b"},
	)
	inner := NewScope(outer,
		NamespaceDecl{PrefixText: "a", URIText: "urn:a2"},
		NamespaceDecl{PrefixText: "b"},
		DefaultElementNamespaceDecl{URIText: "urn:e"},
	)
	got := InScope(inner)
	want := []Binding{{Prefix: "a", Namespace: "urn:a2"}}
	if !slices.Equal(got, want) {
		t.Fatalf("InScope() = %v, want %v", got, want)
	}
}

func TestDeclarationsStopsEarly(t *testing.T) {
	scope := NewScope(Predeclared(), NamespaceDecl{PrefixText: "p", URIText: "urn:p"})
	n := 0
	for range scope.Declarations() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("iterated %d declarations, want 2", n)
	}
}

func TestParseContext(t *testing.T) {
	tests := []struct {
		in   string
		want Context
		ok   bool
	}{
		{in: "DefaultElement", want: DefaultElement, ok: true},
		{in: "function", want: DefaultFunctionRef, ok: true},
		{in: "Reserved(urn:r)", want: Reserved(qname.NamespaceURI("urn:r")), ok: true},
		{in: "bogus"},
	}
	for _, tt := range tests {
		got, ok := ParseContext(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("ParseContext(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
		if ok && tt.want.String() != "" {
			if round, _ := ParseContext(got.String()); round != got {
				t.Fatalf("ParseContext(%q.String()) = %v, want %v", tt.in, round, got)
			}
		}
	}
}
