package nsctx

import (
	"iter"
	"slices"

	"github.com/jacoelho/xqsem/internal/qname"
	"github.com/jacoelho/xqsem/internal/xmlnames"
)

// Scope yields the namespace declarations statically visible at a position,
// nearest first.
type Scope interface {
	Declarations() iter.Seq[Declaration]
}

// StaticScope is an immutable chain of declaration frames.
type StaticScope struct {
	parent Scope
	decls  []Declaration
}

// NewScope returns a frame holding decls on top of parent. parent may be nil.
func NewScope(parent Scope, decls ...Declaration) *StaticScope {
	return &StaticScope{parent: parent, decls: slices.Clone(decls)}
}

// Declarations yields this frame's declarations, then the parent's.
func (s *StaticScope) Declarations() iter.Seq[Declaration] {
	return func(yield func(Declaration) bool) {
		if s == nil {
			return
		}
		for _, decl := range s.decls {
			if !yield(decl) {
				return
			}
		}
		if s.parent == nil {
			return
		}
		for decl := range s.parent.Declarations() {
			if !yield(decl) {
				return
			}
		}
	}
}

// Predeclared returns the root scope holding the predeclared namespaces.
// The fn namespace is also the default for function references.
func Predeclared() *StaticScope {
	bindings := xmlnames.Predeclared()
	decls := make([]Declaration, 0, len(bindings))
	for _, b := range bindings {
		decl := predeclared{prefix: b.Prefix, uri: qname.NamespaceURI(b.URI)}
		if b.URI == xmlnames.FnNamespace {
			decl.defaults = []contextKind{kindDefaultFunctionRef}
		}
		decls = append(decls, decl)
	}
	return NewScope(nil, decls...)
}

// Binding is a prefix to namespace binding as seen from a scope.
type Binding struct {
	Prefix    string
	Namespace qname.NamespaceURI
}

// InScope lists the prefixes bound in scope, sorted by prefix. Nearer
// declarations shadow outer ones, and undeclared prefixes are omitted.
func InScope(scope Scope) []Binding {
	if scope == nil {
		return nil
	}
	seen := make(map[string]bool)
	var out []Binding
	for decl := range scope.Declarations() {
		prefix, ok := decl.Prefix()
		if !ok || seen[prefix] {
			continue
		}
		uri, ok := decl.URI()
		if !ok {
			continue
		}
		seen[prefix] = true
		if uri.IsEmpty() {
			continue
		}
		out = append(out, Binding{Prefix: prefix, Namespace: uri})
	}
	slices.SortFunc(out, func(a, b Binding) int {
		switch {
		case a.Prefix < b.Prefix:
			return -1
		case a.Prefix > b.Prefix:
			return 1
		default:
			return 0
		}
	})
	return out
}
