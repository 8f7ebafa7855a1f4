// Package xqsem resolves the static meaning of names, types and calls in
// XQuery: it expands lexical names against in-scope namespace declarations,
// renders sequence types canonically, and binds call arguments to parameters.
//
// Resolution is pure and never fails. A name that does not expand yields no
// result, a malformed type degrades to its most general form, and a call binds
// with Missing parameters; ResolveCall turns those outcomes into diagnostics.
package xqsem

import (
	"fmt"

	"github.com/jacoelho/xqsem/internal/callbind"
	"github.com/jacoelho/xqsem/internal/catalog"
	"github.com/jacoelho/xqsem/internal/nsctx"
	"github.com/jacoelho/xqsem/internal/seqtype"
	"github.com/jacoelho/xqsem/internal/typesyntax"
)

// Analyzer resolves names and calls against a fixed static context.
// It is safe for concurrent use when its providers are.
type Analyzer struct {
	scope     Scope
	providers []DeclarationProvider
}

// NewAnalyzer builds an Analyzer from opts. Function lookups consult the
// functions of the static context file first, then providers in order.
func NewAnalyzer(opts Options, providers ...DeclarationProvider) (*Analyzer, error) {
	resolved, err := opts.withDefaults()
	if err != nil {
		return nil, fmt.Errorf("analyzer options: %w", err)
	}

	var scope Scope
	if resolved.predeclared {
		scope = nsctx.Predeclared()
	}
	scope = nsctx.NewScope(scope, optionDeclarations(resolved)...)

	a := &Analyzer{scope: scope}
	if src := resolved.staticContext; src != nil {
		sc, err := loadStaticContext(src, scope)
		if err != nil {
			return nil, err
		}
		a.scope = sc.Scope
		a.providers = append(a.providers, sc.Catalog)
	}
	for _, p := range providers {
		if p != nil {
			a.providers = append(a.providers, p)
		}
	}
	return a, nil
}

func optionDeclarations(o resolvedOptions) []Declaration {
	// nearest first: later bindings shadow earlier ones
	decls := make([]Declaration, 0, len(o.namespaces)+2)
	for i := len(o.namespaces) - 1; i >= 0; i-- {
		b := o.namespaces[i]
		decls = append(decls, nsctx.NamespaceDecl{PrefixText: b.Prefix, URIText: b.URI})
	}
	if o.defaultElementNamespace.set {
		decls = append(decls, nsctx.DefaultElementNamespaceDecl{URIText: o.defaultElementNamespace.value})
	}
	if o.defaultFunctionNamespace.set {
		decls = append(decls, nsctx.DefaultFunctionNamespaceDecl{URIText: o.defaultFunctionNamespace.value})
	}
	return decls
}

func loadStaticContext(src *staticContextSource, parent Scope) (*catalog.StaticContext, error) {
	f, err := src.fsys.Open(src.location)
	if err != nil {
		return nil, fmt.Errorf("open static context %s: %w", src.location, err)
	}
	defer f.Close()

	sc, err := catalog.Load(f, parent)
	if err != nil {
		return nil, fmt.Errorf("load static context %s: %w", src.location, err)
	}
	return sc, nil
}

// Scope returns the analyzer's static context scope.
func (a *Analyzer) Scope() Scope {
	return a.scope
}

// InScope lists the prefixes bound in the analyzer's scope.
func (a *Analyzer) InScope() []NamespaceBinding {
	return nsctx.InScope(a.scope)
}

// Expand expands name in ctx against the analyzer's scope.
func (a *Analyzer) Expand(name QName, ctx Context) []QName {
	return nsctx.Expand(name, ctx, a.scope)
}

// ExpandIn expands name in ctx against scope. Local declarations are usually
// layered over the analyzer's scope with NewScope(a.Scope(), ...).
func (a *Analyzer) ExpandIn(name QName, ctx Context, scope Scope) []QName {
	if scope == nil {
		scope = a.scope
	}
	return nsctx.Expand(name, ctx, scope)
}

// Signatures returns the candidate signatures for name from every provider.
func (a *Analyzer) Signatures(name QName, arity int) []Signature {
	var out []Signature
	for _, p := range a.providers {
		out = append(out, p.Signatures(name, arity)...)
	}
	return out
}

// Expand expands name in ctx against scope.
func Expand(name QName, ctx Context, scope Scope) []QName {
	return nsctx.Expand(name, ctx, scope)
}

// Predeclared returns a scope holding only the predeclared namespaces.
func Predeclared() Scope {
	return nsctx.Predeclared()
}

// TypeName renders an item type in canonical syntax.
func TypeName(t ItemType) string {
	return seqtype.Name(t)
}

// TypesEqual reports whether two item types are structurally equal.
func TypesEqual(a, b ItemType) bool {
	return seqtype.Equal(a, b)
}

// ParseSequenceType reads sequence type text. It never fails.
func ParseSequenceType(text string) SequenceType {
	return typesyntax.ParseSequenceType(text)
}

// ParseItemType reads item type text. It never fails.
func ParseItemType(text string) ItemType {
	return typesyntax.ParseItemType(text)
}

// Bind matches call arguments to the parameters of sig.
func Bind[E any](call Call[E], sig Signature) []Binding[E] {
	return callbind.Bind(call, sig)
}

// Arrow returns call with implicit bound ahead of its positional arguments.
func Arrow[E any](implicit E, call Call[E]) Call[E] {
	return callbind.Arrow(implicit, call)
}
