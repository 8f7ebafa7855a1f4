package nsctx

import "github.com/jacoelho/xqsem/internal/qname"

// Expand returns the namespace-qualified form of name as used in ctx. The
// result has zero or one element; an empty result means the name does not
// resolve, which is an expected outcome rather than an error.
//
// Names that already carry a namespace are returned unchanged. Wildcard parts
// pass through without a namespace lookup of their own.
func Expand(name qname.QName, ctx Context, scope Scope) []qname.QName {
	if name.HasNamespace() {
		return []qname.QName{name}
	}
	if name.IsIncomplete() {
		return nil
	}

	switch {
	case name.Prefix.IsWildcard():
		return []qname.QName{name}
	case name.Prefix.IsText():
		uri, ok := lookupPrefix(scope, name.Prefix.Value())
		if !ok {
			return nil
		}
		return []qname.QName{name.Expanded(uri)}
	}

	if name.Local.IsWildcard() {
		return []qname.QName{name}
	}
	switch ctx.kind {
	case kindNone:
		return []qname.QName{name.Expanded(qname.NamespaceEmpty)}
	case kindReserved:
		return []qname.QName{name.Expanded(ctx.namespace)}
	case kindPrefixed, kindUndefined:
		// no declaration accepts these contexts
		return nil
	}
	uri, ok := lookupDefault(scope, ctx)
	if !ok {
		return nil
	}
	return []qname.QName{name.Expanded(uri)}
}

// lookupPrefix finds the nearest declaration binding prefix. An empty URI
// undeclares the prefix.
func lookupPrefix(scope Scope, prefix string) (qname.NamespaceURI, bool) {
	if scope == nil {
		return "", false
	}
	for decl := range scope.Declarations() {
		declared, ok := decl.Prefix()
		if !ok || declared != prefix {
			continue
		}
		uri, ok := decl.URI()
		if !ok {
			continue
		}
		return uri, !uri.IsEmpty()
	}
	return "", false
}

func lookupDefault(scope Scope, ctx Context) (qname.NamespaceURI, bool) {
	if scope == nil {
		return "", false
	}
	for decl := range scope.Declarations() {
		if !decl.Accepts(ctx) {
			continue
		}
		if uri, ok := decl.URI(); ok {
			return uri, true
		}
	}
	return "", false
}
