package nsctx

import "github.com/jacoelho/xqsem/internal/qname"

// Declaration is a namespace declaration visible at some position.
type Declaration interface {
	// Prefix returns the declared prefix, if the declaration binds one.
	Prefix() (string, bool)
	// URI returns the declared namespace, absent for incomplete declarations.
	URI() (qname.NamespaceURI, bool)
	// Accepts reports whether the declaration supplies the namespace for
	// unprefixed names in the given context.
	Accepts(Context) bool
}

// NamespaceDecl binds a prefix, as in declare namespace p = "uri" or xmlns:p.
// An empty URI undeclares the prefix.
type NamespaceDecl struct {
	PrefixText string
	URIText    string
	Incomplete bool
}

// Prefix returns the bound prefix.
func (d NamespaceDecl) Prefix() (string, bool) { return d.PrefixText, d.PrefixText != "" }

// URI returns the bound namespace.
func (d NamespaceDecl) URI() (qname.NamespaceURI, bool) {
	return qname.NamespaceURI(d.URIText), !d.Incomplete
}

// Accepts reports false: a prefix binding never supplies the namespace of an
// unprefixed name, in any context.
func (d NamespaceDecl) Accepts(Context) bool { return false }

// DefaultElementNamespaceDecl is declare default element namespace, or an xmlns attribute.
type DefaultElementNamespaceDecl struct {
	URIText    string
	Incomplete bool
}

// Prefix returns no prefix.
func (d DefaultElementNamespaceDecl) Prefix() (string, bool) { return "", false }

// URI returns the default element namespace.
func (d DefaultElementNamespaceDecl) URI() (qname.NamespaceURI, bool) {
	return qname.NamespaceURI(d.URIText), !d.Incomplete
}

// Accepts reports whether c is DefaultElement or DefaultType.
func (d DefaultElementNamespaceDecl) Accepts(c Context) bool {
	return c.kind == kindDefaultElement || c.kind == kindDefaultType
}

// DefaultFunctionNamespaceDecl is declare default function namespace.
type DefaultFunctionNamespaceDecl struct {
	URIText    string
	Incomplete bool
}

// Prefix returns no prefix.
func (d DefaultFunctionNamespaceDecl) Prefix() (string, bool) { return "", false }

// URI returns the default function namespace.
func (d DefaultFunctionNamespaceDecl) URI() (qname.NamespaceURI, bool) {
	return qname.NamespaceURI(d.URIText), !d.Incomplete
}

// Accepts reports whether c is DefaultFunctionDecl or DefaultFunctionRef.
func (d DefaultFunctionNamespaceDecl) Accepts(c Context) bool {
	return c.kind == kindDefaultFunctionDecl || c.kind == kindDefaultFunctionRef
}

// predeclared is a namespace every static context starts with. It may also
// act as a default for some contexts, as fn does for function references.
type predeclared struct {
	prefix   string
	uri      qname.NamespaceURI
	defaults []contextKind
}

func (d predeclared) Prefix() (string, bool)          { return d.prefix, true }
func (d predeclared) URI() (qname.NamespaceURI, bool) { return d.uri, true }

func (d predeclared) Accepts(c Context) bool {
	for _, kind := range d.defaults {
		if kind == c.kind {
			return true
		}
	}
	return false
}
