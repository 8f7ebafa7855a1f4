package xqsem

import (
	"github.com/jacoelho/xqsem/internal/callbind"
	"github.com/jacoelho/xqsem/internal/nsctx"
	"github.com/jacoelho/xqsem/internal/qname"
	"github.com/jacoelho/xqsem/internal/seqtype"
)

// QName is a lexical or namespace-qualified name.
type QName = qname.QName

// NamespaceURI is a namespace name.
type NamespaceURI = qname.NamespaceURI

// Context tags the syntactic position of a name.
type Context = nsctx.Context

// Scope yields the namespace declarations visible at a position, nearest first.
type Scope = nsctx.Scope

// Declaration is a namespace declaration.
type Declaration = nsctx.Declaration

// NamespaceDecl binds a prefix.
type NamespaceDecl = nsctx.NamespaceDecl

// DefaultElementNamespaceDecl declares the default element and type namespace.
type DefaultElementNamespaceDecl = nsctx.DefaultElementNamespaceDecl

// DefaultFunctionNamespaceDecl declares the default function namespace.
type DefaultFunctionNamespaceDecl = nsctx.DefaultFunctionNamespaceDecl

// NamespaceBinding is a prefix to namespace binding visible in a scope.
type NamespaceBinding = nsctx.Binding

// ItemType is a single item type.
type ItemType = seqtype.ItemType

// SequenceType is an item type with cardinality bounds.
type SequenceType = seqtype.SequenceType

// Signature is a function declaration.
type Signature = callbind.Signature

// Param is a declared function parameter.
type Param = callbind.Param

// DeclarationProvider supplies candidate signatures for a function name.
type DeclarationProvider = callbind.DeclarationProvider

// Call holds the arguments of a call site.
type Call[E any] = callbind.Call[E]

// Keyword is a keyword argument.
type Keyword[E any] = callbind.Keyword[E]

// Binding pairs a parameter with its argument.
type Binding[E any] = callbind.Binding[E]

// Name contexts.
var (
	ContextUndefined           = nsctx.Undefined
	ContextDefaultElement      = nsctx.DefaultElement
	ContextDefaultFunctionDecl = nsctx.DefaultFunctionDecl
	ContextDefaultFunctionRef  = nsctx.DefaultFunctionRef
	ContextDefaultType         = nsctx.DefaultType
	ContextPrefixed            = nsctx.Prefixed
	ContextNone                = nsctx.None
)

// ContextReserved returns the context for unprefixed names that belong to ns.
func ContextReserved(ns NamespaceURI) Context {
	return nsctx.Reserved(ns)
}

// ParseQName reads a lexical name. It never fails; malformed text yields an
// incomplete name.
func ParseQName(text string) QName {
	return qname.Parse(text)
}

// NewScope layers decls over parent.
func NewScope(parent Scope, decls ...Declaration) Scope {
	return nsctx.NewScope(parent, decls...)
}

// BindingKind says how a parameter was satisfied.
type BindingKind = callbind.BindingKind

// Binding kinds.
const (
	Bound         = callbind.Bound
	Concatenation = callbind.Concatenation
	Missing       = callbind.Missing
	Empty         = callbind.Empty
)

// Variadic marks whether the last parameter collects extra arguments.
type Variadic = callbind.Variadic

// Variadic markers.
const (
	VariadicNo       = callbind.VariadicNo
	VariadicEllipsis = callbind.VariadicEllipsis
)

// ParseContext maps a context tag name, such as DefaultElement or element, to
// its Context.
func ParseContext(name string) (Context, bool) {
	return nsctx.ParseContext(name)
}
