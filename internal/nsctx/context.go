package nsctx

import "github.com/jacoelho/xqsem/internal/qname"

type contextKind uint8

const (
	kindUndefined contextKind = iota
	kindDefaultElement
	kindDefaultFunctionDecl
	kindDefaultFunctionRef
	kindDefaultType
	kindPrefixed
	kindNone
	kindReserved
)

// Context tags the syntactic position of a name. It decides which namespace
// declaration, if any, applies when the name has no prefix.
type Context struct {
	namespace qname.NamespaceURI
	kind      contextKind
}

var (
	// Undefined positions have no default namespace.
	Undefined = Context{kind: kindUndefined}
	// DefaultElement is used for element names and node tests.
	DefaultElement = Context{kind: kindDefaultElement}
	// DefaultFunctionDecl is used for the name of a function declaration.
	DefaultFunctionDecl = Context{kind: kindDefaultFunctionDecl}
	// DefaultFunctionRef is used for function calls and named function references.
	DefaultFunctionRef = Context{kind: kindDefaultFunctionRef}
	// DefaultType is used for type names.
	DefaultType = Context{kind: kindDefaultType}
	// Prefixed is used where only prefixed names are meaningful.
	Prefixed = Context{kind: kindPrefixed}
	// None is used for attribute, parameter and pragma names, which are
	// unprefixed names in no namespace.
	None = Context{kind: kindNone}
)

// Reserved returns the context of a position whose unprefixed names belong to
// a language namespace, such as option declaration names.
func Reserved(ns qname.NamespaceURI) Context {
	return Context{namespace: ns, kind: kindReserved}
}

// ReservedNamespace returns the namespace of a Reserved context.
func (c Context) ReservedNamespace() (qname.NamespaceURI, bool) {
	return c.namespace, c.kind == kindReserved
}

// String returns the context tag name.
func (c Context) String() string {
	switch c.kind {
	case kindDefaultElement:
		return "DefaultElement"
	case kindDefaultFunctionDecl:
		return "DefaultFunctionDecl"
	case kindDefaultFunctionRef:
		return "DefaultFunctionRef"
	case kindDefaultType:
		return "DefaultType"
	case kindPrefixed:
		return "Prefixed"
	case kindNone:
		return "None"
	case kindReserved:
		return "Reserved(" + c.namespace.String() + ")"
	default:
		return "Undefined"
	}
}

// ParseContext maps a context tag name to its Context. Reserved contexts take
// the form Reserved(uri).
func ParseContext(name string) (Context, bool) {
	switch name {
	case "DefaultElement", "element":
		return DefaultElement, true
	case "DefaultFunctionDecl", "function-decl":
		return DefaultFunctionDecl, true
	case "DefaultFunctionRef", "function":
		return DefaultFunctionRef, true
	case "DefaultType", "type":
		return DefaultType, true
	case "Prefixed", "prefixed":
		return Prefixed, true
	case "None", "none":
		return None, true
	case "Undefined", "undefined":
		return Undefined, true
	}
	const open, closing = "Reserved(", ")"
	if len(name) > len(open)+len(closing) && name[:len(open)] == open && name[len(name)-1:] == closing {
		return Reserved(qname.NamespaceURI(name[len(open) : len(name)-1])), true
	}
	return Context{}, false
}
