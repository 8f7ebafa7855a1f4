package xmlnames

import "fmt"

const (
	// XMLPrefix is the reserved prefix for the XML namespace.
	XMLPrefix = "xml"
	// XMLNSPrefix is the reserved prefix for namespace declarations.
	XMLNSPrefix = "xmlns"
	// XMLNamespace is the XML namespace URI.
	XMLNamespace = "http://www.w3.org/XML/1998/namespace"
	// XMLNSNamespace is the XMLNS namespace URI.
	XMLNSNamespace = "http://www.w3.org/2000/xmlns/"
	// XSNamespace is the XML Schema namespace URI.
	XSNamespace = "http://www.w3.org/2001/XMLSchema"
	// XSINamespace is the XML Schema instance namespace URI.
	XSINamespace = "http://www.w3.org/2001/XMLSchema-instance"
	// FnNamespace is the standard function namespace URI.
	FnNamespace = "http://www.w3.org/2005/xpath-functions"
	// LocalNamespace is the namespace of locally declared XQuery functions.
	LocalNamespace = "http://www.w3.org/2005/xquery-local-functions"
	// MapNamespace is the map function namespace URI.
	MapNamespace = "http://www.w3.org/2005/xpath-functions/map"
	// ArrayNamespace is the array function namespace URI.
	ArrayNamespace = "http://www.w3.org/2005/xpath-functions/array"
	// MathNamespace is the math function namespace URI.
	MathNamespace = "http://www.w3.org/2005/xpath-functions/math"
	// ErrNamespace is the error code namespace URI.
	ErrNamespace = "http://www.w3.org/2005/xqt-errors"
	// OptionNamespace holds unprefixed option declaration names.
	OptionNamespace = "http://www.w3.org/2012/xquery"
)

// Binding is a predeclared prefix to namespace URI binding.
type Binding struct {
	Prefix string
	URI    string
}

// Predeclared lists the namespaces every static context starts with, in a fixed order.
func Predeclared() []Binding {
	return []Binding{
		{Prefix: XMLPrefix, URI: XMLNamespace},
		{Prefix: "xs", URI: XSNamespace},
		{Prefix: "xsi", URI: XSINamespace},
		{Prefix: "fn", URI: FnNamespace},
		{Prefix: "local", URI: LocalNamespace},
		{Prefix: "map", URI: MapNamespace},
		{Prefix: "array", URI: ArrayNamespace},
		{Prefix: "math", URI: MathNamespace},
		{Prefix: "err", URI: ErrNamespace},
	}
}

// IsXMLPrefix reports whether prefix is the reserved xml prefix.
func IsXMLPrefix(prefix string) bool {
	return prefix == XMLPrefix
}

// IsXMLNSPrefix reports whether prefix is the reserved xmlns prefix.
func IsXMLNSPrefix(prefix string) bool {
	return prefix == XMLNSPrefix
}

// ValidateReservedBinding verifies that a declared prefix binding does not rebind
// the xml or xmlns prefixes, and that no other prefix claims their namespaces.
func ValidateReservedBinding(prefix, uri string) error {
	switch {
	case IsXMLNSPrefix(prefix):
		return fmt.Errorf("prefix %s cannot be declared", XMLNSPrefix)
	case IsXMLPrefix(prefix):
		if uri != XMLNamespace {
			return fmt.Errorf("prefix %s must be bound to %s", XMLPrefix, XMLNamespace)
		}
	case uri == XMLNamespace || uri == XMLNSNamespace:
		return fmt.Errorf("namespace %s cannot be bound to prefix %s", uri, prefix)
	}
	return nil
}
