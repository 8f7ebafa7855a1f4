package qname

// NamespaceURI represents a namespace URI.
// This is a newtype over string to keep namespace URIs apart from other text.
type NamespaceURI string

// NamespaceEmpty represents the empty namespace URI (no namespace).
const NamespaceEmpty NamespaceURI = ""

// String returns the namespace URI as a string.
func (ns NamespaceURI) String() string {
	return string(ns)
}

// IsEmpty returns true if the namespace URI is empty.
func (ns NamespaceURI) IsEmpty() bool {
	return ns == NamespaceEmpty
}

type partKind uint8

const (
	partAbsent partKind = iota
	partText
	partWildcard
)

// Part is the prefix or local-name component of a QName. It is absent,
// literal text, or the match-any wildcard. The wildcard never equals any text.
type Part struct {
	text string
	kind partKind
}

// Wildcard is the match-any marker.
var Wildcard = Part{kind: partWildcard}

// Text returns a literal part. The empty string yields an absent part.
func Text(s string) Part {
	if s == "" {
		return Part{}
	}
	return Part{text: s, kind: partText}
}

// IsAbsent reports whether the part is missing.
func (p Part) IsAbsent() bool { return p.kind == partAbsent }

// IsWildcard reports whether the part is the match-any marker.
func (p Part) IsWildcard() bool { return p.kind == partWildcard }

// IsText reports whether the part carries literal text.
func (p Part) IsText() bool { return p.kind == partText }

// Value returns the literal text, or "" for absent and wildcard parts.
func (p Part) Value() string {
	if p.kind != partText {
		return ""
	}
	return p.text
}

// String renders the part as written: text, "*" or "".
func (p Part) String() string {
	switch p.kind {
	case partText:
		return p.text
	case partWildcard:
		return "*"
	default:
		return ""
	}
}

// Form records how the namespace of a QName is known.
type Form uint8

const (
	// FormLexical names have no namespace yet; the prefix, if any, needs expansion.
	FormLexical Form = iota
	// FormURIQualified names were written with an explicit namespace, Q{uri}local.
	FormURIQualified
	// FormExpanded names had their namespace assigned by expansion.
	FormExpanded
)

// QName is a lexical or namespace-qualified name.
// A QName whose Local part is absent is an incomplete name; it is a valid value.
type QName struct {
	Prefix    Part
	Local     Part
	Namespace NamespaceURI
	Form      Form
}

// Lexical returns an unexpanded name. An empty prefix means unprefixed.
func Lexical(prefix, local string) QName {
	return QName{Prefix: Text(prefix), Local: Text(local)}
}

// URIQualified returns a name written with an explicit namespace.
func URIQualified(ns NamespaceURI, local string) QName {
	return QName{Local: Text(local), Namespace: ns, Form: FormURIQualified}
}

// Expanded returns q with its namespace assigned. The prefix is kept as written.
func (q QName) Expanded(ns NamespaceURI) QName {
	q.Namespace = ns
	q.Form = FormExpanded
	return q
}

// HasNamespace reports whether the namespace of q is known.
func (q QName) HasNamespace() bool {
	return q.Form != FormLexical
}

// IsIncomplete reports whether the local name is missing.
func (q QName) IsIncomplete() bool {
	return q.Local.IsAbsent()
}

// IsZero returns true if the QName is the zero value.
func (q QName) IsZero() bool {
	return q == QName{}
}

// Equal returns true if two QNames are identical in every component.
func (q QName) Equal(other QName) bool {
	return q == other
}

// SameIdentity reports whether two namespace-qualified names denote the same
// expanded name. Prefixes are ignored; lexical names never match.
func (q QName) SameIdentity(other QName) bool {
	if !q.HasNamespace() || !other.HasNamespace() {
		return false
	}
	return q.Namespace == other.Namespace && q.Local == other.Local
}

// Identity strips the prefix so that names compare by namespace and local part.
func (q QName) Identity() QName {
	if !q.HasNamespace() {
		return q
	}
	return QName{Local: q.Local, Namespace: q.Namespace, Form: FormExpanded}
}

// String renders the name as written: prefix:local, local, or Q{uri}local.
func (q QName) String() string {
	if q.Form == FormURIQualified {
		return "Q{" + q.Namespace.String() + "}" + q.Local.String()
	}
	if q.Prefix.IsAbsent() {
		return q.Local.String()
	}
	return q.Prefix.String() + ":" + q.Local.String()
}

// Clark renders {namespace}local, or just local when there is no namespace.
func (q QName) Clark() string {
	if !q.HasNamespace() {
		return q.String()
	}
	if q.Namespace.IsEmpty() {
		return q.Local.String()
	}
	return "{" + q.Namespace.String() + "}" + q.Local.String()
}
