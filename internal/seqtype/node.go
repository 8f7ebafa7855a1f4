package seqtype

import "github.com/jacoelho/xqsem/internal/qname"

// NodeKind selects the node test.
type NodeKind uint8

const (
	NodeAny NodeKind = iota
	NodeElement
	NodeAttribute
	NodeText
	NodeComment
	NodeProcessingInstruction
	NodeNamespace
	NodeDocument
	NodeSchemaElement
	NodeSchemaAttribute
)

var nodeKeywords = [...]string{
	NodeAny:                   "node",
	NodeElement:               "element",
	NodeAttribute:             "attribute",
	NodeText:                  "text",
	NodeComment:               "comment",
	NodeProcessingInstruction: "processing-instruction",
	NodeNamespace:             "namespace-node",
	NodeDocument:              "document-node",
	NodeSchemaElement:         "schema-element",
	NodeSchemaAttribute:       "schema-attribute",
}

// Keyword returns the test keyword, such as element.
func (k NodeKind) Keyword() string {
	if int(k) < len(nodeKeywords) {
		return nodeKeywords[k]
	}
	return ""
}

// NodeKindFromKeyword maps a test keyword to its kind.
func NodeKindFromKeyword(keyword string) (NodeKind, bool) {
	for kind, kw := range nodeKeywords {
		if kw == keyword {
			return NodeKind(kind), true
		}
	}
	return NodeAny, false
}

// Node is a kind test. Name and ContentType are zero when unconstrained;
// Nillable applies to element content types. Target is the
// processing-instruction target and Document the document element test.
type Node struct {
	Test        NodeKind
	Name        qname.QName
	ContentType qname.QName
	Nillable    bool
	Target      string
	Document    ItemType
}

func (Node) Kind() Kind { return KindNode }
func (Node) itemType()  {}
