package dom

import (
	"sort"
	"strings"
)

type NodeType uint16

const (
	ElementNode NodeType = iota + 1
	AttrNode
	TextNode
	CDATASectionNode
	ProcessingInstructionNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
)

func (t NodeType) String() string {
	switch t {
	case ElementNode:
		return "element"
	case AttrNode:
		return "attr"
	case TextNode:
		return "text"
	case CDATASectionNode:
		return "cdata"
	case ProcessingInstructionNode:
		return "processing-instruction"
	case CommentNode:
		return "comment"
	case DocumentNode:
		return "document"
	case DocumentTypeNode:
		return "doctype"
	case DocumentFragmentNode:
		return "fragment"
	}
	return "unknown"
}

// Node is one node of a parsed document. Only the embedded part matching
// NodeType is set.
// https://dom.spec.whatwg.org/#node
type Node struct {
	NodeType   NodeType
	NodeName   string
	ParentNode *Node
	ChildNodes NodeList

	// Node types
	*Element
	*Text
	*Comment
	*DocumentType
}

// NewDocumentNode returns an empty document root.
func NewDocumentNode() *Node {
	return &Node{
		NodeType: DocumentNode,
		NodeName: "#document",
	}
}

// NewDOMElement returns an element node with the given tag name and attributes.
func NewDOMElement(name string, namespace Namespace, attrs ...*Attr) *Node {
	n := &Node{
		NodeType: ElementNode,
		NodeName: name,
		Element: &Element{
			NamespaceURI: namespace,
			LocalName:    name,
		},
	}
	n.Attributes = NewNamedNodeMap(attrs, n)
	return n
}

func NewTextNode(text string) *Node {
	return &Node{
		NodeType: TextNode,
		NodeName: "#text",
		Text:     NewText(text),
	}
}

// NewComment returns a comment node with its Data section filled.
func NewComment(data string) *Node {
	return &Node{
		NodeType: CommentNode,
		NodeName: "#comment",
		Comment:  NewCommentData(data),
	}
}

func NewDocTypeNode(name, pub, sys string) *Node {
	return &Node{
		NodeType: DocumentTypeNode,
		NodeName: name,
		DocumentType: &DocumentType{
			Name:     name,
			PublicID: pub,
			SystemID: sys,
		},
	}
}

// IsElement reports whether n is an element node.
func (n *Node) IsElement() bool {
	return n != nil && n.NodeType == ElementNode
}

// ElementChildren returns the element children of n in document order.
// Text, comments and doctypes are skipped.
func (n *Node) ElementChildren() NodeList {
	var out NodeList
	for _, child := range n.ChildNodes {
		if child.IsElement() {
			out = append(out, child)
		}
	}
	return out
}

// Descendants returns every element below n in document pre-order. n itself
// is not included.
func (n *Node) Descendants() NodeList {
	var out NodeList
	n.walkElements(func(e *Node) {
		out = append(out, e)
	})
	return out
}

func (n *Node) walkElements(visit func(*Node)) {
	for _, child := range n.ChildNodes {
		if !child.IsElement() {
			continue
		}
		visit(child)
		child.walkElements(visit)
	}
}

// Strings returns the data of every text node under n, direct or nested, in
// document order. Each string is kept separate; they are not joined.
func (n *Node) Strings() []string {
	var out []string
	n.collectStrings(&out)
	return out
}

func (n *Node) collectStrings(out *[]string) {
	for _, child := range n.ChildNodes {
		switch child.NodeType {
		case TextNode, CDATASectionNode:
			*out = append(*out, child.Text.Data)
		case ElementNode:
			child.collectStrings(out)
		}
	}
}

// TextContent is the concatenation of Strings.
func (n *Node) TextContent() string {
	return strings.Join(n.Strings(), "")
}

// TextNodes returns detached copies of every text node under n.
func (n *Node) TextNodes() NodeList {
	var out NodeList
	for _, s := range n.Strings() {
		out = append(out, NewTextNode(s))
	}
	return out
}

// GetAttribute returns the value of the named attribute and whether it is present.
func (n *Node) GetAttribute(name string) (string, bool) {
	if !n.IsElement() || n.Attributes == nil {
		return "", false
	}
	attr := n.Attributes.GetNamedItem(name)
	if attr == nil {
		return "", false
	}
	return attr.Value, true
}

// CloneNode copies n. With deep set the whole subtree is copied and the
// copy shares no nodes with the original.
func (n *Node) CloneNode(deep bool) *Node {
	var copy *Node
	switch n.NodeType {
	case ElementNode:
		attrs := make([]*Attr, 0, n.Attributes.Length())
		for _, a := range n.Attributes.Attrs {
			attrs = append(attrs, NewAttr(a.Name, a.Value))
		}
		copy = NewDOMElement(n.NodeName, n.NamespaceURI, attrs...)
	case TextNode, CDATASectionNode:
		copy = NewTextNode(n.Text.Data)
		copy.NodeType = n.NodeType
	case CommentNode:
		copy = NewComment(n.Comment.Data)
	case DocumentTypeNode:
		copy = NewDocTypeNode(n.DocumentType.Name, n.PublicID, n.SystemID)
	default:
		copy = &Node{NodeType: n.NodeType, NodeName: n.NodeName}
	}

	if deep {
		for _, child := range n.ChildNodes {
			copy.AppendChild(child.CloneNode(true))
		}
	}
	return copy
}

func (n *Node) AppendChild(on *Node) *Node {
	on.ParentNode = n
	n.ChildNodes = append(n.ChildNodes, on)
	return on
}

// RemoveChild detaches child from n. It returns nil when child is not a
// child of n.
func (n *Node) RemoveChild(child *Node) *Node {
	node := n.ChildNodes.Remove(n.ChildNodes.Contains(child))
	if node != nil {
		node.ParentNode = nil
	}
	return node
}

// ReplaceChild puts the nodes in place of child, keeping their position.
func (n *Node) ReplaceChild(child *Node, nodes ...*Node) {
	i := n.ChildNodes.Contains(child)
	if i < 0 {
		return
	}
	for _, on := range nodes {
		on.ParentNode = n
	}
	rest := append(NodeList{}, n.ChildNodes[i+1:]...)
	n.ChildNodes = append(append(n.ChildNodes[:i], nodes...), rest...)
	child.ParentNode = nil
}

func serializeNodeType(node *Node, ident int) string {
	switch node.NodeType {
	case ElementNode:
		e := "<" + node.NodeName
		if node.Attributes != nil && node.Attributes.Length() != 0 {
			e += ">"
			keys := node.Attributes.Names()
			sort.Strings(keys)
			spaces := "| "
			for i := 1; i < ident; i++ {
				spaces += "  "
			}
			for _, name := range keys {
				e += "\n" + spaces + name + "=\"" + node.Attributes.GetNamedItem(name).Value + "\""
			}
		} else {
			e += ">"
		}
		return e
	case TextNode, CDATASectionNode:
		return "\"" + node.Text.Data + "\""
	case CommentNode:
		return "<!-- " + node.Comment.Data + " -->"
	case DocumentTypeNode:
		return "<!DOCTYPE " + node.DocumentType.Name + ">"
	case DocumentNode:
		return "#document"
	default:
		return ""
	}
}

func (node *Node) serialize(ident int) string {
	ser := serializeNodeType(node, ident+1) + "\n"
	if node.NodeType != DocumentNode {
		spaces := "| "
		for i := 1; i < ident; i++ {
			spaces += "  "
		}
		ser = spaces + ser
	}
	for _, child := range node.ChildNodes {
		ser += child.serialize(ident + 1)
	}

	return ser
}

// String dumps the tree below node in the html5lib test format.
func (node *Node) String() string {
	return strings.TrimRight(node.serialize(0), "\n")
}
