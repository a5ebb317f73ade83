package parser

import (
	"strings"

	"github.com/heathj/htmlassert/parser/dom"
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// https://html.spec.whatwg.org/#escapingString
func escapeString(s string, attrVal bool) string {
	s = strings.Replace(s, "&", "&amp;", -1)
	s = strings.Replace(s, "\u00A0", "&nbsp;", -1)
	if attrVal {
		s = strings.Replace(s, "\"", "&quot;", -1)
	} else {
		s = strings.Replace(s, "<", "&lt;", -1)
		s = strings.Replace(s, ">", "&gt;", -1)
	}

	return s
}

func rawText(n *dom.Node) bool {
	if n == nil {
		return false
	}
	switch n.NodeName {
	case "style", "script", "xmp", "iframe", "noembed", "noframes", "plaintext", "noscript":
		return n.NamespaceURI == dom.Htmlns
	}
	return false
}

func startTag(n *dom.Node) string {
	ret := "<" + n.NodeName
	for _, a := range n.Attributes.Attrs {
		ret += " " + a.Name + "=\"" + escapeString(a.Value, true) + "\""
	}
	return ret + ">"
}

// Serialize renders the children of fragment back into markup. Attributes
// keep their source order.
func Serialize(fragment *dom.Node) string {
	var sb strings.Builder
	for _, child := range fragment.ChildNodes {
		serializeNode(&sb, child)
	}
	return sb.String()
}

func serializeNode(sb *strings.Builder, child *dom.Node) {
	switch child.NodeType {
	case dom.ElementNode:
		sb.WriteString(startTag(child))
		if voidElements[child.NodeName] && child.NamespaceURI == dom.Htmlns {
			return
		}
		sb.WriteString(Serialize(child))
		sb.WriteString("</" + child.NodeName + ">")
	case dom.TextNode, dom.CDATASectionNode:
		if rawText(child.ParentNode) {
			sb.WriteString(child.Text.Data)
		} else {
			sb.WriteString(escapeString(child.Text.Data, false))
		}
	case dom.CommentNode:
		sb.WriteString("<!--" + child.Comment.Data + "-->")
	case dom.DocumentTypeNode:
		sb.WriteString("<!DOCTYPE " + child.DocumentType.Name + ">")
	}
}

// Pretty renders node as indented markup: one tag or text run per line,
// one space of indent per level. Whitespace-only text is dropped and other
// text is trimmed.
func Pretty(node *dom.Node) string {
	var sb strings.Builder
	if node.NodeType == dom.DocumentNode {
		for _, child := range node.ChildNodes {
			prettyNode(&sb, child, 0)
		}
	} else {
		prettyNode(&sb, node, 0)
	}
	return sb.String()
}

func prettyNode(sb *strings.Builder, n *dom.Node, depth int) {
	indent := strings.Repeat(" ", depth)
	switch n.NodeType {
	case dom.ElementNode:
		sb.WriteString(indent + startTag(n) + "\n")
		if voidElements[n.NodeName] && n.NamespaceURI == dom.Htmlns {
			return
		}
		for _, child := range n.ChildNodes {
			prettyNode(sb, child, depth+1)
		}
		sb.WriteString(indent + "</" + n.NodeName + ">\n")
	case dom.TextNode, dom.CDATASectionNode:
		text := strings.TrimSpace(n.Text.Data)
		if text == "" {
			return
		}
		if !rawText(n.ParentNode) {
			text = escapeString(text, false)
		}
		sb.WriteString(indent + text + "\n")
	case dom.CommentNode:
		sb.WriteString(indent + "<!--" + n.Comment.Data + "-->\n")
	case dom.DocumentTypeNode:
		sb.WriteString(indent + "<!DOCTYPE " + n.DocumentType.Name + ">\n")
	}
}
