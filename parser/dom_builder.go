package parser

import (
	"encoding/xml"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"github.com/heathj/htmlassert/parser/dom"
)

// DOMBuilder assembles a dom tree, either by converting the output of the
// HTML5 parser or by consuming XML tokens against a stack of open elements.
type DOMBuilder struct {
	document     *dom.Node
	openElements dom.NodeList
}

func NewDOMBuilder() *DOMBuilder {
	d := &DOMBuilder{document: dom.NewDocumentNode()}
	d.openElements.Push(d.document)
	return d
}

// BuildHTML parses r with the HTML5 tree construction algorithm.
func (d *DOMBuilder) BuildHTML(r io.Reader) error {
	root, err := html.Parse(r)
	if err != nil {
		return errors.Wrap(err, "parse html")
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := convertHTMLNode(c); n != nil {
			d.document.AppendChild(n)
		}
	}
	return nil
}

func convertHTMLNode(n *html.Node) *dom.Node {
	var out *dom.Node
	switch n.Type {
	case html.ElementNode:
		attrs := make([]*dom.Attr, 0, len(n.Attr))
		for _, a := range n.Attr {
			name := a.Key
			if a.Namespace != "" {
				name = a.Namespace + ":" + a.Key
			}
			attrs = append(attrs, dom.NewAttr(name, a.Val))
		}
		out = dom.NewDOMElement(n.Data, htmlNamespace(n.Namespace), attrs...)
	case html.TextNode:
		return dom.NewTextNode(n.Data)
	case html.CommentNode:
		return dom.NewComment(n.Data)
	case html.DoctypeNode:
		return dom.NewDocTypeNode(n.Data, "", "")
	default:
		return nil
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if child := convertHTMLNode(c); child != nil {
			out.AppendChild(child)
		}
	}
	return out
}

func htmlNamespace(ns string) dom.Namespace {
	switch ns {
	case "svg":
		return dom.Svgns
	case "math":
		return dom.Mathmlns
	}
	return dom.Htmlns
}

// BuildXML consumes r as strict XML. Exactly one root element is required.
func (d *DOMBuilder) BuildXML(r io.Reader) error {
	decoder := xml.NewDecoder(r)
	decoder.Strict = true
	roots := 0
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return errors.Wrap(err, "parse xml")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if d.CurrentNode() == d.document {
				roots++
				if roots > 1 {
					return errors.Errorf("parse xml: second root element <%s>", t.Name.Local)
				}
			}
			d.WriteElement(t)
		case xml.EndElement:
			d.PopOpenElements()
		case xml.CharData:
			d.WriteCharacter(string(t))
		case xml.Comment:
			d.WriteComment(string(t))
		}
	}
	if roots == 0 {
		return errors.New("parse xml: no root element")
	}
	return nil
}

// WriteElement inserts an element for the start tag and makes it the
// current node.
func (d *DOMBuilder) WriteElement(t xml.StartElement) {
	attrs := make([]*dom.Attr, 0, len(t.Attr))
	for _, a := range t.Attr {
		name := a.Name.Local
		if a.Name.Space == "xmlns" {
			name = "xmlns:" + a.Name.Local
		}
		attrs = append(attrs, dom.NewAttr(name, a.Value))
	}
	e := dom.NewDOMElement(t.Name.Local, dom.Xmlns, attrs...)
	d.CurrentNode().AppendChild(e)
	d.PushOpenElements(e)
}

// WriteCharacter adds text to the current node. Text outside the root
// element is dropped.
func (d *DOMBuilder) WriteCharacter(data string) {
	cur := d.CurrentNode()
	if cur == d.document {
		return
	}
	cur.AppendChild(dom.NewTextNode(data))
}

// WriteComment inserts a comment into the DOM.
func (d *DOMBuilder) WriteComment(data string) {
	d.CurrentNode().AppendChild(dom.NewComment(data))
}

// PushOpenElements pushes an element to the list of currently open elements being parsed.
func (d *DOMBuilder) PushOpenElements(e *dom.Node) {
	d.openElements.Push(e)
}

// PopOpenElements pops an element off the list of open elements. The
// document itself is never popped.
func (d *DOMBuilder) PopOpenElements() {
	if len(d.openElements) > 1 {
		d.openElements.Pop()
	}
}

// CurrentNode returns the bottommost node from the stack of open elements.
func (d *DOMBuilder) CurrentNode() *dom.Node {
	return d.openElements.Peek()
}

// Document returns the document built so far.
func (d *DOMBuilder) Document() *dom.Node {
	return d.document
}
