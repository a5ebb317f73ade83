package dom

type Namespace uint

const (
	Htmlns Namespace = iota
	Mathmlns
	Svgns
	Xmlns
)

// Element is an individual element of a parsed document.
// https://dom.spec.whatwg.org/#interface-element
type Element struct {
	NamespaceURI Namespace
	LocalName    string
	Attributes   *NamedNodeMap
}
