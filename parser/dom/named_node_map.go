package dom

// NamedNodeMap keeps the attributes of an element in source order. Lookups
// are by name; a repeated name keeps its first value.
// https://dom.spec.whatwg.org/#namednodemap
type NamedNodeMap struct {
	Attrs             []*Attr
	AssociatedElement *Node
}

func NewNamedNodeMap(attrs []*Attr, oe *Node) *NamedNodeMap {
	n := &NamedNodeMap{AssociatedElement: oe}
	for _, a := range attrs {
		n.SetNamedItem(a)
	}
	return n
}

func (n *NamedNodeMap) Length() int {
	if n == nil {
		return 0
	}
	return len(n.Attrs)
}

func (n *NamedNodeMap) GetNamedItem(qn string) *Attr {
	if n == nil {
		return nil
	}
	for _, a := range n.Attrs {
		if a.Name == qn {
			return a
		}
	}
	return nil
}

// SetNamedItem adds s unless an attribute with the same name is present, in
// which case the existing one is returned.
func (n *NamedNodeMap) SetNamedItem(s *Attr) *Attr {
	if s == nil {
		return nil
	}
	if old := n.GetNamedItem(s.Name); old != nil {
		return old
	}
	n.Attrs = append(n.Attrs, s)
	return s
}

// Names returns the attribute names in source order.
func (n *NamedNodeMap) Names() []string {
	names := make([]string, 0, n.Length())
	for _, a := range n.Attrs {
		names = append(names, a.Name)
	}
	return names
}
