package dom

// Attr is https://dom.spec.whatwg.org/#attr
type Attr struct {
	Namespace Namespace
	Name      string
	Value     string
}

func NewAttr(name, value string) *Attr {
	return &Attr{Name: name, Value: value}
}
