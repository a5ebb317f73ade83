package definition

// HeadingPattern matches any of the six heading levels.
const HeadingPattern = "h1|h2|h3|h4|h5|h6"

// AnyPattern matches every tag name.
const AnyPattern = ".*"

// Part is an argument to a builder: either a child *ElementDefinition or an
// attribute option made with With or WithContent.
type Part interface {
	applyTo(*parts)
}

type parts struct {
	children []*ElementDefinition
	attrs    Attrs
}

func (d *ElementDefinition) applyTo(p *parts) {
	if d != nil {
		p.children = append(p.children, d)
	}
}

type attrPart struct {
	key, value string
}

func (a attrPart) applyTo(p *parts) {
	p.set(a.key, a.value)
}

// set replaces any attribute that names the same real attribute, so that
// "class" and "class_" never both reach New. The reserved content key only
// collides with itself; "content_" names the real content attribute.
func (p *parts) set(key, value string) {
	name := unescapeAttrName(key)
	for k := range p.attrs {
		if k == key || (k != ContentKey && key != ContentKey && unescapeAttrName(k) == name) {
			delete(p.attrs, k)
		}
	}
	p.attrs[key] = value
}

// With requires attribute key to contain value. Use a trailing underscore
// for names that read badly in Go code, e.g. With("class_", "nav").
func With(key, value string) Part {
	return attrPart{key: key, value: value}
}

// WithContent requires some text under the element to contain text.
func WithContent(text string) Part {
	return attrPart{key: ContentKey, value: text}
}

func collect(in []Part, fixed Attrs) ([]*ElementDefinition, Attrs) {
	p := &parts{attrs: Attrs{}}
	for _, part := range in {
		if part != nil {
			part.applyTo(p)
		}
	}
	for _, k := range sortedKeys(fixed) {
		p.set(k, fixed[k])
	}
	return p.children, p.attrs
}

// Build is New for builder arguments.
func Build(namePattern string, in ...Part) (*ElementDefinition, error) {
	children, attrs := collect(in, nil)
	return New(namePattern, children, attrs)
}

func build(namePattern string, in []Part, fixed Attrs) *ElementDefinition {
	children, attrs := collect(in, fixed)
	return Must(New(namePattern, children, attrs))
}

// Elem matches elements whose tag name matches name in full. It panics if
// name is not a valid pattern; use Build to get an error instead.
func Elem(name string, in ...Part) *ElementDefinition {
	return build(name, in, nil)
}

func HTML(in ...Part) *ElementDefinition {
	return build("html", in, nil)
}

// Heading matches an h1 to h6 element containing text.
func Heading(text string, in ...Part) *ElementDefinition {
	return build(HeadingPattern, in, Attrs{ContentKey: text})
}

// Text matches any element with some text under it containing text.
func Text(text string, in ...Part) *ElementDefinition {
	return build(AnyPattern, in, Attrs{ContentKey: text})
}

// A matches a link. Empty href or linkText are not required.
func A(href, linkText string, in ...Part) *ElementDefinition {
	fixed := Attrs{}
	if href != "" {
		fixed["href"] = href
	}
	if linkText != "" {
		fixed[ContentKey] = linkText
	}
	return build("a", in, fixed)
}

func Div(in ...Part) *ElementDefinition {
	return build("div", in, nil)
}

func Accordion(in ...Part) *ElementDefinition {
	return build("div", in, Attrs{"class_": "accordion"})
}

func AccGroup(in ...Part) *ElementDefinition {
	return build("div", in, Attrs{"class_": "accordion-group"})
}

func AccHeading(in ...Part) *ElementDefinition {
	return build("div", in, Attrs{"class_": "accordion-heading"})
}

func AccBody(in ...Part) *ElementDefinition {
	return build("div", in, Attrs{"class_": "accordion-body"})
}

// Input matches an input by id, and by value when value is not empty.
func Input(id, value string, in ...Part) *ElementDefinition {
	fixed := Attrs{"id": id}
	if value != "" {
		fixed["value"] = value
	}
	return build("input", in, fixed)
}

func Img(src string, in ...Part) *ElementDefinition {
	return build("img", in, Attrs{"src": src})
}

func Select(id string, in ...Part) *ElementDefinition {
	return build("select", in, Attrs{"id": id})
}

// Option matches an option by value, and by text when text is not empty.
// A selected option only needs to carry the selected attribute.
func Option(value, text string, selected bool, in ...Part) *ElementDefinition {
	return build("option", in, optionAttrs(value, text, selected, ""))
}

// OptionXHTML is Option for documents that spell out selected="selected".
func OptionXHTML(value, text string, selected bool, in ...Part) *ElementDefinition {
	return build("option", in, optionAttrs(value, text, selected, "selected"))
}

func optionAttrs(value, text string, selected bool, selectedValue string) Attrs {
	fixed := Attrs{"value": value}
	if text != "" {
		fixed[ContentKey] = text
	}
	if selected {
		fixed["selected"] = selectedValue
	}
	return fixed
}
