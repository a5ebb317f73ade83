package definition

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementDefinitionConstruction(t *testing.T) {
	child := Text("child")
	parent := Elem("parent", child, With("id", "abc"), With("title", "the parent"))

	assert.Equal(t, "parent", parent.NamePattern())
	assert.NotNil(t, parent.NameRegexp())
	assert.Empty(t, parent.Content())
	assert.Nil(t, parent.Parent())
	assert.Equal(t, []*ElementDefinition{child}, parent.Children())
	assert.Equal(t, Attrs{"id": "abc", "title": "the parent"}, parent.Attrs())

	assert.Same(t, parent, child.Parent())
	assert.Equal(t, "child", child.Content())
}

func TestContentKeyword(t *testing.T) {
	def := Elem("element", WithContent("Some content"))

	assert.Equal(t, "Some content", def.Content())
	_, ok := def.Attr("content")
	assert.False(t, ok)
}

func TestEscapedAttributeName(t *testing.T) {
	def := Elem("element", With("class_", "some-class"))

	v, ok := def.Attr("class")
	assert.True(t, ok)
	assert.Equal(t, "some-class", v)
	_, ok = def.Attr("class_")
	assert.False(t, ok)
}

func TestEachAttr(t *testing.T) {
	def := Elem("a", With("href", "x"), With("title", "y"), With("rel", "z"))

	seen := Attrs{}
	assert.True(t, def.EachAttr(func(name, want string) bool {
		seen[name] = want
		return true
	}))
	assert.Equal(t, def.Attrs(), seen)

	calls := 0
	assert.False(t, def.EachAttr(func(string, string) bool {
		calls++
		return false
	}))
	assert.Equal(t, 1, calls)

	assert.True(t, Elem("a").EachAttr(func(string, string) bool { return false }))
}

func TestEscapedContentIsARealAttribute(t *testing.T) {
	def := Elem("meta", With("content_", "width=device"))

	assert.Empty(t, def.Content())
	v, ok := def.Attr("content")
	assert.True(t, ok)
	assert.Equal(t, "width=device", v)
}

func TestNewFiltersNilChildren(t *testing.T) {
	a, b := Elem("a"), Elem("b")
	def, err := New("div", []*ElementDefinition{nil, a, nil, b}, nil)
	require.NoError(t, err)
	assert.Equal(t, []*ElementDefinition{a, b}, def.Children())
}

func TestNamePatternIsAnchored(t *testing.T) {
	def := Elem("h1|h2")
	re := def.NameRegexp()

	assert.True(t, re.MatchString("h1"))
	assert.True(t, re.MatchString("h2"))
	assert.False(t, re.MatchString("h12"))
	assert.False(t, re.MatchString("xh1"))
	assert.False(t, Elem("a").NameRegexp().MatchString("abbr"))
}

func TestMalformedPattern(t *testing.T) {
	_, err := New("a(", nil, nil)
	require.Error(t, err)

	var perr *PatternError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "a(", perr.Pattern)

	_, err = Build("[", Text("x"))
	assert.Error(t, err)
	assert.Panics(t, func() { Elem("(") })
}

func TestChildCanOnlyBeNestedOnce(t *testing.T) {
	shared := Text("x")
	Div(shared)

	_, err := New("div", []*ElementDefinition{shared}, nil)
	assert.True(t, errors.Is(err, ErrAlreadyNested))

	fresh := Text("y")
	_, err = New("div", []*ElementDefinition{fresh, fresh}, nil)
	assert.True(t, errors.Is(err, ErrAlreadyNested))
	assert.Nil(t, fresh.Parent())
}

func TestChildrenIsACopy(t *testing.T) {
	def := Div(Text("a"))
	children := def.Children()
	children[0] = nil
	assert.NotNil(t, def.Children()[0])
}

func TestBuilders(t *testing.T) {
	tests := []struct {
		name    string
		def     *ElementDefinition
		pattern string
		content string
		attrs   Attrs
	}{
		{"html", HTML(), "html", "", Attrs{}},
		{"heading", Heading("Hello"), HeadingPattern, "Hello", Attrs{}},
		{"text", Text("Some text"), AnyPattern, "Some text", Attrs{}},
		{"a full", A("www.google.com", "Google"), "a", "Google", Attrs{"href": "www.google.com"}},
		{"a bare", A("", ""), "a", "", Attrs{}},
		{"div", Div(With("class_", "rob")), "div", "", Attrs{"class": "rob"}},
		{"accordion", Accordion(), "div", "", Attrs{"class": "accordion"}},
		{"acc group", AccGroup(), "div", "", Attrs{"class": "accordion-group"}},
		{"acc heading", AccHeading(), "div", "", Attrs{"class": "accordion-heading"}},
		{"acc body", AccBody(), "div", "", Attrs{"class": "accordion-body"}},
		{"accordion overrides class", Accordion(With("class", "other")), "div", "", Attrs{"class": "accordion"}},
		{"input", Input("abc", "rob"), "input", "", Attrs{"id": "abc", "value": "rob"}},
		{"input no value", Input("abc", ""), "input", "", Attrs{"id": "abc"}},
		{"img", Img("/some/file"), "img", "", Attrs{"src": "/some/file"}},
		{"select", Select("abc"), "select", "", Attrs{"id": "abc"}},
		{"option", Option("1", "One", false), "option", "One", Attrs{"value": "1"}},
		{"option selected", Option("2", "", true), "option", "", Attrs{"value": "2", "selected": ""}},
		{"option xhtml", OptionXHTML("2", "2", true), "option", "2", Attrs{"value": "2", "selected": "selected"}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.pattern, tt.def.NamePattern())
			assert.Equal(t, tt.content, tt.def.Content())
			assert.Equal(t, tt.attrs, tt.def.Attrs())
		})
	}
}

func TestPathAndString(t *testing.T) {
	link := A("www.google.com", "Google")
	HTML(Div(link))

	assert.Equal(t, "html > div > a", link.Path())
	assert.Equal(t, "ElementDefinition[name=a,content=Google,attrs={href=www.google.com}]", link.String())
	assert.Equal(t, "ElementDefinition[nil]", (*ElementDefinition)(nil).String())
}
