package definition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	for pattern, want := range map[string]string{
		"div":               "div",
		"^div$":             "div",
		".*":                "*",
		"(h1|h2)":           "h1|h2",
		"(?:td|th)":         "td|th",
		"h1|h2|h3|h4|h5|h6": "h1|h2|h3|h4|h5|h6",
	} {
		assert.Equal(t, want, displayName(pattern), pattern)
	}
}

func TestPretty(t *testing.T) {
	spec := HTML(
		Heading("Hello"),
		Div(With("class_", "rob"), With("id", "x"),
			Text("Content"),
		),
	)

	expected := "<html>\n" +
		" <h1|h2|h3|h4|h5|h6>\n" +
		"  Hello\n" +
		" </h1|h2|h3|h4|h5|h6>\n" +
		" <div class=\"rob\" id=\"x\">\n" +
		"  <*>\n" +
		"   Content\n" +
		"  </*>\n" +
		" </div>\n" +
		"</html>\n"
	assert.Equal(t, expected, Pretty(spec))
	assert.Empty(t, Pretty(nil))
}
