package definition

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// kind is a named shape a YAML node can ask for instead of spelling out
// the name pattern and fixed attributes itself.
type kind struct {
	pattern string
	fixed   Attrs
}

var kinds = map[string]kind{
	"elem":        {},
	"html":        {pattern: "html"},
	"heading":     {pattern: HeadingPattern},
	"text":        {pattern: AnyPattern},
	"a":           {pattern: "a"},
	"div":         {pattern: "div"},
	"accordion":   {pattern: "div", fixed: Attrs{"class": "accordion"}},
	"acc_group":   {pattern: "div", fixed: Attrs{"class": "accordion-group"}},
	"acc_heading": {pattern: "div", fixed: Attrs{"class": "accordion-heading"}},
	"acc_body":    {pattern: "div", fixed: Attrs{"class": "accordion-body"}},
	"input":       {pattern: "input"},
	"img":         {pattern: "img"},
	"select":      {pattern: "select"},
	"option":      {pattern: "option"},
}

// yamlDefinition is one node of a YAML spec file:
//
//	kind: html
//	children:
//	  - kind: heading
//	    content: Hello
//	  - name: a
//	    attrs: {href: www.google.com}
//	    content: Google
//
// name is a tag name pattern, pattern an alternative spelling of the same
// thing. kind picks a builder shape; an explicit name or pattern overrides
// the pattern of the kind.
type yamlDefinition struct {
	Name     string            `yaml:"name"`
	Pattern  string            `yaml:"pattern"`
	Kind     string            `yaml:"kind"`
	Content  string            `yaml:"content"`
	Attrs    map[string]string `yaml:"attrs"`
	Children []yaml.Node       `yaml:"children"`
}

// Load reads a spec tree from YAML. An empty document yields a nil
// definition, which matches every document.
func Load(r io.Reader) (*ElementDefinition, error) {
	in, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read spec")
	}
	return Parse(in)
}

// LoadFile is Load for a path; "-" reads standard input.
func LoadFile(path string) (*ElementDefinition, error) {
	if path == "-" {
		return Load(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open spec")
	}
	defer f.Close()

	def, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return def, nil
}

// Parse decodes a YAML spec tree.
func Parse(in []byte) (*ElementDefinition, error) {
	var docNode yaml.Node
	if err := yaml.Unmarshal(in, &docNode); err != nil {
		return nil, errors.Wrap(err, "phase=parse")
	}
	if len(docNode.Content) == 0 {
		return nil, nil
	}
	root := docNode.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return nil, nil
	}
	return decodeDefinition(root)
}

func decodeDefinition(node *yaml.Node) (*ElementDefinition, error) {
	if node.Kind != yaml.MappingNode {
		return nil, errors.Errorf("phase=load line=%d: element definition must be a mapping", node.Line)
	}
	var raw yamlDefinition
	if err := node.Decode(&raw); err != nil {
		return nil, errors.Wrapf(err, "phase=load line=%d", node.Line)
	}

	pattern, fixed, err := raw.shape()
	if err != nil {
		return nil, errors.Wrapf(err, "phase=load line=%d", node.Line)
	}

	p := &parts{attrs: Attrs{}}
	// sorted like New, so "class_" wins over "class"
	for _, k := range sortedKeys(raw.Attrs) {
		p.set(k, raw.Attrs[k])
	}
	for _, k := range sortedKeys(fixed) {
		p.set(k, fixed[k])
	}
	if raw.Content != "" {
		p.set(ContentKey, raw.Content)
	}

	children := make([]*ElementDefinition, 0, len(raw.Children))
	for i := range raw.Children {
		child, err := decodeDefinition(&raw.Children[i])
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	def, err := New(pattern, children, p.attrs)
	if err != nil {
		return nil, errors.Wrapf(err, "phase=load line=%d", node.Line)
	}
	return def, nil
}

func (raw yamlDefinition) shape() (string, Attrs, error) {
	if raw.Name != "" && raw.Pattern != "" {
		return "", nil, errors.New("name and pattern are mutually exclusive")
	}
	pattern := raw.Name
	if raw.Pattern != "" {
		pattern = raw.Pattern
	}

	var fixed Attrs
	if raw.Kind != "" {
		k, ok := kinds[strings.ToLower(raw.Kind)]
		if !ok {
			return "", nil, errors.Errorf("unknown kind %q", raw.Kind)
		}
		if pattern == "" {
			pattern = k.pattern
		}
		fixed = k.fixed
	}
	if pattern == "" {
		return "", nil, errors.New("one of name, pattern or kind is required")
	}
	return pattern, fixed, nil
}
