package matcher

import (
	"strings"

	"github.com/heathj/htmlassert/definition"
	"github.com/heathj/htmlassert/parser/dom"
)

// Matches reports whether node satisfies the name, content and attribute
// constraints of def. Children of def are not considered here; their order
// is enforced by the scan.
func Matches(def *definition.ElementDefinition, node *dom.Node) bool {
	c := candidate{node: node}
	return c.matches(def)
}

// NameMatches requires the whole tag name to match the name pattern.
func NameMatches(def *definition.ElementDefinition, node *dom.Node) bool {
	return def.NameRegexp().MatchString(node.NodeName)
}

// ContentMatches holds when def requires no content, or when any single
// text string under node contains the required content.
func ContentMatches(def *definition.ElementDefinition, node *dom.Node) bool {
	return containsContent(def.Content(), node.Strings())
}

func containsContent(content string, strs []string) bool {
	if content == "" {
		return true
	}
	for _, s := range strs {
		if s != "" && strings.Contains(s, content) {
			return true
		}
	}
	return false
}

// AttributesMatch requires every attribute of def to be present on node
// with a value containing the required substring, so one class out of a
// space separated list is enough.
func AttributesMatch(def *definition.ElementDefinition, node *dom.Node) bool {
	return def.EachAttr(func(name, want string) bool {
		got, ok := node.GetAttribute(name)
		return ok && strings.Contains(got, want)
	})
}

// candidate is one element tested against many definitions. Its text is
// collected once, on the first definition whose name and attributes fit.
type candidate struct {
	node    *dom.Node
	strings []string
	loaded  bool
}

func (c *candidate) text() []string {
	if !c.loaded {
		c.strings = c.node.Strings()
		c.loaded = true
	}
	return c.strings
}

func (c *candidate) matches(def *definition.ElementDefinition) bool {
	if def == nil || !c.node.IsElement() {
		return false
	}
	if !NameMatches(def, c.node) || !AttributesMatch(def, c.node) {
		return false
	}
	return def.Content() == "" || containsContent(def.Content(), c.text())
}

func candidates(nodes dom.NodeList) []candidate {
	out := make([]candidate, len(nodes))
	for i, n := range nodes {
		out[i].node = n
	}
	return out
}

func matchesAny(defs []*definition.ElementDefinition, node *dom.Node) bool {
	c := candidate{node: node}
	for _, def := range defs {
		if c.matches(def) {
			return true
		}
	}
	return false
}
