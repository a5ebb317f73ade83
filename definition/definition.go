// Package definition describes the elements a document is expected to
// contain. A tree of ElementDefinitions is matched against a parsed
// document by package matcher.
package definition

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ContentKey is the reserved attribute key holding the required text content.
const ContentKey = "content"

// ErrAlreadyNested is returned when a definition handed in as a child is
// already the child of another definition.
var ErrAlreadyNested = errors.New("element definition is already nested in another definition")

// PatternError reports a name pattern that does not compile.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid name pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Cause() error { return e.Err }
func (e *PatternError) Unwrap() error { return e.Err }

// Attrs maps attribute names to the substring their value must contain.
// The key "content" is taken as the required text content, and a trailing
// underscore is dropped from a key ("class_" becomes "class").
type Attrs map[string]string

// ElementDefinition describes one expected element: a tag name pattern,
// required attributes, required text and the definitions expected after
// it. It is immutable once built.
type ElementDefinition struct {
	namePattern string
	nameMatcher *regexp.Regexp
	content     string
	attrs       map[string]string
	children    []*ElementDefinition
	parent      *ElementDefinition
}

// New is the single constructor every builder goes through. namePattern
// must match a tag name in full; it is anchored here. nil children are
// skipped.
func New(namePattern string, children []*ElementDefinition, attrs Attrs) (*ElementDefinition, error) {
	matcher, err := regexp.Compile("^(?:" + namePattern + ")$")
	if err != nil {
		return nil, &PatternError{Pattern: namePattern, Err: err}
	}

	def := &ElementDefinition{
		namePattern: namePattern,
		nameMatcher: matcher,
		attrs:       make(map[string]string, len(attrs)),
	}
	// sorted, so "class_" is applied after "class" and wins
	for _, key := range sortedKeys(attrs) {
		if key == ContentKey {
			def.content = attrs[key]
			continue
		}
		def.attrs[unescapeAttrName(key)] = attrs[key]
	}

	seen := make(map[*ElementDefinition]bool, len(children))
	for _, child := range children {
		if child == nil {
			continue
		}
		if child.parent != nil || seen[child] {
			return nil, errors.Wrapf(ErrAlreadyNested, "child %s", child)
		}
		seen[child] = true
		def.children = append(def.children, child)
	}
	for _, child := range def.children {
		child.parent = def
	}
	return def, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Must is like New but panics on error.
func Must(def *ElementDefinition, err error) *ElementDefinition {
	if err != nil {
		panic(err)
	}
	return def
}

func unescapeAttrName(key string) string {
	if len(key) > 1 && strings.HasSuffix(key, "_") {
		return strings.TrimSuffix(key, "_")
	}
	return key
}

// NamePattern returns the pattern as given, without the added anchors.
func (d *ElementDefinition) NamePattern() string { return d.namePattern }

// NameRegexp returns the anchored, compiled name pattern.
func (d *ElementDefinition) NameRegexp() *regexp.Regexp { return d.nameMatcher }

// Content returns the required text. Empty means no content is required.
func (d *ElementDefinition) Content() string { return d.content }

// Attr returns the required substring for the named attribute.
func (d *ElementDefinition) Attr(name string) (string, bool) {
	v, ok := d.attrs[name]
	return v, ok
}

// AttrNames returns the required attribute names, sorted.
func (d *ElementDefinition) AttrNames() []string {
	return sortedKeys(d.attrs)
}

// EachAttr calls f for every required attribute in no particular order
// and stops at the first call that returns false. It reports whether every
// call returned true.
func (d *ElementDefinition) EachAttr(f func(name, want string) bool) bool {
	for name, want := range d.attrs {
		if !f(name, want) {
			return false
		}
	}
	return true
}

// Attrs returns a copy of the required attributes.
func (d *ElementDefinition) Attrs() Attrs {
	out := make(Attrs, len(d.attrs))
	for k, v := range d.attrs {
		out[k] = v
	}
	return out
}

// Children returns the nested definitions in declared order.
func (d *ElementDefinition) Children() []*ElementDefinition {
	return append([]*ElementDefinition(nil), d.children...)
}

// Parent returns the enclosing definition, or nil for a root. It is only
// used to describe where a definition sits.
func (d *ElementDefinition) Parent() *ElementDefinition { return d.parent }

// Path describes d by its position, e.g. "html > div > a".
func (d *ElementDefinition) Path() string {
	var names []string
	for cur := d; cur != nil; cur = cur.parent {
		names = append(names, displayName(cur.namePattern))
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, " > ")
}

func (d *ElementDefinition) String() string {
	if d == nil {
		return "ElementDefinition[nil]"
	}
	var attrs []string
	for _, name := range d.AttrNames() {
		attrs = append(attrs, name+"="+d.attrs[name])
	}
	return fmt.Sprintf("ElementDefinition[name=%s,content=%s,attrs={%s}]",
		d.namePattern, d.content, strings.Join(attrs, ","))
}
