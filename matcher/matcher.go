// Package matcher checks that a document contains, in order, every element
// described by a definition tree. Matching is partial: other elements may
// sit anywhere between the expected ones, and nesting in the definition
// tree only fixes the relative order, not parent/child adjacency.
package matcher

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/heathj/htmlassert/definition"
	"github.com/heathj/htmlassert/parser"
	"github.com/heathj/htmlassert/parser/dom"
)

type Option func(*Matcher)

// WithLogger sets the entry debug output goes to. Matching results never
// depend on it.
func WithLogger(log *logrus.Entry) Option {
	return func(m *Matcher) {
		m.log = log
	}
}

// WithParser replaces the parser used by Match.
func WithParser(p *parser.Parser) Option {
	return func(m *Matcher) {
		m.parser = p
	}
}

// WithoutPruning scans the whole document. The result is the same; the
// scan just covers more elements.
func WithoutPruning() Option {
	return func(m *Matcher) {
		m.prune = false
	}
}

// Matcher runs the flatten, prune and scan steps. It holds no state
// between calls and is safe for concurrent use.
type Matcher struct {
	parser *parser.Parser
	log    *logrus.Entry
	prune  bool
}

func New(opts ...Option) *Matcher {
	l := logrus.New()
	l.SetOutput(io.Discard)
	m := &Matcher{
		log:   logrus.NewEntry(l),
		prune: true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.parser == nil {
		m.parser = parser.NewParser(parser.WithLogger(m.log.WithField("component", "parser")))
	}
	return m
}

var defaultMatcher = New()

// Match parses src and matches spec against it with a default Matcher.
func Match(spec *definition.ElementDefinition, src string) (*MatchResult, error) {
	return defaultMatcher.Match(spec, src)
}

// Match parses src and matches spec against it. Only a parse failure is an
// error; a document that does not match yields a failed result.
func (m *Matcher) Match(spec *definition.ElementDefinition, src string) (*MatchResult, error) {
	root, err := m.parser.Parse(strings.NewReader(src))
	if err != nil {
		return nil, &ParseError{Mode: m.parser.Mode(), Err: err}
	}
	result := m.match(spec, root)
	result.Source = src
	return result, nil
}

// MatchDocument matches spec against a copy of root; root is not modified.
// An element root is scanned as the single child of a new document, so
// the element itself can satisfy the first definition.
func (m *Matcher) MatchDocument(spec *definition.ElementDefinition, root *dom.Node) *MatchResult {
	doc := root.CloneNode(true)
	if doc.IsElement() {
		wrapper := dom.NewDocumentNode()
		wrapper.AppendChild(doc)
		doc = wrapper
	}
	return m.match(spec, doc)
}

// match works on root in place.
func (m *Matcher) match(spec *definition.ElementDefinition, root *dom.Node) *MatchResult {
	defs := Flatten(spec)
	result := &MatchResult{
		Spec:        spec,
		Root:        root,
		Definitions: defs,
	}
	log := m.log.WithFields(logrus.Fields{"component": "matcher", "definitions": len(defs)})

	if len(defs) == 0 {
		log.Debug("empty spec, nothing to match")
		result.Passed = true
		return result
	}

	if m.prune {
		Prune(root, defs)
	}
	elements := root.Descendants()
	log.WithField("elements", len(elements)).Debug("scanning document")

	cands := candidates(elements)
	cursor := 0
	for i := range cands {
		if !cands[i].matches(defs[cursor]) {
			continue
		}
		log.WithFields(logrus.Fields{
			"cursor":     cursor,
			"definition": defs[cursor].String(),
			"node":       cands[i].node.NodeName,
		}).Debug("definition matched")
		cursor++
		if cursor == len(defs) {
			result.Passed = true
			result.Matched = cursor
			return result
		}
	}

	result.Matched = cursor
	result.FailedOn = defs[cursor]
	for _, def := range defs {
		if !matchesSome(def, cands) {
			result.NotFound = append(result.NotFound, def)
		}
	}
	log.WithFields(logrus.Fields{
		"matched":   cursor,
		"failed_on": result.FailedOn.String(),
		"not_found": len(result.NotFound),
	}).Debug("scan ended without matching every definition")
	return result
}

// matchesSome shares cands across definitions so each element's text is
// collected at most once.
func matchesSome(def *definition.ElementDefinition, cands []candidate) bool {
	for i := range cands {
		if cands[i].matches(def) {
			return true
		}
	}
	return false
}
