package matcher

import (
	"fmt"
	"strings"

	"github.com/heathj/htmlassert/definition"
	"github.com/heathj/htmlassert/parser"
	"github.com/heathj/htmlassert/parser/dom"
)

// ParseError wraps a failure to parse the source document.
type ParseError struct {
	Mode parser.Mode
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s source: %v", e.Mode, e.Err)
}

func (e *ParseError) Cause() error  { return e.Err }
func (e *ParseError) Unwrap() error { return e.Err }

// MatchResult is the outcome of one match. A failed result says which
// definition the scan was waiting for and which definitions match no
// element at all.
type MatchResult struct {
	Passed bool

	Spec   *definition.ElementDefinition
	Source string
	// Root is the document that was scanned, after pruning.
	Root *dom.Node

	// Definitions is the flattened spec, in scan order.
	Definitions []*definition.ElementDefinition
	// Matched counts the definitions satisfied in order before the scan ended.
	Matched int
	// FailedOn is the definition the scan was stalled on. nil when passed.
	FailedOn *definition.ElementDefinition
	// NotFound holds, in scan order, the definitions no element matches
	// anywhere in the document.
	NotFound []*definition.ElementDefinition
}

func (r *MatchResult) Failed() bool {
	return !r.Passed
}

// NotFoundContains reports whether def matched nothing in the document.
func (r *MatchResult) NotFoundContains(def *definition.ElementDefinition) bool {
	for _, d := range r.NotFound {
		if d == def {
			return true
		}
	}
	return false
}

func (r *MatchResult) String() string {
	var sb strings.Builder
	if r.Passed {
		fmt.Fprintf(&sb, "PASSED: matched %d/%d element definitions\n", r.Matched, len(r.Definitions))
		return sb.String()
	}

	fmt.Fprintf(&sb, "FAILED: matched %d/%d element definitions in order\n", r.Matched, len(r.Definitions))
	fmt.Fprintf(&sb, "stalled on: %s (at %s)\n", r.FailedOn, r.FailedOn.Path())
	if len(r.NotFound) == 0 {
		sb.WriteString("every definition matches somewhere, but not in the required order\n")
	} else {
		sb.WriteString("not found anywhere:\n")
		for _, def := range r.NotFound {
			fmt.Fprintf(&sb, "  - %s (at %s)\n", def, def.Path())
		}
	}
	sb.WriteString("spec:\n")
	sb.WriteString(definition.Pretty(r.Spec))
	return sb.String()
}
