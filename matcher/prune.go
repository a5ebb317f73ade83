package matcher

import (
	"github.com/heathj/htmlassert/definition"
	"github.com/heathj/htmlassert/parser/dom"
)

// Prune removes the element subtrees below node that match none of defs
// and reports whether node is live: it matches some definition itself, or
// a descendant does. Order is ignored; only the scan enforces it. node is
// never removed, even when it is not live.
//
// A removed subtree leaves its text behind in its place, so the strings
// under every surviving ancestor are unchanged and content matches are
// the same before and after pruning.
func Prune(node *dom.Node, defs []*definition.ElementDefinition) bool {
	live := matchesAny(defs, node)
	for _, child := range node.ElementChildren() {
		if Prune(child, defs) {
			live = true
			continue
		}
		node.ReplaceChild(child, child.TextNodes()...)
	}
	return live
}
