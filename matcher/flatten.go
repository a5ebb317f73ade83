package matcher

import "github.com/heathj/htmlassert/definition"

// Flatten lists the definitions of the tree rooted at root in pre-order:
// a definition, then each of its children flattened in declared order.
func Flatten(root *definition.ElementDefinition) []*definition.ElementDefinition {
	var all []*definition.ElementDefinition
	flatten(root, &all)
	return all
}

func flatten(def *definition.ElementDefinition, all *[]*definition.ElementDefinition) {
	if def == nil {
		return
	}
	*all = append(*all, def)
	for _, child := range def.Children() {
		flatten(child, all)
	}
}
