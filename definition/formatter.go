package definition

import (
	"strings"
)

var displayReplacer = strings.NewReplacer(
	"(?:", "",
	"(", "",
	")", "",
	".*", "*",
)

// displayName turns a name pattern into something that reads like a tag
// name: anchors and groups are dropped and ".*" becomes "*".
func displayName(pattern string) string {
	name := strings.TrimSuffix(strings.TrimPrefix(pattern, "^"), "$")
	return displayReplacer.Replace(name)
}

// Pretty renders a definition tree as indented, HTML-like markup with one
// space of indent per level. It is meant for failure reports and is not
// valid HTML: "h1|h2" and "*" show up as tag names.
func Pretty(def *ElementDefinition) string {
	if def == nil {
		return ""
	}
	var sb strings.Builder
	prettyDef(&sb, def, 0)
	return sb.String()
}

func prettyDef(sb *strings.Builder, def *ElementDefinition, depth int) {
	indent := strings.Repeat(" ", depth)
	name := displayName(def.namePattern)

	sb.WriteString(indent + "<" + name)
	for _, attr := range def.AttrNames() {
		sb.WriteString(" " + attr + "=\"" + def.attrs[attr] + "\"")
	}
	sb.WriteString(">\n")
	if def.content != "" {
		sb.WriteString(indent + " " + def.content + "\n")
	}
	for _, child := range def.children {
		prettyDef(sb, child, depth+1)
	}
	sb.WriteString(indent + "</" + name + ">\n")
}
