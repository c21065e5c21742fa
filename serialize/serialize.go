// Package serialize renders a dom.Node tree as an indented debug outline.
// The format exists only to make a parsed tree legible in a terminal; it is
// not an HTML serializer and does not round-trip to markup.
package serialize

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vellum-html/vellum/dom"
)

// Debug renders n as a multi-line outline, starting at the given depth: one
// "- " bulleted line per node, prefixed by 2*depth spaces. Children are
// rendered at depth+2, not depth+1.
func Debug(n dom.Node, depth int) string {
	var b strings.Builder
	write(&b, n, depth)
	return b.String()
}

func write(b *strings.Builder, n dom.Node, depth int) {
	b.WriteString(strings.Repeat(" ", 2*depth))
	b.WriteString("- ")

	switch node := n.(type) {
	case *dom.Element:
		b.WriteString(node.Name)
		for _, name := range sortedKeys(node.Attributes) {
			fmt.Fprintf(b, " %s=\"%s\"", name, escape(node.Attributes[name]))
		}
		b.WriteByte('\n')
		for _, child := range node.Children {
			write(b, child, depth+2)
		}
	case *dom.Text:
		fmt.Fprintf(b, "\"%s\"\n", escape(node.Content))
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return s
}
