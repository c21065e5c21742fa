package tree

import "golang.org/x/net/html/atom"

// isVoidElement reports whether name is one of the elements that never have
// content or a closing tag and so are never pushed onto the open-elements
// stack. Lookup goes through x/net/html/atom, a static name-to-id registry,
// rather than a hand-rolled map — it's the same kind of table the package
// exists for, and it implements no tree-construction rules of its own.
func isVoidElement(name string) bool {
	switch atom.Lookup([]byte(name)) {
	case atom.Area, atom.Base, atom.Br, atom.Col, atom.Embed, atom.Hr,
		atom.Img, atom.Input, atom.Link, atom.Meta, atom.Source,
		atom.Track, atom.Wbr:
		return true
	default:
		return false
	}
}

func isHead(name string) bool {
	return atom.Lookup([]byte(name)) == atom.Head
}
