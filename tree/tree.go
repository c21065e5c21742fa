// Package tree builds a dom.Node tree from a token stream by walking a
// stack of currently-open elements, the way a one-pass HTML parser without
// insertion modes would: no lookahead, no backtracking, one token in, the
// stack and a pending-text buffer mutated in place.
package tree

import (
	"github.com/vellum-html/vellum/dom"
	"github.com/vellum-html/vellum/token"
)

// Build consumes tokens in order and returns a synthetic root Element
// holding everything parsed from them. The root itself is never part of the
// input; it exists purely to give top-level content somewhere to live.
func Build(tokens []token.Token) *dom.Element {
	b := &builder{
		root: dom.NewElement("root"),
	}
	b.stack = []*dom.Element{b.root}

	for _, tok := range tokens {
		b.handle(tok)
	}
	b.flushText()

	return b.root
}

type builder struct {
	root  *dom.Element
	stack []*dom.Element
	text  string
}

func (b *builder) top() *dom.Element {
	return b.stack[len(b.stack)-1]
}

func (b *builder) push(e *dom.Element) {
	b.stack = append(b.stack, e)
}

func (b *builder) pop() {
	b.stack = b.stack[:len(b.stack)-1]
}

// flushText attaches the pending text buffer as a Text node under the
// current top, unless the top is <head>, in which case the text is
// discarded outright.
func (b *builder) flushText() {
	if b.text == "" {
		return
	}
	top := b.top()
	if !isHead(top.Name) {
		top.AddChild(&dom.Text{Content: b.text})
	}
	b.text = ""
}

func (b *builder) handle(tok token.Token) {
	switch tok.Type {
	case token.StartTag:
		b.flushText()
		el := dom.NewElement(tok.Data)
		for _, attr := range tok.Attributes {
			el.SetAttribute(attr.Name, attr.Value)
		}
		b.top().AddChild(el)
		if !tok.SelfClosing && !isVoidElement(tok.Data) {
			b.push(el)
		}

	case token.EndTag:
		b.flushText()
		if len(b.stack) > 1 && b.top().Name == tok.Data {
			b.pop()
		}
		// Mismatched close: ignored, per the stack-discipline tradeoff
		// this constructor makes instead of element-scope recovery.

	case token.Character:
		b.text += tok.Data

	case token.Doctype:
		b.root.AddChild(dom.NewElement("DOCTYPE"))

	case token.Comment:
		// ignored
	}
}
