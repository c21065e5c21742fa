package tree

import (
	"testing"

	"github.com/vellum-html/vellum/dom"
	"github.com/vellum-html/vellum/token"
)

func tag(typ token.Type, data string, attrs ...token.Attribute) token.Token {
	return token.Token{Type: typ, Data: data, Attributes: attrs}
}

func char(c byte) token.Token {
	return token.Token{Type: token.Character, Data: string(c)}
}

func TestBuildNestsOnStartTagAndPopsOnMatchingEndTag(t *testing.T) {
	tokens := []token.Token{
		tag(token.StartTag, "div"),
		tag(token.StartTag, "p"),
		char('h'),
		char('i'),
		tag(token.EndTag, "p"),
		tag(token.EndTag, "div"),
	}

	root := Build(tokens)

	if len(root.Children) != 1 {
		t.Fatalf("expected one top-level child, got %d", len(root.Children))
	}
	div, ok := root.Children[0].(*dom.Element)
	if !ok || div.Name != "div" {
		t.Fatalf("expected a div element, got %#v", root.Children[0])
	}
	if len(div.Children) != 1 {
		t.Fatalf("expected div to have one child, got %d", len(div.Children))
	}
	p, ok := div.Children[0].(*dom.Element)
	if !ok || p.Name != "p" {
		t.Fatalf("expected a p element, got %#v", div.Children[0])
	}
	if len(p.Children) != 1 {
		t.Fatalf("expected p to have one text child, got %d", len(p.Children))
	}
	text, ok := p.Children[0].(*dom.Text)
	if !ok || text.Content != "hi" {
		t.Fatalf("expected text \"hi\", got %#v", p.Children[0])
	}
}

func TestBuildDropsTextWhileTopIsHead(t *testing.T) {
	tokens := []token.Token{
		tag(token.StartTag, "head"),
		char(' '),
		char(' '),
		tag(token.EndTag, "head"),
		tag(token.StartTag, "body"),
		char('x'),
		tag(token.EndTag, "body"),
	}

	root := Build(tokens)

	head := root.Children[0].(*dom.Element)
	if len(head.Children) != 0 {
		t.Fatalf("expected head to have no children, got %#v", head.Children)
	}
	body := root.Children[1].(*dom.Element)
	if len(body.Children) != 1 || body.Children[0].(*dom.Text).Content != "x" {
		t.Fatalf("expected body to contain text \"x\", got %#v", body.Children)
	}
}

func TestBuildNeverPushesVoidElements(t *testing.T) {
	tokens := []token.Token{
		tag(token.StartTag, "img", token.Attribute{Name: "src", Value: "a.png"}),
		char('x'),
	}

	root := Build(tokens)

	if len(root.Children) != 2 {
		t.Fatalf("expected img and text as siblings under root, got %d children", len(root.Children))
	}
	img := root.Children[0].(*dom.Element)
	if img.Name != "img" || len(img.Children) != 0 {
		t.Fatalf("expected an empty img element, got %#v", img)
	}
	text := root.Children[1].(*dom.Text)
	if text.Content != "x" {
		t.Fatalf("expected text \"x\" to land under root, got %q", text.Content)
	}
}

func TestBuildIgnoresMismatchedEndTag(t *testing.T) {
	tokens := []token.Token{
		tag(token.StartTag, "div"),
		tag(token.EndTag, "span"),
		char('x'),
		tag(token.EndTag, "div"),
	}

	root := Build(tokens)

	div := root.Children[0].(*dom.Element)
	if len(div.Children) != 1 || div.Children[0].(*dom.Text).Content != "x" {
		t.Fatalf("expected the mismatched close to be ignored and \"x\" to land under div, got %#v", div.Children)
	}
}

func TestBuildRootAttachesDoctypeDirectly(t *testing.T) {
	tokens := []token.Token{
		tag(token.Doctype, "html"),
		tag(token.StartTag, "html"),
	}

	root := Build(tokens)

	if len(root.Children) != 2 {
		t.Fatalf("expected DOCTYPE and html as siblings under root, got %d", len(root.Children))
	}
	doctype := root.Children[0].(*dom.Element)
	if doctype.Name != "DOCTYPE" {
		t.Fatalf("expected synthetic DOCTYPE element, got %#v", doctype)
	}
}

func TestBuildLastAttributeOccurrenceWins(t *testing.T) {
	tokens := []token.Token{
		tag(token.StartTag, "a",
			token.Attribute{Name: "href", Value: "first"},
			token.Attribute{Name: "href", Value: "second"},
		),
	}

	root := Build(tokens)

	a := root.Children[0].(*dom.Element)
	if a.Attributes["href"] != "second" {
		t.Fatalf("expected last occurrence to win, got %q", a.Attributes["href"])
	}
}
