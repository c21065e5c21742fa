package serialize

import (
	"testing"

	"github.com/vellum-html/vellum/dom"
)

func TestDebugIndentsChildrenByTwoLevels(t *testing.T) {
	root := dom.NewElement("root")
	div := dom.NewElement("div")
	div.AddChild(&dom.Text{Content: "hi"})
	root.AddChild(div)

	got := Debug(root, 0)
	want := "- root\n" +
		"    - div\n" +
		"        - \"hi\"\n"

	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestDebugRendersAttributesSortedByName(t *testing.T) {
	el := dom.NewElement("a")
	el.SetAttribute("href", "x")
	el.SetAttribute("class", "y")

	got := Debug(el, 0)
	want := "- a class=\"y\" href=\"x\"\n"

	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDebugEscapesNewlinesAndQuotes(t *testing.T) {
	text := &dom.Text{Content: "line one\nline \"two\""}

	got := Debug(text, 0)
	want := `- "line one\nline \"two\""` + "\n"

	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
