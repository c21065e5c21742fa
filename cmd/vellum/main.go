// Command vellum reads an HTML file from disk, tokenizes and parses it, and
// prints the resulting tree as a debug outline.
package main

import (
	"fmt"
	"os"

	"github.com/vellum-html/vellum/serialize"
	"github.com/vellum-html/vellum/tokenizer"
	"github.com/vellum-html/vellum/tree"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.html>\n", os.Args[0])
		os.Exit(1)
	}

	data, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	tokens := tokenizer.New(string(data)).Run()
	root := tree.Build(tokens)

	fmt.Print(serialize.Debug(root, 0))
}
