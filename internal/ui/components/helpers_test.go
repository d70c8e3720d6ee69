package components

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/net/html"
)

// renderElement renders c and returns the first element named tag
func renderElement(t *testing.T, ctx context.Context, c templ.Component, tag string) *html.Node {
	t.Helper()

	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	doc, err := html.Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("could not parse rendered html %q: %v", sb.String(), err)
	}

	n := findElement(doc, tag)
	if n == nil {
		t.Fatalf("no <%s> element in %q", tag, sb.String())
	}
	return n
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// hasClasses reports whether every class in want is present in the element's class attribute
func hasClasses(n *html.Node, want string) bool {
	class, _ := attr(n, "class")
	got := make(map[string]bool)
	for _, c := range strings.Fields(class) {
		got[c] = true
	}
	for _, c := range strings.Fields(want) {
		if !got[c] {
			return false
		}
	}
	return true
}
