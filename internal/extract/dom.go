package extract

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
)

// Style tokens Facebook's developer pages put on use-case description blocks.
const (
	descTokenA = "x8t9es0"
	descTokenB = "x1fvot60"
)

// FromDOM parses the page with an HTML tokenizer instead of patterns.
// Headings are elements with role="heading"; descriptions are elements whose
// class list carries both description tokens, read up to their first link.
// Entities are decoded by the parser, so titles and descriptions both come
// out unescaped. Cleanup, filtering and pairing match FromHTML.
func FromDOM(input []byte) []UseCase {
	root, err := html.Parse(bytes.NewReader(input))
	if err != nil || root == nil {
		return nil
	}

	var titles, descriptions []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if strings.EqualFold(attr(n, "role"), "heading") {
				var b strings.Builder
				collectText(&b, n, false)
				if title := Clean(b.String()); keep(title) {
					titles = append(titles, title)
				}
				// Headings never nest descriptions on these pages.
				return
			}
			if isDescription(n) {
				var b strings.Builder
				if collectText(&b, n, true) {
					if desc := Clean(b.String()); keep(desc) {
						descriptions = append(descriptions, desc)
					}
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)

	return pair(titles, descriptions)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val
		}
	}
	return ""
}

func isDescription(n *html.Node) bool {
	var hasA, hasB bool
	for _, class := range strings.Fields(attr(n, "class")) {
		switch class {
		case descTokenA:
			hasA = true
		case descTokenB:
			hasB = true
		}
	}
	return hasA && hasB
}

// collectText appends the text under n to b. With stopAtLink set it stops at
// the first <a> element and reports whether one was found; otherwise it
// reads the whole subtree and reports true.
func collectText(b *strings.Builder, n *html.Node, stopAtLink bool) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			name := strings.ToLower(c.Data)
			if name == "script" || name == "style" {
				continue
			}
			if stopAtLink && name == "a" {
				return true
			}
			if collectText(b, c, stopAtLink) && stopAtLink {
				return true
			}
			if isBlock(name) {
				b.WriteByte(' ')
			}
		}
	}
	return !stopAtLink
}

// isBlock reports whether an element ends a run of words.
func isBlock(name string) bool {
	switch name {
	case "div", "p", "br", "li", "section", "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}
