// Package svgdom provides the SVG scene graph used by svgcanvas: elements are
// golang.org/x/net/html nodes in the svg namespace, and this package
// adds what a drawing surface needs on top of them (element navigation,
// attributes, inline style, bounding boxes, parsing and serialization).
package svgdom

import (
	"strings"

	"golang.org/x/net/html"
)

// Namespace is the XML namespace of SVG documents.
const Namespace = "http://www.w3.org/2000/svg"

// space is the value of html.Node.Namespace for SVG elements,
// the same one golang.org/x/net/html assigns to foreign svg content.
const space = "svg"

// CreateElement returns a new, detached SVG element.
func CreateElement(tag string) *html.Node {
	return &html.Node{Type: html.ElementNode, Data: tag, Namespace: space}
}

// IsElement reports whether n is a non nil element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// GetAttribute returns the value of the attribute `key`.
func GetAttribute(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute adds or replaces the attribute `key`.
func SetAttribute(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// RemoveAttribute deletes the attribute `key`, if present.
func RemoveAttribute(n *html.Node, key string) {
	for i, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// FirstElementChild skips text and comment children.
func FirstElementChild(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return c
		}
	}
	return nil
}

// NextElementSibling skips text and comment siblings.
func NextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode {
			return s
		}
	}
	return nil
}

// ParentElement returns nil for a root or detached element.
func ParentElement(n *html.Node) *html.Node {
	if IsElement(n.Parent) {
		return n.Parent
	}
	return nil
}

// ElementsByTag returns the descendants of root (root excluded)
// with the given tag, in document order.
func ElementsByTag(root *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if c.Data == tag {
			out = append(out, c)
		}
		out = append(out, ElementsByTag(c, tag)...)
	}
	return out
}

// ElementByID returns the first element of the subtree rooted at root
// (root included) whose id attribute is `id`, or nil.
func ElementByID(root *html.Node, id string) *html.Node {
	if IsElement(root) {
		if v, ok := GetAttribute(root, "id"); ok && v == id {
			return root
		}
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := ElementByID(c, id); found != nil {
			return found
		}
	}
	return nil
}

// IDs returns the id attributes used in the subtree rooted at root
// (root included).
func IDs(root *html.Node) map[string]bool {
	out := make(map[string]bool)
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if IsElement(n) {
			if v, ok := GetAttribute(n, "id"); ok {
				out[v] = true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// AppendText adds a text node child.
func AppendText(n *html.Node, text string) {
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// TextContent concatenates the text nodes of the subtree.
func TextContent(n *html.Node) string {
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

// declaration is one `property: value` pair of a style attribute.
type declaration struct{ prop, value string }

// splitStyle parses the content of a style attribute, keeping the
// declaration order.
func splitStyle(s string) []declaration {
	var out []declaration
	for _, pair := range strings.Split(s, ";") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) != 2 {
			continue
		}
		k := strings.ToLower(strings.TrimSpace(kv[0]))
		if k == "" {
			continue
		}
		out = append(out, declaration{prop: k, value: strings.TrimSpace(kv[1])})
	}
	return out
}

func joinStyle(decls []declaration) string {
	chunks := make([]string, len(decls))
	for i, d := range decls {
		chunks[i] = d.prop + ": " + d.value
	}
	return strings.Join(chunks, "; ")
}

// Style returns the value of `prop` in the inline style attribute of n.
func Style(n *html.Node, prop string) (string, bool) {
	s, ok := GetAttribute(n, "style")
	if !ok {
		return "", false
	}
	for _, d := range splitStyle(s) {
		if d.prop == prop {
			return d.value, true
		}
	}
	return "", false
}

// SetStyle sets `prop` in the inline style attribute of n,
// replacing a previous value in place.
func SetStyle(n *html.Node, prop, value string) {
	s, _ := GetAttribute(n, "style")
	decls := splitStyle(s)
	found := false
	for i := range decls {
		if decls[i].prop == prop {
			decls[i].value = value
			found = true
		}
	}
	if !found {
		decls = append(decls, declaration{prop: prop, value: value})
	}
	SetAttribute(n, "style", joinStyle(decls))
}

// Presentation returns the value of a presentation property, looking
// at the inline style first, then at the attribute of the same name,
// as CSS precedence requires.
func Presentation(n *html.Node, prop string) (string, bool) {
	if v, ok := Style(n, prop); ok {
		return v, true
	}
	return GetAttribute(n, prop)
}
