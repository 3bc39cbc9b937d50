package svgdom

import (
	"testing"

	"golang.org/x/net/html"
)

func TestElementNavigation(t *testing.T) {
	root := CreateElement("svg")
	a := CreateElement("rect")
	b := CreateElement("text")
	root.AppendChild(a)
	AppendText(root, "\n  ")
	root.AppendChild(b)
	AppendText(b, "hello")

	if got := FirstElementChild(root); got != a {
		t.Fatalf("expected first element child to be <rect>, got %v", got)
	}
	if got := NextElementSibling(a); got != b {
		t.Fatalf("text nodes should be skipped, got %v", got)
	}
	if got := NextElementSibling(b); got != nil {
		t.Fatalf("expected no sibling after <text>, got %v", got)
	}
	if ParentElement(a) != root {
		t.Fatal("wrong parent")
	}
	if ParentElement(root) != nil {
		t.Fatal("root has no parent element")
	}
	if FirstElementChild(a) != nil {
		t.Fatal("<rect> has no children")
	}
	if TextContent(b) != "hello" {
		t.Fatalf("unexpected text content %q", TextContent(b))
	}
}

func TestAttributes(t *testing.T) {
	n := CreateElement("rect")
	if _, ok := GetAttribute(n, "x"); ok {
		t.Fatal("attribute should be absent")
	}
	SetAttribute(n, "x", "1")
	SetAttribute(n, "y", "2")
	SetAttribute(n, "x", "3")
	if v, _ := GetAttribute(n, "x"); v != "3" {
		t.Fatalf("expected replaced value, got %s", v)
	}
	if len(n.Attr) != 2 {
		t.Fatalf("expected 2 attributes, got %d", len(n.Attr))
	}
	RemoveAttribute(n, "x")
	if _, ok := GetAttribute(n, "x"); ok {
		t.Fatal("attribute should be removed")
	}
	RemoveAttribute(n, "missing")
	if len(n.Attr) != 1 {
		t.Fatalf("expected 1 attribute, got %d", len(n.Attr))
	}
}

func TestStyle(t *testing.T) {
	n := CreateElement("rect")
	SetStyle(n, "fill", "#ff0000")
	SetStyle(n, "fill-opacity", "0")
	SetStyle(n, "fill", "#00ff00")
	if s, _ := GetAttribute(n, "style"); s != "fill: #00ff00; fill-opacity: 0" {
		t.Fatalf("unexpected style attribute %q", s)
	}
	if v, ok := Style(n, "fill-opacity"); !ok || v != "0" {
		t.Fatalf("unexpected fill-opacity %q", v)
	}

	SetAttribute(n, "style", " FONT : bold 12px serif ;;broken")
	if v, _ := Style(n, "font"); v != "bold 12px serif" {
		t.Fatalf("unexpected font %q", v)
	}

	SetAttribute(n, "stroke", "blue")
	if v, _ := Presentation(n, "stroke"); v != "blue" {
		t.Fatalf("attribute should be used without inline style, got %q", v)
	}
	SetStyle(n, "stroke", "red")
	if v, _ := Presentation(n, "stroke"); v != "red" {
		t.Fatalf("inline style should win, got %q", v)
	}
}

func TestLookup(t *testing.T) {
	root := CreateElement("svg")
	g := CreateElement("g")
	defs1 := CreateElement("defs")
	defs2 := CreateElement("defs")
	m := CreateElement("mask")
	SetAttribute(m, "id", "mask0")
	root.AppendChild(g)
	g.AppendChild(defs1)
	defs1.AppendChild(m)
	root.AppendChild(defs2)

	defs := ElementsByTag(root, "defs")
	if len(defs) != 2 || defs[0] != defs1 || defs[1] != defs2 {
		t.Fatalf("expected both <defs> in document order, got %v", defs)
	}
	if ElementByID(root, "mask0") != m {
		t.Fatal("mask0 not found")
	}
	if ElementByID(root, "mask1") != nil {
		t.Fatal("mask1 should not exist")
	}

	SetAttribute(root, "id", "surface")
	ids := IDs(root)
	if len(ids) != 2 || !ids["surface"] || !ids["mask0"] {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestKind(t *testing.T) {
	for tag, structural := range map[string]bool{
		"g": true, "defs": true, "mask": true,
		"rect": false, "text": false, "svg": false, "foo": false,
	} {
		if got := KindOf(CreateElement(tag)).Structural(); got != structural {
			t.Errorf("%s: expected structural=%v", tag, structural)
		}
	}
	if KindOf(&html.Node{Type: html.TextNode, Data: "rect"}) != Other {
		t.Error("text nodes have no kind")
	}
	if Rect.String() != "Rect" || Other.String() != "Other" {
		t.Error("unexpected kind names")
	}
}
