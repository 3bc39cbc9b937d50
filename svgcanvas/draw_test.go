package svgcanvas

import (
	"errors"
	"strings"
	"testing"

	"github.com/benoitkugler/svgcanvas/svgdom"
	"golang.org/x/net/html"
)

func TestNewContext(t *testing.T) {
	for _, target := range []*html.Node{
		nil,
		svgdom.CreateElement("rect"),
		{Type: html.TextNode, Data: "svg"},
	} {
		if _, err := NewContext(target); !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("expected ErrInvalidTarget, got %v", err)
		}
	}

	if _, err := GetContext(svgdom.CreateElement("svg"), "2d"); !errors.Is(err, ErrUnexpectedContextType) {
		t.Errorf("expected ErrUnexpectedContextType, got %v", err)
	}
	if _, err := GetContext(svgdom.CreateElement("svg"), "SVG"); err != nil {
		t.Errorf("context type is case insensitive: %v", err)
	}
}

func TestNewContextDefs(t *testing.T) {
	root := svgdom.CreateElement("svg")
	existing := rect(0, 0, 1, 1)
	root.AppendChild(existing)
	c, err := NewContext(root)
	if err != nil {
		t.Fatal(err)
	}
	if svgdom.FirstElementChild(root) != c.Defs() || svgdom.NextElementSibling(c.Defs()) != existing {
		t.Fatal("<defs> should be inserted as the first child")
	}

	// an existing <defs>, even nested, is reused
	root = svgdom.CreateElement("svg")
	defs := svgdom.CreateElement("defs")
	root.AppendChild(appendAll(svgdom.CreateElement("g"), defs))
	c, _ = NewContext(root)
	if c.Defs() != defs || len(svgdom.ElementsByTag(root, "defs")) != 1 {
		t.Fatal("existing <defs> should be reused")
	}
}

func TestStyles(t *testing.T) {
	c := newTestContext(t)
	if c.FillStyle() != "#000000" || c.StrokeStyle() != "#000000" || c.Font() != "10px sans-serif" {
		t.Fatalf("unexpected default state %s %s %s", c.FillStyle(), c.StrokeStyle(), c.Font())
	}

	c.SetFillStyle("Red")
	c.SetStrokeStyle("rgba(0, 0, 255, 0.5)")
	if c.FillStyle() != "#ff0000" || c.StrokeStyle() != "rgba(0, 0, 255, 0.5)" {
		t.Fatalf("unexpected styles %s %s", c.FillStyle(), c.StrokeStyle())
	}
	c.SetFillStyle(c.FillStyle())
	if c.FillStyle() != "#ff0000" {
		t.Fatal("canonical colors should be stable")
	}
	c.SetFillStyle("bogus")
	if c.FillStyle() != "#000000" {
		t.Fatalf("invalid colors resolve to black, got %s", c.FillStyle())
	}

	c.SetFont("bold 12px serif")
	c.SetFont("not a font")
	if c.Font() != "bold 12px serif" {
		t.Fatalf("invalid fonts should be ignored, got %s", c.Font())
	}
}

func TestOptions(t *testing.T) {
	c := newTestContext(t,
		WithFillStyle("blue"),
		WithStrokeStyle("#0f0"),
		WithFont("italic 20px monospace"),
	)
	if c.FillStyle() != "#0000ff" || c.StrokeStyle() != "#00ff00" || c.Font() != "italic 20px monospace" {
		t.Fatalf("unexpected state %s %s %s", c.FillStyle(), c.StrokeStyle(), c.Font())
	}

	c = newTestContext(t, WithColorResolver(strings.ToUpper))
	c.SetFillStyle("red")
	if c.FillStyle() != "RED" || c.StrokeStyle() != "BLACK" {
		t.Fatalf("custom resolver not used: %s %s", c.FillStyle(), c.StrokeStyle())
	}
}

func TestRects(t *testing.T) {
	c := newTestContext(t)
	c.SetFillStyle("red")
	c.SetStrokeStyle("blue")

	f := c.FillRect(1, 2, 3, 4.5)
	s := c.StrokeRect(5, 6, 7, 8)
	if f.Parent != c.Root() || c.Root().LastChild != s {
		t.Fatal("rectangles should be appended to the surface")
	}
	if got := attr(f, "style"); got != "fill: #ff0000" {
		t.Errorf("unexpected fill style %q", got)
	}
	if got := attr(s, "style"); got != "stroke: #0000ff; fill-opacity: 0" {
		t.Errorf("unexpected stroke style %q", got)
	}
	if attr(f, "x") != "1" || attr(f, "y") != "2" || attr(f, "width") != "3" || attr(f, "height") != "4.5" {
		t.Errorf("unexpected geometry %v", f.Attr)
	}
}

func TestText(t *testing.T) {
	c := newTestContext(t)

	e := c.FillText("abcd", 10, 20, 0)
	if svgdom.TextContent(e) != "abcd" || attr(e, "x") != "10" || attr(e, "y") != "20" {
		t.Fatalf("unexpected text element %v", e.Attr)
	}
	if got := attr(e, "style"); got != "fill: #000000; font: 10px sans-serif" {
		t.Errorf("unexpected style %q", got)
	}
	if _, ok := svgdom.GetAttribute(e, "textLength"); ok {
		t.Error("no width constraint was given")
	}

	// natural width is 20
	e = c.FillText("abcd", 10, 20, 12)
	if attr(e, "textLength") != "12" || attr(e, "lengthAdjust") != "spacingAndGlyphs" {
		t.Errorf("narrowing constraint should be kept, got %v", e.Attr)
	}
	e = c.StrokeText("abcd", 10, 20, 100)
	if _, ok := svgdom.GetAttribute(e, "textLength"); ok {
		t.Error("widening constraint should be dropped")
	}
	if _, ok := svgdom.GetAttribute(e, "lengthAdjust"); ok {
		t.Error("widening constraint should be dropped")
	}
	if got := attr(e, "style"); got != "stroke: #000000; font: 10px sans-serif; fill-opacity: 0" {
		t.Errorf("unexpected style %q", got)
	}
}
