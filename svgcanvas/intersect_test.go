package svgcanvas

import (
	"errors"
	"testing"

	"github.com/benoitkugler/svgcanvas/svgdom"
	"golang.org/x/net/html"
)

// fixedMeasurer gives every rune the same advance.
type fixedMeasurer struct{ advance, ascent, descent float64 }

func (f fixedMeasurer) MeasureText(text, font string) (float64, float64, float64) {
	return f.advance * float64(len([]rune(text))), f.ascent, f.descent
}

func newTestContext(t *testing.T, opts ...Option) *Context {
	t.Helper()
	opts = append([]Option{WithMeasurer(fixedMeasurer{advance: 5, ascent: 8, descent: 2})}, opts...)
	c, err := NewContext(svgdom.CreateElement("svg"), opts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func rect(x, y, w, h float64) *html.Node {
	e := svgdom.CreateElement("rect")
	setGeometry(e, svgdom.Bounds{X: x, Y: y, W: w, H: h})
	return e
}

func appendAll(parent *html.Node, children ...*html.Node) *html.Node {
	for _, c := range children {
		parent.AppendChild(c)
	}
	return parent
}

func sameNodes(a, b []*html.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestIntersects(t *testing.T) {
	var oracle svgdom.Oracle
	node := rect(10, 10, 10, 10)
	for _, test := range []struct {
		query svgdom.Bounds
		want  bool
	}{
		{svgdom.Bounds{X: 15, Y: 15, W: 1, H: 1}, true},
		{svgdom.Bounds{X: 0, Y: 0, W: 11, H: 11}, true},
		{svgdom.Bounds{X: 0, Y: 0, W: 10, H: 10}, false},
		{svgdom.Bounds{X: 20, Y: 10, W: 10, H: 10}, false},
		{svgdom.Bounds{X: 10, Y: 20, W: 10, H: 10}, false},
		{svgdom.Bounds{X: 0, Y: 15, W: 10, H: 1}, false},
		{svgdom.Bounds{X: 50, Y: 50, W: 10, H: 10}, false},
	} {
		if got := Intersects(oracle, node, test.query); got != test.want {
			t.Errorf("%v: expected %v, got %v", test.query, test.want, got)
		}
	}

	if Intersects(oracle, svgdom.CreateElement("title"), svgdom.Bounds{W: 100, H: 100}) {
		t.Error("elements without geometry never intersect")
	}
}

func TestIntersectionListOrder(t *testing.T) {
	c := newTestContext(t)
	a, b, d := rect(0, 0, 50, 50), rect(10, 10, 50, 50), rect(20, 20, 50, 50)
	appendAll(c.Root(), a, b, d)

	got, err := c.IntersectionList(svgdom.Bounds{X: 25, Y: 25, W: 5, H: 5}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !sameNodes(got, []*html.Node{a, b, d}) {
		t.Fatalf("expected document order, got %v", got)
	}

	got, _ = c.IntersectionList(svgdom.Bounds{X: 200, Y: 200, W: 5, H: 5}, nil)
	if len(got) != 0 {
		t.Fatalf("disjoint query should be empty, got %v", got)
	}
}

func TestIntersectionListPreOrder(t *testing.T) {
	c := newTestContext(t)
	a := rect(0, 0, 10, 10)
	inner1, inner2 := rect(0, 0, 10, 10), rect(5, 5, 10, 10)
	nested := appendAll(svgdom.CreateElement("svg"), inner1, inner2)
	last := rect(0, 0, 10, 10)
	appendAll(c.Root(), a, nested, last)

	query := svgdom.Bounds{X: 6, Y: 6, W: 1, H: 1}
	got, err := c.IntersectionList(query, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !sameNodes(got, []*html.Node{a, nested, inner1, inner2, last}) {
		t.Fatalf("unexpected pre-order %v", got)
	}

	got, _ = c.IntersectionList(query, nested)
	if !sameNodes(got, []*html.Node{inner1, inner2}) {
		t.Fatalf("unexpected subtree result %v", got)
	}
	got, _ = c.IntersectionList(query, a)
	if len(got) != 0 {
		t.Fatalf("empty subtree should give no result, got %v", got)
	}
}

func TestIntersectionListSkipsStructural(t *testing.T) {
	c := newTestContext(t)
	hidden := []*html.Node{rect(0, 0, 100, 100), rect(0, 0, 100, 100), rect(0, 0, 100, 100)}
	mask := appendAll(svgdom.CreateElement("mask"), hidden[0])
	c.Defs().AppendChild(appendAll(svgdom.CreateElement("mask"), hidden[1]))
	group := appendAll(svgdom.CreateElement("g"), hidden[2])
	visible := rect(0, 0, 100, 100)
	// a leading skipped sibling does not hide the next ones
	appendAll(c.Root(), group, mask, visible)

	query := svgdom.Bounds{X: 10, Y: 10, W: 10, H: 10}
	got, err := c.IntersectionList(query, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !sameNodes(got, []*html.Node{visible}) {
		t.Fatalf("structural subtrees should be skipped, got %v", got)
	}

	for _, target := range []*html.Node{group, mask, c.Defs()} {
		if got, _ := c.IntersectionList(query, target); len(got) != 0 {
			t.Errorf("<%s> target should give no result, got %v", target.Data, got)
		}
	}
}

func TestIntersectionListMalformed(t *testing.T) {
	root := svgdom.CreateElement("svg")
	orphan := rect(0, 0, 10, 10)
	// linked from root but without parent pointer
	root.FirstChild, root.LastChild = orphan, orphan

	_, err := IntersectionList(svgdom.Oracle{}, svgdom.Bounds{W: 100, H: 100}, root)
	if !errors.Is(err, ErrMalformedTree) {
		t.Fatalf("expected ErrMalformedTree, got %v", err)
	}
}
