package svgcanvas

import (
	"fmt"

	"github.com/benoitkugler/svgcanvas/svgdom"
	"golang.org/x/net/html"
)

// skip is true for nodes which are neither reported nor searched.
func skip(n *html.Node) bool {
	return n == nil || svgdom.KindOf(n).Structural()
}

// Intersects reports whether the bounding box of n, as computed by
// `oracle`, overlaps r. Boxes sharing only an edge do not intersect, and
// elements without geometry intersect nothing.
func Intersects(oracle svgdom.Oracle, n *html.Node, r svgdom.Bounds) bool {
	b, ok := oracle.BBox(n)
	if !ok {
		return false
	}
	return r.Overlaps(b)
}

// CheckIntersection is Intersects with the oracle of the context.
func (c *Context) CheckIntersection(n *html.Node, r svgdom.Bounds) bool {
	return Intersects(c.oracle, n, r)
}

// IntersectionList returns the elements under `target` whose bounding box
// overlaps r, in document order. A nil target means the surface root.
// Groups, <defs> and <mask> are never reported and never searched.
func (c *Context) IntersectionList(r svgdom.Bounds, target *html.Node) ([]*html.Node, error) {
	if target == nil {
		target = c.root
	}
	return IntersectionList(c.oracle, r, target)
}

// IntersectionList returns the elements under `target` overlapping r,
// in document order, using `oracle` for bounding boxes.
// The subtree is walked in pre-order without recursion, climbing back
// through parent pointers.
func IntersectionList(oracle svgdom.Oracle, r svgdom.Bounds, target *html.Node) ([]*html.Node, error) {
	if skip(target) {
		return nil, nil
	}

	var out []*html.Node
	n := svgdom.FirstElementChild(target)
	for n != nil && n != target {
		if !skip(n) {
			if Intersects(oracle, n, r) {
				out = append(out, n)
			}
			if child := svgdom.FirstElementChild(n); child != nil {
				n = child
				continue
			}
		}

		if next := svgdom.NextElementSibling(n); next != nil {
			n = next
			continue
		}

		// climb until an ancestor has a next sibling
		for {
			parent := n.Parent
			if parent == nil {
				return out, fmt.Errorf("%w: <%s> is detached from <%s>", ErrMalformedTree, n.Data, target.Data)
			}
			n = parent
			if n == target {
				break
			}
			if next := svgdom.NextElementSibling(n); next != nil {
				n = next
				break
			}
		}
	}

	Logger().Debug("svgcanvas: intersection list", "query", r, "found", len(out))
	return out, nil
}
