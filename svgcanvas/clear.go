package svgcanvas

import (
	"strconv"

	"github.com/benoitkugler/svgcanvas/svgdom"
	"golang.org/x/net/html"
)

// ClearRect erases the given rectangle from every element it overlaps.
//
// Each affected element references a mask, created on first use with a white
// rectangle covering the element bounding box. Every clear appends a black
// rectangle to the masks, so that after several calls an element shows
// its bounding box minus the union of the cleared rectangles.
// Nothing is modified if the rectangle overlaps no element.
func (c *Context) ClearRect(x, y, width, height float64) error {
	r := svgdom.Bounds{X: x, Y: y, W: width, H: height}
	nodes, err := c.IntersectionList(r, nil)
	if err != nil {
		return err
	}

	// ids in use, collected once when the first mask is needed
	var used map[string]bool

	// topmost first
	for i := len(nodes) - 1; i >= 0; i-- {
		n := nodes[i]
		if svgdom.KindOf(svgdom.ParentElement(n)) == svgdom.Mask {
			continue
		}

		ref, _ := svgdom.GetAttribute(n, "mask")
		mask := c.masks[ref]
		if mask == nil {
			if used == nil {
				used = svgdom.IDs(c.root)
			}
			mask = c.newMask(n, used)
		}
		mask.AppendChild(maskRect(r, "black"))
	}
	return nil
}

// MaskOf returns the mask created by ClearRect for n, or nil.
func (c *Context) MaskOf(n *html.Node) *html.Node {
	ref, ok := svgdom.GetAttribute(n, "mask")
	if !ok {
		return nil
	}
	return c.masks[ref]
}

// newMask creates, registers and attaches the mask of n.
// `used` holds the ids of the document and is updated.
func (c *Context) newMask(n *html.Node, used map[string]bool) *html.Node {
	id := c.nextMaskID(used)
	ref := "url(#" + id + ")"
	box, _ := c.oracle.BBox(n)

	mask := svgdom.CreateElement("mask")
	svgdom.SetAttribute(mask, "id", id)
	mask.AppendChild(maskRect(box, "white"))
	c.defs.AppendChild(mask)

	svgdom.SetAttribute(n, "mask", ref)
	c.masks[ref] = mask

	Logger().Debug("svgcanvas: mask created", "id", id, "element", n.Data, "bbox", box)
	return mask
}

// nextMaskID returns an id absent from `used`, and records it.
// The counter is strictly increasing.
func (c *Context) nextMaskID(used map[string]bool) string {
	for {
		id := "mask" + strconv.Itoa(c.maskID)
		c.maskID++
		if !used[id] {
			used[id] = true
			return id
		}
	}
}

func maskRect(r svgdom.Bounds, fill string) *html.Node {
	e := svgdom.CreateElement("rect")
	setGeometry(e, r)
	svgdom.SetAttribute(e, "fill", fill)
	return e
}
