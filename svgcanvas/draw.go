package svgcanvas

import (
	"github.com/benoitkugler/svgcanvas/svgdom"
	"golang.org/x/net/html"
)

// FillRect appends a rectangle painted with the fill style.
func (c *Context) FillRect(x, y, width, height float64) *html.Node {
	e := svgdom.CreateElement("rect")
	svgdom.SetStyle(e, "fill", c.fillStyle)
	setGeometry(e, svgdom.Bounds{X: x, Y: y, W: width, H: height})
	c.root.AppendChild(e)
	return e
}

// StrokeRect appends a rectangle outlined with the stroke style.
func (c *Context) StrokeRect(x, y, width, height float64) *html.Node {
	e := svgdom.CreateElement("rect")
	svgdom.SetStyle(e, "stroke", c.strokeStyle)
	svgdom.SetStyle(e, "fill-opacity", "0")
	setGeometry(e, svgdom.Bounds{X: x, Y: y, W: width, H: height})
	c.root.AppendChild(e)
	return e
}

// FillText appends a text element painted with the fill style, its
// baseline starting at (x, y). A positive maxWidth is applied
// through textLength, only when it does not widen the text.
func (c *Context) FillText(text string, x, y, maxWidth float64) *html.Node {
	e := svgdom.CreateElement("text")
	svgdom.SetStyle(e, "fill", c.fillStyle)
	svgdom.SetStyle(e, "font", c.font)
	return c.appendText(e, text, x, y, maxWidth)
}

// StrokeText is like FillText, outlining the glyphs with the stroke style.
func (c *Context) StrokeText(text string, x, y, maxWidth float64) *html.Node {
	e := svgdom.CreateElement("text")
	svgdom.SetStyle(e, "stroke", c.strokeStyle)
	svgdom.SetStyle(e, "font", c.font)
	svgdom.SetStyle(e, "fill-opacity", "0")
	return c.appendText(e, text, x, y, maxWidth)
}

func (c *Context) appendText(e *html.Node, text string, x, y, maxWidth float64) *html.Node {
	svgdom.SetAttribute(e, "x", formatFloat(x))
	svgdom.SetAttribute(e, "y", formatFloat(y))
	svgdom.AppendText(e, text)
	c.root.AppendChild(e)

	if maxWidth <= 0 {
		return e
	}
	natural, _ := c.oracle.BBox(e)
	svgdom.SetAttribute(e, "textLength", formatFloat(maxWidth))
	svgdom.SetAttribute(e, "lengthAdjust", "spacingAndGlyphs")
	if fitted, _ := c.oracle.BBox(e); fitted.W > natural.W {
		svgdom.RemoveAttribute(e, "lengthAdjust")
		svgdom.RemoveAttribute(e, "textLength")
	}
	return e
}
