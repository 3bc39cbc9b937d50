// Package svgcanvas implements a canvas-like 2D drawing context
// on top of an SVG scene graph.
//
// Drawing operations append elements to the surface instead of
// painting pixels. Erasing a region is simulated with masks: every
// element overlapping the cleared rectangle gets a <mask> (stored in
// the surface <defs>) made of a white base rectangle and one black
// rectangle per clear.
//
// A Context is not safe for concurrent use.
package svgcanvas

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgcanvas/svgdom"
	"github.com/benoitkugler/svgcanvas/svgfont"
	"golang.org/x/net/html"
)

var (
	// ErrInvalidTarget is returned when creating a context
	// on a node which is not an <svg> element.
	ErrInvalidTarget = errors.New("invalid context target")

	// ErrUnexpectedContextType is returned by GetContext for
	// context types other than "svg".
	ErrUnexpectedContextType = errors.New("unexpected context type")

	// ErrMalformedTree is returned when a traversal meets a detached
	// node before returning to its starting point.
	ErrMalformedTree = errors.New("malformed scene graph")
)

// Context is a 2D drawing context bound to an <svg> element.
type Context struct {
	root   *html.Node
	defs   *html.Node
	oracle svgdom.Oracle

	resolve     ColorResolver
	fillStyle   string
	strokeStyle string
	font        string

	maskID int                   // next mask number, never reused
	masks  map[string]*html.Node // mask reference "url(#maskN)" -> <mask>
}

// GetContext returns a new drawing context for `root`. The only supported
// type is "svg", compared case insensitively.
func GetContext(root *html.Node, contextType string, opts ...Option) (*Context, error) {
	if !strings.EqualFold(contextType, "svg") {
		return nil, fmt.Errorf("%w %s", ErrUnexpectedContextType, contextType)
	}
	return NewContext(root, opts...)
}

// NewContext binds a drawing context to `root`, which must be an <svg>
// element. The first <defs> found under root stores the masks; if there is
// none, one is inserted as the first child of root.
func NewContext(root *html.Node, opts ...Option) (*Context, error) {
	if svgdom.KindOf(root) != svgdom.SVG {
		return nil, fmt.Errorf("%w: expected an <svg> element, got %s", ErrInvalidTarget, describe(root))
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &Context{
		root:    root,
		oracle:  svgdom.Oracle{Measurer: o.measurer},
		resolve: o.resolve,
		font:    svgfont.Default,
		masks:   make(map[string]*html.Node),
	}
	c.fillStyle = c.resolve(o.fillStyle)
	c.strokeStyle = c.resolve(o.strokeStyle)
	if o.font != "" {
		c.SetFont(o.font)
	}

	if defs := svgdom.ElementsByTag(root, "defs"); len(defs) != 0 {
		c.defs = defs[0]
	} else {
		c.defs = svgdom.CreateElement("defs")
		root.InsertBefore(c.defs, svgdom.FirstElementChild(root))
	}
	return c, nil
}

func describe(n *html.Node) string {
	switch {
	case n == nil:
		return "nil node"
	case n.Type != html.ElementNode:
		return "non element node"
	default:
		return "<" + n.Data + ">"
	}
}

// Root returns the surface element.
func (c *Context) Root() *html.Node { return c.root }

// Defs returns the definitions container holding the masks.
func (c *Context) Defs() *html.Node { return c.defs }

// Oracle returns the bounding box oracle used for hit-testing.
func (c *Context) Oracle() svgdom.Oracle { return c.oracle }

// SetFillStyle resolves `spec` to its canonical color.
func (c *Context) SetFillStyle(spec string) { c.fillStyle = c.resolve(spec) }

// FillStyle returns the canonical fill color.
func (c *Context) FillStyle() string { return c.fillStyle }

// SetStrokeStyle resolves `spec` to its canonical color.
func (c *Context) SetStrokeStyle(spec string) { c.strokeStyle = c.resolve(spec) }

// StrokeStyle returns the canonical stroke color.
func (c *Context) StrokeStyle() string { return c.strokeStyle }

// SetFont sets the CSS font used by text operations.
// Invalid descriptors are ignored, as canvas does.
func (c *Context) SetFont(desc string) {
	desc = strings.TrimSpace(desc)
	if _, err := svgfont.ParseFont(desc); err != nil {
		Logger().Debug("svgcanvas: font ignored", "error", err)
		return
	}
	c.font = desc
}

// Font returns the current font descriptor.
func (c *Context) Font() string { return c.font }

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func setGeometry(e *html.Node, r svgdom.Bounds) {
	svgdom.SetAttribute(e, "x", formatFloat(r.X))
	svgdom.SetAttribute(e, "y", formatFloat(r.Y))
	svgdom.SetAttribute(e, "width", formatFloat(r.W))
	svgdom.SetAttribute(e, "height", formatFloat(r.H))
}
