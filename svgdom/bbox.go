package svgdom

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// DefaultFont is the font descriptor used for text without one.
const DefaultFont = "10px sans-serif"

// Bounds defines an axis-aligned box, such as a query rectangle
// or an element extent.
type Bounds struct{ X, Y, W, H float64 }

// Overlaps reports whether the open interiors of b and o intersect:
// boxes which only share an edge do not overlap.
func (b Bounds) Overlaps(o Bounds) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X &&
		b.Y < o.Y+o.H && b.Y+b.H > o.Y
}

// Union returns the smallest box containing b and o.
func (b Bounds) Union(o Bounds) Bounds {
	minX, minY := math.Min(b.X, o.X), math.Min(b.Y, o.Y)
	maxX, maxY := math.Max(b.X+b.W, o.X+o.W), math.Max(b.Y+b.H, o.Y+o.H)
	return Bounds{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// Measurer knows the metrics of a text run drawn with
// a CSS font descriptor such as "bold 12px serif".
type Measurer interface {
	MeasureText(text, font string) (advance, ascent, descent float64)
}

// Oracle computes element bounding boxes, in the user space
// of the element (its own transform is not applied, as for getBBox).
// A nil Measurer gives text elements a zero width.
type Oracle struct {
	Measurer Measurer
}

type bboxFunc func(o Oracle, n *html.Node) (Bounds, bool)

var bboxFuncs map[Kind]bboxFunc

func init() {
	// groupBBox recurses through the table
	bboxFuncs = map[Kind]bboxFunc{
		SVG:      groupBBox,
		Group:    groupBBox,
		Defs:     groupBBox,
		Mask:     groupBBox,
		Rect:     rectBBox,
		Image:    rectBBox,
		Use:      rectBBox,
		Circle:   circleBBox,
		Ellipse:  circleBBox,
		Line:     lineBBox,
		Polyline: pointsBBox,
		Polygon:  pointsBBox,
		Path:     pathBBox,
		Text:     textBBox,
	}
}

// BBox returns the bounding box of n. The boolean is false
// for elements without geometry (unknown or never painted kinds,
// empty groups, text nodes); such elements intersect nothing.
func (o Oracle) BBox(n *html.Node) (Bounds, bool) {
	fn, ok := bboxFuncs[KindOf(n)]
	if !ok {
		return Bounds{}, false
	}
	return fn(o, n)
}

// parseLength parses a user unit length, with an optional px suffix.
func parseLength(v string) (float64, error) {
	v = strings.TrimSuffix(strings.TrimSpace(v), "px")
	return strconv.ParseFloat(v, 64)
}

// lengthAttr returns the attribute `key` as a length, 0 if absent.
// Malformed values are read as 0, as browsers do.
func lengthAttr(n *html.Node, key string) float64 {
	v, ok := GetAttribute(n, key)
	if !ok {
		return 0
	}
	f, err := parseLength(v)
	if err != nil {
		Logger().Debug("svgdom: invalid length", "element", n.Data, "attribute", key, "value", v)
		return 0
	}
	return f
}

// firstLengthAttr reads the first value of a list attribute,
// as the x and y of text elements.
func firstLengthAttr(n *html.Node, key string) float64 {
	v, ok := GetAttribute(n, key)
	if !ok {
		return 0
	}
	fields := splitOnCommaOrSpace(v)
	if len(fields) == 0 {
		return 0
	}
	f, err := parseLength(fields[0])
	if err != nil {
		return 0
	}
	return f
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

func groupBBox(o Oracle, n *html.Node) (Bounds, bool) {
	var (
		out   Bounds
		found bool
	)
	for c := FirstElementChild(n); c != nil; c = NextElementSibling(c) {
		b, ok := o.BBox(c)
		if !ok {
			continue
		}
		if !found {
			out, found = b, true
		} else {
			out = out.Union(b)
		}
	}
	return out, found
}

func rectBBox(_ Oracle, n *html.Node) (Bounds, bool) {
	return Bounds{
		X: lengthAttr(n, "x"),
		Y: lengthAttr(n, "y"),
		W: math.Max(0, lengthAttr(n, "width")),
		H: math.Max(0, lengthAttr(n, "height")),
	}, true
}

func circleBBox(_ Oracle, n *html.Node) (Bounds, bool) {
	cx, cy := lengthAttr(n, "cx"), lengthAttr(n, "cy")
	var rx, ry float64
	if n.Data == "circle" {
		rx = lengthAttr(n, "r")
		ry = rx
	} else {
		rx, ry = lengthAttr(n, "rx"), lengthAttr(n, "ry")
	}
	rx, ry = math.Max(0, rx), math.Max(0, ry)
	return Bounds{X: cx - rx, Y: cy - ry, W: 2 * rx, H: 2 * ry}, true
}

func lineBBox(_ Oracle, n *html.Node) (Bounds, bool) {
	x1, y1 := lengthAttr(n, "x1"), lengthAttr(n, "y1")
	x2, y2 := lengthAttr(n, "x2"), lengthAttr(n, "y2")
	return Bounds{
		X: math.Min(x1, x2), Y: math.Min(y1, y2),
		W: math.Abs(x2 - x1), H: math.Abs(y2 - y1),
	}, true
}

func pointsBBox(_ Oracle, n *html.Node) (Bounds, bool) {
	v, _ := GetAttribute(n, "points")
	fields := splitOnCommaOrSpace(v)
	var e extent
	// an odd trailing coordinate is ignored
	for i := 0; i+1 < len(fields); i += 2 {
		x, errX := strconv.ParseFloat(fields[i], 64)
		y, errY := strconv.ParseFloat(fields[i+1], 64)
		if errX != nil || errY != nil {
			break
		}
		if i == 0 {
			e.moveTo(point{x, y})
		} else {
			e.lineTo(point{x, y})
		}
	}
	return e.bounds()
}

func pathBBox(_ Oracle, n *html.Node) (Bounds, bool) {
	d, _ := GetAttribute(n, "d")
	b, ok, err := pathExtent(d)
	if err != nil {
		Logger().Debug("svgdom: path data truncated", "error", err)
	}
	return b, ok
}

// textBBox places the text run on its baseline at (x, y).
// A positive textLength attribute overrides the measured advance.
func textBBox(o Oracle, n *html.Node) (Bounds, bool) {
	x, y := firstLengthAttr(n, "x"), firstLengthAttr(n, "y")
	font, ok := Presentation(n, "font")
	if !ok {
		font = DefaultFont
	}
	var advance, ascent, descent float64
	if o.Measurer != nil {
		advance, ascent, descent = o.Measurer.MeasureText(TextContent(n), font)
	}
	if tl := lengthAttr(n, "textLength"); tl > 0 {
		advance = tl
	}
	return Bounds{X: x, Y: y - ascent, W: advance, H: ascent + descent}, true
}
