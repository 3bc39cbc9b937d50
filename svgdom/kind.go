package svgdom

import "golang.org/x/net/html"

// Kind classifies SVG elements by tag.
type Kind uint8

const (
	Other Kind = iota // tag not handled by the bounding box oracle
	SVG
	Group
	Defs
	Mask
	Rect
	Circle
	Ellipse
	Line
	Polyline
	Polygon
	Path
	Text
	Image
	Use
	Meta // known element which is never painted (title, gradients, ...)
)

var kinds = map[string]Kind{
	"svg":      SVG,
	"g":        Group,
	"defs":     Defs,
	"mask":     Mask,
	"rect":     Rect,
	"circle":   Circle,
	"ellipse":  Ellipse,
	"line":     Line,
	"polyline": Polyline,
	"polygon":  Polygon,
	"path":     Path,
	"text":     Text,
	"image":    Image,
	"use":      Use,

	"title":          Meta,
	"desc":           Meta,
	"metadata":       Meta,
	"style":          Meta,
	"script":         Meta,
	"linearGradient": Meta,
	"radialGradient": Meta,
	"stop":           Meta,
	"clipPath":       Meta,
	"pattern":        Meta,
	"symbol":         Meta,
	"marker":         Meta,
	"filter":         Meta,
	"tspan":          Meta,
}

// KindOf returns the kind of the element n, or Other for
// non element nodes.
func KindOf(n *html.Node) Kind {
	if !IsElement(n) {
		return Other
	}
	return kinds[n.Data]
}

// Structural reports whether elements of this kind only hold
// bookkeeping content: they are never hit-tested nor searched.
func (k Kind) Structural() bool {
	return k == Group || k == Defs || k == Mask
}

func (k Kind) String() string {
	switch k {
	case SVG:
		return "SVG"
	case Group:
		return "Group"
	case Defs:
		return "Defs"
	case Mask:
		return "Mask"
	case Rect:
		return "Rect"
	case Circle:
		return "Circle"
	case Ellipse:
		return "Ellipse"
	case Line:
		return "Line"
	case Polyline:
		return "Polyline"
	case Polygon:
		return "Polygon"
	case Path:
		return "Path"
	case Text:
		return "Text"
	case Image:
		return "Image"
	case Use:
		return "Use"
	case Meta:
		return "Meta"
	default:
		return "Other"
	}
}
