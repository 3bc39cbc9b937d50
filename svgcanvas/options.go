package svgcanvas

import (
	"github.com/benoitkugler/svgcanvas/svgcolor"
	"github.com/benoitkugler/svgcanvas/svgdom"
	"github.com/benoitkugler/svgcanvas/svgfont"
)

// ColorResolver maps a color specification to its canonical form.
// It must never fail, and resolving a canonical color must return it unchanged.
type ColorResolver func(spec string) string

// Option configures a Context during creation.
//
// Example:
//
//	ctx, err := svgcanvas.NewContext(root, svgcanvas.WithFillStyle("red"))
type Option func(*options)

type options struct {
	resolve     ColorResolver
	measurer    svgdom.Measurer
	font        string
	fillStyle   string
	strokeStyle string
}

func defaultOptions() options {
	return options{
		resolve:     svgcolor.Normalize,
		measurer:    svgfont.DefaultMeasurer(),
		fillStyle:   "black",
		strokeStyle: "black",
	}
}

// WithColorResolver replaces svgcolor.Normalize for style setters.
func WithColorResolver(resolve ColorResolver) Option {
	return func(o *options) {
		if resolve != nil {
			o.resolve = resolve
		}
	}
}

// WithMeasurer sets the text measurer used for text bounding boxes.
// A nil measurer gives text a zero width.
func WithMeasurer(m svgdom.Measurer) Option {
	return func(o *options) {
		o.measurer = m
	}
}

// WithFont sets the initial font, instead of svgfont.Default.
func WithFont(desc string) Option {
	return func(o *options) {
		o.font = desc
	}
}

// WithFillStyle sets the initial fill color, instead of black.
func WithFillStyle(spec string) Option {
	return func(o *options) {
		o.fillStyle = spec
	}
}

// WithStrokeStyle sets the initial stroke color, instead of black.
func WithStrokeStyle(spec string) Option {
	return func(o *options) {
		o.strokeStyle = spec
	}
}
