// Package svgscript runs JavaScript against an SVG surface.
//
// Scripts see the surface element as the global `svg`, which provides
// getContext("svg") (a canvas-like rendering context), getIntersectionList
// and checkIntersection, as well as a small subset of the DOM
// element API.
package svgscript

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/svgcanvas/svgcanvas"
	"github.com/benoitkugler/svgcanvas/svgdom"
	"github.com/benoitkugler/svgcanvas/svgfont"
	"github.com/dop251/goja"
	"golang.org/x/net/html"
)

// Option configures an Engine.
type Option func(*Engine)

// WithMeasurer sets the text measurer used for bounding boxes,
// by scripts and by the contexts they create.
func WithMeasurer(m svgdom.Measurer) Option {
	return func(e *Engine) {
		e.oracle.Measurer = m
		e.ctxOpts = append(e.ctxOpts, svgcanvas.WithMeasurer(m))
	}
}

// WithContextOptions passes options to the context created by getContext.
func WithContextOptions(opts ...svgcanvas.Option) Option {
	return func(e *Engine) {
		e.ctxOpts = append(e.ctxOpts, opts...)
	}
}

// Engine executes JavaScript against an SVG surface.
type Engine struct {
	vm     *goja.Runtime
	root   *html.Node
	oracle svgdom.Oracle

	ctxOpts []svgcanvas.Option
	ctx     *svgcanvas.Context // created by the first getContext call
	ctxObj  goja.Value

	// same JS object for the same node, needed for === checks
	cache map[*html.Node]goja.Value
}

// New creates an engine with a fresh goja runtime, exposing `root`,
// which must be an <svg> element.
func New(root *html.Node, opts ...Option) (*Engine, error) {
	if svgdom.KindOf(root) != svgdom.SVG {
		return nil, fmt.Errorf("%w: script host needs an <svg> element", svgcanvas.ErrInvalidTarget)
	}
	e := &Engine{
		vm:     goja.New(),
		root:   root,
		oracle: svgdom.Oracle{Measurer: svgfont.DefaultMeasurer()},
		cache:  make(map[*html.Node]goja.Value),
	}
	for _, opt := range opts {
		opt(e)
	}

	registerConsole(e.vm)
	e.vm.Set("svg", e.elementProxy(root))
	return e, nil
}

// Run executes `src`; `name` identifies it in error messages.
func (e *Engine) Run(name, src string) error {
	if _, err := e.vm.RunScript(name, src); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}

// RunDocumentScripts executes the <script> elements of the surface
// in document order, stopping at the first error.
func (e *Engine) RunDocumentScripts() error {
	for i, script := range svgdom.ElementsByTag(e.root, "script") {
		if err := e.Run(fmt.Sprintf("script %d", i), svgdom.TextContent(script)); err != nil {
			return err
		}
	}
	return nil
}

// Context returns the rendering context created by scripts, or nil
// if getContext was never called.
func (e *Engine) Context() *svgcanvas.Context { return e.ctx }

// Value returns the global variable `name`, exported to Go.
func (e *Engine) Value(name string) interface{} {
	v := e.vm.Get(name)
	if v == nil {
		return nil
	}
	return v.Export()
}

func (e *Engine) getContext(contextType string) goja.Value {
	if e.ctx != nil && strings.EqualFold(contextType, "svg") {
		return e.ctxObj
	}
	ctx, err := svgcanvas.GetContext(e.root, contextType, e.ctxOpts...)
	if err != nil {
		panic(e.vm.NewGoError(err))
	}
	e.ctx = ctx
	e.ctxObj = e.vm.NewDynamicObject(&contextAccessor{e: e})
	return e.ctxObj
}
