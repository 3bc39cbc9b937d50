package svgscript

import (
	"strconv"

	"github.com/benoitkugler/svgcanvas/svgcanvas"
	"github.com/benoitkugler/svgcanvas/svgdom"
	"github.com/dop251/goja"
	"golang.org/x/net/html"
)

// elementArray creates a JS array of element proxies.
func (e *Engine) elementArray(nodes []*html.Node) goja.Value {
	arr := e.vm.NewArray()
	for i, n := range nodes {
		arr.Set(strconv.Itoa(i), e.elementProxy(n))
	}
	return arr
}

// elementProxy creates (or retrieves from cache) the JS object wrapping node.
func (e *Engine) elementProxy(node *html.Node) goja.Value {
	if node == nil {
		return goja.Null()
	}
	if v, ok := e.cache[node]; ok {
		return v
	}
	v := e.vm.NewDynamicObject(&elementAccessor{e: e, node: node})
	e.cache[node] = v
	return v
}

// unwrapNode returns the node wrapped by val, or nil.
func (e *Engine) unwrapNode(val goja.Value) *html.Node {
	if val == nil || goja.IsNull(val) || goja.IsUndefined(val) {
		return nil
	}
	obj := val.ToObject(e.vm)
	for node, cached := range e.cache {
		if cached.SameAs(obj) {
			return node
		}
	}
	return nil
}

// rectArg reads an {x, y, width, height} object; missing
// fields are zero.
func (e *Engine) rectArg(val goja.Value) svgdom.Bounds {
	if val == nil || goja.IsNull(val) || goja.IsUndefined(val) {
		panic(e.vm.NewTypeError("rectangle argument required"))
	}
	obj := val.ToObject(e.vm)
	field := func(key string) float64 {
		v := obj.Get(key)
		if v == nil || goja.IsUndefined(v) {
			return 0
		}
		return v.ToFloat()
	}
	return svgdom.Bounds{X: field("x"), Y: field("y"), W: field("width"), H: field("height")}
}

func (e *Engine) rectObject(b svgdom.Bounds) goja.Value {
	obj := e.vm.NewObject()
	obj.Set("x", b.X)
	obj.Set("y", b.Y)
	obj.Set("width", b.W)
	obj.Set("height", b.H)
	return obj
}

// elementAccessor implements goja.DynamicObject for SVG elements.
type elementAccessor struct {
	e    *Engine
	node *html.Node
}

var elementKeys = []string{
	"tagName", "nodeName", "id", "textContent",
	"getAttribute", "setAttribute", "hasAttribute", "removeAttribute",
	"parentElement", "firstElementChild", "nextElementSibling", "children",
	"getElementsByTagName", "getBBox",
}

// only on <svg> elements
var surfaceKeys = []string{
	"getContext", "getIntersectionList", "checkIntersection", "createSVGRect", "getElementById",
}

func (a *elementAccessor) isSurface() bool {
	return svgdom.KindOf(a.node) == svgdom.SVG
}

func (a *elementAccessor) Get(key string) goja.Value {
	vm, e, node := a.e.vm, a.e, a.node

	switch key {
	case "tagName", "nodeName":
		return vm.ToValue(node.Data)
	case "id":
		id, _ := svgdom.GetAttribute(node, "id")
		return vm.ToValue(id)
	case "textContent":
		return vm.ToValue(svgdom.TextContent(node))
	case "getAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			val, ok := svgdom.GetAttribute(node, call.Argument(0).String())
			if !ok {
				return goja.Null()
			}
			return vm.ToValue(val)
		})
	case "setAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) < 2 {
				panic(vm.NewTypeError("setAttribute: 2 arguments required"))
			}
			svgdom.SetAttribute(node, call.Arguments[0].String(), call.Arguments[1].String())
			return goja.Undefined()
		})
	case "hasAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			_, ok := svgdom.GetAttribute(node, call.Argument(0).String())
			return vm.ToValue(ok)
		})
	case "removeAttribute":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			svgdom.RemoveAttribute(node, call.Argument(0).String())
			return goja.Undefined()
		})
	case "parentElement":
		return e.elementProxy(svgdom.ParentElement(node))
	case "firstElementChild":
		return e.elementProxy(svgdom.FirstElementChild(node))
	case "nextElementSibling":
		return e.elementProxy(svgdom.NextElementSibling(node))
	case "children":
		var children []*html.Node
		for c := svgdom.FirstElementChild(node); c != nil; c = svgdom.NextElementSibling(c) {
			children = append(children, c)
		}
		return e.elementArray(children)
	case "getElementsByTagName":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return e.elementArray(svgdom.ElementsByTag(node, call.Argument(0).String()))
		})
	case "getBBox":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			b, _ := e.oracle.BBox(node)
			return e.rectObject(b)
		})
	}

	if !a.isSurface() {
		return goja.Undefined()
	}
	switch key {
	case "getContext":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return e.getContext(call.Argument(0).String())
		})
	case "getIntersectionList":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			r := e.rectArg(call.Argument(0))
			target := e.unwrapNode(call.Argument(1))
			if target == nil {
				target = node
			}
			nodes, err := svgcanvas.IntersectionList(e.oracle, r, target)
			if err != nil {
				panic(vm.NewGoError(err))
			}
			return e.elementArray(nodes)
		})
	case "checkIntersection":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			el := e.unwrapNode(call.Argument(0))
			if el == nil {
				panic(vm.NewTypeError("checkIntersection: element required"))
			}
			return vm.ToValue(svgcanvas.Intersects(e.oracle, el, e.rectArg(call.Argument(1))))
		})
	case "createSVGRect":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return e.rectObject(svgdom.Bounds{})
		})
	case "getElementById":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			return e.elementProxy(svgdom.ElementByID(node, call.Argument(0).String()))
		})
	}
	return goja.Undefined()
}

func (a *elementAccessor) Set(key string, val goja.Value) bool {
	if key == "id" {
		svgdom.SetAttribute(a.node, "id", val.String())
		return true
	}
	return false
}

func (a *elementAccessor) Has(key string) bool {
	for _, k := range a.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

func (a *elementAccessor) Delete(key string) bool {
	return false
}

func (a *elementAccessor) Keys() []string {
	if a.isSurface() {
		return append(append([]string(nil), elementKeys...), surfaceKeys...)
	}
	return elementKeys
}
