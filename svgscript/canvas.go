package svgscript

import (
	"math"

	"github.com/dop251/goja"
)

// contextAccessor implements goja.DynamicObject for the
// rendering context returned by getContext.
type contextAccessor struct {
	e *Engine
}

var contextKeys = []string{
	"canvas", "fillStyle", "strokeStyle", "font",
	"fillRect", "strokeRect", "clearRect", "fillText", "strokeText",
}

// numbers converts n arguments, starting at `first`. Like canvas,
// operations with a non finite argument are silently ignored: ok is false.
func numbers(call goja.FunctionCall, first, n int) (out []float64, ok bool) {
	out = make([]float64, n)
	for i := range out {
		out[i] = call.Argument(first + i).ToFloat()
		if math.IsNaN(out[i]) || math.IsInf(out[i], 0) {
			return nil, false
		}
	}
	return out, true
}

// maxWidth reads the optional width constraint of text operations.
func maxWidth(call goja.FunctionCall) float64 {
	v := call.Argument(3)
	if goja.IsUndefined(v) {
		return 0
	}
	w := v.ToFloat()
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0
	}
	return w
}

func (a *contextAccessor) Get(key string) goja.Value {
	vm, ctx := a.e.vm, a.e.ctx

	switch key {
	case "canvas":
		return a.e.elementProxy(ctx.Root())
	case "fillStyle":
		return vm.ToValue(ctx.FillStyle())
	case "strokeStyle":
		return vm.ToValue(ctx.StrokeStyle())
	case "font":
		return vm.ToValue(ctx.Font())
	case "fillRect":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if v, ok := numbers(call, 0, 4); ok {
				ctx.FillRect(v[0], v[1], v[2], v[3])
			}
			return goja.Undefined()
		})
	case "strokeRect":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if v, ok := numbers(call, 0, 4); ok {
				ctx.StrokeRect(v[0], v[1], v[2], v[3])
			}
			return goja.Undefined()
		})
	case "clearRect":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if v, ok := numbers(call, 0, 4); ok {
				if err := ctx.ClearRect(v[0], v[1], v[2], v[3]); err != nil {
					panic(vm.NewGoError(err))
				}
			}
			return goja.Undefined()
		})
	case "fillText":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			text := call.Argument(0).String()
			if v, ok := numbers(call, 1, 2); ok {
				ctx.FillText(text, v[0], v[1], maxWidth(call))
			}
			return goja.Undefined()
		})
	case "strokeText":
		return vm.ToValue(func(call goja.FunctionCall) goja.Value {
			text := call.Argument(0).String()
			if v, ok := numbers(call, 1, 2); ok {
				ctx.StrokeText(text, v[0], v[1], maxWidth(call))
			}
			return goja.Undefined()
		})
	}
	return goja.Undefined()
}

func (a *contextAccessor) Set(key string, val goja.Value) bool {
	ctx := a.e.ctx
	switch key {
	case "fillStyle":
		ctx.SetFillStyle(val.String())
	case "strokeStyle":
		ctx.SetStrokeStyle(val.String())
	case "font":
		ctx.SetFont(val.String())
	default:
		return false
	}
	return true
}

func (a *contextAccessor) Has(key string) bool {
	for _, k := range contextKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (a *contextAccessor) Delete(key string) bool {
	return false
}

func (a *contextAccessor) Keys() []string {
	return contextKeys
}
