package svgscript

import (
	"strings"

	"github.com/benoitkugler/svgcanvas/svgcanvas"
	"github.com/dop251/goja"
)

// registerConsole routes console.log, console.warn and console.error
// to the svgcanvas logger.
func registerConsole(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", func(call goja.FunctionCall) goja.Value {
		svgcanvas.Logger().Info(formatArgs(call.Arguments), "source", "script")
		return goja.Undefined()
	})
	console.Set("warn", func(call goja.FunctionCall) goja.Value {
		svgcanvas.Logger().Warn(formatArgs(call.Arguments), "source", "script")
		return goja.Undefined()
	})
	console.Set("error", func(call goja.FunctionCall) goja.Value {
		svgcanvas.Logger().Error(formatArgs(call.Arguments), "source", "script")
		return goja.Undefined()
	})
	vm.Set("console", console)
}

func formatArgs(args []goja.Value) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.String()
	}
	return strings.Join(parts, " ")
}
