package builtins

import "github.com/xinglu/js-lisp/internal/runtime"

// Install populates env with the kernel's full standard library (§4.4):
// binding/control forms, logical and comparison macros, type
// predicates, host interop, conversions, text formatting, arithmetic,
// and JSON interop. Call once against the root environment.
func Install(env *runtime.Environment) {
	installBinding(env)
	installControl(env)
	installLogic(env)
	installCompare(env)
	installPredicates(env)
	installInterop(env)
	installConversion(env)
	installFormat(env)
	installArithmetic(env)
	installJSON(env)
}
