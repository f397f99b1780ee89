package builtins

import "github.com/xinglu/js-lisp/internal/runtime"

// installCompare wires the comparison macro family; all eight share the
// same pairwise short-circuit shape (§4.4, §9), differing only in how
// one pair of already-resolved values decides truth.
func installCompare(env *runtime.Environment) {
	compareOp(env, "==", func(a, b runtime.Value) bool { return runtime.LooseEqual(a, b) })
	compareOp(env, "===", func(a, b runtime.Value) bool { return runtime.StrictEqual(a, b) })
	compareOp(env, "!=", func(a, b runtime.Value) bool { return !runtime.LooseEqual(a, b) })
	compareOp(env, "!==", func(a, b runtime.Value) bool { return !runtime.StrictEqual(a, b) })
	compareOp(env, "<", func(a, b runtime.Value) bool { return runtime.Compare(a, b) < 0 })
	compareOp(env, ">", func(a, b runtime.Value) bool { return runtime.Compare(a, b) > 0 })
	compareOp(env, "<=", func(a, b runtime.Value) bool { return runtime.Compare(a, b) <= 0 })
	compareOp(env, ">=", func(a, b runtime.Value) bool { return runtime.Compare(a, b) >= 0 })
}

func compareOp(env *runtime.Environment, name string, cmp func(prev, cur runtime.Value) bool) {
	macro(env, name, func(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
		if err := requireMin(name, forms, 2); err != nil {
			return nil, err
		}
		ok, err := shortCircuitPairwise(env, forms, cmp)
		return boolResult(ok), err
	})
}
