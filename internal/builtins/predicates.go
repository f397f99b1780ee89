package builtins

import "github.com/xinglu/js-lisp/internal/runtime"

// installPredicates wires the is-* family: each requires every argument
// to match its predicate, short-circuiting on the first mismatch
// (§4.4).
func installPredicates(env *runtime.Environment) {
	predicateOp(env, "is-true", func(v runtime.Value) bool {
		b, ok := v.(*runtime.Boolean)
		return ok && b.Value
	})
	predicateOp(env, "is-false", func(v runtime.Value) bool {
		b, ok := v.(*runtime.Boolean)
		return ok && !b.Value
	})
	predicateOp(env, "is-null", func(v runtime.Value) bool {
		_, ok := v.(*runtime.Null)
		return ok
	})
	predicateOp(env, "is-undefined", func(v runtime.Value) bool {
		if v == nil {
			return true
		}
		_, ok := v.(*runtime.Undefined)
		return ok
	})
	predicateOp(env, "is-string", func(v runtime.Value) bool {
		_, ok := v.(*runtime.String)
		return ok
	})
	predicateOp(env, "is-number", func(v runtime.Value) bool {
		_, ok := v.(*runtime.Number)
		return ok
	})
	predicateOp(env, "is-boolean", func(v runtime.Value) bool {
		_, ok := v.(*runtime.Boolean)
		return ok
	})
	predicateOp(env, "is-function", func(v runtime.Value) bool {
		switch v.(type) {
		case *runtime.Function, *runtime.Macro:
			return true
		default:
			return false
		}
	})
	predicateOp(env, "is-object", func(v runtime.Value) bool {
		switch v.(type) {
		case *runtime.Object, *runtime.Null, *runtime.List:
			return true
		default:
			return false
		}
	})
}

func predicateOp(env *runtime.Environment, name string, pred func(v runtime.Value) bool) {
	macro(env, name, func(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
		ok, err := shortCircuit(env, forms, func(v runtime.Value) (decisive, result bool) {
			if !pred(v) {
				return true, false
			}
			return false, false
		}, true)
		return boolResult(ok), err
	})
}
