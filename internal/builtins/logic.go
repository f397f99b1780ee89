package builtins

import "github.com/xinglu/js-lisp/internal/runtime"

func installLogic(env *runtime.Environment) {
	macro(env, "not", notMacro)
	macro(env, "and", andMacro)
	macro(env, "or", orMacro)
}

func notMacro(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
	if err := requireMin("not", forms, 1); err != nil {
		return nil, err
	}
	ok, err := shortCircuit(env, forms, func(v runtime.Value) (decisive, result bool) {
		if runtime.Truthy(v) {
			return true, false
		}
		return false, false
	}, true)
	return boolResult(ok), err
}

func andMacro(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
	if len(forms) == 0 {
		return runtime.True, nil
	}
	ok, err := shortCircuit(env, forms, func(v runtime.Value) (decisive, result bool) {
		if !runtime.Truthy(v) {
			return true, false
		}
		return false, false
	}, true)
	return boolResult(ok), err
}

func orMacro(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
	if len(forms) == 0 {
		return runtime.False, nil
	}
	ok, err := shortCircuit(env, forms, func(v runtime.Value) (decisive, result bool) {
		if runtime.Truthy(v) {
			return true, true
		}
		return false, false
	}, false)
	return boolResult(ok), err
}
