// Package builtins installs the kernel's standard library of macros and
// functions (§4.4) into an environment.
package builtins

import (
	"github.com/xinglu/js-lisp/internal/errors"
	"github.com/xinglu/js-lisp/internal/eval"
	"github.com/xinglu/js-lisp/internal/runtime"
)

// requireMin returns an arity error unless len(args) >= n.
func requireMin(name string, args []runtime.Value, n int) error {
	if len(args) < n {
		return errors.New(errors.MsgWrongArgCountMin, name, n, len(args))
	}
	return nil
}

// requireExact returns an arity error unless len(args) == n.
func requireExact(name string, args []runtime.Value, n int) error {
	if len(args) != n {
		return errors.New(errors.MsgWrongArgCountExact, name, n, len(args))
	}
	return nil
}

// fn registers a native function builtin.
func fn(env *runtime.Environment, name string, call func(env *runtime.Environment, this runtime.Value, args []runtime.Value) (runtime.Value, error)) {
	env.Bind(name, &runtime.Function{Name: name, Call: call})
}

// macro registers a native macro builtin.
func macro(env *runtime.Environment, name string, call func(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error)) {
	env.Bind(name, &runtime.Macro{Name: name, Call: call})
}

// shortCircuit resolves forms left to right against env, calling
// decide on each resolved value. The moment decide reports a decisive
// outcome, resolution stops — later forms are never evaluated, which is
// what makes short-circuiting observable (§4.4, §8). If every form is
// exhausted without a decisive call, final is returned instead.
func shortCircuit(env *runtime.Environment, forms []runtime.Value, decide func(v runtime.Value) (decisive bool, result bool), final bool) (bool, error) {
	for _, f := range forms {
		v, err := eval.Resolve(f, env)
		if err != nil {
			return false, err
		}
		if stop, result := decide(v); stop {
			return result, nil
		}
	}
	return final, nil
}

// shortCircuitPairwise resolves forms left to right, comparing each
// value against the previous one with cmp. It stops at the first
// failing pair without resolving the remaining forms.
func shortCircuitPairwise(env *runtime.Environment, forms []runtime.Value, cmp func(prev, cur runtime.Value) bool) (bool, error) {
	prev, err := eval.Resolve(forms[0], env)
	if err != nil {
		return false, err
	}
	for _, f := range forms[1:] {
		cur, err := eval.Resolve(f, env)
		if err != nil {
			return false, err
		}
		if !cmp(prev, cur) {
			return false, nil
		}
		prev = cur
	}
	return true, nil
}

func boolResult(b bool) runtime.Value { return runtime.Bool(b) }
