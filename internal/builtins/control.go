package builtins

import (
	"github.com/xinglu/js-lisp/internal/errors"
	"github.com/xinglu/js-lisp/internal/eval"
	"github.com/xinglu/js-lisp/internal/runtime"
)

func installControl(env *runtime.Environment) {
	macro(env, "if", ifMacro)
	macro(env, "when", whenMacro)
	macro(env, "try", tryMacro)
	fn(env, "throw", throwFn)
}

// ifMacro: test then else…. An absent else… evaluates to the null value
// (§9 Open Questions: unspecified by the test suite, assumed null).
func ifMacro(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
	if err := requireMin("if", forms, 2); err != nil {
		return nil, err
	}
	test, err := eval.Resolve(forms[0], env)
	if err != nil {
		return nil, err
	}
	if runtime.Truthy(test) {
		return eval.Resolve(forms[1], env)
	}
	return evalBody(forms[2:], env)
}

func whenMacro(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
	if err := requireMin("when", forms, 1); err != nil {
		return nil, err
	}
	test, err := eval.Resolve(forms[0], env)
	if err != nil {
		return nil, err
	}
	if !runtime.Truthy(test) {
		return runtime.NullValue, nil
	}
	return evalBody(forms[1:], env)
}

// tryMacro implements (try expr… (catch (e) handler…)): the trailing
// catch clause, if present, is detected by inspecting whether the last
// form is a list headed by the symbol "catch" (§9 Design Notes). Its
// parameter list is optional; an absent one binds nothing.
func tryMacro(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
	body := forms
	var catchClause *runtime.List

	if len(forms) > 0 {
		if last, ok := forms[len(forms)-1].(*runtime.List); ok && !last.Empty() {
			if head, ok := last.Items[0].(*runtime.Symbol); ok && head.Name == "catch" {
				catchClause = last
				body = forms[:len(forms)-1]
			}
		}
	}

	result, err := evalBody(body, env)
	if err == nil {
		return result, nil
	}
	if catchClause == nil {
		return nil, err
	}

	le := errors.AsLispError(err)
	rest := catchClause.Items[1:]
	var paramName string
	handlerBody := rest
	if len(rest) > 0 {
		if params, ok := rest[0].(*runtime.List); ok {
			handlerBody = rest[1:]
			if !params.Empty() {
				if sym, ok := params.Items[0].(*runtime.Symbol); ok {
					paramName = sym.Name
				}
			}
		}
	}

	frame := runtime.NewChildEnvironment(env)
	if paramName != "" {
		frame.Bind(paramName, le.Value())
	}
	return evalBody(handlerBody, frame)
}

func throwFn(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
	if err := requireExact("throw", args, 1); err != nil {
		return nil, err
	}
	return nil, errors.Thrown(args[0])
}
