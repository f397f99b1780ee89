package builtins

import (
	"github.com/xinglu/js-lisp/internal/errors"
	"github.com/xinglu/js-lisp/internal/eval"
	"github.com/xinglu/js-lisp/internal/runtime"
)

// evalBody resolves forms in order against env and returns the value of
// the last one, or the null value for an empty body (progn/when/lambda
// all share this shape, §4.4).
func evalBody(forms []runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	var result runtime.Value = runtime.NullValue
	for _, f := range forms {
		v, err := eval.Resolve(f, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

func installBinding(env *runtime.Environment) {
	macro(env, "let", letMacro)
	macro(env, "setq", setqMacro)
	macro(env, "lambda", lambdaMacro)
	macro(env, "defun", defunMacro)
	macro(env, "progn", func(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
		return evalBody(forms, env)
	})
}

// letMacro implements (let ((name expr)…) body…): one fresh child frame
// is built first, and every init expression — including a `(lambda …)`
// bound directly in the binding list — is resolved against that frame,
// so a closure built there captures the let's own frame rather than the
// outer one (§8 scenario 1). The child frame is never reachable after
// the macro returns, restoring the outer frame on every exit path
// including error, since nothing retains a pointer to it.
func letMacro(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
	if err := requireMin("let", forms, 1); err != nil {
		return nil, err
	}
	bindings, ok := forms[0].(*runtime.List)
	if !ok {
		return nil, errors.New("let: first argument must be a binding list")
	}

	frame := runtime.NewChildEnvironment(env)
	names := make([]string, len(bindings.Items))
	inits := make([]runtime.Value, len(bindings.Items))
	for i, b := range bindings.Items {
		pair, ok := b.(*runtime.List)
		if !ok || pair.Empty() {
			return nil, errors.New("let: each binding must be (name expr)")
		}
		nameSym, ok := pair.Items[0].(*runtime.Symbol)
		if !ok {
			return nil, errors.New("let: binding name must be a symbol")
		}
		names[i] = nameSym.Name
		if len(pair.Items) > 1 {
			inits[i] = pair.Items[1]
		}
		frame.Bind(nameSym.Name, runtime.UndefinedValue)
	}
	for i, init := range inits {
		if init == nil {
			continue
		}
		v, err := eval.Resolve(init, frame)
		if err != nil {
			return nil, err
		}
		frame.Bind(names[i], v)
	}

	return evalBody(forms[1:], frame)
}

func setqMacro(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
	if err := requireExact("setq", forms, 2); err != nil {
		return nil, err
	}
	nameSym, ok := forms[0].(*runtime.Symbol)
	if !ok {
		return nil, errors.New("setq: first argument must be a symbol")
	}
	value, err := eval.Resolve(forms[1], env)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(nameSym.Name, value); err != nil {
		return nil, errors.AsLispError(err)
	}
	return value, nil
}

func lambdaMacro(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
	return buildLambda(env, forms, "")
}

func defunMacro(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
	if err := requireMin("defun", forms, 2); err != nil {
		return nil, err
	}
	nameSym, ok := forms[0].(*runtime.Symbol)
	if !ok {
		return nil, errors.New("defun: first argument must be a symbol")
	}
	fnValue, err := buildLambda(env, forms[1:], nameSym.Name)
	if err != nil {
		return nil, err
	}
	if err := env.Assign(nameSym.Name, fnValue); err != nil {
		return nil, errors.AsLispError(err)
	}
	return fnValue, nil
}

// buildLambda builds a Function from a (params…) body… form list,
// capturing env. defun reuses it so a defun'd function gets exactly
// lambda's fresh-child-frame-per-call discipline rather than a separate
// one (§9 Open Questions: match lambda exactly).
func buildLambda(env *runtime.Environment, forms []runtime.Value, name string) (*runtime.Function, error) {
	if len(forms) < 1 {
		return nil, errors.New("lambda: missing parameter list")
	}
	paramList, ok := forms[0].(*runtime.List)
	if !ok {
		return nil, errors.New("lambda: parameter list must be a list")
	}
	params := make([]string, len(paramList.Items))
	for i, p := range paramList.Items {
		sym, ok := p.(*runtime.Symbol)
		if !ok {
			return nil, errors.New("lambda: parameter %d is not a symbol", i)
		}
		params[i] = sym.Name
	}
	body := forms[1:]
	captured := env

	return &runtime.Function{
		Name: name,
		Call: func(_ *runtime.Environment, this runtime.Value, args []runtime.Value) (runtime.Value, error) {
			frame := runtime.NewChildEnvironment(captured)
			if this == nil {
				this = runtime.UndefinedValue
			}
			frame.Bind("this", this)
			for i, p := range params {
				if i < len(args) {
					frame.Bind(p, args[i])
				} else {
					frame.Bind(p, runtime.UndefinedValue)
				}
			}
			return evalBody(body, frame)
		},
	}, nil
}
