package builtins

import (
	"strings"

	"github.com/xinglu/js-lisp/internal/errors"
	"github.com/xinglu/js-lisp/internal/eval"
	"github.com/xinglu/js-lisp/internal/runtime"
)

func installInterop(env *runtime.Environment) {
	fn(env, "new", newFn)
	fn(env, "getfunc", getfuncFn)
	fn(env, "funcall", funcallFn)
	fn(env, "getkey", getkeyFn)
	fn(env, "setkey", setkeyFn)
	fn(env, "list", listFn)
	macro(env, "object", objectMacro)
}

// newFn invokes the host constructor protocol (§4.4): a fresh Object is
// handed to the constructor as this, and the constructor's return value
// is discarded (constructors initialize, they don't replace).
func newFn(env *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
	if err := requireMin("new", args, 1); err != nil {
		return nil, err
	}
	ctor, ok := args[0].(*runtime.Function)
	if !ok {
		return nil, errors.New("new: %s is not a constructor", runtime.ToDisplayString(args[0]))
	}
	instance := runtime.NewObject()
	if _, err := ctor.Call(env, instance, args[1:]); err != nil {
		return nil, err
	}
	return instance, nil
}

// getfuncFn returns the callable bound to a name. A macro is wrapped in
// a Function that treats its already-evaluated arguments as literal
// forms, which is what lets test harnesses invoke macros like ordinary
// functions (§4.4).
func getfuncFn(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
	if err := requireExact("getfunc", args, 1); err != nil {
		return nil, err
	}
	switch v := args[0].(type) {
	case *runtime.Function:
		return v, nil
	case *runtime.Macro:
		return &runtime.Function{
			Name: v.Name,
			Call: func(callEnv *runtime.Environment, _ runtime.Value, callArgs []runtime.Value) (runtime.Value, error) {
				return v.Call(callEnv, callArgs)
			},
		}, nil
	default:
		return nil, errors.New(errors.MsgNotAFunction, runtime.ToDisplayString(args[0]))
	}
}

// funcallFn implements (funcall obj dotpath args…): all but the last
// segment of dotpath are chased as property accesses starting at obj;
// the last segment must name a function, invoked with obj.<…> as
// receiver (§4.4).
func funcallFn(env *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
	if err := requireMin("funcall", args, 2); err != nil {
		return nil, err
	}
	path, ok := args[1].(*runtime.String)
	if !ok {
		return nil, errors.New("funcall: second argument must be a string path")
	}
	segments := strings.Split(path.Value, ".")

	receiver := args[0]
	for _, seg := range segments[:len(segments)-1] {
		v, err := runtime.GetProperty(receiver, seg)
		if err != nil {
			return nil, errors.AsLispError(err)
		}
		receiver = v
	}

	methodName := segments[len(segments)-1]
	method, err := runtime.GetProperty(receiver, methodName)
	if err != nil {
		return nil, errors.AsLispError(err)
	}
	callee, ok := method.(*runtime.Function)
	if !ok {
		return nil, errors.New(errors.MsgNotAFunction, methodName)
	}
	return callee.Call(env, receiver, args[2:])
}

// objectMacro constructs a mapping from alternating key/value forms. A
// key form is used as a value rather than resolved as a symbol
// (§4.4): a bare symbol key becomes a Keyword of its name instead of
// triggering a lookup, while any other key form is resolved normally
// (so keywords, strings, nested (object …) forms, etc. all work as
// keys directly).
func objectMacro(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
	if len(forms)%2 != 0 {
		return nil, errors.New("object: expected an even number of key/value forms")
	}
	obj := runtime.NewObject()
	for i := 0; i < len(forms); i += 2 {
		var key runtime.Value
		if sym, ok := forms[i].(*runtime.Symbol); ok {
			key = runtime.NewKeyword(sym.Name)
		} else {
			k, err := eval.Resolve(forms[i], env)
			if err != nil {
				return nil, err
			}
			key = k
		}
		value, err := eval.Resolve(forms[i+1], env)
		if err != nil {
			return nil, err
		}
		obj.Set(key, value)
	}
	return obj, nil
}

func getkeyFn(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
	if err := requireExact("getkey", args, 2); err != nil {
		return nil, err
	}
	obj, ok := args[1].(*runtime.Object)
	if !ok {
		return nil, errors.New(errors.MsgUnsubscriptable, "getkey", runtime.ToDisplayString(args[1]))
	}
	if v, found := obj.Get(args[0]); found {
		return v, nil
	}
	return runtime.UndefinedValue, nil
}

func setkeyFn(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
	if err := requireExact("setkey", args, 3); err != nil {
		return nil, err
	}
	obj, ok := args[1].(*runtime.Object)
	if !ok {
		return nil, errors.New(errors.MsgUnsubscriptable, "setkey", runtime.ToDisplayString(args[1]))
	}
	obj.Set(args[0], args[2])
	return args[2], nil
}

func listFn(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
	return runtime.NewList(args...), nil
}
