// Package eval implements the kernel's evaluator: resolving a form
// against an environment (§4.3).
package eval

import (
	"strings"

	"github.com/xinglu/js-lisp/internal/errors"
	"github.com/xinglu/js-lisp/internal/runtime"
)

// Resolve implements resolve(form, env) (§4.3): self-evaluating atoms
// pass through, symbols look up, and lists dispatch to a macro or
// function combiner.
func Resolve(form runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	switch f := form.(type) {
	case nil:
		return runtime.UndefinedValue, nil
	case *runtime.Symbol:
		v, err := env.Lookup(f.Name)
		if err != nil {
			return nil, errors.AsLispError(err)
		}
		return v, nil
	case *runtime.List:
		return resolveList(f, env)
	default:
		return form, nil
	}
}

func resolveList(list *runtime.List, env *runtime.Environment) (runtime.Value, error) {
	if list.Empty() {
		return runtime.NullValue, nil
	}

	head := list.Items[0]
	tail := list.Items[1:]

	combiner, receiver, err := resolveCombiner(head, env)
	if err != nil {
		return nil, err
	}

	switch c := combiner.(type) {
	case *runtime.Macro:
		return c.Call(env, tail)
	case *runtime.Function:
		args := make([]runtime.Value, len(tail))
		for i, t := range tail {
			v, err := Resolve(t, env)
			if err != nil {
				return nil, err
			}
			args[i] = v
		}
		return c.Call(env, receiver, args)
	default:
		return nil, errors.New(errors.MsgNotCallable, describeHead(head))
	}
}

// resolveCombiner implements §4.3b/e: a plain symbol head is looked up
// directly; a dotted symbol head ("obj.method") resolves the receiver
// and reads the combiner off it as a property (method-call syntax); any
// other head shape is resolved as an ordinary form, and its result is
// used as the combiner with no receiver.
func resolveCombiner(head runtime.Value, env *runtime.Environment) (combiner, receiver runtime.Value, err error) {
	receiver = runtime.UndefinedValue

	sym, isSymbol := head.(*runtime.Symbol)
	if !isSymbol {
		combiner, err = Resolve(head, env)
		return combiner, receiver, err
	}

	if dot := strings.LastIndexByte(sym.Name, '.'); dot >= 0 {
		objExpr, method := sym.Name[:dot], sym.Name[dot+1:]
		obj, lookupErr := env.Lookup(objExpr)
		if lookupErr != nil {
			return nil, receiver, errors.AsLispError(lookupErr)
		}
		prop, propErr := runtime.GetProperty(obj, method)
		if propErr != nil {
			return nil, receiver, errors.AsLispError(propErr)
		}
		return prop, obj, nil
	}

	v, lookupErr := env.Lookup(sym.Name)
	if lookupErr != nil {
		return nil, receiver, errors.AsLispError(lookupErr)
	}
	return v, receiver, nil
}

func describeHead(head runtime.Value) string {
	if head == nil {
		return "undefined"
	}
	return head.String()
}
