package builtins

import (
	"github.com/xinglu/js-lisp/internal/errors"
	"github.com/xinglu/js-lisp/internal/runtime"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

func installConversion(env *runtime.Environment) {
	fn(env, "to-string", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if err := requireExact("to-string", args, 1); err != nil {
			return nil, err
		}
		return runtime.NewString(runtime.ToDisplayString(args[0])), nil
	})
	fn(env, "to-number", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if err := requireExact("to-number", args, 1); err != nil {
			return nil, err
		}
		return runtime.NewNumber(runtime.ToNumber(args[0])), nil
	})
	fn(env, "to-boolean", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if err := requireExact("to-boolean", args, 1); err != nil {
			return nil, err
		}
		return runtime.Bool(runtime.ToBoolean(args[0])), nil
	})
	fn(env, "to-upper", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		s, err := stringArg("to-upper", args)
		if err != nil {
			return nil, err
		}
		return runtime.NewString(upperCaser.String(s)), nil
	})
	fn(env, "to-lower", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		s, err := stringArg("to-lower", args)
		if err != nil {
			return nil, err
		}
		return runtime.NewString(lowerCaser.String(s)), nil
	})
	fn(env, "typeof", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if err := requireExact("typeof", args, 1); err != nil {
			return nil, err
		}
		return runtime.NewString(runtime.TypeOf(args[0])), nil
	})
}

func stringArg(name string, args []runtime.Value) (string, error) {
	if err := requireExact(name, args, 1); err != nil {
		return "", err
	}
	s, ok := args[0].(*runtime.String)
	if !ok {
		return "", errors.New("%s: argument must be a string", name)
	}
	return s.Value, nil
}
