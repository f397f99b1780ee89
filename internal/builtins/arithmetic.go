package builtins

import (
	"math"

	"github.com/xinglu/js-lisp/internal/runtime"
)

// installArithmetic wires +, -, *, /, %, 1+, following host numeric
// semantics: operands coerce via ToNumber and division always yields a
// float (§4.4).
func installArithmetic(env *runtime.Environment) {
	fn(env, "+", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		sum := 0.0
		for _, a := range args {
			sum += runtime.ToNumber(a)
		}
		return runtime.NewNumber(sum), nil
	})
	fn(env, "-", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if err := requireMin("-", args, 1); err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return runtime.NewNumber(-runtime.ToNumber(args[0])), nil
		}
		result := runtime.ToNumber(args[0])
		for _, a := range args[1:] {
			result -= runtime.ToNumber(a)
		}
		return runtime.NewNumber(result), nil
	})
	fn(env, "*", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		product := 1.0
		for _, a := range args {
			product *= runtime.ToNumber(a)
		}
		return runtime.NewNumber(product), nil
	})
	fn(env, "/", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if err := requireMin("/", args, 1); err != nil {
			return nil, err
		}
		if len(args) == 1 {
			return runtime.NewNumber(1 / runtime.ToNumber(args[0])), nil
		}
		result := runtime.ToNumber(args[0])
		for _, a := range args[1:] {
			result /= runtime.ToNumber(a)
		}
		return runtime.NewNumber(result), nil
	})
	fn(env, "%", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if err := requireMin("%", args, 2); err != nil {
			return nil, err
		}
		result := runtime.ToNumber(args[0])
		for _, a := range args[1:] {
			result = math.Mod(result, runtime.ToNumber(a))
		}
		return runtime.NewNumber(result), nil
	})
	fn(env, "1+", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if err := requireExact("1+", args, 1); err != nil {
			return nil, err
		}
		return runtime.NewNumber(runtime.ToNumber(args[0]) + 1), nil
	})
}
