package eval

import (
	"testing"

	"github.com/xinglu/js-lisp/internal/runtime"
)

func TestResolveSelfEvaluatingAtoms(t *testing.T) {
	env := runtime.NewRootEnvironment(nil)
	atoms := []runtime.Value{runtime.NewNumber(3), runtime.NewString("x"), runtime.True, runtime.NullValue}
	for _, a := range atoms {
		v, err := Resolve(a, env)
		if err != nil {
			t.Fatalf("unexpected error resolving %v: %v", a, err)
		}
		if v != a {
			t.Fatalf("expected atom to resolve to itself, got %v", v)
		}
	}
}

func TestResolveSymbolLookup(t *testing.T) {
	env := runtime.NewRootEnvironment(nil)
	env.Bind("x", runtime.NewNumber(5))

	v, err := Resolve(runtime.NewSymbol("x"), env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(*runtime.Number).Value != 5 {
		t.Fatalf("expected 5, got %v", v)
	}
}

func TestResolveUnboundSymbolIsUndefined(t *testing.T) {
	env := runtime.NewRootEnvironment(nil)
	v, err := Resolve(runtime.NewSymbol("nope"), env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != runtime.UndefinedValue {
		t.Fatalf("expected undefined, got %v", v)
	}
}

func TestResolveEmptyListIsNull(t *testing.T) {
	env := runtime.NewRootEnvironment(nil)
	v, err := Resolve(runtime.NewList(), env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != runtime.NullValue {
		t.Fatalf("expected null for an empty list, got %v", v)
	}
}

func TestResolveFunctionCallEvaluatesArgsLeftToRight(t *testing.T) {
	env := runtime.NewRootEnvironment(nil)
	var seen []float64
	env.Bind("probe", &runtime.Function{
		Name: "probe",
		Call: func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
			for _, a := range args {
				seen = append(seen, a.(*runtime.Number).Value)
			}
			return runtime.UndefinedValue, nil
		},
	})

	form := runtime.NewList(runtime.NewSymbol("probe"), runtime.NewNumber(1), runtime.NewNumber(2), runtime.NewNumber(3))
	if _, err := Resolve(form, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(seen) != 3 || seen[0] != 1 || seen[1] != 2 || seen[2] != 3 {
		t.Fatalf("expected args resolved left-to-right as [1 2 3], got %v", seen)
	}
}

func TestResolveMacroReceivesUnevaluatedForms(t *testing.T) {
	env := runtime.NewRootEnvironment(nil)
	var gotForm runtime.Value
	env.Bind("quoteish", &runtime.Macro{
		Name: "quoteish",
		Call: func(_ *runtime.Environment, forms []runtime.Value) (runtime.Value, error) {
			gotForm = forms[0]
			return runtime.UndefinedValue, nil
		},
	})

	// The argument is a symbol that is NOT bound; if the evaluator
	// resolved it before calling the macro, the macro would receive the
	// undefined value instead of the raw symbol form.
	form := runtime.NewList(runtime.NewSymbol("quoteish"), runtime.NewSymbol("unbound-name"))
	if _, err := Resolve(form, env); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sym, ok := gotForm.(*runtime.Symbol)
	if !ok || sym.Name != "unbound-name" {
		t.Fatalf("expected macro to receive the raw symbol form, got %v", gotForm)
	}
}

func TestResolveDottedHeadInvokesMethodWithReceiver(t *testing.T) {
	env := runtime.NewRootEnvironment(nil)
	obj := runtime.NewObject()
	var gotThis runtime.Value
	obj.SetString("assertEqual", &runtime.Function{
		Name: "assertEqual",
		Call: func(_ *runtime.Environment, this runtime.Value, args []runtime.Value) (runtime.Value, error) {
			gotThis = this
			return runtime.True, nil
		},
	})
	env.Bind("this", obj)

	form := runtime.NewList(runtime.NewSymbol("this.assertEqual"), runtime.NewNumber(1), runtime.NewNumber(1))
	v, err := Resolve(form, env)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != runtime.True {
		t.Fatalf("expected true, got %v", v)
	}
	if gotThis != runtime.Value(obj) {
		t.Fatalf("expected receiver to be the resolved object, got %v", gotThis)
	}
}

func TestResolveNotCallableHeadIsError(t *testing.T) {
	env := runtime.NewRootEnvironment(nil)
	env.Bind("x", runtime.NewNumber(5))

	form := runtime.NewList(runtime.NewSymbol("x"), runtime.NewNumber(1))
	if _, err := Resolve(form, env); err == nil {
		t.Fatal("expected an error calling a non-callable head")
	}
}
