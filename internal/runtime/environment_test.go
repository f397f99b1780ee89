package runtime

import "testing"

func TestLookupFallsThroughToHost(t *testing.T) {
	host := NewHostNamespace()
	host.Set("greeting", NewString("hi"))
	root := NewRootEnvironment(host)
	child := NewChildEnvironment(root)

	v, err := child.Lookup("greeting")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, ok := v.(*String); !ok || s.Value != "hi" {
		t.Fatalf("expected host value to be visible from a child frame, got %v", v)
	}
}

func TestLookupUnboundNameIsUndefinedNotError(t *testing.T) {
	root := NewRootEnvironment(nil)
	v, err := root.Lookup("nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != UndefinedValue {
		t.Fatalf("expected UndefinedValue, got %v", v)
	}
}

// TestLetRestoresOuterBinding covers §8's let-block invariant: a binding
// introduced by let is visible only for the block's extent and does not
// leak into, or permanently overwrite, the enclosing frame.
func TestLetRestoresOuterBinding(t *testing.T) {
	root := NewRootEnvironment(nil)
	root.Bind("x", NewNumber(1))

	block := NewChildEnvironment(root)
	block.Bind("x", NewNumber(99))

	v, _ := block.Lookup("x")
	if v.(*Number).Value != 99 {
		t.Fatalf("expected shadowed x in block, got %v", v)
	}

	outer, _ := root.Lookup("x")
	if outer.(*Number).Value != 1 {
		t.Fatalf("expected outer x undisturbed by block binding, got %v", outer)
	}
}

// TestClosureSharesEnclosingBinding covers §8's closure-mutation
// invariant: a frame with no binding of its own for a name resolves and
// assigns through to the enclosing frame that does own it.
func TestClosureSharesEnclosingBinding(t *testing.T) {
	outer := NewRootEnvironment(nil)
	outer.Bind("x", NewNumber(5))

	closure := NewChildEnvironment(outer)
	if err := closure.Assign("x", NewNumber(6)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, _ := outer.Lookup("x")
	if v.(*Number).Value != 6 {
		t.Fatalf("expected enclosing x mutated to 6, got %v", v)
	}
}

// TestShadowedParamDoesNotMutateEnclosing covers §8's contrasting case: a
// frame that declares its own binding for x shadows the enclosing one,
// so assigning to it never touches the outer x.
func TestShadowedParamDoesNotMutateEnclosing(t *testing.T) {
	outer := NewRootEnvironment(nil)
	outer.Bind("x", NewNumber(5))

	frame := NewChildEnvironment(outer)
	frame.Bind("x", NewNumber(0))
	if err := frame.Assign("x", NewNumber(42)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	v, _ := outer.Lookup("x")
	if v.(*Number).Value != 5 {
		t.Fatalf("expected enclosing x undisturbed, got %v", v)
	}
}

func TestAssignUnboundNameCreatesHostBinding(t *testing.T) {
	host := NewHostNamespace()
	root := NewRootEnvironment(host)
	child := NewChildEnvironment(root)

	if err := child.Assign("newGlobal", NewNumber(7)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := host.Get("newGlobal")
	if !ok || v.(*Number).Value != 7 {
		t.Fatalf("expected newGlobal to land in the host namespace, got %v ok=%v", v, ok)
	}
}

func TestDottedLookupAndAssignWalkProperties(t *testing.T) {
	root := NewRootEnvironment(nil)
	obj := NewObject()
	obj.SetString("count", NewNumber(1))
	root.Bind("state", obj)

	v, err := root.Lookup("state.count")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.(*Number).Value != 1 {
		t.Fatalf("expected 1, got %v", v)
	}

	if err := root.Assign("state.count", NewNumber(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := obj.GetString("count")
	if got.(*Number).Value != 2 {
		t.Fatalf("expected state.count to be mutated to 2, got %v", got)
	}
}

func TestDottedLookupOnNonObjectIsError(t *testing.T) {
	root := NewRootEnvironment(nil)
	root.Bind("n", NewNumber(1))
	if _, err := root.Lookup("n.field"); err == nil {
		t.Fatal("expected an error resolving a property off a number")
	}
}
