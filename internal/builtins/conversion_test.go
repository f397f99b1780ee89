package builtins

import (
	"testing"

	"github.com/xinglu/js-lisp/internal/runtime"
)

func TestToStringToNumberToBoolean(t *testing.T) {
	env := newEnv(t)
	if s := run(t, env, `(to-string 3)`).String(); s != "3" {
		t.Fatalf("expected \"3\", got %q", s)
	}
	if n := run(t, env, `(to-number "42")`).(*runtime.Number).Value; n != 42 {
		t.Fatalf("expected 42, got %v", n)
	}
	if b := run(t, env, `(to-boolean 0)`).(*runtime.Boolean).Value; b {
		t.Fatal("expected (to-boolean 0) to be false")
	}
}

func TestToUpperToLower(t *testing.T) {
	env := newEnv(t)
	if s := run(t, env, `(to-upper "mixedCase")`).String(); s != "MIXEDCASE" {
		t.Fatalf("expected MIXEDCASE, got %q", s)
	}
	if s := run(t, env, `(to-lower "MixedCASE")`).String(); s != "mixedcase" {
		t.Fatalf("expected mixedcase, got %q", s)
	}
}
