package builtins

import (
	"testing"

	"github.com/xinglu/js-lisp/internal/runtime"
)

// TestOrShortCircuitsRemainingForms covers §8: (or ...) stops at the
// first truthy value and never resolves the forms after it — observed
// here through a setq side effect that must NOT happen.
func TestOrShortCircuitsRemainingForms(t *testing.T) {
	env := newEnv(t)
	run(t, env, `(setq touched false)`)
	v := run(t, env, `(or true (setq touched true))`)
	if !boolValue(v) {
		t.Fatalf("expected (or true ...) to be true, got %v", v)
	}
	if touched := run(t, env, `touched`); boolValue(touched) {
		t.Fatal("expected the second or-form to never be evaluated")
	}
}

func TestAndShortCircuitsRemainingForms(t *testing.T) {
	env := newEnv(t)
	run(t, env, `(setq touched false)`)
	v := run(t, env, `(and false (setq touched true))`)
	if boolValue(v) {
		t.Fatalf("expected (and false ...) to be false, got %v", v)
	}
	if touched := run(t, env, `touched`); boolValue(touched) {
		t.Fatal("expected the second and-form to never be evaluated")
	}
}

func TestNotNegatesTruthiness(t *testing.T) {
	env := newEnv(t)
	if !boolValue(run(t, env, `(not false)`)) {
		t.Fatal("expected (not false) to be true")
	}
	if boolValue(run(t, env, `(not 1)`)) {
		t.Fatal("expected (not 1) to be false")
	}
}

func TestEmptyAndOrIdentities(t *testing.T) {
	env := newEnv(t)
	if !boolValue(run(t, env, `(and)`)) {
		t.Fatal("expected (and) with no forms to be true")
	}
	if boolValue(run(t, env, `(or)`)) {
		t.Fatal("expected (or) with no forms to be false")
	}
}

func boolValue(v runtime.Value) bool {
	b, ok := v.(*runtime.Boolean)
	return ok && b.Value
}
