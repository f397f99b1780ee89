package builtins

import "testing"

// TestLooseVsStrictNumberStringComparison covers §8 scenario 6: (== 2
// "2") coerces and is true; (=== 2 "2") does not and is false.
func TestLooseVsStrictNumberStringComparison(t *testing.T) {
	env := newEnv(t)
	if !boolValue(run(t, env, `(== 2 "2")`)) {
		t.Fatal("expected (== 2 \"2\") to be true")
	}
	if boolValue(run(t, env, `(=== 2 "2")`)) {
		t.Fatal("expected (=== 2 \"2\") to be false")
	}
	if !boolValue(run(t, env, `(!== 2 "2")`)) {
		t.Fatal("expected (!== 2 \"2\") to be true")
	}
	if boolValue(run(t, env, `(!= 2 "2")`)) {
		t.Fatal("expected (!= 2 \"2\") to be false")
	}
}

func TestOrderingComparisons(t *testing.T) {
	env := newEnv(t)
	if !boolValue(run(t, env, `(< 1 2 3)`)) {
		t.Fatal("expected 1 < 2 < 3 to hold")
	}
	if boolValue(run(t, env, `(< 1 3 2)`)) {
		t.Fatal("expected 1 < 3 < 2 to fail")
	}
	if !boolValue(run(t, env, `(>= 3 3 2)`)) {
		t.Fatal("expected 3 >= 3 >= 2 to hold")
	}
}

func TestComparePairwiseShortCircuits(t *testing.T) {
	env := newEnv(t)
	run(t, env, `(setq touched false)`)
	run(t, env, `(< 5 1 (setq touched true))`)
	if touched := run(t, env, `touched`); boolValue(touched) {
		t.Fatal("expected the third comparison operand to never be evaluated after the pair already failed")
	}
}
