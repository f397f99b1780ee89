package builtins

import "testing"

// TestFormatPositionalArguments covers §8 scenario 5: a format pattern
// with a positional reference renders "The tree contains 5 monkeys".
func TestFormatPositionalArguments(t *testing.T) {
	env := newEnv(t)
	v := run(t, env, `(format null "The %2$s contains %1$d monkeys" 5 "tree")`)
	if s := v.String(); s != "The tree contains 5 monkeys" {
		t.Fatalf("unexpected format output: %q", s)
	}
}

func TestFormatWidthAndPrecision(t *testing.T) {
	env := newEnv(t)
	v := run(t, env, `(format null "%01.2f" 3.14159)`)
	if s := v.String(); s != "3.14" {
		t.Fatalf("expected 3.14, got %q", s)
	}
}

func TestJoinSuccessAndError(t *testing.T) {
	env := newEnv(t)
	v := run(t, env, `(join ", " (list 1 2) (list 3))`)
	if s := v.String(); s != "1, 2, 3" {
		t.Fatalf("unexpected join output: %q", s)
	}

	if err := runErr(t, env, `(join ", " 1)`); err == nil {
		t.Fatal("expected an error when join is given a non-list argument")
	}
}

func TestConcatHasNoSeparator(t *testing.T) {
	env := newEnv(t)
	v := run(t, env, `(concat "a" "b" 1)`)
	if s := v.String(); s != "ab1" {
		t.Fatalf("unexpected concat output: %q", s)
	}
}
