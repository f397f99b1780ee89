package builtins

import (
	"testing"

	"github.com/xinglu/js-lisp/internal/runtime"
)

func TestArithmeticOperators(t *testing.T) {
	env := newEnv(t)
	cases := []struct {
		src  string
		want float64
	}{
		{`(+ 1 2 3)`, 6},
		{`(+)`, 0},
		{`(- 10 3 2)`, 5},
		{`(- 5)`, -5},
		{`(* 2 3 4)`, 24},
		{`(*)`, 1},
		{`(/ 10 2)`, 5},
		{`(/ 4)`, 0.25},
		{`(% 7 3)`, 1},
		{`(1+ 4)`, 5},
	}
	for _, c := range cases {
		got := run(t, env, c.src)
		n, ok := got.(*runtime.Number)
		if !ok {
			t.Fatalf("%s: expected a number, got %v", c.src, got)
		}
		if n.Value != c.want {
			t.Errorf("%s: got %v, want %v", c.src, n.Value, c.want)
		}
	}
}
