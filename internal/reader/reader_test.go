package reader

import (
	"testing"

	"github.com/xinglu/js-lisp/internal/runtime"
)

func TestReadAllBasicForm(t *testing.T) {
	forms, err := ReadAll(`(setq x 3) (+ x 1)`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(forms) != 2 {
		t.Fatalf("expected 2 top-level forms, got %d", len(forms))
	}
	list, ok := forms[0].(*runtime.List)
	if !ok || len(list.Items) != 3 {
		t.Fatalf("expected a 3-element list, got %v", forms[0])
	}
}

func TestReadSpecialLiterals(t *testing.T) {
	forms, err := ReadAll(`t true false nil null undefined`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []runtime.Value{runtime.True, runtime.True, runtime.False, runtime.NullValue, runtime.NullValue, runtime.UndefinedValue}
	for i, w := range want {
		if forms[i] != w {
			t.Fatalf("form[%d]: expected %v, got %v", i, w, forms[i])
		}
	}
}

// TestStringRoundTrip verifies §8: a literal newline inside a quoted
// string equals the \n escape.
func TestStringRoundTrip(t *testing.T) {
	forms, err := ReadAll("\"a\nstring\" \"a\\nstring\"")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := forms[0].(*runtime.String).Value
	b := forms[1].(*runtime.String).Value
	if a != b {
		t.Fatalf("expected literal and escaped newline strings to be equal, got %q vs %q", a, b)
	}
}

func TestParseNumberScenarios(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"0100", 64},
		{"0x40", 64},
		{"3.45e2", 345},
		{"089", 89},
		{"-5", -5},
	}
	for _, tt := range tests {
		got, err := ParseNumber(tt.text)
		if err != nil {
			t.Fatalf("ParseNumber(%q): unexpected error: %v", tt.text, err)
		}
		if got != tt.want {
			t.Fatalf("ParseNumber(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestUnterminatedListIsFatal(t *testing.T) {
	_, err := ReadAll(`(setq x 3`)
	if err == nil {
		t.Fatal("expected an error for an unterminated list")
	}
}

func TestKeywordReads(t *testing.T) {
	forms, err := ReadAll(`:tag`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	kw, ok := forms[0].(*runtime.Keyword)
	if !ok || kw.Name != "tag" {
		t.Fatalf("expected keyword :tag, got %v", forms[0])
	}
}
