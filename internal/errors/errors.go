package errors

import (
	"fmt"

	"github.com/xinglu/js-lisp/internal/runtime"
	"github.com/xinglu/js-lisp/internal/token"
)

// LispError is the single error type that unwinds through Resolve
// calls (§7): it carries a human-readable message, the source
// position when one is known (read errors), and the arbitrary value a
// `throw` or built-in raised so `catch` can bind it verbatim rather
// than just a string.
type LispError struct {
	Message string
	Pos     *token.Position
	Thrown  runtime.Value
}

func (e *LispError) Error() string {
	return e.Message
}

// Value returns the value a catch clause should bind: the thrown value
// if one was supplied, otherwise a String built from the message.
func (e *LispError) Value() runtime.Value {
	if e.Thrown != nil {
		return e.Thrown
	}
	return runtime.NewString(e.Message)
}

// New creates a plain message error (resolution/type/arity errors).
func New(format string, args ...interface{}) *LispError {
	return &LispError{Message: fmt.Sprintf(format, args...)}
}

// AtPosition creates a message error annotated with a source position
// (read errors).
func AtPosition(pos token.Position, format string, args ...interface{}) *LispError {
	p := pos
	return &LispError{Message: fmt.Sprintf(format, args...), Pos: &p}
}

// Thrown wraps a user-raised value (the throw builtin, or a built-in
// that raises a non-string value) so catch receives it unchanged.
func Thrown(v runtime.Value) *LispError {
	return &LispError{Message: describeThrown(v), Thrown: v}
}

func describeThrown(v runtime.Value) string {
	if v == nil {
		return "undefined"
	}
	return v.String()
}

// AsLispError unwraps err into a *LispError, wrapping any other error
// kind (e.g. a runtime.TypeError surfaced by a value helper) as a
// plain message error so every error the evaluator sees has a value to
// hand a catch clause.
func AsLispError(err error) *LispError {
	if err == nil {
		return nil
	}
	if le, ok := err.(*LispError); ok {
		return le
	}
	return New("%s", err.Error())
}
