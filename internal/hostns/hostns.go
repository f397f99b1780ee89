// Package hostns builds the host namespace that every environment
// chain terminates in (§3, §4.2): a process-wide mapping seeded with a
// handful of JS-like globals (Math, Date, JSON), optionally extended by
// a YAML-described profile.
package hostns

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/xinglu/js-lisp/internal/runtime"
)

// Default returns a host namespace carrying the kernel's built-in
// globals: Math, Date, JSON, console (§2 item 6). Math and Date are
// built on the standard math/time packages because no library in the
// dependency set models a JS-style Date/Math object; JSON encodes and
// decodes with gjson/sjson.
func Default() *runtime.HostNamespace {
	host := runtime.NewHostNamespace()
	host.Set("Math", mathObject())
	host.Set("Date", dateConstructor())
	host.Set("JSON", jsonObject())
	host.Set("console", consoleObject())
	return host
}

func nativeFn(name string, call func(env *runtime.Environment, this runtime.Value, args []runtime.Value) (runtime.Value, error)) *runtime.Function {
	return &runtime.Function{Name: name, Call: call}
}

func numArg(args []runtime.Value, i int) float64 {
	if i >= len(args) {
		return math.NaN()
	}
	return runtime.ToNumber(args[i])
}

// mathObject mirrors the host's Math built-in (§9: "numeric constructors
// ... reachable without explicit binding").
func mathObject() *runtime.Object {
	m := runtime.NewObject()
	m.SetString("PI", runtime.NewNumber(math.Pi))
	m.SetString("E", runtime.NewNumber(math.E))
	m.SetString("sqrt", nativeFn("Math.sqrt", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		return runtime.NewNumber(math.Sqrt(numArg(args, 0))), nil
	}))
	m.SetString("floor", nativeFn("Math.floor", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		return runtime.NewNumber(math.Floor(numArg(args, 0))), nil
	}))
	m.SetString("ceil", nativeFn("Math.ceil", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		return runtime.NewNumber(math.Ceil(numArg(args, 0))), nil
	}))
	m.SetString("round", nativeFn("Math.round", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		return runtime.NewNumber(math.Round(numArg(args, 0))), nil
	}))
	m.SetString("abs", nativeFn("Math.abs", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		return runtime.NewNumber(math.Abs(numArg(args, 0))), nil
	}))
	m.SetString("pow", nativeFn("Math.pow", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		return runtime.NewNumber(math.Pow(numArg(args, 0), numArg(args, 1))), nil
	}))
	m.SetString("max", nativeFn("Math.max", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return runtime.NewNumber(math.Inf(-1)), nil
		}
		best := numArg(args, 0)
		for i := 1; i < len(args); i++ {
			best = math.Max(best, numArg(args, i))
		}
		return runtime.NewNumber(best), nil
	}))
	m.SetString("min", nativeFn("Math.min", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return runtime.NewNumber(math.Inf(1)), nil
		}
		best := numArg(args, 0)
		for i := 1; i < len(args); i++ {
			best = math.Min(best, numArg(args, i))
		}
		return runtime.NewNumber(best), nil
	}))
	return m
}

// jsonObject mirrors the host's JSON built-in (§2 item 6, §4.4):
// JSON.stringify/JSON.parse wrap the same gjson/sjson encode-decode
// pair the to-json/from-json builtins use, since they model the same
// host-level JSON surface.
func jsonObject() *runtime.Object {
	j := runtime.NewObject()
	j.SetString("stringify", nativeFn("JSON.stringify", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return runtime.NewString("null"), nil
		}
		doc, err := encodeJSON(args[0])
		if err != nil {
			return nil, err
		}
		return runtime.NewString(doc), nil
	}))
	j.SetString("parse", nativeFn("JSON.parse", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if len(args) == 0 {
			return nil, runtime.NewTypeError("JSON.parse: missing document argument")
		}
		s, ok := args[0].(*runtime.String)
		if !ok {
			return nil, runtime.NewTypeError("JSON.parse: argument must be a string")
		}
		if !gjson.Valid(s.Value) {
			return nil, runtime.NewTypeError("JSON.parse: invalid JSON document")
		}
		return decodeJSON(gjson.Parse(s.Value)), nil
	}))
	return j
}

var jsonPathEscaper = strings.NewReplacer(".", "\\.", "*", "\\*", "?", "\\?", ":", "\\:")

func encodeJSON(v runtime.Value) (string, error) {
	switch val := v.(type) {
	case nil, *runtime.Undefined, *runtime.Null:
		return "null", nil
	case *runtime.Boolean:
		if val.Value {
			return "true", nil
		}
		return "false", nil
	case *runtime.Number:
		return strconv.FormatFloat(val.Value, 'g', -1, 64), nil
	case *runtime.String:
		return strconv.Quote(val.Value), nil
	case *runtime.Keyword:
		return strconv.Quote(val.Name), nil
	case *runtime.List:
		doc := "[]"
		for i, item := range val.Items {
			raw, err := encodeJSON(item)
			if err != nil {
				return "", err
			}
			var err2 error
			doc, err2 = sjson.SetRaw(doc, strconv.Itoa(i), raw)
			if err2 != nil {
				return "", err2
			}
		}
		return doc, nil
	case *runtime.Object:
		doc := "{}"
		for _, k := range val.Keys() {
			fieldValue, _ := val.Get(k)
			raw, err := encodeJSON(fieldValue)
			if err != nil {
				return "", err
			}
			path := jsonPathEscaper.Replace(runtime.ToDisplayString(k))
			var err2 error
			doc, err2 = sjson.SetRaw(doc, path, raw)
			if err2 != nil {
				return "", err2
			}
		}
		return doc, nil
	default:
		return "", runtime.NewTypeError("JSON.stringify: unsupported value of type %s", runtime.TypeOf(v))
	}
}

func decodeJSON(r gjson.Result) runtime.Value {
	switch r.Type {
	case gjson.Null:
		return runtime.NullValue
	case gjson.False:
		return runtime.False
	case gjson.True:
		return runtime.True
	case gjson.Number:
		return runtime.NewNumber(r.Num)
	case gjson.String:
		return runtime.NewString(r.Str)
	case gjson.JSON:
		if r.IsArray() {
			var items []runtime.Value
			r.ForEach(func(_, v gjson.Result) bool {
				items = append(items, decodeJSON(v))
				return true
			})
			return runtime.NewList(items...)
		}
		obj := runtime.NewObject()
		r.ForEach(func(k, v gjson.Result) bool {
			obj.SetString(k.String(), decodeJSON(v))
			return true
		})
		return obj
	default:
		return runtime.UndefinedValue
	}
}

// consoleObject mirrors the host's console built-in (§2 item 6): log
// and warn write space-joined display forms to stdout/stderr. A real
// logging library would buy nothing here since the host surface is
// exactly "write this line somewhere", not structured log records.
func consoleObject() *runtime.Object {
	c := runtime.NewObject()
	c.SetString("log", nativeFn("console.log", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		fmt.Fprintln(os.Stdout, joinDisplay(args))
		return runtime.UndefinedValue, nil
	}))
	c.SetString("warn", nativeFn("console.warn", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		fmt.Fprintln(os.Stderr, joinDisplay(args))
		return runtime.UndefinedValue, nil
	}))
	c.SetString("error", nativeFn("console.error", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		fmt.Fprintln(os.Stderr, joinDisplay(args))
		return runtime.UndefinedValue, nil
	}))
	return c
}

func joinDisplay(args []runtime.Value) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = runtime.ToDisplayString(a)
	}
	return strings.Join(parts, " ")
}

// dateConstructor returns a Function usable with the new builtin: `(new
// Date)` yields an object carrying the current time and a getTime
// method, the combination the dotted-path "d.getTime" example in §9
// depends on.
func dateConstructor() *runtime.Function {
	return nativeFn("Date", func(_ *runtime.Environment, this runtime.Value, _ []runtime.Value) (runtime.Value, error) {
		obj, ok := this.(*runtime.Object)
		if !ok {
			obj = runtime.NewObject()
		}
		millis := float64(time.Now().UnixNano()) / 1e6
		obj.SetString("getTime", nativeFn("getTime", func(_ *runtime.Environment, _ runtime.Value, _ []runtime.Value) (runtime.Value, error) {
			return runtime.NewNumber(millis), nil
		}))
		return obj, nil
	})
}
