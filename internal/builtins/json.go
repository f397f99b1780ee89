package builtins

import (
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"github.com/xinglu/js-lisp/internal/errors"
	"github.com/xinglu/js-lisp/internal/runtime"
)

// installJSON wires to-json/from-json, the kernel's supplemented JSON
// interop (SPEC_FULL.md §4.4): to-json builds the document incrementally
// with sjson, from-json walks a parsed gjson.Result tree.
func installJSON(env *runtime.Environment) {
	fn(env, "to-json", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if err := requireExact("to-json", args, 1); err != nil {
			return nil, err
		}
		doc, err := toJSON(args[0])
		if err != nil {
			return nil, err
		}
		return runtime.NewString(doc), nil
	})
	fn(env, "from-json", func(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
		if err := requireExact("from-json", args, 1); err != nil {
			return nil, err
		}
		s, ok := args[0].(*runtime.String)
		if !ok {
			return nil, errors.New("from-json: argument must be a string")
		}
		if !gjson.Valid(s.Value) {
			return nil, errors.New("from-json: invalid JSON document")
		}
		return gjsonToValue(gjson.Parse(s.Value)), nil
	})
}

var sjsonPathEscaper = strings.NewReplacer(".", "\\.", "*", "\\*", "?", "\\?", ":", "\\:")

func toJSON(v runtime.Value) (string, error) {
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
			raw, err := toJSON(item)
			if err != nil {
				return "", err
			}
			doc, err = sjson.SetRaw(doc, strconv.Itoa(i), raw)
			if err != nil {
				return "", err
			}
		}
		return doc, nil
	case *runtime.Object:
		doc := "{}"
		for _, k := range val.Keys() {
			fieldValue, _ := val.Get(k)
			raw, err := toJSON(fieldValue)
			if err != nil {
				return "", err
			}
			path := sjsonPathEscaper.Replace(runtime.ToDisplayString(k))
			doc, err = sjson.SetRaw(doc, path, raw)
			if err != nil {
				return "", err
			}
		}
		return doc, nil
	default:
		return "", errors.New("to-json: unsupported value of type %s", runtime.TypeOf(v))
	}
}

func gjsonToValue(r gjson.Result) runtime.Value {
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
				items = append(items, gjsonToValue(v))
				return true
			})
			return runtime.NewList(items...)
		}
		obj := runtime.NewObject()
		r.ForEach(func(k, v gjson.Result) bool {
			obj.SetString(k.String(), gjsonToValue(v))
			return true
		})
		return obj
	default:
		return runtime.UndefinedValue
	}
}
