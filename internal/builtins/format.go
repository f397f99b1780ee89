package builtins

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/xinglu/js-lisp/internal/errors"
	"github.com/xinglu/js-lisp/internal/runtime"
)

func installFormat(env *runtime.Environment) {
	fn(env, "join", joinFn)
	fn(env, "concat", concatFn)
	fn(env, "print", printFn)
	fn(env, "format", formatFn)
}

// joinFn flattens the elements of every list argument, in order, and
// joins their display form with sep between each (§4.4, §8 scenario 8).
func joinFn(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
	if err := requireMin("join", args, 2); err != nil {
		return nil, err
	}
	sep := runtime.ToDisplayString(args[0])

	var parts []string
	for i, a := range args[1:] {
		list, ok := a.(*runtime.List)
		if !ok {
			return nil, errors.New(errors.MsgExpectedList, "join", i+2)
		}
		for _, item := range list.Items {
			parts = append(parts, runtime.ToDisplayString(item))
		}
	}
	return runtime.NewString(strings.Join(parts, sep)), nil
}

func concatFn(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(runtime.ToDisplayString(a))
	}
	return runtime.NewString(sb.String()), nil
}

func printFn(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = runtime.ToDisplayString(a)
	}
	fmt.Fprintln(os.Stdout, strings.Join(parts, " "))
	return runtime.UndefinedValue, nil
}

// formatFn implements (format stream fmt args…): a printf-style
// formatter supporting %d/%s/%f/%x/%b, width/precision, and 1-based
// positional references %N$… (§4.4, §8 scenario 5). A null/undefined
// stream returns the formatted string; any other stream writes it to
// the host's standard output.
func formatFn(_ *runtime.Environment, _ runtime.Value, args []runtime.Value) (runtime.Value, error) {
	if err := requireMin("format", args, 2); err != nil {
		return nil, err
	}
	pattern, ok := args[1].(*runtime.String)
	if !ok {
		return nil, errors.New("format: second argument must be a string")
	}
	out, err := renderFormat(pattern.Value, args[2:])
	if err != nil {
		return nil, err
	}

	switch args[0].(type) {
	case *runtime.Null, *runtime.Undefined:
		return runtime.NewString(out), nil
	default:
		fmt.Fprint(os.Stdout, out)
		return runtime.UndefinedValue, nil
	}
}

func renderFormat(pattern string, args []runtime.Value) (string, error) {
	runes := []rune(pattern)
	var sb strings.Builder
	autoIdx := 0

	for i := 0; i < len(runes); {
		c := runes[i]
		if c != '%' {
			sb.WriteRune(c)
			i++
			continue
		}
		i++
		if i >= len(runes) {
			return "", errors.New("format: dangling %% at end of pattern")
		}
		if runes[i] == '%' {
			sb.WriteByte('%')
			i++
			continue
		}

		digitsStart := i
		for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
			i++
		}
		digits := string(runes[digitsStart:i])

		argIndex := -1
		if i < len(runes) && runes[i] == '$' && digits != "" {
			n, _ := strconv.Atoi(digits)
			argIndex = n - 1
			i++
		} else {
			i = digitsStart // digits were width, not a position; rewind and reparse
		}

		widthStart := i
		for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
			i++
		}
		width := string(runes[widthStart:i])

		precision := ""
		if i < len(runes) && runes[i] == '.' {
			i++
			precStart := i
			for i < len(runes) && runes[i] >= '0' && runes[i] <= '9' {
				i++
			}
			precision = string(runes[precStart:i])
		}

		if i >= len(runes) {
			return "", errors.New("format: missing verb in pattern")
		}
		verb := runes[i]
		i++

		var value runtime.Value
		if argIndex >= 0 {
			if argIndex >= len(args) {
				return "", errors.New("format: positional argument %d out of range", argIndex+1)
			}
			value = args[argIndex]
		} else {
			if autoIdx >= len(args) {
				return "", errors.New("format: not enough arguments for pattern")
			}
			value = args[autoIdx]
			autoIdx++
		}

		chunk, err := formatVerb(verb, width, precision, value)
		if err != nil {
			return "", err
		}
		sb.WriteString(chunk)
	}
	return sb.String(), nil
}

func formatVerb(verb rune, width, precision string, value runtime.Value) (string, error) {
	switch verb {
	case 'd':
		return pad(strconv.FormatInt(int64(runtime.ToNumber(value)), 10), width), nil
	case 's':
		return pad(runtime.ToDisplayString(value), width), nil
	case 'f':
		prec := 6
		if precision != "" {
			prec, _ = strconv.Atoi(precision)
		}
		return pad(strconv.FormatFloat(runtime.ToNumber(value), 'f', prec, 64), width), nil
	case 'x':
		return pad(strconv.FormatInt(int64(runtime.ToNumber(value)), 16), width), nil
	case 'b':
		return pad(strconv.FormatInt(int64(runtime.ToNumber(value)), 2), width), nil
	default:
		return "", errors.New("format: unsupported verb %%%c", verb)
	}
}

// pad right-aligns s to width, zero-padding when width carries a
// leading-zero flag (e.g. "01" in %01.2f means zero-pad to width 1).
func pad(s, width string) string {
	if width == "" {
		return s
	}
	zeroPad := false
	if len(width) > 1 && width[0] == '0' {
		zeroPad = true
		width = width[1:]
	}
	w, err := strconv.Atoi(width)
	if err != nil || len(s) >= w {
		return s
	}
	padChar := " "
	if zeroPad {
		padChar = "0"
	}
	return strings.Repeat(padChar, w-len(s)) + s
}
