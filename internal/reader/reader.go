// Package reader turns Lisp source text into a sequence of runtime
// values (§4.1): lists, symbols, keywords, strings, numbers, and the
// literals t/true/false/nil/null/undefined. It does not expand macros
// or resolve symbols — that is the evaluator's job.
package reader

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xinglu/js-lisp/internal/lexer"
	"github.com/xinglu/js-lisp/internal/runtime"
	"github.com/xinglu/js-lisp/internal/token"
)

// Error is a fatal read error: an unterminated string/list or a
// malformed token, reported with its source position (§4.1).
type Error struct {
	Message string
	Pos     token.Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("read error at %s: %s", e.Pos, e.Message)
}

// Reader consumes a lexer's token stream and yields top-level forms.
type Reader struct {
	lex  *lexer.Lexer
	cur  token.Token
	peek token.Token
}

// New creates a Reader over source text.
func New(src string) *Reader {
	r := &Reader{lex: lexer.New(src)}
	r.cur = r.lex.NextToken()
	r.peek = r.lex.NextToken()
	return r
}

func (r *Reader) advance() {
	r.cur = r.peek
	r.peek = r.lex.NextToken()
}

// ReadAll reads every top-level form in the source, in order.
func ReadAll(src string) ([]runtime.Value, error) {
	r := New(src)
	var forms []runtime.Value
	for {
		if r.cur.Type == token.EOF {
			if errs := r.lex.Errors(); len(errs) > 0 {
				return forms, &Error{Message: errs[0].Message, Pos: errs[0].Pos}
			}
			return forms, nil
		}
		form, err := r.readForm()
		if err != nil {
			return forms, err
		}
		forms = append(forms, form)
	}
}

// readForm reads and returns the next single form.
func (r *Reader) readForm() (runtime.Value, error) {
	switch r.cur.Type {
	case token.EOF:
		return nil, &Error{Message: "unexpected end of input", Pos: r.cur.Pos}
	case token.ILLEGAL:
		return nil, &Error{Message: "malformed token " + strconv.Quote(r.cur.Literal), Pos: r.cur.Pos}
	case token.LPAREN:
		return r.readList()
	case token.RPAREN:
		return nil, &Error{Message: "unexpected ')'", Pos: r.cur.Pos}
	case token.STRING:
		v := runtime.NewString(r.cur.Literal)
		r.advance()
		return v, nil
	case token.NUMBER:
		n, err := ParseNumber(r.cur.Literal)
		if err != nil {
			return nil, &Error{Message: err.Error(), Pos: r.cur.Pos}
		}
		v := runtime.NewNumber(n)
		r.advance()
		return v, nil
	case token.KEYWORD:
		v := runtime.NewKeyword(r.cur.Literal)
		r.advance()
		return v, nil
	case token.SYMBOL:
		v := symbolOrLiteral(r.cur.Literal)
		r.advance()
		return v, nil
	default:
		return nil, &Error{Message: "unexpected token " + r.cur.Type.String(), Pos: r.cur.Pos}
	}
}

func (r *Reader) readList() (runtime.Value, error) {
	startPos := r.cur.Pos
	r.advance() // skip '('

	var items []runtime.Value
	for r.cur.Type != token.RPAREN {
		if r.cur.Type == token.EOF {
			return nil, &Error{Message: "unterminated list", Pos: startPos}
		}
		item, err := r.readForm()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	r.advance() // skip ')'
	return &runtime.List{Items: items}, nil
}

// specialLiterals maps whole-token symbol spellings to their runtime
// value (§4.1).
var specialLiterals = map[string]runtime.Value{
	"t":         runtime.True,
	"true":      runtime.True,
	"false":     runtime.False,
	"nil":       runtime.NullValue,
	"null":      runtime.NullValue,
	"undefined": runtime.UndefinedValue,
}

func symbolOrLiteral(text string) runtime.Value {
	if v, ok := specialLiterals[text]; ok {
		return v
	}
	return runtime.NewSymbol(text)
}

// ParseNumber parses a token's literal text into a float64, applying
// the reader's number rules (§4.1): 0x… is hexadecimal; a leading 0
// followed only by octal digits (no '.', no exponent, no 8/9) is
// legacy octal; everything else is decimal, with optional fractional
// part and signed exponent.
func ParseNumber(text string) (float64, error) {
	sign := 1.0
	body := text
	if strings.HasPrefix(body, "+") {
		body = body[1:]
	} else if strings.HasPrefix(body, "-") {
		sign = -1
		body = body[1:]
	}

	if len(body) > 1 && (body[0:2] == "0x" || body[0:2] == "0X") {
		n, err := strconv.ParseInt(body[2:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid hexadecimal literal %q", text)
		}
		return sign * float64(n), nil
	}

	if isLegacyOctal(body) {
		n, err := strconv.ParseInt(body, 8, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid octal literal %q", text)
		}
		return sign * float64(n), nil
	}

	f, err := strconv.ParseFloat(body, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric literal %q", text)
	}
	return sign * f, nil
}

// isLegacyOctal reports whether body is a bare run of digits starting
// with '0', longer than one character, containing no fractional part,
// exponent, or non-octal digit — the one case the reader treats as
// octal instead of decimal.
func isLegacyOctal(body string) bool {
	if len(body) < 2 || body[0] != '0' {
		return false
	}
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c < '0' || c > '9' {
			return false
		}
		if c == '8' || c == '9' {
			return false
		}
	}
	return true
}
