package runtime

import "strings"

// StrictEqual implements === (and the key-equality the object/getkey/
// setkey family relies on): no coercion between kinds. Number, String,
// Boolean compare by value; Null, Undefined compare by kind; Symbol and
// Keyword compare by name. List, Object, Function, and Macro are
// reference-compared, following whatever identity choice the host
// offers for compound values (§9 Open Questions).
func StrictEqual(a, b Value) bool {
	if a == nil || b == nil {
		return isNullish(a) && isNullish(b)
	}
	switch av := a.(type) {
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *String:
		bv, ok := b.(*String)
		return ok && av.Value == bv.Value
	case *Boolean:
		bv, ok := b.(*Boolean)
		return ok && av.Value == bv.Value
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *Undefined:
		_, ok := b.(*Undefined)
		return ok
	case *Symbol:
		bv, ok := b.(*Symbol)
		return ok && av.Name == bv.Name
	case *Keyword:
		bv, ok := b.(*Keyword)
		return ok && av.Name == bv.Name
	case *List:
		bv, ok := b.(*List)
		return ok && av == bv
	case *Object:
		bv, ok := b.(*Object)
		return ok && av == bv
	case *Function:
		bv, ok := b.(*Function)
		return ok && av == bv
	case *Macro:
		bv, ok := b.(*Macro)
		return ok && av == bv
	default:
		return a == b
	}
}

func isNullish(v Value) bool {
	if v == nil {
		return true
	}
	switch v.(type) {
	case *Null, *Undefined:
		return true
	default:
		return false
	}
}

// LooseEqual implements == (and !=' negation): StrictEqual, plus the
// host's coercions — numeric string vs number comparison (§8 scenario
//6: (== 2 "2") is true), keyword vs string comparison by name (§3),
// and null/undefined considered mutually loose-equal.
func LooseEqual(a, b Value) bool {
	if StrictEqual(a, b) {
		return true
	}
	if isNullish(a) && isNullish(b) {
		return true
	}
	if isNullish(a) || isNullish(b) {
		return false
	}

	switch av := a.(type) {
	case *Number:
		if bs, ok := b.(*String); ok {
			return av.Value == ParseLooseNumber(bs.Value)
		}
		if bb, ok := b.(*Boolean); ok {
			return av.Value == ToNumber(bb)
		}
	case *String:
		if bn, ok := b.(*Number); ok {
			return ParseLooseNumber(av.Value) == bn.Value
		}
		if bk, ok := b.(*Keyword); ok {
			return av.Value == bk.Name
		}
		if bb, ok := b.(*Boolean); ok {
			return ParseLooseNumber(av.Value) == ToNumber(bb)
		}
	case *Keyword:
		if bs, ok := b.(*String); ok {
			return av.Name == bs.Value
		}
	case *Boolean:
		if bn, ok := b.(*Number); ok {
			return ToNumber(av) == bn.Value
		}
		if bs, ok := b.(*String); ok {
			return ToNumber(av) == ParseLooseNumber(bs.Value)
		}
	}
	return false
}

// Compare orders a and b for </>/<=/>=. Two numbers compare
// numerically; anything else (including mixed number/string pairs)
// compares the to-string form lexically, matching the host's
// "ordering may coerce strings" allowance (§4.4).
func Compare(a, b Value) int {
	an, aIsNum := a.(*Number)
	bn, bIsNum := b.(*Number)
	if aIsNum && bIsNum {
		switch {
		case an.Value < bn.Value:
			return -1
		case an.Value > bn.Value:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(ToDisplayString(a), ToDisplayString(b))
}
