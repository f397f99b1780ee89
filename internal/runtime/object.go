package runtime

import "strings"

// objEntry is one key/value pair in an Object's backing store.
type objEntry struct {
	key   Value
	value Value
}

// Object is the kernel's unordered mapping. Keys may be any value kind
// (§3: "keys may be any value"), which rules out a native Go map —
// List, Object, and Function values are not comparable in Go. Entries
// are kept in an insertion-ordered slice instead and matched with
// StrictEqual; order is never semantically significant, only
// deterministic for iteration and printing.
type Object struct {
	entries []objEntry
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{}
}

func (o *Object) Tag() Tag { return TagObject }

func (o *Object) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, e := range o.entries {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(e.key.String())
		sb.WriteString(": ")
		sb.WriteString(e.value.String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// Get looks up key by StrictEqual, reporting whether it is present.
func (o *Object) Get(key Value) (Value, bool) {
	for _, e := range o.entries {
		if StrictEqual(e.key, key) {
			return e.value, true
		}
	}
	return nil, false
}

// Set inserts or overwrites the value under key.
func (o *Object) Set(key, value Value) {
	for i, e := range o.entries {
		if StrictEqual(e.key, key) {
			o.entries[i].value = value
			return
		}
	}
	o.entries = append(o.entries, objEntry{key: key, value: value})
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []Value {
	keys := make([]Value, len(o.entries))
	for i, e := range o.entries {
		keys[i] = e.key
	}
	return keys
}

// Len returns the number of entries.
func (o *Object) Len() int { return len(o.entries) }

// GetString looks up a string-keyed property, the shape used for
// dotted-path and funcall member access.
func (o *Object) GetString(name string) (Value, bool) {
	return o.Get(&String{Value: name})
}

// SetString inserts or overwrites a string-keyed property.
func (o *Object) SetString(name string, value Value) {
	o.Set(&String{Value: name}, value)
}
