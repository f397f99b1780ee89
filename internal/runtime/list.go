package runtime

import "strings"

// List is the reader's representation of "( … )": an ordered sequence
// of values. Lists are both the kernel's only compound literal and the
// shape of every combination the evaluator dispatches on, so the same
// type serves as data and as code.
type List struct {
	Items []Value
}

// NewList builds a List from the given items.
func NewList(items ...Value) *List {
	return &List{Items: items}
}

func (l *List) Tag() Tag { return TagList }

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, item := range l.Items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if item == nil {
			sb.WriteString("undefined")
		} else {
			sb.WriteString(item.String())
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// Empty reports whether the list has no elements.
func (l *List) Empty() bool { return l == nil || len(l.Items) == 0 }

// Head returns the first element, or the undefined value for an empty
// list.
func (l *List) Head() Value {
	if l.Empty() {
		return UndefinedValue
	}
	return l.Items[0]
}

// Tail returns every element after the first (nil for a one-element or
// empty list).
func (l *List) Tail() []Value {
	if l.Empty() || len(l.Items) < 2 {
		return nil
	}
	return l.Items[1:]
}
