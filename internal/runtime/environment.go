package runtime

import "strings"

// HostNamespace is the terminal parent of every environment chain: a
// process-wide, mutable mapping that models the host's global object
// (§3, §9: "model the host namespace as a distinct parent kind, not
// another Env"). It is readable and writable but never itself pushed
// or popped like a lexical frame.
type HostNamespace struct {
	store map[string]Value
}

// NewHostNamespace returns an empty host namespace.
func NewHostNamespace() *HostNamespace {
	return &HostNamespace{store: make(map[string]Value)}
}

func (h *HostNamespace) Get(name string) (Value, bool) {
	v, ok := h.store[name]
	return v, ok
}

func (h *HostNamespace) Set(name string, v Value) {
	h.store[name] = v
}

func (h *HostNamespace) Has(name string) bool {
	_, ok := h.store[name]
	return ok
}

// Environment is one link in the lexical scope chain: a frame of
// name→value bindings plus a link to its parent. Every chain bottoms
// out at a root Environment whose outer is nil and whose host is the
// shared HostNamespace.
type Environment struct {
	vars  map[string]Value
	outer *Environment
	host  *HostNamespace
}

// NewRootEnvironment creates the top-level environment, terminated by
// host instead of another frame.
func NewRootEnvironment(host *HostNamespace) *Environment {
	if host == nil {
		host = NewHostNamespace()
	}
	return &Environment{vars: make(map[string]Value), host: host}
}

// NewChildEnvironment creates a frame lexically enclosed by outer, used
// by let, lambda entry, and defun entry.
func NewChildEnvironment(outer *Environment) *Environment {
	return &Environment{vars: make(map[string]Value), outer: outer}
}

// Bind inserts name into the current frame only, shadowing any outer
// binding for the frame's extent. Used by let and lambda parameter
// binding.
func (e *Environment) Bind(name string, value Value) {
	e.vars[name] = value
}

// Lookup resolves name against the chain, following dotted paths as
// chained property accesses (§4.2, §9). Returns the undefined value,
// never an error, when nothing is bound — presence is judged by
// ownership of the key, not by the value's truthiness.
func (e *Environment) Lookup(name string) (Value, error) {
	if head, rest, ok := splitDotted(name); ok {
		obj, _ := e.lookupPlain(head)
		return resolvePath(obj, rest)
	}
	v, _ := e.lookupPlain(name)
	return v, nil
}

// lookupPlain walks the frame chain (no dotted-path handling).
func (e *Environment) lookupPlain(name string) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
		if env.outer == nil {
			if v, ok := env.host.Get(name); ok {
				return v, true
			}
		}
	}
	return UndefinedValue, false
}

// Has reports whether name is bound anywhere in the chain (ownership,
// not truthiness).
func (e *Environment) Has(name string) bool {
	if head, rest, ok := splitDotted(name); ok {
		obj, ok2 := e.lookupPlain(head)
		if !ok2 {
			return false
		}
		_, err := resolvePath(obj, rest)
		return err == nil
	}
	_, ok := e.lookupPlain(name)
	return ok
}

// Assign implements setq semantics: a dotted name assigns a property
// on the resolved prefix object; otherwise the nearest existing binding
// in the chain is rewritten in place, and if none exists anywhere a new
// binding is created at the host namespace (§4.2, §9).
func (e *Environment) Assign(name string, value Value) error {
	if dot := strings.LastIndexByte(name, '.'); dot >= 0 {
		prefix, last := name[:dot], name[dot+1:]
		obj, err := e.Lookup(prefix)
		if err != nil {
			return err
		}
		return SetProperty(obj, last, value)
	}

	for env := e; env != nil; env = env.outer {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = value
			return nil
		}
		if env.outer == nil {
			env.host.Set(name, value)
			return nil
		}
	}
	// Unreachable: every chain bottoms out at a root with outer == nil.
	e.host.Set(name, value)
	return nil
}

// Outer returns the enclosing frame, or nil at the root.
func (e *Environment) Outer() *Environment { return e.outer }

// Host returns the terminal host namespace for this chain.
func (e *Environment) Host() *HostNamespace {
	env := e
	for env.outer != nil {
		env = env.outer
	}
	return env.host
}

// splitDotted splits "a.b.c" into head "a" and the remaining segments
// ["b", "c"]. Reports ok=false for a plain (dot-free) name.
func splitDotted(name string) (head string, rest []string, ok bool) {
	if !strings.Contains(name, ".") {
		return name, nil, false
	}
	parts := strings.Split(name, ".")
	return parts[0], parts[1:], true
}

// resolvePath chases a chain of property accesses off obj.
func resolvePath(obj Value, segments []string) (Value, error) {
	cur := obj
	for _, seg := range segments {
		v, err := GetProperty(cur, seg)
		if err != nil {
			return nil, err
		}
		cur = v
	}
	return cur, nil
}

// GetProperty reads a named property off obj: the entry under the
// string key, or failing that under the keyword of the same name (the
// key (object name …) builds). Only Object currently carries
// properties; anything else is unsubscriptable.
func GetProperty(obj Value, key string) (Value, error) {
	o, ok := obj.(*Object)
	if !ok {
		return nil, NewTypeError("cannot read property %q of %s", key, describeValue(obj))
	}
	v, found := o.GetString(key)
	if !found {
		v, found = o.Get(NewKeyword(key))
	}
	if !found {
		return UndefinedValue, nil
	}
	return v, nil
}

// SetProperty writes a string-keyed property on obj.
func SetProperty(obj Value, key string, value Value) error {
	o, ok := obj.(*Object)
	if !ok {
		return NewTypeError("cannot set property %q on %s", key, describeValue(obj))
	}
	o.SetString(key, value)
	return nil
}

func describeValue(v Value) string {
	if v == nil {
		return "undefined"
	}
	return v.Tag().String()
}
