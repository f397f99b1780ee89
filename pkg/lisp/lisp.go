// Package lisp is the kernel's embedding surface (SPEC_FULL.md §6):
// read source into forms, resolve forms against an environment, and
// register additional host built-ins.
package lisp

import (
	"github.com/xinglu/js-lisp/internal/builtins"
	"github.com/xinglu/js-lisp/internal/errors"
	"github.com/xinglu/js-lisp/internal/eval"
	"github.com/xinglu/js-lisp/internal/hostns"
	"github.com/xinglu/js-lisp/internal/reader"
	"github.com/xinglu/js-lisp/internal/runtime"
)

// Kernel bundles a root environment with the reader/evaluator entry
// points a host program needs to embed the language.
type Kernel struct {
	root *runtime.Environment
}

// Option configures a Kernel at construction time. An Option reports an
// error when the configuration it applies is itself invalid (a
// malformed host profile document, for instance), which New propagates
// to its caller instead of swallowing (§7: host errors are raised, not
// dropped).
type Option func(*Kernel) error

// WithHostProfile seeds the host namespace from a YAML profile document
// in addition to the kernel's built-in globals (Math, Date, …).
func WithHostProfile(doc []byte) Option {
	return func(k *Kernel) error {
		return hostns.LoadProfile(doc, k.root.Host())
	}
}

// New builds a Kernel with the standard library and default host
// namespace installed, applying opts in order and stopping at the
// first one that fails.
func New(opts ...Option) (*Kernel, error) {
	k := &Kernel{root: runtime.NewRootEnvironment(hostns.Default())}
	builtins.Install(k.root)
	for _, opt := range opts {
		if err := opt(k); err != nil {
			return nil, err
		}
	}
	return k, nil
}

// Read parses source text into its sequence of top-level forms (§4.1).
func (k *Kernel) Read(src string) ([]runtime.Value, error) {
	return reader.ReadAll(src)
}

// Resolve evaluates a form against env, or the kernel's root
// environment when env is nil (§4.3).
func (k *Kernel) Resolve(form runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	if env == nil {
		env = k.root
	}
	return eval.Resolve(form, env)
}

// RunSource reads and resolves every top-level form in src against the
// root environment, returning the value of the last one.
func (k *Kernel) RunSource(src string) (runtime.Value, error) {
	forms, err := k.Read(src)
	if err != nil {
		return nil, err
	}
	var result runtime.Value = runtime.NullValue
	for _, f := range forms {
		v, err := eval.Resolve(f, k.root)
		if err != nil {
			return nil, errors.AsLispError(err)
		}
		result = v
	}
	return result, nil
}

// RootEnv returns the kernel's root environment.
func (k *Kernel) RootEnv() *runtime.Environment { return k.root }

// RegisterFunction installs a native function under name, evaluated
// arguments and all, at the root environment.
func (k *Kernel) RegisterFunction(name string, call func(env *runtime.Environment, this runtime.Value, args []runtime.Value) (runtime.Value, error)) {
	k.root.Bind(name, &runtime.Function{Name: name, Call: call})
}

// RegisterMacro installs a native macro under name, unevaluated tail
// forms and all, at the root environment.
func (k *Kernel) RegisterMacro(name string, call func(env *runtime.Environment, forms []runtime.Value) (runtime.Value, error)) {
	k.root.Bind(name, &runtime.Macro{Name: name, Call: call})
}
