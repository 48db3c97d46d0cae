package object

import "erio/errors"

// Environment is a lexical scope: a frame of bindings with an optional
// parent frame. Lookups walk outward through the parent chain; writes
// always land in the current frame, so assigning a name already bound in an
// outer frame shadows it instead of mutating the outer binding.
type Environment struct {
	store  map[string]Value
	parent *Environment
}

// NewEnvironment creates a top-level environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{store: make(map[string]Value)}
}

// NewChildEnvironment creates an environment nested inside parent, used for
// function call frames: a function's body looks up free variables through
// parent, which is the environment where the function was defined, not the
// caller's environment.
func NewChildEnvironment(parent *Environment) *Environment {
	return &Environment{store: make(map[string]Value), parent: parent}
}

// Get resolves name by walking outward through the parent chain.
func (e *Environment) Get(name string) (Value, error) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.store[name]; ok {
			return v, nil
		}
	}
	return nil, errors.NewRuntimeError("name %q is not defined", name)
}

// Set binds name in this frame, shadowing any outer binding of the same
// name.
func (e *Environment) Set(name string, value Value) {
	e.store[name] = value
}
