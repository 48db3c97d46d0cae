// Package object defines Erio's runtime values: the types evaluating an AST
// produces and consumes.
package object

import (
	"fmt"
	"strings"

	"erio/ast"
)

// Kind identifies a Value's runtime type.
type Kind string

const (
	IntegerKind  Kind = "integer"
	BooleanKind  Kind = "boolean"
	StringKind   Kind = "string"
	SequenceKind Kind = "sequence"
	FunctionKind Kind = "function"
)

// Value is implemented by every Erio runtime value.
type Value interface {
	Kind() Kind
	Inspect() string
}

// Integer is a signed 64-bit integer value.
type Integer struct {
	Value int64
}

func (i *Integer) Kind() Kind      { return IntegerKind }
func (i *Integer) Inspect() string { return fmt.Sprintf("%d", i.Value) }

// Boolean is the only value recognized by truthiness checks; no other Value
// is ever coerced to true.
type Boolean struct {
	Value bool
}

func (b *Boolean) Kind() Kind      { return BooleanKind }
func (b *Boolean) Inspect() string { return fmt.Sprintf("%t", b.Value) }

// String is an immutable text value.
type String struct {
	Value string
}

func (s *String) Kind() Kind      { return StringKind }
func (s *String) Inspect() string { return s.Value }

// Sequence is Erio's only mutable runtime value: an ordered, growable list
// of elements, shared by reference wherever it is passed or assigned.
type Sequence struct {
	Elements []Value
}

func (s *Sequence) Kind() Kind { return SequenceKind }
func (s *Sequence) Inspect() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, el := range s.Elements {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(el.Inspect())
	}
	sb.WriteString("]")
	return sb.String()
}

// PrimitiveFunc is the signature of a built-in function body: it receives
// only the call's freshly bound environment, exactly as a user-defined
// function body would, so primitives and user functions can be invoked
// uniformly by Function.
type PrimitiveFunc func(env *Environment) (Value, error)

// Function unifies user-defined and primitive functions behind one runtime
// type: the evaluator invokes either kind the same way, binding arguments
// into a fresh environment before running the body.
type Function struct {
	Name       string
	Parameters []*ast.Identifier

	// Body holds a user-defined function's statements (nil when the body is
	// empty); Primitive is non-nil only for a built-in.
	Body      []ast.Statement
	Env       *Environment
	Primitive PrimitiveFunc
}

func (f *Function) Kind() Kind { return FunctionKind }
func (f *Function) Inspect() string {
	if f.Name != "" {
		return "<function " + f.Name + ">"
	}
	return "<function>"
}

// IsPrimitive reports whether f wraps a built-in instead of a user-defined
// body.
func (f *Function) IsPrimitive() bool { return f.Primitive != nil }
