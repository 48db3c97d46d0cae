package object

import (
	"erio/ast"
	"erio/errors"
)

// outSinkName is the environment key the output sink is bound under. A
// leading '.' is never produced by the identifier lexer, so user code can
// never shadow or reference it directly.
const outSinkName = ".out"

// OutputSink receives whatever the print builtin writes.
type OutputSink interface {
	WriteString(s string) (int, error)
}

// RegisterBuiltins binds Erio's primitive functions, plus the output sink,
// into env. Every primitive is an ordinary *Function value — the evaluator
// never special-cases them by name.
func RegisterBuiltins(env *Environment, out OutputSink) {
	env.Set(outSinkName, &sinkValue{out})

	def := func(name string, params []string, fn PrimitiveFunc) {
		env.Set(name, &Function{Name: name, Parameters: identParams(params), Primitive: fn, Env: env})
	}

	def("print", []string{"s"}, primitivePrint)
	def("add", []string{"lhs", "rhs"}, primitiveAdd)
	def("sub", []string{"lhs", "rhs"}, primitiveSub)
	def("lt", []string{"lhs", "rhs"}, primitiveLt)
	def("eq", []string{"lhs", "rhs"}, primitiveEq)
	def("geti", []string{"seq", "i"}, primitiveGeti)
	def("seti", []string{"seq", "i", "value"}, primitiveSeti)
	def("len", []string{"seq"}, primitiveLen)
	def("insert", []string{"seq", "i", "value"}, primitiveInsert)
}

// identParams builds placeholder parameter identifiers for a primitive so
// Function's shape matches a user-defined function's; primitives never
// consult the Token field, only the parameter count and Value names used by
// argument binding.
func identParams(names []string) []*ast.Identifier {
	params := make([]*ast.Identifier, len(names))
	for i, n := range names {
		params[i] = &ast.Identifier{Value: n}
	}
	return params
}

// sinkValue adapts an OutputSink to satisfy Value, so it can live in an
// Environment frame alongside ordinary runtime values.
type sinkValue struct {
	out OutputSink
}

func (s *sinkValue) Kind() Kind      { return "sink" }
func (s *sinkValue) Inspect() string { return "<output sink>" }

func primitivePrint(env *Environment) (Value, error) {
	s, err := env.Get("s")
	if err != nil {
		return nil, err
	}
	sinkV, err := env.Get(outSinkName)
	if err != nil {
		return nil, err
	}
	sink, ok := sinkV.(*sinkValue)
	if !ok {
		return nil, errors.NewRuntimeError("output sink is not bound")
	}
	var text string
	if b, ok := s.(*Boolean); ok {
		if b.Value {
			text = "true"
		} else {
			text = "false"
		}
	} else {
		text = s.Inspect()
	}
	if _, err := sink.out.WriteString(text); err != nil {
		return nil, err
	}
	return nil, nil
}

func primitiveAdd(env *Environment) (Value, error) {
	lhs, rhs, err := twoArgs(env, "lhs", "rhs")
	if err != nil {
		return nil, err
	}
	if l, ok := lhs.(*Integer); ok {
		r, ok := rhs.(*Integer)
		if !ok {
			return nil, errors.NewRuntimeError("add: type mismatch")
		}
		return &Integer{Value: l.Value + r.Value}, nil
	}
	if l, ok := lhs.(*String); ok {
		r, ok := rhs.(*String)
		if !ok {
			return nil, errors.NewRuntimeError("add: type mismatch")
		}
		return &String{Value: l.Value + r.Value}, nil
	}
	return nil, errors.NewRuntimeError("add: type mismatch")
}

func primitiveSub(env *Environment) (Value, error) {
	lhs, rhs, err := twoArgs(env, "lhs", "rhs")
	if err != nil {
		return nil, err
	}
	l, ok := lhs.(*Integer)
	if !ok {
		return nil, errors.NewRuntimeError("sub: type mismatch")
	}
	r, ok := rhs.(*Integer)
	if !ok {
		return nil, errors.NewRuntimeError("sub: type mismatch")
	}
	return &Integer{Value: l.Value - r.Value}, nil
}

func primitiveLt(env *Environment) (Value, error) {
	lhs, rhs, err := twoArgs(env, "lhs", "rhs")
	if err != nil {
		return nil, err
	}
	if l, ok := lhs.(*Integer); ok {
		r, ok := rhs.(*Integer)
		if !ok {
			return nil, errors.NewRuntimeError("lt: type mismatch")
		}
		return &Boolean{Value: l.Value < r.Value}, nil
	}
	if l, ok := lhs.(*String); ok {
		r, ok := rhs.(*String)
		if !ok {
			return nil, errors.NewRuntimeError("lt: type mismatch")
		}
		return &Boolean{Value: l.Value < r.Value}, nil
	}
	return nil, errors.NewRuntimeError("lt: type mismatch")
}

func primitiveEq(env *Environment) (Value, error) {
	lhs, rhs, err := twoArgs(env, "lhs", "rhs")
	if err != nil {
		return nil, err
	}
	return &Boolean{Value: valuesEqual(lhs, rhs)}, nil
}

// valuesEqual implements Erio's permissive cross-kind equality: matching
// kinds compare by value, differing kinds are simply unequal.
func valuesEqual(lhs, rhs Value) bool {
	switch l := lhs.(type) {
	case *Integer:
		r, ok := rhs.(*Integer)
		return ok && l.Value == r.Value
	case *Boolean:
		r, ok := rhs.(*Boolean)
		return ok && l.Value == r.Value
	case *String:
		r, ok := rhs.(*String)
		return ok && l.Value == r.Value
	default:
		return false
	}
}

func primitiveGeti(env *Environment) (Value, error) {
	seq, i, err := sequenceAndIndex(env)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(seq.Elements) {
		return nil, errors.NewRuntimeError("geti: index %d out of range", i)
	}
	return seq.Elements[i], nil
}

func primitiveSeti(env *Environment) (Value, error) {
	seq, i, err := sequenceAndIndex(env)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= len(seq.Elements) {
		return nil, errors.NewRuntimeError("seti: index %d out of range", i)
	}
	value, err := env.Get("value")
	if err != nil {
		return nil, err
	}
	seq.Elements[i] = value
	return nil, nil
}

func primitiveLen(env *Environment) (Value, error) {
	v, err := env.Get("seq")
	if err != nil {
		return nil, err
	}
	switch s := v.(type) {
	case *Sequence:
		return &Integer{Value: int64(len(s.Elements))}, nil
	case *String:
		return &Integer{Value: int64(len([]rune(s.Value)))}, nil
	default:
		return nil, errors.NewRuntimeError("len: expected a sequence or string")
	}
}

func primitiveInsert(env *Environment) (Value, error) {
	seq, i, err := sequenceAndIndex(env)
	if err != nil {
		return nil, err
	}
	if i < 0 || i > len(seq.Elements) {
		return nil, errors.NewRuntimeError("insert: index %d out of range", i)
	}
	value, err := env.Get("value")
	if err != nil {
		return nil, err
	}
	seq.Elements = append(seq.Elements, nil)
	copy(seq.Elements[i+1:], seq.Elements[i:])
	seq.Elements[i] = value
	return nil, nil
}

func twoArgs(env *Environment, a, b string) (Value, Value, error) {
	lhs, err := env.Get(a)
	if err != nil {
		return nil, nil, err
	}
	rhs, err := env.Get(b)
	if err != nil {
		return nil, nil, err
	}
	return lhs, rhs, nil
}

func sequenceAndIndex(env *Environment) (*Sequence, int, error) {
	seqV, err := env.Get("seq")
	if err != nil {
		return nil, 0, err
	}
	seq, ok := seqV.(*Sequence)
	if !ok {
		return nil, 0, errors.NewRuntimeError("expected a sequence")
	}
	iV, err := env.Get("i")
	if err != nil {
		return nil, 0, err
	}
	i, ok := iV.(*Integer)
	if !ok {
		return nil, 0, errors.NewRuntimeError("expected an integer index")
	}
	return seq, int(i.Value), nil
}
