// Package evaluator tree-walks an AST, executing statements for their
// effect on an Environment and an output sink, and producing runtime
// Values from expressions.
package evaluator

import (
	"strconv"

	"erio/ast"
	"erio/errors"
	"erio/object"
	"erio/token"
)

// Execute runs block against env in order, returning the first non-nil
// value yielded by a Return statement, propagated up through any enclosing
// if/while blocks. A nil Value with a nil error means the block ran to
// completion without returning.
func Execute(env *object.Environment, block []ast.Statement) (object.Value, error) {
	for _, stmt := range block {
		ret, err := execStatement(env, stmt)
		if err != nil {
			return nil, err
		}
		if ret != nil {
			return ret, nil
		}
	}
	return nil, nil
}

func execStatement(env *object.Environment, stmt ast.Statement) (object.Value, error) {
	switch s := stmt.(type) {
	case *ast.IfStatement:
		return execIf(env, s)
	case *ast.WhileStatement:
		return execWhile(env, s)
	case *ast.ReturnStatement:
		return evalExpression(env, s.Value)
	case *ast.AssignmentStatement:
		return nil, execAssignment(env, s)
	case *ast.FunctionDefStatement:
		return nil, execFunctionDef(env, s)
	case *ast.ExpressionStatement:
		_, err := evalExpression(env, s.Expression)
		return nil, err
	default:
		return nil, errors.NewRuntimeError("unhandled statement type %T", stmt)
	}
}

func execIf(env *object.Environment, s *ast.IfStatement) (object.Value, error) {
	cond, err := evalExpression(env, s.Condition)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return Execute(env, s.Then)
	}
	return Execute(env, s.Else)
}

func execWhile(env *object.Environment, s *ast.WhileStatement) (object.Value, error) {
	for {
		cond, err := evalExpression(env, s.Condition)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return nil, nil
		}
		ret, err := Execute(env, s.Body)
		if err != nil {
			return nil, err
		}
		if ret != nil {
			return ret, nil
		}
	}
}

func execAssignment(env *object.Environment, s *ast.AssignmentStatement) error {
	value, err := evalExpression(env, s.Value)
	if err != nil {
		return err
	}
	env.Set(s.Name.Value, value)
	return nil
}

func execFunctionDef(env *object.Environment, s *ast.FunctionDefStatement) error {
	fn := &object.Function{
		Name:       s.Name.Value,
		Parameters: s.Parameters,
		Body:       s.Body,
		Env:        env,
	}
	env.Set(s.Name.Value, fn)
	return nil
}

// isTruthy implements Erio's strict truthiness: only Boolean(true) is
// truthy. Every other kind — including Integer(0) and the empty String —
// is falsy.
func isTruthy(v object.Value) bool {
	b, ok := v.(*object.Boolean)
	return ok && b.Value
}

func evalExpression(env *object.Environment, expr ast.Expression) (object.Value, error) {
	switch e := expr.(type) {
	case *ast.Constant:
		return evalConstant(e)
	case *ast.Identifier:
		return env.Get(e.Value)
	case *ast.SequenceLiteral:
		return evalSequenceLiteral(env, e)
	case *ast.OrExpression:
		return evalOr(env, e)
	case *ast.AndExpression:
		return evalAnd(env, e)
	case *ast.NotExpression:
		return evalNot(env, e)
	case *ast.CompExpression:
		return evalComp(env, e)
	case *ast.AddExpression:
		return evalAdd(env, e)
	case *ast.MulExpression:
		return evalMul(env, e)
	case *ast.SignExpression:
		return evalSign(env, e)
	case *ast.CallExpression:
		return evalCall(env, e)
	default:
		return nil, errors.NewRuntimeError("unhandled expression type %T", expr)
	}
}

// evalConstant materializes a runtime value from a literal token, deferred
// to evaluation time rather than parse time.
func evalConstant(e *ast.Constant) (object.Value, error) {
	switch e.Token.Kind {
	case token.Integer:
		n, err := strconv.ParseInt(e.Token.Lexeme, 10, 64)
		if err != nil {
			return nil, errors.NewRuntimeError("invalid integer literal %q", e.Token.Lexeme)
		}
		return &object.Integer{Value: n}, nil
	case token.Boolean:
		return &object.Boolean{Value: e.Token.Lexeme == "true"}, nil
	case token.String:
		// Lexeme includes both surrounding quotes.
		s := e.Token.Lexeme
		return &object.String{Value: s[1 : len(s)-1]}, nil
	default:
		return nil, errors.NewRuntimeError("invalid constant token %s", e.Token)
	}
}

func evalSequenceLiteral(env *object.Environment, e *ast.SequenceLiteral) (object.Value, error) {
	elements := make([]object.Value, len(e.Elements))
	for i, el := range e.Elements {
		v, err := evalExpression(env, el)
		if err != nil {
			return nil, err
		}
		elements[i] = v
	}
	return &object.Sequence{Elements: elements}, nil
}

// evalOr short-circuits: it returns whichever operand is truthy without
// evaluating the other side, or Boolean(false) if neither is. The returned
// value is the winning operand itself, not necessarily a Boolean.
func evalOr(env *object.Environment, e *ast.OrExpression) (object.Value, error) {
	lhs, err := evalExpression(env, e.Left)
	if err != nil {
		return nil, err
	}
	if isTruthy(lhs) {
		return lhs, nil
	}
	rhs, err := evalExpression(env, e.Right)
	if err != nil {
		return nil, err
	}
	if isTruthy(rhs) {
		return rhs, nil
	}
	return &object.Boolean{Value: false}, nil
}

// evalAnd short-circuits: a falsy left operand skips evaluating the right
// side entirely and yields Boolean(false); otherwise a truthy right operand
// is returned as the result, and a falsy one yields Boolean(false).
func evalAnd(env *object.Environment, e *ast.AndExpression) (object.Value, error) {
	lhs, err := evalExpression(env, e.Left)
	if err != nil {
		return nil, err
	}
	if !isTruthy(lhs) {
		return &object.Boolean{Value: false}, nil
	}
	rhs, err := evalExpression(env, e.Right)
	if err != nil {
		return nil, err
	}
	if !isTruthy(rhs) {
		return &object.Boolean{Value: false}, nil
	}
	return rhs, nil
}

func evalNot(env *object.Environment, e *ast.NotExpression) (object.Value, error) {
	v, err := evalExpression(env, e.Operand)
	if err != nil {
		return nil, err
	}
	return &object.Boolean{Value: !isTruthy(v)}, nil
}

// evalComp implements Erio's permissive cross-kind comparisons: ordering
// (</>/<=/>=) works on Integer-Integer and String-String pairs; equality
// (==/!=) works on any pair, comparing false across differing kinds rather
// than erroring.
func evalComp(env *object.Environment, e *ast.CompExpression) (object.Value, error) {
	lhs, err := evalExpression(env, e.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := evalExpression(env, e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator {
	case token.Eq:
		return &object.Boolean{Value: valuesEqual(lhs, rhs)}, nil
	case token.NotEq:
		return &object.Boolean{Value: !valuesEqual(lhs, rhs)}, nil
	}

	if l, ok := lhs.(*object.Integer); ok {
		r, ok := rhs.(*object.Integer)
		if !ok {
			return nil, errors.NewRuntimeError("comparison: type mismatch")
		}
		return &object.Boolean{Value: intCompare(e.Operator, l.Value, r.Value)}, nil
	}
	if l, ok := lhs.(*object.String); ok {
		r, ok := rhs.(*object.String)
		if !ok {
			return nil, errors.NewRuntimeError("comparison: type mismatch")
		}
		return &object.Boolean{Value: stringCompare(e.Operator, l.Value, r.Value)}, nil
	}
	return nil, errors.NewRuntimeError("comparison: type mismatch")
}

func intCompare(op token.Kind, l, r int64) bool {
	switch op {
	case token.Gt:
		return l > r
	case token.Lt:
		return l < r
	case token.Gte:
		return l >= r
	case token.Lte:
		return l <= r
	default:
		return false
	}
}

func stringCompare(op token.Kind, l, r string) bool {
	switch op {
	case token.Gt:
		return l > r
	case token.Lt:
		return l < r
	case token.Gte:
		return l >= r
	case token.Lte:
		return l <= r
	default:
		return false
	}
}

// valuesEqual mirrors object's cross-kind equality; duplicated here (rather
// than exported from object) so the evaluator's comparison semantics are
// self-contained and don't depend on builtin internals.
func valuesEqual(lhs, rhs object.Value) bool {
	switch l := lhs.(type) {
	case *object.Integer:
		r, ok := rhs.(*object.Integer)
		return ok && l.Value == r.Value
	case *object.Boolean:
		r, ok := rhs.(*object.Boolean)
		return ok && l.Value == r.Value
	case *object.String:
		r, ok := rhs.(*object.String)
		return ok && l.Value == r.Value
	default:
		return false
	}
}

func evalAdd(env *object.Environment, e *ast.AddExpression) (object.Value, error) {
	lhs, err := evalExpression(env, e.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := evalExpression(env, e.Right)
	if err != nil {
		return nil, err
	}

	if e.Operator == token.Add {
		if l, ok := lhs.(*object.String); ok {
			r, ok := rhs.(*object.String)
			if !ok {
				return nil, errors.NewRuntimeError("add: type mismatch")
			}
			return &object.String{Value: l.Value + r.Value}, nil
		}
	}

	l, ok := lhs.(*object.Integer)
	if !ok {
		return nil, errors.NewRuntimeError("arithmetic: type mismatch")
	}
	r, ok := rhs.(*object.Integer)
	if !ok {
		return nil, errors.NewRuntimeError("arithmetic: type mismatch")
	}
	if e.Operator == token.Add {
		return &object.Integer{Value: l.Value + r.Value}, nil
	}
	return &object.Integer{Value: l.Value - r.Value}, nil
}

func evalMul(env *object.Environment, e *ast.MulExpression) (object.Value, error) {
	lhs, err := evalExpression(env, e.Left)
	if err != nil {
		return nil, err
	}
	rhs, err := evalExpression(env, e.Right)
	if err != nil {
		return nil, err
	}
	l, ok := lhs.(*object.Integer)
	if !ok {
		return nil, errors.NewRuntimeError("arithmetic: type mismatch")
	}
	r, ok := rhs.(*object.Integer)
	if !ok {
		return nil, errors.NewRuntimeError("arithmetic: type mismatch")
	}
	switch e.Operator {
	case token.Mul:
		return &object.Integer{Value: l.Value * r.Value}, nil
	case token.Div:
		if r.Value == 0 {
			return nil, errors.NewRuntimeError("division by zero")
		}
		return &object.Integer{Value: floorDiv(l.Value, r.Value)}, nil
	case token.Mod:
		if r.Value == 0 {
			return nil, errors.NewRuntimeError("division by zero")
		}
		return &object.Integer{Value: floorMod(l.Value, r.Value)}, nil
	default:
		return nil, errors.NewRuntimeError("unhandled operator %s", e.Operator)
	}
}

// floorDiv and floorMod implement Python-style floor division and modulo,
// where the quotient rounds toward negative infinity and the remainder's
// sign always follows the divisor — unlike Go's truncating / and %.
func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}

func evalSign(env *object.Environment, e *ast.SignExpression) (object.Value, error) {
	v, err := evalExpression(env, e.Operand)
	if err != nil {
		return nil, err
	}
	n, ok := v.(*object.Integer)
	if !ok {
		return nil, errors.NewRuntimeError("sign: type mismatch")
	}
	if e.Operator == token.Sub {
		return &object.Integer{Value: -n.Value}, nil
	}
	return &object.Integer{Value: n.Value}, nil
}

func evalCall(env *object.Environment, e *ast.CallExpression) (object.Value, error) {
	fnVal, err := env.Get(e.Function.Value)
	if err != nil {
		return nil, err
	}
	fn, ok := fnVal.(*object.Function)
	if !ok {
		return nil, errors.NewRuntimeError("%q is not a function", e.Function.Value)
	}
	args := make([]object.Value, len(e.Arguments))
	for i, a := range e.Arguments {
		v, err := evalExpression(env, a)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	// Bound zip-style, like the reference interpreter's runenv.update(zip(...)):
	// excess arguments are dropped, excess parameters are left unbound and
	// surface only as a name-not-found error if the body actually reads them.
	callEnv := object.NewChildEnvironment(fn.Env)
	n := len(fn.Parameters)
	if len(args) < n {
		n = len(args)
	}
	for i := 0; i < n; i++ {
		callEnv.Set(fn.Parameters[i].Value, args[i])
	}

	if fn.IsPrimitive() {
		return fn.Primitive(callEnv)
	}
	return Execute(callEnv, fn.Body)
}
