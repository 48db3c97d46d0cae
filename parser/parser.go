// Package parser builds an AST from a token stream using recursive-descent
// parsing over an explicit operator-precedence ladder. It fails fast: the
// first unexpected token aborts parsing with a SyntaxError rather than
// collecting multiple errors.
package parser

import (
	"erio/ast"
	"erio/errors"
	"erio/lexer"
	"erio/token"
)

// Parser consumes tokens one at a time from a Lexer, keeping a single token
// of lookahead.
type Parser struct {
	lex *lexer.Lexer

	cur  token.Token
	peek token.Token
}

// New creates a Parser over lex, priming both the current and lookahead
// tokens.
func New(lex *lexer.Lexer) (*Parser, error) {
	p := &Parser{lex: lex}
	if err := p.advance(); err != nil {
		return nil, err
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Parser) advance() error {
	p.cur = p.peek
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.peek = tok
	return nil
}

func (p *Parser) curIs(kind token.Kind) bool  { return p.cur.Kind == kind }
func (p *Parser) peekIs(kind token.Kind) bool { return p.peek.Kind == kind }

// expect checks that the current token has the given kind, consumes it, and
// advances. Otherwise it returns a SyntaxError.
func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if !p.curIs(kind) {
		return token.Token{}, &errors.SyntaxError{
			Token:   p.cur,
			Message: "expected " + string(kind),
		}
	}
	tok := p.cur
	err := p.advance()
	return tok, err
}

// ParseProgram parses an entire source file: a sequence of top-level
// statements terminated by EOF. A bare `return` at this level is a
// SyntaxError — return is only valid inside a function body.
func ParseProgram(lex *lexer.Lexer) (*ast.Program, error) {
	p, err := New(lex)
	if err != nil {
		return nil, err
	}
	prog := &ast.Program{}
	for !p.curIs(token.EOF) {
		stmt, err := p.parseTopLevelStatement()
		if err != nil {
			return nil, err
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil
}

// parseTopLevelStatement parses one statement, rejecting a bare `return`
// since returns are only valid nested inside a function body.
func (p *Parser) parseTopLevelStatement() (ast.Statement, error) {
	if p.curIs(token.Return) {
		return nil, &errors.SyntaxError{Token: p.cur, Message: "return outside function body"}
	}
	return p.parseStatement()
}

// parseStatement dispatches on the current token to one of Erio's six
// statement forms.
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Kind {
	case token.If:
		return p.parseIf()
	case token.While:
		return p.parseWhile()
	case token.Def:
		return p.parseFunctionDef()
	case token.Return:
		return p.parseReturn()
	case token.Identifier:
		if p.peekIs(token.Assign) {
			return p.parseAssignment()
		}
		if p.peekIs(token.LParen) {
			return p.parseExpressionStatement()
		}
		return nil, &errors.SyntaxError{Token: p.cur, Message: "expected a statement"}
	default:
		return nil, &errors.SyntaxError{Token: p.cur, Message: "expected a statement"}
	}
}

// parseBlock parses statements until the current token matches one of
// stopKinds (which is left unconsumed for the caller).
func (p *Parser) parseBlock(stopKinds ...token.Kind) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for {
		if p.curIs(token.EOF) {
			return nil, &errors.SyntaxError{Token: p.cur, Message: "unexpected end of input"}
		}
		for _, k := range stopKinds {
			if p.curIs(k) {
				return stmts, nil
			}
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) parseIf() (ast.Statement, error) {
	tok := p.cur
	if err := p.advance(); err != nil { // consume 'if'
		return nil, err
	}
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Then); err != nil {
		return nil, err
	}
	thenBlock, err := p.parseBlock(token.Else, token.EndIf)
	if err != nil {
		return nil, err
	}
	var elseBlock []ast.Statement
	if p.curIs(token.Else) {
		if err := p.advance(); err != nil {
			return nil, err
		}
		elseBlock, err = p.parseBlock(token.EndIf)
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(token.EndIf); err != nil {
		return nil, err
	}
	return &ast.IfStatement{Token: tok, Condition: cond, Then: thenBlock, Else: elseBlock}, nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	tok := p.cur
	if err := p.advance(); err != nil { // consume 'while'
		return nil, err
	}
	cond, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Do); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(token.EndWhile)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EndWhile); err != nil {
		return nil, err
	}
	return &ast.WhileStatement{Token: tok, Condition: cond, Body: body}, nil
}

func (p *Parser) parseFunctionDef() (ast.Statement, error) {
	tok := p.cur
	if err := p.advance(); err != nil { // consume 'def'
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	name := &ast.Identifier{Token: nameTok, Value: nameTok.Lexeme}
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var params []*ast.Identifier
	for !p.curIs(token.RParen) {
		paramTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		params = append(params, &ast.Identifier{Token: paramTok, Value: paramTok.Lexeme})
		if p.curIs(token.Comma) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	body, err := p.parseBlock(token.EndDef)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.EndDef); err != nil {
		return nil, err
	}
	return &ast.FunctionDefStatement{Token: tok, Name: name, Parameters: params, Body: body}, nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	tok := p.cur
	if err := p.advance(); err != nil { // consume 'return'
		return nil, err
	}
	value, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	return &ast.ReturnStatement{Token: tok, Value: value}, nil
}

func (p *Parser) parseAssignment() (ast.Statement, error) {
	nameTok := p.cur
	name := &ast.Identifier{Token: nameTok, Value: nameTok.Lexeme}
	if err := p.advance(); err != nil { // consume identifier
		return nil, err
	}
	tok, err := p.expect(token.Assign)
	if err != nil {
		return nil, err
	}
	value, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	return &ast.AssignmentStatement{Token: tok, Name: name, Value: value}, nil
}

// parseExpressionStatement parses a bare function call used as a statement
// (e.g. `print("hi")`) — the only expression form valid in statement
// position. parseStatement only reaches here after confirming the current
// identifier is followed by '(', so parseAtom always yields a CallExpression.
func (p *Parser) parseExpressionStatement() (ast.Statement, error) {
	tok := p.cur
	expr, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Token: tok, Expression: expr}, nil
}

// --- Precedence ladder: or(7) > and(6) > not(5) > comp(4) > add(3) >
// mul(2) > sign(1) > atom(0) ---

func (p *Parser) parseOr() (ast.Expression, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.curIs(token.Or) {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &ast.OrExpression{Token: tok, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAnd() (ast.Expression, error) {
	left, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	for p.curIs(token.And) {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		left = &ast.AndExpression{Token: tok, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseNot() (ast.Expression, error) {
	if p.curIs(token.Not) {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &ast.NotExpression{Token: tok, Operand: operand}, nil
	}
	return p.parseComp()
}

var compOps = map[token.Kind]bool{
	token.Gt: true, token.Lt: true, token.Gte: true,
	token.Lte: true, token.Eq: true, token.NotEq: true,
}

func (p *Parser) parseComp() (ast.Expression, error) {
	left, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	for compOps[p.cur.Kind] {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAdd()
		if err != nil {
			return nil, err
		}
		left = &ast.CompExpression{Token: tok, Operator: tok.Kind, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseAdd() (ast.Expression, error) {
	left, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	for p.curIs(token.Add) || p.curIs(token.Sub) {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		left = &ast.AddExpression{Token: tok, Operator: tok.Kind, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMul() (ast.Expression, error) {
	left, err := p.parseSign()
	if err != nil {
		return nil, err
	}
	for p.curIs(token.Mul) || p.curIs(token.Div) || p.curIs(token.Mod) {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseSign()
		if err != nil {
			return nil, err
		}
		left = &ast.MulExpression{Token: tok, Operator: tok.Kind, Left: left, Right: right}
	}
	return left, nil
}

func (p *Parser) parseSign() (ast.Expression, error) {
	if p.curIs(token.Add) || p.curIs(token.Sub) {
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		operand, err := p.parseSign()
		if err != nil {
			return nil, err
		}
		return &ast.SignExpression{Token: tok, Operator: tok.Kind, Operand: operand}, nil
	}
	return p.parseAtom()
}

func (p *Parser) parseAtom() (ast.Expression, error) {
	switch p.cur.Kind {
	case token.Integer, token.Boolean, token.String:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &ast.Constant{Token: tok}, nil
	case token.Identifier:
		tok := p.cur
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.curIs(token.LParen) {
			return p.parseCallArguments(tok)
		}
		return &ast.Identifier{Token: tok, Value: tok.Lexeme}, nil
	case token.LBracket:
		return p.parseSequenceLiteral()
	case token.LParen:
		if err := p.advance(); err != nil { // consume '('
			return nil, err
		}
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RParen); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, &errors.SyntaxError{Token: p.cur, Message: "expected an expression"}
	}
}

// parseCallArguments parses `(ARG, ...)` after the function name identifier
// has already been consumed. The trailing comma before `)` is never
// required, mirroring the rest of the grammar's comma handling.
func (p *Parser) parseCallArguments(nameTok token.Token) (ast.Expression, error) {
	if _, err := p.expect(token.LParen); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for !p.curIs(token.RParen) {
		arg, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.curIs(token.Comma) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RParen); err != nil {
		return nil, err
	}
	return &ast.CallExpression{
		Token:     nameTok,
		Function:  &ast.Identifier{Token: nameTok, Value: nameTok.Lexeme},
		Arguments: args,
	}, nil
}

func (p *Parser) parseSequenceLiteral() (ast.Expression, error) {
	tok := p.cur
	if err := p.advance(); err != nil { // consume '['
		return nil, err
	}
	var elements []ast.Expression
	for !p.curIs(token.RBracket) {
		el, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
		if p.curIs(token.Comma) {
			if err := p.advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.expect(token.RBracket); err != nil {
		return nil, err
	}
	return &ast.SequenceLiteral{Token: tok, Elements: elements}, nil
}
