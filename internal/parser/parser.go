package parser

import (
	"github.com/cwbudde/stackc/internal/ast"
	"github.com/cwbudde/stackc/internal/lexer"
)

// Parse consumes a fully-resolved token stream (no lexer.IDENT tokens
// should remain, see package resolver) and returns the program as an
// ordered list of statement trees.
func Parse(tokens []lexer.Token) ([]ast.Tree, error) {
	c := NewTokenCursor(tokens)

	var trees []ast.Tree
	for !c.AtEnd() {
		tree, next, err := parseStmt(c)
		if err != nil {
			return nil, err
		}
		trees = append(trees, tree)
		c = next
	}
	return trees, nil
}

func parseStmt(c *TokenCursor) (ast.Tree, *TokenCursor, error) {
	switch {
	case c.Is(lexer.RETURN):
		c = c.Advance()
		e, c, err := parseExpr(c)
		if err != nil {
			return nil, nil, err
		}
		c, ok := c.Expect(lexer.SEMICOLON)
		if !ok {
			return nil, nil, errExpectedSemicolon
		}
		return &ast.Return{Value: e}, c, nil

	case c.Is(lexer.IF):
		return parseIf(c)

	case c.Is(lexer.WHILE):
		c = c.Advance()
		cond, then, c, err := parseCondAndStmt(c)
		if err != nil {
			return nil, nil, err
		}
		return &ast.While{Cond: cond, Body: then}, c, nil

	case c.Is(lexer.FOR):
		return parseFor(c)

	case c.Is(lexer.LBRACE):
		return parseBlock(c)

	default:
		e, c, err := parseExpr(c)
		if err != nil {
			return nil, nil, err
		}
		c, ok := c.Expect(lexer.SEMICOLON)
		if !ok {
			return nil, nil, errExpectedSemicolon
		}
		return e, c, nil
	}
}

// parseCondAndStmt parses "(" expr ")" stmt, the shape shared by while and
// the head of if.
func parseCondAndStmt(c *TokenCursor) (cond ast.Tree, body ast.Tree, next *TokenCursor, err error) {
	c, ok := c.Expect(lexer.LPAREN)
	if !ok {
		return nil, nil, nil, errExpectedLParen
	}
	cond, c, err = parseExpr(c)
	if err != nil {
		return nil, nil, nil, err
	}
	c, ok = c.Expect(lexer.RPAREN)
	if !ok {
		return nil, nil, nil, errExpectedRParen
	}
	body, c, err = parseStmt(c)
	if err != nil {
		return nil, nil, nil, err
	}
	return cond, body, c, nil
}

func parseIf(c *TokenCursor) (ast.Tree, *TokenCursor, error) {
	c = c.Advance() // consume "if"
	cond, then, c, err := parseCondAndStmt(c)
	if err != nil {
		return nil, nil, err
	}

	if !c.Is(lexer.ELSE) {
		return &ast.If{Cond: cond, Then: then}, c, nil
	}

	c = c.Advance() // consume "else"
	elseStmt, c, err := parseStmt(c)
	if err != nil {
		return nil, nil, err
	}
	return &ast.IfElse{Cond: cond, Then: then, Else: elseStmt}, c, nil
}

func parseFor(c *TokenCursor) (ast.Tree, *TokenCursor, error) {
	c = c.Advance() // consume "for"
	c, ok := c.Expect(lexer.LPAREN)
	if !ok {
		return nil, nil, errExpectedLParen
	}

	init, c, err := parseOptionalExpr(c, lexer.SEMICOLON)
	if err != nil {
		return nil, nil, err
	}
	c, ok = c.Expect(lexer.SEMICOLON)
	if !ok {
		return nil, nil, errExpectedSemicolon
	}

	cond, c, err := parseOptionalExpr(c, lexer.SEMICOLON)
	if err != nil {
		return nil, nil, err
	}
	c, ok = c.Expect(lexer.SEMICOLON)
	if !ok {
		return nil, nil, errExpectedSemicolon
	}

	step, c, err := parseOptionalExpr(c, lexer.RPAREN)
	if err != nil {
		return nil, nil, err
	}
	c, ok = c.Expect(lexer.RPAREN)
	if !ok {
		return nil, nil, errExpectedRParen
	}

	body, c, err := parseStmt(c)
	if err != nil {
		return nil, nil, err
	}

	return &ast.For{Init: init, Cond: cond, Step: step, Body: body}, c, nil
}

// parseOptionalExpr parses an expression, or returns *ast.None unparsed
// if the current token is the clause's terminator (meaning the clause
// was left empty).
func parseOptionalExpr(c *TokenCursor, term lexer.TokenType) (ast.Tree, *TokenCursor, error) {
	if c.Is(term) {
		return &ast.None{}, c, nil
	}
	return parseExpr(c)
}

func parseBlock(c *TokenCursor) (ast.Tree, *TokenCursor, error) {
	c = c.Advance() // consume "{"

	var stmts []ast.Tree
	for !c.Is(lexer.RBRACE) {
		if c.AtEnd() {
			return nil, nil, errExpectedRBrace
		}
		stmt, next, err := parseStmt(c)
		if err != nil {
			return nil, nil, err
		}
		stmts = append(stmts, stmt)
		c = next
	}
	c, ok := c.Expect(lexer.RBRACE)
	if !ok {
		return nil, nil, errExpectedRBrace
	}
	return &ast.Block{Stmts: stmts}, c, nil
}

func parseExpr(c *TokenCursor) (ast.Tree, *TokenCursor, error) {
	return parseAssign(c)
}

// parseAssign is the one right-associative level: "x = y = z" parses as
// x = (y = z).
func parseAssign(c *TokenCursor) (ast.Tree, *TokenCursor, error) {
	lhs, c, err := parseEquality(c)
	if err != nil {
		return nil, nil, err
	}
	if !c.Is(lexer.EQUAL) {
		return lhs, c, nil
	}
	c = c.Advance()
	rhs, c, err := parseAssign(c)
	if err != nil {
		return nil, nil, err
	}
	return &ast.Binary{Op: ast.Assign, LHS: lhs, RHS: rhs}, c, nil
}

// parseEquality, parseRelational, parseAdd and parseMul are the
// left-associative precedence levels. Each is an explicit loop over the
// cursor rather than a recursive call, so a long chain of operators at
// one level (e.g. "1+1+1+...") doesn't grow the Go call stack.
func parseEquality(c *TokenCursor) (ast.Tree, *TokenCursor, error) {
	lhs, c, err := parseRelational(c)
	if err != nil {
		return nil, nil, err
	}
	for {
		var op ast.Op
		switch {
		case c.Is(lexer.EQUALITY):
			op = ast.Equality
		case c.Is(lexer.NOTEQUAL):
			op = ast.Nonequality
		default:
			return lhs, c, nil
		}
		c = c.Advance()
		rhs, next, err := parseRelational(c)
		if err != nil {
			return nil, nil, err
		}
		c = next
		lhs = &ast.Binary{Op: op, LHS: lhs, RHS: rhs}
	}
}

// parseRelational normalizes `a > b` to Less(b, a) and `a >= b` to
// LessOrEqual(b, a), so Greater/GreaterOrEqual never reach the AST.
func parseRelational(c *TokenCursor) (ast.Tree, *TokenCursor, error) {
	lhs, c, err := parseAdd(c)
	if err != nil {
		return nil, nil, err
	}
	for {
		var op ast.Op
		swap := false
		switch {
		case c.Is(lexer.LESSEQ):
			op = ast.LessOrEqual
		case c.Is(lexer.LESS):
			op = ast.Less
		case c.Is(lexer.GREATEREQ):
			op, swap = ast.LessOrEqual, true
		case c.Is(lexer.GREATER):
			op, swap = ast.Less, true
		default:
			return lhs, c, nil
		}
		c = c.Advance()
		rhs, next, err := parseAdd(c)
		if err != nil {
			return nil, nil, err
		}
		c = next
		if swap {
			lhs = &ast.Binary{Op: op, LHS: rhs, RHS: lhs}
		} else {
			lhs = &ast.Binary{Op: op, LHS: lhs, RHS: rhs}
		}
	}
}

func parseAdd(c *TokenCursor) (ast.Tree, *TokenCursor, error) {
	lhs, c, err := parseMul(c)
	if err != nil {
		return nil, nil, err
	}
	for {
		var op ast.Op
		switch {
		case c.Is(lexer.ADD):
			op = ast.Add
		case c.Is(lexer.SUB):
			op = ast.Sub
		default:
			return lhs, c, nil
		}
		c = c.Advance()
		rhs, next, err := parseMul(c)
		if err != nil {
			return nil, nil, err
		}
		c = next
		lhs = &ast.Binary{Op: op, LHS: lhs, RHS: rhs}
	}
}

func parseMul(c *TokenCursor) (ast.Tree, *TokenCursor, error) {
	lhs, c, err := parseUnary(c)
	if err != nil {
		return nil, nil, err
	}
	for {
		var op ast.Op
		switch {
		case c.Is(lexer.MUL):
			op = ast.Mul
		case c.Is(lexer.DIV):
			op = ast.Div
		default:
			return lhs, c, nil
		}
		c = c.Advance()
		rhs, next, err := parseUnary(c)
		if err != nil {
			return nil, nil, err
		}
		c = next
		lhs = &ast.Binary{Op: op, LHS: lhs, RHS: rhs}
	}
}

// parseUnary handles a single leading "+" or "-" in front of a primary.
// Unlike the binary levels, unary does not recurse on itself: the
// grammar is `"+"? primary | "-" primary`, one sign at most.
func parseUnary(c *TokenCursor) (ast.Tree, *TokenCursor, error) {
	if c.Is(lexer.ADD) {
		return parsePrimary(c.Advance())
	}
	if c.Is(lexer.SUB) {
		e, c, err := parsePrimary(c.Advance())
		if err != nil {
			return nil, nil, err
		}
		return &ast.Binary{Op: ast.Sub, LHS: &ast.Int{Value: 0}, RHS: e}, c, nil
	}
	return parsePrimary(c)
}

func parsePrimary(c *TokenCursor) (ast.Tree, *TokenCursor, error) {
	if c.Is(lexer.LPAREN) {
		e, c, err := parseExpr(c.Advance())
		if err != nil {
			return nil, nil, err
		}
		c, ok := c.Expect(lexer.RPAREN)
		if !ok {
			return nil, nil, errExpectedRParen
		}
		return e, c, nil
	}

	if c.Is(lexer.INTEGER) {
		tok := c.Current()
		return &ast.Int{Value: tok.Int}, c.Advance(), nil
	}

	if c.Is(lexer.VARIABLE) {
		tok := c.Current()
		return &ast.Val{Offset: tok.Offset}, c.Advance(), nil
	}

	return nil, nil, errExpectedPrimary
}
