package parser

import (
	"reflect"
	"testing"

	"github.com/cwbudde/stackc/internal/ast"
	"github.com/cwbudde/stackc/internal/lexer"
	"github.com/cwbudde/stackc/internal/resolver"
)

func mustResolve(t *testing.T, source string) []lexer.Token {
	t.Helper()
	tokens, err := lexer.Lex(source)
	if err != nil {
		t.Fatalf("lex(%q): %v", source, err)
	}
	resolved, _, err := resolver.Resolve(tokens)
	if err != nil {
		t.Fatalf("resolve(%q): %v", source, err)
	}
	return resolved
}

func parseSource(t *testing.T, source string) []ast.Tree {
	t.Helper()
	trees, err := Parse(mustResolve(t, source))
	if err != nil {
		t.Fatalf("parse(%q): %v", source, err)
	}
	return trees
}

func TestParseIntegerLiteral(t *testing.T) {
	got := parseSource(t, "500;")
	want := []ast.Tree{&ast.Int{Value: 500}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestParseAddition(t *testing.T) {
	got := parseSource(t, "1 + 2;")
	want := []ast.Tree{&ast.Binary{Op: ast.Add, LHS: &ast.Int{Value: 1}, RHS: &ast.Int{Value: 2}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestParseUnaryMinus(t *testing.T) {
	got := parseSource(t, "-1;")
	want := []ast.Tree{&ast.Binary{Op: ast.Sub, LHS: &ast.Int{Value: 0}, RHS: &ast.Int{Value: 1}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestParseGreaterOrEqualIsNormalized(t *testing.T) {
	got := parseSource(t, "2 >= 1;")
	want := []ast.Tree{&ast.Binary{Op: ast.LessOrEqual, LHS: &ast.Int{Value: 1}, RHS: &ast.Int{Value: 2}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestParseGreaterMatchesSwappedLess(t *testing.T) {
	// Invariant 6: "a > b" and "b < a" must produce identical AST.
	greater := parseSource(t, "3 > 2;")
	less := parseSource(t, "2 < 3;")
	if !reflect.DeepEqual(greater, less) {
		t.Fatalf("got %#v, want identical to %#v", greater, less)
	}
}

func TestParseSortedOffsets(t *testing.T) {
	got := parseSource(t, "column = 5; row = 40; column * row;")
	want := []ast.Tree{
		&ast.Binary{Op: ast.Assign, LHS: &ast.Val{Offset: 8}, RHS: &ast.Int{Value: 5}},
		&ast.Binary{Op: ast.Assign, LHS: &ast.Val{Offset: 16}, RHS: &ast.Int{Value: 40}},
		&ast.Binary{Op: ast.Mul, LHS: &ast.Val{Offset: 8}, RHS: &ast.Val{Offset: 16}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestParseIf(t *testing.T) {
	got := parseSource(t, "if(0) return 0;")
	want := []ast.Tree{&ast.If{Cond: &ast.Int{Value: 0}, Then: &ast.Return{Value: &ast.Int{Value: 0}}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestParseIfElse(t *testing.T) {
	got := parseSource(t, "if(0) return 0; else return 1;")
	want := []ast.Tree{&ast.IfElse{
		Cond: &ast.Int{Value: 0},
		Then: &ast.Return{Value: &ast.Int{Value: 0}},
		Else: &ast.Return{Value: &ast.Int{Value: 1}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestParseForAllClausesEmpty(t *testing.T) {
	got := parseSource(t, "for(;;) 0;")
	want := []ast.Tree{&ast.For{
		Init: &ast.None{}, Cond: &ast.None{}, Step: &ast.None{},
		Body: &ast.Int{Value: 0},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestParseEmptyInputIsEmptyProgram(t *testing.T) {
	got := parseSource(t, "")
	if len(got) != 0 {
		t.Fatalf("got %#v, want empty", got)
	}
}

func TestParseEmptyBlock(t *testing.T) {
	got := parseSource(t, "{ }")
	want := []ast.Tree{&ast.Block{}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestParseBlockWrapperIsOnlyDifference(t *testing.T) {
	// Invariant 4: the AST of P and of { P } differ only by the outer Block.
	bare := parseSource(t, "1 + 1;")
	wrapped := parseSource(t, "{ 1 + 1; }")
	want := []ast.Tree{&ast.Block{Stmts: bare}}
	if !reflect.DeepEqual(wrapped, want) {
		t.Fatalf("got %#v, want %#v", wrapped, want)
	}
}

func TestParseMissingSemicolonError(t *testing.T) {
	_, err := Parse(mustResolve(t, "1 + 1"))
	if err == nil || err.Error() != "expected semicolon but disappear" {
		t.Fatalf("got %v, want 'expected semicolon but disappear'", err)
	}
}

func TestParseMissingLParenError(t *testing.T) {
	_, err := Parse(mustResolve(t, "if 0) return 0;"))
	if err == nil || err.Error() != "expected '(' but disappear" {
		t.Fatalf("got %v, want 'expected '(' but disappear'", err)
	}
}

func TestParseMissingRParenError(t *testing.T) {
	_, err := Parse(mustResolve(t, "if (0 return 0;"))
	if err == nil || err.Error() != "expected ')' but disappear" {
		t.Fatalf("got %v, want 'expected ')' but disappear'", err)
	}
}

func TestParseMissingRBraceError(t *testing.T) {
	_, err := Parse(mustResolve(t, "{ 1 + 1;"))
	if err == nil || err.Error() != "expected '}' but disappear" {
		t.Fatalf("got %v, want 'expected '}' but disappear'", err)
	}
}

func TestParseExpectedPrimaryError(t *testing.T) {
	_, err := Parse(mustResolve(t, "+;"))
	if err == nil || err.Error() != "expect number or block but disappear" {
		t.Fatalf("got %v, want 'expect number or block but disappear'", err)
	}
}

func TestParseAssignmentIsRightAssociative(t *testing.T) {
	got := parseSource(t, "a = b = 1;")
	want := []ast.Tree{&ast.Binary{
		Op:  ast.Assign,
		LHS: &ast.Val{Offset: 8},
		RHS: &ast.Binary{Op: ast.Assign, LHS: &ast.Val{Offset: 16}, RHS: &ast.Int{Value: 1}},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}
