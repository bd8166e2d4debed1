package lexer

import "testing"

func typesOf(tokens []Token) []TokenType {
	types := make([]TokenType, len(tokens))
	for i, t := range tokens {
		types[i] = t.Type
	}
	return types
}

func assertTypes(t *testing.T, got []Token, want ...TokenType) {
	t.Helper()
	gotTypes := typesOf(got)
	if len(gotTypes) != len(want) {
		t.Fatalf("token count = %d, want %d (%v)", len(gotTypes), len(want), gotTypes)
	}
	for i, w := range want {
		if gotTypes[i] != w {
			t.Fatalf("token[%d] = %v, want %v", i, gotTypes[i], w)
		}
	}
}

func TestLexEmpty(t *testing.T) {
	tokens, err := Lex("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 0 {
		t.Fatalf("expected no tokens, got %v", tokens)
	}
}

func TestLexIntegerLiteral(t *testing.T) {
	tokens, err := Lex("500;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTypes(t, tokens, INTEGER, SEMICOLON)
	if tokens[0].Int != 500 {
		t.Fatalf("Int = %d, want 500", tokens[0].Int)
	}
}

func TestLexKeywordBoundary(t *testing.T) {
	// "returnx" must lex as a single IDENT, never RETURN followed by IDENT.
	tokens, err := Lex("returnx;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTypes(t, tokens, IDENT, SEMICOLON)
	if tokens[0].Name != "returnx" {
		t.Fatalf("Name = %q, want %q", tokens[0].Name, "returnx")
	}
}

func TestLexKeywords(t *testing.T) {
	tokens, err := Lex("return if else while for")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTypes(t, tokens, RETURN, IF, ELSE, WHILE, FOR)
}

func TestLexOperatorsLongestMatchFirst(t *testing.T) {
	tokens, err := Lex("== = != <= < >= > + - * / ( ) { } ;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTypes(t, tokens,
		EQUALITY, EQUAL, NOTEQUAL, LESSEQ, LESS, GREATEREQ, GREATER,
		ADD, SUB, MUL, DIV, LPAREN, RPAREN, LBRACE, RBRACE, SEMICOLON,
	)
}

func TestLexIdentifierCannotStartWithDigit(t *testing.T) {
	tokens, err := Lex("1a;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTypes(t, tokens, INTEGER, IDENT, SEMICOLON)
}

func TestLexInvalidChar(t *testing.T) {
	_, err := Lex("abc$")
	var tokenizeErr *TokenizeError
	if !asTokenizeError(err, &tokenizeErr) {
		t.Fatalf("expected *TokenizeError, got %v (%T)", err, err)
	}
	if tokenizeErr.Kind != InvalidChar || tokenizeErr.Char != '$' {
		t.Fatalf("unexpected error %+v", tokenizeErr)
	}
}

func TestLexWhitespaceVarieties(t *testing.T) {
	tokens, err := Lex("1 \t+\n2\r\n;")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTypes(t, tokens, INTEGER, ADD, INTEGER, SEMICOLON)
}

func asTokenizeError(err error, out **TokenizeError) bool {
	te, ok := err.(*TokenizeError)
	if ok {
		*out = te
	}
	return ok
}
