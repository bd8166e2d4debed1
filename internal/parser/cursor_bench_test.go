package parser

import (
	"testing"

	"github.com/cwbudde/stackc/internal/lexer"
)

func benchTokens(b *testing.B, source string) []lexer.Token {
	b.Helper()
	tokens, err := lexer.Lex(source)
	if err != nil {
		b.Fatalf("lex(%q): %v", source, err)
	}
	return tokens
}

func BenchmarkCursor_Creation(b *testing.B) {
	tokens := benchTokens(b, "a = 1; b = 2; a + b;")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NewTokenCursor(tokens)
	}
}

func BenchmarkCursor_Advance(b *testing.B) {
	tokens := benchTokens(b, "a = 1; b = 2; a + b;")
	cursor := NewTokenCursor(tokens)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := cursor
		for !c.AtEnd() {
			c = c.Advance()
		}
	}
}

func BenchmarkCursor_Peek(b *testing.B) {
	tokens := benchTokens(b, "a = 1; b = 2; a + b;")
	cursor := NewTokenCursor(tokens)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cursor.Peek(1)
		_ = cursor.Peek(2)
		_ = cursor.Peek(3)
	}
}

func BenchmarkCursor_Is(b *testing.B) {
	tokens := benchTokens(b, "a = 1; b = 2; a + b;")
	cursor := NewTokenCursor(tokens)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cursor.Is(lexer.VARIABLE)
		_ = cursor.Is(lexer.ADD)
		_ = cursor.Is(lexer.INTEGER)
	}
}

func BenchmarkCursor_MarkResetTo(b *testing.B) {
	tokens := benchTokens(b, "a = 1; b = 2; a + b;")
	cursor := NewTokenCursor(tokens)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mark := cursor.Mark()
		c := cursor.Advance().Advance().Advance()
		c = c.ResetTo(mark)
	}
}
