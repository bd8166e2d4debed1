package parser

import "github.com/cwbudde/stackc/internal/lexer"

// TokenCursor is an immutable cursor over a fully-materialized token
// slice. Every navigation method returns a new cursor; the original is
// left untouched, which makes backtracking (Mark/ResetTo) and
// speculative lookahead (Peek) free of aliasing bugs.
//
// Tokens are produced eagerly by lexer.Lex, so unlike a cursor layered
// directly over a lexer, there is no backing token source to pull from
// and no EOF sentinel token: running off the end of the slice is
// AtEnd() returning true, and Current()/Peek() past the end return the
// zero Token.
type TokenCursor struct {
	tokens []lexer.Token
	index  int
}

// NewTokenCursor creates a cursor positioned at the first token of tokens.
func NewTokenCursor(tokens []lexer.Token) *TokenCursor {
	return &TokenCursor{tokens: tokens}
}

// AtEnd reports whether the cursor has run past the last token.
func (c *TokenCursor) AtEnd() bool {
	return c.index >= len(c.tokens)
}

// Current returns the token at the cursor position, or the zero Token
// if the cursor is at or past the end.
func (c *TokenCursor) Current() lexer.Token {
	return c.Peek(0)
}

// Peek returns the token n positions ahead of the cursor. Peek(0) is
// Current(). Indices at or past the end of the slice return the zero
// Token, whose Type is lexer.INTEGER (callers must check AtEnd/PeekAtEnd
// before trusting a peeked token's Type against a sentinel).
func (c *TokenCursor) Peek(n int) lexer.Token {
	i := c.index + n
	if i < 0 || i >= len(c.tokens) {
		return lexer.Token{}
	}
	return c.tokens[i]
}

// PeekAtEnd reports whether the token n positions ahead is past the end.
func (c *TokenCursor) PeekAtEnd(n int) bool {
	i := c.index + n
	return i < 0 || i >= len(c.tokens)
}

// Is reports whether the current token has type t.
func (c *TokenCursor) Is(t lexer.TokenType) bool {
	return !c.AtEnd() && c.Current().Type == t
}

// Advance returns a new cursor one token ahead.
func (c *TokenCursor) Advance() *TokenCursor {
	return c.AdvanceN(1)
}

// AdvanceN returns a new cursor n tokens ahead; the index is clamped to
// len(tokens) (one past the last valid position) rather than wrapping.
func (c *TokenCursor) AdvanceN(n int) *TokenCursor {
	idx := c.index + n
	if idx > len(c.tokens) {
		idx = len(c.tokens)
	}
	if idx < 0 {
		idx = 0
	}
	return &TokenCursor{tokens: c.tokens, index: idx}
}

// Expect advances past the current token if it matches t, returning the
// new cursor and true. Otherwise it returns the receiver unchanged and
// false; the caller is responsible for turning that into a ParseError.
func (c *TokenCursor) Expect(t lexer.TokenType) (*TokenCursor, bool) {
	if c.Is(t) {
		return c.Advance(), true
	}
	return c, false
}

// Mark is a lightweight saved cursor position for backtracking.
type Mark struct {
	index int
}

// Mark saves the current position.
func (c *TokenCursor) Mark() Mark {
	return Mark{index: c.index}
}

// ResetTo returns a new cursor positioned at a previously saved Mark.
func (c *TokenCursor) ResetTo(mark Mark) *TokenCursor {
	return &TokenCursor{tokens: c.tokens, index: mark.index}
}

// Position returns the source position of the current token, or the
// position of the last token if the cursor is at the end (the zero
// Position for an empty token slice).
func (c *TokenCursor) Position() lexer.Position {
	if !c.AtEnd() {
		return c.Current().Pos
	}
	if len(c.tokens) > 0 {
		return c.tokens[len(c.tokens)-1].Pos
	}
	return lexer.Position{}
}
