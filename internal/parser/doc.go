// Package parser builds an AST from a resolved token stream.
//
// It is a recursive-descent parser, except that the left-recursive
// precedence levels (equality, relational, add, mul) and the top-level
// program loop are written as explicit iteration over a TokenCursor
// rather than as recursive calls, so that deeply chained expressions
// and long programs don't risk exhausting the call stack.
//
// Example usage:
//
//	tokens, _, err := resolver.Resolve(lexed)
//	trees, err := parser.Parse(tokens)
package parser
