// Package resolver assigns stack-frame slots to local variables.
//
// It walks a token stream once, collects every distinct identifier name,
// and hands each one a fixed 8-byte-aligned offset from the frame base.
// Offsets are assigned by sorted name rather than by order of first
// appearance, so that two sources identical up to identifier-encounter
// order compile to byte-identical assembly.
package resolver

import (
	"fmt"
	"sort"

	"github.com/cwbudde/stackc/internal/lexer"
)

// ResolveError is returned when a token stream contains an identifier
// that does not appear in the table built from that same stream. This is
// unreachable in practice (the table is built from the very slice being
// rewritten), and is kept only as a guard against a future change that
// decouples collection from rewriting.
type ResolveError struct {
	Name string
}

func (e *ResolveError) Error() string {
	return fmt.Sprintf("unexpected ident %q", e.Name)
}

// Resolve replaces every lexer.IDENT token with a lexer.VARIABLE token
// carrying its frame offset, and returns the number of distinct
// identifiers seen. All other tokens pass through unchanged.
func Resolve(tokens []lexer.Token) ([]lexer.Token, int, error) {
	offsets := assignOffsets(collectNames(tokens))

	resolved := make([]lexer.Token, len(tokens))
	for i, tok := range tokens {
		if tok.Type != lexer.IDENT {
			resolved[i] = tok
			continue
		}

		offset, ok := offsets[tok.Name]
		if !ok {
			return nil, 0, &ResolveError{Name: tok.Name}
		}

		resolved[i] = lexer.Token{Type: lexer.VARIABLE, Offset: offset, Pos: tok.Pos}
	}

	return resolved, len(offsets), nil
}

// collectNames deduplicates the identifiers in tokens and returns them
// sorted lexicographically.
func collectNames(tokens []lexer.Token) []string {
	seen := make(map[string]struct{})
	for _, tok := range tokens {
		if tok.Type == lexer.IDENT {
			seen[tok.Name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// assignOffsets gives the i-th sorted name (0-based) the offset
// (i+1)*8, so the frame spans exactly len(names)*8 bytes.
func assignOffsets(names []string) map[string]int {
	offsets := make(map[string]int, len(names))
	for i, name := range names {
		offsets[name] = (i + 1) * 8
	}
	return offsets
}
