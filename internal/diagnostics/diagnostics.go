// Package diagnostics formats the compiler's stable, test-matched
// failure messages: the invalid-character locator and the per-phase
// wrapping text the driver prints to stderr.
//
// The invalid-character locator is recomputed directly from the
// original source text and the offending rune rather than from any
// position the lexer tracked internally, so its wire format is exact
// regardless of how lexer bookkeeping evolves, mirroring the reference
// compiler's error module, which does the same recomputation from
// scratch.
package diagnostics

import (
	"fmt"
	"strings"
)

// InvalidChar formats the locator for an InvalidChar lex failure:
//
//	--> <line>:<col>
//	<line_text>
//	<col_spaces>^ invalid char
//
// line is the zero-based index of the first line containing c, col is
// the zero-based byte offset of c within that line, and col_spaces is
// exactly col space characters. Lines are split on "\n".
func InvalidChar(source string, c rune) string {
	lines := strings.Split(source, "\n")

	lineNum := 0
	lineText := ""
	col := 0
	for i, line := range lines {
		if idx := strings.IndexRune(line, c); idx >= 0 {
			lineNum, lineText, col = i, line, idx
			break
		}
	}

	return fmt.Sprintf("--> %d:%d\n%s\n%s^ invalid char", lineNum, col, lineText, strings.Repeat(" ", col))
}

// Tokenize wraps a tokenize-phase failure. diagnostic, when non-empty,
// is an InvalidChar locator; other tokenize failures (e.g. numeric
// overflow) carry no locator.
func Tokenize(diagnostic string) string {
	if diagnostic == "" {
		return "tokenize error"
	}
	return "tokenize error\n" + diagnostic
}

// Parse wraps a parse-phase failure.
func Parse(reason string) string {
	return "parse error: " + reason
}

// Generate wraps a generate-phase failure.
func Generate(reason string) string {
	return "generate error: " + reason
}
