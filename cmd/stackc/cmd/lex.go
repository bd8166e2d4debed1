package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/stackc/internal/diagnostics"
	"github.com/cwbudde/stackc/internal/lexer"
	"github.com/cwbudde/stackc/internal/resolver"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Tokenize a source file and print the resolved token stream",
	Long: `Lex and resolve a source file, then print the resulting tokens,
one per line, in the form the parser actually consumes them.

This is useful for debugging the lexer and resolver independent of
the rest of the pipeline, since both phases are pure functions over
the token stream.

Example:
  stackc lex script.stk
  stackc lex --show-pos script.stk`,
	Args: cobra.ExactArgs(1),
	RunE: lexFile,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show each token's line:column")
}

func lexFile(cmd *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	if verboseFlag {
		fmt.Fprintf(os.Stderr, "tokenizing %s (%d bytes)\n", filename, len(source))
	}

	tokens, err := lexer.Lex(source)
	if err != nil {
		if tokErr, ok := err.(*lexer.TokenizeError); ok && tokErr.Kind == lexer.InvalidChar {
			return fmt.Errorf("%s", diagnostics.Tokenize(diagnostics.InvalidChar(source, tokErr.Char)))
		}
		return fmt.Errorf("%s", diagnostics.Tokenize(""))
	}

	resolved, slotCount, err := resolver.Resolve(tokens)
	if err != nil {
		return fmt.Errorf("%s", err.Error())
	}

	if verboseFlag {
		fmt.Fprintf(os.Stderr, "%d local slot(s)\n", slotCount)
	}

	for _, tok := range resolved {
		if showPos {
			fmt.Printf("%s\t%s\n", tok.Pos, tok)
		} else {
			fmt.Println(tok)
		}
	}

	return nil
}
