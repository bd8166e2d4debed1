// Package driver composes the four compiler phases into the single
// operation the CLI exposes: read a source file, lex, resolve, parse,
// generate, and write the resulting assembly.
//
// Each phase's error is wrapped into the stable diagnostic text before
// it reaches the caller, so the cmd layer only has to print err.Error()
// to stderr and exit 1.
package driver

import (
	"fmt"
	"os"

	"github.com/cwbudde/stackc/internal/codegen"
	"github.com/cwbudde/stackc/internal/codegen/arm64"
	"github.com/cwbudde/stackc/internal/codegen/x86_64"
	"github.com/cwbudde/stackc/internal/diagnostics"
	"github.com/cwbudde/stackc/internal/lexer"
	"github.com/cwbudde/stackc/internal/parser"
	"github.com/cwbudde/stackc/internal/resolver"
)

// Target selects the backend architecture. Selection happens once at
// the start of Run; the generator itself never branches on it.
type Target string

const (
	X86_64 Target = "x86_64"
	ARM64  Target = "arm64"
)

func (t Target) backend() (codegen.Backend, error) {
	switch t {
	case X86_64:
		return x86_64.New(), nil
	case ARM64:
		return arm64.New(), nil
	default:
		return nil, fmt.Errorf("unknown target %q", t)
	}
}

// Run reads sourcePath, compiles it for target, and writes the
// resulting assembly text to outputPath. It is the only function in this
// package that touches a file; Compile works purely in memory.
func Run(sourcePath, outputPath string, target Target) error {
	backend, err := target.backend()
	if err != nil {
		return err
	}

	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return err
	}

	asm, err := Compile(string(source), backend)
	if err != nil {
		return err
	}

	return os.WriteFile(outputPath, []byte(asm), 0644)
}

// Compile runs the four in-memory phases over source and returns the
// generated assembly text. It holds no file handles, so tests can
// exercise it directly without a filesystem.
func Compile(source string, backend codegen.Backend) (string, error) {
	tokens, err := lexer.Lex(source)
	if err != nil {
		if tokErr, ok := err.(*lexer.TokenizeError); ok && tokErr.Kind == lexer.InvalidChar {
			return "", fmt.Errorf("%s", diagnostics.Tokenize(diagnostics.InvalidChar(source, tokErr.Char)))
		}
		return "", fmt.Errorf("%s", diagnostics.Tokenize(""))
	}

	resolved, slotCount, err := resolver.Resolve(tokens)
	if err != nil {
		return "", fmt.Errorf("%s", err.Error())
	}

	trees, err := parser.Parse(resolved)
	if err != nil {
		return "", fmt.Errorf("%s", diagnostics.Parse(err.Error()))
	}

	asm, err := codegen.Generate(trees, slotCount, backend)
	if err != nil {
		return "", fmt.Errorf("%s", diagnostics.Generate(err.Error()))
	}

	return asm, nil
}
