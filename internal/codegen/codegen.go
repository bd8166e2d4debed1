package codegen

import (
	"fmt"
	"strings"

	"github.com/cwbudde/stackc/internal/ast"
)

// GenerateError is returned for an AST the generator cannot emit: an
// assignment whose left-hand side isn't a local (the parser accepts any
// expression there, e.g. "1 = 2;"), or an unknown node type or operator.
type GenerateError struct {
	Message string
}

func (e *GenerateError) Error() string { return e.Message }

// Generate emits a complete assembly program for trees against the
// given Backend. slotCount is the number of distinct locals, i.e. the
// value resolver.Resolve returned; the frame reserves slotCount*8 bytes.
func Generate(trees []ast.Tree, slotCount int, backend Backend) (string, error) {
	g := &generator{backend: backend}

	var asm strings.Builder
	asm.WriteString(backend.ProgramPrologue())
	asm.WriteString(backend.MainFunc())
	asm.WriteString(backend.MemoryAllocate(slotCount * 8))

	for _, tree := range trees {
		stmt, err := g.emit(tree)
		if err != nil {
			return "", err
		}
		asm.WriteString(stmt)
		asm.WriteString(backend.StmtEpilogue())
	}

	asm.WriteString(backend.ProgramEpilogue())
	return asm.String(), nil
}

// generator holds the only state the code generator needs: the label
// counter threaded through recursive emission, so every control-flow
// site gets a unique label number. It has no other mutable state.
type generator struct {
	backend    Backend
	labelCount int
}

func (g *generator) nextLabel() int {
	g.labelCount++
	return g.labelCount
}

// emit returns the assembly fragment for one tree, preserving the
// stack-balance invariant: a complete statement leaves exactly one more
// value on the stack than before it ran (popped by the caller's
// StmtEpilogue, or, inside a Block, left for the next statement's own
// epilogue call at the top level).
func (g *generator) emit(tree ast.Tree) (string, error) {
	switch n := tree.(type) {
	case *ast.None:
		return "", nil

	case *ast.Int:
		return g.backend.PushInt(n.Value), nil

	case *ast.Val:
		return g.backend.GenVal(n.Offset) + g.backend.PopVal(), nil

	case *ast.Binary:
		return g.emitBinary(n)

	case *ast.Return:
		e, err := g.emit(n.Value)
		if err != nil {
			return "", err
		}
		return e + g.backend.GenReturn(), nil

	case *ast.If:
		cond, err := g.emit(n.Cond)
		if err != nil {
			return "", err
		}
		then, err := g.emit(n.Then)
		if err != nil {
			return "", err
		}
		return g.backend.GenIf(cond, then, g.nextLabel()), nil

	case *ast.IfElse:
		cond, err := g.emit(n.Cond)
		if err != nil {
			return "", err
		}
		then, err := g.emit(n.Then)
		if err != nil {
			return "", err
		}
		els, err := g.emit(n.Else)
		if err != nil {
			return "", err
		}
		return g.backend.GenIfElse(cond, then, els, g.nextLabel()), nil

	case *ast.While:
		cond, err := g.emit(n.Cond)
		if err != nil {
			return "", err
		}
		body, err := g.emit(n.Body)
		if err != nil {
			return "", err
		}
		return g.backend.GenWhile(cond, body, g.nextLabel()), nil

	case *ast.For:
		init, err := g.emit(n.Init)
		if err != nil {
			return "", err
		}
		cond, err := g.emit(n.Cond)
		if err != nil {
			return "", err
		}
		step, err := g.emit(n.Step)
		if err != nil {
			return "", err
		}
		body, err := g.emit(n.Body)
		if err != nil {
			return "", err
		}
		return g.backend.GenFor(init, cond, step, body, g.nextLabel()), nil

	case *ast.Block:
		var asm strings.Builder
		for _, stmt := range n.Stmts {
			s, err := g.emit(stmt)
			if err != nil {
				return "", err
			}
			asm.WriteString(s)
		}
		return asm.String(), nil

	default:
		return "", &GenerateError{Message: fmt.Sprintf("unexpected node %T", tree)}
	}
}

func (g *generator) emitBinary(n *ast.Binary) (string, error) {
	if n.Op == ast.Assign {
		val, ok := n.LHS.(*ast.Val)
		if !ok {
			return "", &GenerateError{Message: "assign to non-lvalue"}
		}
		rhs, err := g.emit(n.RHS)
		if err != nil {
			return "", err
		}
		return g.backend.GenVal(val.Offset) + rhs + g.backend.PopLvar(), nil
	}

	lhs, err := g.emit(n.LHS)
	if err != nil {
		return "", err
	}
	rhs, err := g.emit(n.RHS)
	if err != nil {
		return "", err
	}

	var op string
	switch n.Op {
	case ast.Equality:
		op = g.backend.EqArg()
	case ast.Nonequality:
		op = g.backend.NeqArg()
	case ast.Less:
		op = g.backend.LessArg()
	case ast.LessOrEqual:
		op = g.backend.LessOrEqArg()
	case ast.Add:
		op = g.backend.AddArg()
	case ast.Sub:
		op = g.backend.SubArg()
	case ast.Mul:
		op = g.backend.MulArg()
	case ast.Div:
		op = g.backend.DivArg()
	default:
		return "", &GenerateError{Message: fmt.Sprintf("unexpected operator %v", n.Op)}
	}

	return lhs + rhs + g.backend.PopArg() + op + g.backend.PushResult(), nil
}
