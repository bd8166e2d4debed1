// Package codegen walks an AST and emits assembly text via a target
// Backend, using a stack-machine discipline: every subexpression pushes
// exactly one machine word, every consumer pops exactly what it pushed.
package codegen

// Backend is the capability set a target architecture must provide. The
// Generator invokes only these abstract operations, never an instruction
// mnemonic directly, so that no per-target conditional ever appears in
// codegen.go itself. Each concrete Backend (x86_64, arm64) owns its own
// register conventions and instruction text.
type Backend interface {
	// ProgramPrologue is the file-level directive preceding everything
	// else (e.g. ".intel_syntax noprefix\n" or ".text\n").
	ProgramPrologue() string
	// MainFunc emits the .globl directive and entry label.
	MainFunc() string
	// MemoryAllocate emits the frame prologue, reserving frameBytes for
	// locals.
	MemoryAllocate(frameBytes int) string
	// ProgramEpilogue restores the caller's frame and returns.
	ProgramEpilogue() string
	// StmtEpilogue pops and discards one statement's result value.
	StmtEpilogue() string

	// PushInt pushes an integer literal.
	PushInt(n uint64) string
	// GenVal computes the address of the local at offset and pushes it.
	GenVal(offset int) string
	// PopVal pops an address, loads the value stored there, and pushes it.
	PopVal() string
	// PopLvar pops a value and an address (value pushed last, so popped
	// first), stores the value at the address, and pushes the stored
	// value back (the result of an assignment expression).
	PopLvar() string
	// PopArg pops the right then left operand into the two canonical
	// argument registers, ready for a binary operator.
	PopArg() string
	// PushResult pushes the canonical result register after a binary op
	// has left its answer there.
	PushResult() string

	AddArg() string
	SubArg() string
	MulArg() string
	DivArg() string
	EqArg() string
	NeqArg() string
	LessArg() string
	LessOrEqArg() string

	// GenReturn pops the return value, restores the frame, and returns.
	GenReturn() string

	// GenIf, GenIfElse, GenWhile and GenFor splice already-generated
	// fragments for the condition/body/etc. around target-specific
	// labels and branches. n is this control-flow site's unique label
	// number.
	GenIf(condAsm, stmtAsm string, n int) string
	GenIfElse(condAsm, stmtAsm, elseAsm string, n int) string
	GenWhile(condAsm, stmtAsm string, n int) string
	GenFor(initAsm, condAsm, loopAsm, stmtAsm string, n int) string
}
