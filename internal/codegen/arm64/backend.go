// Package arm64 implements codegen.Backend for AArch64 assembly,
// grounded on the reference compiler's architecture/aarch64 module.
//
// The expression stack uses x9 as an explicit stack pointer, kept
// disjoint from the hardware sp: every push/pop is an explicit
// "sub x9, x9, #8" / str / ldr / "add x9, x9, #8" sequence rather than
// the hardware stack instructions x86-64 gets for free. This lets the
// generator's stack-machine discipline behave identically on both
// targets without touching AArch64's stricter sp alignment rules on
// every expression push.
package arm64

import "fmt"

// Backend emits AArch64 assembly.
type Backend struct{}

func New() *Backend { return &Backend{} }

func (*Backend) ProgramPrologue() string { return ".text\n" }
func (*Backend) MainFunc() string        { return ".globl _main\n_main:\n" }

func (*Backend) MemoryAllocate(frameBytes int) string {
	return mov("x8", "sp") +
		mov("x9", "sp") +
		push("x8") +
		mov("x8", "x9") +
		sub("x9", "x9", imm(frameBytes))
}

func (*Backend) ProgramEpilogue() string {
	return mov("x9", "x8") + pop("x8") + ret()
}

func (*Backend) StmtEpilogue() string { return pop("x0") }

func (*Backend) PushInt(n uint64) string { return push(fmt.Sprintf("#%d", n)) }

func (*Backend) GenVal(offset int) string {
	return mov("x0", "x8") + sub("x0", "x0", imm(offset)) + push("x0")
}

func (*Backend) PopVal() string {
	return pop("x0") + ldr("x0", "[x0]") + push("x0")
}

func (*Backend) PopLvar() string {
	return pop("x1") + pop("x0") + str("x1", "[x0]") + push("x1")
}

func (*Backend) PopArg() string     { return pop("x1") + pop("x0") }
func (*Backend) PushResult() string { return push("x0") }

func (*Backend) AddArg() string { return "\tadd x0, x0, x1\n" }
func (*Backend) SubArg() string { return "\tsub x0, x0, x1\n" }
func (*Backend) MulArg() string { return "\tmul x0, x0, x1\n" }

// DivArg uses signed division (sdiv), matching the backend-abstraction
// contract's "div (signed division)" for both targets. The reference
// AArch64 module uses udiv; see DESIGN.md for this deviation.
func (*Backend) DivArg() string { return "\tsdiv x0, x0, x1\n" }

func (*Backend) EqArg() string       { return cmpSet("EQ") }
func (*Backend) NeqArg() string      { return cmpSet("NE") }
func (*Backend) LessArg() string     { return cmpSet("LT") }
func (*Backend) LessOrEqArg() string { return cmpSet("LE") }

func (*Backend) GenReturn() string {
	return pop("x0") + mov("x9", "x8") + pop("x8") + ret()
}

func (b *Backend) GenIf(condAsm, stmtAsm string, n int) string {
	return condAsm + pop("x0") + cmpZero("x0") + bEQ(lend(n)) + stmtAsm + label(lend(n))
}

func (*Backend) GenIfElse(condAsm, stmtAsm, elseAsm string, n int) string {
	return condAsm + pop("x0") + cmpZero("x0") + bEQ(lelse(n)) +
		stmtAsm + b(lend(n)) +
		label(lelse(n)) + elseAsm + label(lend(n))
}

func (*Backend) GenWhile(condAsm, stmtAsm string, n int) string {
	return label(lbegin(n)) + condAsm + pop("x0") + cmpZero("x0") + bEQ(lend(n)) +
		stmtAsm + b(lbegin(n)) + label(lend(n))
}

func (*Backend) GenFor(initAsm, condAsm, loopAsm, stmtAsm string, n int) string {
	return initAsm + label(lbegin(n)) + condAsm + pop("x0") + cmpZero("x0") + bEQ(lend(n)) +
		stmtAsm + loopAsm + b(lbegin(n)) + label(lend(n))
}

func imm(n int) string { return fmt.Sprintf("#%d", n) }

func push(operand string) string {
	return sub("x9", "x9", "#8") + mov("x1", operand) + str("x1", "[x9]")
}

func pop(rd string) string {
	return ldr(rd, "[x9]") + add("x9", "x9", "#8")
}

func mov(dst, src string) string          { return fmt.Sprintf("\tmov %s, %s\n", dst, src) }
func add(dst, lhs, rhs string) string     { return fmt.Sprintf("\tadd %s, %s, %s\n", dst, lhs, rhs) }
func sub(dst, lhs, rhs string) string     { return fmt.Sprintf("\tsub %s, %s, %s\n", dst, lhs, rhs) }
func ldr(dst, addr string) string         { return fmt.Sprintf("\tldr %s, %s\n", dst, addr) }
func str(src, addr string) string         { return fmt.Sprintf("\tstr %s, %s\n", src, addr) }
func ret() string                         { return "\tret\n" }
func cmpZero(reg string) string           { return fmt.Sprintf("\tcmp %s, #0\n", reg) }

func cmpSet(cond string) string {
	return fmt.Sprintf("\tcmp x0, x1\n\tcset x0, %s\n", cond)
}

func lbegin(n int) string { return fmt.Sprintf("Lbegin%03d", n) }
func lend(n int) string   { return fmt.Sprintf("Lend%03d", n) }
func lelse(n int) string  { return fmt.Sprintf("Lelse%03d", n) }

func label(name string) string { return name + ":\n" }
func b(name string) string     { return fmt.Sprintf("\tb %s\n", name) }
func bEQ(name string) string   { return fmt.Sprintf("\tb.EQ %s\n", name) }
