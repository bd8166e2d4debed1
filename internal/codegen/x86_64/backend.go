// Package x86_64 implements codegen.Backend for Intel-syntax x86-64
// assembly, grounded on the reference compiler's architecture/x86_64
// module: rax/rdi as the canonical result/argument registers, rbp/rsp
// as frame base and working stack pointer, and hardware push/pop for
// the expression stack.
package x86_64

import "fmt"

// Backend emits Intel-syntax x86-64 assembly.
type Backend struct{}

func New() *Backend { return &Backend{} }

func (*Backend) ProgramPrologue() string { return ".intel_syntax noprefix\n" }
func (*Backend) MainFunc() string        { return ".globl main\nmain:\n" }

func (*Backend) MemoryAllocate(frameBytes int) string {
	return push("rbp") + mov("rbp", "rsp") + sub("rsp", fmt.Sprintf("%d", frameBytes))
}

func (*Backend) ProgramEpilogue() string {
	return mov("rsp", "rbp") + pop("rbp") + ret()
}

func (*Backend) StmtEpilogue() string { return pop("rax") }

func (*Backend) PushInt(n uint64) string { return push(fmt.Sprintf("%d", n)) }

func (*Backend) GenVal(offset int) string {
	return mov("rax", "rbp") + sub("rax", fmt.Sprintf("%d", offset)) + push("rax")
}

func (*Backend) PopVal() string {
	return pop("rax") + mov("rax", "[rax]") + push("rax")
}

func (*Backend) PopLvar() string {
	return pop("rdi") + pop("rax") + mov("[rax]", "rdi") + push("rdi")
}

func (*Backend) PopArg() string    { return pop("rdi") + pop("rax") }
func (*Backend) PushResult() string { return push("rax") }

func (*Backend) AddArg() string { return "\tadd rax, rdi\n" }
func (*Backend) SubArg() string { return "\tsub rax, rdi\n" }
func (*Backend) MulArg() string { return "\timul rax, rdi\n" }
func (*Backend) DivArg() string { return "\tcqo\n\tidiv rdi\n" }

func (*Backend) EqArg() string          { return cmpSet("sete") }
func (*Backend) NeqArg() string         { return cmpSet("setne") }
func (*Backend) LessArg() string        { return cmpSet("setl") }
func (*Backend) LessOrEqArg() string    { return cmpSet("setle") }

func (*Backend) GenReturn() string {
	return pop("rax") + mov("rsp", "rbp") + pop("rbp") + ret()
}

func (b *Backend) GenIf(condAsm, stmtAsm string, n int) string {
	return condAsm + pop("rax") + cmpZero("rax") + je(lend(n)) + stmtAsm + label(lend(n))
}

func (b *Backend) GenIfElse(condAsm, stmtAsm, elseAsm string, n int) string {
	return condAsm + pop("rax") + cmpZero("rax") + je(lelse(n)) +
		stmtAsm + jmp(lend(n)) +
		label(lelse(n)) + elseAsm + label(lend(n))
}

func (b *Backend) GenWhile(condAsm, stmtAsm string, n int) string {
	return label(lbegin(n)) + condAsm + pop("rax") + cmpZero("rax") + je(lend(n)) +
		stmtAsm + jmp(lbegin(n)) + label(lend(n))
}

func (b *Backend) GenFor(initAsm, condAsm, loopAsm, stmtAsm string, n int) string {
	return initAsm + label(lbegin(n)) + condAsm + pop("rax") + cmpZero("rax") + je(lend(n)) +
		stmtAsm + loopAsm + jmp(lbegin(n)) + label(lend(n))
}

func push(operand string) string          { return fmt.Sprintf("\tpush %s\n", operand) }
func pop(operand string) string           { return fmt.Sprintf("\tpop %s\n", operand) }
func mov(dst, src string) string          { return fmt.Sprintf("\tmov %s, %s\n", dst, src) }
func sub(dst, operand string) string      { return fmt.Sprintf("\tsub %s, %s\n", dst, operand) }
func ret() string                         { return "\tret\n" }
func cmpZero(reg string) string           { return fmt.Sprintf("\tcmp %s, 0\n", reg) }

func cmpSet(setIns string) string {
	return fmt.Sprintf("\tcmp rax, rdi\n\t%s al\n\tmovzb rax, al\n", setIns)
}

func lbegin(n int) string { return fmt.Sprintf(".Lbegin%03d", n) }
func lend(n int) string   { return fmt.Sprintf(".Lend%03d", n) }
func lelse(n int) string  { return fmt.Sprintf(".Lelse%03d", n) }

func label(name string) string { return name + ":\n" }
func je(name string) string    { return fmt.Sprintf("\tje %s\n", name) }
func jmp(name string) string   { return fmt.Sprintf("\tjmp %s\n", name) }
