package asm

import (
	"fmt"
)

// CodeClass is the operation class, the high hex digit of an instruction.
type CodeClass int

const (
	OP_ALU_IMM  = CodeClass(1) // Immediate ALU operation.
	OP_ALU_ADDR = CodeClass(2) // ALU operation with memory operand.
	OP_CLAC     = CodeClass(3) // Clear accumulator.
	OP_STOR     = CodeClass(4) // Store accumulator.
	OP_BEQZ     = CodeClass(5) // Branch if accumulator is zero.
)

// CodeAluOp is the ALU selector, the second hex digit of an instruction.
type CodeAluOp int

//go:generate go tool stringer -linecomment -type=CodeAluOp
const (
	ALU_OP_ADD   = CodeAluOp(0) // add
	ALU_OP_SUB   = CodeAluOp(1) // sub
	ALU_OP_MUL   = CodeAluOp(2) // mul
	ALU_OP_DIV   = CodeAluOp(3) // div
	ALU_OP_REM   = CodeAluOp(4) // rem
	ALU_OP_AND   = CodeAluOp(5) // and
	ALU_OP_SHIFT = CodeAluOp(6) // shift
)

// Valid reports whether op selects an ALU operation.
func (op CodeAluOp) Valid() bool {
	return op >= ALU_OP_ADD && op <= ALU_OP_SHIFT
}

// Code is a single 16-bit instruction word.
type Code uint16

// MakeCode creates an instruction from its class, ALU selector and operand.
func MakeCode(class CodeClass, op CodeAluOp, operand int8) Code {
	return Code((uint16(class)&0xf)<<12 | (uint16(op)&0xf)<<8 | uint16(uint8(operand)))
}

// Class returns the operation class of the instruction.
func (code Code) Class() CodeClass {
	return CodeClass((code >> 12) & 0xf)
}

// AluOp returns the ALU selector of the instruction.
func (code Code) AluOp() CodeAluOp {
	return CodeAluOp((code >> 8) & 0xf)
}

// Operand returns the signed operand field of the instruction.
func (code Code) Operand() int8 {
	return int8(code & 0xff)
}

// Opcode returns the two hex digit opcode of the instruction.
func (code Code) Opcode() string {
	return HexWord(int64(code>>8), 2)
}

// Hex returns the instruction as a memory image word.
func (code Code) Hex() string {
	return HexWord(int64(code), WORD_DIGITS)
}

// Mnemonic returns the assembly mnemonic of the instruction, or "" if the
// instruction does not decode.
func (code Code) Mnemonic() string {
	op := code.AluOp()
	switch code.Class() {
	case OP_ALU_IMM:
		if op.Valid() {
			return op.String() + "i"
		}
	case OP_ALU_ADDR:
		if op.Valid() {
			return op.String()
		}
	case OP_CLAC:
		if code == MakeCode(OP_CLAC, 0, 0) {
			return "clac"
		}
	case OP_STOR:
		if op == 0 {
			return "stor"
		}
	case OP_BEQZ:
		if op == 0 {
			return "beqz"
		}
	}

	return ""
}

// String returns the assembly language representation of the instruction.
func (code Code) String() string {
	mnemonic := code.Mnemonic()
	switch {
	case mnemonic == "":
		return fmt.Sprintf(".word 0x%04x", uint16(code))
	case code.Class() == OP_CLAC:
		return mnemonic
	default:
		return fmt.Sprintf("%v %d", mnemonic, code.Operand())
	}
}
