package asm

import (
	"maps"
	"slices"
	"strconv"
	"unicode"
)

// OperandKind is the operand policy of an instruction.
type OperandKind int

const (
	OPERAND_NONE      = OperandKind(0) // No operand.
	OPERAND_ADDRESS   = OperandKind(1) // Memory address or label.
	OPERAND_IMMEDIATE = OperandKind(2) // Immediate value or label.
)

// Encoder is the encoding rule of a single mnemonic.
type Encoder struct {
	Class   CodeClass
	AluOp   CodeAluOp
	Operand OperandKind
}

// Opcode returns the two hex digit opcode of the encoder.
func (enc Encoder) Opcode() string {
	return MakeCode(enc.Class, enc.AluOp, 0).Opcode()
}

// Encode encodes an instruction with its operand word, resolving labels
// through the symbol table.
func (enc Encoder) Encode(operand string, st *SymbolTable) (code Code, err error) {
	if enc.Operand == OPERAND_NONE {
		if len(operand) != 0 {
			err = ErrOpcodeExtraArgs
			return
		}
		code = MakeCode(enc.Class, enc.AluOp, 0)
		return
	}

	if len(operand) == 0 {
		err = ErrOperandMissing
		return
	}

	operand, err = resolve(operand, st)
	if err != nil {
		return
	}

	value, err := ParseOperand(operand)
	if err != nil {
		return
	}

	code = MakeCode(enc.Class, enc.AluOp, value)
	return
}

// resolve replaces a label reference with the decimal address of the label.
func resolve(operand string, st *SymbolTable) (value string, err error) {
	value = operand

	if !unicode.IsLetter(rune(operand[0])) {
		return
	}

	label, ok := st.Lookup(operand)
	if !ok {
		err = ErrLabelMissing(operand)
		return
	}

	value = strconv.Itoa(label.Address)
	return
}

// encoderMap is the fixed instruction set of the CPU.
var encoderMap = map[string]Encoder{
	"addi":   {OP_ALU_IMM, ALU_OP_ADD, OPERAND_IMMEDIATE},
	"subi":   {OP_ALU_IMM, ALU_OP_SUB, OPERAND_IMMEDIATE},
	"muli":   {OP_ALU_IMM, ALU_OP_MUL, OPERAND_IMMEDIATE},
	"divi":   {OP_ALU_IMM, ALU_OP_DIV, OPERAND_IMMEDIATE},
	"remi":   {OP_ALU_IMM, ALU_OP_REM, OPERAND_IMMEDIATE},
	"andi":   {OP_ALU_IMM, ALU_OP_AND, OPERAND_IMMEDIATE},
	"shifti": {OP_ALU_IMM, ALU_OP_SHIFT, OPERAND_IMMEDIATE},

	"add":   {OP_ALU_ADDR, ALU_OP_ADD, OPERAND_ADDRESS},
	"sub":   {OP_ALU_ADDR, ALU_OP_SUB, OPERAND_ADDRESS},
	"mul":   {OP_ALU_ADDR, ALU_OP_MUL, OPERAND_ADDRESS},
	"div":   {OP_ALU_ADDR, ALU_OP_DIV, OPERAND_ADDRESS},
	"rem":   {OP_ALU_ADDR, ALU_OP_REM, OPERAND_ADDRESS},
	"and":   {OP_ALU_ADDR, ALU_OP_AND, OPERAND_ADDRESS},
	"shift": {OP_ALU_ADDR, ALU_OP_SHIFT, OPERAND_ADDRESS},

	"clac": {OP_CLAC, 0, OPERAND_NONE},
	"stor": {OP_STOR, 0, OPERAND_ADDRESS},
	"beqz": {OP_BEQZ, 0, OPERAND_ADDRESS},
}

// LookupEncoder returns the encoder of a mnemonic.
func LookupEncoder(mnemonic string) (enc Encoder, ok bool) {
	enc, ok = encoderMap[mnemonic]
	return
}

// Mnemonics returns the sorted list of supported mnemonics.
func Mnemonics() []string {
	return slices.Sorted(maps.Keys(encoderMap))
}
