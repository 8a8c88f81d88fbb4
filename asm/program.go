package asm

import (
	"iter"
)

// Opcode is a word of assembled output with its source location.
type Opcode struct {
	LineNo  int      // Source line number.
	Address int      // Address within the segment.
	Words   []string // Source tokens.
	Word    uint16   // Encoded word.
}

// Hex returns the encoded word as a memory image word.
func (op Opcode) Hex() string {
	return HexWord(int64(op.Word), WORD_DIGITS)
}

// Program is the assembled text and data segments.
type Program struct {
	Symbols *SymbolTable
	Text    []Opcode
	Data    []Opcode
}

// TextWords iterates over the hex words of the text segment.
func (prog *Program) TextWords() iter.Seq[string] {
	return hexWords(prog.Text)
}

// DataWords iterates over the hex words of the data segment.
func (prog *Program) DataWords() iter.Seq[string] {
	return hexWords(prog.Data)
}

func hexWords(ops []Opcode) iter.Seq[string] {
	return func(yield func(word string) bool) {
		for _, op := range ops {
			if !yield(op.Hex()) {
				return
			}
		}
	}
}
