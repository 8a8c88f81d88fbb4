package asm

import (
	"strconv"
	"strings"
)

const (
	OPERAND_DIGITS = 2 // Hex digits of an instruction operand field.
	WORD_DIGITS    = 4 // Hex digits of a memory word.

	OPERAND_MIN = -128
	OPERAND_MAX = 127
	WORD_MIN    = -32768
	WORD_MAX    = 32767
)

// HexWord encodes value as a two's complement hex string of exactly digits
// hex digits. Values wider than the field are truncated to its low digits.
func HexWord(value int64, digits int) string {
	mask := uint64(1)<<(4*uint(digits)) - 1
	str := strconv.FormatUint(uint64(value)&mask, 16)
	if len(str) < digits {
		str = strings.Repeat("0", digits-len(str)) + str
	}
	return str
}

// parseValue parses a decimal integer and checks it against [min, max].
func parseValue(word string, min, max int64) (value int64, err error) {
	value, err = strconv.ParseInt(word, 10, 64)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	if value < min || value > max {
		err = ErrRange{Value: value, Min: min, Max: max}
		return
	}

	return
}

// ParseOperand parses an 8-bit signed instruction operand.
func ParseOperand(word string) (operand int8, err error) {
	value, err := parseValue(word, OPERAND_MIN, OPERAND_MAX)
	if err != nil {
		return
	}

	operand = int8(value)
	return
}

// ParseData parses a 16-bit signed data word.
func ParseData(word string) (data int16, err error) {
	value, err := parseValue(word, WORD_MIN, WORD_MAX)
	if err != nil {
		return
	}

	data = int16(value)
	return
}
