package asm

import (
	"errors"
	"strconv"

	"github.com/ezrec/oneaddr/translate"
)

var f = translate.From

var (
	// Line syntax errors
	ErrLabelSyntax     = errors.New(f("syntax is '.label name', nothing can follow name"))
	ErrDirectiveSyntax = errors.New(f("directive syntax"))
	ErrDataSegment     = errors.New(f("only .number directives allowed in .data segment"))
	ErrTextSegment     = errors.New(f(".number directive not allowed in .text segment"))
	ErrLabelDuplicate  = errors.New(f("duplicate label name"))

	// Instruction encoding errors
	ErrOperatorUnknown = errors.New(f("operator not found"))
	ErrOperandMissing  = errors.New(f("operand missing"))
	ErrOpcodeExtraArgs = errors.New(f("excessive arguments"))
)

// ErrLabelMissing is returned when an operand references an undeclared label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v not found", string(el))
}

// ErrOperator names an unknown mnemonic.
type ErrOperator string

func (eo ErrOperator) Error() string {
	return f("operator %v not found", string(eo))
}

func (eo ErrOperator) Is(err error) bool {
	return err == ErrOperatorUnknown
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("invalid input '%v', valid number must be specified", string(err))
}

// ErrRange is returned when a value does not fit its encoded field.
type ErrRange struct {
	Value int64
	Min   int64
	Max   int64
}

func (err ErrRange) Error() string {
	return f("number %v must be %v <= n <= %v",
		strconv.FormatInt(err.Value, 10),
		strconv.FormatInt(err.Min, 10),
		strconv.FormatInt(err.Max, 10))
}

// ErrSyntax locates an error in the source. Numbers in error messages are
// formatted before translation, so they are never digit grouped.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %v '%v' %v", strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
