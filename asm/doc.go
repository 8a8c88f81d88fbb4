// Package asm implements the two-pass assembler for the 1-address
// accumulator CPU.
//
// The first pass walks the source and builds a SymbolTable of every
// .label declaration, tracking the text and data address counters. The
// second pass walks the same source again, resolves operand labels through
// the completed table, and encodes every instruction and .number literal
// into 16-bit words, rendered as four lower-case hex digits.
//
// The assembled Program is written as a pair of raw memory images, one for
// the text segment (machine code) and one for the data segment.
package asm
