package asm

import (
	"strings"
)

// LineClass is the kind of a source line.
type LineClass int

//go:generate go tool stringer -linecomment -type=LineClass
const (
	LINE_BLANK       = LineClass(iota) // blank
	LINE_COMMENT                       // comment
	LINE_SEGMENT                       // segment
	LINE_LABEL                         // label
	LINE_NUMBER                        // number
	LINE_INSTRUCTION                   // instruction
)

// Line is a classified line of assembly source.
type Line struct {
	Class   LineClass
	Words   []string // Whitespace separated tokens of the line.
	Segment Segment  // Target of a LINE_SEGMENT.
}

// Operator returns the mnemonic or directive of the line.
func (ln Line) Operator() string {
	if len(ln.Words) == 0 {
		return ""
	}
	return ln.Words[0]
}

// Operand returns the single operand of the line, or "" if there is none.
func (ln Line) Operand() string {
	if len(ln.Words) < 2 {
		return ""
	}
	return ln.Words[1]
}

// Classify tokenizes a source line and determines its class.
func Classify(text string) (line Line, err error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		line.Class = LINE_BLANK
		return
	}

	line.Words = words

	if strings.HasPrefix(words[0], "#") {
		line.Class = LINE_COMMENT
		return
	}

	switch words[0] {
	case ".text", ".data":
		line.Class = LINE_SEGMENT
		if words[0] == ".data" {
			line.Segment = SEGMENT_DATA
		}
		if len(words) != 1 {
			err = ErrDirectiveSyntax
		}
	case ".label":
		line.Class = LINE_LABEL
		if len(words) != 2 {
			err = ErrLabelSyntax
		}
	case ".number":
		line.Class = LINE_NUMBER
		if len(words) != 2 {
			err = ErrDirectiveSyntax
		}
	default:
		line.Class = LINE_INSTRUCTION
		if len(words) > 2 {
			err = ErrOpcodeExtraArgs
		}
	}

	return
}

// Occupies reports whether the line takes a word of storage.
func (ln Line) Occupies() bool {
	return ln.Class == LINE_NUMBER || ln.Class == LINE_INSTRUCTION
}

// check verifies the line is allowed in the current segment.
func (ln Line) check(seg Segment) (err error) {
	switch {
	case seg == SEGMENT_DATA && ln.Class == LINE_INSTRUCTION:
		err = ErrDataSegment
	case seg == SEGMENT_TEXT && ln.Class == LINE_NUMBER:
		err = ErrTextSegment
	}
	return
}
