// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"io"
	"math"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	"github.com/ezrec/oneaddr/image"
)

// Assembler is a two pass assembler for the 1-address CPU.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.
}

// scan classifies each line of input, checks it against the current segment
// and hands it to visit. Errors from classification or visit are located
// with an ErrSyntax; I/O faults are returned as is.
func (asm *Assembler) scan(passNo int, input io.Reader, visit func(tr *Tracker, line Line, lineno int) error) (err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	tr := &Tracker{}

	lineno := 0
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			logrus.WithFields(logrus.Fields{
				"pass":    passNo,
				"segment": tr.Segment.String(),
				"address": tr.Address(),
			}).Debugf("%v: %v", lineno, text)
		}

		var line Line
		line, err = Classify(text)
		if err == nil {
			err = line.check(tr.Segment)
		}
		if err == nil {
			err = visit(tr, line, lineno)
		}
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: strings.TrimSpace(text), Err: err}
			return
		}
	}

	err = scanner.Err()
	return
}

// FirstPass builds the symbol table of input.
func (asm *Assembler) FirstPass(input io.Reader) (st *SymbolTable, err error) {
	st = NewSymbolTable()

	err = asm.scan(1, input, func(tr *Tracker, line Line, lineno int) (err error) {
		switch line.Class {
		case LINE_SEGMENT:
			tr.Switch(line.Segment)
		case LINE_LABEL:
			err = st.Insert(Label{
				Name:    line.Operand(),
				Address: tr.Address(),
				Segment: tr.Segment,
			})
		}
		if line.Occupies() {
			tr.Advance()
		}
		return
	})
	if err != nil {
		st = nil
		return
	}

	return
}

// SecondPass encodes input using the completed symbol table.
func (asm *Assembler) SecondPass(st *SymbolTable, input io.Reader) (prog *Program, err error) {
	prog = &Program{Symbols: st}

	err = asm.scan(2, input, func(tr *Tracker, line Line, lineno int) (err error) {
		if line.Class == LINE_SEGMENT {
			tr.Switch(line.Segment)
		}
		if !line.Occupies() {
			return
		}

		var word uint16

		switch line.Class {
		case LINE_NUMBER:
			var data int16
			data, err = ParseData(line.Operand())
			if err != nil {
				return
			}
			word = uint16(data)
		case LINE_INSTRUCTION:
			enc, ok := LookupEncoder(line.Operator())
			if !ok {
				err = ErrOperator(line.Operator())
				return
			}
			var code Code
			code, err = enc.Encode(line.Operand(), st)
			if err != nil {
				return
			}
			word = uint16(code)
		}

		op := Opcode{
			LineNo:  lineno,
			Address: tr.Advance(),
			Words:   line.Words,
			Word:    word,
		}

		if tr.Segment == SEGMENT_DATA {
			prog.Data = append(prog.Data, op)
		} else {
			prog.Text = append(prog.Text, op)
		}

		return
	})
	if err != nil {
		prog = nil
		return
	}

	return
}

// pass opens the source and runs a single pass over it.
func pass[T any](src Source, run func(input io.Reader) (T, error)) (result T, err error) {
	input, err := src.Open()
	if err != nil {
		return
	}
	defer input.Close()

	return run(input)
}

// Symbols runs the first pass over the source.
func (asm *Assembler) Symbols(src Source) (st *SymbolTable, err error) {
	return pass(src, asm.FirstPass)
}

// Parse runs both passes over the source. The source is read from the
// beginning for each pass.
func (asm *Assembler) Parse(src Source) (prog *Program, err error) {
	st, err := asm.Symbols(src)
	if err != nil {
		return
	}

	return pass(src, func(input io.Reader) (*Program, error) {
		return asm.SecondPass(st, input)
	})
}

// Assemble assembles the source into a machine code image and a data image.
// Both images are flushed and closed before Assemble returns, even on
// failure.
func (asm *Assembler) Assemble(src Source, code, data io.WriteCloser) (err error) {
	codeImage := image.NewWriter(code)
	dataImage := image.NewWriter(data)

	defer func() {
		cerr := multierror.Append(codeImage.Close(), dataImage.Close()).ErrorOrNil()
		if err == nil {
			err = cerr
		}
	}()

	prog, err := asm.Parse(src)
	if err != nil {
		return
	}

	err = codeImage.Write(prog.TextWords())
	if err != nil {
		return
	}

	err = dataImage.Write(prog.DataWords())
	if err != nil {
		return
	}

	return
}
