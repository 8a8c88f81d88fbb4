package asm

import (
	"bytes"
	"errors"
	"io"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exampleProgram = []string{
	".text",
	".label start",
	"addi 5",
	"stor result",
	"beqz start",
	".data",
	".label result",
	".number 0",
}

func source(lines ...string) Source {
	return SourceText(strings.Join(lines, "\n"))
}

// sink records writes and whether it was closed.
type sink struct {
	bytes.Buffer
	closed bool
}

func (s *sink) Close() error {
	s.closed = true
	return nil
}

func TestAssemblerFirstPass(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	st, err := asm.FirstPass(strings.NewReader(strings.Join(exampleProgram, "\n")))
	require.NoError(t, err)

	assert.Equal(2, st.Len())
	start, ok := st.Lookup("start")
	assert.True(ok)
	assert.Equal(Label{Name: "start", Address: 0, Segment: SEGMENT_TEXT}, start)
	result, ok := st.Lookup("result")
	assert.True(ok)
	assert.Equal(Label{Name: "result", Address: 0, Segment: SEGMENT_DATA}, result)
}

func TestAssemblerExample(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(source(exampleProgram...))
	require.NoError(t, err)

	assert.Equal([]string{"1005", "4000", "5000"}, slices.Collect(prog.TextWords()))
	assert.Equal([]string{"0000"}, slices.Collect(prog.DataWords()))

	expected := []Opcode{
		{3, 0, []string{"addi", "5"}, 0x1005},
		{4, 1, []string{"stor", "result"}, 0x4000},
		{5, 2, []string{"beqz", "start"}, 0x5000},
	}
	assert.Equal(expected, prog.Text)
	assert.Equal([]Opcode{{8, 0, []string{".number", "0"}, 0x0000}}, prog.Data)
}

func TestAssemblerImmediateShift(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(source("shifti 1", "shifti -1", "shift 1"))
	require.NoError(t, err)

	assert.Equal([]string{"1601", "16ff", "2601"}, slices.Collect(prog.TextWords()))
	assert.Equal("shifti 1", Code(prog.Text[0].Word).String())
}

func TestAssemblerLongLine(t *testing.T) {
	assert := assert.New(t)

	comment := "# " + strings.Repeat("x", 70000)

	asm := &Assembler{}
	prog, err := asm.Parse(source(comment, "addi 1", ".label "+strings.Repeat("l", 70000), "beqz 1"))
	require.NoError(t, err)

	assert.Equal([]string{"1001", "5001"}, slices.Collect(prog.TextWords()))
	assert.Equal(1, prog.Symbols.Len())

	_, err = asm.Parse(source(comment, "stor "+strings.Repeat("m", 70000)))
	var serr ErrSyntax
	if assert.True(errors.As(err, &serr)) {
		assert.Equal(2, serr.LineNo)
	}
	assert.ErrorIs(err, ErrLabelMissing(strings.Repeat("m", 70000)))
}

func TestAssemblerAssemble(t *testing.T) {
	assert := assert.New(t)

	code := &sink{}
	data := &sink{}

	asm := &Assembler{}
	err := asm.Assemble(source(exampleProgram...), code, data)
	require.NoError(t, err)

	assert.True(code.closed)
	assert.True(data.closed)
	assert.Equal("v2.0 raw\n1005\n4000\n5000\n", code.String())
	assert.Equal("v2.0 raw\n0000\n", data.String())
}

func TestAssemblerAssembleFailureCloses(t *testing.T) {
	assert := assert.New(t)

	code := &sink{}
	data := &sink{}

	asm := &Assembler{}
	err := asm.Assemble(source("addi 5", "stor missing"), code, data)
	assert.Error(err)

	var serr ErrSyntax
	assert.True(errors.As(err, &serr))
	assert.Equal(2, serr.LineNo)
	assert.Equal(ErrLabelMissing("missing"), serr.Err)

	assert.True(code.closed)
	assert.True(data.closed)
}

func TestAssemblerDeterministic(t *testing.T) {
	assert := assert.New(t)

	program := []string{
		".label a", "addi 1",
		".label b", "add a",
		".label c", "sub b",
		".label d", "mul c",
		".label e", "div d",
		".label f", "rem e",
		"and f", "shift x", "beqz a",
		".data",
		".label x", ".number -1",
		".label y", ".number 32767",
	}

	var first, firstData string
	for n := range 8 {
		code := &sink{}
		data := &sink{}
		err := (&Assembler{}).Assemble(source(program...), code, data)
		require.NoError(t, err)
		if n == 0 {
			first, firstData = code.String(), data.String()
			continue
		}
		assert.Equal(first, code.String())
		assert.Equal(firstData, data.String())
	}

	assert.Equal("v2.0 raw\n1001\n2000\n2101\n2202\n2303\n2404\n2505\n2600\n5000\n", first)
	assert.Equal("v2.0 raw\nffff\n7fff\n", firstData)
}

func TestAssemblerInertLines(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(source(
		"   ",
		"# comment",
		"#tight",
		"addi 1",
		"\t",
		".label here",
		"# stor here",
		"beqz here",
	))
	require.NoError(t, err)

	assert.Equal([]string{"1001", "5001"}, slices.Collect(prog.TextWords()))
	assert.Empty(prog.Data)

	here, ok := prog.Symbols.Lookup("here")
	assert.True(ok)
	assert.Equal(1, here.Address)
}

func TestAssemblerForwardReference(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(source(
		"beqz done",
		"addi 1",
		"stor counter",
		".label done",
		"clac",
		".data",
		".number 7",
		".label counter",
		".number 0",
		".text",
		"add counter",
	))
	require.NoError(t, err)

	assert.Equal([]string{"5003", "1001", "4001", "3000", "2001"}, slices.Collect(prog.TextWords()))
	assert.Equal([]string{"0007", "0000"}, slices.Collect(prog.DataWords()))
	assert.Equal(4, prog.Text[4].Address)
	assert.Equal(11, prog.Text[4].LineNo)
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name   string
		lines  []string
		lineno int
		err    error
	}{
		{"duplicate text", []string{".label a", "clac", ".label a"}, 3, ErrLabelDuplicate},
		{"duplicate across segments", []string{".label a", ".data", ".label a"}, 3, ErrLabelDuplicate},
		{"label syntax", []string{"clac", ".label"}, 2, ErrLabelSyntax},
		{"label extra", []string{".label a b"}, 1, ErrLabelSyntax},
		{"instruction in data", []string{".data", ".number 1", "addi 1"}, 3, ErrDataSegment},
		{"number in text", []string{".number 1"}, 1, ErrTextSegment},
		{"label missing", []string{"clac", "", "stor nowhere"}, 3, ErrLabelMissing("nowhere")},
		{"unknown operator", []string{"clac", "jump 3"}, 2, ErrOperator("jump")},
		{"operand range", []string{"addi 128"}, 1, ErrRange{Value: 128, Min: -128, Max: 127}},
		{"data range", []string{".data", ".number 32768"}, 2, ErrRange{Value: 32768, Min: -32768, Max: 32767}},
		{"data nan", []string{".data", ".number one"}, 2, ErrParseNumber("one")},
		{"operand nan", []string{"addi 1z"}, 1, ErrParseNumber("1z")},
		{"operand missing", []string{"stor"}, 1, ErrOperandMissing},
		{"extra args", []string{"addi 1 2"}, 1, ErrOpcodeExtraArgs},
		{"segment syntax", []string{".text now"}, 1, ErrDirectiveSyntax},
	}

	for _, entry := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(source(entry.lines...))
		assert.Nil(prog, entry.name)

		var serr ErrSyntax
		if assert.True(errors.As(err, &serr), entry.name) {
			assert.Equal(entry.lineno, serr.LineNo, entry.name)
			assert.Equal(entry.err, serr.Err, entry.name)
		}
		assert.ErrorIs(err, entry.err, entry.name)
	}
}

func TestAssemblerUnknownOperatorPassTwo(t *testing.T) {
	assert := assert.New(t)

	input := "bogus 1\n.label after\nclac\n"

	asm := &Assembler{}
	st, err := asm.FirstPass(strings.NewReader(input))
	require.NoError(t, err)
	after, ok := st.Lookup("after")
	assert.True(ok)
	assert.Equal(1, after.Address)

	_, err = asm.SecondPass(st, strings.NewReader(input))
	assert.ErrorIs(err, ErrOperatorUnknown)
}

func TestAssemblerVerbose(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{Verbose: true}
	prog, err := asm.Parse(source(exampleProgram...))
	assert.NoError(err)
	assert.Len(prog.Text, 3)
}

type failingSource struct{}

var errOpen = errors.New("open failed")

func (failingSource) Open() (io.ReadCloser, error) {
	return nil, errOpen
}

func TestAssemblerSourceError(t *testing.T) {
	assert := assert.New(t)

	code := &sink{}
	data := &sink{}
	err := (&Assembler{}).Assemble(failingSource{}, code, data)
	assert.ErrorIs(err, errOpen)

	var serr ErrSyntax
	assert.False(errors.As(err, &serr))
	assert.True(code.closed)
	assert.True(data.closed)
}
