package asm

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable(t *testing.T) {
	assert := assert.New(t)

	st := NewSymbolTable()
	assert.Equal(0, st.Len())

	assert.NoError(st.Insert(Label{Name: "start", Address: 0, Segment: SEGMENT_TEXT}))
	assert.NoError(st.Insert(Label{Name: "result", Address: 0, Segment: SEGMENT_DATA}))
	assert.ErrorIs(st.Insert(Label{Name: "start", Address: 4, Segment: SEGMENT_DATA}), ErrLabelDuplicate)
	assert.Equal(2, st.Len())

	label, ok := st.Lookup("start")
	assert.True(ok)
	assert.Equal(Label{Name: "start", Address: 0, Segment: SEGMENT_TEXT}, label)

	_, ok = st.Lookup("missing")
	assert.False(ok)
}

func TestSymbolTableZero(t *testing.T) {
	assert := assert.New(t)

	var st SymbolTable
	_, ok := st.Lookup("x")
	assert.False(ok)
	assert.NoError(st.Insert(Label{Name: "x"}))
	assert.Equal(1, st.Len())
}

func TestSymbolTableLabels(t *testing.T) {
	assert := assert.New(t)

	st := NewSymbolTable()
	for _, label := range []Label{
		{"zeta", 3, SEGMENT_DATA},
		{"loop", 2, SEGMENT_TEXT},
		{"alpha", 3, SEGMENT_DATA},
		{"start", 0, SEGMENT_TEXT},
	} {
		assert.NoError(st.Insert(label))
	}

	var names []string
	for label := range st.Labels() {
		names = append(names, label.Name)
	}
	assert.Equal([]string{"start", "loop", "alpha", "zeta"}, names)

	// Iteration order is stable.
	assert.Equal(slices.Collect(st.Labels()), slices.Collect(st.Labels()))
}

func TestLabel(t *testing.T) {
	assert := assert.New(t)

	a := Label{Name: "x", Address: 1, Segment: SEGMENT_TEXT}
	assert.Equal("name: x; segment: .text; address: 1", a.String())

	b := Label{Name: "y", Address: 12345, Segment: SEGMENT_DATA}
	assert.Equal("name: y; segment: .data; address: 12345", b.String())
}
