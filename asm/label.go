package asm

import (
	"cmp"
	"iter"
	"maps"
	"slices"
	"strconv"
)

// Label is a named address in a segment.
type Label struct {
	Name    string  `json:"name" yaml:"name"`
	Address int     `json:"address" yaml:"address"`
	Segment Segment `json:"segment" yaml:"segment"`
}

func (lb Label) String() string {
	return f("name: %v; segment: %v; address: %v", lb.Name, lb.Segment, strconv.Itoa(lb.Address))
}

// SymbolTable maps label names to their labels.
type SymbolTable struct {
	labels map[string]Label
}

// NewSymbolTable returns an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{labels: make(map[string]Label, 16)}
}

// Insert adds a label to the table.
func (st *SymbolTable) Insert(label Label) (err error) {
	if st.labels == nil {
		st.labels = make(map[string]Label, 16)
	}

	_, ok := st.labels[label.Name]
	if ok {
		err = ErrLabelDuplicate
		return
	}

	st.labels[label.Name] = label
	return
}

// Lookup finds a label by name.
func (st *SymbolTable) Lookup(name string) (label Label, ok bool) {
	label, ok = st.labels[name]
	return
}

// Len returns the number of labels in the table.
func (st *SymbolTable) Len() int {
	return len(st.labels)
}

// Labels iterates over the labels ordered by segment, address and name.
func (st *SymbolTable) Labels() iter.Seq[Label] {
	sorted := slices.SortedFunc(maps.Values(st.labels), func(a, b Label) int {
		return cmp.Or(
			cmp.Compare(a.Segment, b.Segment),
			cmp.Compare(a.Address, b.Address),
			cmp.Compare(a.Name, b.Name),
		)
	})

	return slices.Values(sorted)
}
