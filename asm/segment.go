package asm

// Segment is an address space of the 1-address CPU.
type Segment int

//go:generate go tool stringer -linecomment -type=Segment
const (
	SEGMENT_TEXT = Segment(0) // .text
	SEGMENT_DATA = Segment(1) // .data
)

// Tracker tracks the current segment and its address counters during a pass.
// The zero value starts in the text segment at address 0.
type Tracker struct {
	Segment Segment // Current segment.

	counter [2]int
}

// Address returns the next free address of the current segment.
func (tr *Tracker) Address() int {
	return tr.counter[tr.Segment]
}

// Switch changes the current segment.
func (tr *Tracker) Switch(seg Segment) {
	tr.Segment = seg
}

// Advance occupies one word of the current segment, returning its address.
func (tr *Tracker) Advance() (addr int) {
	addr = tr.counter[tr.Segment]
	tr.counter[tr.Segment]++
	return
}

// MarshalText encodes the segment as its directive name.
func (seg Segment) MarshalText() ([]byte, error) {
	return []byte(seg.String()), nil
}
