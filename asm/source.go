package asm

import (
	"io"
	"os"
	"strings"
)

// Source is assembly source text that can be read from the beginning once
// per pass.
type Source interface {
	Open() (io.ReadCloser, error)
}

// SourceFile is a Source read from a file.
type SourceFile string

func (sf SourceFile) Open() (io.ReadCloser, error) {
	return os.Open(string(sf))
}

// SourceText is a Source held in memory.
type SourceText string

func (st SourceText) Open() (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(string(st))), nil
}
