// Package image reads and writes raw memory images for the logic simulator.
//
// A raw memory image is a text file whose first line is the HEADER marker,
// followed by one hex word per line.
package image

import (
	"bufio"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"

	"github.com/ezrec/oneaddr/internal"
)

// HEADER marks a file as a raw memory image.
const HEADER = "v2.0 raw"

// Lines returns the lines of a raw memory image holding words.
func Lines(words iter.Seq[string]) iter.Seq[string] {
	return internal.IterSeqConcat(internal.IterSeqOf(HEADER), words)
}

// Writer writes a raw memory image to an output sink.
type Writer struct {
	w      *bufio.Writer
	closer io.Closer
}

// NewWriter creates a raw memory image writer.
func NewWriter(wc io.WriteCloser) *Writer {
	return &Writer{
		w:      bufio.NewWriter(wc),
		closer: wc,
	}
}

// Write writes the header and the words of the image.
func (iw *Writer) Write(words iter.Seq[string]) (err error) {
	for line := range Lines(words) {
		_, err = iw.w.WriteString(line + "\n")
		if err != nil {
			return
		}
	}

	return
}

// Close flushes buffered words and closes the sink. The sink is closed even
// if the flush fails.
func (iw *Writer) Close() (err error) {
	err = iw.w.Flush()
	cerr := iw.closer.Close()
	if err == nil {
		err = cerr
	}
	return
}

// Read parses a raw memory image. Words may be separated by any whitespace,
// and 'N*word' repeats word N times.
func Read(input io.Reader) (words []uint16, err error) {
	scanner := bufio.NewScanner(input)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)

	lineno := 0
	for scanner.Scan() {
		lineno++
		text := strings.TrimSpace(scanner.Text())

		if lineno == 1 {
			if text != HEADER {
				err = ErrHeaderMissing
				return
			}
			continue
		}

		for _, field := range strings.Fields(text) {
			if strings.HasPrefix(field, "#") {
				break
			}

			count := uint64(1)
			word := field
			n, value, ok := strings.Cut(field, "*")
			if ok {
				count, err = strconv.ParseUint(n, 10, 32)
				if err != nil {
					err = ErrWord{LineNo: lineno, Word: field}
					return
				}
				word = value
			}

			var value64 uint64
			value64, err = strconv.ParseUint(word, 16, 16)
			if err != nil {
				err = ErrWord{LineNo: lineno, Word: field}
				return
			}

			for range count {
				words = append(words, uint16(value64))
			}
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	if lineno == 0 {
		err = ErrHeaderMissing
	}

	return
}
