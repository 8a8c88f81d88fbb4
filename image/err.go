package image

import (
	"errors"
	"strconv"

	"github.com/ezrec/oneaddr/translate"
)

var f = translate.From

var (
	ErrHeaderMissing = errors.New(f("raw image header missing"))
	ErrOutputExists  = errors.New(f("assemble output files exist, assembling will replace these files"))
)

// ErrWord is returned for an unparsable image word.
type ErrWord struct {
	LineNo int
	Word   string
}

func (err ErrWord) Error() string {
	return f("line %v '%v' is not a hex word", strconv.Itoa(err.LineNo), err.Word)
}
