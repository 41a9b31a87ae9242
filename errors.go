package utf8chars

import (
	"fmt"

	"golang.org/x/text/encoding"
)

// ErrInvalidUTF8 is matched by every error this package returns for
// ill-formed input. It is the sentinel of golang.org/x/text/encoding, so
// errors.Is works the same for this package and the x/text transformers.
var ErrInvalidUTF8 = encoding.ErrInvalidUTF8

// previewLen caps the number of bytes kept in an InvalidUTF8Error.
const previewLen = 32

// InvalidUTF8Error reports the position of an ill-formed UTF-8 sequence.
type InvalidUTF8Error struct {
	// Offset is the byte offset of the first ill-formed sequence.
	Offset int

	// Preview holds up to 32 bytes of the input starting at Offset.
	Preview []byte
}

func newInvalidUTF8Error(offset int, tail []byte) *InvalidUTF8Error {
	if len(tail) > previewLen {
		tail = tail[:previewLen]
	}
	return &InvalidUTF8Error{Offset: offset, Preview: tail}
}

// Error implements the error interface.
func (e *InvalidUTF8Error) Error() string {
	return fmt.Sprintf("utf8chars: invalid UTF-8 sequence at offset %d: %x", e.Offset, e.Preview)
}

// Is reports whether target is ErrInvalidUTF8.
func (e *InvalidUTF8Error) Is(target error) bool {
	return target == ErrInvalidUTF8
}
