package base16384

import (
	"errors"
	"fmt"
)

// ErrInvalidLength is returned when the input to a decode function does
// not have a decodable shape: the symbol count left after stripping the
// tail is not a multiple of 4, a UTF-8 input's byte length is not a
// multiple of 3, or a trailing marker implies a tail longer than the
// input itself.
var ErrInvalidLength = errors.New("base16384: invalid length")

// InvalidCharacterError is returned when a decode input contains a
// value outside the valid data code point range.
//
// For the 16-bit surface, Index is the position of the offending symbol
// within its 4-symbol group. For the UTF-8 surface, it is the byte
// offset of the offending triplet within its 12-byte group.
type InvalidCharacterError struct {
	Index int
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("base16384: invalid character at index %d", e.Index)
}
