package base16384

// Decode decodes the Base16384 symbol stream data into a newly
// allocated byte buffer.
//
// Returns ErrInvalidLength if the stream does not split into 4-symbol
// groups plus an optional tail, or an InvalidCharacterError if a symbol
// lies outside the valid data code point range.
func Decode(data []uint16) ([]byte, error) {
	padding := uint16(0)
	if len(data) > 0 {
		padding, _ = Padding(data[len(data)-1])
	}

	body, remainder, err := splitTail(data, padding)
	if err != nil {
		return nil, err
	}

	result := make([]byte, 0, DecodeLen(len(data), padding))
	var group [groupSize]byte
	for i := 0; i < len(body); i += groupSymbols {
		if err := decodeGroup(body[i:i+groupSymbols], &group); err != nil {
			return nil, err
		}
		result = append(result, group[:]...)
	}
	if padding != 0 {
		decoded, err := decodeRemainder(remainder, &group, padding)
		if err != nil {
			return nil, err
		}
		result = append(result, decoded...)
	}
	return result, nil
}

// DecodeToSlice decodes the Base16384 symbol stream data into buf and
// returns the written prefix of buf. Errors are as for Decode.
//
// Panics if buf is shorter than DecodeLen for the stream.
func DecodeToSlice(data []uint16, buf []byte) ([]byte, error) {
	padding := uint16(0)
	if len(data) > 0 {
		padding, _ = Padding(data[len(data)-1])
	}

	body, remainder, err := splitTail(data, padding)
	if err != nil {
		return nil, err
	}
	if len(buf) < DecodeLen(len(data), padding) {
		panic("base16384: decode buffer is too small")
	}

	n := 0
	var group [groupSize]byte
	for i := 0; i < len(body); i += groupSymbols {
		if err := decodeGroup(body[i:i+groupSymbols], &group); err != nil {
			return nil, err
		}
		n += copy(buf[n:], group[:])
	}
	if padding != 0 {
		decoded, err := decodeRemainder(remainder, &group, padding)
		if err != nil {
			return nil, err
		}
		n += copy(buf[n:], decoded)
	}
	return buf[:n], nil
}

// splitTail separates the full-group body from the remainder data
// symbols. The returned remainder excludes the trailing marker itself.
func splitTail(data []uint16, padding uint16) (body, remainder []uint16, err error) {
	if padding != 0 {
		tail := tailSymbols(int(padding - PaddingOffset))
		if tail > len(data) {
			return nil, nil, ErrInvalidLength
		}
		body = data[:len(data)-tail]
		remainder = data[len(data)-tail : len(data)-1]
	} else {
		body = data
	}
	if len(body)%groupSymbols != 0 {
		return nil, nil, ErrInvalidLength
	}
	return body, remainder, nil
}

// isValidChar reports whether c is a data code point.
func isValidChar(c uint16) bool {
	return c >= START && c < START+0x3FFF
}

// decodeGroup unpacks 4 symbols back into 7 bytes, the inverse of
// encodeGroup. The reported index is the symbol's position within the
// group.
func decodeGroup(chunk []uint16, buf *[groupSize]byte) error {
	_ = chunk[3]

	for i, c := range chunk[:groupSymbols] {
		if !isValidChar(c) {
			return InvalidCharacterError{Index: i}
		}
	}
	b0 := chunk[0] - START
	b1 := chunk[1] - START
	b2 := chunk[2] - START
	b3 := chunk[3] - START

	buf[0] = byte(b0 >> 6)
	buf[1] = byte(b0&0x3F<<2 | b1>>12)
	buf[2] = byte(b1 >> 4)
	buf[3] = byte(b1&0x0F<<4 | b2>>10)
	buf[4] = byte(b2 >> 2)
	buf[5] = byte(b2&0x03<<6 | b3>>8)
	buf[6] = byte(b3)

	return nil
}

// decodeRemainder reconstructs the final partial group. Missing
// trailing positions are padded with START (the data-symbol zero) and
// only the first r bytes of the unpacked group carry data.
func decodeRemainder(remainder []uint16, buf *[groupSize]byte, padding uint16) ([]byte, error) {
	chunk := [groupSymbols]uint16{START, START, START, START}
	copy(chunk[:], remainder)
	if err := decodeGroup(chunk[:], buf); err != nil {
		return nil, err
	}
	return buf[:padding-PaddingOffset], nil
}
