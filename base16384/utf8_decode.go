package base16384

// DecodeUTF8 decodes Base16384 UTF-8 text into a newly allocated byte
// buffer.
//
// Returns ErrInvalidLength if the text's byte length is not a non-zero
// multiple of 3 (the empty string decodes to an empty buffer) or the
// triplet stream does not split into 4-triplet groups plus an optional
// tail, or an InvalidCharacterError carrying the byte offset of a
// malformed or out-of-range triplet.
func DecodeUTF8(data string) ([]byte, error) {
	if len(data) == 0 {
		return []byte{}, nil
	}
	if len(data)%symbolUTF8Len != 0 {
		return nil, ErrInvalidLength
	}
	if len(data) < symbolUTF8Len {
		return nil, ErrInvalidLength
	}

	padding := lastPaddingUTF8(data)
	body, remainder, err := splitTailUTF8(data, padding)
	if err != nil {
		return nil, err
	}

	result := make([]byte, 0, DecodeUTF8Len(len(data), padding))
	var group [groupSize]byte
	for i := 0; i < len(body); i += groupUTF8Len {
		if err := decodeGroupUTF8(body[i:i+groupUTF8Len], &group); err != nil {
			return nil, err
		}
		result = append(result, group[:]...)
	}
	if padding != 0 {
		decoded, err := decodeRemainderUTF8(remainder, &group, padding)
		if err != nil {
			return nil, err
		}
		result = append(result, decoded...)
	}
	return result, nil
}

// DecodeUTF8ToSlice decodes Base16384 UTF-8 text into buf and returns
// the written prefix of buf. Errors are as for DecodeUTF8.
//
// Panics if buf is shorter than DecodeUTF8Len for the text.
func DecodeUTF8ToSlice(data string, buf []byte) ([]byte, error) {
	if len(data) == 0 {
		return buf[:0], nil
	}
	if len(data)%symbolUTF8Len != 0 {
		return nil, ErrInvalidLength
	}
	if len(data) < symbolUTF8Len {
		return nil, ErrInvalidLength
	}

	padding := lastPaddingUTF8(data)
	body, remainder, err := splitTailUTF8(data, padding)
	if err != nil {
		return nil, err
	}
	if len(buf) < DecodeUTF8Len(len(data), padding) {
		panic("base16384: decode buffer is too small")
	}

	n := 0
	var group [groupSize]byte
	for i := 0; i < len(body); i += groupUTF8Len {
		if err := decodeGroupUTF8(body[i:i+groupUTF8Len], &group); err != nil {
			return nil, err
		}
		n += copy(buf[n:], group[:])
	}
	if padding != 0 {
		decoded, err := decodeRemainderUTF8(remainder, &group, padding)
		if err != nil {
			return nil, err
		}
		n += copy(buf[n:], decoded)
	}
	return buf[:n], nil
}

// lastPaddingUTF8 classifies the final triplet of a non-empty input
// whose length is already known to be a multiple of 3.
func lastPaddingUTF8(data string) uint16 {
	last := [3]byte{data[len(data)-3], data[len(data)-2], data[len(data)-1]}
	padding, _ := PaddingUTF8(last)
	return padding
}

// splitTailUTF8 separates the full-group body from the remainder
// triplets. The returned remainder excludes the marker triplet itself.
func splitTailUTF8(data string, padding uint16) (body, remainder string, err error) {
	if padding != 0 {
		tail := tailSymbols(int(padding-PaddingOffset)) * symbolUTF8Len
		if tail > len(data) {
			return "", "", ErrInvalidLength
		}
		body = data[:len(data)-tail]
		remainder = data[len(data)-tail : len(data)-symbolUTF8Len]
	} else {
		body = data
	}
	if len(body)%groupUTF8Len != 0 {
		return "", "", ErrInvalidLength
	}
	return body, remainder, nil
}

// symbolAt reconstructs the code point held by the well-formed triplet
// at offset i, or reports that the triplet is malformed or out of the
// data code point range.
func symbolAt(chunk string, i int) (uint16, bool) {
	if chunk[i]&0xF0 != 0xE0 || chunk[i+1]&0xC0 != 0x80 || chunk[i+2]&0xC0 != 0x80 {
		return 0, false
	}
	c := uint16(chunk[i]&0x0F)<<12 | uint16(chunk[i+1]&0x3F)<<6 | uint16(chunk[i+2]&0x3F)
	if !isValidChar(c) {
		return 0, false
	}
	return c, true
}

// decodeGroupUTF8 unpacks 4 triplets back into 7 bytes without going
// through an intermediate symbol buffer. The reported index is the
// offending triplet's byte offset within the group.
func decodeGroupUTF8(chunk string, buf *[groupSize]byte) error {
	var chars [groupSymbols]uint16
	for i := 0; i < groupSymbols; i++ {
		c, ok := symbolAt(chunk, i*symbolUTF8Len)
		if !ok {
			return InvalidCharacterError{Index: i * symbolUTF8Len}
		}
		chars[i] = c
	}
	b0 := chars[0] - START
	b1 := chars[1] - START
	b2 := chars[2] - START
	b3 := chars[3] - START

	buf[0] = byte(b0 >> 6)
	buf[1] = byte(b0&0x3F<<2 | b1>>12)
	buf[2] = byte(b1 >> 4)
	buf[3] = byte(b1&0x0F<<4 | b2>>10)
	buf[4] = byte(b2 >> 2)
	buf[5] = byte(b2&0x03<<6 | b3>>8)
	buf[6] = byte(b3)

	return nil
}

// decodeRemainderUTF8 reconstructs the final partial group. Missing
// trailing triplets are padded with the START triplet (the data-symbol
// zero) and only the first r bytes of the unpacked group carry data.
func decodeRemainderUTF8(remainder string, buf *[groupSize]byte, padding uint16) ([]byte, error) {
	chunk := [groupUTF8Len]byte{
		startUTF8Hi, startUTF8Mid, startUTF8Lo,
		startUTF8Hi, startUTF8Mid, startUTF8Lo,
		startUTF8Hi, startUTF8Mid, startUTF8Lo,
		startUTF8Hi, startUTF8Mid, startUTF8Lo,
	}
	copy(chunk[:], remainder)
	if err := decodeGroupUTF8(string(chunk[:]), buf); err != nil {
		return nil, err
	}
	return buf[:padding-PaddingOffset], nil
}
