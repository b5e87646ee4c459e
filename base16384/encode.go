package base16384

// Encode encodes data as Base16384 into a newly allocated symbol
// buffer. The result holds one 16-bit code point per symbol and has
// length EncodeLen(len(data)).
func Encode(data []byte) []uint16 {
	result := make([]uint16, 0, EncodeLen(len(data)))

	full := len(data) / groupSize * groupSize
	var group [groupSymbols]uint16
	for i := 0; i < full; i += groupSize {
		encodeGroup(data[i:i+groupSize], &group)
		result = append(result, group[:]...)
	}
	if r := len(data) - full; r > 0 {
		result = append(result, encodeRemainder(data[full:], &group)...)
		result = append(result, PaddingOffset|uint16(r))
	}
	return result
}

// EncodeToSlice encodes data as Base16384 into buf and returns the
// written prefix of buf.
//
// Panics if buf is shorter than EncodeLen(len(data)).
func EncodeToSlice(data []byte, buf []uint16) []uint16 {
	if len(buf) < EncodeLen(len(data)) {
		panic("base16384: encode buffer is too small")
	}

	full := len(data) / groupSize * groupSize
	var group [groupSymbols]uint16
	n := 0
	for i := 0; i < full; i += groupSize {
		encodeGroup(data[i:i+groupSize], &group)
		n += copy(buf[n:], group[:])
	}
	if r := len(data) - full; r > 0 {
		n += copy(buf[n:], encodeRemainder(data[full:], &group))
		buf[n] = PaddingOffset | uint16(r)
		n++
	}
	return buf[:n]
}

// encodeGroup packs 7 bytes into 4 symbols, MSB-first: symbol i holds
// bits [14i, 14i+14) of the 56-bit group, biased by START.
func encodeGroup(chunk []byte, buf *[groupSymbols]uint16) {
	_ = chunk[6]

	buf[0] = START + (uint16(chunk[0])<<6 | uint16(chunk[1])>>2)
	buf[1] = START + (uint16(chunk[1]&0x03)<<12 | uint16(chunk[2])<<4 | uint16(chunk[3])>>4)
	buf[2] = START + (uint16(chunk[3]&0x0F)<<10 | uint16(chunk[4])<<2 | uint16(chunk[5])>>6)
	buf[3] = START + (uint16(chunk[5]&0x3F)<<8 | uint16(chunk[6]))
}

// encodeRemainder encodes 1-6 leftover bytes by zero-padding them to a
// full group and keeping only the symbols that carry data. The caller
// appends the padding marker.
func encodeRemainder(remainder []byte, buf *[groupSymbols]uint16) []uint16 {
	var chunk [groupSize]byte
	copy(chunk[:], remainder)
	encodeGroup(chunk[:], buf)
	return buf[:len(remainder)/2+1]
}
