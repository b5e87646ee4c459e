package base16384

// EncodeUTF8 encodes data as Base16384 UTF-8 text. The result has
// length EncodeUTF8Len(len(data)) and is always valid UTF-8.
func EncodeUTF8(data []byte) string {
	buf := make([]byte, EncodeUTF8Len(len(data)))
	return string(EncodeUTF8ToSlice(data, buf))
}

// EncodeUTF8ToSlice encodes data as Base16384 UTF-8 text into buf and
// returns the written prefix of buf.
//
// Panics if buf is shorter than EncodeUTF8Len(len(data)).
func EncodeUTF8ToSlice(data []byte, buf []byte) []byte {
	if len(buf) < EncodeUTF8Len(len(data)) {
		panic("base16384: encode buffer is too small")
	}

	full := len(data) / groupSize * groupSize
	var group [groupUTF8Len]byte
	n := 0
	for i := 0; i < full; i += groupSize {
		encodeGroupUTF8(data[i:i+groupSize], &group)
		n += copy(buf[n:], group[:])
	}
	if r := len(data) - full; r > 0 {
		n += copy(buf[n:], encodeRemainderUTF8(data[full:], &group))
		buf[n] = paddingUTF8Hi
		buf[n+1] = paddingUTF8Mid
		buf[n+2] = paddingUTF8Lo | byte(r)
		n += symbolUTF8Len
	}
	return buf[:n]
}

// encodeGroupUTF8 packs 7 bytes straight into 4 UTF-8 triplets. Each
// symbol's 14 payload bits split into 8 high bits, biased by startHi
// and spread over the triplet's first two bytes, and 6 low bits in the
// third byte.
func encodeGroupUTF8(chunk []byte, buf *[groupUTF8Len]byte) {
	_ = chunk[6]

	hi := uint16(chunk[0]) + startHi
	buf[0] = 0xE0 | byte(hi>>6)
	buf[1] = 0x80 | byte(hi&0x3F)
	buf[2] = 0x80 | chunk[1]>>2

	hi = uint16(chunk[1]&0x03<<6|chunk[2]>>2) + startHi
	buf[3] = 0xE0 | byte(hi>>6)
	buf[4] = 0x80 | byte(hi&0x3F)
	buf[5] = 0x80 | chunk[2]&0x03<<4 | chunk[3]>>4

	hi = uint16(chunk[3]&0x0F<<4|chunk[4]>>4) + startHi
	buf[6] = 0xE0 | byte(hi>>6)
	buf[7] = 0x80 | byte(hi&0x3F)
	buf[8] = 0x80 | chunk[4]&0x0F<<2 | chunk[5]>>6

	hi = uint16(chunk[5]&0x3F<<2|chunk[6]>>6) + startHi
	buf[9] = 0xE0 | byte(hi>>6)
	buf[10] = 0x80 | byte(hi&0x3F)
	buf[11] = 0x80 | chunk[6]&0x3F
}

// encodeRemainderUTF8 encodes 1-6 leftover bytes by zero-padding them
// to a full group and keeping only the triplets that carry data. The
// caller appends the padding marker triplet.
func encodeRemainderUTF8(remainder []byte, buf *[groupUTF8Len]byte) []byte {
	var chunk [groupSize]byte
	copy(chunk[:], remainder)
	encodeGroupUTF8(chunk[:], buf)
	return buf[:(len(remainder)/2+1)*symbolUTF8Len]
}
