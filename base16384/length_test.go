package base16384

import (
	"testing"
)

func TestEncodeLen(t *testing.T) {
	// One row per remainder class, derived from r/2+1 data symbols
	// plus one marker when r > 0.
	cases := []struct {
		dataLen int
		want    int
	}{
		{0, 0},
		{1, 2},
		{2, 3},
		{3, 3},
		{4, 4},
		{5, 4},
		{6, 5},
		{7, 4},
		{8, 6},
		{14, 8},
		{32, 20},
		{1024000, 585144},
	}
	for _, c := range cases {
		if got := EncodeLen(c.dataLen); got != c.want {
			t.Errorf("EncodeLen(%d) = %d, want %d", c.dataLen, got, c.want)
		}
	}
}

func TestDecodeLenInvertsEncodeLen(t *testing.T) {
	for dataLen := 0; dataLen <= 200; dataLen++ {
		padding := uint16(0)
		if r := dataLen % 7; r != 0 {
			padding = PaddingOffset | uint16(r)
		}
		if got := DecodeLen(EncodeLen(dataLen), padding); got != dataLen {
			t.Errorf("DecodeLen(EncodeLen(%d)) = %d, want %d", dataLen, got, dataLen)
		}
	}
}

func TestDecodeLenZeroRemainderMarker(t *testing.T) {
	// The r=0 marker is never emitted by encoders but DecodeLen still
	// accepts it: it consumes one symbol and contributes no bytes.
	if got := DecodeLen(5, PaddingOffset); got != 7 {
		t.Errorf("DecodeLen(5, 0x3D00) = %d, want 7", got)
	}
}

func TestDecodeLenPanicsOnBadPadding(t *testing.T) {
	for _, padding := range []uint16{1, PaddingOffset - 1, PaddingOffset + 7, START} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("DecodeLen(8, 0x%04X) did not panic", padding)
				}
			}()
			DecodeLen(8, padding)
		}()
	}
}

func TestPadding(t *testing.T) {
	for r := uint16(0); r < 7; r++ {
		got, ok := Padding(PaddingOffset | r)
		if !ok || got != PaddingOffset|r {
			t.Errorf("Padding(0x%04X) = (0x%04X, %v), want marker", PaddingOffset|r, got, ok)
		}
	}
	for _, sym := range []uint16{0, START, START + 0x3FFE, PaddingOffset - 1, PaddingOffset + 7} {
		if _, ok := Padding(sym); ok {
			t.Errorf("Padding(0x%04X) classified a non-marker as padding", sym)
		}
	}
}

func TestEncodeUTF8Len(t *testing.T) {
	for dataLen := 0; dataLen <= 50; dataLen++ {
		if got, want := EncodeUTF8Len(dataLen), EncodeLen(dataLen)*3; got != want {
			t.Errorf("EncodeUTF8Len(%d) = %d, want %d", dataLen, got, want)
		}
	}
}

func TestDecodeUTF8LenPanicsOnUnalignedLength(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DecodeUTF8Len(7, 0) did not panic")
		}
	}()
	DecodeUTF8Len(7, 0)
}
