package base16384

import (
	"testing"
)

// "12345678" is the doc example: one full group plus a 1-byte
// remainder, encoding to "婌焳廔萷尀㴁".
var docExampleSymbols = []uint16{0x5A4C, 0x7133, 0x5ED4, 0x8437, 0x5C00, 0x3D01}

func TestEncodeDocExample(t *testing.T) {
	got := Encode([]byte("12345678"))
	if len(got) != len(docExampleSymbols) {
		t.Fatalf("Encode length = %d, want %d", len(got), len(docExampleSymbols))
	}
	for i, sym := range got {
		if sym != docExampleSymbols[i] {
			t.Errorf("symbol %d = 0x%04X, want 0x%04X", i, sym, docExampleSymbols[i])
		}
	}
}

func TestEncodeEmpty(t *testing.T) {
	if got := Encode(nil); len(got) != 0 {
		t.Errorf("Encode(nil) produced %d symbols, want 0", len(got))
	}
}

func TestEncodeFullGroupsEmitNoMarker(t *testing.T) {
	for _, n := range []int{7, 14, 70} {
		data := make([]byte, n)
		got := Encode(data)
		if len(got) != n/7*4 {
			t.Errorf("Encode of %d bytes produced %d symbols, want %d", n, len(got), n/7*4)
		}
		if _, ok := Padding(got[len(got)-1]); ok {
			t.Errorf("Encode of %d bytes ended in a padding marker", n)
		}
	}
}

func TestEncodeMarkerPerRemainder(t *testing.T) {
	for r := 1; r <= 6; r++ {
		data := make([]byte, 7+r)
		got := Encode(data)
		want := PaddingOffset | uint16(r)
		if last := got[len(got)-1]; last != want {
			t.Errorf("remainder %d: marker = 0x%04X, want 0x%04X", r, last, want)
		}
		if len(got) != 4+r/2+1+1 {
			t.Errorf("remainder %d: %d symbols, want %d", r, len(got), 4+r/2+1+1)
		}
	}
}

func TestEncodeToSlice(t *testing.T) {
	data := []byte("12345678")
	buf := make([]uint16, EncodeLen(len(data))+3)
	got := EncodeToSlice(data, buf)
	if len(got) != len(docExampleSymbols) {
		t.Fatalf("EncodeToSlice length = %d, want %d", len(got), len(docExampleSymbols))
	}
	for i, sym := range got {
		if sym != docExampleSymbols[i] {
			t.Errorf("symbol %d = 0x%04X, want 0x%04X", i, sym, docExampleSymbols[i])
		}
	}
}

func TestEncodeToSlicePanicsOnShortBuffer(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("EncodeToSlice with short buffer did not panic")
		}
	}()
	EncodeToSlice([]byte("12345678"), make([]uint16, 5))
}

func TestEncodeSymbolsInDataRange(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	got := Encode(data)
	for i, sym := range got[:len(got)-1] {
		if !isValidChar(sym) {
			t.Errorf("symbol %d = 0x%04X outside data range", i, sym)
		}
	}
}
