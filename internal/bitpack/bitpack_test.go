package bitpack

import (
	"math/rand"
	"testing"
)

func TestBytesToBitsKnownPattern(t *testing.T) {
	bits := BytesToBits([]byte{0xA5}) // 1010 0101
	want := []bool{true, false, true, false, false, true, false, true}
	if len(bits) != len(want) {
		t.Fatalf("got %d bits, want %d", len(bits), len(want))
	}
	for i := range want {
		if bits[i] != want[i] {
			t.Errorf("bit %d = %v, want %v", i, bits[i], want[i])
		}
	}
}

func TestBitPackInvolution(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		n := r.Intn(64)
		b := make([]byte, n)
		r.Read(b)
		if got := BitsToBytes(BytesToBits(b)); string(got) != string(b) {
			t.Fatalf("round-trip mismatch for %v: got %v", b, got)
		}
	}
}

func TestWordPackInvolution(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for trial := 0; trial < 50; trial++ {
		n := r.Intn(16)
		w := make([]uint32, n)
		for i := range w {
			w[i] = r.Uint32()
		}
		got := BitsToU32s(U32sToBits(w))
		if len(got) != len(w) {
			t.Fatalf("length mismatch: got %d, want %d", len(got), len(w))
		}
		for i := range w {
			if got[i] != w[i] {
				t.Errorf("word %d = %#x, want %#x", i, got[i], w[i])
			}
		}
	}
}

func TestBitsToBytesDiscardsTrailingTail(t *testing.T) {
	bits := append(BytesToBits([]byte{0x42}), true, false, true)
	got := BitsToBytes(bits)
	if len(got) != 1 || got[0] != 0x42 {
		t.Fatalf("got %v, want [0x42]", got)
	}
}

func TestBitsToU32sDiscardsTrailingTail(t *testing.T) {
	bits := append(U32sToBits([]uint32{0xDEADBEEF}), true, true)
	got := BitsToU32s(bits)
	if len(got) != 1 || got[0] != 0xDEADBEEF {
		t.Fatalf("got %v, want [0xDEADBEEF]", got)
	}
}
