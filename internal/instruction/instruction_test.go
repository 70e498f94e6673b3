package instruction

import (
	"errors"
	"testing"

	"github.com/pixelreel/pixelreel/internal/codec"
)

// frameSide is large enough that a frameSide x frameSide frame offers
// (frameSide/BlockSize)^2 = 13x13 = 169 instruction blocks, just over
// the 160 the header needs.
const frameSide = 65

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rec := Record{Mode: codec.Color, FinalFrame: 7, FinalUnit: 42, Block: 3}
	c, err := Encode(frameSide, frameSide, rec)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(c.Pix, frameSide, frameSide)
	if err != nil {
		t.Fatal(err)
	}
	if got != rec {
		t.Fatalf("got %+v, want %+v", got, rec)
	}
}

func TestEncodeDecodeBinaryMode(t *testing.T) {
	rec := Record{Mode: codec.Binary, FinalFrame: 1, FinalUnit: 0, Block: 1}
	c, err := Encode(frameSide, frameSide, rec)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(c.Pix, frameSide, frameSide)
	if err != nil {
		t.Fatal(err)
	}
	if got != rec {
		t.Fatalf("got %+v, want %+v", got, rec)
	}
}

func TestDecodeRejectsZeroBlock(t *testing.T) {
	rec := Record{Mode: codec.Color, FinalFrame: 1, FinalUnit: 0, Block: 0}
	c, err := Encode(frameSide, frameSide, rec)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(c.Pix, frameSide, frameSide); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("expected ErrCorrupt, got %v", err)
	}
}

func TestDecodeRejectsBadMarker(t *testing.T) {
	rec := Record{Mode: codec.Color, FinalFrame: 1, FinalUnit: 0, Block: 1}
	c, err := Encode(frameSide, frameSide, rec)
	if err != nil {
		t.Fatal(err)
	}
	// Corrupt the marker's high-order bit by setting every pixel of the
	// first (white) block to 64, below the 127 threshold, so it reads as 0.
	for row := 0; row < BlockSize; row++ {
		for col := 0; col < BlockSize; col++ {
			p := (row*frameSide + col) * 3
			c.Pix[p], c.Pix[p+1], c.Pix[p+2] = 64, 64, 64
		}
	}
	if _, err := Decode(c.Pix, frameSide, frameSide); err == nil {
		t.Fatal("expected decode to surface a corruption or mismatch error")
	}
}

func TestEncodeRejectsFrameTooSmallForHeader(t *testing.T) {
	rec := Record{Mode: codec.Color, FinalFrame: 1, FinalUnit: 0, Block: 1}
	if _, err := Encode(25, 25, rec); err == nil {
		t.Fatal("expected error: 25x25 frame holds only 5x5=25 instruction blocks, short of the 160 the header needs")
	}
}
