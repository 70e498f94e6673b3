package worker

import (
	"bytes"
	"testing"

	"github.com/pixelreel/pixelreel/internal/canvas"
	"github.com/pixelreel/pixelreel/internal/codec"
	"github.com/pixelreel/pixelreel/internal/framecodec"
)

func TestEncodeChunkExactFillProducesNoEmptyTrailingFrame(t *testing.T) {
	// block=2, 4x4 -> 4 blocks/frame -> 12 bytes/frame in Color mode.
	chunk := codec.Payload{Mode: codec.Color, Bytes: make([]byte, 24)}
	frames, err := EncodeChunk(2, 4, 4, chunk)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
}

func TestEncodeChunkPartialLastFrame(t *testing.T) {
	// 13 bytes, 12/frame -> 1 full frame, then a final frame carrying a
	// single zero-padded block for the trailing byte. Must not hang.
	want := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13}
	chunk := codec.Payload{Mode: codec.Color, Bytes: append([]byte(nil), want...)}
	frames, err := EncodeChunk(2, 4, 4, chunk)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}

	var got []byte
	for i, f := range frames {
		c, err := canvas.Adopt(f.Pix, f.Width, f.Height, 2, false)
		if err != nil {
			t.Fatal(err)
		}
		isFinal := i == len(frames)-1
		finalUnit := 0
		if isFinal {
			finalUnit = 1
		}
		unit, err := framecodec.Read(c, codec.Color, isFinal, finalUnit)
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, unit.Bytes...)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestEncodeChunkColorPayloadNotMultipleOfThreeDoesNotHang(t *testing.T) {
	for _, n := range []int{1, 2, 4, 5} {
		chunk := codec.Payload{Mode: codec.Color, Bytes: make([]byte, n)}
		frames, err := EncodeChunk(2, 4, 4, chunk)
		if err != nil {
			t.Fatalf("len=%d: %v", n, err)
		}
		if len(frames) != 1 {
			t.Fatalf("len=%d: got %d frames, want 1", n, len(frames))
		}
	}
}

func TestEncodeChunkEmptyProducesNoFrames(t *testing.T) {
	chunk := codec.Payload{Mode: codec.Color, Bytes: nil}
	frames, err := EncodeChunk(2, 4, 4, chunk)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 0 {
		t.Fatalf("got %d frames, want 0", len(frames))
	}
}
