// Package block writes or reads one payload unit into or out of a single
// pixel block: three bytes per block in Color mode, one bit in Binary
// mode. It is the only layer that knows the pixel encoding of a unit;
// everything above it deals in block coordinates and payload indices.
package block

import (
	"errors"

	"github.com/pixelreel/pixelreel/internal/canvas"
)

// ErrExhausted signals that the payload ran out at the requested index.
// When it fires exactly on a unit boundary (i == len(payload) for Color,
// i == len(bits) for Binary) no pixels are touched. WriteColor also
// raises it after writing a final, zero-padded partial triple, so the
// frame codec still learns the payload ended on that block. It never
// escapes to callers of the public API; the frame codec consumes it.
var ErrExhausted = errors.New("block: payload exhausted")

const whiteThreshold = 127

// WriteColor writes up to three payload bytes starting at i as (r, g, b)
// to the block at (x, y) and returns the advanced index. A full triple
// (i+3 <= len(payload)) writes normally and returns a nil error. A
// trailing partial group of 1 or 2 bytes is zero-padded into the
// remaining channel(s) and written, then reported via ErrExhausted with
// the index advanced by the real byte count only; the decoder truncates
// the padding back off using the stream's final_unit, which the encoder
// computes from the payload length. Once i reaches len(payload),
// nothing is written.
func WriteColor(c *canvas.Canvas, x, y, i int, payload []byte) (int, error) {
	if i >= len(payload) {
		return i, ErrExhausted
	}
	remaining := payload[i:]
	n := len(remaining)
	if n > 3 {
		n = 3
	}
	var r, g, b byte
	r = remaining[0]
	if n > 1 {
		g = remaining[1]
	}
	if n > 2 {
		b = remaining[2]
	}
	if err := c.PutBlock(x, y, r, g, b); err != nil {
		return i, err
	}
	next := i + n
	if n < 3 {
		return next, ErrExhausted
	}
	return next, nil
}

// WriteBit writes a fully white block if bits[i] is true, else fully
// black, and returns i+1. It fails with ErrExhausted, and writes nothing,
// once i reaches len(bits).
func WriteBit(c *canvas.Canvas, x, y, i int, bits []bool) (int, error) {
	if i >= len(bits) {
		return i, ErrExhausted
	}
	var v byte
	if bits[i] {
		v = 255
	}
	if err := c.PutBlock(x, y, v, v, v); err != nil {
		return i, err
	}
	return i + 1, nil
}

// ReadColor returns the per-block channel-mean observation at (x, y).
func ReadColor(c *canvas.Canvas, x, y int) (r, g, b byte, err error) {
	return c.GetBlock(x, y)
}

// ReadBit returns true iff the block's red-channel mean is at least 127.
// Green and blue are ignored: in a clean transport they already agree
// with red within quantization error, so only one channel need be tested.
func ReadBit(c *canvas.Canvas, x, y int) (bool, error) {
	r, _, _, err := c.GetBlock(x, y)
	if err != nil {
		return false, err
	}
	return r >= whiteThreshold, nil
}
