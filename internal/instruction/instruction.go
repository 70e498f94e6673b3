// Package instruction encodes and decodes the fixed five-word header
// that always occupies stream position 0, ahead of any payload frame.
// It reuses the general frame codec rather than a bespoke iteration: the
// header is just 160 bits laid onto a canvas with a hard-coded block of 5.
package instruction

import (
	"errors"
	"fmt"

	"github.com/pixelreel/pixelreel/internal/bitpack"
	"github.com/pixelreel/pixelreel/internal/canvas"
	"github.com/pixelreel/pixelreel/internal/codec"
	"github.com/pixelreel/pixelreel/internal/framecodec"
)

// BlockSize is the block side length hard-coded into the instruction
// frame's wire format. Both encoder and decoder assume it unconditionally.
const BlockSize = 5

const (
	markerColor      = 0xFFFFFFFF
	markerBinary     = 0x00000000
	terminatorMarker = 0xFFFFFFFF
	wordCount        = 5
	// BitCount is the header's fixed size in bits. A frame must offer at
	// least this many blocks of side BlockSize to carry it; Settings.Validate
	// enforces that at the geometry level.
	BitCount = wordCount * 32
)

// ErrCorrupt reports that a frame claiming to be the instruction header
// failed marker, terminator, or block validation.
var ErrCorrupt = errors.New("instruction: corrupt header")

// Record is the decoded five-word instruction.
type Record struct {
	Mode       codec.Mode
	FinalFrame uint32
	FinalUnit  uint32
	Block      uint32
}

// Encode lays the record onto a fresh canvas of the given frame size,
// using the fixed instruction block of 5.
func Encode(width, height int, rec Record) (*canvas.Canvas, error) {
	c, err := canvas.New(BlockSize, width, height)
	if err != nil {
		return nil, fmt.Errorf("instruction: %w", err)
	}

	marker := uint32(markerBinary)
	if rec.Mode == codec.Color {
		marker = markerColor
	}
	words := []uint32{marker, rec.FinalFrame, rec.FinalUnit, rec.Block, terminatorMarker}
	bits := bitpack.U32sToBits(words)

	res, err := framecodec.Fill(c, codec.Payload{Mode: codec.Binary, Bits: bits}, 0)
	if err != nil {
		return nil, fmt.Errorf("instruction: %w", err)
	}
	if res.Index < len(bits) {
		return nil, fmt.Errorf("instruction: %dx%d frame holds only %d of %d header bits at block %d", width, height, res.Units, len(bits), BlockSize)
	}
	return c, nil
}

// Decode wraps the given pixel buffer in an instruction-frame canvas,
// reads its 160 bits, and validates marker, terminator, and block.
func Decode(pix []byte, width, height int) (Record, error) {
	c, err := canvas.Adopt(pix, width, height, BlockSize, true)
	if err != nil {
		return Record{}, fmt.Errorf("instruction: %w", err)
	}

	payload, err := framecodec.Read(c, codec.Binary, true, BitCount)
	if err != nil {
		return Record{}, fmt.Errorf("instruction: %w", err)
	}
	words := bitpack.BitsToU32s(payload.Bits)
	if len(words) != wordCount {
		return Record{}, fmt.Errorf("%w: got %d words, want %d", ErrCorrupt, len(words), wordCount)
	}

	marker, finalFrame, finalUnit, block, terminator := words[0], words[1], words[2], words[3], words[4]
	if marker != markerColor && marker != markerBinary {
		return Record{}, fmt.Errorf("%w: bad mode marker %#x", ErrCorrupt, marker)
	}
	if terminator != terminatorMarker {
		return Record{}, fmt.Errorf("%w: bad terminator %#x", ErrCorrupt, terminator)
	}
	if block == 0 {
		return Record{}, fmt.Errorf("%w: block is 0", ErrCorrupt)
	}

	mode := codec.Binary
	if marker == markerColor {
		mode = codec.Color
	}
	return Record{Mode: mode, FinalFrame: finalFrame, FinalUnit: finalUnit, Block: block}, nil
}
