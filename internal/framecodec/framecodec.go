// Package framecodec walks one frame's block grid, driving the block
// codec until the grid is full or the payload runs out, for both the
// write and read directions.
package framecodec

import (
	"errors"
	"fmt"

	"github.com/pixelreel/pixelreel/internal/block"
	"github.com/pixelreel/pixelreel/internal/canvas"
	"github.com/pixelreel/pixelreel/internal/codec"
)

// Status reports how Fill finished walking the grid.
type Status int

const (
	// StatusFull means every block in the grid was written. Payload may
	// remain for a further frame; a payload that ends exactly on the
	// grid's last block also reports StatusFull, with Index at its end.
	StatusFull Status = iota
	// StatusFinal means the block codec reported the payload exhausted
	// before the grid was walked to its end (including a zero-padded
	// partial Color triple written into the grid's last block).
	StatusFinal
)

// FillResult is the outcome of filling one frame.
type FillResult struct {
	Status Status
	// Units is the number of blocks written into this particular frame
	// (each holding up to 3 bytes in Color, 1 bit in Binary).
	Units int
	// Index is the payload's updated cursor.
	Index int
}

// Fill iterates the block grid row-major (y outer, x inner, both
// ascending), writing one block's worth of payload (three bytes in Color,
// one bit in Binary) per block starting at index i.
// Unwritten trailing blocks are left at their initial zero state.
func Fill(c *canvas.Canvas, p codec.Payload, i int) (FillResult, error) {
	written := 0
	for y := 0; y < c.Rows(); y++ {
		for x := 0; x < c.Cols(); x++ {
			var next int
			var err error
			switch p.Mode {
			case codec.Color:
				next, err = block.WriteColor(c, x*c.Block, y*c.Block, i, p.Bytes)
			default:
				next, err = block.WriteBit(c, x*c.Block, y*c.Block, i, p.Bits)
			}
			if errors.Is(err, block.ErrExhausted) {
				// next > i only when WriteColor zero-padded and wrote a
				// trailing partial triple before reporting exhaustion;
				// that block counts too.
				if next > i {
					i = next
					written++
				}
				return FillResult{Status: StatusFinal, Units: written, Index: i}, nil
			}
			if err != nil {
				return FillResult{}, err
			}
			i = next
			written++
		}
	}
	return FillResult{Status: StatusFull, Units: written, Index: i}, nil
}

// Read walks the grid and collects one observation per block. If
// isFinal is true and finalUnit > 0, the returned payload is truncated to
// finalUnit units; finalUnit == 0 on the final frame means the frame is
// returned in full.
func Read(c *canvas.Canvas, mode codec.Mode, isFinal bool, finalUnit int) (codec.Payload, error) {
	var bytesOut []byte
	var bitsOut []bool
	for y := 0; y < c.Rows(); y++ {
		for x := 0; x < c.Cols(); x++ {
			switch mode {
			case codec.Color:
				r, g, b, err := block.ReadColor(c, x*c.Block, y*c.Block)
				if err != nil {
					return codec.Payload{}, err
				}
				bytesOut = append(bytesOut, r, g, b)
			default:
				bit, err := block.ReadBit(c, x*c.Block, y*c.Block)
				if err != nil {
					return codec.Payload{}, err
				}
				bitsOut = append(bitsOut, bit)
			}
		}
	}

	if isFinal && finalUnit > 0 {
		available := len(bitsOut)
		if mode == codec.Color {
			available = len(bytesOut)
		}
		if finalUnit > available {
			return codec.Payload{}, fmt.Errorf("framecodec: final_unit %d exceeds %d units available in frame", finalUnit, available)
		}
		if mode == codec.Color {
			bytesOut = bytesOut[:finalUnit]
		} else {
			bitsOut = bitsOut[:finalUnit]
		}
	}
	return codec.Payload{Mode: mode, Bytes: bytesOut, Bits: bitsOut}, nil
}
