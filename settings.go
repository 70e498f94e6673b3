package pixelreel

import (
	"fmt"

	"github.com/pixelreel/pixelreel/internal/instruction"
)

// Settings is the immutable geometry record threaded through the
// encoder; the Mode is passed alongside it. Decode takes its geometry
// from the instruction frame and the incoming frames instead.
type Settings struct {
	// Block is the side length, in pixels, of one payload block.
	Block int
	// Width and Height are the nominal frame dimensions in pixels. Encode
	// accepts values that are not multiples of Block and operates on the
	// largest enclosed sub-rectangle whose dimensions are (the active
	// area), but Decode rejects payload frames whose Height is not a
	// multiple of Block, so a round trip needs Height to be one.
	Width, Height int
	// FPS is the presentation rate handed to the muxer. It does not
	// affect the codec.
	FPS float64
	// Workers is the number of parallel encoder partitions.
	Workers int
}

// DefaultSettings returns the original implementation's fallback
// geometry: 640x360 at 10fps, block 2, 8 workers. It carries no mode;
// the encode command pairs it with Binary.
func DefaultSettings() Settings {
	return Settings{
		Block:   2,
		Width:   640,
		Height:  360,
		FPS:     10,
		Workers: 8,
	}
}

// Validate reports a Geometry error if the settings cannot address any
// block, or if width/height/workers fall outside their required ranges.
func (s Settings) Validate() error {
	if s.Block < 1 {
		return fmt.Errorf("%w: block %d must be >= 1", ErrGeometry, s.Block)
	}
	if s.Width < s.Block || s.Height < s.Block {
		return fmt.Errorf("%w: frame %dx%d smaller than block %d", ErrGeometry, s.Width, s.Height, s.Block)
	}
	if s.Workers < 1 {
		return fmt.Errorf("%w: workers %d must be >= 1", ErrGeometry, s.Workers)
	}
	// The instruction frame always shares Width and Height with the
	// payload frames but hard-codes its own block of 5 (instruction.BlockSize).
	// It needs enough of those blocks to carry all BitCount header bits,
	// not merely one: a frame only slightly bigger than one block still
	// can't hold the header.
	instrCols := s.Width / instruction.BlockSize
	instrRows := s.Height / instruction.BlockSize
	if instrCols*instrRows < instruction.BitCount {
		return fmt.Errorf("%w: %dx%d frame holds only %d instruction blocks of size %d, need %d for the header",
			ErrGeometry, s.Width, s.Height, instrCols*instrRows, instruction.BlockSize, instruction.BitCount)
	}
	return nil
}

// blocksPerFrame returns the number of blocks in the active area.
func (s Settings) blocksPerFrame() int {
	activeWidth := s.Width - s.Width%s.Block
	activeHeight := s.Height - s.Height%s.Block
	return (activeWidth / s.Block) * (activeHeight / s.Block)
}

// unitsPerFrame returns the number of payload units (bytes in Color,
// bits in Binary) one frame can hold.
func (s Settings) unitsPerFrame(mode Mode) int {
	return s.blocksPerFrame() * mode.UnitSize()
}
