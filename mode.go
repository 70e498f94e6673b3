package pixelreel

import "github.com/pixelreel/pixelreel/internal/codec"

// Mode selects how the payload is etched into pixel blocks.
type Mode = codec.Mode

const (
	// Binary stores one bit per block (black = 0, white = 1).
	Binary = codec.Binary
	// Color stores three payload bytes per block, one per RGB channel.
	Color = codec.Color
)
