// Package codec holds the small value types shared across the encoder,
// decoder, and frame-level packages: the two-variant output mode and the
// payload container that threads bytes or bits through them.
package codec

// Mode selects how payload units are etched into a block: a byte across
// three channels, or a single bit as a black/white block.
type Mode int

const (
	// Binary stores one bit per block (black = 0, white = 1). Survives
	// lossy recompression; at the same block size, throughput is 24 times
	// lower than Color (1 bit per block against 3 bytes).
	Binary Mode = iota
	// Color stores one byte per channel, three bytes per block. Higher
	// throughput, but the triple is not recoverable once a lossy codec
	// perturbs the channel means.
	Color
)

// String returns the human-readable name of the mode.
func (m Mode) String() string {
	switch m {
	case Color:
		return "color"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// Payload bundles a byte or bit stream with the mode that says which field
// is meaningful. Bytes is valid in Color mode, Bits in Binary mode.
type Payload struct {
	Mode  Mode
	Bytes []byte
	Bits  []bool
}

// Len returns the unit count: bytes in Color mode, bits in Binary mode.
func (p Payload) Len() int {
	if p.Mode == Color {
		return len(p.Bytes)
	}
	return len(p.Bits)
}

// Slice returns the sub-payload [i:j) of the relevant field.
func (p Payload) Slice(i, j int) Payload {
	if p.Mode == Color {
		return Payload{Mode: Color, Bytes: p.Bytes[i:j]}
	}
	return Payload{Mode: Binary, Bits: p.Bits[i:j]}
}

// UnitSize returns the number of raw units one block holds: 3 bytes for
// Color, 1 bit for Binary.
func (m Mode) UnitSize() int {
	if m == Color {
		return 3
	}
	return 1
}
