// Package worker encodes one contiguous payload chunk into an ordered
// list of frames. Each call owns its chunk by value and shares no state
// with any other call; the caller is responsible for partitioning the
// payload and for joining the resulting frame lists in spawn order.
package worker

import (
	"fmt"

	"github.com/pixelreel/pixelreel/internal/canvas"
	"github.com/pixelreel/pixelreel/internal/codec"
	"github.com/pixelreel/pixelreel/internal/framecodec"
)

// Frame is one encoded 24-bit BGR frame buffer.
type Frame struct {
	Pix           []byte
	Width, Height int
}

// EncodeChunk repeatedly fills fresh canvases from chunk until the index
// cursor reaches chunk.Len() or Fill reports the chunk exhausted
// (StatusFinal). A chunk that exactly fills its last canvas produces no
// further, empty trailing frame. A Color chunk whose length isn't a
// multiple of 3 ends on a zero-padded partial triple, which advances the
// cursor by the real byte count and reports StatusFinal.
func EncodeChunk(block, width, height int, chunk codec.Payload) ([]Frame, error) {
	var frames []Frame
	index := 0
	for index < chunk.Len() {
		c, err := canvas.New(block, width, height)
		if err != nil {
			return nil, fmt.Errorf("worker: %w", err)
		}
		res, err := framecodec.Fill(c, chunk, index)
		if err != nil {
			return nil, fmt.Errorf("worker: %w", err)
		}
		frames = append(frames, Frame{Pix: c.Pix, Width: c.Width, Height: c.Height})
		index = res.Index
		if res.Status == framecodec.StatusFinal {
			break
		}
	}
	return frames, nil
}
