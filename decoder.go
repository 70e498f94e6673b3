package pixelreel

import (
	"errors"
	"fmt"
	"io"

	"github.com/pixelreel/pixelreel/internal/bitpack"
	"github.com/pixelreel/pixelreel/internal/canvas"
	"github.com/pixelreel/pixelreel/internal/codec"
	"github.com/pixelreel/pixelreel/internal/framecodec"
	"github.com/pixelreel/pixelreel/internal/instruction"
)

// Decode reads the instruction frame from demux, then iterates the
// remaining frames, ignoring any that follow final_frame, reassembling
// the original payload. demux is closed on every exit path.
func Decode(demux Demuxer) (payload []byte, err error) {
	defer func() {
		if cerr := demux.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: %v", ErrDemuxerFailed, cerr)
		}
	}()

	first, ferr := demux.ReadFrame()
	if ferr != nil {
		return nil, fmt.Errorf("%w: %v", ErrDemuxerFailed, ferr)
	}
	rec, derr := instruction.Decode(first.Pix, first.Width, first.Height)
	if derr != nil {
		return nil, fmt.Errorf("%w: %v", ErrInstructionCorrupt, derr)
	}

	var bytesOut []byte
	var bitsOut []bool

	for k := 1; k <= int(rec.FinalFrame); k++ {
		frame, rerr := demux.ReadFrame()
		if rerr != nil {
			if errors.Is(rerr, io.EOF) {
				return nil, fmt.Errorf("%w: got %d of %d payload frames", ErrTruncated, k-1, rec.FinalFrame)
			}
			return nil, fmt.Errorf("%w: %v", ErrDemuxerFailed, rerr)
		}

		c, cerr := canvas.Adopt(frame.Pix, frame.Width, frame.Height, int(rec.Block), false)
		if cerr != nil {
			return nil, fmt.Errorf("pixelreel: decode: %w", cerr)
		}
		isFinal := k == int(rec.FinalFrame)
		unit, uerr := framecodec.Read(c, rec.Mode, isFinal, int(rec.FinalUnit))
		if uerr != nil {
			return nil, fmt.Errorf("pixelreel: decode: %w", uerr)
		}
		if rec.Mode == codec.Color {
			bytesOut = append(bytesOut, unit.Bytes...)
		} else {
			bitsOut = append(bitsOut, unit.Bits...)
		}
	}

	if rec.Mode == codec.Binary {
		return bitpack.BitsToBytes(bitsOut), nil
	}
	return bytesOut, nil
}
