package pixelreel

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pixelreel/pixelreel/internal/bitpack"
	"github.com/pixelreel/pixelreel/internal/codec"
	"github.com/pixelreel/pixelreel/internal/instruction"
	"github.com/pixelreel/pixelreel/internal/worker"
)

// Encode splits payload across at most settings.Workers parallel partitions,
// each producing an ordered sub-sequence of frames, then writes the
// instruction frame followed by the partitions' frames, in spawn order,
// to mux.
func Encode(payload []byte, mode Mode, settings Settings, mux Muxer) error {
	if len(payload) == 0 {
		return ErrEmptyPayload
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	p := toPayload(payload, mode)
	unitsPerFrame := settings.unitsPerFrame(mode)
	u := p.Len()
	totalFrames := ceilDiv(u, unitsPerFrame)
	finalUnit := u % unitsPerFrame

	runID := uuid.NewString()
	chunks := partition(u, totalFrames, unitsPerFrame, settings.Workers)
	log.Debug("encode: partitioned payload", "run", runID, "units", u, "frames", totalFrames, "chunks", len(chunks))

	results := make([][]worker.Frame, len(chunks))
	g, _ := errgroup.WithContext(context.Background())
	for i, ch := range chunks {
		i, ch := i, ch
		g.Go(func() error {
			log.Debug("encode: starting worker", "run", runID, "index", i, "units", ch.end-ch.start)
			frames, err := worker.EncodeChunk(settings.Block, settings.Width, settings.Height, p.Slice(ch.start, ch.end))
			if err != nil {
				return err
			}
			results[i] = frames
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("pixelreel: encode: %w", err)
	}

	instr, err := instruction.Encode(settings.Width, settings.Height, instruction.Record{
		Mode:       mode,
		FinalFrame: uint32(totalFrames),
		FinalUnit:  uint32(finalUnit),
		Block:      uint32(settings.Block),
	})
	if err != nil {
		return fmt.Errorf("pixelreel: encode: %w", err)
	}
	if err := mux.WriteFrame(Frame{Pix: instr.Pix, Width: instr.Width, Height: instr.Height}); err != nil {
		return fmt.Errorf("%w: %v", ErrMuxerFailed, err)
	}

	for _, frames := range results {
		for _, f := range frames {
			if err := mux.WriteFrame(Frame{Pix: f.Pix, Width: f.Width, Height: f.Height}); err != nil {
				return fmt.Errorf("%w: %v", ErrMuxerFailed, err)
			}
		}
	}

	if err := mux.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrMuxerFailed, err)
	}
	return nil
}

func toPayload(payload []byte, mode Mode) codec.Payload {
	if mode == Color {
		return codec.Payload{Mode: codec.Color, Bytes: payload}
	}
	return codec.Payload{Mode: codec.Binary, Bits: bitpack.BytesToBits(payload)}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

type chunkSpec struct {
	start, end int
}

// partition divides u units into at most workers contiguous chunks of
// ceil(totalFrames/workers) frames each (the last chunk holding the
// remainder), per the corrected chunk-size derivation: no off-by-one
// frame over-provisioning, no empty trailing chunk. Fewer chunks than
// workers result when the frames run out first (2 frames over 4 workers
// give 2 chunks).
func partition(u, totalFrames, unitsPerFrame, workers int) []chunkSpec {
	chunkFrames := ceilDiv(totalFrames, workers)
	chunkSize := chunkFrames * unitsPerFrame

	var chunks []chunkSpec
	for start := 0; start < u; start += chunkSize {
		end := start + chunkSize
		if end > u {
			end = u
		}
		chunks = append(chunks, chunkSpec{start, end})
	}
	return chunks
}
