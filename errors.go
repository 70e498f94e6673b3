package pixelreel

import "errors"

// Error kinds surfaced by the core. All of them abort the current
// encode or decode; none are retried internally.
var (
	// ErrEmptyPayload is returned when Encode is called with zero bytes.
	ErrEmptyPayload = errors.New("pixelreel: payload is empty")
	// ErrGeometry is returned when block/frame-size relation is invalid,
	// or the active area of a frame is empty.
	ErrGeometry = errors.New("pixelreel: invalid block/frame geometry")
	// ErrInstructionCorrupt is returned when the instruction frame fails
	// header, footer, or marker validation.
	ErrInstructionCorrupt = errors.New("pixelreel: instruction frame is corrupt")
	// ErrTruncated is returned when the demuxer runs dry before
	// final_frame is reached.
	ErrTruncated = errors.New("pixelreel: video ended before final frame")
	// ErrMuxerFailed wraps an opaque failure from the encode-side I/O
	// collaborator.
	ErrMuxerFailed = errors.New("pixelreel: muxer failed")
	// ErrDemuxerFailed wraps an opaque failure from the decode-side I/O
	// collaborator.
	ErrDemuxerFailed = errors.New("pixelreel: demuxer failed")
)
