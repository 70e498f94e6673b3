package pixelreel

import (
	"io"

	"github.com/pixelreel/pixelreel/internal/videoio"
)

// VideoMuxer adapts internal/videoio's gocv-backed writer to the Muxer
// interface.
type VideoMuxer struct{ w *videoio.Writer }

// NewVideoMuxer prepares a muxer that will write path at fps frames per
// second once the first frame establishes its dimensions.
func NewVideoMuxer(path string, fps float64) *VideoMuxer {
	return &VideoMuxer{w: videoio.NewWriter(path, fps)}
}

func (m *VideoMuxer) WriteFrame(f Frame) error {
	return m.w.WriteFrame(f.Pix, f.Width, f.Height)
}

func (m *VideoMuxer) Close() error { return m.w.Close() }

// VideoDemuxer adapts internal/videoio's gocv-backed reader to the
// Demuxer interface.
type VideoDemuxer struct{ r *videoio.Reader }

// OpenVideoDemuxer opens path for frame-by-frame reading.
func OpenVideoDemuxer(path string) (*VideoDemuxer, error) {
	r, err := videoio.OpenReader(path)
	if err != nil {
		return nil, err
	}
	return &VideoDemuxer{r: r}, nil
}

func (d *VideoDemuxer) ReadFrame() (Frame, error) {
	pix, width, height, ok, err := d.r.ReadFrame()
	if err != nil {
		return Frame{}, err
	}
	if !ok {
		return Frame{}, io.EOF
	}
	return Frame{Pix: pix, Width: width, Height: height}, nil
}

func (d *VideoDemuxer) Close() error { return d.r.Close() }
