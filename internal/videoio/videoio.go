// Package videoio adapts pixelreel's Muxer/Demuxer contracts onto
// gocv's VideoWriter/VideoCapture bindings. It is the one place the
// codec touches an actual on-disk container; everything above it
// operates on raw BGR buffers held in memory.
package videoio

import (
	"fmt"
	"image"

	"github.com/charmbracelet/log"
	"gocv.io/x/gocv"
)

// Writer implements pixelreel.Muxer over a gocv.VideoWriter. It prefers
// a lossless, intra-only PNG-in-container codec; if the installed
// OpenCV build lacks a PNG writer, it falls back to an H.264 ("avc1")
// stream with OpenCV's default encoder settings, mirroring the
// codec-selection fallback in the original embedder.
type Writer struct {
	path   string
	fps    float64
	size   image.Point
	writer *gocv.VideoWriter
}

// NewWriter prepares a writer for path at the given fps. The
// underlying VideoWriter is created lazily on the first WriteFrame call,
// once the caller's first frame establishes the container's frame size.
func NewWriter(path string, fps float64) *Writer {
	return &Writer{path: path, fps: fps}
}

func (w *Writer) open(width, height int) error {
	w.size = image.Pt(width, height)

	vw, err := gocv.VideoWriterFile(w.path, "png ", w.fps, width, height, true)
	if err == nil && vw != nil {
		w.writer = vw
		return nil
	}
	log.Warn("videoio: lossless PNG codec unavailable, falling back to avc1", "path", w.path, "err", err)

	vw, err = gocv.VideoWriterFile(w.path, "avc1", w.fps, width, height, true)
	if err != nil {
		return fmt.Errorf("videoio: both png and avc1 codecs failed: %w", err)
	}
	w.writer = vw
	return nil
}

// WriteFrame writes one 24-bit BGR frame to the container, opening the
// writer on first use.
func (w *Writer) WriteFrame(pix []byte, width, height int) error {
	if w.writer == nil {
		if err := w.open(width, height); err != nil {
			return err
		}
	}
	mat, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC3, pix)
	if err != nil {
		return fmt.Errorf("videoio: mat from bytes: %w", err)
	}
	defer mat.Close()

	if err := w.writer.Write(mat); err != nil {
		return fmt.Errorf("videoio: write frame: %w", err)
	}
	return nil
}

// Close releases the underlying VideoWriter.
func (w *Writer) Close() error {
	if w.writer == nil {
		return nil
	}
	return w.writer.Close()
}

// Reader implements pixelreel.Demuxer over a gocv.VideoCapture.
type Reader struct {
	capture *gocv.VideoCapture
}

// OpenReader opens path for frame-by-frame reading.
func OpenReader(path string) (*Reader, error) {
	cap, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("videoio: open %s: %w", path, err)
	}
	return &Reader{capture: cap}, nil
}

// ReadFrame returns the next frame's BGR pixels, width, and height. It
// returns ok=false once the capture is exhausted.
func (r *Reader) ReadFrame() (pix []byte, width, height int, ok bool, err error) {
	mat := gocv.NewMat()
	defer mat.Close()

	if !r.capture.Read(&mat) || mat.Empty() {
		return nil, 0, 0, false, nil
	}
	buf, err := mat.DataPtrUint8()
	if err != nil {
		return nil, 0, 0, false, fmt.Errorf("videoio: read frame data: %w", err)
	}
	cp := make([]byte, len(buf))
	copy(cp, buf)
	return cp, mat.Cols(), mat.Rows(), true, nil
}

// Close releases the underlying VideoCapture.
func (r *Reader) Close() error {
	return r.capture.Close()
}
