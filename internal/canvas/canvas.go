// Package canvas owns one frame's pixel buffer and its block geometry.
// It has no notion of payload, mode, or video I/O; it only knows how to
// set and sample square blocks of identical-intent pixels.
package canvas

import "fmt"

// Canvas is a width x height 24-bit BGR pixel buffer plus the block
// geometry used to address it. Pix is row-major, three bytes per pixel,
// in B, G, R channel order.
type Canvas struct {
	Pix    []byte
	Width  int
	Height int
	Block  int

	// ActiveWidth and ActiveHeight are the largest sub-rectangle whose
	// dimensions are multiples of Block, anchored at the origin.
	ActiveWidth  int
	ActiveHeight int
}

// New allocates a zero-initialized canvas of width x height pixels with
// the given block size.
func New(block, width, height int) (*Canvas, error) {
	if block < 1 {
		return nil, fmt.Errorf("canvas: block size %d must be >= 1", block)
	}
	if width < block || height < block {
		return nil, fmt.Errorf("canvas: frame %dx%d smaller than block %d", width, height, block)
	}
	return &Canvas{
		Pix:          make([]byte, width*height*3),
		Width:        width,
		Height:       height,
		Block:        block,
		ActiveWidth:  width - width%block,
		ActiveHeight: height - height%block,
	}, nil
}

// Adopt wraps an existing decoded pixel buffer (already width*height*3
// bytes of BGR) as a canvas with the given block size. Unless
// isInstruction is set, the height must be a multiple of block; the
// instruction frame's fixed block of 5 is not expected to divide an
// arbitrary incoming frame height, so that check is relaxed for it.
func Adopt(pix []byte, width, height, block int, isInstruction bool) (*Canvas, error) {
	if block < 1 {
		return nil, fmt.Errorf("canvas: block size %d must be >= 1", block)
	}
	if len(pix) != width*height*3 {
		return nil, fmt.Errorf("canvas: pixel buffer length %d does not match %dx%d BGR", len(pix), width, height)
	}
	if !isInstruction && height%block != 0 {
		return nil, fmt.Errorf("canvas: frame height %d is not a multiple of block %d", height, block)
	}
	activeWidth := width - width%block
	activeHeight := height - height%block
	if activeWidth < block || activeHeight < block {
		return nil, fmt.Errorf("canvas: %dx%d frame has no active area at block %d", width, height, block)
	}
	return &Canvas{
		Pix:          pix,
		Width:        width,
		Height:       height,
		Block:        block,
		ActiveWidth:  activeWidth,
		ActiveHeight: activeHeight,
	}, nil
}

// Cols returns the number of blocks per row in the active area.
func (c *Canvas) Cols() int { return c.ActiveWidth / c.Block }

// Rows returns the number of block rows in the active area.
func (c *Canvas) Rows() int { return c.ActiveHeight / c.Block }

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x+c.Block <= c.ActiveWidth && y+c.Block <= c.ActiveHeight
}

// PutBlock overwrites every pixel in the block anchored at (x, y) with
// the given (r, g, b) triple. x and y must be block-aligned within the
// active area.
func (c *Canvas) PutBlock(x, y int, r, g, b byte) error {
	if !c.inBounds(x, y) {
		return fmt.Errorf("canvas: block at (%d,%d) out of range", x, y)
	}
	if x%c.Block != 0 || y%c.Block != 0 {
		return fmt.Errorf("canvas: block at (%d,%d) not aligned to block %d", x, y, c.Block)
	}
	for row := 0; row < c.Block; row++ {
		rowStart := (y+row)*c.Width + x
		for col := 0; col < c.Block; col++ {
			p := (rowStart + col) * 3
			c.Pix[p] = b
			c.Pix[p+1] = g
			c.Pix[p+2] = r
		}
	}
	return nil
}

// GetBlock returns the integer mean of each channel across the block
// anchored at (x, y), truncated towards zero.
func (c *Canvas) GetBlock(x, y int) (r, g, b byte, err error) {
	if !c.inBounds(x, y) {
		return 0, 0, 0, fmt.Errorf("canvas: block at (%d,%d) out of range", x, y)
	}
	var sumB, sumG, sumR int
	for row := 0; row < c.Block; row++ {
		rowStart := (y+row)*c.Width + x
		for col := 0; col < c.Block; col++ {
			p := (rowStart + col) * 3
			sumB += int(c.Pix[p])
			sumG += int(c.Pix[p+1])
			sumR += int(c.Pix[p+2])
		}
	}
	n := c.Block * c.Block
	return byte(sumR / n), byte(sumG / n), byte(sumB / n), nil
}
