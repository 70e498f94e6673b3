package canvas

import "testing"

func TestPutBlockThenGetBlockIsExact(t *testing.T) {
	c, err := New(2, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.PutBlock(0, 0, 1, 2, 3); err != nil {
		t.Fatal(err)
	}
	r, g, b, err := c.GetBlock(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if r != 1 || g != 2 || b != 3 {
		t.Fatalf("got (%d,%d,%d), want (1,2,3)", r, g, b)
	}
}

func TestActiveAreaTruncatesToBlockMultiple(t *testing.T) {
	c, err := New(3, 10, 7)
	if err != nil {
		t.Fatal(err)
	}
	if c.ActiveWidth != 9 || c.ActiveHeight != 6 {
		t.Fatalf("active area = %dx%d, want 9x6", c.ActiveWidth, c.ActiveHeight)
	}
	if c.Cols() != 3 || c.Rows() != 2 {
		t.Fatalf("grid = %dx%d blocks, want 3x2", c.Cols(), c.Rows())
	}
}

func TestPutBlockOutOfRangeFails(t *testing.T) {
	c, err := New(2, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.PutBlock(4, 0, 0, 0, 0); err == nil {
		t.Fatal("expected error for out-of-range block")
	}
	if err := c.PutBlock(1, 0, 0, 0, 0); err == nil {
		t.Fatal("expected error for unaligned block")
	}
}

func TestAdoptRejectsUnalignedHeightUnlessInstruction(t *testing.T) {
	pix := make([]byte, 10*7*3)
	if _, err := Adopt(pix, 10, 7, 3, false); err == nil {
		t.Fatal("expected rejection of height not a multiple of block")
	}
	if _, err := Adopt(pix, 10, 7, 3, true); err != nil {
		t.Fatalf("instruction frame adoption should relax the height check: %v", err)
	}
}

func TestNewRejectsFrameSmallerThanBlock(t *testing.T) {
	if _, err := New(4, 2, 2); err == nil {
		t.Fatal("expected error when frame is smaller than block")
	}
}
