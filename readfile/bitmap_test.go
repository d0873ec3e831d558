package readfile

import (
	"bytes"
	"image"
	"image/color"
	"io"
	"log/slog"
	"testing"

	"github.com/folkevil/textfairy/pixbuf"
)

// quietReader builds a Reader whose warnings go nowhere, with optional
// fake collaborators.
func quietReader(dec Decoder, loader Loader) *Reader {
	return New(dec, loader, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// testBitmap fills an NRGBA bitmap with a position-dependent pattern.
func testBitmap(t *testing.T, width, height int) *image.NRGBA {
	t.Helper()
	bm := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			bm.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 16),
				G: uint8(y * 32),
				B: uint8(x + y),
				A: 255,
			})
		}
	}
	return bm
}

func TestFromBitmap(t *testing.T) {
	r := quietReader(nil, nil)
	bm := testBitmap(t, 8, 4)

	pix := r.FromBitmap(bm)
	if pix == nil {
		t.Fatal("FromBitmap returned nil for a valid NRGBA bitmap")
	}
	if pix.Width() != 8 || pix.Height() != 4 {
		t.Errorf("dimensions: got %dx%d, want 8x4", pix.Width(), pix.Height())
	}
	if pix.Depth() != pixbuf.Depth32 {
		t.Errorf("depth: got %d, want 32", pix.Depth())
	}
	if !bytes.Equal(pix.Bytes(), bm.Pix) {
		t.Error("pixel content differs from the source bitmap")
	}

	// The bridge copies; mutating the bitmap afterwards must not show
	// through the buffer.
	bm.Pix[0] = ^bm.Pix[0]
	if pix.Bytes()[0] == bm.Pix[0] {
		t.Error("buffer aliases the bitmap's storage")
	}
}

func TestFromBitmap_Rejected(t *testing.T) {
	r := quietReader(nil, nil)

	tests := []struct {
		name string
		bm   image.Image
	}{
		{"nil bitmap", nil},
		{"RGBA layout", image.NewRGBA(image.Rect(0, 0, 4, 4))},
		{"Gray layout", image.NewGray(image.Rect(0, 0, 4, 4))},
		{"YCbCr layout", image.NewYCbCr(image.Rect(0, 0, 4, 4), image.YCbCrSubsampleRatio420)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if pix := r.FromBitmap(tt.bm); pix != nil {
				t.Errorf("FromBitmap should return nil, got %s", pix)
			}
		})
	}
}

func TestFromBitmap_SubImage(t *testing.T) {
	r := quietReader(nil, nil)
	bm := testBitmap(t, 8, 8)
	sub := bm.SubImage(image.Rect(2, 3, 7, 6)).(*image.NRGBA)

	pix := r.FromBitmap(sub)
	if pix == nil {
		t.Fatal("FromBitmap returned nil for a sub-image")
	}
	if pix.Width() != 5 || pix.Height() != 3 {
		t.Fatalf("dimensions: got %dx%d, want 5x3", pix.Width(), pix.Height())
	}

	// Row 0 of the buffer must be the sub-image's top row.
	want := bm.Pix[bm.PixOffset(2, 3):bm.PixOffset(7, 3)]
	if !bytes.Equal(pix.Row(0), want) {
		t.Errorf("row 0: got %v, want %v", pix.Row(0), want)
	}
}

func TestFromBitmap_Idempotent(t *testing.T) {
	r := quietReader(nil, nil)
	bm := testBitmap(t, 6, 5)

	first := r.FromBitmap(bm)
	second := r.FromBitmap(bm)
	if first == nil || second == nil {
		t.Fatal("FromBitmap returned nil")
	}
	if !bytes.Equal(first.Bytes(), second.Bytes()) {
		t.Error("identical input should give identical content")
	}
	if &first.Bytes()[0] == &second.Bytes()[0] {
		t.Error("two conversions share storage")
	}
}
