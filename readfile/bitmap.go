package readfile

import (
	"image"

	"github.com/folkevil/textfairy/pixbuf"
)

// FromBitmap converts a decoded bitmap into a 32 bpp PixelBuffer. Only the
// NRGBA layout (8 bits per channel) is accepted; a nil bitmap or any other
// layout is logged and yields nil, since bitmaps arrive from untrusted
// decode paths where rejection is a normal outcome.
//
// The bitmap's pixels are copied row by row; the result never aliases the
// input and the input is not mutated or retained.
func (r *Reader) FromBitmap(bm image.Image) *pixbuf.PixelBuffer {
	if bm == nil {
		r.log.Warn("bitmap must be non-nil")
		return nil
	}
	nrgba, ok := bm.(*image.NRGBA)
	if !ok {
		r.log.Warn("bitmap layout must be NRGBA", "type", bm.ColorModel())
		return nil
	}

	bounds := nrgba.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pix, err := pixbuf.New(w, h, pixbuf.Depth32)
	if err != nil {
		r.log.Warn("could not allocate pixel buffer", "width", w, "height", h, "error", err)
		return nil
	}

	for y := 0; y < h; y++ {
		off := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
		if err := pix.SetRow(y, nrgba.Pix[off:off+4*w]); err != nil {
			r.log.Warn("could not copy bitmap row", "row", y, "error", err)
			return nil
		}
	}
	return pix
}
