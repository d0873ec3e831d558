// Package grayscale converts color images and 32 bpp pixel buffers into
// the raw 8-bit grayscale byte layout consumed by readfile.ReadGray8.
package grayscale

import (
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/effect"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/folkevil/textfairy/pixbuf"
)

// FromImage converts img into a raw 8 bpp grayscale buffer using a
// luminance-weighted conversion. The returned slice is freshly allocated,
// row-major, exactly width*height bytes.
func FromImage(img image.Image) (data []byte, width, height int) {
	gray := effect.Grayscale(img)

	bounds := gray.Bounds()
	width, height = bounds.Dx(), bounds.Dy()
	data = make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// After Grayscale the channels are equal; any one of them is
			// the luminance value.
			data[y*width+x] = gray.Pix[gray.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)]
		}
	}
	return data, width, height
}

// FromBuffer converts a 32 bpp PixelBuffer into raw gray8 bytes. The
// source buffer is not modified.
func FromBuffer(pix *pixbuf.PixelBuffer) ([]byte, int, int, error) {
	if pix == nil {
		return nil, 0, 0, fmt.Errorf("grayscale: buffer must be non-nil")
	}
	if pix.Depth() != pixbuf.Depth32 {
		return nil, 0, 0, fmt.Errorf("grayscale: buffer depth is %d bpp, want 32", pix.Depth())
	}
	img, err := pix.Image()
	if err != nil {
		return nil, 0, 0, err
	}
	data, w, h := FromImage(img)
	return data, w, h, nil
}

// Luminance returns the perceived brightness of c as an 8-bit gray value,
// computed in the CIE Lab color space. Fully transparent colors map to 0.
func Luminance(c color.Color) uint8 {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return 0
	}
	l, _, _ := cf.Lab()
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	return uint8(l*255 + 0.5)
}
