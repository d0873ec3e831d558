package pixbuf

import (
	"fmt"
	"image"
)

// Image returns a standard library view of the buffer for 8 and 32 bpp
// depths. The returned image shares the buffer's storage; callers that need
// an independent copy should Clone first. 1 bpp buffers have no direct
// image.Image equivalent and return an error.
func (p *PixelBuffer) Image() (image.Image, error) {
	rect := image.Rect(0, 0, p.width, p.height)
	switch p.depth {
	case Depth8:
		return &image.Gray{Pix: p.data, Stride: p.stride, Rect: rect}, nil
	case Depth32:
		return &image.NRGBA{Pix: p.data, Stride: p.stride, Rect: rect}, nil
	}
	return nil, fmt.Errorf("pixbuf: no image view for %d bpp buffers", p.depth)
}
