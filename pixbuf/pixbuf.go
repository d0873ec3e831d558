// Package pixbuf defines the canonical owned pixel buffer produced by the
// conversion layer and consumed by the rest of the pipeline.
package pixbuf

import "fmt"

// Depth is the number of bits used to store one pixel.
type Depth int

// Supported pixel depths. Depth1 is packed 1-bit monochrome, Depth8 is
// single-channel grayscale, Depth32 is NRGBA with 8 bits per channel.
const (
	Depth1  Depth = 1
	Depth8  Depth = 8
	Depth32 Depth = 32
)

// Valid reports whether d is one of the supported depths.
func (d Depth) Valid() bool {
	return d == Depth1 || d == Depth8 || d == Depth32
}

// BytesPerPixel returns the storage size of one pixel for 8 and 32 bpp
// buffers. For 1 bpp buffers pixels are packed eight to a byte and this
// returns 0; use RowStride instead.
func (d Depth) BytesPerPixel() int {
	switch d {
	case Depth8:
		return 1
	case Depth32:
		return 4
	}
	return 0
}

// RowStride returns the number of bytes one row of width pixels occupies
// at depth d, with 1 bpp rows padded to a byte boundary.
func (d Depth) RowStride(width int) int {
	if d == Depth1 {
		return (width + 7) / 8
	}
	return width * d.BytesPerPixel()
}

// PixelBuffer is the canonical in-memory pixel representation produced by
// the readfile package. Storage is row-major with a fixed row stride and is
// exclusively owned: constructors always copy their input, and a buffer
// handed to a caller is never retained by the code that built it.
//
// A PixelBuffer is not safe for concurrent mutation. Callers that replace
// pixel content in place (readfile.ReplaceGray8) must ensure no other
// goroutine reads or writes the same buffer during the call.
type PixelBuffer struct {
	width  int
	height int
	depth  Depth
	stride int
	data   []byte
}

// New allocates a zeroed PixelBuffer of the given dimensions and depth.
func New(width, height int, depth Depth) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("pixbuf: invalid dimensions %dx%d", width, height)
	}
	if !depth.Valid() {
		return nil, fmt.Errorf("pixbuf: unsupported depth %d", depth)
	}
	stride := depth.RowStride(width)
	return &PixelBuffer{
		width:  width,
		height: height,
		depth:  depth,
		stride: stride,
		data:   make([]byte, stride*height),
	}, nil
}

// Width returns the buffer width in pixels.
func (p *PixelBuffer) Width() int { return p.width }

// Height returns the buffer height in pixels.
func (p *PixelBuffer) Height() int { return p.height }

// Depth returns the bits-per-pixel of the buffer.
func (p *PixelBuffer) Depth() Depth { return p.depth }

// Stride returns the number of bytes between the starts of adjacent rows.
func (p *PixelBuffer) Stride() int { return p.stride }

// Bytes returns the backing pixel storage. The slice aliases the buffer's
// memory; writing through it is equivalent to mutating the buffer.
func (p *PixelBuffer) Bytes() []byte { return p.data }

// Clone returns a deep copy of p with freshly allocated storage.
func (p *PixelBuffer) Clone() *PixelBuffer {
	dup := make([]byte, len(p.data))
	copy(dup, p.data)
	return &PixelBuffer{
		width:  p.width,
		height: p.height,
		depth:  p.depth,
		stride: p.stride,
		data:   dup,
	}
}

// SetRow copies one row of pixel bytes into the buffer. The source must be
// at least one row-stride long. Used by converters; most callers should go
// through the readfile package instead.
func (p *PixelBuffer) SetRow(y int, row []byte) error {
	if y < 0 || y >= p.height {
		return fmt.Errorf("pixbuf: row %d out of range [0,%d)", y, p.height)
	}
	n := p.depth.RowStride(p.width)
	if len(row) < n {
		return fmt.Errorf("pixbuf: row data too short: %d < %d", len(row), n)
	}
	copy(p.data[y*p.stride:y*p.stride+n], row[:n])
	return nil
}

// Row returns the pixel bytes of row y without copying.
func (p *PixelBuffer) Row(y int) []byte {
	return p.data[y*p.stride : y*p.stride+p.depth.RowStride(p.width)]
}

func (p *PixelBuffer) String() string {
	return fmt.Sprintf("PixelBuffer(%dx%d, %dbpp)", p.width, p.height, p.depth)
}
