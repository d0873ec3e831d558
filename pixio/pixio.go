// Package pixio persists raw PixelBuffers for debugging and pipeline
// handoff. The format is a small fixed header (magic, version, geometry)
// followed by the zstd-compressed pixel bytes; raw buffers compress well
// and dumps of scanned pages are otherwise large.
package pixio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/folkevil/textfairy/pixbuf"
)

// ErrFormat reports a dump that is not a valid pixio stream: bad magic,
// unsupported version, or a header inconsistent with its pixel data.
var ErrFormat = errors.New("pixio: invalid dump format")

var magic = [4]byte{'P', 'I', 'X', 'B'}

const version = 1

// maxPixelBytes caps the storage size Load will allocate from a header,
// guarding against corrupt or hostile dumps.
const maxPixelBytes = 1 << 30

type header struct {
	Magic   [4]byte
	Version uint8
	Depth   uint8
	_       uint16 // padding, written as zero
	Width   uint32
	Height  uint32
}

// Save writes pix to w in the pixio dump format.
func Save(w io.Writer, pix *pixbuf.PixelBuffer) error {
	if pix == nil {
		return fmt.Errorf("pixio: buffer must be non-nil")
	}

	h := header{
		Magic:   magic,
		Version: version,
		Depth:   uint8(pix.Depth()),
		Width:   uint32(pix.Width()),
		Height:  uint32(pix.Height()),
	}
	if err := binary.Write(w, binary.BigEndian, &h); err != nil {
		return fmt.Errorf("pixio: writing header: %w", err)
	}

	enc, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("pixio: creating compressor: %w", err)
	}
	if _, err := enc.Write(pix.Bytes()); err != nil {
		enc.Close()
		return fmt.Errorf("pixio: writing pixel data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("pixio: flushing pixel data: %w", err)
	}
	return nil
}

// Load reads a pixio dump from r and rebuilds the PixelBuffer it
// describes. The header is validated against the buffer invariants before
// any pixel data is decompressed.
func Load(r io.Reader) (*pixbuf.PixelBuffer, error) {
	var h header
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return nil, fmt.Errorf("%w: reading header: %v", ErrFormat, err)
	}
	if h.Magic != magic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrFormat, h.Magic[:])
	}
	if h.Version != version {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrFormat, h.Version)
	}
	depth := pixbuf.Depth(h.Depth)
	if !depth.Valid() {
		return nil, fmt.Errorf("%w: unsupported depth %d", ErrFormat, h.Depth)
	}
	width, height := int(h.Width), int(h.Height)
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrFormat, width, height)
	}
	if int64(depth.RowStride(width))*int64(height) > maxPixelBytes {
		return nil, fmt.Errorf("%w: pixel data too large for %dx%d at %d bpp", ErrFormat, width, height, depth)
	}

	pix, err := pixbuf.New(width, height, depth)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: reading pixel data: %v", ErrFormat, err)
	}
	defer dec.Close()

	if _, err := io.ReadFull(dec, pix.Bytes()); err != nil {
		return nil, fmt.Errorf("%w: pixel data truncated: %v", ErrFormat, err)
	}
	// A trailing byte means the dump disagrees with its own header.
	var extra [1]byte
	if n, _ := dec.Read(extra[:]); n != 0 {
		return nil, fmt.Errorf("%w: pixel data longer than header geometry", ErrFormat)
	}
	return pix, nil
}
