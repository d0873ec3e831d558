package readfile

import (
	"fmt"

	"github.com/folkevil/textfairy/pixbuf"
)

// ReadGray8 builds an 8 bpp PixelBuffer from raw grayscale pixel data.
// The first width*height bytes of data are copied verbatim; extra trailing
// bytes are ignored. Unlike the encoded read paths, the input here comes
// from the calling code itself, so malformed arguments are raised as
// errors wrapping ErrInvalidArgument rather than swallowed.
func ReadGray8(data []byte, width, height int) (*pixbuf.PixelBuffer, error) {
	if err := checkGray8Args(data, width, height); err != nil {
		return nil, err
	}

	pix, err := pixbuf.New(width, height, pixbuf.Depth8)
	if err != nil {
		// Arguments were already validated; New failing here means the
		// buffer layer itself is broken.
		return nil, fmt.Errorf("%w: allocating %dx%d gray buffer: %v", ErrInternal, width, height, err)
	}
	if n := copy(pix.Bytes(), data[:width*height]); n != width*height {
		return nil, fmt.Errorf("%w: short copy into %dx%d gray buffer: %d bytes", ErrInternal, width, height, n)
	}
	return pix, nil
}

// ReplaceGray8 overwrites the pixel content of an existing 8 bpp buffer
// with new grayscale data of identical dimensions. The buffer's storage is
// reused; no reallocation or resizing takes place.
//
// Argument and geometry mismatches (nil target, wrong depth, dimensions
// that differ from the target's) are raised as ErrInvalidArgument errors.
// A false return with a nil error reports a mechanical copy failure, which
// can only happen if the target's storage was corrupted through Bytes; in
// that case the target's content is left unchanged — the copy is
// all-or-nothing.
func ReplaceGray8(target *pixbuf.PixelBuffer, data []byte, width, height int) (bool, error) {
	if target == nil {
		return false, fmt.Errorf("%w: target buffer must be non-nil", ErrInvalidArgument)
	}
	if err := checkGray8Args(data, width, height); err != nil {
		return false, err
	}
	if target.Depth() != pixbuf.Depth8 {
		return false, fmt.Errorf("%w: target depth is %d bpp, want 8", ErrInvalidArgument, target.Depth())
	}
	if target.Width() != width {
		return false, fmt.Errorf("%w: target width %d does not match image width %d", ErrInvalidArgument, target.Width(), width)
	}
	if target.Height() != height {
		return false, fmt.Errorf("%w: target height %d does not match image height %d", ErrInvalidArgument, target.Height(), height)
	}

	// Checked up front so a corrupted target is reported before any byte
	// moves, keeping the replacement all-or-nothing.
	if len(target.Bytes()) < width*height {
		return false, nil
	}
	copy(target.Bytes(), data[:width*height])
	return true, nil
}

func checkGray8Args(data []byte, width, height int) error {
	if len(data) == 0 {
		return fmt.Errorf("%w: pixel data must be non-empty", ErrInvalidArgument)
	}
	if width <= 0 {
		return fmt.Errorf("%w: image width must be greater than 0, got %d", ErrInvalidArgument, width)
	}
	if height <= 0 {
		return fmt.Errorf("%w: image height must be greater than 0, got %d", ErrInvalidArgument, height)
	}
	if len(data) < width*height {
		return fmt.Errorf("%w: %d bytes cannot hold %dx%d pixels", ErrInvalidArgument, len(data), width, height)
	}
	return nil
}
