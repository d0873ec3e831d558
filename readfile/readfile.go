package readfile

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/folkevil/textfairy/pixbuf"
)

// Sentinel errors for the two raised failure classes. Environmental
// failures are never raised; they surface as a nil buffer plus a warning
// log (see the package documentation).
var (
	// ErrInvalidArgument marks a defect in the calling code: nil or
	// undersized buffers, non-positive dimensions, mismatched geometry.
	ErrInvalidArgument = errors.New("readfile: invalid argument")

	// ErrInternal marks a failure of the conversion layer itself, distinct
	// from both caller mistakes and environmental misses.
	ErrInternal = errors.New("readfile: internal failure")
)

// Decoder turns encoded image bytes into a decoded NRGBA bitmap. The
// bitmap is consumed by the Reader and must not be retained by the
// implementation after Decode returns.
type Decoder interface {
	Decode(data []byte) (*image.NRGBA, error)
}

// Loader fetches and decodes an image from a filesystem path or a URL.
// Implementations must bypass any caching layer: every call re-reads the
// source and returns a bitmap backed by fresh memory.
type Loader interface {
	LoadFile(path string) (*image.NRGBA, error)
	LoadURL(uri string) (*image.NRGBA, error)
}

// Source is the discriminated input accepted by Reader.Read. Exactly one
// of BytesSource, FileSource, URLSource, or BitmapSource.
type Source interface {
	isSource()
}

// BytesSource is an encoded image held in memory (JPEG, PNG, BMP, ...).
type BytesSource []byte

// FileSource is a path to an encoded image on the local filesystem.
type FileSource string

// URLSource is a URL to an encoded image.
type URLSource string

// BitmapSource is an already-decoded bitmap. Only *image.NRGBA layouts
// convert; anything else yields the nothing-produced outcome.
type BitmapSource struct {
	Image image.Image
}

func (BytesSource) isSource()  {}
func (FileSource) isSource()   {}
func (URLSource) isSource()    {}
func (BitmapSource) isSource() {}

// Reader converts image sources into PixelBuffers using pluggable decode
// and load collaborators. Readers are stateless and safe for concurrent
// use; they hold no cache and retain nothing between calls.
type Reader struct {
	dec    Decoder
	loader Loader
	log    *slog.Logger
}

// New creates a Reader with explicit collaborators. A nil logger falls
// back to slog.Default. Tests substitute fake collaborators here to run
// without a real decoding or network stack.
func New(dec Decoder, loader Loader, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Reader{dec: dec, loader: loader, log: logger}
}

// Read converts any supported Source into a PixelBuffer. It performs no
// validation of its own; each input kind keeps the failure policy of its
// dedicated method. A nil or unknown source yields nil.
func (r *Reader) Read(src Source) *pixbuf.PixelBuffer {
	switch s := src.(type) {
	case BytesSource:
		return r.ReadBytes(s)
	case FileSource:
		return r.ReadFile(string(s))
	case URLSource:
		return r.ReadURL(string(s))
	case BitmapSource:
		return r.FromBitmap(s.Image)
	case nil:
		r.log.Warn("image source must be non-nil")
		return nil
	default:
		r.log.Warn("unsupported image source", "type", fmt.Sprintf("%T", s))
		return nil
	}
}
