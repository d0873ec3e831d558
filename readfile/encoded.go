package readfile

import (
	"os"

	"github.com/folkevil/textfairy/pixbuf"
)

// ReadBytes decodes an encoded image held in memory and converts it into a
// 32 bpp PixelBuffer. Nil or empty input is the normal "nothing to load"
// case and yields nil immediately. Decode failures are logged and yield
// nil; encoded bytes are untrusted input and must never raise.
func (r *Reader) ReadBytes(data []byte) *pixbuf.PixelBuffer {
	if len(data) == 0 {
		return nil
	}
	bm, err := r.dec.Decode(data)
	if err != nil {
		r.log.Warn("could not decode image data", "size", len(data), "error", err)
		return nil
	}
	// bm is transient: FromBitmap copies its pixels and it is dropped here.
	return r.FromBitmap(bm)
}

// ReadFile loads and decodes an encoded image file. A missing, unreadable,
// or non-regular file is an environmental condition: it is logged and
// yields nil, never an error. Loads bypass any caching layer; every call
// re-reads the file.
func (r *Reader) ReadFile(path string) *pixbuf.PixelBuffer {
	if path == "" {
		r.log.Warn("file path must be non-empty")
		return nil
	}
	if !exists(path) {
		r.log.Warn("file does not exist", "path", path)
		return nil
	}
	if !readable(path) {
		r.log.Warn("cannot read file", "path", path)
		return nil
	}

	bm, err := r.loader.LoadFile(path)
	if err != nil {
		r.log.Warn("could not load image file", "path", path, "error", err)
		return nil
	}
	return r.FromBitmap(bm)
}

// ReadURL fetches and decodes an encoded image from a URL. Fetch and
// decode failures are logged and yield nil. Like ReadFile, every call is
// one-shot: nothing is cached or reused between calls.
func (r *Reader) ReadURL(uri string) *pixbuf.PixelBuffer {
	if uri == "" {
		r.log.Warn("image URL must be non-empty")
		return nil
	}
	bm, err := r.loader.LoadURL(uri)
	if err != nil {
		r.log.Warn("could not load image URL", "url", uri, "error", err)
		return nil
	}
	return r.FromBitmap(bm)
}

// Thin OS wrappers for the pre-checks on path input.

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func readable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	f.Close()
	return true
}
