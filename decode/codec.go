// Package decode implements the decode and load collaborators consumed by
// the readfile package. Encoded input in any registered format (JPEG, PNG,
// GIF, BMP, TIFF, WebP) is decoded and normalized to the NRGBA layout the
// conversion layer requires.
//
// The package performs no caching: every Decode, LoadFile, and LoadURL
// call re-reads its source and returns a bitmap backed by fresh memory.
package decode

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"net/http"
	"os"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Codec decodes encoded image bytes and loads images from files or URLs.
// It is stateless apart from its HTTP client and safe for concurrent use.
type Codec struct {
	client *http.Client
}

// NewCodec creates a Codec with a 30-second HTTP timeout.
func NewCodec() *Codec {
	return &Codec{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Decode decodes encoded image bytes into an NRGBA bitmap.
func (c *Codec) Decode(data []byte) (*image.NRGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return imaging.Clone(img), nil
}

// LoadFile reads and decodes an image file into an NRGBA bitmap. The file
// is read in full on every call; nothing is retained afterwards.
func (c *Codec) LoadFile(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", path, err)
	}
	return imaging.Clone(img), nil
}

// LoadURL fetches and decodes an image over HTTP into an NRGBA bitmap.
// The request asks intermediaries not to serve cached copies, matching the
// one-shot load contract.
func (c *Codec) LoadURL(uri string) (*image.NRGBA, error) {
	req, err := http.NewRequest(http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid image URL %q: %w", uri, err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image %q: %w", uri, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to fetch image %q: status %s", uri, resp.Status)
	}

	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", uri, err)
	}
	return imaging.Clone(img), nil
}
