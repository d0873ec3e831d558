package decode

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"golang.org/x/image/bmp"
)

// patternImage builds an RGBA image with distinct corner colors.
func patternImage(t *testing.T, width, height int) *image.RGBA {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), B: 128, A: 255})
		}
	}
	return img
}

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode PNG: %v", err)
	}
	return buf.Bytes()
}

func TestDecode_PNG(t *testing.T) {
	codec := NewCodec()
	data := encodePNG(t, patternImage(t, 20, 10))

	bm, err := codec.Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if bm.Bounds().Dx() != 20 || bm.Bounds().Dy() != 10 {
		t.Errorf("dimensions: got %dx%d, want 20x10", bm.Bounds().Dx(), bm.Bounds().Dy())
	}
	if got := bm.NRGBAAt(2, 3); got != (color.NRGBA{R: 16, G: 24, B: 128, A: 255}) {
		t.Errorf("pixel (2,3): got %v", got)
	}
}

func TestDecode_BMP(t *testing.T) {
	codec := NewCodec()
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, patternImage(t, 6, 4)); err != nil {
		t.Fatalf("failed to encode BMP: %v", err)
	}

	bm, err := codec.Decode(buf.Bytes())
	if err != nil {
		t.Fatalf("Decode failed for BMP: %v", err)
	}
	if bm.Bounds().Dx() != 6 || bm.Bounds().Dy() != 4 {
		t.Errorf("dimensions: got %dx%d, want 6x4", bm.Bounds().Dx(), bm.Bounds().Dy())
	}
}

func TestDecode_Garbage(t *testing.T) {
	codec := NewCodec()
	if _, err := codec.Decode([]byte("definitely not an image")); err == nil {
		t.Error("Decode should fail for non-image data")
	}
}

func TestLoadFile(t *testing.T) {
	codec := NewCodec()

	f, err := os.CreateTemp("", "codec-*.png")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	if err := png.Encode(f, patternImage(t, 12, 9)); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	f.Close()
	defer os.Remove(f.Name())

	bm, err := codec.LoadFile(f.Name())
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if bm.Bounds().Dx() != 12 || bm.Bounds().Dy() != 9 {
		t.Errorf("dimensions: got %dx%d, want 12x9", bm.Bounds().Dx(), bm.Bounds().Dy())
	}
}

func TestLoadFile_Missing(t *testing.T) {
	codec := NewCodec()
	if _, err := codec.LoadFile("/nonexistent/image.png"); err == nil {
		t.Error("LoadFile should fail for a missing file")
	}
}

func TestLoadURL(t *testing.T) {
	codec := NewCodec()
	data := encodePNG(t, patternImage(t, 16, 8))

	var gotCacheControl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCacheControl = r.Header.Get("Cache-Control")
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}))
	defer srv.Close()

	bm, err := codec.LoadURL(srv.URL + "/scan.png")
	if err != nil {
		t.Fatalf("LoadURL failed: %v", err)
	}
	if bm.Bounds().Dx() != 16 || bm.Bounds().Dy() != 8 {
		t.Errorf("dimensions: got %dx%d, want 16x8", bm.Bounds().Dx(), bm.Bounds().Dy())
	}
	if gotCacheControl != "no-cache" {
		t.Errorf("request Cache-Control: got %q, want no-cache", gotCacheControl)
	}
}

func TestLoadURL_Failures(t *testing.T) {
	codec := NewCodec()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := codec.LoadURL(srv.URL + "/gone.png"); err == nil {
		t.Error("LoadURL should fail for a 404 response")
	}
	if _, err := codec.LoadURL("http://127.0.0.1:1/unreachable.png"); err == nil {
		t.Error("LoadURL should fail for an unreachable host")
	}
	if _, err := codec.LoadURL("::not a url::"); err == nil {
		t.Error("LoadURL should fail for an invalid URL")
	}
}
