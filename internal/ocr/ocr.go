// Package ocr runs Tesseract text recognition over converted PixelBuffers.
//
// This is the downstream consumer the read layer feeds. Tesseract and the
// language data must be installed on the system (e.g. tesseract-ocr and
// tesseract-ocr-eng on Debian/Ubuntu).
package ocr

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/folkevil/textfairy/pixbuf"
)

// Bounds is a rectangular bounding box in pixel coordinates of the source
// buffer.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge
	Y2 int `json:"y2"` // Bottom edge
}

// Word is one recognized word with its location and confidence.
type Word struct {
	// Text is the recognized word.
	Text string `json:"text"`

	// Confidence is the recognition confidence (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	// Bounds is the word's bounding box in the source buffer.
	Bounds Bounds `json:"bounds"`
}

// Result contains the text extracted from one PixelBuffer.
type Result struct {
	// FullText is all recognized text with original spacing and newlines.
	FullText string `json:"full_text"`

	// Words holds per-word locations and confidences. May be empty if
	// bounding box extraction fails; FullText is still populated then.
	Words []Word `json:"words"`
}

// ExtractText recognizes text in an 8 or 32 bpp PixelBuffer.
//
// The buffer is encoded to PNG in memory and handed to Tesseract; the
// buffer itself is not modified or retained. OCR is CPU-intensive — crop
// or downscale large pages before converting when precision allows.
func ExtractText(pix *pixbuf.PixelBuffer, language string) (*Result, error) {
	if pix == nil {
		return nil, fmt.Errorf("ocr: buffer must be non-nil")
	}
	img, err := pix.Image()
	if err != nil {
		return nil, fmt.Errorf("ocr: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode buffer: %w", err)
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		// Return just the text if boxes fail.
		return &Result{FullText: text, Words: []Word{}}, nil
	}

	words := make([]Word, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		words = append(words, Word{
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
			Bounds: Bounds{
				X1: box.Box.Min.X,
				Y1: box.Box.Min.Y,
				X2: box.Box.Max.X,
				Y2: box.Box.Max.Y,
			},
		})
	}

	return &Result{FullText: text, Words: words}, nil
}
