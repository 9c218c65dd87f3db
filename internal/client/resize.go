package client

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/disintegration/imaging"
)

const (
	// DefaultMaxDimension bounds the longest side of an upload.
	DefaultMaxDimension = 1080

	// jpegQuality matches the 0.7 compression the mobile flow used.
	jpegQuality = 70
)

// ErrInvalidDimensions: the picked image has no usable width/height
// (zero-sized or undecodable).
var ErrInvalidDimensions = errors.New("invalid image dimensions")

// Resize downscales an image so neither side exceeds maxDimension and
// re-encodes it as JPEG. Images already within bounds are never
// upscaled, only re-encoded.
func Resize(data []byte, maxDimension int) ([]byte, error) {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}

	src, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDimensions, err)
	}

	bounds := src.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, ErrInvalidDimensions
	}

	targetW, targetH := targetDimensions(width, height, maxDimension)
	if targetW != width || targetH != height {
		src = imaging.Resize(src, targetW, targetH, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, src, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// targetDimensions applies one uniform scale factor to both sides,
// capped at 1 so images are never blown up.
func targetDimensions(width, height, maxDimension int) (int, int) {
	ratio := math.Min(
		float64(maxDimension)/float64(width),
		float64(maxDimension)/float64(height),
	)
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Round(float64(width) * ratio)),
		int(math.Round(float64(height) * ratio))
}
