package service

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"io"

	"golang.org/x/image/draw"
)

// DefaultThumbnailWidth is used when no width is configured.
const DefaultThumbnailWidth = 240

// DefaultMaxPixels bounds width*height of decoded images when no limit is
// configured.
const DefaultMaxPixels = 40_000_000

const thumbnailQuality = 85

// ErrImageDimensions reports an image whose declared size is unusable.
var ErrImageDimensions = errors.New("image dimensions out of range")

// ThumbnailRenderer scales JPEG images down to a bounded width.
type ThumbnailRenderer interface {
	// Render decodes src and returns a JPEG no wider than maxWidth, keeping
	// the aspect ratio. Images already narrow enough keep their size.
	Render(src io.Reader, maxWidth int) ([]byte, error)
}

// JPEGThumbnailRenderer implements ThumbnailRenderer with Catmull-Rom resampling.
// Images declaring more than MaxPixels pixels are refused before decoding;
// zero selects DefaultMaxPixels.
type JPEGThumbnailRenderer struct {
	MaxPixels int64
}

var _ ThumbnailRenderer = JPEGThumbnailRenderer{}

// Render implements ThumbnailRenderer.
func (r JPEGThumbnailRenderer) Render(src io.Reader, maxWidth int) ([]byte, error) {
	if maxWidth <= 0 {
		maxWidth = DefaultThumbnailWidth
	}

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	cfg, err := jpeg.DecodeConfig(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image header: %w", err)
	}
	if err := checkPixels(cfg, r.MaxPixels); err != nil {
		return nil, err
	}

	img, err := jpeg.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	width, height := thumbnailSize(img.Bounds(), maxWidth)
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: thumbnailQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}

// checkPixels reports whether the dimensions cfg declares fit within
// maxPixels. A non-positive maxPixels selects DefaultMaxPixels.
func checkPixels(cfg image.Config, maxPixels int64) error {
	if maxPixels <= 0 {
		maxPixels = DefaultMaxPixels
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrImageDimensions, cfg.Width, cfg.Height)
	}
	if int64(cfg.Width)*int64(cfg.Height) > maxPixels {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels",
			ErrImageDimensions, cfg.Width, cfg.Height, maxPixels)
	}
	return nil
}

// thumbnailSize returns the scaled dimensions of bounds for maxWidth.
func thumbnailSize(bounds image.Rectangle, maxWidth int) (int, int) {
	width, height := bounds.Dx(), bounds.Dy()
	if width <= maxWidth {
		return width, height
	}
	scaled := height * maxWidth / width
	if scaled < 1 {
		scaled = 1
	}
	return maxWidth, scaled
}
