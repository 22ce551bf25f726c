package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"

	"portfolio/internal/domain/entity"
)

const (
	lqipWidth = 24
	lqipBlur  = 1.5
)

// PlaceholderService renders low-quality image placeholders and
// breakpoint-sized variants for the images the worker routine only
// describes. The worker computes srcsets and size estimates from
// metadata; this service produces the actual pixels.
type PlaceholderService struct{}

func NewPlaceholderService() *PlaceholderService {
	return &PlaceholderService{}
}

// LQIP decodes src and returns a tiny blurred preview encoded as a
// base64 JPEG data URL, suitable for inlining while the full image loads.
func (s *PlaceholderService) LQIP(src []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return "", fmt.Errorf("image decode failed: %w", err)
	}

	thumb := imaging.Resize(img, lqipWidth, 0, imaging.Lanczos)
	thumb = imaging.Blur(thumb, lqipBlur)

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, thumb, &jpeg.Options{Quality: 40}); err != nil {
		return "", fmt.Errorf("jpeg encode failed: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Variant is one resized rendition of a source image.
type Variant struct {
	Width   int
	Quality int
	Data    []byte
}

// Variants resizes src to each breakpoint no wider than the original,
// matching the breakpoint table the worker routine reports in srcsets.
func (s *PlaceholderService) Variants(src []byte, breakpoints []entity.Breakpoint) ([]Variant, error) {
	img, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	width := img.Bounds().Dx()
	variants := make([]Variant, 0, len(breakpoints))
	for _, bp := range breakpoints {
		if bp.Width > width {
			continue
		}
		resized := imaging.Resize(img, bp.Width, 0, imaging.Lanczos)

		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, resized, &jpeg.Options{Quality: bp.Quality}); err != nil {
			return nil, fmt.Errorf("jpeg encode failed: %w", err)
		}
		variants = append(variants, Variant{Width: bp.Width, Quality: bp.Quality, Data: buf.Bytes()})
	}
	return variants, nil
}
