package worker

import (
	"fmt"
	"math"
	"strings"

	"portfolio/internal/domain/entity"
)

// responsiveBreakpoints is the fixed width/quality table; only widths not
// exceeding the source end up in the srcset.
var responsiveBreakpoints = []entity.Breakpoint{
	{Width: 640, Quality: 85},
	{Width: 768, Quality: 85},
	{Width: 1024, Quality: 80},
	{Width: 1280, Quality: 80},
	{Width: 1920, Quality: 75},
}

// compressionRatios estimate output size as a fraction of an uncompressed
// 3-bytes-per-pixel original.
var compressionRatios = map[string]float64{
	"webp": 0.25,
	"avif": 0.15,
	"jpeg": 0.3,
	"jpg":  0.3,
	"png":  0.8,
}

const (
	defaultCompressionRatio = 0.5
	bytesPerPixel           = 3
)

// optimizeImages computes responsive-serving metadata for each image:
// applicable breakpoints, the srcset string, and estimated savings.
func optimizeImages(list []entity.ImageInput) []entity.OptimizedImage {
	out := make([]entity.OptimizedImage, 0, len(list))
	for _, img := range list {
		var parts []string
		var applicable []entity.Breakpoint
		for _, bp := range responsiveBreakpoints {
			if bp.Width <= img.Width {
				applicable = append(applicable, bp)
				parts = append(parts, fmt.Sprintf("%s?w=%d&q=%d %dw", img.Src, bp.Width, bp.Quality, bp.Width))
			}
		}

		ratio, ok := compressionRatios[strings.ToLower(img.Format)]
		if !ok {
			ratio = defaultCompressionRatio
		}
		originalBytes := float64(img.Width) * float64(img.Height) * bytesPerPixel

		out = append(out, entity.OptimizedImage{
			Src:            img.Src,
			SrcSet:         strings.Join(parts, ", "),
			Breakpoints:    applicable,
			OriginalKB:     roundKB(originalBytes),
			CompressedKB:   roundKB(originalBytes * ratio),
			SavingsPercent: math.Round((1-ratio)*10000) / 100,
		})
	}
	return out
}

func roundKB(bytes float64) float64 {
	return math.Round(bytes/1024*100) / 100
}
