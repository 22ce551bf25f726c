package worker

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"portfolio/internal/domain/entity"
)

const wordsPerMinute = 200

// enrichTestimonials precomputes everything a testimonial card needs:
// star descriptors, text metrics, a stable per-company accent color, and
// an accessibility label.
func enrichTestimonials(list []entity.Testimonial) []entity.ProcessedTestimonial {
	out := make([]entity.ProcessedTestimonial, 0, len(list))
	for _, t := range list {
		stars := make([]entity.Star, 5)
		for i := range stars {
			filled := float64(i) < t.Rating
			stars[i] = entity.Star{Index: i, Filled: filled, Empty: !filled}
		}

		words := strings.Fields(t.Quote)
		readTime := int(math.Ceil(float64(len(words)) / wordsPerMinute))

		out = append(out, entity.ProcessedTestimonial{
			Testimonial: t,
			Stars:       stars,
			TextMetrics: entity.TextMetrics{
				Length:            utf8.RuneCountInString(t.Quote),
				WordCount:         len(words),
				EstimatedReadTime: readTime,
			},
			CompanyColor: hslColor(t.Company, 70, 50),
			AriaLabel:    fmt.Sprintf("Testimonial from %s at %s, rated %g out of 5 stars", t.Name, t.Company, t.Rating),
		})
	}
	return out
}

// hashString is the classic djb-style rolling hash (h*31 + c), kept for
// stable colors across page loads.
func hashString(s string) int32 {
	var h int32
	for _, r := range s {
		h = h*31 + int32(r)
	}
	return h
}

func hslColor(s string, saturation, lightness int) string {
	hue := int(math.Abs(float64(hashString(s)))) % 360
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, saturation, lightness)
}
