package worker

import (
	"math"

	"portfolio/internal/domain/entity"
)

const defaultScrollThreshold = 0.1

// optimizeScroll computes each element's intersection with the viewport
// window [scrollY, scrollY+windowHeight].
func optimizeScroll(req entity.ScrollRequest) []entity.ScrollPosition {
	viewTop := req.ScrollY
	viewBottom := req.ScrollY + req.WindowHeight

	out := make([]entity.ScrollPosition, 0, len(req.Elements))
	for _, el := range req.Elements {
		top := el.OffsetTop
		bottom := el.OffsetTop + el.OffsetHeight

		overlap := math.Max(0, math.Min(bottom, viewBottom)-math.Max(top, viewTop))
		var ratio float64
		if el.OffsetHeight > 0 {
			ratio = overlap / el.OffsetHeight
		}

		threshold := el.Threshold
		if threshold == 0 {
			threshold = defaultScrollThreshold
		}

		// Signed gap to the nearer viewport edge; zero while overlapping.
		var distance float64
		if overlap == 0 {
			if bottom <= viewTop {
				distance = bottom - viewTop
			} else {
				distance = top - viewBottom
			}
		}

		out = append(out, entity.ScrollPosition{
			ID:                   el.ID,
			IntersectionRatio:    ratio,
			IsVisible:            ratio > threshold,
			DistanceFromViewport: distance,
		})
	}
	return out
}
