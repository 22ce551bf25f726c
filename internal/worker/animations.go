package worker

import (
	"math"

	"portfolio/internal/domain/entity"
)

// animateElements computes per-element scroll progress, applies cubic
// ease-in-out, and interpolates each property pair. Non-numeric pairs snap
// from start to end once the eased progress passes the halfway point.
func animateElements(req entity.AnimationRequest) []entity.AnimatedElement {
	out := make([]entity.AnimatedElement, 0, len(req.Elements))
	for _, el := range req.Elements {
		span := el.EndOffset - el.StartOffset
		var progress float64
		if span != 0 {
			progress = clamp((req.ScrollProgress-el.StartOffset)/span, 0, 1)
		}
		eased := easeInOutCubic(progress)

		props := make(map[string]any, len(el.Properties))
		for name, p := range el.Properties {
			start, startNum := toFloat(p.Start)
			end, endNum := toFloat(p.End)
			switch {
			case startNum && endNum:
				props[name] = start + (end-start)*eased
			case eased > 0.5:
				props[name] = p.End
			default:
				props[name] = p.Start
			}
		}

		out = append(out, entity.AnimatedElement{
			ID:         el.ID,
			Progress:   progress,
			Properties: props,
			IsVisible:  progress > 0 && progress < 1,
		})
	}
	return out
}

// easeInOutCubic: t<0.5 ? 4t³ : 1-(-2t+2)³/2
func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// toFloat widens any numeric payload value to float64. JSON decoding hands
// numbers over as float64 already; typed callers may pass ints.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
