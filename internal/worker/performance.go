package worker

import (
	"math"

	"portfolio/internal/domain/entity"
)

// Score penalties, applied to a 100-point budget and floored at zero.
const (
	fcpBudgetMs  = 1800
	lcpBudgetMs  = 2500
	dclBudgetMs  = 1500
	slowResource = 1000
)

// scorePerformance derives paint and load milestones from the collected
// timing entries and grades them. Missing entries stay at their zero
// defaults rather than failing the task.
func scorePerformance(req entity.MetricsRequest) entity.PerformanceReport {
	var fcp, lcp float64
	for _, e := range req.PaintEntries {
		switch e.Name {
		case "first-contentful-paint":
			fcp = e.StartTime
		case "largest-contentful-paint":
			lcp = e.StartTime
		}
	}

	dcl := math.Max(0, req.Navigation.DOMContentLoadedEventEnd-req.Navigation.FetchStart)
	load := math.Max(0, req.Navigation.LoadEventEnd-req.Navigation.FetchStart)

	slow := 0
	for _, r := range req.Resources {
		if r.Duration > slowResource {
			slow++
		}
	}

	score := 100
	if fcp > fcpBudgetMs {
		score -= 20
	}
	if lcp > lcpBudgetMs {
		score -= 25
	}
	if dcl > dclBudgetMs {
		score -= 15
	}
	score -= 5 * slow
	if score < 0 {
		score = 0
	}

	return entity.PerformanceReport{
		FCP:              fcp,
		LCP:              lcp,
		DOMContentLoaded: dcl,
		LoadComplete:     load,
		SlowResources:    slow,
		PerformanceScore: score,
	}
}
