package entity

// PaintTimingEntry mirrors one browser paint-timing entry.
type PaintTimingEntry struct {
	Name      string  `json:"name"`
	StartTime float64 `json:"startTime"`
}

// NavigationTiming carries the navigation-timing fields the scorer needs,
// all in milliseconds from the timing origin.
type NavigationTiming struct {
	FetchStart               float64 `json:"fetchStart"`
	DOMContentLoadedEventEnd float64 `json:"domContentLoadedEventEnd"`
	LoadEventEnd             float64 `json:"loadEventEnd"`
}

// ResourceEntry mirrors one resource-timing entry.
type ResourceEntry struct {
	Name     string  `json:"name"`
	Duration float64 `json:"duration"`
}

// MetricsRequest is the CALCULATE_PERFORMANCE_METRICS payload.
type MetricsRequest struct {
	PaintEntries []PaintTimingEntry `json:"paintEntries"`
	Navigation   NavigationTiming   `json:"navigation"`
	Resources    []ResourceEntry    `json:"resources"`
}

// PerformanceReport is the derived page-performance summary. Score starts at
// 100 and loses fixed penalties per slow metric, floored at 0.
type PerformanceReport struct {
	FCP              float64 `json:"fcp"`
	LCP              float64 `json:"lcp"`
	DOMContentLoaded float64 `json:"domContentLoaded"`
	LoadComplete     float64 `json:"loadComplete"`
	SlowResources    int     `json:"slowResources"`
	PerformanceScore int     `json:"performanceScore"`
}
