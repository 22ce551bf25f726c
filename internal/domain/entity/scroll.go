package entity

// ScrollElement describes one element's layout box for intersection math.
// Threshold defaults to 0.1 when zero.
type ScrollElement struct {
	ID           string  `json:"id"`
	OffsetTop    float64 `json:"offsetTop"`
	OffsetHeight float64 `json:"offsetHeight"`
	Threshold    float64 `json:"threshold,omitempty"`
}

// ScrollRequest is the OPTIMIZE_SCROLL_CALCULATIONS payload.
type ScrollRequest struct {
	ScrollY      float64         `json:"scrollY"`
	WindowHeight float64         `json:"windowHeight"`
	Elements     []ScrollElement `json:"elements"`
}

// ScrollPosition is one element's intersection result. DistanceFromViewport
// is the signed gap to the nearer viewport edge: negative above, positive
// below, zero while overlapping.
type ScrollPosition struct {
	ID                   string  `json:"id"`
	IntersectionRatio    float64 `json:"intersectionRatio"`
	IsVisible            bool    `json:"isVisible"`
	DistanceFromViewport float64 `json:"distanceFromViewport"`
}
