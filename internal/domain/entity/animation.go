package entity

// AnimationProperty is a start/end pair for one animated CSS property.
// Numeric pairs are interpolated; anything else snaps from Start to End at
// the halfway point of the eased progress.
type AnimationProperty struct {
	Start any `json:"start"`
	End   any `json:"end"`
}

// AnimationElement describes one scroll-bound element before processing.
type AnimationElement struct {
	ID          string                       `json:"id"`
	StartOffset float64                      `json:"startOffset"`
	EndOffset   float64                      `json:"endOffset"`
	Properties  map[string]AnimationProperty `json:"properties"`
}

// AnimationRequest is the PROCESS_ANIMATIONS payload.
type AnimationRequest struct {
	ScrollProgress float64            `json:"scrollProgress"`
	Elements       []AnimationElement `json:"elements"`
}

// AnimatedElement is one element after easing and interpolation.
type AnimatedElement struct {
	ID         string         `json:"id"`
	Progress   float64        `json:"progress"`
	Properties map[string]any `json:"properties"`
	IsVisible  bool           `json:"isVisible"`
}
