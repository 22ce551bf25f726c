package entity

// Star is one of the five descriptors rendered for a rating.
type Star struct {
	Index      int  `json:"index"`
	Filled     bool `json:"filled"`
	HalfFilled bool `json:"halfFilled,omitempty"`
	Empty      bool `json:"empty,omitempty"`
}

// Testimonial is the raw content-layer record.
type Testimonial struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Company string  `json:"company"`
	Quote   string  `json:"quote"`
	Rating  float64 `json:"rating"`
}

// TextMetrics summarizes a testimonial quote for layout decisions.
type TextMetrics struct {
	Length            int `json:"length"`
	WordCount         int `json:"wordCount"`
	EstimatedReadTime int `json:"estimatedReadTime"`
}

// ProcessedTestimonial is a testimonial enriched for rendering.
type ProcessedTestimonial struct {
	Testimonial
	Stars        []Star      `json:"stars"`
	TextMetrics  TextMetrics `json:"textMetrics"`
	CompanyColor string      `json:"companyColor"`
	AriaLabel    string      `json:"ariaLabel"`
}

// StarRatingInput is one CALCULATE_STAR_RATINGS item.
type StarRatingInput struct {
	Rating float64 `json:"rating"`
	ID     string  `json:"id"`
}

// StarRating is the computed descriptor set for one rating.
type StarRating struct {
	ID     string  `json:"id"`
	Rating float64 `json:"rating"`
	Stars  []Star  `json:"stars"`
}
