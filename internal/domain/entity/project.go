package entity

// ProjectImage is the source image metadata for a project card.
type ProjectImage struct {
	Src    string `json:"src"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ProjectLink is one call-to-action link on a project card. Rel and Target
// are rewritten by the worker based on whether Href is external.
type ProjectLink struct {
	Label  string `json:"label"`
	Href   string `json:"href"`
	Rel    string `json:"rel,omitempty"`
	Target string `json:"target,omitempty"`
}

// Project is the raw content-layer record.
type Project struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Technologies []string      `json:"technologies"`
	Image        ProjectImage  `json:"image"`
	Links        []ProjectLink `json:"links"`
}

// TechChip is a technology tag with its display color.
type TechChip struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// OptimizedProject is a project enriched for rendering: colored tech chips,
// image aspect ratio, an inline SVG placeholder, and rewritten links.
type OptimizedProject struct {
	Project
	TechChips   []TechChip `json:"techChips"`
	AspectRatio float64    `json:"aspectRatio"`
	Placeholder string     `json:"placeholder"`
}
