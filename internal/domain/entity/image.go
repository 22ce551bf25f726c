package entity

// Breakpoint is one responsive width with its encode quality.
type Breakpoint struct {
	Width   int `json:"width"`
	Quality int `json:"quality"`
}

// ImageInput describes one source image for optimization metadata.
type ImageInput struct {
	Src    string `json:"src"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// OptimizedImage carries the responsive breakpoint table filtered to the
// source width, the derived srcset, and estimated compression savings.
type OptimizedImage struct {
	Src            string       `json:"src"`
	SrcSet         string       `json:"srcset"`
	Breakpoints    []Breakpoint `json:"breakpoints"`
	OriginalKB     float64      `json:"originalKB"`
	CompressedKB   float64      `json:"compressedKB"`
	SavingsPercent float64      `json:"savingsPercent"`
}
