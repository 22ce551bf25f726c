package worker

import (
	"encoding/base64"
	"fmt"
	"strings"

	"portfolio/internal/domain/entity"
)

// techPalette maps well-known technologies to their brand colors. Anything
// unknown falls back to a hash-derived HSL color so chips stay stable.
var techPalette = map[string]string{
	"react":      "#61dafb",
	"typescript": "#3178c6",
	"javascript": "#f7df1e",
	"next.js":    "#0070f3",
	"node.js":    "#339933",
	"go":         "#00add8",
	"tailwind":   "#38bdf8",
	"graphql":    "#e10098",
	"docker":     "#2496ed",
	"postgresql": "#336791",
	"redis":      "#dc382d",
	"aws":        "#ff9900",
}

const (
	minPlaceholderPx = 1
	maxPlaceholderPx = 4000
)

// optimizeProjects enriches each project card: colored technology chips,
// image aspect ratio, an inline SVG placeholder, and link rel/target
// rewritten by destination.
func optimizeProjects(list []entity.Project) []entity.OptimizedProject {
	out := make([]entity.OptimizedProject, 0, len(list))
	for _, p := range list {
		chips := make([]entity.TechChip, 0, len(p.Technologies))
		for _, tech := range p.Technologies {
			chips = append(chips, entity.TechChip{Name: tech, Color: chipColor(tech)})
		}

		var ratio float64
		if p.Image.Height > 0 {
			ratio = float64(p.Image.Width) / float64(p.Image.Height)
		}

		links := make([]entity.ProjectLink, len(p.Links))
		copy(links, p.Links)
		for i := range links {
			if strings.HasPrefix(links[i].Href, "http") {
				links[i].Target = "_blank"
				links[i].Rel = "noopener noreferrer"
			} else {
				links[i].Target = "_self"
				links[i].Rel = ""
			}
		}
		p.Links = links

		out = append(out, entity.OptimizedProject{
			Project:     p,
			TechChips:   chips,
			AspectRatio: ratio,
			Placeholder: svgPlaceholder(p.Image.Width, p.Image.Height),
		})
	}
	return out
}

func chipColor(tech string) string {
	if c, ok := techPalette[strings.ToLower(tech)]; ok {
		return c
	}
	return hslColor(tech, 65, 45)
}

// svgPlaceholder builds a flat-color inline SVG sized like the source image,
// bounded to sane pixel dimensions, as a base64 data URL.
func svgPlaceholder(width, height int) string {
	w := clampInt(width, minPlaceholderPx, maxPlaceholderPx)
	h := clampInt(height, minPlaceholderPx, maxPlaceholderPx)
	svg := fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d"><rect width="100%%" height="100%%" fill="#1f2937"/></svg>`,
		w, h, w, h)
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
