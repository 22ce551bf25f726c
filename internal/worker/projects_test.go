package worker

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/domain/entity"
)

func TestOptimizeProjects(t *testing.T) {
	out := optimizeProjects([]entity.Project{{
		ID:           "p1",
		Title:        "Portfolio",
		Technologies: []string{"React", "TypeScript", "SomethingObscure"},
		Image:        entity.ProjectImage{Src: "/img/p1.png", Width: 1600, Height: 900},
		Links: []entity.ProjectLink{
			{Label: "Live", Href: "https://example.com"},
			{Label: "Case study", Href: "/projects/p1"},
		},
	}})
	require.Len(t, out, 1)
	p := out[0]

	require.Len(t, p.TechChips, 3)
	assert.Equal(t, "#61dafb", p.TechChips[0].Color, "known tech uses the palette")
	assert.Equal(t, "#3178c6", p.TechChips[1].Color)
	assert.True(t, strings.HasPrefix(p.TechChips[2].Color, "hsl("), "unknown tech falls back to hash color")

	assert.InDelta(t, 16.0/9.0, p.AspectRatio, 1e-9)

	require.Len(t, p.Links, 2)
	assert.Equal(t, "_blank", p.Links[0].Target)
	assert.Equal(t, "noopener noreferrer", p.Links[0].Rel)
	assert.Equal(t, "_self", p.Links[1].Target)
	assert.Empty(t, p.Links[1].Rel)
}

func TestOptimizeProjects_DoesNotMutateInput(t *testing.T) {
	in := []entity.Project{{
		Links: []entity.ProjectLink{{Href: "https://example.com"}},
	}}
	optimizeProjects(in)
	assert.Empty(t, in[0].Links[0].Target)
}

func TestSVGPlaceholder(t *testing.T) {
	data := svgPlaceholder(1600, 900)
	require.True(t, strings.HasPrefix(data, "data:image/svg+xml;base64,"))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(data, "data:image/svg+xml;base64,"))
	require.NoError(t, err)
	svg := string(raw)
	assert.Contains(t, svg, `width="1600"`)
	assert.Contains(t, svg, `height="900"`)
}

func TestSVGPlaceholder_Bounded(t *testing.T) {
	data := svgPlaceholder(-10, 999999)
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(data, "data:image/svg+xml;base64,"))
	require.NoError(t, err)
	svg := string(raw)
	assert.Contains(t, svg, `width="1"`)
	assert.Contains(t, svg, `height="4000"`)
}

func TestOptimizeProjects_ZeroHeightImage(t *testing.T) {
	out := optimizeProjects([]entity.Project{{Image: entity.ProjectImage{Width: 100}}})
	assert.Zero(t, out[0].AspectRatio)
}
