package client

import (
	"context"

	"portfolio/internal/domain/entity"
)

// Per-task convenience wrappers. Each one degrades gracefully: a failed or
// timed-out call logs and falls back to a safe equivalent of the input,
// because background optimization is additive and must never break the
// page that requested it.

func (c *Client) ProcessAnimations(ctx context.Context, req entity.AnimationRequest) []entity.AnimatedElement {
	resp, err := c.Call(ctx, entity.TaskProcessAnimations, req)
	if err != nil {
		c.log.Warn("animation processing fell back to raw elements", "error", err)
		return animationFallback(req)
	}
	out, ok := resp.Data.([]entity.AnimatedElement)
	if !ok {
		return animationFallback(req)
	}
	return out
}

func (c *Client) OptimizeScroll(ctx context.Context, req entity.ScrollRequest) []entity.ScrollPosition {
	resp, err := c.Call(ctx, entity.TaskOptimizeScroll, req)
	if err != nil {
		c.log.Warn("scroll optimization fell back to everything-visible", "error", err)
		return scrollFallback(req)
	}
	out, ok := resp.Data.([]entity.ScrollPosition)
	if !ok {
		return scrollFallback(req)
	}
	return out
}

func (c *Client) CalculateMetrics(ctx context.Context, req entity.MetricsRequest) entity.PerformanceReport {
	resp, err := c.Call(ctx, entity.TaskCalculateMetrics, req)
	if err != nil {
		c.log.Warn("metrics calculation skipped", "error", err)
		return entity.PerformanceReport{PerformanceScore: 100}
	}
	out, ok := resp.Data.(entity.PerformanceReport)
	if !ok {
		return entity.PerformanceReport{PerformanceScore: 100}
	}
	return out
}

func (c *Client) ProcessTestimonials(ctx context.Context, list []entity.Testimonial) []entity.ProcessedTestimonial {
	resp, err := c.Call(ctx, entity.TaskProcessTestimonials, list)
	if err != nil {
		c.log.Warn("testimonial processing fell back to raw input", "error", err)
		return testimonialFallback(list)
	}
	out, ok := resp.Data.([]entity.ProcessedTestimonial)
	if !ok {
		return testimonialFallback(list)
	}
	return out
}

func (c *Client) OptimizeProjects(ctx context.Context, list []entity.Project) []entity.OptimizedProject {
	resp, err := c.Call(ctx, entity.TaskOptimizeProjectData, list)
	if err != nil {
		c.log.Warn("project optimization fell back to raw input", "error", err)
		return projectFallback(list)
	}
	out, ok := resp.Data.([]entity.OptimizedProject)
	if !ok {
		return projectFallback(list)
	}
	return out
}

func (c *Client) CalculateStarRatings(ctx context.Context, in []entity.StarRatingInput) []entity.StarRating {
	resp, err := c.Call(ctx, entity.TaskCalculateStarRatings, in)
	if err != nil {
		c.log.Warn("star ratings fell back to whole stars", "error", err)
		return starFallback(in)
	}
	out, ok := resp.Data.([]entity.StarRating)
	if !ok {
		return starFallback(in)
	}
	return out
}

// ValidateContactForm assumes valid on failure; the delivery layer still
// guards itself, and a broken worker must not lock visitors out of the
// contact form.
func (c *Client) ValidateContactForm(ctx context.Context, form entity.ContactForm) entity.ContactValidation {
	resp, err := c.Call(ctx, entity.TaskProcessContactValidation, form)
	if err != nil {
		c.log.Warn("contact validation unavailable, assuming valid", "error", err)
		return validationFallback()
	}
	out, ok := resp.Data.(entity.ContactValidation)
	if !ok {
		return validationFallback()
	}
	return out
}

func (c *Client) OptimizeImages(ctx context.Context, list []entity.ImageInput) []entity.OptimizedImage {
	resp, err := c.Call(ctx, entity.TaskOptimizeImages, list)
	if err != nil {
		c.log.Warn("image optimization fell back to plain sources", "error", err)
		return imageFallback(list)
	}
	out, ok := resp.Data.([]entity.OptimizedImage)
	if !ok {
		return imageFallback(list)
	}
	return out
}

func (c *Client) Stats(ctx context.Context) entity.WorkerStats {
	resp, err := c.Call(ctx, entity.TaskGetPerformanceStats, nil)
	if err != nil {
		c.log.Warn("worker stats unavailable", "error", err)
		return entity.WorkerStats{}
	}
	stats, ok := resp.Data.(entity.WorkerStats)
	if !ok {
		return entity.WorkerStats{}
	}
	return stats
}

func (c *Client) ClearCache(ctx context.Context) error {
	_, err := c.Call(ctx, entity.TaskClearCache, nil)
	return err
}

func animationFallback(req entity.AnimationRequest) []entity.AnimatedElement {
	out := make([]entity.AnimatedElement, 0, len(req.Elements))
	for _, el := range req.Elements {
		props := make(map[string]any, len(el.Properties))
		for name, p := range el.Properties {
			props[name] = p.Start
		}
		out = append(out, entity.AnimatedElement{ID: el.ID, Properties: props})
	}
	return out
}

func scrollFallback(req entity.ScrollRequest) []entity.ScrollPosition {
	out := make([]entity.ScrollPosition, 0, len(req.Elements))
	for _, el := range req.Elements {
		out = append(out, entity.ScrollPosition{ID: el.ID, IntersectionRatio: 1, IsVisible: true})
	}
	return out
}

func testimonialFallback(list []entity.Testimonial) []entity.ProcessedTestimonial {
	out := make([]entity.ProcessedTestimonial, 0, len(list))
	for _, item := range list {
		out = append(out, entity.ProcessedTestimonial{Testimonial: item})
	}
	return out
}

func projectFallback(list []entity.Project) []entity.OptimizedProject {
	out := make([]entity.OptimizedProject, 0, len(list))
	for _, item := range list {
		out = append(out, entity.OptimizedProject{Project: item})
	}
	return out
}

func starFallback(in []entity.StarRatingInput) []entity.StarRating {
	out := make([]entity.StarRating, 0, len(in))
	for _, item := range in {
		stars := make([]entity.Star, 5)
		for i := range stars {
			filled := float64(i) < item.Rating
			stars[i] = entity.Star{Index: i, Filled: filled, Empty: !filled}
		}
		out = append(out, entity.StarRating{ID: item.ID, Rating: item.Rating, Stars: stars})
	}
	return out
}

func validationFallback() entity.ContactValidation {
	return entity.ContactValidation{
		Fields:      map[string]bool{"name": true, "email": true, "subject": true, "message": true},
		IsFormValid: true,
	}
}

func imageFallback(list []entity.ImageInput) []entity.OptimizedImage {
	out := make([]entity.OptimizedImage, 0, len(list))
	for _, img := range list {
		out = append(out, entity.OptimizedImage{Src: img.Src})
	}
	return out
}
