package input

import (
	"context"

	"portfolio/internal/domain/entity"
)

// ComputeService is the host-side face of the background worker. Every
// method degrades gracefully: on worker failure or timeout it returns a
// safe fallback derived from the input instead of an error, because
// background optimization is additive and must never break the page.
type ComputeService interface {
	ProcessAnimations(ctx context.Context, req entity.AnimationRequest) []entity.AnimatedElement
	OptimizeScroll(ctx context.Context, req entity.ScrollRequest) []entity.ScrollPosition
	CalculateMetrics(ctx context.Context, req entity.MetricsRequest) entity.PerformanceReport
	ProcessTestimonials(ctx context.Context, list []entity.Testimonial) []entity.ProcessedTestimonial
	OptimizeProjects(ctx context.Context, list []entity.Project) []entity.OptimizedProject
	CalculateStarRatings(ctx context.Context, in []entity.StarRatingInput) []entity.StarRating
	ValidateContactForm(ctx context.Context, form entity.ContactForm) entity.ContactValidation
	OptimizeImages(ctx context.Context, list []entity.ImageInput) []entity.OptimizedImage

	Stats(ctx context.Context) entity.WorkerStats
	ClearCache(ctx context.Context) error
	LastHealth() *entity.HealthReport
}
