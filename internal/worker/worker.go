package worker

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"time"

	"portfolio/internal/application/port/output"
	"portfolio/internal/domain/entity"
)

// Config controls worker behavior. The health interval is configurable so
// tests can tick fast; production keeps the 30s default.
type Config struct {
	HealthInterval time.Duration
	QueueSize      int
}

func DefaultConfig() Config {
	return Config{
		HealthInterval: 30 * time.Second,
		QueueSize:      64,
	}
}

// Worker is the background computation unit. One goroutine (Run) owns all
// of its mutable state — the result cache and the running stats — and
// serializes task execution in arrival order, so none of it needs locking.
// Health broadcasts interleave between task responses on the same channel.
type Worker struct {
	cfg   Config
	log   output.LoggerPort
	inbox chan entity.TaskEnvelope
	out   chan entity.ResultEnvelope
	done  chan struct{}

	cache *resultCache
	stats entity.WorkerStats

	// overridable in tests to observe cache-miss recomputation
	animate   func(entity.AnimationRequest) []entity.AnimatedElement
	rateStars func(entity.StarRatingInput) entity.StarRating
}

func New(cfg Config, log output.LoggerPort) *Worker {
	if cfg.HealthInterval <= 0 {
		cfg.HealthInterval = DefaultConfig().HealthInterval
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultConfig().QueueSize
	}
	return &Worker{
		cfg:       cfg,
		log:       log,
		inbox:     make(chan entity.TaskEnvelope, cfg.QueueSize),
		out:       make(chan entity.ResultEnvelope, cfg.QueueSize),
		done:      make(chan struct{}),
		cache:     newResultCache(),
		animate:   animateElements,
		rateStars: starRating,
	}
}

// Post submits an envelope for processing. It fails once the worker has
// stopped instead of blocking forever.
func (w *Worker) Post(env entity.TaskEnvelope) error {
	select {
	case <-w.done:
		return fmt.Errorf("worker stopped, %s dropped", env.Type)
	default:
	}
	select {
	case w.inbox <- env:
		return nil
	case <-w.done:
		return fmt.Errorf("worker stopped, %s dropped", env.Type)
	}
}

// Results is the outbound envelope stream: task responses, errors, and
// unsolicited broadcasts. Closed when Run returns.
func (w *Worker) Results() <-chan entity.ResultEnvelope {
	return w.out
}

// Run processes envelopes until ctx is cancelled. It announces itself with
// WORKER_LOG and WORKER_READY before accepting any task, and owns the
// health-check ticker for its whole lifetime.
func (w *Worker) Run(ctx context.Context) {
	defer close(w.done)
	defer close(w.out)
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("worker fault", "error", r)
			w.emit(ctx, entity.ResultEnvelope{
				Type: entity.OutcomeWorkerError,
				Data: entity.WorkerFault{Message: sanitize(fmt.Sprint(r))},
			})
		}
	}()

	w.emit(ctx, entity.ResultEnvelope{Type: entity.OutcomeWorkerLog, Data: "portfolio compute worker started"})
	w.emit(ctx, entity.ResultEnvelope{Type: entity.OutcomeWorkerReady, Data: true})

	ticker := time.NewTicker(w.cfg.HealthInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case env := <-w.inbox:
			w.dispatch(ctx, env)
		case <-ticker.C:
			w.broadcastHealth(ctx)
		}
	}
}

// dispatch validates one envelope, runs its handler, and posts exactly one
// response. Handler failures — returned errors and panics alike — become an
// ERROR envelope for this task only; they never take the worker down.
func (w *Worker) dispatch(ctx context.Context, env entity.TaskEnvelope) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("task handler panicked", "type", env.Type, "error", r)
			w.emit(ctx, entity.ResultEnvelope{
				Type: entity.OutcomeError,
				Data: sanitize(fmt.Sprint(r)),
				ID:   env.ID,
			})
		}
	}()

	if !entity.ValidTaskType(env.Type) {
		w.emit(ctx, entity.ResultEnvelope{
			Type: entity.OutcomeError,
			Data: "unknown task type: " + sanitize(string(env.Type)),
			ID:   env.ID,
		})
		return
	}

	// The two pseudo-tasks answer synchronously from shared state and do
	// not go through the timing wrapper, so they never count toward stats.
	switch env.Type {
	case entity.TaskGetPerformanceStats:
		w.emit(ctx, entity.ResultEnvelope{Type: entity.OutcomePerformanceStats, Data: w.stats, ID: env.ID})
		return
	case entity.TaskClearCache:
		w.cache.Clear()
		w.emit(ctx, entity.ResultEnvelope{Type: entity.OutcomeCacheCleared, Data: true, ID: env.ID})
		return
	}

	start := time.Now()
	outcome, result, err := w.execute(env)
	if err != nil {
		w.emit(ctx, entity.ResultEnvelope{Type: entity.OutcomeError, Data: sanitize(err.Error()), ID: env.ID})
		return
	}
	w.postResult(ctx, outcome, result, env.ID, start)
}

// execute maps a task type onto its routine. The switch is exhaustive over
// the closed task set minus the two pseudo-tasks dispatch short-circuits.
func (w *Worker) execute(env entity.TaskEnvelope) (entity.OutcomeType, any, error) {
	switch env.Type {
	case entity.TaskProcessAnimations:
		req, err := payload[entity.AnimationRequest](env)
		if err != nil {
			return "", nil, err
		}
		if req.Elements == nil {
			return "", nil, fmt.Errorf("%s: elements are required", env.Type)
		}
		return entity.OutcomeAnimationsProcessed, w.cachedAnimations(req), nil

	case entity.TaskOptimizeScroll:
		req, err := payload[entity.ScrollRequest](env)
		if err != nil {
			return "", nil, err
		}
		if req.Elements == nil {
			return "", nil, fmt.Errorf("%s: elements are required", env.Type)
		}
		return entity.OutcomeScrollOptimized, optimizeScroll(req), nil

	case entity.TaskCalculateMetrics:
		req, err := payload[entity.MetricsRequest](env)
		if err != nil {
			return "", nil, err
		}
		return entity.OutcomeMetricsCalculated, scorePerformance(req), nil

	case entity.TaskProcessTestimonials:
		list, err := payload[[]entity.Testimonial](env)
		if err != nil {
			return "", nil, err
		}
		if list == nil {
			return "", nil, fmt.Errorf("%s: testimonials are required", env.Type)
		}
		return entity.OutcomeTestimonialsProcessed, enrichTestimonials(list), nil

	case entity.TaskOptimizeProjectData:
		list, err := payload[[]entity.Project](env)
		if err != nil {
			return "", nil, err
		}
		if list == nil {
			return "", nil, fmt.Errorf("%s: projects are required", env.Type)
		}
		return entity.OutcomeProjectsOptimized, optimizeProjects(list), nil

	case entity.TaskCalculateStarRatings:
		list, err := payload[[]entity.StarRatingInput](env)
		if err != nil {
			return "", nil, err
		}
		if list == nil {
			return "", nil, fmt.Errorf("%s: ratings are required", env.Type)
		}
		return entity.OutcomeStarRatingsCalculated, w.cachedStarRatings(list), nil

	case entity.TaskProcessContactValidation:
		form, err := payload[entity.ContactForm](env)
		if err != nil {
			return "", nil, err
		}
		return entity.OutcomeContactValidated, validateContactForm(form), nil

	case entity.TaskOptimizeImages:
		list, err := payload[[]entity.ImageInput](env)
		if err != nil {
			return "", nil, err
		}
		if list == nil {
			return "", nil, fmt.Errorf("%s: images are required", env.Type)
		}
		return entity.OutcomeImagesOptimized, optimizeImages(list), nil
	}
	return "", nil, fmt.Errorf("no handler for task type %s", env.Type)
}

// postResult is the shared completion path for timed tasks: compute elapsed
// milliseconds, fold them into the running stats, and emit the outcome.
// Cache hits go through here too, so they count toward stats as well.
func (w *Worker) postResult(ctx context.Context, outcome entity.OutcomeType, data any, id string, start time.Time) {
	elapsed := roundMillis(time.Since(start))
	w.stats.TasksCompleted++
	w.stats.TotalProcessingTime += elapsed
	w.stats.AverageTaskTime = w.stats.TotalProcessingTime / float64(w.stats.TasksCompleted)

	w.emit(ctx, entity.ResultEnvelope{
		Type:           outcome,
		Data:           data,
		ID:             id,
		ProcessingTime: elapsed,
	})
}

// broadcastHealth emits an unsolicited WORKER_HEALTH_CHECK snapshot. Quiet
// workers stay quiet: nothing is sent until at least one task completed.
func (w *Worker) broadcastHealth(ctx context.Context) {
	if w.stats.TasksCompleted == 0 {
		return
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	w.emit(ctx, entity.ResultEnvelope{
		Type: entity.OutcomeWorkerHealthCheck,
		Data: entity.HealthReport{
			Stats:     w.stats,
			CacheSize: w.cache.Size(),
			MemoryUsage: &entity.MemoryUsage{
				Used:  ms.HeapAlloc,
				Total: ms.HeapSys,
				Limit: ms.Sys,
			},
			Timestamp: time.Now().UnixMilli(),
		},
	})
}

func (w *Worker) emit(ctx context.Context, env entity.ResultEnvelope) {
	select {
	case w.out <- env:
	case <-ctx.Done():
	}
}

func (w *Worker) cachedAnimations(req entity.AnimationRequest) []entity.AnimatedElement {
	// Narrow fingerprint: scroll progress plus element count. Cheaper than
	// hashing the full payload; collides if element contents change while
	// both stay equal, which scroll-driven callers never do.
	key := fmt.Sprintf("animations_%g_%d", req.ScrollProgress, len(req.Elements))
	if v, ok := w.cache.Get(key); ok {
		if cached, ok := v.([]entity.AnimatedElement); ok {
			return cached
		}
	}
	result := w.animate(req)
	w.cache.Set(key, result)
	return result
}

func (w *Worker) cachedStarRatings(list []entity.StarRatingInput) []entity.StarRating {
	out := make([]entity.StarRating, 0, len(list))
	for _, item := range list {
		key := fmt.Sprintf("stars_%s_%g", item.ID, item.Rating)
		if v, ok := w.cache.Get(key); ok {
			if cached, ok := v.(entity.StarRating); ok {
				out = append(out, cached)
				continue
			}
		}
		rating := w.rateStars(item)
		w.cache.Set(key, rating)
		out = append(out, rating)
	}
	return out
}

// payload narrows an envelope's data to the handler's expected type.
func payload[T any](env entity.TaskEnvelope) (T, error) {
	v, ok := env.Data.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: unexpected payload type %T", env.Type, env.Data)
	}
	return v, nil
}

// roundMillis converts a duration to milliseconds with two decimals.
func roundMillis(d time.Duration) float64 {
	return math.Round(float64(d.Nanoseconds())/1e6*100) / 100
}
