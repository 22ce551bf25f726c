package entity

// TaskType identifies a computation the background worker knows how to run.
// The set is closed: envelopes carrying anything else are rejected before
// any handler executes.
type TaskType string

const (
	TaskProcessAnimations        TaskType = "PROCESS_ANIMATIONS"
	TaskOptimizeScroll           TaskType = "OPTIMIZE_SCROLL_CALCULATIONS"
	TaskCalculateMetrics         TaskType = "CALCULATE_PERFORMANCE_METRICS"
	TaskProcessTestimonials      TaskType = "PROCESS_TESTIMONIALS"
	TaskOptimizeProjectData      TaskType = "OPTIMIZE_PROJECT_DATA"
	TaskCalculateStarRatings     TaskType = "CALCULATE_STAR_RATINGS"
	TaskProcessContactValidation TaskType = "PROCESS_CONTACT_VALIDATION"
	TaskOptimizeImages           TaskType = "OPTIMIZE_IMAGES"
	TaskGetPerformanceStats      TaskType = "GET_PERFORMANCE_STATS"
	TaskClearCache               TaskType = "CLEAR_CACHE"
)

// OutcomeType identifies an outbound envelope. One per successful task type,
// plus ERROR and the unsolicited lifecycle broadcasts.
type OutcomeType string

const (
	OutcomeAnimationsProcessed   OutcomeType = "ANIMATIONS_PROCESSED"
	OutcomeScrollOptimized       OutcomeType = "SCROLL_OPTIMIZED"
	OutcomeMetricsCalculated     OutcomeType = "METRICS_CALCULATED"
	OutcomeTestimonialsProcessed OutcomeType = "TESTIMONIALS_PROCESSED"
	OutcomeProjectsOptimized     OutcomeType = "PROJECTS_OPTIMIZED"
	OutcomeStarRatingsCalculated OutcomeType = "STAR_RATINGS_CALCULATED"
	OutcomeContactValidated      OutcomeType = "CONTACT_VALIDATED"
	OutcomeImagesOptimized       OutcomeType = "IMAGES_OPTIMIZED"
	OutcomePerformanceStats      OutcomeType = "PERFORMANCE_STATS"
	OutcomeCacheCleared          OutcomeType = "CACHE_CLEARED"

	OutcomeError             OutcomeType = "ERROR"
	OutcomeWorkerReady       OutcomeType = "WORKER_READY"
	OutcomeWorkerLog         OutcomeType = "WORKER_LOG"
	OutcomeWorkerHealthCheck OutcomeType = "WORKER_HEALTH_CHECK"
	OutcomeWorkerError       OutcomeType = "WORKER_ERROR"
)

// ValidTaskType reports whether t belongs to the closed task set.
func ValidTaskType(t TaskType) bool {
	switch t {
	case TaskProcessAnimations, TaskOptimizeScroll, TaskCalculateMetrics,
		TaskProcessTestimonials, TaskOptimizeProjectData, TaskCalculateStarRatings,
		TaskProcessContactValidation, TaskOptimizeImages,
		TaskGetPerformanceStats, TaskClearCache:
		return true
	}
	return false
}

// TaskEnvelope is an inbound request to the worker. ID correlates the
// eventual response; an empty ID means the caller does not care.
type TaskEnvelope struct {
	Type TaskType `json:"type"`
	Data any      `json:"data,omitempty"`
	ID   string   `json:"id,omitempty"`
}

// ResultEnvelope is an outbound message from the worker. Every inbound
// envelope with an ID yields exactly one ResultEnvelope with the same ID;
// unsolicited broadcasts carry no ID.
type ResultEnvelope struct {
	Type           OutcomeType `json:"type"`
	Data           any         `json:"data,omitempty"`
	ID             string      `json:"id,omitempty"`
	ProcessingTime float64     `json:"processingTime,omitempty"`
}

// WorkerStats are the running counters the worker updates after every
// completed task. AverageTaskTime is TotalProcessingTime/TasksCompleted.
type WorkerStats struct {
	TasksCompleted      int     `json:"tasksCompleted"`
	TotalProcessingTime float64 `json:"totalProcessingTime"`
	AverageTaskTime     float64 `json:"averageTaskTime"`
}

// MemoryUsage is a heap snapshot attached to health broadcasts.
type MemoryUsage struct {
	Used  uint64 `json:"used"`
	Total uint64 `json:"total"`
	Limit uint64 `json:"limit"`
}

// HealthReport is the payload of a WORKER_HEALTH_CHECK broadcast.
type HealthReport struct {
	Stats       WorkerStats  `json:"stats"`
	CacheSize   int          `json:"cacheSize"`
	MemoryUsage *MemoryUsage `json:"memoryUsage"`
	Timestamp   int64        `json:"timestamp"`
}

// WorkerFault is the payload of a WORKER_ERROR broadcast, reporting a fault
// outside the per-task isolation boundary.
type WorkerFault struct {
	Message  string `json:"message"`
	Filename string `json:"filename,omitempty"`
	Line     int    `json:"lineno,omitempty"`
	Column   int    `json:"colno,omitempty"`
}
