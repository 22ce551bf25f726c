package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio/internal/application/port/input"
	"portfolio/internal/application/port/output"
	"portfolio/internal/domain/entity"
	"portfolio/internal/worker"
)

var _ input.ComputeService = (*Client)(nil)

// ErrTaskTimeout is returned when the worker does not answer within the
// per-task window. The worker may still finish the task later; its late
// response is dropped silently.
var ErrTaskTimeout = errors.New("compute task timed out")

const defaultTaskTimeout = 30 * time.Second

// taskWorker is what the client needs from its worker; satisfied by
// *worker.Worker and by test stubs.
type taskWorker interface {
	Post(entity.TaskEnvelope) error
	Results() <-chan entity.ResultEnvelope
	Run(ctx context.Context)
}

type outcome struct {
	data           any
	processingTime float64
	err            error
}

type pendingTask struct {
	ch    chan outcome
	timer *time.Timer
}

// Client is the host-side face of the background worker: it owns exactly
// one worker for its lifetime, correlates responses to requests by id,
// enforces per-task timeouts, and routes unsolicited broadcasts away from
// the pending-task map.
//
// Whichever of response arrival and timeout happens first wins; the loser
// finds the pending entry gone and is a no-op.
type Client struct {
	log       output.LoggerPort
	worker    taskWorker
	timeout   time.Duration
	newID     func() string
	workerCfg worker.Config

	mu      sync.Mutex
	pending map[string]*pendingTask
	health  *entity.HealthReport

	cancel context.CancelFunc
	done   chan struct{}
}

type Option func(*Client)

// WithTimeout overrides the per-task timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithIDGenerator swaps the correlation-id source, letting tests supply
// deterministic ids.
func WithIDGenerator(fn func() string) Option {
	return func(c *Client) { c.newID = fn }
}

// WithWorkerConfig overrides the owned worker's configuration.
func WithWorkerConfig(cfg worker.Config) Option {
	return func(c *Client) { c.workerCfg = cfg }
}

func New(log output.LoggerPort, opts ...Option) *Client {
	return newClient(log, nil, opts...)
}

func newClient(log output.LoggerPort, w taskWorker, opts ...Option) *Client {
	c := &Client{
		log:       log,
		timeout:   defaultTaskTimeout,
		newID:     uuid.NewString,
		workerCfg: worker.DefaultConfig(),
		pending:   make(map[string]*pendingTask),
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}

	if w == nil {
		w = worker.New(c.workerCfg, log)
	}
	c.worker = w
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	go c.worker.Run(ctx)
	go c.readLoop()
	return c
}

// Stop tears the worker down and fails whatever is still pending.
func (c *Client) Stop() {
	c.cancel()
	<-c.done
}

// readLoop is the single consumer of the worker's outbound stream.
func (c *Client) readLoop() {
	defer close(c.done)
	defer c.failPending()

	for env := range c.worker.Results() {
		switch env.Type {
		case entity.OutcomeWorkerLog, entity.OutcomeWorkerReady,
			entity.OutcomeWorkerHealthCheck, entity.OutcomeWorkerError:
			c.handleBroadcast(env)
			continue
		}
		c.resolve(env)
	}
}

func (c *Client) handleBroadcast(env entity.ResultEnvelope) {
	switch env.Type {
	case entity.OutcomeWorkerLog:
		c.log.Debug("worker log", "message", env.Data)
	case entity.OutcomeWorkerReady:
		c.log.Info("worker ready")
	case entity.OutcomeWorkerHealthCheck:
		if report, ok := env.Data.(entity.HealthReport); ok {
			c.mu.Lock()
			c.health = &report
			c.mu.Unlock()
		}
	case entity.OutcomeWorkerError:
		c.log.Error("worker fault", "fault", env.Data)
	}
}

func (c *Client) resolve(env entity.ResultEnvelope) {
	c.mu.Lock()
	task, ok := c.pending[env.ID]
	if ok {
		delete(c.pending, env.ID)
		task.timer.Stop()
	}
	c.mu.Unlock()
	if !ok {
		// Late response after timeout, or a stray envelope: drop it.
		return
	}

	if env.Type == entity.OutcomeError {
		task.ch <- outcome{err: fmt.Errorf("worker task failed: %v", env.Data)}
		return
	}
	task.ch <- outcome{data: env.Data, processingTime: env.ProcessingTime}
}

func (c *Client) expire(id string) {
	c.mu.Lock()
	task, ok := c.pending[id]
	if ok {
		delete(c.pending, id)
	}
	c.mu.Unlock()
	if ok {
		task.ch <- outcome{err: ErrTaskTimeout}
	}
}

func (c *Client) failPending() {
	c.mu.Lock()
	stale := c.pending
	c.pending = make(map[string]*pendingTask)
	c.mu.Unlock()

	for _, task := range stale {
		task.timer.Stop()
		task.ch <- outcome{err: errors.New("worker stopped")}
	}
}

// Response is a successful task result with the worker-reported duration.
type Response struct {
	Data           any
	ProcessingTime float64
}

// Call dispatches one task and blocks until its correlated response, the
// timeout, or ctx cancellation.
func (c *Client) Call(ctx context.Context, typ entity.TaskType, data any) (Response, error) {
	id := c.newID()
	task := &pendingTask{ch: make(chan outcome, 1)}
	task.timer = time.AfterFunc(c.timeout, func() { c.expire(id) })

	c.mu.Lock()
	c.pending[id] = task
	c.mu.Unlock()

	if err := c.worker.Post(entity.TaskEnvelope{Type: typ, Data: data, ID: id}); err != nil {
		c.abandon(id)
		return Response{}, err
	}

	select {
	case out := <-task.ch:
		if out.err != nil {
			return Response{}, out.err
		}
		return Response{Data: out.data, ProcessingTime: out.processingTime}, nil
	case <-ctx.Done():
		c.abandon(id)
		return Response{}, ctx.Err()
	}
}

func (c *Client) abandon(id string) {
	c.mu.Lock()
	if task, ok := c.pending[id]; ok {
		task.timer.Stop()
		delete(c.pending, id)
	}
	c.mu.Unlock()
}

// LastHealth returns the most recent unsolicited health broadcast, or nil
// before the first one.
func (c *Client) LastHealth() *entity.HealthReport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.health
}
