// Package worker implements the buffered worker pool that processes chat
// messages off the bot's update loop. It provides:
// - Backpressure handling via load shedding
// - Fixed concurrency regardless of the incoming message rate
// - Graceful shutdown that drains queued messages
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

// Prometheus metrics
var (
	messagesEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scoreline_bot_messages_enqueued_total",
		Help: "Total number of chat messages accepted into the queue",
	})

	messagesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scoreline_bot_messages_processed_total",
		Help: "Total number of chat messages handled by workers",
	})

	messagesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scoreline_bot_messages_failed_total",
		Help: "Total number of chat messages whose handler returned an error",
	})

	messagesLoadShed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scoreline_bot_messages_load_shed_total",
		Help: "Total number of chat messages dropped due to load shedding",
	})

	queueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "scoreline_bot_queue_depth",
		Help: "Current depth of the bot message queue",
	})

	handleDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scoreline_bot_handle_duration_seconds",
		Help:    "Duration of chat message handling",
		Buckets: prometheus.DefBuckets,
	})
)

// Job is one incoming chat message
type Job struct {
	ChatID    int64
	MessageID int
	UserID    int64
	Text      string
	Received  time.Time
}

// Handler processes a single job
type Handler func(ctx context.Context, job Job) error

// PoolConfig configures the worker pool
type PoolConfig struct {
	WorkerCount int
	QueueSize   int
	Handler     Handler
	Logger      *zap.Logger
}

// Pool manages a pool of workers for chat message processing
type Pool struct {
	config   PoolConfig
	jobQueue chan Job
	wg       sync.WaitGroup
	ctx      context.Context
	cancel   context.CancelFunc
	logger   *zap.SugaredLogger

	mu     sync.RWMutex
	closed bool
}

// NewPool creates a new worker pool
func NewPool(cfg PoolConfig) *Pool {
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	return &Pool{
		config:   cfg,
		jobQueue: make(chan Job, cfg.QueueSize),
		logger:   cfg.Logger.Sugar(),
	}
}

// Start launches the worker goroutines
func (p *Pool) Start(ctx context.Context) {
	p.ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.config.WorkerCount; i++ {
		p.wg.Add(1)
		go p.worker(i)
	}

	// Start queue depth reporter
	go p.reportQueueDepth()

	p.logger.Infow("Worker pool started",
		"workers", p.config.WorkerCount,
		"queueSize", p.config.QueueSize,
	)
}

// Stop stops accepting jobs, waits for queued jobs to finish and shuts the
// workers down.
func (p *Pool) Stop() {
	p.logger.Info("Stopping worker pool...")

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobQueue)
	p.mu.Unlock()

	p.wg.Wait()
	if p.cancel != nil {
		p.cancel()
	}
	p.logger.Info("Worker pool stopped")
}

// Enqueue adds a job to the queue without blocking. It returns false when the
// queue is full or the pool is stopped; the job is dropped.
func (p *Pool) Enqueue(job Job) bool {
	if job.Received.IsZero() {
		job.Received = time.Now()
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		p.logger.Warnw("Worker pool stopped, dropping message", "chat", job.ChatID)
		messagesLoadShed.Inc()
		return false
	}

	select {
	case p.jobQueue <- job:
		messagesEnqueued.Inc()
		return true
	default:
		p.logger.Warnw("Queue full, dropping message", "chat", job.ChatID, "queueSize", p.config.QueueSize)
		messagesLoadShed.Inc()
		return false
	}
}

// QueueDepth returns current queue size
func (p *Pool) QueueDepth() int {
	return len(p.jobQueue)
}

// worker processes jobs until the queue is closed
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	p.logger.Debugw("Worker started", "worker", id)

	for job := range p.jobQueue {
		p.process(id, job)
	}

	p.logger.Debugw("Job queue closed, worker exiting", "worker", id)
}

func (p *Pool) process(id int, job Job) {
	start := time.Now()
	defer func() {
		handleDuration.Observe(time.Since(start).Seconds())
		if r := recover(); r != nil {
			messagesFailed.Inc()
			p.logger.Errorw("Message handler panic", "worker", id, "chat", job.ChatID, "error", r)
		}
	}()

	if err := p.config.Handler(p.ctx, job); err != nil {
		messagesFailed.Inc()
		p.logger.Errorw("Message handling failed",
			"worker", id,
			"chat", job.ChatID,
			"error", err,
		)
		return
	}

	messagesProcessed.Inc()
	p.logger.Debugw("Message handled", "worker", id, "chat", job.ChatID, "queued", start.Sub(job.Received), "duration", time.Since(start))
}

func (p *Pool) reportQueueDepth() {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			queueDepth.Set(float64(len(p.jobQueue)))
		case <-p.ctx.Done():
			return
		}
	}
}
