package history

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/kdduha/code-explainer/internal/metrics"
	"github.com/kdduha/code-explainer/internal/models"
	"go.uber.org/zap"
)

const (
	writeOK      = "ok"
	writeFailed  = "failed"
	writeDropped = "dropped"
)

// Recorder writes records on a single background worker so the caller never
// waits for the store.
type Recorder struct {
	logger  *zap.Logger
	store   Store
	driver  string
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan Record
	done   chan struct{}
}

func NewRecorder(logger *zap.Logger, store Store, driver string, queueSize int, timeout time.Duration) *Recorder {
	r := &Recorder{
		logger:  logger.With(zap.String("history_driver", driver)),
		store:   store,
		driver:  driver,
		timeout: timeout,
		queue:   make(chan Record, queueSize),
		done:    make(chan struct{}),
	}
	go r.run()
	return r
}

// Record enqueues one completed request. It never blocks: when the queue is
// full or the recorder is closed the record is dropped with a warning.
func (r *Recorder) Record(ctx context.Context, req models.ExplainRequest, res models.ExplanationResult) {
	serialized, err := sonic.MarshalString(res)
	if err != nil {
		r.logger.Warn("failed to serialize explanation", zap.Error(err))
		metrics.HistoryWritesTotal(r.driver, writeFailed)
		return
	}

	rec := Record{
		ID:               uuid.NewString(),
		Code:             req.Code,
		Language:         req.Language,
		Explanation:      serialized,
		DetectedLanguage: res.DetectedLanguage,
		ResponseTimeMS:   int64(math.Round(res.ResponseTime * 1000)),
		CreatedAt:        time.Now().UTC(),
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.drop(ctx, rec, "recorder closed")
		return
	}

	select {
	case r.queue <- rec:
	default:
		r.drop(ctx, rec, "history queue full")
	}
}

// Close stops accepting records and waits until queued ones are written or
// ctx expires. The store itself is left open.
func (r *Recorder) Close(ctx context.Context) error {
	r.mu.Lock()
	if !r.closed {
		r.closed = true
		close(r.queue)
	}
	r.mu.Unlock()

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (r *Recorder) run() {
	defer close(r.done)
	for rec := range r.queue {
		r.write(rec)
	}
}

func (r *Recorder) write(rec Record) {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()

	if _, err := r.store.Create(ctx, rec); err != nil {
		r.logger.Warn("failed to store explanation",
			zap.String("record_id", rec.ID),
			zap.Error(err),
		)
		metrics.HistoryWritesTotal(r.driver, writeFailed)
		return
	}
	metrics.HistoryWritesTotal(r.driver, writeOK)
}

func (r *Recorder) drop(ctx context.Context, rec Record, reason string) {
	r.logger.Warn(reason,
		zap.String("record_id", rec.ID),
		zap.String("request_id", middleware.GetReqID(ctx)),
	)
	metrics.HistoryWritesTotal(r.driver, writeDropped)
}
