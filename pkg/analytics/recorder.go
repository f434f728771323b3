// Package analytics provides the fire-and-forget usage event channel.
//
// Recording an event must never block a turn and must never surface an error
// to the caller: the Recorder interface has no error return at all, so
// analytics failures cannot unify with the primary flow's error type.
package analytics

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Event is one usage-analytics data point: a category (which flow) and a
// label (which transition within it).
type Event struct {
	Category string
	Label    string
}

// Recorder accepts events for eventual delivery. Implementations must not
// block and must swallow delivery failures.
type Recorder interface {
	Record(event Event)
}

// Sink is the delivery transport behind an AsyncRecorder.
type Sink interface {
	Send(ctx context.Context, event Event) error
}

// AsyncRecorder queues events on a bounded channel and drains them to a Sink
// on a single background goroutine. When the queue is full, events are
// dropped rather than blocking the caller; when the sink fails, the failure
// is logged and the event is discarded.
type AsyncRecorder struct {
	queue     chan Event
	logger    zerolog.Logger
	done      chan struct{}
	closeOnce sync.Once
}

// NewAsyncRecorder creates a recorder draining to the given sink and starts
// its delivery goroutine. queueSize bounds the number of undelivered events.
func NewAsyncRecorder(sink Sink, queueSize int, logger zerolog.Logger) *AsyncRecorder {
	if queueSize <= 0 {
		queueSize = 64
	}
	r := &AsyncRecorder{
		queue:  make(chan Event, queueSize),
		logger: logger.With().Str("component", "analytics").Logger(),
		done:   make(chan struct{}),
	}

	go func() {
		defer close(r.done)
		for event := range r.queue {
			if err := sink.Send(context.Background(), event); err != nil {
				r.logger.Warn().Err(err).
					Str("category", event.Category).
					Str("label", event.Label).
					Msg("Failed to deliver analytics event")
			}
		}
	}()

	return r
}

// Record enqueues the event, dropping it if the queue is full.
func (r *AsyncRecorder) Record(event Event) {
	select {
	case r.queue <- event:
	default:
		r.logger.Debug().
			Str("category", event.Category).
			Str("label", event.Label).
			Msg("Analytics queue full, dropping event")
	}
}

// Close stops accepting events and blocks until the queue has drained.
func (r *AsyncRecorder) Close() {
	r.closeOnce.Do(func() {
		close(r.queue)
	})
	<-r.done
}

// NoopRecorder discards every event. Useful for tests and local runs without
// an analytics backend.
type NoopRecorder struct{}

func (NoopRecorder) Record(Event) {}
