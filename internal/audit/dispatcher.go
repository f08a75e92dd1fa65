package audit

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/slot-scheduler/internal/metrics"
)

const defaultQueueSize = 100

type Event struct {
	ActorID   uint
	ActorRole string
	Action    string
	Entity    string
	EntityID  string
	Metadata  any
}

// Sink persists one event.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

// Dispatcher writes events on a background worker. Dispatch never blocks:
// when the queue is full the event is dropped.
type Dispatcher struct {
	sink    Sink
	log     *zap.Logger
	metrics *metrics.Collector

	queue chan Event
	once  sync.Once
	done  chan struct{}
}

// NewDispatcher starts the worker. m may be nil.
func NewDispatcher(sink Sink, log *zap.Logger, m *metrics.Collector, size int) *Dispatcher {
	if size <= 0 {
		size = defaultQueueSize
	}
	d := &Dispatcher{
		sink:    sink,
		log:     log,
		metrics: m,
		queue:   make(chan Event, size),
		done:    make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.sink.Write(context.Background(), ev); err != nil {
			d.log.Error("audit write failed",
				zap.String("action", ev.Action),
				zap.String("entity_id", ev.EntityID),
				zap.Error(err),
			)
			continue
		}
		if d.metrics != nil {
			d.metrics.AuditEntriesTotal.Inc()
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
		if d.metrics != nil {
			d.metrics.AuditBufferDropped.Inc()
		}
	}
}

// Close stops accepting events and waits for the queue to drain.
// Dispatch must not be called after Close.
func (d *Dispatcher) Close() {
	d.once.Do(func() { close(d.queue) })
	<-d.done
}
