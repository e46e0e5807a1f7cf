package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/kingkebab/timetrack/internal/api/metrics"
	"github.com/kingkebab/timetrack/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Dispatcher decouples notification delivery from request handling: Notify
// enqueues without blocking and a fixed set of workers performs the actual
// sends. Messages are sharded across workers by content hash; when a worker
// buffer is full the message is dropped with a warning rather than stalling
// the request path.
type Dispatcher struct {
	workers  []chan string
	notifier ports.Notifier
	log      zerolog.Logger
}

// NewDispatcher creates a Dispatcher delivering through notifier with
// numWorkers workers. If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, notifier ports.Notifier, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:  make([]chan string, numWorkers),
		notifier: notifier,
		log:      log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan string, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Notify implements ports.Notifier. It never returns an error: delivery is
// asynchronous and failures surface only in logs and metrics.
func (d *Dispatcher) Notify(_ context.Context, text string) error {
	select {
	case d.workers[d.shardIndex(text)] <- text:
	default:
		metrics.NotificationsTotal.WithLabelValues("dropped").Inc()
		d.log.Warn().Msg("notification queue full, message dropped")
	}
	return nil
}

func (d *Dispatcher) shardIndex(text string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(text))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case text, ok := <-ch:
			if !ok {
				return
			}
			if err := d.notifier.Notify(ctx, text); err != nil {
				metrics.NotificationsTotal.WithLabelValues("error").Inc()
				d.log.Error().Err(err).Int("worker_id", id).Msg("notification delivery failed")
				continue
			}
			metrics.NotificationsTotal.WithLabelValues("sent").Inc()
		}
	}
}
