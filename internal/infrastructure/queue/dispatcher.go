package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/brvhprince/planner-api/internal/api/metrics"
	"github.com/brvhprince/planner-api/internal/core/domain"
	"github.com/brvhprince/planner-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256

	persistTimeout = 5 * time.Second
)

// Dispatcher routes audit records to a fixed set of workers using consistent
// hashing on the user id, guaranteeing per-user record ordering. It implements
// ports.ActivityRecorder so services never block on the audit trail.
type Dispatcher struct {
	workers    []chan *domain.Activity
	activities ports.ActivityRepository
	log        zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, activities ports.ActivityRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers:    make([]chan *domain.Activity, numWorkers),
		activities: activities,
		log:        log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan *domain.Activity, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Record hands an audit record to the worker responsible for its user. A full
// worker channel drops the record rather than stalling the request path.
func (d *Dispatcher) Record(activity *domain.Activity) {
	if activity == nil {
		return
	}
	idx := d.shardIndex(activity.UserID)
	select {
	case d.workers[idx] <- activity:
		metrics.ActivitiesQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
	default:
		metrics.ActivitiesDroppedTotal.Inc()
		d.log.Warn().Str("user_id", activity.UserID).Str("title", activity.Title).
			Msg("activity dropped, worker queue full")
	}
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan *domain.Activity) {
	worker := strconv.Itoa(id)
	for {
		select {
		case <-ctx.Done():
			return
		case activity, ok := <-ch:
			if !ok {
				return
			}
			metrics.ActivitiesQueueDepth.WithLabelValues(worker).Set(float64(len(ch)))
			persistCtx, cancel := context.WithTimeout(context.Background(), persistTimeout)
			if err := d.activities.Create(persistCtx, activity); err != nil {
				d.log.Error().Err(err).
					Str("user_id", activity.UserID).
					Int("worker_id", id).
					Msg("activity persistence failed")
			}
			cancel()
		}
	}
}
