package queue

import (
	"context"
	"hash/fnv"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Ihssaneabousshal/hotelreservationapi/internal/api/metrics"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/domain"
	"github.com/Ihssaneabousshal/hotelreservationapi/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 256
)

// Dispatcher applies denormalized reservation-summary updates to user
// documents on a fixed set of workers, sharded by user id so updates for
// one user are applied in order. The summaries are a read-cache: failures
// are logged and dropped, never surfaced to the request path.
type Dispatcher struct {
	workers []chan ports.SummaryJob
	users   ports.UserRepository
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, users ports.UserRepository, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.SummaryJob, numWorkers),
		users:   users,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.SummaryJob, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a job to the worker responsible for its user id. The send
// never blocks the caller: when the shard's buffer is full the job is
// dropped with a warning, since the summaries are a rebuildable read-cache.
func (d *Dispatcher) Enqueue(job ports.SummaryJob) {
	idx := d.shardIndex(job.UserID)
	select {
	case d.workers[idx] <- job:
	default:
		d.log.Warn().
			Str("user_id", job.UserID).
			Str("room_id", job.RoomID).
			Int("worker_id", idx).
			Msg("summary queue full, job dropped")
	}
	metrics.SummaryQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
}

// shardIndex maps a user id deterministically to a worker index.
func (d *Dispatcher) shardIndex(userID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(userID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.SummaryJob) {
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			if err := d.apply(ctx, job); err != nil {
				d.log.Warn().Err(err).
					Str("user_id", job.UserID).
					Str("room_id", job.RoomID).
					Int("worker_id", id).
					Msg("summary update failed")
			}
			metrics.SummaryQueueDepth.WithLabelValues(strconv.Itoa(id)).Set(float64(len(ch)))
		}
	}
}

func (d *Dispatcher) apply(ctx context.Context, job ports.SummaryJob) error {
	switch job.Kind {
	case ports.SummaryReserved:
		return d.users.AppendReservationSummary(ctx, job.UserID, domain.ReservationSummary{
			RoomID:  job.RoomID,
			HotelID: job.HotelID,
		})
	case ports.SummaryRated:
		return d.users.SetSummaryRating(ctx, job.UserID, job.RoomID, job.Rating, job.Review)
	default:
		return nil
	}
}
