package notify

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/sanabel-org/adahi-api/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Sender delivers a single donor notification.
type Sender interface {
	Send(ctx context.Context, n ports.DonorNotification) error
}

// Dedup guards against double-delivery per submission and stage.
type Dedup interface {
	AlreadySent(ctx context.Context, submissionID, stage string) (bool, error)
	Mark(ctx context.Context, submissionID, stage string) error
}

// Dispatcher routes donor notifications to a fixed set of workers using
// consistent hashing on the submission id, so retries for the same
// submission stay ordered.
type Dispatcher struct {
	workers []chan ports.DonorNotification
	sender  Sender
	dedup   Dedup
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, sender Sender, dedup Dedup, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.DonorNotification, numWorkers),
		sender:  sender,
		dedup:   dedup,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.DonorNotification, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue sends a notification to the worker responsible for its submission.
// Non-blocking up to channelBuffer capacity.
func (d *Dispatcher) Enqueue(n ports.DonorNotification) {
	d.workers[d.shardIndex(n.SubmissionID)] <- n
}

func (d *Dispatcher) shardIndex(submissionID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(submissionID))
	return int(h.Sum32()) % len(d.workers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.DonorNotification) {
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-ch:
			if !ok {
				return
			}
			d.process(ctx, id, n)
		}
	}
}

func (d *Dispatcher) process(ctx context.Context, workerID int, n ports.DonorNotification) {
	stage := string(n.Stage)

	sent, err := d.dedup.AlreadySent(ctx, n.SubmissionID, stage)
	if err != nil {
		d.log.Warn().Err(err).Str("submission_id", n.SubmissionID).Msg("dedup check failed, sending anyway")
	} else if sent {
		d.log.Debug().Str("submission_id", n.SubmissionID).Str("stage", stage).Msg("duplicate notification skipped")
		return
	}

	if err := d.sender.Send(ctx, n); err != nil {
		d.log.Error().Err(err).
			Str("submission_id", n.SubmissionID).
			Int("worker_id", workerID).
			Msg("notification delivery failed")
		return
	}

	if err := d.dedup.Mark(ctx, n.SubmissionID, stage); err != nil {
		d.log.Warn().Err(err).Str("submission_id", n.SubmissionID).Msg("failed to set dedup key")
	}

	d.log.Info().
		Str("submission_id", n.SubmissionID).
		Str("email", n.Email).
		Str("stage", stage).
		Msg("donor notified")
}
