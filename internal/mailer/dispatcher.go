package mailer

import (
	"context"
	"log/slog"
	"time"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/lib/logger/sl"
)

// Job is one outbound email, detached from the request that produced it.
type Job struct {
	Name string
	Send func(ctx context.Context) error
}

// Dispatcher runs fire-and-forget email jobs on a single background worker.
// A full queue drops the job with a warning; mail must never block or fail a
// request.
type Dispatcher struct {
	log   *slog.Logger
	queue chan Job
}

func NewDispatcher(log *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		log:   log,
		queue: make(chan Job, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for job := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		if err := job.Send(ctx); err != nil {
			d.log.Warn("mail job failed", slog.String("job", job.Name), sl.Err(err))
		}
		cancel()
	}
}

func (d *Dispatcher) Dispatch(job Job) {
	select {
	case d.queue <- job:
	default:
		d.log.Warn("mail queue full, dropping job", slog.String("job", job.Name))
	}
}
