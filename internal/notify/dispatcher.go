// Package notify sends assignee emails for candidate lifecycle events.
// Delivery is fire-and-forget: messages are queued after the triggering
// write and delivery failures are logged, never propagated and never
// retried.
package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hireflow/internal/metrics"
)

const sendTimeout = 15 * time.Second

type message struct {
	kind    string
	to      string
	subject string
	body    string
}

// Dispatcher queues notification messages and delivers them on a single
// background worker.
type Dispatcher struct {
	mailer Mailer
	log    *zap.Logger
	queue  chan message
	done   chan struct{}
}

// NewDispatcher starts the delivery worker. Close must be called after the
// last enqueue, typically during server shutdown.
func NewDispatcher(mailer Mailer, log *zap.Logger, queueSize int) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 64
	}
	d := &Dispatcher{
		mailer: mailer,
		log:    log,
		queue:  make(chan message, queueSize),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

// NotifyCandidateUpload tells one assignee that a candidate applied.
func (d *Dispatcher) NotifyCandidateUpload(assigneeEmail, candidateName, jobTitle string) {
	d.enqueue(message{
		kind:    "candidate_upload",
		to:      assigneeEmail,
		subject: fmt.Sprintf("New candidate for %s", jobTitle),
		body: fmt.Sprintf(
			"%s has applied for the %s position. Log in to review the submission.",
			candidateName, jobTitle),
	})
}

// NotifyStatusChange tells one assignee that a candidate moved in the
// pipeline.
func (d *Dispatcher) NotifyStatusChange(assigneeEmail, candidateName, newStatus, jobTitle string) {
	d.enqueue(message{
		kind:    "status_change",
		to:      assigneeEmail,
		subject: fmt.Sprintf("Candidate status updated: %s", candidateName),
		body: fmt.Sprintf(
			"%s (%s) has moved to status %q.",
			candidateName, jobTitle, newStatus),
	})
}

// Close stops accepting messages and waits for queued deliveries to finish.
func (d *Dispatcher) Close() {
	close(d.queue)
	<-d.done
}

func (d *Dispatcher) enqueue(m message) {
	select {
	case d.queue <- m:
	default:
		// A full queue means the mail transport is stalled; losing an
		// informational email must not block request handling.
		d.log.Warn("notification queue full, dropping message",
			zap.String("kind", m.kind),
			zap.String("to", m.to))
		metrics.NotificationsSent.WithLabelValues(m.kind, "dropped").Inc()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for m := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err := d.mailer.Send(ctx, m.to, m.subject, m.body)
		cancel()

		if err != nil {
			d.log.Error("failed to send notification",
				zap.String("kind", m.kind),
				zap.String("to", m.to),
				zap.Error(err))
			metrics.NotificationsSent.WithLabelValues(m.kind, "error").Inc()
			continue
		}
		metrics.NotificationsSent.WithLabelValues(m.kind, "ok").Inc()
	}
}
