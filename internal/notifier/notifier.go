// Package notifier dispatches best-effort push notifications. Delivery runs
// on a background worker; failures are logged and never surface to the
// workflow that triggered them.
package notifier

import (
	"context"
	"sync"
	"time"

	"clinic-invitations/internal/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Dispatcher abstracts fire-and-forget notification delivery for the usecase layer.
type Dispatcher interface {
	Notify(recipientRole entities.Role, recipientID int64, event entities.NotificationEvent, invitationID int64)
}

// PushDispatcher queues notifications onto a bounded channel consumed by a
// single worker goroutine. A full queue drops the event instead of blocking
// the request path.
type PushDispatcher struct {
	log             *zap.SugaredLogger
	transport       Transport
	queue           chan entities.Notification
	closing         chan struct{}
	done            chan struct{}
	closeOnce       sync.Once
	deliveryTimeout time.Duration
	drainTimeout    time.Duration
}

// New constructs a PushDispatcher and starts its worker.
func New(log *zap.SugaredLogger, transport Transport, queueSize int, deliveryTimeout, drainTimeout time.Duration) *PushDispatcher {
	d := &PushDispatcher{
		log:             log.Named("notifier"),
		transport:       transport,
		queue:           make(chan entities.Notification, queueSize),
		closing:         make(chan struct{}),
		done:            make(chan struct{}),
		deliveryTimeout: deliveryTimeout,
		drainTimeout:    drainTimeout,
	}
	go d.worker()
	return d
}

// Notify enqueues a notification for asynchronous delivery.
func (d *PushDispatcher) Notify(recipientRole entities.Role, recipientID int64, event entities.NotificationEvent, invitationID int64) {
	n := entities.Notification{
		EventID:       uuid.NewString(),
		Event:         event,
		RecipientRole: recipientRole,
		RecipientID:   recipientID,
		InvitationID:  invitationID,
		OccurredAt:    time.Now().UTC(),
	}

	select {
	case <-d.closing:
		d.log.Warnw("notifier closed, dropping event",
			"event", n.Event, "recipient_id", n.RecipientID, "invitation_id", n.InvitationID)
		return
	default:
	}

	select {
	case d.queue <- n:
	default:
		d.log.Warnw("notification queue full, dropping event",
			"event", n.Event, "recipient_id", n.RecipientID, "invitation_id", n.InvitationID)
	}
}

// Close stops accepting notifications and waits for the worker to drain the
// queue, up to the drain timeout. Safe to call while Notify is still in
// flight on other goroutines, and safe to call more than once.
func (d *PushDispatcher) Close() {
	d.closeOnce.Do(func() { close(d.closing) })
	select {
	case <-d.done:
	case <-time.After(d.drainTimeout):
		d.log.Warnw("notifier drain timeout", "timeout", d.drainTimeout)
	}
}

func (d *PushDispatcher) worker() {
	defer close(d.done)
	for {
		select {
		case n := <-d.queue:
			d.deliver(n)
		case <-d.closing:
			for {
				select {
				case n := <-d.queue:
					d.deliver(n)
				default:
					return
				}
			}
		}
	}
}

func (d *PushDispatcher) deliver(n entities.Notification) {
	ctx, cancel := context.WithTimeout(context.Background(), d.deliveryTimeout)
	defer cancel()
	if err := d.transport.Deliver(ctx, n); err != nil {
		d.log.Errorw("notification delivery failed",
			"error", err, "event", n.Event, "event_id", n.EventID, "recipient_id", n.RecipientID)
		return
	}
	d.log.Infow("notification delivered",
		"event", n.Event, "event_id", n.EventID, "recipient_role", n.RecipientRole, "recipient_id", n.RecipientID)
}
