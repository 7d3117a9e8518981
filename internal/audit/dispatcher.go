package audit

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

const (
	ActionBookingCreated       = "booking_created"
	ActionBookingConflict      = "booking_conflict"
	ActionBookingCancelled     = "booking_cancelled"
	ActionBookingStatusUpdated = "booking_status_updated"
	ActionReminderSent         = "booking_reminder_sent"
	ActionReviewCreated        = "review_created"
	ActionGalleryUploaded      = "gallery_image_uploaded"
	ActionGalleryDeleted       = "gallery_image_deleted"
	ActionAvailabilityUpdated  = "availability_updated"
	ActionDateBlocked          = "date_blocked"
	ActionDateUnblocked        = "date_unblocked"
	ActionUserLogin            = "user_login"
	ActionOwnerPromoted        = "owner_promoted"
)

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Recorder is what use cases depend on to emit audit events.
type Recorder interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	logger *Logger
	log    *zap.Logger
	queue  chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

func NewDispatcher(logger *Logger, log *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		log:    log,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := d.logger.Log(
			ctx,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.log.Warn("audit write failed", zap.String("action", ev.Action), zap.Error(err))
		}
		cancel()
	}
}

// Dispatch never blocks the request: a full queue drops the event,
// and so does a closed dispatcher.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.log.Warn("audit dispatcher closed, dropping event", zap.String("action", ev.Action))
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.log.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}

// Close stops accepting events and waits for the queue to drain.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	<-d.done
}

// Nop discards every event.
type Nop struct{}

func (Nop) Dispatch(Event) {}

func UintPtr(v uint) *uint {
	return &v
}
