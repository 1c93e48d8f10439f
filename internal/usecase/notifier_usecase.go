package usecase

import (
	"time"

	"billdesk/internal/domain/entity"

	"github.com/google/uuid"
)

// NotifierUsecase is an ordered collection of transient notifications, each
// with its own auto-eviction timer. Any view may enqueue; the scheduler owns
// removal. Timer firing and explicit dismissal share one idempotent removal
// path, so the race between them is harmless.
type NotifierUsecase interface {
	// Enqueue appends a notification and schedules its eviction. A
	// non-positive duration selects the configured default.
	Enqueue(message string, severity entity.Severity, duration time.Duration) uuid.UUID

	// Dismiss removes the notification with the given id and stops its
	// pending timer. Dismissing an unknown or already-removed id is a
	// silent no-op.
	Dismiss(id uuid.UUID)

	// Active returns the outstanding notifications in insertion order.
	Active() []*entity.Notification

	// Subscribe registers a sink invoked for every enqueued notification.
	Subscribe(fn func(*entity.Notification))
}
