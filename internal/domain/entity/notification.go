package entity

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies a transient notification for display purposes.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Notification is a transient, self-expiring message reporting the outcome of
// a fire-and-forget action. Display order is insertion order; removal happens
// either when its timer fires or on explicit dismissal, whichever comes first.
type Notification struct {
	ID        uuid.UUID     // Unique handle used for dismissal.
	Message   string        // Human-readable text shown to the user.
	Severity  Severity      // Display classification.
	Duration  time.Duration // How long the notification stays up before auto-eviction.
	CreatedAt time.Time     // Timestamp of enqueue.
}
