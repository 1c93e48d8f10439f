package impl

import (
	"log/slog"
	"sync"
	"time"

	"billdesk/config"
	"billdesk/internal/domain/entity"
	"billdesk/internal/usecase"

	"github.com/google/uuid"
)

const fallbackNotifyDuration = 5 * time.Second

// notifierService implements the NotifierUsecase interface. Timer callbacks
// and user dismissals share the single removal path in Dismiss, which is
// idempotent by id, so the race between a fired timer and a crossing click is
// harmless.
type notifierService struct {
	defaultDuration time.Duration
	logger          *slog.Logger

	mu     sync.Mutex
	items  []*entity.Notification
	timers map[uuid.UUID]*time.Timer
	sinks  []func(*entity.Notification)
}

// NewNotifierService is the constructor for notifierService.
func NewNotifierService(cfg *config.Config, logger *slog.Logger) usecase.NotifierUsecase {
	defaultDuration := fallbackNotifyDuration
	if cfg != nil && cfg.Notify.DefaultDuration > 0 {
		defaultDuration = cfg.Notify.DefaultDuration
	}

	return &notifierService{
		defaultDuration: defaultDuration,
		logger:          logger,
		timers:          make(map[uuid.UUID]*time.Timer),
	}
}

// Enqueue appends the notification at the tail and schedules exactly one
// eviction timer for it. Display order is insertion order.
func (srv *notifierService) Enqueue(message string, severity entity.Severity, duration time.Duration) uuid.UUID {
	if duration <= 0 {
		duration = srv.defaultDuration
	}

	item := &entity.Notification{
		ID:        uuid.New(),
		Message:   message,
		Severity:  severity,
		Duration:  duration,
		CreatedAt: time.Now(),
	}

	srv.mu.Lock()
	srv.items = append(srv.items, item)
	srv.timers[item.ID] = time.AfterFunc(duration, func() {
		srv.Dismiss(item.ID)
	})
	sinks := make([]func(*entity.Notification), len(srv.sinks))
	copy(sinks, srv.sinks)
	srv.mu.Unlock()

	srv.logger.Debug("Notification enqueued",
		slog.String("id", item.ID.String()),
		slog.String("severity", string(severity)),
		slog.Duration("duration", duration))

	for _, sink := range sinks {
		sink(item)
	}

	return item.ID
}

// Dismiss removes the notification with the given id. Removing an unknown or
// already-removed id is a silent no-op.
func (srv *notifierService) Dismiss(id uuid.UUID) {
	srv.mu.Lock()
	timer, ok := srv.timers[id]
	if !ok {
		srv.mu.Unlock()

		return
	}
	delete(srv.timers, id)

	for i, item := range srv.items {
		if item.ID == id {
			srv.items = append(srv.items[:i], srv.items[i+1:]...)

			break
		}
	}
	srv.mu.Unlock()

	// Stopping an already-fired timer is harmless.
	timer.Stop()
}

// Active returns the outstanding notifications in insertion order.
func (srv *notifierService) Active() []*entity.Notification {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	out := make([]*entity.Notification, len(srv.items))
	copy(out, srv.items)

	return out
}

// Subscribe registers a sink invoked for every enqueued notification.
func (srv *notifierService) Subscribe(fn func(*entity.Notification)) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.sinks = append(srv.sinks, fn)
}
