// Package term renders transient notifications to the terminal the client
// was launched from.
package term

import (
	"log/slog"

	"billdesk/internal/domain/entity"
	"billdesk/internal/usecase"

	"github.com/fatih/color"
)

// ToastSink prints every enqueued notification as a severity-colored line.
// It is a pure observer; eviction stays owned by the scheduler.
type ToastSink struct {
	logger *slog.Logger
}

var severityPrinters = map[entity.Severity]*color.Color{
	entity.SeveritySuccess: color.New(color.FgGreen),
	entity.SeverityError:   color.New(color.FgRed, color.Bold),
	entity.SeverityWarning: color.New(color.FgYellow),
	entity.SeverityInfo:    color.New(color.FgCyan),
}

// NewToastSink subscribes a sink to the notifier and returns it.
func NewToastSink(notifier usecase.NotifierUsecase, logger *slog.Logger) *ToastSink {
	sink := &ToastSink{logger: logger}
	notifier.Subscribe(sink.render)

	return sink
}

func (s *ToastSink) render(n *entity.Notification) {
	printer, ok := severityPrinters[n.Severity]
	if !ok {
		printer = severityPrinters[entity.SeverityInfo]
	}

	if _, err := printer.Printf("[%s] %s\n", n.Severity, n.Message); err != nil {
		s.logger.Debug("Failed to render notification", slog.Any("error", err))
	}
}
