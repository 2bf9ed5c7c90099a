package dispatch

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/alexanderramin/pulse/internal/contract"
)

// OperationEvent captures lightweight execution telemetry for one
// dispatched operation.
type OperationEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	ErrorKind contract.ErrorKind
	Fields    map[string]any
	StartedAt time.Time
}

// Observer receives operation execution events.
type Observer interface {
	ObserveOperation(ctx context.Context, event OperationEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveOperation(context.Context, OperationEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes operation events to the provided writer as
// structured log lines.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logObserver) ObserveOperation(ctx context.Context, event OperationEvent) {
	attrs := make([]any, 0, 8+len(event.Fields)*2)
	attrs = append(attrs,
		"operation", event.Name,
		"duration_ms", event.Duration.Milliseconds(),
		"success", event.Success,
	)
	for k, v := range event.Fields {
		attrs = append(attrs, k, v)
	}
	if !event.Success {
		attrs = append(attrs, "error_kind", string(event.ErrorKind))
		o.logger.WarnContext(ctx, "operation", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "operation", attrs...)
}
