package scoring

import (
	"io"
	"log/slog"
)

// Observer receives engine diagnostics. The engine holds no logging state of
// its own; callers that want diagnostics supply an Observer, everyone else
// gets the noop.
type Observer interface {
	Debug(event string, fields map[string]any)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) Debug(string, map[string]any) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes engine diagnostics to w as structured log lines.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func (o *logObserver) Debug(event string, fields map[string]any) {
	attrs := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		attrs = append(attrs, k, v)
	}
	o.logger.Debug(event, attrs...)
}
