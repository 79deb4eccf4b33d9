package observability

import (
	"log/slog"

	"github.com/aretw0/structdict/internal/repr"
	"github.com/aretw0/structdict/pkg/record"
)

// LogHooks logs successful operations at debug level and rejections at warn.
func LogHooks(logger *slog.Logger) record.Hooks {
	attrs := func(e *record.Event) []any {
		args := []any{"variant", e.Variant, "op", string(e.Op)}
		if e.Key != nil {
			args = append(args, "key", repr.Value(e.Key))
		}
		return args
	}
	return record.Hooks{
		OnCreate: func(e *record.Event) { logger.Debug("record_created", attrs(e)...) },
		OnUpdate: func(e *record.Event) { logger.Debug("record_updated", attrs(e)...) },
		OnReject: func(e *record.Event) {
			args := append(attrs(e), "kind", record.KindOf(e.Err), "error", e.Err)
			logger.Warn("record_rejected", args...)
		},
	}
}
