package telemetry

import (
	"context"

	"study-service/internal/telemetry/domain"
)

// EventEmitter emits study telemetry events (e.g. to OTel Logs). Best-effort; callers log and ignore errors.
type EventEmitter interface {
	Emit(ctx context.Context, event *domain.StudyEvent) error
}
