package otel

import (
	"context"
	"strconv"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"

	"study-service/internal/telemetry"
	"study-service/internal/telemetry/domain"
)

// instrumentationName is the logger scope used for study events.
const instrumentationName = "study-service.telemetry"

// recordEmitter is the subset of otellog.Logger used by the emitter.
type recordEmitter interface {
	Emit(ctx context.Context, rec otellog.Record)
}

// NewEventEmitter returns an EventEmitter that sends events as OTel log records via the given LoggerProvider.
// If provider is nil, returns a no-op emitter.
func NewEventEmitter(provider *sdklog.LoggerProvider) telemetry.EventEmitter {
	if provider == nil {
		return noopEmitter{}
	}
	return &otelEmitter{logger: provider.Logger(instrumentationName)}
}

// NewEventEmitterWithLogger returns an EventEmitter that writes records to l.
func NewEventEmitterWithLogger(l recordEmitter) telemetry.EventEmitter {
	if l == nil {
		return noopEmitter{}
	}
	return &otelEmitter{logger: l}
}

type noopEmitter struct{}

func (noopEmitter) Emit(context.Context, *domain.StudyEvent) error { return nil }

type otelEmitter struct {
	logger recordEmitter
}

// Emit converts the study event to an OTel log record and emits it.
func (e *otelEmitter) Emit(ctx context.Context, event *domain.StudyEvent) error {
	if event == nil {
		return nil
	}
	rec := otellog.Record{}
	if !event.CreatedAt.IsZero() {
		rec.SetTimestamp(event.CreatedAt)
	} else {
		rec.SetTimestamp(time.Now().UTC())
	}
	rec.SetBody(otellog.StringValue(string(event.Type)))
	if event.Type == domain.EventStudyRejected {
		rec.SetSeverity(otellog.SeverityWarn)
	} else {
		rec.SetSeverity(otellog.SeverityInfo)
	}
	if event.ID != "" {
		rec.AddAttributes(otellog.String("event_id", event.ID))
	}
	if event.Type != "" {
		rec.AddAttributes(otellog.String("event_type", string(event.Type)))
	}
	if event.MemberID != 0 {
		rec.AddAttributes(otellog.String("member_id", strconv.FormatInt(event.MemberID, 10)))
	}
	if event.StudyName != "" {
		rec.AddAttributes(otellog.String("study_name", event.StudyName))
	}
	rec.AddAttributes(otellog.Int("study_limit", event.StudyLimit))
	if event.OwnerEmail != "" {
		rec.AddAttributes(otellog.String("owner_email", event.OwnerEmail))
	}
	if event.Reason != "" {
		rec.AddAttributes(otellog.String("reason", event.Reason))
	}
	e.logger.Emit(ctx, rec)
	return nil
}
