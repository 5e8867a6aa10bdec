package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"study-service/internal/member"
	memberdomain "study-service/internal/member/domain"
	studydomain "study-service/internal/study/domain"
	"study-service/internal/study/repository"
	"study-service/internal/telemetry"
	telemetrydomain "study-service/internal/telemetry/domain"
)

// instrumentationName scopes the tracer and meter used by StudyService.
const instrumentationName = "study-service/study"

// Construction errors. Both wrap ErrInvalidConfig.
var (
	ErrInvalidConfig      = errors.New("study service: invalid configuration")
	ErrNilMemberService   = fmt.Errorf("%w: member service is required", ErrInvalidConfig)
	ErrNilStudyRepository = fmt.Errorf("%w: study repository is required", ErrInvalidConfig)
)

// Validation errors returned by CreateNewStudy. Check with errors.Is or IsValidation.
var (
	ErrMemberNotFound = errors.New("member does not exist")
	ErrNilStudy       = errors.New("study is required")
)

// IsValidation reports whether err rejects the caller's input rather than signalling a collaborator failure.
func IsValidation(err error) bool {
	return errors.Is(err, ErrMemberNotFound) ||
		errors.Is(err, ErrNilStudy) ||
		errors.Is(err, memberdomain.ErrInvalidMember)
}

// Outcome values recorded on the study.create.count counter.
const (
	outcomeCreated        = "created"
	outcomeMemberNotFound = "member_not_found"
	outcomeInvalid        = "invalid"
	outcomeError          = "error"
)

// StudyService creates studies owned by existing members.
type StudyService struct {
	members        member.Service
	studies        repository.Repository
	logger         zerolog.Logger
	tracer         trace.Tracer
	createCounter  metric.Int64Counter
	emitter        telemetry.EventEmitter
	notifyOnCreate bool
}

// Option configures a StudyService.
type Option func(*options)

type options struct {
	logger         zerolog.Logger
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	emitter        telemetry.EventEmitter
	notifyOnCreate bool
}

// WithLogger sets the logger. Defaults to zerolog.Nop().
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithTracerProvider sets the tracer provider. Defaults to the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) {
		if tp != nil {
			o.tracerProvider = tp
		}
	}
}

// WithMeterProvider sets the meter provider. Defaults to the global provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		if mp != nil {
			o.meterProvider = mp
		}
	}
}

// WithEventEmitter sets where study_created and study_rejected events go. Emission is asynchronous.
func WithEventEmitter(e telemetry.EventEmitter) Option {
	return func(o *options) { o.emitter = e }
}

// WithNotifyOnCreate makes CreateNewStudy call NotifyStudy and then NotifyMember after a successful save.
func WithNotifyOnCreate(enabled bool) Option {
	return func(o *options) { o.notifyOnCreate = enabled }
}

// NewStudyService returns a StudyService backed by members and studies.
// It fails immediately when either collaborator is nil.
func NewStudyService(members member.Service, studies repository.Repository, opts ...Option) (*StudyService, error) {
	if members == nil {
		return nil, ErrNilMemberService
	}
	if studies == nil {
		return nil, ErrNilStudyRepository
	}
	o := options{
		logger:         zerolog.Nop(),
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	counter, err := o.meterProvider.Meter(instrumentationName).Int64Counter(
		"study.create.count",
		metric.WithDescription("Study creation attempts by outcome."),
	)
	if err != nil {
		return nil, fmt.Errorf("study service: create counter: %w", err)
	}
	return &StudyService{
		members:        members,
		studies:        studies,
		logger:         o.logger,
		tracer:         o.tracerProvider.Tracer(instrumentationName),
		createCounter:  counter,
		emitter:        o.emitter,
		notifyOnCreate: o.notifyOnCreate,
	}, nil
}

// CreateNewStudy makes the member identified by memberID the owner of study and saves it.
// It returns whatever the repository returned from Save.
//
// An unknown member yields ErrMemberNotFound and nothing is saved. Errors from the member
// service or the repository are returned unchanged.
func (s *StudyService) CreateNewStudy(ctx context.Context, memberID memberdomain.MemberID, study *studydomain.Study) (*studydomain.Study, error) {
	ctx, span := s.tracer.Start(ctx, "study.CreateNewStudy",
		trace.WithAttributes(attribute.Int64("member.id", int64(memberID))))
	defer span.End()

	log := s.logger.With().Int64("member_id", int64(memberID)).Logger()

	if study == nil {
		s.fail(ctx, span, outcomeInvalid, ErrNilStudy)
		log.Info().Msg("study rejected: no study given")
		return nil, ErrNilStudy
	}
	span.SetAttributes(
		attribute.String("study.name", study.Name),
		attribute.Int("study.limit", study.Limit),
	)
	log = log.With().Str("study_name", study.Name).Logger()

	owner, err := s.members.FindByID(ctx, memberID)
	if err != nil {
		s.fail(ctx, span, outcomeError, err)
		log.Warn().Err(err).Msg("member lookup failed")
		return nil, err
	}
	if owner == nil {
		s.fail(ctx, span, outcomeMemberNotFound, ErrMemberNotFound)
		s.emit(ctx, telemetrydomain.EventStudyRejected, memberID, study, "", ErrMemberNotFound.Error())
		log.Info().Msg("study rejected: member does not exist")
		return nil, ErrMemberNotFound
	}

	study.Owner = owner
	saved, err := s.studies.Save(ctx, study)
	if err != nil {
		s.fail(ctx, span, outcomeError, err)
		log.Warn().Err(err).Msg("study save failed")
		return nil, err
	}

	if s.notifyOnCreate {
		s.members.NotifyStudy(ctx, saved)
		s.members.NotifyMember(ctx, owner)
	}

	s.createCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcomeCreated)))
	s.emit(ctx, telemetrydomain.EventStudyCreated, memberID, study, owner.Email, "")
	log.Debug().Str("owner_email", owner.Email).Msg("study created")
	return saved, nil
}

func (s *StudyService) fail(ctx context.Context, span trace.Span, outcome string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.createCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func (s *StudyService) emit(ctx context.Context, typ telemetrydomain.EventType, memberID memberdomain.MemberID, study *studydomain.Study, ownerEmail, reason string) {
	if s.emitter == nil {
		return
	}
	ev := telemetry.NewStudyEvent(typ, int64(memberID), study.Name, study.Limit)
	ev.OwnerEmail = ownerEmail
	ev.Reason = reason
	telemetry.EmitAsync(s.emitter, ctx, ev)
}
