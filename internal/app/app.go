// Package app wires configuration, logging, telemetry and the study service together.
// Callers supply the member service and study repository implementations.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"study-service/internal/config"
	"study-service/internal/logging"
	"study-service/internal/member"
	"study-service/internal/study/repository"
	"study-service/internal/study/service"
	"study-service/internal/telemetry"
	telemetryotel "study-service/internal/telemetry/otel"
)

// App holds the wired study service and the resources that need shutting down.
type App struct {
	Studies *service.StudyService
	Logger  zerolog.Logger

	providers     *telemetryotel.Providers
	drainDuration time.Duration
}

// New builds an App from cfg. logOut receives log output; nil means stderr.
// members and studies are required; a nil collaborator returns the study service construction error.
func New(ctx context.Context, cfg *config.Config, members member.Service, studies repository.Repository, logOut io.Writer) (*App, error) {
	if cfg == nil {
		return nil, errors.New("app: config is required")
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName, logOut)
	if err != nil {
		return nil, fmt.Errorf("app: logger: %w", err)
	}

	providers, err := telemetryotel.NewProviders(ctx, cfg.OTLPEndpoint, cfg.ServiceName, cfg.OTLPInsecure)
	if err != nil {
		return nil, fmt.Errorf("app: telemetry: %w", err)
	}
	providers.SetGlobal()

	svc, err := service.NewStudyService(members, studies,
		service.WithLogger(logger.With().Str("component", "study").Logger()),
		service.WithTracerProvider(providers.TracerProvider),
		service.WithMeterProvider(providers.MeterProvider),
		service.WithEventEmitter(telemetryotel.NewEventEmitter(providers.LoggerProvider)),
		service.WithNotifyOnCreate(cfg.NotifyOnCreate),
	)
	if err != nil {
		_ = providers.Shutdown(ctx)
		return nil, err
	}

	logger.Info().
		Str("env", cfg.Env).
		Bool("telemetry_export", cfg.TelemetryEnabled()).
		Bool("notify_on_create", cfg.NotifyOnCreate).
		Msg("study service ready")

	drain := time.Duration(0)
	if cfg.TelemetryEnabled() {
		drain = telemetry.ShutdownDrainDuration
	}
	return &App{
		Studies:       svc,
		Logger:        logger,
		providers:     providers,
		drainDuration: drain,
	}, nil
}

// Shutdown waits for in-flight telemetry emits when exporting, then shuts the providers down.
func (a *App) Shutdown(ctx context.Context) error {
	if a == nil || a.providers == nil {
		return nil
	}
	if a.drainDuration > 0 {
		select {
		case <-ctx.Done():
		case <-time.After(a.drainDuration):
		}
	}
	err := a.providers.Shutdown(ctx)
	if err != nil {
		a.Logger.Error().Err(err).Msg("telemetry shutdown failed")
	} else {
		a.Logger.Info().Msg("study service stopped")
	}
	return err
}
