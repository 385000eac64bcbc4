package service

import (
	"context"
	"time"

	"hackathon-portal-backend/internal/auditlog"
	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/repository"
)

// SettingsService handles the feature flags and the scheduled registration toggle
type SettingsService struct {
	repo  repository.SettingsRepositoryInterface
	audit auditlog.Recorder
	now   func() time.Time
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingsRepositoryInterface, audit auditlog.Recorder) *SettingsService {
	return &SettingsService{repo: repo, audit: audit, now: time.Now}
}

// Get returns the current settings including any pending schedule
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	return s.repo.Get(ctx)
}

// SetRegistrationEnabled opens or closes registration now and clears any schedule
func (s *SettingsService) SetRegistrationEnabled(ctx context.Context, enabled bool) (*models.Settings, error) {
	settings, err := s.repo.SetRegistrationEnabled(ctx, enabled, logger.EmailFromContext(ctx))
	if err != nil {
		return nil, err
	}
	s.audit.Log(ctx, models.ActionRegistrationToggled, models.LogLevelInfo, map[string]interface{}{"enabled": enabled})
	return settings, nil
}

// ScheduleRegistration stores a future change of the enabled flag
func (s *SettingsService) ScheduleRegistration(ctx context.Context, at time.Time, state bool) (*models.Settings, error) {
	if !at.After(s.now()) {
		return nil, apperrors.ErrScheduleInPast
	}
	settings, err := s.repo.ScheduleRegistration(ctx, at, state, logger.EmailFromContext(ctx))
	if err != nil {
		return nil, err
	}
	s.audit.Log(ctx, models.ActionRegistrationScheduled, models.LogLevelInfo, map[string]interface{}{
		"scheduledChange": at.UTC().Format(time.RFC3339),
		"scheduledState":  state,
	})
	return settings, nil
}

// ClearSchedule drops a pending change
func (s *SettingsService) ClearSchedule(ctx context.Context) (*models.Settings, error) {
	settings, err := s.repo.ClearSchedule(ctx, logger.EmailFromContext(ctx))
	if err != nil {
		return nil, err
	}
	s.audit.Log(ctx, models.ActionRegistrationScheduleCleared, models.LogLevelInfo, nil)
	return settings, nil
}

// SetProblemsReleased publishes or hides the problem statements
func (s *SettingsService) SetProblemsReleased(ctx context.Context, released bool) (*models.Settings, error) {
	settings, err := s.repo.SetProblemsReleased(ctx, released, logger.EmailFromContext(ctx))
	if err != nil {
		return nil, err
	}
	s.audit.Log(ctx, models.ActionProblemsToggled, models.LogLevelInfo, map[string]interface{}{"released": released})
	return settings, nil
}

// ApplyDueSchedule flips registration if a schedule is due at now. The store
// applies it atomically, so concurrent callers apply it at most once.
func (s *SettingsService) ApplyDueSchedule(ctx context.Context, now time.Time) (*models.Settings, bool, error) {
	settings, applied, err := s.repo.ApplyDueSchedule(ctx, now)
	if err != nil || !applied {
		return settings, applied, err
	}

	ctx = logger.ContextWithEmail(ctx, repository.SchedulerActor)
	s.audit.Log(ctx, models.ActionRegistrationScheduleApplied, models.LogLevelInfo, map[string]interface{}{
		"enabled": settings.Enabled,
	})
	return settings, true, nil
}

// Watch streams the settings document on every change
func (s *SettingsService) Watch(ctx context.Context) (<-chan models.Settings, error) {
	return s.repo.Watch(ctx)
}
