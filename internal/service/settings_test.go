package service_test

import (
	"context"
	"testing"
	"time"

	"hackathon-portal-backend/internal/database/models"
	apperrors "hackathon-portal-backend/internal/errors"
	"hackathon-portal-backend/internal/logger"
	"hackathon-portal-backend/internal/mocks"
	"hackathon-portal-backend/internal/repository"
	"hackathon-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSetRegistrationEnabledRecordsCaller(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSettingsRepositoryInterface(ctrl)
	audit := mocks.NewMockRecorder(ctrl)
	svc := service.NewSettingsService(repo, audit)
	ctx := logger.ContextWithEmail(context.Background(), "admin@example.com")

	repo.EXPECT().SetRegistrationEnabled(ctx, true, "admin@example.com").Return(&models.Settings{Enabled: true}, nil)
	audit.EXPECT().Log(ctx, models.ActionRegistrationToggled, models.LogLevelInfo, map[string]any{"enabled": true})

	settings, err := svc.SetRegistrationEnabled(ctx, true)

	require.NoError(t, err)
	assert.True(t, settings.Enabled)
}

func TestScheduleRegistration(t *testing.T) {
	tests := []struct {
		name    string
		at      time.Duration
		wantErr error
	}{
		{name: "future", at: time.Hour},
		{name: "now", at: 0, wantErr: apperrors.ErrScheduleInPast},
		{name: "past", at: -time.Minute, wantErr: apperrors.ErrScheduleInPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockSettingsRepositoryInterface(ctrl)
			audit := mocks.NewMockRecorder(ctrl)
			svc := service.NewSettingsService(repo, audit)
			ctx := context.Background()

			at := time.Now().Add(tt.at)

			if tt.wantErr == nil {
				repo.EXPECT().ScheduleRegistration(ctx, at, false, "").Return(&models.Settings{IsScheduled: true}, nil)
				audit.EXPECT().Log(ctx, models.ActionRegistrationScheduled, models.LogLevelInfo, gomock.Any())
			}

			_, err := svc.ScheduleRegistration(ctx, at, false)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClearScheduleAndProblems(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSettingsRepositoryInterface(ctrl)
	audit := mocks.NewMockRecorder(ctrl)
	svc := service.NewSettingsService(repo, audit)
	ctx := context.Background()

	repo.EXPECT().ClearSchedule(ctx, "").Return(&models.Settings{}, nil)
	audit.EXPECT().Log(ctx, models.ActionRegistrationScheduleCleared, models.LogLevelInfo, gomock.Any())
	repo.EXPECT().SetProblemsReleased(ctx, true, "").Return(&models.Settings{ProblemsReleased: true}, nil)
	audit.EXPECT().Log(ctx, models.ActionProblemsToggled, models.LogLevelInfo, map[string]any{"released": true})

	_, err := svc.ClearSchedule(ctx)
	require.NoError(t, err)

	settings, err := svc.SetProblemsReleased(ctx, true)
	require.NoError(t, err)
	assert.True(t, settings.ProblemsReleased)
}

func TestApplyDueScheduleAuditsAsScheduler(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSettingsRepositoryInterface(ctrl)
	audit := mocks.NewMockRecorder(ctrl)
	svc := service.NewSettingsService(repo, audit)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	repo.EXPECT().ApplyDueSchedule(gomock.Any(), now).Return(&models.Settings{Enabled: true}, true, nil)
	audit.EXPECT().Log(gomock.Any(), models.ActionRegistrationScheduleApplied, models.LogLevelInfo, map[string]any{"enabled": true}).
		Do(func(ctx context.Context, _ string, _ models.LogLevel, _ map[string]any) {
			assert.Equal(t, repository.SchedulerActor, logger.EmailFromContext(ctx))
		})

	settings, applied, err := svc.ApplyDueSchedule(context.Background(), now)

	require.NoError(t, err)
	assert.True(t, applied)
	assert.True(t, settings.Enabled)
}

func TestApplyDueScheduleNothingDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSettingsRepositoryInterface(ctrl)
	audit := mocks.NewMockRecorder(ctrl)
	svc := service.NewSettingsService(repo, audit)

	repo.EXPECT().ApplyDueSchedule(gomock.Any(), gomock.Any()).Return(&models.Settings{}, false, nil)

	_, applied, err := svc.ApplyDueSchedule(context.Background(), time.Now())

	require.NoError(t, err)
	assert.False(t, applied)
}

func TestLogServiceList(t *testing.T) {
	tests := []struct {
		name       string
		filter     models.LogFilter
		wantField  string
		wantFilter models.LogFilter
	}{
		{
			name:       "normalizes level and action",
			filter:     models.LogFilter{Level: " ERROR ", Action: " sheet_sync_failed ", Limit: 50},
			wantFilter: models.LogFilter{Level: models.LogLevelError, Action: "sheet_sync_failed", Limit: 50},
		},
		{name: "unknown level", filter: models.LogFilter{Level: "fatal"}, wantField: "level"},
		{name: "limit too large", filter: models.LogFilter{Limit: service.MaxLogLimit + 1}, wantField: "limit"},
		{name: "negative limit", filter: models.LogFilter{Limit: -1}, wantField: "limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockLogRepositoryInterface(ctrl)
			svc := service.NewLogService(repo)

			if tt.wantField == "" {
				repo.EXPECT().List(gomock.Any(), tt.wantFilter).Return([]models.LogEntry{}, nil)
			}

			_, err := svc.List(context.Background(), tt.filter)

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			verrs, ok := apperrors.AsValidationErrors(err)
			require.True(t, ok)
			assert.Contains(t, verrs.Fields(), tt.wantField)
		})
	}
}
