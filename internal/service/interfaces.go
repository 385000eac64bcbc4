package service

import (
	"context"
	"time"

	"hackathon-portal-backend/internal/database/models"
	"hackathon-portal-backend/internal/validation"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for team service
type TeamServiceInterface interface {
	Create(ctx context.Context, input validation.TeamInput, bypassClosed bool) (*models.Team, error)
	Update(ctx context.Context, id string, req *UpdateTeamRequest) (*models.Team, error)
	Delete(ctx context.Context, id string) error
	GetAll(ctx context.Context) ([]models.Team, error)
	GetByID(ctx context.Context, id string) (*models.Team, error)
	GetBySlug(ctx context.Context, slug string) (*models.Team, error)
	CheckDuplicates(ctx context.Context, excludeID string) (*validation.Snapshot, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	UpsertUser(ctx context.Context, req *UpsertUserRequest) (*models.User, bool, error)
	DeleteUser(ctx context.Context, uid string) error
	GetAll(ctx context.Context) ([]models.User, error)
}

// SettingsServiceInterface defines the interface for settings service
type SettingsServiceInterface interface {
	Get(ctx context.Context) (*models.Settings, error)
	SetRegistrationEnabled(ctx context.Context, enabled bool) (*models.Settings, error)
	ScheduleRegistration(ctx context.Context, at time.Time, state bool) (*models.Settings, error)
	ClearSchedule(ctx context.Context) (*models.Settings, error)
	SetProblemsReleased(ctx context.Context, released bool) (*models.Settings, error)
	ApplyDueSchedule(ctx context.Context, now time.Time) (*models.Settings, bool, error)
	Watch(ctx context.Context) (<-chan models.Settings, error)
}

// LogServiceInterface defines the interface for audit log reads
type LogServiceInterface interface {
	List(ctx context.Context, filter models.LogFilter) ([]models.LogEntry, error)
	Watch(ctx context.Context) (<-chan models.LogEntry, error)
}

// SheetSyncServiceInterface defines the interface for spreadsheet mirroring
type SheetSyncServiceInterface interface {
	SyncAll(ctx context.Context) error
	AppendTeam(ctx context.Context, team *models.Team) error
	EnqueueSync(ctx context.Context, reason string)
	EnqueueAppend(ctx context.Context, team *models.Team)
}

// SuggestionServiceInterface defines the interface for team name suggestions
type SuggestionServiceInterface interface {
	Suggest(ctx context.Context, req *SuggestionRequest) ([]string, error)
}
