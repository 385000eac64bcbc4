package repository

import (
	"context"
	"time"

	"hackathon-portal-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the interface for team repository operations
type TeamRepositoryInterface interface {
	Create(ctx context.Context, team *models.Team) error
	GetByID(ctx context.Context, id string) (*models.Team, error)
	GetBySlug(ctx context.Context, slug string) (*models.Team, error)
	GetAll(ctx context.Context) ([]models.Team, error)
	ExistsByName(ctx context.Context, name, exceptID string) (bool, error)
	Replace(ctx context.Context, team *models.Team, expectedVersion int64) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Upsert(ctx context.Context, user *models.User) error
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Delete(ctx context.Context, uid string) error
}

// SettingsRepositoryInterface defines the interface for the feature flag singleton
type SettingsRepositoryInterface interface {
	Get(ctx context.Context) (*models.Settings, error)
	SetRegistrationEnabled(ctx context.Context, enabled bool, by string) (*models.Settings, error)
	ScheduleRegistration(ctx context.Context, at time.Time, state bool, by string) (*models.Settings, error)
	ClearSchedule(ctx context.Context, by string) (*models.Settings, error)
	SetProblemsReleased(ctx context.Context, released bool, by string) (*models.Settings, error)
	ApplyDueSchedule(ctx context.Context, now time.Time) (*models.Settings, bool, error)
	Watch(ctx context.Context) (<-chan models.Settings, error)
}

// LogRepositoryInterface defines the interface for the append-only audit log
type LogRepositoryInterface interface {
	Insert(ctx context.Context, entry *models.LogEntry) error
	List(ctx context.Context, filter models.LogFilter) ([]models.LogEntry, error)
	Watch(ctx context.Context) (<-chan models.LogEntry, error)
}
